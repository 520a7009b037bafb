package style

// OtherStyle holds settings that belong to no larger concern.
type OtherStyle struct {
	// UseTrailingComma adds trailing commas to multi-line array initializers
	// and enum constant lists when true and removes them when false. Unset
	// leaves them as written.
	UseTrailingComma *bool `yaml:"useTrailingComma,omitempty" toml:"useTrailingComma,omitempty"`
}

func DefaultOther() OtherStyle {
	return OtherStyle{}
}

// Bool returns a pointer to b, for optional style settings.
func Bool(b bool) *bool {
	return &b
}
