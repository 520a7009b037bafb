// Package style holds the per-concern formatting configuration consulted by
// the formatting visitors.
package style

import (
	"fmt"

	"github.com/dhamidi/lst/java/tree"
)

// Style is the configuration of one formatting concern. The set of
// implementations is closed.
type Style interface {
	concern() string
}

func (SpacesStyle) concern() string            { return "spaces" }
func (BlankLinesStyle) concern() string        { return "blankLines" }
func (TabsAndIndentsStyle) concern() string    { return "tabsAndIndents" }
func (WrappingAndBracesStyle) concern() string { return "wrappingAndBraces" }
func (OtherStyle) concern() string             { return "other" }

// NamedStyles is a named collection of styles. Attached to a compilation
// unit as a marker it configures every visitor that formats the unit.
type NamedStyles struct {
	ID          tree.ID
	Name        string
	DisplayName string
	Styles      []Style
}

func (n NamedStyles) MarkerID() tree.ID { return n.ID }

// IntelliJ returns the built-in defaults, modeled on IntelliJ IDEA's Java
// code style.
func IntelliJ() NamedStyles {
	return NamedStyles{
		ID:          tree.NewID(),
		Name:        "intellij",
		DisplayName: "IntelliJ IDEA",
		Styles: []Style{
			DefaultSpaces(),
			DefaultBlankLines(),
			DefaultTabsAndIndents(),
			DefaultWrappingAndBraces(),
			DefaultOther(),
		},
	}
}

// UnknownStyleError is returned when a built-in style name is not known.
type UnknownStyleError struct {
	Name string
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("unknown style %q", e.Name)
}

var builtin = map[string]func() NamedStyles{
	"intellij": IntelliJ,
}

// Lookup returns the built-in style collection called name.
func Lookup(name string) (NamedStyles, error) {
	if fn, ok := builtin[name]; ok {
		return fn(), nil
	}
	return NamedStyles{}, &UnknownStyleError{Name: name}
}

// Find returns the style of type S in styles.
func Find[S Style](styles NamedStyles) (S, bool) {
	for _, s := range styles.Styles {
		if found, ok := s.(S); ok {
			return found, true
		}
	}
	var zero S
	return zero, false
}

// With returns a copy of styles in which s replaces the style of the same
// concern.
func (n NamedStyles) With(s Style) NamedStyles {
	out := make([]Style, 0, len(n.Styles)+1)
	replaced := false
	for _, existing := range n.Styles {
		if existing.concern() == s.concern() {
			if !replaced {
				out = append(out, s)
				replaced = true
			}
			continue
		}
		out = append(out, existing)
	}
	if !replaced {
		out = append(out, s)
	}
	n.Styles = out
	return n
}

// Merge combines several collections. For each concern the style of the
// last collection that defines it wins. The result takes its name from the
// last collection.
func Merge(list ...NamedStyles) NamedStyles {
	merged := NamedStyles{ID: tree.NewID()}
	for _, ns := range list {
		merged.Name = ns.Name
		merged.DisplayName = ns.DisplayName
		for _, s := range ns.Styles {
			merged = merged.With(s)
		}
	}
	return merged
}

// Default returns the built-in default for concern S.
func Default[S Style]() S {
	var zero S
	var d Style
	switch Style(zero).(type) {
	case SpacesStyle:
		d = DefaultSpaces()
	case BlankLinesStyle:
		d = DefaultBlankLines()
	case TabsAndIndentsStyle:
		d = DefaultTabsAndIndents()
	case WrappingAndBracesStyle:
		d = DefaultWrappingAndBraces()
	case OtherStyle:
		d = DefaultOther()
	}
	return d.(S)
}

// Resolve picks the effective style S for formatting cu. An explicit style
// wins, then a NamedStyles marker on cu, then the built-in default.
func Resolve[S Style](cu *tree.CompilationUnit, explicit *S) S {
	if explicit != nil {
		return *explicit
	}
	if cu != nil {
		if ns, ok := tree.FindMarker[NamedStyles](cu.Markers); ok {
			if s, ok := Find[S](ns); ok {
				return s
			}
		}
	}
	return Default[S]()
}

// Attach returns a copy of cu carrying styles as its NamedStyles marker.
func Attach(cu *tree.CompilationUnit, styles NamedStyles) *tree.CompilationUnit {
	return tree.WithMarkers(cu, tree.SetMarker(cu.Markers, styles))
}
