package style

// BlankLinesStyle bounds the number of blank lines at declaration and code
// boundaries.
type BlankLinesStyle struct {
	KeepMaximum KeepMaximum `yaml:"keepMaximum" toml:"keepMaximum"`
	Minimum     Minimum     `yaml:"minimum" toml:"minimum"`
}

// KeepMaximum caps blank lines that are already present.
type KeepMaximum struct {
	InDeclarations          int `yaml:"inDeclarations" toml:"inDeclarations"`
	InCode                  int `yaml:"inCode" toml:"inCode"`
	BeforeEndOfBlock        int `yaml:"beforeEndOfBlock" toml:"beforeEndOfBlock"`
	BetweenHeaderAndPackage int `yaml:"betweenHeaderAndPackage" toml:"betweenHeaderAndPackage"`
}

// Minimum forces blank lines where fewer are present.
type Minimum struct {
	BeforePackage             int `yaml:"beforePackage" toml:"beforePackage"`
	AfterPackage              int `yaml:"afterPackage" toml:"afterPackage"`
	BeforeImports             int `yaml:"beforeImports" toml:"beforeImports"`
	AfterImports              int `yaml:"afterImports" toml:"afterImports"`
	AroundClass               int `yaml:"aroundClass" toml:"aroundClass"`
	AfterClassHeader          int `yaml:"afterClassHeader" toml:"afterClassHeader"`
	BeforeClassEnd            int `yaml:"beforeClassEnd" toml:"beforeClassEnd"`
	AfterAnonymousClassHeader int `yaml:"afterAnonymousClassHeader" toml:"afterAnonymousClassHeader"`
	AroundFieldInInterface    int `yaml:"aroundFieldInInterface" toml:"aroundFieldInInterface"`
	AroundField               int `yaml:"aroundField" toml:"aroundField"`
	AroundMethodInInterface   int `yaml:"aroundMethodInInterface" toml:"aroundMethodInInterface"`
	AroundMethod              int `yaml:"aroundMethod" toml:"aroundMethod"`
	BeforeMethodBody          int `yaml:"beforeMethodBody" toml:"beforeMethodBody"`
	AroundInitializer         int `yaml:"aroundInitializer" toml:"aroundInitializer"`
}

func DefaultBlankLines() BlankLinesStyle {
	return BlankLinesStyle{
		KeepMaximum: KeepMaximum{
			InDeclarations:          2,
			InCode:                  2,
			BeforeEndOfBlock:        2,
			BetweenHeaderAndPackage: 2,
		},
		Minimum: Minimum{
			AfterPackage:            1,
			BeforeImports:           1,
			AfterImports:            1,
			AroundClass:             1,
			AroundMethodInInterface: 1,
			AroundMethod:            1,
			AroundInitializer:       1,
		},
	}
}
