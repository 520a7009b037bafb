package style

// BracePlacement is where an opening brace goes relative to its header.
type BracePlacement string

const (
	EndOfLine BracePlacement = "end_of_line"
	NextLine  BracePlacement = "next_line"
)

// WrapStyle decides whether annotations are followed by a line break.
type WrapStyle string

const (
	DoNotWrap  WrapStyle = "do_not_wrap"
	WrapAlways WrapStyle = "wrap_always"
)

// WrappingAndBracesStyle decides which constructs start new lines.
type WrappingAndBracesStyle struct {
	KeepWhenFormatting       KeepWhenFormatting `yaml:"keepWhenFormatting" toml:"keepWhenFormatting"`
	Braces                   Braces             `yaml:"braces" toml:"braces"`
	IfStatement              IfStatement        `yaml:"ifStatement" toml:"ifStatement"`
	TryStatement             TryStatement       `yaml:"tryStatement" toml:"tryStatement"`
	DoWhileStatement         DoWhileStatement   `yaml:"doWhileStatement" toml:"doWhileStatement"`
	ClassAnnotations         WrapStyle          `yaml:"classAnnotations" toml:"classAnnotations"`
	MethodAnnotations        WrapStyle          `yaml:"methodAnnotations" toml:"methodAnnotations"`
	FieldAnnotations         WrapStyle          `yaml:"fieldAnnotations" toml:"fieldAnnotations"`
	LocalVariableAnnotations WrapStyle          `yaml:"localVariableAnnotations" toml:"localVariableAnnotations"`
}

// KeepWhenFormatting lists the one-line forms left on one line.
type KeepWhenFormatting struct {
	SimpleBlocksInOneLine  bool `yaml:"simpleBlocksInOneLine" toml:"simpleBlocksInOneLine"`
	SimpleMethodsInOneLine bool `yaml:"simpleMethodsInOneLine" toml:"simpleMethodsInOneLine"`
	SimpleLambdasInOneLine bool `yaml:"simpleLambdasInOneLine" toml:"simpleLambdasInOneLine"`
	SimpleClassesInOneLine bool `yaml:"simpleClassesInOneLine" toml:"simpleClassesInOneLine"`
}

type Braces struct {
	ClassDeclaration  BracePlacement `yaml:"classDeclaration" toml:"classDeclaration"`
	MethodDeclaration BracePlacement `yaml:"methodDeclaration" toml:"methodDeclaration"`
	Other             BracePlacement `yaml:"other" toml:"other"`
}

type IfStatement struct {
	ElseOnNewLine bool `yaml:"elseOnNewLine" toml:"elseOnNewLine"`
}

type TryStatement struct {
	CatchOnNewLine   bool `yaml:"catchOnNewLine" toml:"catchOnNewLine"`
	FinallyOnNewLine bool `yaml:"finallyOnNewLine" toml:"finallyOnNewLine"`
}

type DoWhileStatement struct {
	WhileOnNewLine bool `yaml:"whileOnNewLine" toml:"whileOnNewLine"`
}

func DefaultWrappingAndBraces() WrappingAndBracesStyle {
	return WrappingAndBracesStyle{
		KeepWhenFormatting: KeepWhenFormatting{SimpleLambdasInOneLine: true},
		Braces: Braces{
			ClassDeclaration:  EndOfLine,
			MethodDeclaration: EndOfLine,
			Other:             EndOfLine,
		},
		ClassAnnotations:         WrapAlways,
		MethodAnnotations:        WrapAlways,
		FieldAnnotations:         WrapAlways,
		LocalVariableAnnotations: DoNotWrap,
	}
}
