package style

import "strings"

// TabsAndIndentsStyle sets the indentation of line-starting tokens.
type TabsAndIndentsStyle struct {
	UseTabCharacter             bool      `yaml:"useTabCharacter" toml:"useTabCharacter"`
	TabSize                     int       `yaml:"tabSize" toml:"tabSize"`
	IndentSize                  int       `yaml:"indentSize" toml:"indentSize"`
	ContinuationIndent          int       `yaml:"continuationIndent" toml:"continuationIndent"`
	IndentCaseFromSwitch        bool      `yaml:"indentCaseFromSwitch" toml:"indentCaseFromSwitch"`
	MethodDeclarationParameters Alignment `yaml:"methodDeclarationParameters" toml:"methodDeclarationParameters"`
	MethodCallArguments         Alignment `yaml:"methodCallArguments" toml:"methodCallArguments"`
}

// Alignment makes the wrapped elements of a list line up with the first.
type Alignment struct {
	AlignWhenMultiple bool `yaml:"alignWhenMultiple" toml:"alignWhenMultiple"`
}

func DefaultTabsAndIndents() TabsAndIndentsStyle {
	return TabsAndIndentsStyle{
		TabSize:                     4,
		IndentSize:                  4,
		ContinuationIndent:          8,
		IndentCaseFromSwitch:        true,
		MethodDeclarationParameters: Alignment{AlignWhenMultiple: true},
	}
}

// Render returns the indentation string for a width in columns.
func (s TabsAndIndentsStyle) Render(width int) string {
	if width <= 0 {
		return ""
	}
	if !s.UseTabCharacter || s.TabSize <= 0 {
		return strings.Repeat(" ", width)
	}
	return strings.Repeat("\t", width/s.TabSize) + strings.Repeat(" ", width%s.TabSize)
}

// Width measures an indentation string in columns, expanding tabs.
func (s TabsAndIndentsStyle) Width(indent string) int {
	tab := s.TabSize
	if tab <= 0 {
		tab = 4
	}
	w := 0
	for _, r := range indent {
		if r == '\t' {
			w += tab - w%tab
			continue
		}
		w++
	}
	return w
}
