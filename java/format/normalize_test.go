package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhamidi/lst/java/printer"
	"github.com/dhamidi/lst/java/style"
)

func TestRemoveTrailingWhitespace(t *testing.T) {
	src := "class A {   \n    // note  \n    int x; \t\n}  \n  "
	cu := RemoveTrailingWhitespace(mustParse(t, src))
	assert.Equal(t, "class A {\n    // note\n    int x;\n}\n", printer.Print(cu))
}

func TestNormalizeTabsOrSpaces(t *testing.T) {
	tabs := style.DefaultTabsAndIndents()
	tabs.UseTabCharacter = true
	cu := NormalizeTabsOrSpaces(mustParse(t, "class A {\n        int x;\n  \tint y;\n}"), tabs)
	assert.Equal(t, "class A {\n\t\tint x;\n\tint y;\n}", printer.Print(cu))

	spaces := style.DefaultTabsAndIndents()
	cu = NormalizeTabsOrSpaces(cu, spaces)
	assert.Equal(t, "class A {\n        int x;\n    int y;\n}", printer.Print(cu))
}

func TestTabsAndIndents(t *testing.T) {
	src := "class A {\nvoid m() {\nif (x) {\ny();\n}\n}\n}"
	cu := TabsAndIndents(mustParse(t, src), style.DefaultTabsAndIndents(), nil)
	assert.Equal(t, "class A {\n    void m() {\n        if (x) {\n            y();\n        }\n    }\n}", printer.Print(cu))
}

func TestTabsAndIndentsRealignsBlockComments(t *testing.T) {
	src := "class A {\n/**\n * doc\n */\nvoid m() {\n}\n}"
	tabs := style.DefaultTabsAndIndents()
	tabs.UseTabCharacter = true

	cu := TabsAndIndents(mustParse(t, src), tabs, nil)
	assert.Equal(t, "class A {\n\t/**\n\t * doc\n\t */\n\tvoid m() {\n\t}\n}", printer.Print(cu))
}

func TestRealign(t *testing.T) {
	v := &tabsVisitor{style: style.DefaultTabsAndIndents()}
	tests := []struct {
		text string
		want string
	}{
		{"*\n * doc\n ", "*\n     * doc\n     "},
		{" a\n   b */", " a\n   b */"},
		{" a\n", " a\n     "},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, v.realign(tt.text, 4), "%q", tt.text)
	}
}
