package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/dhamidi/lst/java/parser"
	"github.com/dhamidi/lst/java/printer"
)

func TestMinimumViableSpacing(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"words", "class A { int zero = 0; }", "class A{int zero=0;}"},
		{"repeated minus", "class A { int x = a - -b; }", "class A{int x=a- -b;}"},
		{"repeated plus", "class A { int x = a + +b; }", "class A{int x=a+ +b;}"},
		{"slash before comment", "class A { int x = a / /* c */ b; }", "class A{int x=a/ /* c */b;}"},
		{"line comment", "class A {\n    // c\n    int x;\n}", "class A{// c\nint x;}"},
		{"stacked line comments", "class A {\n    // a\n    // b\n    int x;\n}", "class A{// a\n// b\nint x;}"},
		{"comment at end of file", "class A {}\n// end", "class A{}// end"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cu := MinimumViableSpacing(StripWhitespace(mustParse(t, tt.src)))
			assert.Equal(t, tt.want, printer.Print(cu))
		})
	}
}

func TestMinimumViableSpacingLeavesSpacedCode(t *testing.T) {
	cu := mustParse(t, "class A {\n    int zero = 0;\n}")
	assert.Same(t, cu, MinimumViableSpacing(cu))
}

func TestMinimumViableSpacingStopAfter(t *testing.T) {
	cu := StripWhitespace(mustParse(t, "class A { int a; int b; }"))
	first := cu.Classes[0].Body.Statements[0].Element

	out := MinimumViableSpacing(cu, WithStopAfter(first))
	assert.Equal(t, "class A{int a;intb;}", printer.Print(out))
}

func TestFuses(t *testing.T) {
	assert.True(t, fuses('a', '1'))
	assert.True(t, fuses('_', '$'))
	assert.True(t, fuses('+', '+'))
	assert.True(t, fuses('/', '*'))
	assert.False(t, fuses('+', '-'))
	assert.False(t, fuses(')', 'a'))
	assert.False(t, fuses('a', '.'))
}

func TestMinimumViableSpacingRestoresTokens(t *testing.T) {
	gaps := []string{" ", "\n", " /* c */ ", " // line\n", "\n\t"}
	rapid.Check(t, func(t *rapid.T) {
		parts := strings.Split(formatTemplate, "|")
		var b strings.Builder
		for i, part := range parts {
			if i > 0 {
				b.WriteString(rapid.SampledFrom(gaps).Draw(t, "gap"))
			}
			b.WriteString(part)
		}
		src := b.String()

		cu, err := parser.Parse([]byte(src))
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		got := printer.Print(MinimumViableSpacing(StripWhitespace(cu)))
		if !assert.Equal(t, lexemes(src), lexemes(got)) {
			t.Fatalf("tokens changed\nsrc: %q\ngot: %q", src, got)
		}
	})
}
