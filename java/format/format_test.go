package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dhamidi/lst/java/parser"
	"github.com/dhamidi/lst/java/printer"
	"github.com/dhamidi/lst/java/style"
	"github.com/dhamidi/lst/java/tree"
)

func mustParse(t testing.TB, src string) *tree.CompilationUnit {
	t.Helper()
	cu, err := parser.Parse([]byte(src), parser.WithFile("A.java"))
	require.NoError(t, err)
	return cu
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "empty class",
			src:  "class A{}",
			want: "class A {\n}",
		},
		{
			name: "nested blocks",
			src:  "class A{void m(){int x=1;}}",
			want: "class A {\n    void m() {\n        int x = 1;\n    }\n}",
		},
		{
			name: "blank lines are clamped",
			src:  "class A {\n    int a;\n\n\n\n\n    int b;\n}",
			want: "class A {\n    int a;\n\n\n    int b;\n}",
		},
		{
			name: "doc comment is realigned",
			src:  "class A {\n/**\n * doc\n */\nvoid m(){}}",
			want: "class A {\n    /**\n     * doc\n     */\n    void m() {\n    }\n}",
		},
		{
			name: "doc comment after brace starts a line",
			src:  "class A{/** doc\n  * x\n  */\nvoid m(){}}",
			want: "class A {\n    /** doc\n     * x\n     */\n    void m() {\n    }\n}",
		},
		{
			name: "trailing line comment stays on the brace line",
			src:  "class A{ // c\nint a;}",
			want: "class A { // c\n    int a;\n}",
		},
		{
			name: "already formatted",
			src:  "class A {\n    int a;\n}",
			want: "class A {\n    int a;\n}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cu := Format(mustParse(t, tt.src))
			assert.Equal(t, tt.want, printer.Print(cu))
		})
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	for _, src := range []string{
		"class A{}",
		"class A{void m(){int x=1;}}",
		"class A {\n    void a() {\n    }\n    void b() {\n    }\n}",
	} {
		once := Format(mustParse(t, src))
		twice := Format(once)
		assert.Equal(t, printer.Print(once), printer.Print(twice), src)
	}
}

func TestFormatStylesMarkerMatchesOption(t *testing.T) {
	tabs := style.DefaultTabsAndIndents()
	tabs.IndentSize = 2
	styles := style.IntelliJ().With(tabs)
	src := "class A{void m(){}}"

	marked := Format(style.Attach(mustParse(t, src), styles))
	explicit := Format(mustParse(t, src), WithStyles(styles))

	want := "class A {\n  void m() {\n  }\n}"
	assert.Equal(t, want, printer.Print(marked))
	assert.Equal(t, want, printer.Print(explicit))
}

func TestFormatElseOnNewLine(t *testing.T) {
	wrapping := style.DefaultWrappingAndBraces()
	wrapping.IfStatement.ElseOnNewLine = true
	src := "class A {\n    void m() {\n        if (x) {\n        } else {\n        }\n    }\n}"

	cu := Format(mustParse(t, src), WithStyles(style.IntelliJ().With(wrapping)))
	assert.Equal(t, "class A {\n    void m() {\n        if (x) {\n        }\n        else {\n        }\n    }\n}", printer.Print(cu))
}

func TestFormatStopAfter(t *testing.T) {
	cu := mustParse(t, "class A{int a=1;int b=2;}")
	first := cu.Classes[0].Body.Statements[0].Element

	out := Format(cu, WithStopAfter(first))
	assert.Equal(t, "class A{int a = 1;int b=2;}", printer.Print(out))
}

func TestFormatCycles(t *testing.T) {
	cu := mustParse(t, "class A{}")
	out := Format(cu, WithCycles(1))
	assert.Equal(t, "class A {\n}", printer.Print(out))
}

func TestStripWhitespaceKeepsComments(t *testing.T) {
	cu := mustParse(t, "class A {\n    // note\n    int x;\n}\n")
	assert.Equal(t, "classA{// noteintx;}", printer.Print(StripWhitespace(cu)))
}

// formatTemplate is Java source whose token gaps are marked with "|".
var formatTemplate = strings.Join([]string{
	"package", "a", ".", "b", ";",
	"import", "java", ".", "util", ".", "List", ";",
	"class", "A", "<", "T", ">", "extends", "B", "{",
	"int", "x", "=", "1", "+", "f", "(", "y", ",", "z", ")", ";",
	"void", "m", "(", "int", "a", ",", "int", "b", ")", "{",
	"if", "(", "a", ">", "0", ")", "{", "return", ";", "}",
	"else", "a", "++", ";",
	"int", "[", "]", "v", "=", "{", "1", ",", "2", "}", ";",
	"for", "(", "String", "s", ":", "list", ")", "g", "(", "s", ")", ";",
	"}", "}",
}, "|")

type lexeme struct {
	kind    parser.TokenKind
	literal string
}

func lexemes(src string) []lexeme {
	var out []lexeme
	for _, tok := range parser.NewLexer([]byte(src), "A.java").Tokens() {
		out = append(out, lexeme{tok.Kind, tok.Literal})
	}
	return out
}

func TestFormatKeepsTokens(t *testing.T) {
	gaps := []string{"", " ", "\n", "\n\n\n\n    ", "\t", " /* c */ ", " // line\n", "/** doc */\n"}
	rapid.Check(t, func(t *rapid.T) {
		parts := strings.Split(formatTemplate, "|")
		var b strings.Builder
		for i, part := range parts {
			if i > 0 {
				gap := rapid.SampledFrom(gaps).Draw(t, "gap")
				if gap == "" && isWordByte(parts[i-1][len(parts[i-1])-1]) && isWordByte(part[0]) {
					gap = " "
				}
				b.WriteString(gap)
			}
			b.WriteString(part)
		}
		src := b.String()

		cu, err := parser.Parse([]byte(src))
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		got := printer.Print(Format(cu))
		if !assert.Equal(t, lexemes(src), lexemes(got)) {
			t.Fatalf("tokens changed\nsrc: %q\ngot: %q", src, got)
		}
	})
}
