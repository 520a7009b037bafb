package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhamidi/lst/java/printer"
	"github.com/dhamidi/lst/java/style"
)

func TestBlankLines(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "keep maximum in declarations",
			src:  "class A {\n    int a;\n\n\n\n\n    int b;\n}",
			want: "class A {\n    int a;\n\n\n    int b;\n}",
		},
		{
			name: "minimum around methods",
			src:  "class A {\n    void a() {\n    }\n    void b() {\n    }\n}",
			want: "class A {\n    void a() {\n    }\n\n    void b() {\n    }\n}",
		},
		{
			name: "header and package",
			src:  "\n\n/* h */\n\n\n\n\npackage a;",
			want: "/* h */\n\n\npackage a;",
		},
		{
			name: "in code",
			src:  "class A {\n    void m() {\n        a();\n\n\n\n\n        b();\n    }\n}",
			want: "class A {\n    void m() {\n        a();\n\n\n        b();\n    }\n}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cu := BlankLines(mustParse(t, tt.src), style.DefaultBlankLines())
			assert.Equal(t, tt.want, printer.Print(cu))
		})
	}
}

func TestBlankLinesAfterClassHeader(t *testing.T) {
	s := style.DefaultBlankLines()
	s.Minimum.AfterClassHeader = 1

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "first member moves down",
			src:  "class A {\n    int x;\n}",
			want: "class A {\n\n    int x;\n}",
		},
		{
			name: "enum constants stay under the header",
			src:  "enum E {\n    A, B;\n    int x;\n}",
			want: "enum E {\n    A, B;\n    int x;\n}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cu := BlankLines(mustParse(t, tt.src), s)
			assert.Equal(t, tt.want, printer.Print(cu))
		})
	}
}

func TestClampNewlines(t *testing.T) {
	tests := []struct {
		ws     string
		lo, hi int
		want   string
	}{
		{" ", 0, 2, " "},
		{"\n\n\n\n  ", 0, 1, "\n\n  "},
		{"\n  ", 1, 2, "\n\n  "},
		{" ", 1, 2, "\n\n "},
		{"\n\n  ", 0, 2, "\n\n  "},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clampNewlines(tt.ws, tt.lo, tt.hi), "%q [%d,%d]", tt.ws, tt.lo, tt.hi)
	}
}
