package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Space
	}{
		{"empty", "", EmptySpace},
		{"whitespace only", " \n\t", Whitespace(" \n\t")},
		{"line comment", "  // note\n  ", Space{
			Whitespace: "  ",
			Comments:   []Comment{{Kind: LineComment, Text: " note", Suffix: "\n  "}},
		}},
		{"block then doc", "/* a */ /** b */\n", Space{
			Comments: []Comment{
				{Kind: BlockComment, Text: " a ", Suffix: " "},
				{Kind: DocComment, Text: " b ", Suffix: "\n"},
			},
		}},
		{"empty block comment", "/**/", Space{Comments: []Comment{{Kind: BlockComment, Text: ""}}}},
		{"single star block comment", "/***/", Space{Comments: []Comment{{Kind: BlockComment, Text: "*"}}}},
		{"line comment at end of input", "// eof", Space{Comments: []Comment{{Kind: LineComment, Text: " eof"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.raw, got.String())
		})
	}
}

func TestFormatRejectsTokens(t *testing.T) {
	assert.Panics(t, func() { Format(" x ") })
}

func TestFormatRoundTripProperty(t *testing.T) {
	pieces := []string{" ", "  ", "\t", "\n", "\r\n", "// line\n", "/* block */", "/** doc\n * more\n */", "/**/"}
	rapid.Check(t, func(t *rapid.T) {
		parts := rapid.SliceOf(rapid.SampledFrom(pieces)).Draw(t, "parts")
		raw := strings.Join(parts, "")
		if got := Format(raw).String(); got != raw {
			t.Fatalf("Format(%q).String() = %q", raw, got)
		}
	})
}

func TestSpaceNewlines(t *testing.T) {
	tests := []struct {
		raw         string
		hasNewline  bool
		anyNewline  bool
		indent      string
		lastWhitesp string
	}{
		{"", false, false, "", ""},
		{" ", false, false, "", " "},
		{"\n    ", true, true, "    ", "\n    "},
		{" /* c */\n  ", false, true, "  ", "\n  "},
		{" // c\n", false, true, "", "\n"},
		{"\n\n\t", true, true, "\t", "\n\n\t"},
	}
	for _, tt := range tests {
		s := Format(tt.raw)
		assert.Equal(t, tt.hasNewline, s.HasNewline(), "HasNewline(%q)", tt.raw)
		assert.Equal(t, tt.anyNewline, s.AnyNewline(), "AnyNewline(%q)", tt.raw)
		assert.Equal(t, tt.indent, s.Indent(), "Indent(%q)", tt.raw)
		assert.Equal(t, tt.lastWhitesp, s.LastWhitespace(), "LastWhitespace(%q)", tt.raw)
	}
}

func TestSpaceWithLastWhitespace(t *testing.T) {
	s := Format(" /* c */ ")
	got := s.WithLastWhitespace("\n  ")
	assert.Equal(t, " /* c */\n  ", got.String())
	assert.Equal(t, " /* c */ ", s.String(), "original must be unchanged")

	assert.Equal(t, "\t", Whitespace(" ").WithLastWhitespace("\t").String())
}

func TestSpaceConcat(t *testing.T) {
	tests := []struct {
		a, b string
	}{
		{"", ""},
		{" ", ""},
		{"", "\n"},
		{" ", "/* x */ "},
		{" // a\n", "  /* b */"},
		{"/* a */", "\n"},
	}
	for _, tt := range tests {
		got := Format(tt.a).Concat(Format(tt.b))
		assert.Equal(t, tt.a+tt.b, got.String(), "%q + %q", tt.a, tt.b)
	}
}

func TestSpaceMapComments(t *testing.T) {
	s := Format("/* a */ // b\n")
	got := s.MapComments(func(_ int, c Comment) Comment {
		return c.WithText(strings.ToUpper(c.Text))
	})
	assert.Equal(t, "/* A */ // B\n", got.String())
	assert.Equal(t, "/* a */ // b\n", s.String())
}

func TestCommentMultiline(t *testing.T) {
	assert.True(t, Comment{Kind: BlockComment, Text: "\n * a\n "}.Multiline())
	assert.False(t, Comment{Kind: BlockComment, Text: " a "}.Multiline())
	assert.False(t, Comment{Kind: LineComment, Text: " a"}.Multiline())
}

func TestIndentOf(t *testing.T) {
	assert.Equal(t, "", IndentOf("  "))
	assert.Equal(t, "  ", IndentOf("\n\n  "))
	assert.Equal(t, 2, NewlineCount("\n \n "))
}
