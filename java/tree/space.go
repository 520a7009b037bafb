package tree

import (
	"fmt"
	"strings"
)

// CommentKind distinguishes the comment syntaxes a Space can hold.
type CommentKind int

const (
	LineComment CommentKind = iota
	BlockComment
	DocComment
)

var commentKindNames = map[CommentKind]string{
	LineComment:  "LineComment",
	BlockComment: "BlockComment",
	DocComment:   "DocComment",
}

func (k CommentKind) String() string {
	if name, ok := commentKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Comment is a single comment inside a Space. Text excludes the comment
// delimiters. Suffix is the whitespace between the end of the comment and
// the next comment or token.
type Comment struct {
	Kind    CommentKind
	Text    string
	Suffix  string
	Markers Markers
}

// Printed returns the comment exactly as it appears in source, without its suffix.
func (c Comment) Printed() string {
	switch c.Kind {
	case LineComment:
		return "//" + c.Text
	case DocComment:
		return "/**" + c.Text + "*/"
	default:
		return "/*" + c.Text + "*/"
	}
}

// Multiline reports whether the comment itself spans more than one line.
func (c Comment) Multiline() bool {
	return c.Kind != LineComment && strings.Contains(c.Text, "\n")
}

func (c Comment) WithSuffix(suffix string) Comment {
	c.Suffix = suffix
	return c
}

func (c Comment) WithText(text string) Comment {
	c.Text = text
	return c
}

// Space is the whitespace and comments between two tokens.
type Space struct {
	Whitespace string
	Comments   []Comment
}

var (
	EmptySpace  = Space{}
	SingleSpace = Space{Whitespace: " "}
)

// Whitespace builds a Space holding only whitespace.
func Whitespace(ws string) Space {
	return Space{Whitespace: ws}
}

// Format splits raw inter-token text into whitespace and comments. The input
// must consist of whitespace and complete comments only.
func Format(raw string) Space {
	if raw == "" {
		return EmptySpace
	}
	var s Space
	i := 0
	ws := func() string {
		start := i
		for i < len(raw) && isSpaceByte(raw[i]) {
			i++
		}
		return raw[start:i]
	}
	s.Whitespace = ws()
	for i < len(raw) {
		var c Comment
		switch {
		case strings.HasPrefix(raw[i:], "//"):
			end := strings.IndexByte(raw[i:], '\n')
			if end < 0 {
				end = len(raw) - i
			}
			c = Comment{Kind: LineComment, Text: raw[i+2 : i+end]}
			i += end
		case strings.HasPrefix(raw[i:], "/*"):
			end := strings.Index(raw[i+2:], "*/")
			if end < 0 {
				end = len(raw) - i - 2
			}
			body := raw[i+2 : i+2+end]
			if strings.HasPrefix(body, "*") && body != "*" {
				c = Comment{Kind: DocComment, Text: body[1:]}
			} else {
				c = Comment{Kind: BlockComment, Text: body}
			}
			i += 2 + end + 2
			if i > len(raw) {
				i = len(raw)
			}
		default:
			panic(fmt.Sprintf("tree.Format: %q is not whitespace or a comment", raw[i:]))
		}
		c.Suffix = ws()
		s.Comments = append(s.Comments, c)
	}
	return s
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}

func (s Space) String() string {
	if len(s.Comments) == 0 {
		return s.Whitespace
	}
	var sb strings.Builder
	sb.WriteString(s.Whitespace)
	for _, c := range s.Comments {
		sb.WriteString(c.Printed())
		sb.WriteString(c.Suffix)
	}
	return sb.String()
}

func (s Space) IsEmpty() bool {
	return s.Whitespace == "" && len(s.Comments) == 0
}

func (s Space) WithWhitespace(ws string) Space {
	if s.Whitespace == ws {
		return s
	}
	return Space{Whitespace: ws, Comments: s.Comments}
}

func (s Space) WithComments(comments []Comment) Space {
	return Space{Whitespace: s.Whitespace, Comments: comments}
}

// MapComments returns a copy of s with fn applied to every comment.
func (s Space) MapComments(fn func(i int, c Comment) Comment) Space {
	if len(s.Comments) == 0 {
		return s
	}
	out := make([]Comment, len(s.Comments))
	for i, c := range s.Comments {
		out[i] = fn(i, c)
	}
	return Space{Whitespace: s.Whitespace, Comments: out}
}

// HasNewline reports whether the whitespace before the first comment contains a line break.
func (s Space) HasNewline() bool {
	return strings.ContainsRune(s.Whitespace, '\n')
}

// AnyNewline reports whether any whitespace in s, including comment suffixes, breaks a line.
func (s Space) AnyNewline() bool {
	if s.HasNewline() {
		return true
	}
	for _, c := range s.Comments {
		if strings.ContainsRune(c.Suffix, '\n') || c.Kind == LineComment {
			return true
		}
	}
	return false
}

// LastWhitespace is the whitespace that directly precedes the next token.
func (s Space) LastWhitespace() string {
	if n := len(s.Comments); n > 0 {
		return s.Comments[n-1].Suffix
	}
	return s.Whitespace
}

// WithLastWhitespace replaces the whitespace directly preceding the next token.
func (s Space) WithLastWhitespace(ws string) Space {
	n := len(s.Comments)
	if n == 0 {
		return s.WithWhitespace(ws)
	}
	if s.Comments[n-1].Suffix == ws {
		return s
	}
	comments := make([]Comment, n)
	copy(comments, s.Comments)
	comments[n-1].Suffix = ws
	return Space{Whitespace: s.Whitespace, Comments: comments}
}

// Indent returns the text after the last line break of the whitespace
// preceding the next token, or "" when that whitespace has no line break.
func (s Space) Indent() string {
	return IndentOf(s.LastWhitespace())
}

// IndentOf returns the text following the last newline of ws.
func IndentOf(ws string) string {
	idx := strings.LastIndexByte(ws, '\n')
	if idx < 0 {
		return ""
	}
	return ws[idx+1:]
}

// Concat appends other after s, as if the two runs of trivia were adjacent in source.
func (s Space) Concat(other Space) Space {
	if other.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return other
	}
	if len(s.Comments) == 0 {
		return Space{Whitespace: s.Whitespace + other.Whitespace, Comments: other.Comments}
	}
	comments := make([]Comment, 0, len(s.Comments)+len(other.Comments))
	comments = append(comments, s.Comments...)
	comments[len(comments)-1].Suffix += other.Whitespace
	comments = append(comments, other.Comments...)
	return Space{Whitespace: s.Whitespace, Comments: comments}
}

// NewlineCount counts the line breaks in ws.
func NewlineCount(ws string) int {
	return strings.Count(ws, "\n")
}
