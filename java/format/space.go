package format

import (
	"strings"

	"github.com/dhamidi/lst/java/tree"
)

func sameSpace(a, b tree.Space) bool {
	if a.Whitespace != b.Whitespace || len(a.Comments) != len(b.Comments) {
		return false
	}
	for i := range a.Comments {
		ca, cb := a.Comments[i], b.Comments[i]
		if ca.Kind != cb.Kind || ca.Text != cb.Text || ca.Suffix != cb.Suffix {
			return false
		}
	}
	return true
}

// spaceOrNot makes s a single space or nothing. Spaces that hold comments or
// break a line are left alone.
func spaceOrNot(s tree.Space, want bool) tree.Space {
	if len(s.Comments) > 0 || s.HasNewline() {
		return s
	}
	if want {
		return s.WithWhitespace(" ")
	}
	return s.WithWhitespace("")
}

// newlineBefore makes sure the token following s starts a line. A leading
// comment that fits on one line may stay at the end of the previous line;
// one that spans lines is moved onto a line of its own.
func newlineBefore(s tree.Space) tree.Space {
	if s.HasNewline() {
		return s
	}
	if len(s.Comments) > 0 && !s.Comments[0].Multiline() && s.AnyNewline() {
		return s
	}
	return s.WithWhitespace("\n")
}

// joinLine pulls the token following s up onto the previous line.
func joinLine(s tree.Space) tree.Space {
	if len(s.Comments) > 0 || !s.HasNewline() {
		return s
	}
	return s.WithWhitespace(" ")
}

// updatePrefix applies fn to the prefix of t, returning t itself when
// nothing changed.
func updatePrefix[T tree.Tree](t T, fn func(tree.Space) tree.Space) T {
	if tree.IsNil(t) {
		return t
	}
	old := tree.PrefixOf(t)
	s := fn(old)
	if sameSpace(old, s) {
		return t
	}
	return tree.WithPrefix(t, s)
}

func prefixOrNot[T tree.Tree](t T, want bool) T {
	return updatePrefix(t, func(s tree.Space) tree.Space { return spaceOrNot(s, want) })
}

// mapSpaces is tree.MapSpaces that returns t itself when fn changes nothing.
func mapSpaces[T tree.Tree](t T, fn func(tree.Space, tree.SpaceLoc) tree.Space) T {
	changed := false
	out := tree.MapSpaces(t, func(s tree.Space, loc tree.SpaceLoc) tree.Space {
		r := fn(s, loc)
		if !sameSpace(s, r) {
			changed = true
		}
		return r
	})
	if !changed {
		return t
	}
	return out
}

// mapWhitespace applies fn to every whitespace run of s: the leading
// whitespace and each comment suffix.
func mapWhitespace(s tree.Space, fn func(ws string) string) tree.Space {
	out := s.WithWhitespace(fn(s.Whitespace))
	return out.MapComments(func(_ int, c tree.Comment) tree.Comment {
		return c.WithSuffix(fn(c.Suffix))
	})
}

// clampNewlines keeps the number of blank lines in ws between lo and hi.
// A run without line breaks is only touched when lo forces one.
func clampNewlines(ws string, lo, hi int) string {
	n := strings.Count(ws, "\n")
	switch {
	case n == 0 && lo <= 0:
		return ws
	case n > hi+1:
		first := strings.IndexByte(ws, '\n')
		return ws[:first] + strings.Repeat("\n", hi+1) + tree.IndentOf(ws)
	case n < lo+1:
		first := strings.IndexByte(ws, '\n')
		if first < 0 {
			return strings.Repeat("\n", lo+1) + ws
		}
		return ws[:first+1] + strings.Repeat("\n", lo+1-n) + ws[first+1:]
	}
	return ws
}

// blankLines clamps the blank lines that precede the token after s. When s
// starts with a comment trailing the previous line, the blank lines sit in
// that comment's suffix.
func blankLines(s tree.Space, lo, hi int) tree.Space {
	if len(s.Comments) > 0 && !s.HasNewline() {
		first := s.Comments[0]
		if first.Kind != tree.LineComment && !strings.Contains(first.Suffix, "\n") {
			return s
		}
		return s.MapComments(func(i int, c tree.Comment) tree.Comment {
			if i != 0 {
				return c
			}
			return c.WithSuffix(clampNewlines(c.Suffix, lo, hi))
		})
	}
	return s.WithWhitespace(clampNewlines(s.Whitespace, lo, hi))
}

// trimLineEnds drops blanks that end a line of ws.
func trimLineEnds(ws string) string {
	if !strings.Contains(ws, "\n") {
		return ws
	}
	lines := strings.Split(ws, "\n")
	for i := 0; i < len(lines)-1; i++ {
		lines[i] = trimBlanks(lines[i])
	}
	return strings.Join(lines, "\n")
}

// trimBlanks drops trailing spaces and tabs from a single line, keeping a
// final carriage return.
func trimBlanks(line string) string {
	cr := strings.HasSuffix(line, "\r")
	line = strings.TrimRight(strings.TrimSuffix(line, "\r"), " \t")
	if cr {
		line += "\r"
	}
	return line
}

// updateLead applies fn to the space before the first token of s. An enum
// constant list starts at its first constant.
func updateLead(s tree.Statement, fn func(tree.Space) tree.Space) tree.Statement {
	set, ok := s.(*tree.EnumValueSet)
	if !ok || len(set.Enums) == 0 {
		return updatePrefix(s, fn)
	}
	first := set.Enums[0]
	ev := updatePrefix(first.Element, fn)
	if ev == first.Element {
		return set
	}
	out := *set
	out.Enums = append([]tree.RightPadded[*tree.EnumValue]{first.WithElement(ev)}, set.Enums[1:]...)
	return &out
}

// mapStatements applies fn to each statement, reporting whether any was
// replaced.
func mapStatements(stmts []tree.RightPadded[tree.Statement], fn func(i int, s tree.Statement) tree.Statement) ([]tree.RightPadded[tree.Statement], bool) {
	changed := false
	out := tree.MapRight(stmts, func(i int, rp tree.RightPadded[tree.Statement]) tree.RightPadded[tree.Statement] {
		e := fn(i, rp.Element)
		if e != rp.Element {
			changed = true
		}
		return rp.WithElement(e)
	})
	if !changed {
		return stmts, false
	}
	return out, true
}
