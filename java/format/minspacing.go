package format

import (
	"strconv"
	"strings"

	"github.com/dhamidi/lst/java/printer"
	"github.com/dhamidi/lst/java/tree"
)

// NewMinimumViableSpacingVisitor inserts the whitespace without which the
// printed source would not lex back into the same tokens: a space between
// two words, between "+" and "+", and a line break after a line comment
// that is followed by more code. Nothing else is touched. The work happens
// once the root of the walk has been visited, over the printed text of the
// whole tree.
func NewMinimumViableSpacingVisitor(opts ...Option) tree.Visitor {
	o := newOptions(opts)
	depth := 0
	return tree.VisitorFuncs{
		Pre: func(t tree.Tree, _ *tree.Cursor) tree.Tree {
			depth++
			return t
		},
		Post: func(t tree.Tree, _ *tree.Cursor) tree.Tree {
			depth--
			if depth > 0 {
				return t
			}
			return minimumSpacing(t, o.stopAfter)
		},
	}
}

// MinimumViableSpacing runs NewMinimumViableSpacingVisitor over t.
func MinimumViableSpacing[T tree.Tree](t T, opts ...Option) T {
	return apply(NewMinimumViableSpacingVisitor(opts...), t, nil)
}

// gap is a whitespace run that may have to separate two tokens. lineEnd is
// set for the suffix of a line comment.
type gap struct {
	offset  int
	lineEnd bool
}

const (
	gapOpen  = '\x01'
	gapClose = '\x02'
)

func gapMark(k int) string {
	return string(gapOpen) + strconv.Itoa(k) + string(gapClose)
}

// eachGap calls fn for every empty whitespace run of t and every line
// comment suffix without a line break, numbering them in a fixed order.
func eachGap[T tree.Tree](t T, fn func(k int, ws string, lineEnd bool) string) T {
	k := 0
	next := func(ws string, lineEnd bool) string {
		k++
		return fn(k-1, ws, lineEnd)
	}
	return tree.MapAllSpaces(t, func(s tree.Space, _ tree.SpaceLoc) tree.Space {
		if s.Whitespace == "" {
			s = s.WithWhitespace(next("", false))
		}
		return s.MapComments(func(_ int, c tree.Comment) tree.Comment {
			switch {
			case c.Kind == tree.LineComment && !strings.Contains(c.Suffix, "\n"):
				return c.WithSuffix(next(c.Suffix, true))
			case c.Suffix == "":
				return c.WithSuffix(next("", false))
			}
			return c
		})
	})
}

// minimumSpacing marks every gap of t, prints the marked tree and decides
// from the neighbouring characters which gaps need a separator.
func minimumSpacing(t tree.Tree, stop tree.Tree) tree.Tree {
	lineEnds := make(map[int]bool)
	marked := eachGap(t, func(k int, ws string, lineEnd bool) string {
		lineEnds[k] = lineEnd
		return gapMark(k) + ws
	})
	text, offsets := printer.PrintWithOffsets(marked)
	limit := len(text)
	if !tree.IsNil(stop) {
		if end, ok := nodeEnd(marked, tree.IDOf(stop), offsets); ok {
			limit = end
		}
	}

	gaps, clean := scanGaps(text, limit)
	for k, g := range gaps {
		g.lineEnd = lineEnds[k]
		gaps[k] = g
	}
	need := make(map[int]bool)
	seen := make(map[int]bool)
	for k, g := range gaps {
		if g.lineEnd && strings.TrimSpace(clean[g.offset:]) != "" {
			need[k] = true
			seen[g.offset] = true
		}
	}
	for k, g := range gaps {
		if g.lineEnd || seen[g.offset] {
			continue
		}
		seen[g.offset] = true
		if g.offset > 0 && g.offset < len(clean) && fuses(clean[g.offset-1], clean[g.offset]) {
			need[k] = true
		}
	}
	if len(need) == 0 {
		return t
	}
	log.Debugf("inserting %d separators", len(need))
	return eachGap(t, func(k int, ws string, lineEnd bool) string {
		if !need[k] {
			return ws
		}
		if lineEnd {
			return "\n"
		}
		return " "
	})
}

// scanGaps strips the gap marks from text and returns where each gap ended
// up in the stripped text. Gaps at or beyond limit are dropped. The
// returned gaps carry offsets only.
func scanGaps(text string, limit int) (map[int]gap, string) {
	gaps := make(map[int]gap)
	var clean strings.Builder
	for i := 0; i < len(text); i++ {
		if text[i] != gapOpen {
			clean.WriteByte(text[i])
			continue
		}
		end := strings.IndexByte(text[i:], gapClose)
		if end < 0 {
			clean.WriteString(text[i:])
			break
		}
		k, err := strconv.Atoi(text[i+1 : i+end])
		if err == nil && i < limit {
			gaps[k] = gap{offset: clean.Len()}
		}
		i += end
	}
	return gaps, clean.String()
}

// nodeEnd returns the offset just past the last token of the node with id.
func nodeEnd(t tree.Tree, id tree.ID, offsets map[tree.ID]int) (int, bool) {
	start, ok := offsets[id]
	if !ok {
		return 0, false
	}
	var node tree.Tree
	tree.Inspect(t, func(n tree.Tree, _ *tree.Cursor) bool {
		if node != nil {
			return false
		}
		if tree.IDOf(n) == id {
			node = n
			return false
		}
		return true
	})
	if node == nil {
		return 0, false
	}
	return start + len(printer.Print(tree.WithPrefix(node, tree.EmptySpace))), true
}

func isWordByte(b byte) bool {
	return b == '_' || b == '$' || b >= 0x80 ||
		'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || '0' <= b && b <= '9'
}

// fuses reports whether a and b lex as a different token sequence when
// written next to each other.
func fuses(a, b byte) bool {
	switch {
	case isWordByte(a) && isWordByte(b):
		return true
	case a == '+' && b == '+', a == '-' && b == '-':
		return true
	case a == '/' && (b == '/' || b == '*'):
		return true
	}
	return false
}
