package format

import (
	"strings"

	"github.com/dhamidi/lst/java/style"
	"github.com/dhamidi/lst/java/tree"
)

// NewRemoveTrailingWhitespaceVisitor removes blanks at the end of every
// line, inside comments as well as between tokens.
func NewRemoveTrailingWhitespaceVisitor(opts ...Option) tree.Visitor {
	o := newOptions(opts)
	return o.wrap(tree.VisitorFuncs{
		Post: func(t tree.Tree, _ *tree.Cursor) tree.Tree {
			return mapSpaces(t, trimTrailing)
		},
	})
}

// RemoveTrailingWhitespace runs NewRemoveTrailingWhitespaceVisitor over t.
func RemoveTrailingWhitespace[T tree.Tree](t T, opts ...Option) T {
	return apply(NewRemoveTrailingWhitespaceVisitor(opts...), t, nil)
}

func trimTrailing(s tree.Space, loc tree.SpaceLoc) tree.Space {
	out := mapWhitespace(s, trimLineEnds)
	out = out.MapComments(func(_ int, c tree.Comment) tree.Comment {
		switch {
		case c.Kind == tree.LineComment:
			return c.WithText(trimBlanks(c.Text))
		case c.Multiline():
			return c.WithText(trimLineEnds(c.Text))
		}
		return c
	})
	if loc == tree.LocEOF {
		out = out.WithLastWhitespace(trimBlanks(out.LastWhitespace()))
	}
	return out
}

// NewNormalizeTabsOrSpacesVisitor rewrites the indentation at the start of
// each line so it uses only tabs or only spaces, as the style asks, without
// changing its width.
func NewNormalizeTabsOrSpacesVisitor(s style.TabsAndIndentsStyle, opts ...Option) tree.Visitor {
	o := newOptions(opts)
	normalize := func(ws string) string { return reindent(s, ws) }
	return o.wrap(tree.VisitorFuncs{
		Post: func(t tree.Tree, _ *tree.Cursor) tree.Tree {
			return mapSpaces(t, func(sp tree.Space, _ tree.SpaceLoc) tree.Space {
				sp = mapWhitespace(sp, normalize)
				return sp.MapComments(func(_ int, c tree.Comment) tree.Comment {
					if !c.Multiline() {
						return c
					}
					return c.WithText(normalize(c.Text))
				})
			})
		},
	})
}

// NormalizeTabsOrSpaces runs NewNormalizeTabsOrSpacesVisitor over t.
func NormalizeTabsOrSpaces[T tree.Tree](t T, s style.TabsAndIndentsStyle, opts ...Option) T {
	return apply(NewNormalizeTabsOrSpacesVisitor(s, opts...), t, nil)
}

// reindent re-renders the blanks that follow each line break of text.
func reindent(s style.TabsAndIndentsStyle, text string) string {
	if !strings.Contains(text, "\n") {
		return text
	}
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		line := lines[i]
		j := 0
		for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
			j++
		}
		if j == 0 {
			continue
		}
		lines[i] = s.Render(s.Width(line[:j])) + line[j:]
	}
	return strings.Join(lines, "\n")
}
