package format

import (
	"github.com/dhamidi/lst/java/style"
	"github.com/dhamidi/lst/java/tree"
)

// NewTrailingCommaVisitor adds or removes the comma after the last element
// of array initializers and enum constant lists. Commas are only added to
// lists whose closing delimiter starts its own line. With the setting unset
// the visitor changes nothing.
func NewTrailingCommaVisitor(s style.OtherStyle, opts ...Option) tree.Visitor {
	if s.UseTrailingComma == nil {
		return tree.VisitorFuncs{}
	}
	o := newOptions(opts)
	use := *s.UseTrailingComma
	return o.wrap(tree.VisitorFuncs{
		Post: func(t tree.Tree, c *tree.Cursor) tree.Tree {
			switch n := t.(type) {
			case *tree.NewArray:
				if n.Initializer == nil {
					return n
				}
				elems, changed := trailingComma(use, n.Initializer.Elements, tree.EmptySpace)
				if !changed {
					return n
				}
				init := n.Initializer.WithElements(elems)
				out := *n
				out.Initializer = &init
				return &out
			case *tree.Block:
				if cd, ok := c.ParentTree().(*tree.ClassDeclaration); ok && cd.Kind == tree.KindEnum {
					return enumTrailingComma(use, n)
				}
			}
			return t
		},
	})
}

// TrailingComma runs NewTrailingCommaVisitor over t.
func TrailingComma[T tree.Tree](t T, s style.OtherStyle, opts ...Option) T {
	return apply(NewTrailingCommaVisitor(s, opts...), t, nil)
}

func enumTrailingComma(use bool, body *tree.Block) tree.Tree {
	if len(body.Statements) == 0 {
		return body
	}
	set, ok := body.Statements[0].Element.(*tree.EnumValueSet)
	if !ok {
		return body
	}
	closer := tree.EmptySpace
	if !set.TerminatedWithSemicolon {
		closer = body.End
	}
	enums, changed := trailingComma(use, set.Enums, closer)
	if !changed {
		return body
	}
	next := *set
	next.Enums = enums
	out := *body
	out.Statements = append([]tree.RightPadded[tree.Statement]{body.Statements[0].WithElement(&next)}, body.Statements[1:]...)
	return &out
}

// trailingComma adds or removes the trailing comma of list. closer is any
// space between the last element's padding and the closing delimiter that
// the list itself does not own.
func trailingComma[T tree.Tree](use bool, list []tree.RightPadded[T], closer tree.Space) ([]tree.RightPadded[T], bool) {
	if len(list) == 0 {
		return list, false
	}
	last := list[len(list)-1]
	tc, has := tree.FindMarker[tree.TrailingComma](last.Markers)
	switch {
	case !use && has:
		last.Markers = tree.RemoveMarkers[tree.TrailingComma](last.Markers)
		last.After = last.After.Concat(tc.Suffix)
	case use && !has:
		if _, empty := tree.Tree(last.Element).(*tree.Empty); empty {
			return list, false
		}
		before := last.After.Concat(closer)
		if !before.HasNewline() || len(before.Comments) > 0 {
			return list, false
		}
		last.Markers = last.Markers.Add(tree.TrailingComma{ID: tree.NewID(), Suffix: last.After})
		last.After = tree.EmptySpace
	default:
		return list, false
	}
	out := make([]tree.RightPadded[T], len(list))
	copy(out, list)
	out[len(out)-1] = last
	return out, true
}
