package format

import (
	"github.com/dhamidi/lst/java/style"
	"github.com/dhamidi/lst/java/tree"
)

// NewBlankLinesVisitor keeps the number of blank lines between
// declarations and statements within the bounds of the style.
func NewBlankLinesVisitor(s style.BlankLinesStyle, opts ...Option) tree.Visitor {
	o := newOptions(opts)
	v := blankLinesVisitor{style: s}
	return o.wrap(tree.VisitorFuncs{Post: v.post})
}

// BlankLines runs NewBlankLinesVisitor over t.
func BlankLines[T tree.Tree](t T, s style.BlankLinesStyle, opts ...Option) T {
	return apply(NewBlankLinesVisitor(s, opts...), t, nil)
}

type blankLinesVisitor struct {
	style style.BlankLinesStyle
}

func (v blankLinesVisitor) post(t tree.Tree, c *tree.Cursor) tree.Tree {
	switch n := t.(type) {
	case *tree.CompilationUnit:
		return v.unit(n)
	case *tree.Block:
		return v.block(n, c.ParentTree())
	case *tree.Case:
		stmts, changed := clampStatements(n.Statements, func(int, tree.Statement) (int, int) {
			return 0, v.style.KeepMaximum.InCode
		})
		if !changed {
			return n
		}
		out := *n
		out.Statements = stmts
		return &out
	}
	return t
}

func clampPrefix[T tree.Tree](t T, lo, hi int) T {
	return updatePrefix(t, func(s tree.Space) tree.Space { return blankLines(s, lo, hi) })
}

func (v blankLinesVisitor) unit(n *tree.CompilationUnit) tree.Tree {
	keep := v.style.KeepMaximum
	least := v.style.Minimum
	out := *n

	out.Prefix = v.header(n)
	hasPackage := n.Package != nil
	out.Imports = tree.MapRight(n.Imports, func(i int, rp tree.RightPadded[*tree.Import]) tree.RightPadded[*tree.Import] {
		lo := 0
		if i == 0 && hasPackage {
			lo = max(least.AfterPackage, least.BeforeImports)
		}
		return rp.WithElement(clampPrefix(rp.Element, lo, keep.InDeclarations))
	})
	classes := make([]*tree.ClassDeclaration, len(n.Classes))
	for i, cd := range n.Classes {
		switch {
		case i > 0:
			cd = clampPrefix(cd, least.AroundClass, keep.InDeclarations)
		case len(n.Imports) > 0:
			cd = clampPrefix(cd, least.AfterImports, keep.InDeclarations)
		case hasPackage:
			cd = clampPrefix(cd, least.AfterPackage, keep.InDeclarations)
		}
		classes[i] = cd
	}
	out.Classes = classes
	out.EOF = blankLines(n.EOF, 0, 0)
	return &out
}

// header removes leading blank lines and bounds the gap between a license
// header and the package declaration.
func (v blankLinesVisitor) header(n *tree.CompilationUnit) tree.Space {
	s := n.Prefix.WithWhitespace("")
	if len(s.Comments) == 0 {
		return s
	}
	lo := 0
	if n.Package != nil {
		lo = v.style.Minimum.BeforePackage
	}
	return s.WithLastWhitespace(clampNewlines(s.LastWhitespace(), lo, v.style.KeepMaximum.BetweenHeaderAndPackage))
}

func (v blankLinesVisitor) block(n *tree.Block, parent tree.Tree) tree.Tree {
	keep := v.style.KeepMaximum
	least := v.style.Minimum
	var bounds func(i int, s tree.Statement) (int, int)
	endMin := 0
	switch p := parent.(type) {
	case *tree.ClassDeclaration:
		iface := p.Kind == tree.KindInterface || p.Kind == tree.KindAnnotation
		bounds = v.memberBounds(n, least.AfterClassHeader, iface)
		if len(n.Statements) > 0 {
			endMin = least.BeforeClassEnd
		}
	case *tree.NewClass, *tree.EnumValue:
		bounds = v.memberBounds(n, least.AfterAnonymousClassHeader, false)
	case *tree.MethodDeclaration:
		bounds = func(i int, _ tree.Statement) (int, int) {
			if i == 0 {
				return least.BeforeMethodBody, keep.InCode
			}
			return 0, keep.InCode
		}
	default:
		bounds = func(int, tree.Statement) (int, int) { return 0, keep.InCode }
	}

	stmts, changed := clampStatements(n.Statements, bounds)
	end := blankLines(n.End, endMin, keep.BeforeEndOfBlock)
	if !changed && sameSpace(end, n.End) {
		return n
	}
	out := *n
	out.Statements = stmts
	out.End = end
	return &out
}

func (v blankLinesVisitor) memberBounds(body *tree.Block, first int, iface bool) func(int, tree.Statement) (int, int) {
	hi := v.style.KeepMaximum.InDeclarations
	return func(i int, s tree.Statement) (int, int) {
		if i == 0 {
			if _, ok := s.(*tree.EnumValueSet); ok {
				return 0, hi
			}
			return first, hi
		}
		prev := body.Statements[i-1].Element
		return max(v.around(prev, iface), v.around(s, iface)), hi
	}
}

func (v blankLinesVisitor) around(s tree.Statement, iface bool) int {
	least := v.style.Minimum
	switch s.(type) {
	case *tree.MethodDeclaration:
		if iface {
			return least.AroundMethodInInterface
		}
		return least.AroundMethod
	case *tree.VariableDeclarations:
		if iface {
			return least.AroundFieldInInterface
		}
		return least.AroundField
	case *tree.ClassDeclaration:
		return least.AroundClass
	case *tree.Block:
		return least.AroundInitializer
	}
	return 0
}

// clampStatements bounds the blank lines before each statement.
func clampStatements(stmts []tree.RightPadded[tree.Statement], bounds func(int, tree.Statement) (int, int)) ([]tree.RightPadded[tree.Statement], bool) {
	return mapStatements(stmts, func(i int, s tree.Statement) tree.Statement {
		lo, hi := bounds(i, s)
		return updateLead(s, func(sp tree.Space) tree.Space { return blankLines(sp, lo, hi) })
	})
}
