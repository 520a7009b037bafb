package format

import (
	"strings"

	"github.com/dhamidi/lst/java/printer"
	"github.com/dhamidi/lst/java/style"
	"github.com/dhamidi/lst/java/tree"
)

// NewWrappingAndBracesVisitor decides which tokens start a new line:
// statements and closing braces, wrapped annotations, the keywords that
// continue a statement and opening braces.
func NewWrappingAndBracesVisitor(s style.WrappingAndBracesStyle, opts ...Option) tree.Visitor {
	o := newOptions(opts)
	v := wrappingVisitor{style: s}
	return o.wrap(tree.VisitorFuncs{Post: v.post})
}

// WrappingAndBraces runs NewWrappingAndBracesVisitor over t.
func WrappingAndBraces[T tree.Tree](t T, s style.WrappingAndBracesStyle, opts ...Option) T {
	return apply(NewWrappingAndBracesVisitor(s, opts...), t, nil)
}

type wrappingVisitor struct {
	style style.WrappingAndBracesStyle
}

func (v wrappingVisitor) post(t tree.Tree, c *tree.Cursor) tree.Tree {
	switch n := t.(type) {
	case *tree.CompilationUnit:
		return v.unit(n)
	case *tree.Block:
		return v.block(n, c.ParentTree())
	case *tree.Case:
		if n.Rule {
			return n
		}
		stmts, changed := mapStatements(n.Statements, func(_ int, s tree.Statement) tree.Statement {
			return updateLead(s, newlineBefore)
		})
		if !changed {
			return n
		}
		out := *n
		out.Statements = stmts
		return &out
	case *tree.ClassDeclaration:
		return v.classAnnotations(n)
	case *tree.MethodDeclaration:
		return v.methodAnnotations(n)
	case *tree.VariableDeclarations:
		return v.variableAnnotations(n, c)
	case *tree.If:
		if n.ElsePart == nil {
			return n
		}
		_, block := n.ThenPart.Element.(*tree.Block)
		e := updatePrefix(n.ElsePart, v.keyword(v.style.IfStatement.ElseOnNewLine, block))
		if e == n.ElsePart {
			return n
		}
		out := *n
		out.ElsePart = e
		return &out
	case *tree.Try:
		return v.try(n)
	case *tree.DoWhileLoop:
		_, block := n.Body.Element.(*tree.Block)
		before := v.keyword(v.style.DoWhileStatement.WhileOnNewLine, block)(n.Condition.Before)
		if sameSpace(before, n.Condition.Before) {
			return n
		}
		out := *n
		out.Condition = n.Condition.WithBefore(before)
		return &out
	}
	return t
}

// keyword places a keyword that continues a statement, such as "else",
// either on its own line or right after the closing brace before it.
func (v wrappingVisitor) keyword(onNewLine, afterBlock bool) func(tree.Space) tree.Space {
	return func(s tree.Space) tree.Space {
		switch {
		case onNewLine:
			return newlineBefore(s)
		case afterBlock:
			return joinLine(s)
		}
		return s
	}
}

func (v wrappingVisitor) unit(n *tree.CompilationUnit) tree.Tree {
	out := *n
	changed := false
	leading := n.Package != nil
	out.Imports = tree.MapRight(n.Imports, func(i int, rp tree.RightPadded[*tree.Import]) tree.RightPadded[*tree.Import] {
		if i == 0 && !leading {
			return rp
		}
		imp := updatePrefix(rp.Element, newlineBefore)
		changed = changed || imp != rp.Element
		return rp.WithElement(imp)
	})
	leading = leading || len(n.Imports) > 0
	classes := make([]*tree.ClassDeclaration, len(n.Classes))
	for i, cd := range n.Classes {
		if i > 0 || leading {
			next := updatePrefix(cd, newlineBefore)
			changed = changed || next != cd
			cd = next
		}
		classes[i] = cd
	}
	out.Classes = classes
	if !changed {
		return n
	}
	return &out
}

// braces returns the placement of the opening brace of a block whose
// parent is parent, or "" when the brace position is not a style concern.
func (v wrappingVisitor) braces(parent tree.Tree) style.BracePlacement {
	switch parent.(type) {
	case *tree.ClassDeclaration, *tree.NewClass, *tree.EnumValue:
		return v.style.Braces.ClassDeclaration
	case *tree.MethodDeclaration:
		return v.style.Braces.MethodDeclaration
	case *tree.If, *tree.Else, *tree.WhileLoop, *tree.DoWhileLoop, *tree.ForLoop,
		*tree.ForEachLoop, *tree.Try, *tree.Catch, *tree.Switch, *tree.Synchronized,
		*tree.Lambda, *tree.Case:
		return v.style.Braces.Other
	}
	return ""
}

func (v wrappingVisitor) keepOneLine(parent tree.Tree) bool {
	keep := v.style.KeepWhenFormatting
	switch parent.(type) {
	case *tree.Lambda:
		return keep.SimpleLambdasInOneLine
	case *tree.MethodDeclaration:
		return keep.SimpleMethodsInOneLine
	case *tree.ClassDeclaration, *tree.NewClass, *tree.EnumValue:
		return keep.SimpleClassesInOneLine
	}
	return keep.SimpleBlocksInOneLine
}

func oneLine(b *tree.Block) bool {
	return !strings.Contains(printer.Print(tree.WithPrefix(b, tree.EmptySpace)), "\n")
}

func (v wrappingVisitor) block(n *tree.Block, parent tree.Tree) tree.Tree {
	var out tree.Tree = n
	switch v.braces(parent) {
	case style.EndOfLine:
		out = updatePrefix(n, joinLine)
	case style.NextLine:
		out = updatePrefix(n, newlineBefore)
	}
	if v.keepOneLine(parent) && oneLine(n) {
		return out
	}
	b := out.(*tree.Block)
	stmts, changed := mapStatements(b.Statements, func(_ int, s tree.Statement) tree.Statement {
		return updateLead(s, newlineBefore)
	})
	end := newlineBefore(b.End)
	if !changed && sameSpace(end, b.End) {
		return b
	}
	next := *b
	next.Statements = stmts
	next.End = end
	return &next
}

func (v wrappingVisitor) try(n *tree.Try) tree.Tree {
	ts := v.style.TryStatement
	out := *n
	changed := false
	catches := make([]*tree.Catch, len(n.Catches))
	for i, c := range n.Catches {
		catches[i] = updatePrefix(c, v.keyword(ts.CatchOnNewLine, true))
		changed = changed || catches[i] != c
	}
	out.Catches = catches
	if n.Finally != nil {
		before := v.keyword(ts.FinallyOnNewLine, true)(n.Finally.Before)
		if !sameSpace(before, n.Finally.Before) {
			f := n.Finally.WithBefore(before)
			out.Finally = &f
			changed = true
		}
	}
	if !changed {
		return n
	}
	return &out
}

// wrapAnnotations breaks the line between consecutive annotations.
func wrapAnnotations(list []*tree.Annotation) ([]*tree.Annotation, bool) {
	if len(list) < 2 {
		return list, false
	}
	out := make([]*tree.Annotation, len(list))
	changed := false
	for i, a := range list {
		if i > 0 {
			a = updatePrefix(a, newlineBefore)
			changed = changed || a != list[i]
		}
		out[i] = a
	}
	if !changed {
		return list, false
	}
	return out, true
}

func breakFirstModifier(mods []*tree.Modifier) ([]*tree.Modifier, bool) {
	if len(mods) == 0 {
		return mods, false
	}
	first := updatePrefix(mods[0], newlineBefore)
	if first == mods[0] {
		return mods, false
	}
	return append([]*tree.Modifier{first}, mods[1:]...), true
}

func (v wrappingVisitor) classAnnotations(n *tree.ClassDeclaration) tree.Tree {
	if v.style.ClassAnnotations != style.WrapAlways || len(n.LeadingAnnotations) == 0 {
		return n
	}
	out := *n
	anns, changed := wrapAnnotations(n.LeadingAnnotations)
	out.LeadingAnnotations = anns
	if mods, ok := breakFirstModifier(n.Modifiers); len(n.Modifiers) > 0 {
		out.Modifiers = mods
		changed = changed || ok
	} else {
		out.KindPrefix = newlineBefore(n.KindPrefix)
		changed = changed || !sameSpace(out.KindPrefix, n.KindPrefix)
	}
	if !changed {
		return n
	}
	return &out
}

func (v wrappingVisitor) methodAnnotations(n *tree.MethodDeclaration) tree.Tree {
	if v.style.MethodAnnotations != style.WrapAlways || len(n.LeadingAnnotations) == 0 {
		return n
	}
	out := *n
	anns, changed := wrapAnnotations(n.LeadingAnnotations)
	out.LeadingAnnotations = anns
	switch {
	case len(n.Modifiers) > 0:
		mods, ok := breakFirstModifier(n.Modifiers)
		out.Modifiers = mods
		changed = changed || ok
	case n.TypeParameters != nil:
		before := newlineBefore(n.TypeParameters.Before)
		if !sameSpace(before, n.TypeParameters.Before) {
			tp := n.TypeParameters.WithBefore(before)
			out.TypeParameters = &tp
			changed = true
		}
	case n.ReturnType != nil:
		out.ReturnType = updatePrefix(n.ReturnType, newlineBefore)
		changed = changed || out.ReturnType != n.ReturnType
	default:
		out.Name = updatePrefix(n.Name, newlineBefore)
		changed = changed || out.Name != n.Name
	}
	if !changed {
		return n
	}
	return &out
}

func (v wrappingVisitor) variableAnnotations(n *tree.VariableDeclarations, c *tree.Cursor) tree.Tree {
	if len(n.LeadingAnnotations) == 0 {
		return n
	}
	var wrap style.WrapStyle
	switch c.ParentTree().(type) {
	case *tree.Block:
		switch c.Parent().ParentTree().(type) {
		case *tree.ClassDeclaration, *tree.NewClass, *tree.EnumValue:
			wrap = v.style.FieldAnnotations
		default:
			wrap = v.style.LocalVariableAnnotations
		}
	case *tree.Case:
		wrap = v.style.LocalVariableAnnotations
	}
	if wrap != style.WrapAlways {
		return n
	}
	out := *n
	anns, changed := wrapAnnotations(n.LeadingAnnotations)
	out.LeadingAnnotations = anns
	if len(n.Modifiers) > 0 {
		mods, ok := breakFirstModifier(n.Modifiers)
		out.Modifiers = mods
		changed = changed || ok
	} else if n.TypeExpression != nil {
		out.TypeExpression = updatePrefix(n.TypeExpression, newlineBefore)
		changed = changed || out.TypeExpression != n.TypeExpression
	}
	if !changed {
		return n
	}
	return &out
}
