package format

import (
	"github.com/dhamidi/lst/java/style"
	"github.com/dhamidi/lst/java/tree"
)

// NewSpacesVisitor sets the spaces between tokens that share a line. Line
// breaks and comments are never touched: a space that holds either is left
// as written.
func NewSpacesVisitor(s style.SpacesStyle, opts ...Option) tree.Visitor {
	o := newOptions(opts)
	v := spacesVisitor{style: s}
	return o.wrap(tree.VisitorFuncs{Post: v.post})
}

// Spaces runs NewSpacesVisitor over t.
func Spaces[T tree.Tree](t T, s style.SpacesStyle, opts ...Option) T {
	return apply(NewSpacesVisitor(s, opts...), t, nil)
}

type spacesVisitor struct {
	style style.SpacesStyle
}

// listSpacing describes the spaces of a separated list: open after the
// opening delimiter, close before the closing one, and the spaces around
// each separator. empty applies to a list without elements.
type listSpacing struct {
	open, close, empty  bool
	beforeSep, afterSep bool
}

func delimited(inside, empty, beforeSep, afterSep bool) listSpacing {
	return listSpacing{open: inside, close: inside, empty: empty, beforeSep: beforeSep, afterSep: afterSep}
}

// afterKeyword is a list introduced by a keyword and closed by whatever
// follows, like an implements clause.
func afterKeyword(beforeSep, afterSep bool) listSpacing {
	return listSpacing{open: true, beforeSep: beforeSep, afterSep: afterSep}
}

func isEmpty(t tree.Tree) bool {
	_, ok := t.(*tree.Empty)
	return ok
}

func spaceList[T tree.Tree](elems []tree.RightPadded[T], ls listSpacing) []tree.RightPadded[T] {
	n := len(elems)
	if n == 1 && isEmpty(elems[0].Element) {
		rp := elems[0]
		rp.Element = prefixOrNot(rp.Element, ls.empty)
		rp.After = spaceOrNot(rp.After, false)
		return []tree.RightPadded[T]{rp}
	}
	return tree.MapRight(elems, func(i int, rp tree.RightPadded[T]) tree.RightPadded[T] {
		if i == 0 {
			rp.Element = prefixOrNot(rp.Element, ls.open)
		} else {
			rp.Element = prefixOrNot(rp.Element, ls.afterSep)
		}
		if i < n-1 {
			rp.After = spaceOrNot(rp.After, ls.beforeSep)
			return rp
		}
		if tc, ok := tree.FindMarker[tree.TrailingComma](rp.Markers); ok {
			rp.After = spaceOrNot(rp.After, ls.beforeSep)
			tc.Suffix = spaceOrNot(tc.Suffix, ls.close)
			rp.Markers = tree.SetMarker(rp.Markers, tc)
			return rp
		}
		rp.After = spaceOrNot(rp.After, ls.close)
		return rp
	})
}

func spaceContainer[T tree.Tree](c tree.Container[T], before bool, ls listSpacing) tree.Container[T] {
	c.Before = spaceOrNot(c.Before, before)
	c.Elements = spaceList(c.Elements, ls)
	return c
}

func spaceContainerPtr[T tree.Tree](c *tree.Container[T], before bool, ls listSpacing) *tree.Container[T] {
	if c == nil {
		return nil
	}
	out := spaceContainer(*c, before, ls)
	return &out
}

// spaceLeading separates consecutive annotations or modifiers. lead is set
// when something already precedes the first one.
func spaceLeading[T tree.Tree](list []T, lead bool) []T {
	if len(list) == 0 {
		return list
	}
	out := make([]T, len(list))
	for i, t := range list {
		if i > 0 || lead {
			t = prefixOrNot(t, true)
		}
		out[i] = t
	}
	return out
}

// body spaces the body of a control statement: brace before a block, a
// single space before anything else.
func body(rp tree.RightPadded[tree.Statement], brace bool) tree.RightPadded[tree.Statement] {
	if _, ok := rp.Element.(*tree.Block); ok {
		rp.Element = prefixOrNot(rp.Element, brace)
	} else {
		rp.Element = prefixOrNot(rp.Element, true)
	}
	rp.After = spaceOrNot(rp.After, false)
	return rp
}

func (v spacesVisitor) comma() (bool, bool) {
	return v.style.Other.BeforeComma, v.style.Other.AfterComma
}

func (v spacesVisitor) post(t tree.Tree, c *tree.Cursor) tree.Tree {
	switch n := t.(type) {
	case *tree.CompilationUnit:
		return v.unit(n)
	case *tree.Package:
		out := *n
		out.Expression = prefixOrNot(n.Expression, true)
		return &out
	case *tree.Import:
		out := *n
		if n.Static.Element {
			out.Static = n.Static.WithBefore(spaceOrNot(n.Static.Before, true))
		}
		out.Qualid = prefixOrNot(n.Qualid, true)
		return &out
	case *tree.ClassDeclaration:
		return v.class(n)
	case *tree.EnumValueSet:
		return v.enumValues(n)
	case *tree.EnumValue:
		return v.enumValue(n)
	case *tree.MethodDeclaration:
		return v.method(n)
	case *tree.VariableDeclarations:
		return v.variables(n)
	case *tree.NamedVariable:
		return v.namedVariable(n)
	case *tree.Annotation:
		return v.annotation(n)
	case *tree.TypeParameter:
		return v.typeParameter(n)
	case *tree.Block:
		return v.block(n)
	}
	if out, ok := v.statement(t, c); ok {
		return out
	}
	return v.expression(t, c)
}

func (v spacesVisitor) unit(n *tree.CompilationUnit) tree.Tree {
	out := *n
	if n.Package != nil {
		pkg := n.Package.WithAfter(spaceOrNot(n.Package.After, false))
		out.Package = &pkg
	}
	out.Imports = tree.MapRight(n.Imports, func(_ int, rp tree.RightPadded[*tree.Import]) tree.RightPadded[*tree.Import] {
		return rp.WithAfter(spaceOrNot(rp.After, false))
	})
	return &out
}

func (v spacesVisitor) class(n *tree.ClassDeclaration) tree.Tree {
	s := v.style
	beforeComma, afterComma := v.comma()
	out := *n
	out.LeadingAnnotations = spaceLeading(n.LeadingAnnotations, false)
	out.Modifiers = spaceLeading(n.Modifiers, len(n.LeadingAnnotations) > 0)
	if len(n.LeadingAnnotations) > 0 || len(n.Modifiers) > 0 {
		out.KindPrefix = spaceOrNot(n.KindPrefix, true)
	}
	out.Name = prefixOrNot(n.Name, true)
	out.TypeParameters = spaceContainerPtr(n.TypeParameters, s.TypeParameters.BeforeOpeningAngleBracket,
		delimited(s.Within.AngleBrackets, false, beforeComma, afterComma))
	out.PrimaryConstructor = spaceContainerPtr(n.PrimaryConstructor, false,
		delimited(s.Within.RecordHeader, false, beforeComma, afterComma))
	if n.Extends != nil {
		ext := tree.PadLeft(spaceOrNot(n.Extends.Before, true), prefixOrNot(n.Extends.Element, true))
		out.Extends = &ext
	}
	out.Implements = spaceContainerPtr(n.Implements, true, afterKeyword(beforeComma, afterComma))
	out.Body = prefixOrNot(n.Body, s.BeforeLeftBrace.Class)
	return &out
}

func (v spacesVisitor) enumValues(n *tree.EnumValueSet) tree.Tree {
	beforeComma, afterComma := v.comma()
	last := len(n.Enums) - 1
	out := *n
	out.Enums = tree.MapRight(n.Enums, func(i int, rp tree.RightPadded[*tree.EnumValue]) tree.RightPadded[*tree.EnumValue] {
		if i > 0 {
			rp.Element = prefixOrNot(rp.Element, afterComma)
		}
		if tc, ok := tree.FindMarker[tree.TrailingComma](rp.Markers); ok {
			tc.Suffix = spaceOrNot(tc.Suffix, false)
			rp.Markers = tree.SetMarker(rp.Markers, tc)
			rp.After = spaceOrNot(rp.After, beforeComma)
			return rp
		}
		rp.After = spaceOrNot(rp.After, i < last && beforeComma)
		return rp
	})
	return &out
}

func (v spacesVisitor) enumValue(n *tree.EnumValue) tree.Tree {
	s := v.style
	beforeComma, afterComma := v.comma()
	out := *n
	out.Annotations = spaceLeading(n.Annotations, false)
	if len(n.Annotations) > 0 {
		out.Name = prefixOrNot(n.Name, true)
	}
	out.Arguments = spaceContainerPtr(n.Arguments, s.BeforeParentheses.MethodCall,
		delimited(s.Within.MethodCallParentheses, s.Within.EmptyMethodCallParentheses, beforeComma, afterComma))
	if n.Body != nil {
		out.Body = prefixOrNot(n.Body, s.BeforeLeftBrace.Class)
	}
	return &out
}

func (v spacesVisitor) method(n *tree.MethodDeclaration) tree.Tree {
	s := v.style
	beforeComma, afterComma := v.comma()
	out := *n
	lead := len(n.LeadingAnnotations) > 0 || len(n.Modifiers) > 0
	out.LeadingAnnotations = spaceLeading(n.LeadingAnnotations, false)
	out.Modifiers = spaceLeading(n.Modifiers, len(n.LeadingAnnotations) > 0)
	if n.TypeParameters != nil {
		tp := spaceContainer(*n.TypeParameters, lead, delimited(s.Within.AngleBrackets, false, beforeComma, afterComma))
		out.TypeParameters = &tp
		lead = true
	}
	if n.ReturnType != nil {
		if lead {
			out.ReturnType = prefixOrNot(n.ReturnType, true)
		}
		lead = true
	}
	if lead {
		out.Name = prefixOrNot(n.Name, true)
	}
	out.Parameters = spaceContainer(n.Parameters, s.BeforeParentheses.MethodDeclaration,
		delimited(s.Within.MethodDeclarationParentheses, s.Within.EmptyMethodDeclarationParentheses, beforeComma, afterComma))
	out.Throws = spaceContainerPtr(n.Throws, true, afterKeyword(beforeComma, afterComma))
	if n.DefaultValue != nil {
		dv := tree.PadLeft(spaceOrNot(n.DefaultValue.Before, true), prefixOrNot(n.DefaultValue.Element, true))
		out.DefaultValue = &dv
	}
	if n.Body != nil {
		out.Body = prefixOrNot(n.Body, s.BeforeLeftBrace.Method)
	}
	return &out
}

func (v spacesVisitor) variables(n *tree.VariableDeclarations) tree.Tree {
	beforeComma, afterComma := v.comma()
	out := *n
	lead := len(n.LeadingAnnotations) > 0 || len(n.Modifiers) > 0
	out.LeadingAnnotations = spaceLeading(n.LeadingAnnotations, false)
	out.Modifiers = spaceLeading(n.Modifiers, len(n.LeadingAnnotations) > 0)
	if n.TypeExpression != nil {
		if lead {
			out.TypeExpression = prefixOrNot(n.TypeExpression, true)
		}
		lead = true
	}
	if n.Varargs != nil {
		va := spaceOrNot(*n.Varargs, false)
		out.Varargs = &va
	}
	last := len(n.Variables) - 1
	out.Variables = tree.MapRight(n.Variables, func(i int, rp tree.RightPadded[*tree.NamedVariable]) tree.RightPadded[*tree.NamedVariable] {
		switch {
		case i > 0:
			rp.Element = prefixOrNot(rp.Element, afterComma)
		case lead:
			rp.Element = prefixOrNot(rp.Element, true)
		}
		rp.After = spaceOrNot(rp.After, i < last && beforeComma)
		return rp
	})
	return &out
}

func (v spacesVisitor) namedVariable(n *tree.NamedVariable) tree.Tree {
	out := *n
	if len(n.Dimensions) > 0 {
		dims := make([]tree.LeftPadded[tree.Space], len(n.Dimensions))
		for i, d := range n.Dimensions {
			dims[i] = tree.PadLeft(spaceOrNot(d.Before, false), spaceOrNot(d.Element, false))
		}
		out.Dimensions = dims
	}
	if n.Initializer != nil {
		around := v.style.AroundOperators.Assignment
		init := tree.PadLeft(spaceOrNot(n.Initializer.Before, around), prefixOrNot(n.Initializer.Element, around))
		out.Initializer = &init
	}
	return &out
}

func (v spacesVisitor) annotation(n *tree.Annotation) tree.Tree {
	s := v.style
	beforeComma, afterComma := v.comma()
	out := *n
	out.AnnotationType = prefixOrNot(n.AnnotationType, false)
	if n.Arguments != nil {
		ls := delimited(s.Within.AnnotationParentheses, false, beforeComma, afterComma)
		if first, ok := n.Arguments.Elements[0].Element.(*tree.NewArray); ok && first.TypeExpression == nil {
			ls.open = ls.open || s.BeforeLeftBrace.AnnotationArrayInitializer
		}
		args := spaceContainer(*n.Arguments, s.BeforeParentheses.Annotation, ls)
		out.Arguments = &args
	}
	return &out
}

func (v spacesVisitor) typeParameter(n *tree.TypeParameter) tree.Tree {
	out := *n
	out.Annotations = spaceLeading(n.Annotations, false)
	if len(n.Annotations) > 0 {
		out.Name = prefixOrNot(n.Name, true)
	}
	if n.Bounds != nil {
		around := v.style.TypeParameters.AroundTypeBounds
		bounds := spaceContainer(*n.Bounds, true, afterKeyword(around, around))
		out.Bounds = &bounds
	}
	return &out
}

func (v spacesVisitor) block(n *tree.Block) tree.Tree {
	s := v.style
	out := *n
	if n.Static.Element {
		out.Static = n.Static.WithAfter(spaceOrNot(n.Static.After, true))
	}
	inside := s.Within.CodeBraces
	enumOnly := false
	if len(n.Statements) > 0 {
		if _, ok := n.Statements[0].Element.(*tree.EnumValueSet); ok {
			inside = s.Other.InsideOneLineEnumBraces
			enumOnly = len(n.Statements) == 1
		}
	}
	out.Statements, _ = mapStatements(n.Statements, func(i int, st tree.Statement) tree.Statement {
		want := i > 0 || inside
		return updateLead(st, func(sp tree.Space) tree.Space { return spaceOrNot(sp, want) })
	})
	out.Statements = tree.MapRight(out.Statements, func(_ int, rp tree.RightPadded[tree.Statement]) tree.RightPadded[tree.Statement] {
		return rp.WithAfter(spaceOrNot(rp.After, false))
	})
	switch {
	case len(n.Statements) == 0:
		out.End = spaceOrNot(n.End, false)
	case enumOnly:
		out.End = spaceOrNot(n.End, s.Other.InsideOneLineEnumBraces)
	default:
		out.End = spaceOrNot(n.End, s.Within.CodeBraces)
	}
	return &out
}

// statement handles control statements. It reports false for nodes it
// does not know.
func (v spacesVisitor) statement(t tree.Tree, c *tree.Cursor) (tree.Tree, bool) {
	s := v.style
	beforeComma, afterComma := v.comma()
	switch n := t.(type) {
	case *tree.If:
		out := *n
		out.Condition = prefixOrNot(n.Condition, s.BeforeParentheses.If)
		out.ThenPart = body(n.ThenPart, s.BeforeLeftBrace.If)
		if n.ElsePart != nil {
			out.ElsePart = prefixOrNot(n.ElsePart, s.BeforeKeywords.Else)
		}
		return &out, true
	case *tree.Else:
		out := *n
		out.Body = body(n.Body, s.BeforeLeftBrace.Else)
		return &out, true
	case *tree.WhileLoop:
		out := *n
		out.Condition = prefixOrNot(n.Condition, s.BeforeParentheses.While)
		out.Body = body(n.Body, s.BeforeLeftBrace.While)
		return &out, true
	case *tree.DoWhileLoop:
		out := *n
		out.Body = body(n.Body, s.BeforeLeftBrace.Do)
		out.Condition = tree.PadLeft(spaceOrNot(n.Condition.Before, s.BeforeKeywords.While),
			prefixOrNot(n.Condition.Element, s.BeforeParentheses.While))
		return &out, true
	case *tree.ForLoop:
		out := *n
		out.Control = prefixOrNot(n.Control, s.BeforeParentheses.For)
		out.Body = body(n.Body, s.BeforeLeftBrace.For)
		return &out, true
	case *tree.ForEachLoop:
		out := *n
		out.Control = prefixOrNot(n.Control, s.BeforeParentheses.For)
		out.Body = body(n.Body, s.BeforeLeftBrace.For)
		return &out, true
	case *tree.ForControl:
		out := *n
		out.Init = spaceList(n.Init, listSpacing{
			open: s.Within.ForParentheses, close: s.Other.BeforeForSemicolon,
			beforeSep: beforeComma, afterSep: afterComma,
		})
		out.Condition = tree.PadRight(prefixOrNot(n.Condition.Element, s.Other.AfterForSemicolon),
			spaceOrNot(n.Condition.After, s.Other.BeforeForSemicolon))
		if len(n.Update) == 1 && isEmpty(n.Update[0].Element) {
			out.Update = []tree.RightPadded[tree.Statement]{n.Update[0].WithElement(prefixOrNot(n.Update[0].Element, s.Other.AfterForSemicolon))}
		} else {
			out.Update = spaceList(n.Update, listSpacing{
				open: s.Other.AfterForSemicolon, close: s.Within.ForParentheses,
				beforeSep: beforeComma, afterSep: afterComma,
			})
		}
		return &out, true
	case *tree.ForEachControl:
		out := *n
		out.Variable = tree.PadRight(prefixOrNot(n.Variable.Element, s.Within.ForParentheses),
			spaceOrNot(n.Variable.After, s.Other.BeforeColonInForEach))
		out.Iterable = tree.PadRight(prefixOrNot(n.Iterable.Element, true),
			spaceOrNot(n.Iterable.After, s.Within.ForParentheses))
		return &out, true
	case *tree.Return:
		out := *n
		if n.Expression != nil {
			out.Expression = prefixOrNot(n.Expression, true)
		}
		return &out, true
	case *tree.Throw:
		out := *n
		out.Exception = prefixOrNot(n.Exception, true)
		return &out, true
	case *tree.Yield:
		out := *n
		out.Value = prefixOrNot(n.Value, true)
		return &out, true
	case *tree.Break:
		out := *n
		if n.Label != nil {
			out.Label = prefixOrNot(n.Label, true)
		}
		return &out, true
	case *tree.Continue:
		out := *n
		if n.Label != nil {
			out.Label = prefixOrNot(n.Label, true)
		}
		return &out, true
	case *tree.Assert:
		out := *n
		out.Condition = prefixOrNot(n.Condition, true)
		if n.Detail != nil {
			d := tree.PadLeft(spaceOrNot(n.Detail.Before, true), prefixOrNot(n.Detail.Element, true))
			out.Detail = &d
		}
		return &out, true
	case *tree.Try:
		out := *n
		out.Resources = spaceContainerPtr(n.Resources, s.BeforeParentheses.Try,
			delimited(s.Within.TryParentheses, false, false, true))
		out.Body = prefixOrNot(n.Body, s.BeforeLeftBrace.Try)
		catches := make([]*tree.Catch, len(n.Catches))
		for i, cc := range n.Catches {
			catches[i] = prefixOrNot(cc, s.BeforeKeywords.Catch)
		}
		out.Catches = catches
		if n.Finally != nil {
			f := tree.PadLeft(spaceOrNot(n.Finally.Before, s.BeforeKeywords.Finally),
				prefixOrNot(n.Finally.Element, s.BeforeLeftBrace.Finally))
			out.Finally = &f
		}
		return &out, true
	case *tree.Catch:
		out := *n
		out.Parameter = prefixOrNot(n.Parameter, s.BeforeParentheses.Catch)
		out.Body = prefixOrNot(n.Body, s.BeforeLeftBrace.Catch)
		return &out, true
	case *tree.MultiCatch:
		out := *n
		bitwise := s.AroundOperators.Bitwise
		out.Alternatives = spaceList(n.Alternatives, listSpacing{beforeSep: bitwise, afterSep: bitwise})
		return &out, true
	case *tree.Switch:
		out := *n
		out.Selector = prefixOrNot(n.Selector, s.BeforeParentheses.Switch)
		out.Cases = prefixOrNot(n.Cases, s.BeforeLeftBrace.Switch)
		return &out, true
	case *tree.Case:
		return v.caseLabel(n), true
	case *tree.Label:
		out := *n
		out.Label = n.Label.WithAfter(spaceOrNot(n.Label.After, false))
		out.Statement = prefixOrNot(n.Statement, true)
		return &out, true
	case *tree.Synchronized:
		out := *n
		out.Lock = prefixOrNot(n.Lock, s.BeforeParentheses.Synchronized)
		out.Body = prefixOrNot(n.Body, s.BeforeLeftBrace.Synchronized)
		return &out, true
	case *tree.ControlParentheses:
		inside := v.parentheses(c.ParentTree())
		out := *n
		out.Tree = tree.PadRight(prefixOrNot(n.Tree.Element, inside), spaceOrNot(n.Tree.After, inside))
		return &out, true
	}
	return nil, false
}

// parentheses is the "within" setting for the control parentheses of
// parent.
func (v spacesVisitor) parentheses(parent tree.Tree) bool {
	w := v.style.Within
	switch parent.(type) {
	case *tree.If:
		return w.IfParentheses
	case *tree.WhileLoop, *tree.DoWhileLoop:
		return w.WhileParentheses
	case *tree.Switch:
		return w.SwitchParentheses
	case *tree.Synchronized:
		return w.SynchronizedParentheses
	case *tree.Catch:
		return w.CatchParentheses
	case *tree.TypeCast:
		return w.TypeCastParentheses
	}
	return false
}

func (v spacesVisitor) caseLabel(n *tree.Case) tree.Tree {
	beforeComma, afterComma := v.comma()
	out := *n
	last := len(n.Labels) - 1
	def := n.IsDefault()
	out.Labels = tree.MapRight(n.Labels, func(i int, rp tree.RightPadded[tree.Expression]) tree.RightPadded[tree.Expression] {
		if i == 0 {
			rp.Element = prefixOrNot(rp.Element, !def)
		} else {
			rp.Element = prefixOrNot(rp.Element, afterComma)
		}
		if i < last {
			rp.After = spaceOrNot(rp.After, beforeComma)
		} else {
			rp.After = spaceOrNot(rp.After, n.Rule)
		}
		return rp
	})
	if n.Body != nil {
		b := tree.PadRight(prefixOrNot(n.Body.Element, true), spaceOrNot(n.Body.After, false))
		out.Body = &b
	}
	out.Statements, _ = mapStatements(n.Statements, func(_ int, st tree.Statement) tree.Statement {
		return updateLead(st, func(sp tree.Space) tree.Space { return spaceOrNot(sp, true) })
	})
	out.Statements = tree.MapRight(out.Statements, func(_ int, rp tree.RightPadded[tree.Statement]) tree.RightPadded[tree.Statement] {
		return rp.WithAfter(spaceOrNot(rp.After, false))
	})
	return &out
}

func (v spacesVisitor) binary(op tree.BinaryOp) bool {
	a := v.style.AroundOperators
	switch op {
	case tree.OpAnd, tree.OpOr:
		return a.Logical
	case tree.OpEqual, tree.OpNotEqual:
		return a.Equality
	case tree.OpLess, tree.OpGreater, tree.OpLessEq, tree.OpGreaterEq:
		return a.Relational
	case tree.OpBitAnd, tree.OpBitOr, tree.OpBitXor:
		return a.Bitwise
	case tree.OpAdd, tree.OpSub:
		return a.Additive
	case tree.OpMul, tree.OpDiv, tree.OpMod:
		return a.Multiplicative
	}
	return a.Shift
}

func (v spacesVisitor) expression(t tree.Tree, _ *tree.Cursor) tree.Tree {
	s := v.style
	beforeComma, afterComma := v.comma()
	call := delimited(s.Within.MethodCallParentheses, s.Within.EmptyMethodCallParentheses, beforeComma, afterComma)
	switch n := t.(type) {
	case *tree.FieldAccess:
		out := *n
		out.Name = tree.PadLeft(spaceOrNot(n.Name.Before, false), prefixOrNot(n.Name.Element, false))
		return &out
	case *tree.MethodInvocation:
		out := *n
		if n.Select != nil {
			sel := n.Select.WithAfter(spaceOrNot(n.Select.After, false))
			out.Select = &sel
		}
		out.TypeParameters = spaceContainerPtr(n.TypeParameters, false,
			delimited(s.Within.AngleBrackets, false, false, s.TypeArguments.AfterComma))
		out.Name = prefixOrNot(n.Name, false)
		out.Arguments = spaceContainer(n.Arguments, s.BeforeParentheses.MethodCall, call)
		return &out
	case *tree.NewClass:
		out := *n
		out.Clazz = prefixOrNot(n.Clazz, true)
		out.Arguments = spaceContainer(n.Arguments, s.BeforeParentheses.MethodCall, call)
		if n.Body != nil {
			out.Body = prefixOrNot(n.Body, s.BeforeLeftBrace.Class)
		}
		return &out
	case *tree.NewArray:
		out := *n
		typed := n.TypeExpression != nil
		if typed {
			out.TypeExpression = prefixOrNot(n.TypeExpression, true)
		}
		dims := make([]*tree.ArrayDimension, len(n.Dimensions))
		for i, d := range n.Dimensions {
			dims[i] = prefixOrNot(d, false)
		}
		out.Dimensions = dims
		if n.Initializer != nil {
			init := *n.Initializer
			if typed {
				init.Before = spaceOrNot(init.Before, s.BeforeLeftBrace.ArrayInitializer)
			}
			init.Elements = spaceList(init.Elements,
				delimited(s.Within.ArrayInitializerBraces, s.Within.EmptyArrayInitializerBraces, beforeComma, afterComma))
			out.Initializer = &init
		}
		return &out
	case *tree.ArrayDimension:
		out := *n
		inside := s.Within.Brackets && !isEmpty(n.Index.Element)
		out.Index = tree.PadRight(prefixOrNot(n.Index.Element, inside), spaceOrNot(n.Index.After, inside))
		return &out
	case *tree.ArrayAccess:
		out := *n
		out.Dimension = prefixOrNot(n.Dimension, false)
		return &out
	case *tree.Binary:
		around := v.binary(n.Operator.Element)
		out := *n
		out.Operator = n.Operator.WithBefore(spaceOrNot(n.Operator.Before, around))
		out.Right = prefixOrNot(n.Right, around)
		return &out
	case *tree.Unary:
		out := *n
		if n.Operator.Element.IsPostfix() {
			out.Operator = n.Operator.WithBefore(spaceOrNot(n.Operator.Before, s.AroundOperators.Unary))
		} else {
			out.Expression = prefixOrNot(n.Expression, s.AroundOperators.Unary)
		}
		return &out
	case *tree.Assignment:
		around := s.AroundOperators.Assignment
		out := *n
		out.Assignment = tree.PadLeft(spaceOrNot(n.Assignment.Before, around), prefixOrNot(n.Assignment.Element, around))
		return &out
	case *tree.AssignmentOperation:
		around := s.AroundOperators.Assignment
		out := *n
		out.Operator = n.Operator.WithBefore(spaceOrNot(n.Operator.Before, around))
		out.Assignment = prefixOrNot(n.Assignment, around)
		return &out
	case *tree.Ternary:
		to := s.TernaryOperator
		out := *n
		out.TruePart = tree.PadLeft(spaceOrNot(n.TruePart.Before, to.BeforeQuestionMark), prefixOrNot(n.TruePart.Element, to.AfterQuestionMark))
		out.FalsePart = tree.PadLeft(spaceOrNot(n.FalsePart.Before, to.BeforeColon), prefixOrNot(n.FalsePart.Element, to.AfterColon))
		return &out
	case *tree.Parentheses:
		inside := s.Within.GroupingParentheses
		out := *n
		out.Tree = tree.PadRight(prefixOrNot(n.Tree.Element, inside), spaceOrNot(n.Tree.After, inside))
		return &out
	case *tree.TypeCast:
		out := *n
		out.Expression = prefixOrNot(n.Expression, s.Other.AfterTypeCast)
		return &out
	case *tree.InstanceOf:
		out := *n
		out.Expression = n.Expression.WithAfter(spaceOrNot(n.Expression.After, true))
		out.Clazz = prefixOrNot(n.Clazz, true)
		if n.Pattern != nil {
			out.Pattern = prefixOrNot(n.Pattern, true)
		}
		return &out
	case *tree.LambdaParameters:
		if !n.Parenthesized {
			return n
		}
		out := *n
		out.Parameters = spaceList(n.Parameters, delimited(false, false, beforeComma, afterComma))
		return &out
	case *tree.Lambda:
		arrow := s.AroundOperators.LambdaArrow
		out := *n
		out.Arrow = spaceOrNot(n.Arrow, arrow)
		out.Body = prefixOrNot(n.Body, arrow)
		return &out
	case *tree.MemberReference:
		around := s.AroundOperators.MethodReference
		out := *n
		out.Reference = tree.PadLeft(spaceOrNot(n.Reference.Before, around), prefixOrNot(n.Reference.Element, around))
		return &out
	case *tree.ParameterizedType:
		out := *n
		out.TypeParameters = spaceContainerPtr(n.TypeParameters, s.TypeArguments.BeforeOpeningAngleBracket,
			delimited(s.Within.AngleBrackets, false, false, s.TypeArguments.AfterComma))
		return &out
	case *tree.ArrayType:
		out := *n
		out.Dimension = tree.PadLeft(spaceOrNot(n.Dimension.Before, false), spaceOrNot(n.Dimension.Element, false))
		return &out
	case *tree.Wildcard:
		out := *n
		if n.Bound != nil {
			b := n.Bound.WithBefore(spaceOrNot(n.Bound.Before, true))
			out.Bound = &b
			if n.BoundedType != nil {
				out.BoundedType = prefixOrNot(n.BoundedType, true)
			}
		}
		return &out
	case *tree.AnnotatedType:
		out := *n
		out.Annotations = spaceLeading(n.Annotations, false)
		if len(n.Annotations) > 0 && n.Prefix.IsEmpty() {
			out.Prefix = tree.PrefixOf(n.Annotations[0])
			out.Annotations[0] = tree.WithPrefix(out.Annotations[0], tree.EmptySpace)
		}
		out.TypeExpression = prefixOrNot(n.TypeExpression, true)
		return &out
	}
	return t
}
