package tree

// Visitor rewrites a tree. PreVisit runs before a node's children are
// visited and PostVisit after. Either may return the node unchanged, a
// replacement, or nil to delete the node from an optional position.
type Visitor interface {
	PreVisit(t Tree, c *Cursor) Tree
	PostVisit(t Tree, c *Cursor) Tree
}

// VisitorFuncs adapts a pair of functions to Visitor. A nil function leaves
// the node unchanged.
type VisitorFuncs struct {
	Pre  func(t Tree, c *Cursor) Tree
	Post func(t Tree, c *Cursor) Tree
}

func (v VisitorFuncs) PreVisit(t Tree, c *Cursor) Tree {
	if v.Pre == nil {
		return t
	}
	return v.Pre(t, c)
}

func (v VisitorFuncs) PostVisit(t Tree, c *Cursor) Tree {
	if v.Post == nil {
		return t
	}
	return v.Post(t, c)
}

// Chain runs several visitors in a single walk. At each node the PreVisit
// hooks run in order and the PostVisit hooks in reverse order; a deletion
// stops the remaining hooks.
func Chain(visitors ...Visitor) Visitor {
	return chain(visitors)
}

type chain []Visitor

func (ch chain) PreVisit(t Tree, c *Cursor) Tree {
	for _, v := range ch {
		if t = v.PreVisit(t, c); IsNil(t) {
			return nil
		}
		c.value = t
	}
	return t
}

func (ch chain) PostVisit(t Tree, c *Cursor) Tree {
	for i := len(ch) - 1; i >= 0; i-- {
		if t = ch[i].PostVisit(t, c); IsNil(t) {
			return nil
		}
		c.value = t
	}
	return t
}

// Walk visits t and its descendants depth first, returning the rewritten
// tree. parent positions t in a larger tree and may be nil. A node whose
// children are unchanged is returned as is, so untouched subtrees are shared.
func Walk(v Visitor, t Tree, parent *Cursor) Tree {
	if IsNil(t) {
		return nil
	}
	c := NewCursor(parent, t)
	t = v.PreVisit(t, c)
	if IsNil(t) {
		return nil
	}
	c.value = t
	if !c.skip {
		t = mapChildren(v, t, c)
		c.value = t
	}
	t = v.PostVisit(t, c)
	if IsNil(t) {
		return nil
	}
	return t
}

// Inspect calls fn for every node of t in depth-first order. When fn returns
// false the node's children are not walked.
func Inspect(t Tree, fn func(t Tree, c *Cursor) bool) {
	Walk(VisitorFuncs{
		Pre: func(t Tree, c *Cursor) Tree {
			if !fn(t, c) {
				c.SkipChildren()
			}
			return t
		},
	}, t, nil)
}

// Collect returns every node of type T under t, t included, in print order.
func Collect[T Tree](t Tree) []T {
	var out []T
	Inspect(t, func(n Tree, _ *Cursor) bool {
		if found, ok := n.(T); ok {
			out = append(out, found)
		}
		return true
	})
	return out
}

// mapper threads the visitor and cursor through the child helpers and
// records whether any child was replaced.
type mapper struct {
	v       Visitor
	c       *Cursor
	changed bool
}

func (m *mapper) result(orig, copied Tree) Tree {
	if m.changed {
		return copied
	}
	return orig
}

func same(a, b Tree) bool {
	if IsNil(a) && IsNil(b) {
		return true
	}
	return a == b
}

func visit[T Tree](m *mapper, t T, role string) T {
	if IsNil(t) {
		return t
	}
	r := Walk(m.v, t, m.c)
	if IsNil(r) {
		panic(&RoleError{Want: role})
	}
	out, ok := r.(T)
	if !ok {
		panic(&RoleError{Want: role, Got: r})
	}
	if !same(out, t) {
		m.changed = true
	}
	return out
}

func visitOpt[T Tree](m *mapper, t T, role string) T {
	if IsNil(t) {
		return t
	}
	r := Walk(m.v, t, m.c)
	if IsNil(r) {
		m.changed = true
		var zero T
		return zero
	}
	out, ok := r.(T)
	if !ok {
		panic(&RoleError{Want: role, Got: r})
	}
	if !same(out, t) {
		m.changed = true
	}
	return out
}

func visitList[T Tree](m *mapper, list []T, role string) []T {
	if len(list) == 0 {
		return list
	}
	var out []T
	dirty := false
	for i, e := range list {
		r := visitOpt(m, e, role)
		if IsNil(r) || !same(r, e) {
			if !dirty {
				out = append(make([]T, 0, len(list)), list[:i]...)
				dirty = true
			}
		}
		if dirty && !IsNil(r) {
			out = append(out, r)
		}
	}
	if !dirty {
		return list
	}
	return out
}

func visitRight[T Tree](m *mapper, rp RightPadded[T], role string) RightPadded[T] {
	rp.Element = visit(m, rp.Element, role)
	return rp
}

func visitRightOpt[T Tree](m *mapper, rp *RightPadded[T], role string) *RightPadded[T] {
	if rp == nil {
		return nil
	}
	e := visitOpt(m, rp.Element, role)
	if IsNil(e) {
		return nil
	}
	if same(e, rp.Element) {
		return rp
	}
	out := *rp
	out.Element = e
	return &out
}

func visitRightList[T Tree](m *mapper, list []RightPadded[T], role string) []RightPadded[T] {
	if len(list) == 0 {
		return list
	}
	var out []RightPadded[T]
	dirty := false
	for i, rp := range list {
		r := visitOpt(m, rp.Element, role)
		if IsNil(r) || !same(r, rp.Element) {
			if !dirty {
				out = append(make([]RightPadded[T], 0, len(list)), list[:i]...)
				dirty = true
			}
		}
		if dirty && !IsNil(r) {
			rp.Element = r
			out = append(out, rp)
		}
	}
	if !dirty {
		return list
	}
	return out
}

func visitLeft[T Tree](m *mapper, lp LeftPadded[T], role string) LeftPadded[T] {
	lp.Element = visit(m, lp.Element, role)
	return lp
}

func visitLeftOpt[T Tree](m *mapper, lp *LeftPadded[T], role string) *LeftPadded[T] {
	if lp == nil {
		return nil
	}
	e := visitOpt(m, lp.Element, role)
	if IsNil(e) {
		return nil
	}
	if same(e, lp.Element) {
		return lp
	}
	out := *lp
	out.Element = e
	return &out
}

func visitContainer[T Tree](m *mapper, c Container[T], role string) Container[T] {
	c.Elements = visitRightList(m, c.Elements, role)
	return c
}

func visitContainerOpt[T Tree](m *mapper, c *Container[T], role string) *Container[T] {
	if c == nil {
		return nil
	}
	elements := visitRightList(m, c.Elements, role)
	if len(elements) == len(c.Elements) && (len(elements) == 0 || &elements[0] == &c.Elements[0]) {
		return c
	}
	out := *c
	out.Elements = elements
	return &out
}

func mapChildren(v Visitor, t Tree, c *Cursor) Tree {
	m := &mapper{v: v, c: c}
	switch t := t.(type) {
	case *CompilationUnit:
		n := *t
		if t.Package != nil {
			n.Package = visitRightOpt(m, t.Package, "package")
		}
		n.Imports = visitRightList(m, t.Imports, "import")
		n.Classes = visitList(m, t.Classes, "class")
		return m.result(t, &n)
	case *Package:
		n := *t
		n.Expression = visit(m, t.Expression, "package name")
		return m.result(t, &n)
	case *Import:
		n := *t
		n.Qualid = visit(m, t.Qualid, "import name")
		return m.result(t, &n)
	case *ClassDeclaration:
		n := *t
		n.LeadingAnnotations = visitList(m, t.LeadingAnnotations, "annotation")
		n.Modifiers = visitList(m, t.Modifiers, "modifier")
		n.Name = visit(m, t.Name, "class name")
		n.TypeParameters = visitContainerOpt(m, t.TypeParameters, "type parameter")
		n.PrimaryConstructor = visitContainerOpt(m, t.PrimaryConstructor, "record component")
		n.Extends = visitLeftOpt(m, t.Extends, "extends type")
		n.Implements = visitContainerOpt(m, t.Implements, "implements type")
		n.Body = visit(m, t.Body, "class body")
		return m.result(t, &n)
	case *EnumValueSet:
		n := *t
		n.Enums = visitRightList(m, t.Enums, "enum constant")
		return m.result(t, &n)
	case *EnumValue:
		n := *t
		n.Annotations = visitList(m, t.Annotations, "annotation")
		n.Name = visit(m, t.Name, "enum constant name")
		n.Arguments = visitContainerOpt(m, t.Arguments, "argument")
		n.Body = visitOpt(m, t.Body, "enum constant body")
		return m.result(t, &n)
	case *MethodDeclaration:
		n := *t
		n.LeadingAnnotations = visitList(m, t.LeadingAnnotations, "annotation")
		n.Modifiers = visitList(m, t.Modifiers, "modifier")
		n.TypeParameters = visitContainerOpt(m, t.TypeParameters, "type parameter")
		n.ReturnType = visitOpt(m, t.ReturnType, "return type")
		n.Name = visit(m, t.Name, "method name")
		n.Parameters = visitContainer(m, t.Parameters, "parameter")
		n.Throws = visitContainerOpt(m, t.Throws, "thrown type")
		n.DefaultValue = visitLeftOpt(m, t.DefaultValue, "default value")
		n.Body = visitOpt(m, t.Body, "method body")
		return m.result(t, &n)
	case *VariableDeclarations:
		n := *t
		n.LeadingAnnotations = visitList(m, t.LeadingAnnotations, "annotation")
		n.Modifiers = visitList(m, t.Modifiers, "modifier")
		n.TypeExpression = visitOpt(m, t.TypeExpression, "variable type")
		n.Variables = visitRightList(m, t.Variables, "variable")
		return m.result(t, &n)
	case *NamedVariable:
		n := *t
		n.Name = visit(m, t.Name, "variable name")
		n.Initializer = visitLeftOpt(m, t.Initializer, "initializer")
		return m.result(t, &n)
	case *Annotation:
		n := *t
		n.AnnotationType = visit(m, t.AnnotationType, "annotation type")
		n.Arguments = visitContainerOpt(m, t.Arguments, "annotation argument")
		return m.result(t, &n)
	case *TypeParameter:
		n := *t
		n.Annotations = visitList(m, t.Annotations, "annotation")
		n.Name = visit(m, t.Name, "type parameter name")
		n.Bounds = visitContainerOpt(m, t.Bounds, "type bound")
		return m.result(t, &n)
	case *Block:
		n := *t
		n.Statements = visitRightList(m, t.Statements, "statement")
		return m.result(t, &n)
	case *If:
		n := *t
		n.Condition = visit(m, t.Condition, "if condition")
		n.ThenPart = visitRight(m, t.ThenPart, "then statement")
		n.ElsePart = visitOpt(m, t.ElsePart, "else")
		return m.result(t, &n)
	case *Else:
		n := *t
		n.Body = visitRight(m, t.Body, "else statement")
		return m.result(t, &n)
	case *WhileLoop:
		n := *t
		n.Condition = visit(m, t.Condition, "while condition")
		n.Body = visitRight(m, t.Body, "loop body")
		return m.result(t, &n)
	case *DoWhileLoop:
		n := *t
		n.Body = visitRight(m, t.Body, "loop body")
		n.Condition = visitLeft(m, t.Condition, "while condition")
		return m.result(t, &n)
	case *ForLoop:
		n := *t
		n.Control = visit(m, t.Control, "for control")
		n.Body = visitRight(m, t.Body, "loop body")
		return m.result(t, &n)
	case *ForControl:
		n := *t
		n.Init = visitRightList(m, t.Init, "for init")
		n.Condition = visitRight(m, t.Condition, "for condition")
		n.Update = visitRightList(m, t.Update, "for update")
		return m.result(t, &n)
	case *ForEachLoop:
		n := *t
		n.Control = visit(m, t.Control, "for-each control")
		n.Body = visitRight(m, t.Body, "loop body")
		return m.result(t, &n)
	case *ForEachControl:
		n := *t
		n.Variable = visitRight(m, t.Variable, "for-each variable")
		n.Iterable = visitRight(m, t.Iterable, "iterable")
		return m.result(t, &n)
	case *Return:
		n := *t
		n.Expression = visitOpt(m, t.Expression, "return value")
		return m.result(t, &n)
	case *Throw:
		n := *t
		n.Exception = visit(m, t.Exception, "exception")
		return m.result(t, &n)
	case *Break:
		n := *t
		n.Label = visitOpt(m, t.Label, "label")
		return m.result(t, &n)
	case *Continue:
		n := *t
		n.Label = visitOpt(m, t.Label, "label")
		return m.result(t, &n)
	case *Empty, *Identifier, *Literal, *Primitive, *Modifier:
		return t
	case *Try:
		n := *t
		n.Resources = visitContainerOpt(m, t.Resources, "resource")
		n.Body = visit(m, t.Body, "try body")
		n.Catches = visitList(m, t.Catches, "catch")
		n.Finally = visitLeftOpt(m, t.Finally, "finally")
		return m.result(t, &n)
	case *Catch:
		n := *t
		n.Parameter = visit(m, t.Parameter, "catch parameter")
		n.Body = visit(m, t.Body, "catch body")
		return m.result(t, &n)
	case *MultiCatch:
		n := *t
		n.Alternatives = visitRightList(m, t.Alternatives, "caught type")
		return m.result(t, &n)
	case *Switch:
		n := *t
		n.Selector = visit(m, t.Selector, "switch selector")
		n.Cases = visit(m, t.Cases, "switch body")
		return m.result(t, &n)
	case *Case:
		n := *t
		n.Labels = visitRightList(m, t.Labels, "case label")
		n.Statements = visitRightList(m, t.Statements, "case statement")
		n.Body = visitRightOpt(m, t.Body, "case body")
		return m.result(t, &n)
	case *Label:
		n := *t
		n.Label = visitRight(m, t.Label, "label")
		n.Statement = visit(m, t.Statement, "labeled statement")
		return m.result(t, &n)
	case *Synchronized:
		n := *t
		n.Lock = visit(m, t.Lock, "lock")
		n.Body = visit(m, t.Body, "synchronized body")
		return m.result(t, &n)
	case *Yield:
		n := *t
		n.Value = visit(m, t.Value, "yielded value")
		return m.result(t, &n)
	case *Assert:
		n := *t
		n.Condition = visit(m, t.Condition, "assert condition")
		n.Detail = visitLeftOpt(m, t.Detail, "assert detail")
		return m.result(t, &n)
	case *FieldAccess:
		n := *t
		n.Target = visit(m, t.Target, "field target")
		n.Name = visitLeft(m, t.Name, "field name")
		return m.result(t, &n)
	case *MethodInvocation:
		n := *t
		n.Select = visitRightOpt(m, t.Select, "method select")
		n.TypeParameters = visitContainerOpt(m, t.TypeParameters, "type argument")
		n.Name = visit(m, t.Name, "method name")
		n.Arguments = visitContainer(m, t.Arguments, "argument")
		return m.result(t, &n)
	case *NewClass:
		n := *t
		n.Clazz = visit(m, t.Clazz, "instantiated type")
		n.Arguments = visitContainer(m, t.Arguments, "argument")
		n.Body = visitOpt(m, t.Body, "anonymous class body")
		return m.result(t, &n)
	case *NewArray:
		n := *t
		n.TypeExpression = visitOpt(m, t.TypeExpression, "array element type")
		n.Dimensions = visitList(m, t.Dimensions, "array dimension")
		n.Initializer = visitContainerOpt(m, t.Initializer, "array element")
		return m.result(t, &n)
	case *ArrayDimension:
		n := *t
		n.Index = visitRight(m, t.Index, "array index")
		return m.result(t, &n)
	case *ArrayAccess:
		n := *t
		n.Indexed = visit(m, t.Indexed, "indexed expression")
		n.Dimension = visit(m, t.Dimension, "array dimension")
		return m.result(t, &n)
	case *Binary:
		n := *t
		n.Left = visit(m, t.Left, "left operand")
		n.Right = visit(m, t.Right, "right operand")
		return m.result(t, &n)
	case *Unary:
		n := *t
		n.Expression = visit(m, t.Expression, "operand")
		return m.result(t, &n)
	case *Assignment:
		n := *t
		n.Variable = visit(m, t.Variable, "assignment target")
		n.Assignment = visitLeft(m, t.Assignment, "assigned value")
		return m.result(t, &n)
	case *AssignmentOperation:
		n := *t
		n.Variable = visit(m, t.Variable, "assignment target")
		n.Assignment = visit(m, t.Assignment, "assigned value")
		return m.result(t, &n)
	case *Ternary:
		n := *t
		n.Condition = visit(m, t.Condition, "condition")
		n.TruePart = visitLeft(m, t.TruePart, "true part")
		n.FalsePart = visitLeft(m, t.FalsePart, "false part")
		return m.result(t, &n)
	case *Parentheses:
		n := *t
		n.Tree = visitRight(m, t.Tree, "parenthesized expression")
		return m.result(t, &n)
	case *ControlParentheses:
		n := *t
		n.Tree = visitRight(m, t.Tree, "parenthesized tree")
		return m.result(t, &n)
	case *TypeCast:
		n := *t
		n.Clazz = visit(m, t.Clazz, "cast type")
		n.Expression = visit(m, t.Expression, "cast operand")
		return m.result(t, &n)
	case *InstanceOf:
		n := *t
		n.Expression = visitRight(m, t.Expression, "instanceof operand")
		n.Clazz = visit(m, t.Clazz, "instanceof type")
		n.Pattern = visitOpt(m, t.Pattern, "pattern variable")
		return m.result(t, &n)
	case *LambdaParameters:
		n := *t
		n.Parameters = visitRightList(m, t.Parameters, "lambda parameter")
		return m.result(t, &n)
	case *Lambda:
		n := *t
		n.Parameters = visit(m, t.Parameters, "lambda parameters")
		n.Body = visit(m, t.Body, "lambda body")
		return m.result(t, &n)
	case *MemberReference:
		n := *t
		n.Containing = visit(m, t.Containing, "reference target")
		n.Reference = visitLeft(m, t.Reference, "reference name")
		return m.result(t, &n)
	case *ParameterizedType:
		n := *t
		n.Clazz = visit(m, t.Clazz, "parameterized type")
		n.TypeParameters = visitContainerOpt(m, t.TypeParameters, "type argument")
		return m.result(t, &n)
	case *ArrayType:
		n := *t
		n.ElementType = visit(m, t.ElementType, "array element type")
		return m.result(t, &n)
	case *Wildcard:
		n := *t
		n.BoundedType = visitOpt(m, t.BoundedType, "wildcard bound")
		return m.result(t, &n)
	case *AnnotatedType:
		n := *t
		n.Annotations = visitList(m, t.Annotations, "annotation")
		n.TypeExpression = visit(m, t.TypeExpression, "annotated type")
		return m.result(t, &n)
	}
	panic(&UnknownKindError{Op: "tree.Walk", Tree: t})
}
