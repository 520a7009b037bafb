package tree

// If is an if statement. ThenPart.After is the space before the semicolon
// when the then part is a simple statement.
type If struct {
	Meta
	Condition *ControlParentheses
	ThenPart  RightPadded[Statement]
	ElsePart  *Else
}

// Else prefix is the space before "else".
type Else struct {
	Meta
	Body RightPadded[Statement]
}

type WhileLoop struct {
	Meta
	Condition *ControlParentheses
	Body      RightPadded[Statement]
}

// DoWhileLoop keeps the space before "while" in Condition.Before.
type DoWhileLoop struct {
	Meta
	Body      RightPadded[Statement]
	Condition LeftPadded[*ControlParentheses]
}

type ForLoop struct {
	Meta
	Control *ForControl
	Body    RightPadded[Statement]
}

// ForControl is the parenthesized header of a for loop. The prefix is the
// space before "(". Absent parts are represented by Empty.
type ForControl struct {
	Meta
	Init      []RightPadded[Statement]
	Condition RightPadded[Expression]
	Update    []RightPadded[Statement]
}

type ForEachLoop struct {
	Meta
	Control *ForEachControl
	Body    RightPadded[Statement]
}

// ForEachControl keeps the space before ":" in Variable.After and the space
// before ")" in Iterable.After.
type ForEachControl struct {
	Meta
	Variable RightPadded[*VariableDeclarations]
	Iterable RightPadded[Expression]
}

type Return struct {
	Meta
	Expression Expression
}

type Throw struct {
	Meta
	Exception Expression
}

type Break struct {
	Meta
	Label *Identifier
}

type Continue struct {
	Meta
	Label *Identifier
}

// Empty stands for a missing element: an empty statement, an empty argument
// list, an absent for-loop part.
type Empty struct {
	Meta
}

// Try holds resources separated by ";" with an optional trailing ";"
// recorded as a TrailingComma marker on the last resource.
type Try struct {
	Meta
	Resources *Container[Tree]
	Body      *Block
	Catches   []*Catch
	Finally   *LeftPadded[*Block]
}

type Catch struct {
	Meta
	Parameter *ControlParentheses
	Body      *Block
}

// MultiCatch is the "A | B" type of a catch parameter.
type MultiCatch struct {
	Meta
	Alternatives []RightPadded[TypeTree]
}

type Switch struct {
	Meta
	Selector *ControlParentheses
	Cases    *Block
}

// Case is a switch label with its statements. A default label is the
// identifier "default" and is printed without the "case" keyword. Each
// label's After is the space before the following "," or the ":" / "->".
// Rule cases have a Body instead of Statements; Body.After is the space
// before the terminating semicolon of a non-block body.
type Case struct {
	Meta
	Labels     []RightPadded[Expression]
	Rule       bool
	Statements []RightPadded[Statement]
	Body       *RightPadded[Tree]
}

// IsDefault reports whether c is the default case.
func (c *Case) IsDefault() bool {
	if len(c.Labels) != 1 {
		return false
	}
	id, ok := c.Labels[0].Element.(*Identifier)
	return ok && id.Name == "default"
}

// Yield produces the value of a switch expression.
type Yield struct {
	Meta
	Value Expression
}

// Label keeps the space before ":" in Label.After.
type Label struct {
	Meta
	Label     RightPadded[*Identifier]
	Statement Statement
}

type Synchronized struct {
	Meta
	Lock *ControlParentheses
	Body *Block
}

type Assert struct {
	Meta
	Condition Expression
	Detail    *LeftPadded[Expression]
}

func (n *If) withMeta(m Meta) Tree             { c := *n; c.Meta = m; return &c }
func (n *Else) withMeta(m Meta) Tree           { c := *n; c.Meta = m; return &c }
func (n *WhileLoop) withMeta(m Meta) Tree      { c := *n; c.Meta = m; return &c }
func (n *DoWhileLoop) withMeta(m Meta) Tree    { c := *n; c.Meta = m; return &c }
func (n *ForLoop) withMeta(m Meta) Tree        { c := *n; c.Meta = m; return &c }
func (n *ForControl) withMeta(m Meta) Tree     { c := *n; c.Meta = m; return &c }
func (n *ForEachLoop) withMeta(m Meta) Tree    { c := *n; c.Meta = m; return &c }
func (n *ForEachControl) withMeta(m Meta) Tree { c := *n; c.Meta = m; return &c }
func (n *Return) withMeta(m Meta) Tree         { c := *n; c.Meta = m; return &c }
func (n *Throw) withMeta(m Meta) Tree          { c := *n; c.Meta = m; return &c }
func (n *Break) withMeta(m Meta) Tree          { c := *n; c.Meta = m; return &c }
func (n *Continue) withMeta(m Meta) Tree       { c := *n; c.Meta = m; return &c }
func (n *Empty) withMeta(m Meta) Tree          { c := *n; c.Meta = m; return &c }
func (n *Try) withMeta(m Meta) Tree            { c := *n; c.Meta = m; return &c }
func (n *Catch) withMeta(m Meta) Tree          { c := *n; c.Meta = m; return &c }
func (n *MultiCatch) withMeta(m Meta) Tree     { c := *n; c.Meta = m; return &c }
func (n *Switch) withMeta(m Meta) Tree         { c := *n; c.Meta = m; return &c }
func (n *Case) withMeta(m Meta) Tree           { c := *n; c.Meta = m; return &c }
func (n *Label) withMeta(m Meta) Tree          { c := *n; c.Meta = m; return &c }
func (n *Yield) withMeta(m Meta) Tree          { c := *n; c.Meta = m; return &c }
func (n *Synchronized) withMeta(m Meta) Tree   { c := *n; c.Meta = m; return &c }
func (n *Assert) withMeta(m Meta) Tree         { c := *n; c.Meta = m; return &c }

// NeedsSemicolon reports whether s is terminated by ";" when it appears as a
// statement in a block or as the body of a control statement.
func NeedsSemicolon(s Statement) bool {
	switch n := s.(type) {
	case *VariableDeclarations, *MethodInvocation, *NewClass, *Assignment,
		*AssignmentOperation, *Unary, *Return, *Throw, *Break, *Continue,
		*Empty, *Assert, *DoWhileLoop, *Yield:
		return true
	case *MethodDeclaration:
		return n.Body == nil
	case *Label:
		return NeedsSemicolon(n.Statement)
	}
	return false
}
