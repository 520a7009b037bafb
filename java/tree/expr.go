package tree

type Identifier struct {
	Meta
	Name string
}

// Literal keeps the literal exactly as written.
type Literal struct {
	Meta
	Source string
}

// FieldAccess is "target.name". Name.Before is the space before ".".
type FieldAccess struct {
	Meta
	Target Expression
	Name   LeftPadded[*Identifier]
}

// MethodInvocation keeps the space before "." in Select.After.
type MethodInvocation struct {
	Meta
	Select         *RightPadded[Expression]
	TypeParameters *Container[Expression]
	Name           *Identifier
	Arguments      Container[Expression]
}

// NewClass is an instance creation. The prefix precedes "new" and the
// class prefix is the space after it.
type NewClass struct {
	Meta
	Clazz     TypeTree
	Arguments Container[Expression]
	Body      *Block
}

// NewArray is an array creation or a bare "{...}" initializer when
// TypeExpression is nil. Initializer.Before is the space before "{".
type NewArray struct {
	Meta
	TypeExpression TypeTree
	Dimensions     []*ArrayDimension
	Initializer    *Container[Expression]
}

// ArrayDimension is "[index]"; the prefix is the space before "[".
type ArrayDimension struct {
	Meta
	Index RightPadded[Expression]
}

type ArrayAccess struct {
	Meta
	Indexed   Expression
	Dimension *ArrayDimension
}

type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpLess
	OpGreater
	OpLessEq
	OpGreaterEq
	OpEqual
	OpNotEqual
	OpBitAnd
	OpBitOr
	OpBitXor
	OpLeftShift
	OpRightShift
	OpUnsignedRightShift
	OpAnd
	OpOr
)

var binaryOpSymbols = map[BinaryOp]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%",
	OpLess: "<", OpGreater: ">", OpLessEq: "<=", OpGreaterEq: ">=",
	OpEqual: "==", OpNotEqual: "!=",
	OpBitAnd: "&", OpBitOr: "|", OpBitXor: "^",
	OpLeftShift: "<<", OpRightShift: ">>", OpUnsignedRightShift: ">>>",
	OpAnd: "&&", OpOr: "||",
}

func (op BinaryOp) String() string {
	return binaryOpSymbols[op]
}

// BinaryOpFor maps an operator symbol to its BinaryOp.
func BinaryOpFor(symbol string) (BinaryOp, bool) {
	for op, s := range binaryOpSymbols {
		if s == symbol {
			return op, true
		}
	}
	return 0, false
}

// Binary keeps the space before the operator in Operator.Before.
type Binary struct {
	Meta
	Left     Expression
	Operator LeftPadded[BinaryOp]
	Right    Expression
}

type UnaryOp int

const (
	OpPreIncrement UnaryOp = iota
	OpPreDecrement
	OpPostIncrement
	OpPostDecrement
	OpPositive
	OpNegative
	OpComplement
	OpNot
)

func (op UnaryOp) String() string {
	switch op {
	case OpPreIncrement, OpPostIncrement:
		return "++"
	case OpPreDecrement, OpPostDecrement:
		return "--"
	case OpPositive:
		return "+"
	case OpNegative:
		return "-"
	case OpComplement:
		return "~"
	default:
		return "!"
	}
}

// IsPostfix reports whether the operator follows its operand.
func (op UnaryOp) IsPostfix() bool {
	return op == OpPostIncrement || op == OpPostDecrement
}

// Unary keeps the space before a postfix operator in Operator.Before. For
// prefix operators the operand prefix is the space after the operator.
type Unary struct {
	Meta
	Operator   LeftPadded[UnaryOp]
	Expression Expression
}

// Assignment keeps the space before "=" in Assignment.Before.
type Assignment struct {
	Meta
	Variable   Expression
	Assignment LeftPadded[Expression]
}

type AssignOp int

const (
	OpAddAssign AssignOp = iota
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpModAssign
	OpAndAssign
	OpOrAssign
	OpXorAssign
	OpLeftShiftAssign
	OpRightShiftAssign
	OpUnsignedRightShiftAssign
)

var assignOpSymbols = map[AssignOp]string{
	OpAddAssign: "+=", OpSubAssign: "-=", OpMulAssign: "*=", OpDivAssign: "/=",
	OpModAssign: "%=", OpAndAssign: "&=", OpOrAssign: "|=", OpXorAssign: "^=",
	OpLeftShiftAssign: "<<=", OpRightShiftAssign: ">>=", OpUnsignedRightShiftAssign: ">>>=",
}

func (op AssignOp) String() string {
	return assignOpSymbols[op]
}

// AssignOpFor maps a compound assignment symbol to its AssignOp.
func AssignOpFor(symbol string) (AssignOp, bool) {
	for op, s := range assignOpSymbols {
		if s == symbol {
			return op, true
		}
	}
	return 0, false
}

type AssignmentOperation struct {
	Meta
	Variable   Expression
	Operator   LeftPadded[AssignOp]
	Assignment Expression
}

// Ternary keeps the spaces before "?" and ":" in the padded parts.
type Ternary struct {
	Meta
	Condition Expression
	TruePart  LeftPadded[Expression]
	FalsePart LeftPadded[Expression]
}

// Parentheses is a grouping "(expr)".
type Parentheses struct {
	Meta
	Tree RightPadded[Expression]
}

// ControlParentheses is the "(...)" of a control statement, a cast type or
// a catch parameter.
type ControlParentheses struct {
	Meta
	Tree RightPadded[Tree]
}

type TypeCast struct {
	Meta
	Clazz      *ControlParentheses
	Expression Expression
}

// InstanceOf keeps the space before "instanceof" in Expression.After.
// Pattern is the optional binding variable.
type InstanceOf struct {
	Meta
	Expression RightPadded[Expression]
	Clazz      TypeTree
	Pattern    *Identifier
}

// LambdaParameters are the parameters of a lambda. Unparenthesized lambdas
// have exactly one parameter.
type LambdaParameters struct {
	Meta
	Parenthesized bool
	Parameters    []RightPadded[Tree]
}

// Lambda keeps the space before "->" in Arrow. Body is an Expression or a Block.
type Lambda struct {
	Meta
	Parameters *LambdaParameters
	Arrow      Space
	Body       Tree
}

// MemberReference is "containing::reference"; Reference.Before is the space
// before "::".
type MemberReference struct {
	Meta
	Containing Expression
	Reference  LeftPadded[*Identifier]
}

func (n *Identifier) withMeta(m Meta) Tree          { c := *n; c.Meta = m; return &c }
func (n *Literal) withMeta(m Meta) Tree             { c := *n; c.Meta = m; return &c }
func (n *FieldAccess) withMeta(m Meta) Tree         { c := *n; c.Meta = m; return &c }
func (n *MethodInvocation) withMeta(m Meta) Tree    { c := *n; c.Meta = m; return &c }
func (n *NewClass) withMeta(m Meta) Tree            { c := *n; c.Meta = m; return &c }
func (n *NewArray) withMeta(m Meta) Tree            { c := *n; c.Meta = m; return &c }
func (n *ArrayDimension) withMeta(m Meta) Tree      { c := *n; c.Meta = m; return &c }
func (n *ArrayAccess) withMeta(m Meta) Tree         { c := *n; c.Meta = m; return &c }
func (n *Binary) withMeta(m Meta) Tree              { c := *n; c.Meta = m; return &c }
func (n *Unary) withMeta(m Meta) Tree               { c := *n; c.Meta = m; return &c }
func (n *Assignment) withMeta(m Meta) Tree          { c := *n; c.Meta = m; return &c }
func (n *AssignmentOperation) withMeta(m Meta) Tree { c := *n; c.Meta = m; return &c }
func (n *Ternary) withMeta(m Meta) Tree             { c := *n; c.Meta = m; return &c }
func (n *Parentheses) withMeta(m Meta) Tree         { c := *n; c.Meta = m; return &c }
func (n *ControlParentheses) withMeta(m Meta) Tree  { c := *n; c.Meta = m; return &c }
func (n *TypeCast) withMeta(m Meta) Tree            { c := *n; c.Meta = m; return &c }
func (n *InstanceOf) withMeta(m Meta) Tree          { c := *n; c.Meta = m; return &c }
func (n *LambdaParameters) withMeta(m Meta) Tree    { c := *n; c.Meta = m; return &c }
func (n *Lambda) withMeta(m Meta) Tree              { c := *n; c.Meta = m; return &c }
func (n *MemberReference) withMeta(m Meta) Tree     { c := *n; c.Meta = m; return &c }
