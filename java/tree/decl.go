package tree

// CompilationUnit is a whole source file. Package.After and each import's
// After are the space before the terminating semicolon.
type CompilationUnit struct {
	Meta
	SourcePath string
	Package    *RightPadded[*Package]
	Imports    []RightPadded[*Import]
	Classes    []*ClassDeclaration
	EOF        Space
}

type Package struct {
	Meta
	Expression Expression
}

// Import is an import declaration. Static.Before is the space before the
// "static" keyword when Static.Element is set.
type Import struct {
	Meta
	Static LeftPadded[bool]
	Qualid *FieldAccess
}

// ClassKind is the keyword introducing a type declaration.
type ClassKind int

const (
	KindClass ClassKind = iota
	KindInterface
	KindEnum
	KindRecord
	KindAnnotation
)

func (k ClassKind) Keyword() string {
	switch k {
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	case KindRecord:
		return "record"
	case KindAnnotation:
		return "@interface"
	default:
		return "class"
	}
}

// ClassDeclaration covers classes, interfaces, enums, records and annotation
// types. KindPrefix is the space before the kind keyword. For interfaces the
// "extends" list lives in Implements.
type ClassDeclaration struct {
	Meta
	LeadingAnnotations []*Annotation
	Modifiers          []*Modifier
	KindPrefix         Space
	Kind               ClassKind
	Name               *Identifier
	TypeParameters     *Container[*TypeParameter]
	PrimaryConstructor *Container[Statement]
	Extends            *LeftPadded[TypeTree]
	Implements         *Container[TypeTree]
	Body               *Block
}

// ImplementsKeyword is the keyword printed before the Implements list.
func (c *ClassDeclaration) ImplementsKeyword() string {
	if c.Kind == KindInterface {
		return "extends"
	}
	return "implements"
}

// EnumValueSet is the constant list at the top of an enum body.
type EnumValueSet struct {
	Meta
	Enums                   []RightPadded[*EnumValue]
	TerminatedWithSemicolon bool
}

type EnumValue struct {
	Meta
	Annotations []*Annotation
	Name        *Identifier
	Arguments   *Container[Expression]
	Body        *Block
}

// MethodDeclaration is a method or constructor. ReturnType is nil for
// constructors. A nil Body means the declaration ends with a semicolon.
type MethodDeclaration struct {
	Meta
	LeadingAnnotations []*Annotation
	Modifiers          []*Modifier
	TypeParameters     *Container[*TypeParameter]
	ReturnType         TypeTree
	Name               *Identifier
	Parameters         Container[Statement]
	Throws             *Container[TypeTree]
	DefaultValue       *LeftPadded[Expression]
	Body               *Block
}

// IsConstructor reports whether m declares a constructor.
func (m *MethodDeclaration) IsConstructor() bool {
	return m.ReturnType == nil
}

// VariableDeclarations declares one or more variables of a type. Varargs is
// the space before "..." when present.
type VariableDeclarations struct {
	Meta
	LeadingAnnotations []*Annotation
	Modifiers          []*Modifier
	TypeExpression     TypeTree
	Varargs            *Space
	Variables          []RightPadded[*NamedVariable]
}

// NamedVariable is one declarator. Each dimension is "[" ... "]" written
// after the name, Before being the space before "[" and Element the space
// before "]".
type NamedVariable struct {
	Meta
	Name        *Identifier
	Dimensions  []LeftPadded[Space]
	Initializer *LeftPadded[Expression]
}

// Modifier is a modifier keyword such as "public" or "non-sealed".
type Modifier struct {
	Meta
	Keyword string
}

type Annotation struct {
	Meta
	AnnotationType NameTree
	Arguments      *Container[Expression]
}

// TypeParameter declares a type variable. Bounds.Before is the space before
// "extends"; bounds are separated by "&".
type TypeParameter struct {
	Meta
	Annotations []*Annotation
	Name        *Identifier
	Bounds      *Container[TypeTree]
}

// Block is a brace-delimited list of statements. When Static.Element is
// set the block is a static initializer and Static.After is the space
// between "static" and "{". End is the space before "}".
type Block struct {
	Meta
	Static     RightPadded[bool]
	Statements []RightPadded[Statement]
	End        Space
}

func (n *CompilationUnit) withMeta(m Meta) Tree      { c := *n; c.Meta = m; return &c }
func (n *Package) withMeta(m Meta) Tree              { c := *n; c.Meta = m; return &c }
func (n *Import) withMeta(m Meta) Tree               { c := *n; c.Meta = m; return &c }
func (n *ClassDeclaration) withMeta(m Meta) Tree     { c := *n; c.Meta = m; return &c }
func (n *EnumValueSet) withMeta(m Meta) Tree         { c := *n; c.Meta = m; return &c }
func (n *EnumValue) withMeta(m Meta) Tree            { c := *n; c.Meta = m; return &c }
func (n *MethodDeclaration) withMeta(m Meta) Tree    { c := *n; c.Meta = m; return &c }
func (n *VariableDeclarations) withMeta(m Meta) Tree { c := *n; c.Meta = m; return &c }
func (n *NamedVariable) withMeta(m Meta) Tree        { c := *n; c.Meta = m; return &c }
func (n *Modifier) withMeta(m Meta) Tree             { c := *n; c.Meta = m; return &c }
func (n *Annotation) withMeta(m Meta) Tree           { c := *n; c.Meta = m; return &c }
func (n *TypeParameter) withMeta(m Meta) Tree        { c := *n; c.Meta = m; return &c }
func (n *Block) withMeta(m Meta) Tree                { c := *n; c.Meta = m; return &c }
