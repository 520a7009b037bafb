package tree

// Primitive is a primitive type keyword or "void".
type Primitive struct {
	Meta
	Keyword string
}

// ParameterizedType is "Clazz<...>". A diamond holds a single Empty element.
type ParameterizedType struct {
	Meta
	Clazz          NameTree
	TypeParameters *Container[Expression]
}

// ArrayType is "ElementType[]". Dimension.Before is the space before "["
// and Dimension.Element the space before "]".
type ArrayType struct {
	Meta
	ElementType TypeTree
	Dimension   LeftPadded[Space]
}

type WildcardBound int

const (
	BoundExtends WildcardBound = iota
	BoundSuper
)

func (b WildcardBound) Keyword() string {
	if b == BoundSuper {
		return "super"
	}
	return "extends"
}

// Wildcard is "?" with an optional bound; Bound.Before is the space before
// the bound keyword.
type Wildcard struct {
	Meta
	Bound       *LeftPadded[WildcardBound]
	BoundedType TypeTree
}

// AnnotatedType is a type use preceded by annotations.
type AnnotatedType struct {
	Meta
	Annotations    []*Annotation
	TypeExpression TypeTree
}

func (n *Primitive) withMeta(m Meta) Tree         { c := *n; c.Meta = m; return &c }
func (n *ParameterizedType) withMeta(m Meta) Tree { c := *n; c.Meta = m; return &c }
func (n *ArrayType) withMeta(m Meta) Tree         { c := *n; c.Meta = m; return &c }
func (n *Wildcard) withMeta(m Meta) Tree          { c := *n; c.Meta = m; return &c }
func (n *AnnotatedType) withMeta(m Meta) Tree     { c := *n; c.Meta = m; return &c }
