package tree

// RightPadded is an element followed by the space before the next
// syntactic token, such as a statement and the space before its semicolon.
type RightPadded[T any] struct {
	Element T
	After   Space
	Markers Markers
}

// LeftPadded is an element preceded by the space before a keyword or
// operator that introduces it, such as the space before "extends".
type LeftPadded[T any] struct {
	Before  Space
	Element T
	Markers Markers
}

// Container is a delimited list. Before is the space before the opening
// delimiter; each element's After is the space before the following
// separator or the closing delimiter.
type Container[T any] struct {
	Before   Space
	Elements []RightPadded[T]
	Markers  Markers
}

func PadRight[T any](element T, after Space) RightPadded[T] {
	return RightPadded[T]{Element: element, After: after}
}

func PadLeft[T any](before Space, element T) LeftPadded[T] {
	return LeftPadded[T]{Before: before, Element: element}
}

func NewContainer[T any](before Space, elements ...RightPadded[T]) Container[T] {
	return Container[T]{Before: before, Elements: elements}
}

func (rp RightPadded[T]) WithElement(element T) RightPadded[T] {
	rp.Element = element
	return rp
}

func (rp RightPadded[T]) WithAfter(after Space) RightPadded[T] {
	rp.After = after
	return rp
}

func (lp LeftPadded[T]) WithElement(element T) LeftPadded[T] {
	lp.Element = element
	return lp
}

func (lp LeftPadded[T]) WithBefore(before Space) LeftPadded[T] {
	lp.Before = before
	return lp
}

func (c Container[T]) Len() int {
	return len(c.Elements)
}

// Values returns the unpadded elements.
func (c Container[T]) Values() []T {
	out := make([]T, len(c.Elements))
	for i, e := range c.Elements {
		out[i] = e.Element
	}
	return out
}

func (c Container[T]) WithBefore(before Space) Container[T] {
	c.Before = before
	return c
}

// WithElements returns a copy of c holding elements.
func (c Container[T]) WithElements(elements []RightPadded[T]) Container[T] {
	c.Elements = elements
	return c
}

// MapElements returns a copy of c with fn applied to each padded element.
func (c Container[T]) MapElements(fn func(i int, rp RightPadded[T]) RightPadded[T]) Container[T] {
	if len(c.Elements) == 0 {
		return c
	}
	out := make([]RightPadded[T], len(c.Elements))
	for i, e := range c.Elements {
		out[i] = fn(i, e)
	}
	c.Elements = out
	return c
}

// Last returns the last padded element, if any.
func (c Container[T]) Last() (RightPadded[T], bool) {
	if len(c.Elements) == 0 {
		var zero RightPadded[T]
		return zero, false
	}
	return c.Elements[len(c.Elements)-1], true
}

// MapRight applies fn to every element of list, returning a new slice.
func MapRight[T any](list []RightPadded[T], fn func(i int, rp RightPadded[T]) RightPadded[T]) []RightPadded[T] {
	if len(list) == 0 {
		return list
	}
	out := make([]RightPadded[T], len(list))
	for i, e := range list {
		out[i] = fn(i, e)
	}
	return out
}
