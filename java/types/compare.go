package types

// Mode selects how type variables take part in a comparison.
type Mode int

const (
	// Bound compares type variables by their declaration: a variable only
	// matches a variable with the same name and bounds.
	Bound Mode = iota
	// Infer treats a type variable as any type consistent with its bounds.
	// Each occurrence is checked on its own, so Map<N, N> accepts
	// Map<Long, Integer>.
	Infer
)

func (m Mode) String() string {
	if m == Infer {
		return "infer"
	}
	return "bound"
}

// core supplies the box classes and their supertypes.
var core = NewRegistry()

// IsOfType reports whether a and b denote the same type. Boxing does not
// make types equal.
func IsOfType(a, b JavaType, mode Mode) bool {
	return newComparison(mode).ofType(a, b)
}

// IsAssignableTo reports whether a value of type from can be assigned to a
// variable of type to, allowing widening, boxing, unboxing, subtyping,
// wildcard containment and unchecked conversion from raw types.
func IsAssignableTo(to, from JavaType, mode Mode) bool {
	return newComparison(mode).assignable(to, from)
}

type relation int

const (
	same relation = iota
	assigns
	contains
)

type pair struct {
	rel  relation
	a, b JavaType
}

// comparison holds the pairs already under comparison. A pair seen again
// is assumed to hold, which ends the recursion through cyclic bounds.
type comparison struct {
	mode    Mode
	visited map[pair]bool
}

func newComparison(mode Mode) *comparison {
	return &comparison{mode: mode, visited: make(map[pair]bool)}
}

func (c *comparison) enter(rel relation, a, b JavaType) bool {
	k := pair{rel, a, b}
	if c.visited[k] {
		return false
	}
	c.visited[k] = true
	return true
}

func isNil(t JavaType) bool {
	switch t := t.(type) {
	case nil:
		return true
	case *Class:
		return t == nil
	case *Parameterized:
		return t == nil
	case *GenericTypeVariable:
		return t == nil
	case *Array:
		return t == nil
	case *Intersection:
		return t == nil
	}
	return false
}

func (c *comparison) ofType(a, b JavaType) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	if a == b {
		return true
	}
	if !c.enter(same, a, b) {
		return true
	}
	if c.mode == Infer {
		if v, ok := a.(*GenericTypeVariable); ok && !v.IsWildcard() {
			return c.withinBounds(v, b)
		}
		if v, ok := b.(*GenericTypeVariable); ok && !v.IsWildcard() {
			return c.withinBounds(v, a)
		}
	}
	switch a := a.(type) {
	case Primitive:
		return a == b
	case *Class:
		switch b := b.(type) {
		case *Class:
			return a.FullyQualifiedName == b.FullyQualifiedName
		case *Parameterized:
			return c.mode == Infer && a.FullyQualifiedName == b.Type.FullyQualifiedName
		}
	case *Parameterized:
		switch b := b.(type) {
		case *Class:
			return c.mode == Infer && a.Type.FullyQualifiedName == b.FullyQualifiedName
		case *Parameterized:
			if a.Type.FullyQualifiedName != b.Type.FullyQualifiedName || len(a.TypeArguments) != len(b.TypeArguments) {
				return false
			}
			for i := range a.TypeArguments {
				if !c.ofType(a.TypeArguments[i], b.TypeArguments[i]) {
					return false
				}
			}
			return true
		}
	case *GenericTypeVariable:
		b, ok := b.(*GenericTypeVariable)
		if !ok || a.Name != b.Name || a.Variance != b.Variance {
			return false
		}
		return c.sameSet(a.Bounds, b.Bounds)
	case *Array:
		b, ok := b.(*Array)
		return ok && c.ofType(a.ElemType, b.ElemType)
	case *Intersection:
		b, ok := b.(*Intersection)
		return ok && c.sameSet(a.Bounds, b.Bounds)
	}
	return false
}

// sameSet reports whether two bound lists hold the same types in any order.
func (c *comparison) sameSet(a, b []JavaType) bool {
	if len(a) != len(b) {
		return false
	}
	for _, x := range a {
		found := false
		for _, y := range b {
			if c.ofType(x, y) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// withinBounds reports whether t could instantiate v.
func (c *comparison) withinBounds(v *GenericTypeVariable, t JavaType) bool {
	if p, ok := t.(Primitive); ok {
		box, boxed := boxes[p]
		if !boxed {
			return false
		}
		t = core.Class(box)
	}
	for _, b := range v.Bounds {
		if !c.assignable(b, t) {
			return false
		}
	}
	return true
}

func (c *comparison) assignable(to, from JavaType) bool {
	if isNil(to) || isNil(from) {
		return false
	}
	if to == from {
		return true
	}
	if !c.enter(assigns, to, from) {
		return true
	}
	if _, ok := to.(Unknown); ok {
		return false
	}
	if _, ok := from.(Unknown); ok {
		return false
	}
	if from == Null {
		_, primitive := to.(Primitive)
		return !primitive
	}

	switch t := to.(type) {
	case Primitive:
		return c.toPrimitive(t, from)
	case *Intersection:
		for _, b := range t.Bounds {
			if !c.assignable(b, from) {
				return false
			}
		}
		return true
	case *GenericTypeVariable:
		if t.IsWildcard() {
			return c.toWildcard(t, from)
		}
		if c.ofType(t, from) {
			return true
		}
		if c.mode == Infer {
			return c.withinBounds(t, from)
		}
	}

	switch f := from.(type) {
	case Primitive:
		box, ok := boxes[f]
		return ok && c.assignable(to, core.Class(box))
	case *GenericTypeVariable:
		return c.fromVariable(to, f)
	case *Intersection:
		for _, b := range f.Bounds {
			if c.assignable(to, b) {
				return true
			}
		}
		return false
	case *Array:
		return c.fromArray(to, f)
	}

	cls, ok := classOf(to)
	if !ok {
		return false
	}
	if cls.FullyQualifiedName == Object {
		return true
	}
	super, found := c.supertype(from, cls.FullyQualifiedName)
	if !found {
		return false
	}
	target, ok := to.(*Parameterized)
	if !ok {
		return true
	}
	actual, ok := super.(*Parameterized)
	if !ok || len(actual.TypeArguments) != len(target.TypeArguments) {
		// unchecked conversion from a raw type
		return true
	}
	for i := range target.TypeArguments {
		if !c.contains(target.TypeArguments[i], actual.TypeArguments[i]) {
			return false
		}
	}
	return true
}

var widening = map[Primitive][]Primitive{
	Byte:  {Short, Int, Long, Float, Double},
	Short: {Int, Long, Float, Double},
	Char:  {Int, Long, Float, Double},
	Int:   {Long, Float, Double},
	Long:  {Float, Double},
	Float: {Double},
}

func widens(to, from Primitive) bool {
	if to == from {
		return to != Null
	}
	for _, p := range widening[from] {
		if p == to {
			return true
		}
	}
	return false
}

func (c *comparison) toPrimitive(to Primitive, from JavaType) bool {
	switch f := from.(type) {
	case Primitive:
		return widens(to, f)
	case *Class:
		p, ok := unboxes[f.FullyQualifiedName]
		return ok && widens(to, p)
	case *GenericTypeVariable:
		for _, b := range f.Bounds {
			if c.toPrimitive(to, b) {
				return true
			}
		}
	case *Intersection:
		for _, b := range f.Bounds {
			if c.toPrimitive(to, b) {
				return true
			}
		}
	}
	return false
}

func (c *comparison) toWildcard(w *GenericTypeVariable, from JavaType) bool {
	if len(w.Bounds) == 0 {
		return true
	}
	switch w.Variance {
	case Covariant:
		return c.assignable(w.Bounds[0], from)
	case Contravariant:
		return c.assignable(from, w.Bounds[0])
	}
	return true
}

func (c *comparison) fromVariable(to JavaType, v *GenericTypeVariable) bool {
	if v.IsWildcard() {
		if v.Variance == Covariant && len(v.Bounds) > 0 {
			return c.assignable(to, v.Bounds[0])
		}
		return c.isObject(to)
	}
	if len(v.Bounds) == 0 {
		return c.isObject(to) || c.mode == Infer
	}
	for _, b := range v.Bounds {
		if c.assignable(to, b) {
			return true
		}
		if c.mode == Infer && c.assignable(b, to) {
			return true
		}
	}
	return false
}

func (c *comparison) isObject(t JavaType) bool {
	cls, ok := t.(*Class)
	return ok && cls.FullyQualifiedName == Object
}

func (c *comparison) fromArray(to JavaType, from *Array) bool {
	switch t := to.(type) {
	case *Array:
		_, toPrim := t.ElemType.(Primitive)
		_, fromPrim := from.ElemType.(Primitive)
		if toPrim || fromPrim {
			return c.ofType(t.ElemType, from.ElemType)
		}
		return c.assignable(t.ElemType, from.ElemType)
	case *Class:
		switch t.FullyQualifiedName {
		case Object, Cloneable, Serializable:
			return true
		}
	}
	return false
}

// contains reports whether the type argument from is contained by the
// type argument to.
func (c *comparison) contains(to, from JavaType) bool {
	if !c.enter(contains, to, from) {
		return true
	}
	v, ok := to.(*GenericTypeVariable)
	if !ok {
		return c.ofType(to, from)
	}
	if !v.IsWildcard() {
		return c.ofType(v, from)
	}
	if len(v.Bounds) == 0 {
		return true
	}
	bound := v.Bounds[0]
	w, wildcard := from.(*GenericTypeVariable)
	if wildcard && w.IsWildcard() {
		switch {
		case v.Variance == Covariant && w.Variance == Covariant && len(w.Bounds) > 0:
			return c.assignable(bound, w.Bounds[0])
		case v.Variance == Contravariant && w.Variance == Contravariant && len(w.Bounds) > 0:
			return c.assignable(w.Bounds[0], bound)
		case v.Variance == Covariant:
			return c.isObject(bound)
		}
		return false
	}
	if v.Variance == Contravariant {
		return c.assignable(from, bound)
	}
	return c.assignable(bound, from)
}

// supertype finds the supertype of t whose class is fqn, with the type
// arguments of t substituted into it.
func (c *comparison) supertype(t JavaType, fqn string) (JavaType, bool) {
	seen := make(map[string]bool)
	queue := []JavaType{t}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		cls, ok := classOf(next)
		if !ok || seen[cls.FullyQualifiedName] {
			continue
		}
		seen[cls.FullyQualifiedName] = true
		if cls.FullyQualifiedName == fqn {
			return next, true
		}
		queue = append(queue, directSupertypes(next)...)
	}
	return nil, false
}

// directSupertypes lists the superclass and interfaces of a class or
// parameterized type. A raw use of a generic class has raw supertypes.
func directSupertypes(t JavaType) []JavaType {
	cls, _ := classOf(t)
	var out []JavaType
	if cls.Supertype != nil {
		out = append(out, cls.Supertype)
	}
	out = append(out, cls.Interfaces...)
	if len(cls.TypeParameters) == 0 {
		return out
	}
	p, ok := t.(*Parameterized)
	if !ok || len(p.TypeArguments) != len(cls.TypeParameters) {
		for i, s := range out {
			out[i] = erase(s)
		}
		return out
	}
	m := make(map[*GenericTypeVariable]JavaType, len(cls.TypeParameters))
	for i, v := range cls.TypeParameters {
		m[v] = p.TypeArguments[i]
	}
	for i, s := range out {
		out[i] = substitute(s, m)
	}
	return out
}

func erase(t JavaType) JavaType {
	if p, ok := t.(*Parameterized); ok {
		return p.Type
	}
	return t
}

// substitute replaces the type variables of m in t. The bounds of
// variables that are not replaced are left alone.
func substitute(t JavaType, m map[*GenericTypeVariable]JavaType) JavaType {
	switch t := t.(type) {
	case *GenericTypeVariable:
		if r, ok := m[t]; ok {
			return r
		}
		if !t.IsWildcard() || len(t.Bounds) == 0 {
			return t
		}
		return &GenericTypeVariable{Name: t.Name, Variance: t.Variance, Bounds: substituteAll(t.Bounds, m)}
	case *Parameterized:
		return &Parameterized{Type: t.Type, TypeArguments: substituteAll(t.TypeArguments, m)}
	case *Array:
		return &Array{ElemType: substitute(t.ElemType, m)}
	case *Intersection:
		return &Intersection{Bounds: substituteAll(t.Bounds, m)}
	}
	return t
}

func substituteAll(list []JavaType, m map[*GenericTypeVariable]JavaType) []JavaType {
	out := make([]JavaType, len(list))
	for i, t := range list {
		out[i] = substitute(t, m)
	}
	return out
}
