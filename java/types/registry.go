package types

import "strings"

const (
	Object       = "java.lang.Object"
	Cloneable    = "java.lang.Cloneable"
	Serializable = "java.io.Serializable"
)

// Registry resolves class names to shared *Class values. Classes that are
// referenced before they are defined start as plain classes extending
// Object and are filled in by Define.
type Registry struct {
	classes map[string]*Class
}

// NewRegistry returns a registry that knows the core of java.lang and the
// java.util collections.
func NewRegistry() *Registry {
	r := &Registry{classes: make(map[string]*Class)}
	for _, d := range builtins {
		if _, err := r.Define(d.decl, d.kind, d.supertype, d.interfaces...); err != nil {
			panic(err)
		}
	}
	return r
}

// Class returns the class named fqn, creating it when it is not known yet.
func (r *Registry) Class(fqn string) *Class {
	if c, ok := r.classes[fqn]; ok {
		return c
	}
	c := &Class{FullyQualifiedName: fqn, Kind: KindClass}
	r.classes[fqn] = c
	return c
}

// Lookup returns the class named fqn if it has been referenced or defined.
func (r *Registry) Lookup(fqn string) (*Class, bool) {
	c, ok := r.classes[fqn]
	return c, ok
}

// Define declares a class. decl is the name with optional type parameters,
// like "java.util.Map<K, V>" or "java.lang.Enum<E extends java.lang.Enum<E>>".
// supertype and interfaces are signatures that may use those parameters; an
// empty supertype means Object.
func (r *Registry) Define(decl string, kind ClassKind, supertype string, interfaces ...string) (*Class, error) {
	p := r.newParser(decl, nil)
	name, err := p.qualifiedName()
	if err != nil {
		return nil, err
	}
	var params []*GenericTypeVariable
	if p.peek() == '<' {
		if params, err = p.typeParameters(); err != nil {
			return nil, err
		}
	}
	if err := p.end(); err != nil {
		return nil, err
	}

	c := r.Class(name)
	c.Kind = kind
	c.TypeParameters = params
	c.Supertype = nil
	if supertype != "" {
		if c.Supertype, err = r.Parse(supertype, params...); err != nil {
			return nil, err
		}
	}
	c.Interfaces = nil
	for _, i := range interfaces {
		t, err := r.Parse(i, params...)
		if err != nil {
			return nil, err
		}
		c.Interfaces = append(c.Interfaces, t)
	}
	return c, nil
}

// resolve maps a name to a class. Names without a package resolve to a
// known java.lang class when there is one.
func (r *Registry) resolve(name string) *Class {
	if !strings.Contains(name, ".") {
		if c, ok := r.classes["java.lang."+name]; ok {
			return c
		}
	}
	return r.Class(name)
}

type builtin struct {
	decl       string
	kind       ClassKind
	supertype  string
	interfaces []string
}

var builtins = []builtin{
	{"java.lang.Object", KindClass, "", nil},
	{"java.io.Serializable", KindInterface, "", nil},
	{"java.lang.Cloneable", KindInterface, "", nil},
	{"java.lang.Comparable<T>", KindInterface, "", nil},
	{"java.lang.CharSequence", KindInterface, "", nil},
	{"java.lang.Runnable", KindInterface, "", nil},
	{"java.lang.AutoCloseable", KindInterface, "", nil},
	{"java.lang.Iterable<T>", KindInterface, "", nil},
	{"java.lang.String", KindClass, "", []string{"java.io.Serializable", "java.lang.Comparable<java.lang.String>", "java.lang.CharSequence"}},
	{"java.lang.Number", KindClass, "", []string{"java.io.Serializable"}},
	{"java.lang.Byte", KindClass, "java.lang.Number", []string{"java.lang.Comparable<java.lang.Byte>"}},
	{"java.lang.Short", KindClass, "java.lang.Number", []string{"java.lang.Comparable<java.lang.Short>"}},
	{"java.lang.Integer", KindClass, "java.lang.Number", []string{"java.lang.Comparable<java.lang.Integer>"}},
	{"java.lang.Long", KindClass, "java.lang.Number", []string{"java.lang.Comparable<java.lang.Long>"}},
	{"java.lang.Float", KindClass, "java.lang.Number", []string{"java.lang.Comparable<java.lang.Float>"}},
	{"java.lang.Double", KindClass, "java.lang.Number", []string{"java.lang.Comparable<java.lang.Double>"}},
	{"java.lang.Boolean", KindClass, "", []string{"java.io.Serializable", "java.lang.Comparable<java.lang.Boolean>"}},
	{"java.lang.Character", KindClass, "", []string{"java.io.Serializable", "java.lang.Comparable<java.lang.Character>"}},
	{"java.lang.Enum<E extends java.lang.Enum<E>>", KindClass, "", []string{"java.lang.Comparable<E>", "java.io.Serializable"}},
	{"java.lang.Throwable", KindClass, "", []string{"java.io.Serializable"}},
	{"java.lang.Exception", KindClass, "java.lang.Throwable", nil},
	{"java.lang.RuntimeException", KindClass, "java.lang.Exception", nil},
	{"java.lang.Error", KindClass, "java.lang.Throwable", nil},
	{"java.util.Collection<E>", KindInterface, "", []string{"java.lang.Iterable<E>"}},
	{"java.util.List<E>", KindInterface, "", []string{"java.util.Collection<E>"}},
	{"java.util.Set<E>", KindInterface, "", []string{"java.util.Collection<E>"}},
	{"java.util.Queue<E>", KindInterface, "", []string{"java.util.Collection<E>"}},
	{"java.util.Deque<E>", KindInterface, "", []string{"java.util.Queue<E>"}},
	{"java.util.Map<K, V>", KindInterface, "", nil},
	{"java.util.AbstractCollection<E>", KindClass, "", []string{"java.util.Collection<E>"}},
	{"java.util.AbstractList<E>", KindClass, "java.util.AbstractCollection<E>", []string{"java.util.List<E>"}},
	{"java.util.ArrayList<E>", KindClass, "java.util.AbstractList<E>", []string{"java.util.List<E>", "java.lang.Cloneable", "java.io.Serializable"}},
	{"java.util.LinkedList<E>", KindClass, "java.util.AbstractList<E>", []string{"java.util.List<E>", "java.util.Deque<E>", "java.lang.Cloneable", "java.io.Serializable"}},
	{"java.util.HashSet<E>", KindClass, "java.util.AbstractCollection<E>", []string{"java.util.Set<E>", "java.lang.Cloneable", "java.io.Serializable"}},
	{"java.util.HashMap<K, V>", KindClass, "", []string{"java.util.Map<K, V>", "java.lang.Cloneable", "java.io.Serializable"}},
}

var boxes = map[Primitive]string{
	Boolean: "java.lang.Boolean",
	Byte:    "java.lang.Byte",
	Char:    "java.lang.Character",
	Short:   "java.lang.Short",
	Int:     "java.lang.Integer",
	Long:    "java.lang.Long",
	Float:   "java.lang.Float",
	Double:  "java.lang.Double",
}

var unboxes = func() map[string]Primitive {
	m := make(map[string]Primitive, len(boxes))
	for p, fqn := range boxes {
		m[fqn] = p
	}
	return m
}()
