// Package types models Java types as a graph and compares them for
// identity and assignability. The graph may be cyclic: a type variable such
// as T extends Comparable<T> refers to itself through its bound.
package types

import "strings"

// JavaType is one of Primitive, *Class, *Parameterized,
// *GenericTypeVariable, *Array, *Intersection or Unknown.
type JavaType interface {
	String() string
	javaType()
}

type Primitive string

const (
	Boolean Primitive = "boolean"
	Byte    Primitive = "byte"
	Char    Primitive = "char"
	Short   Primitive = "short"
	Int     Primitive = "int"
	Long    Primitive = "long"
	Float   Primitive = "float"
	Double  Primitive = "double"
	Void    Primitive = "void"
	Null    Primitive = "null"
)

var primitives = map[string]Primitive{
	"boolean": Boolean, "byte": Byte, "char": Char, "short": Short, "int": Int,
	"long": Long, "float": Float, "double": Double, "void": Void, "null": Null,
}

func (p Primitive) String() string { return string(p) }

type ClassKind string

const (
	KindClass      ClassKind = "class"
	KindInterface  ClassKind = "interface"
	KindEnum       ClassKind = "enum"
	KindAnnotation ClassKind = "annotation"
	KindRecord     ClassKind = "record"
)

// Class is a class or interface declaration. Supertype and Interfaces are
// written in terms of TypeParameters. A nil Supertype means
// java.lang.Object, or nothing for Object itself.
type Class struct {
	FullyQualifiedName string
	Kind               ClassKind
	TypeParameters     []*GenericTypeVariable
	Supertype          JavaType
	Interfaces         []JavaType
}

func (c *Class) String() string { return c.FullyQualifiedName }

// Parameterized is a generic class applied to type arguments.
type Parameterized struct {
	Type          *Class
	TypeArguments []JavaType
}

func (p *Parameterized) String() string {
	var b strings.Builder
	b.WriteString(p.Type.FullyQualifiedName)
	b.WriteByte('<')
	for i, arg := range p.TypeArguments {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteByte('>')
	return b.String()
}

type Variance int

const (
	Invariant Variance = iota
	Covariant
	Contravariant
)

// Wildcard is the name of a GenericTypeVariable that stands for "?".
const Wildcard = "?"

// GenericTypeVariable is a declared type variable or, named Wildcard, a
// wildcard type argument. The bounds of a wildcard are its extends or super
// types, as Variance says.
type GenericTypeVariable struct {
	Name     string
	Variance Variance
	Bounds   []JavaType
}

func (v *GenericTypeVariable) IsWildcard() bool { return v.Name == Wildcard }

func (v *GenericTypeVariable) String() string {
	if !v.IsWildcard() || len(v.Bounds) == 0 {
		return v.Name
	}
	keyword := " extends "
	if v.Variance == Contravariant {
		keyword = " super "
	}
	return v.Name + keyword + joinTypes(v.Bounds, " & ")
}

// Array is an array of ElemType. With a type variable as element it is a
// generic array.
type Array struct {
	ElemType JavaType
}

func (a *Array) String() string { return a.ElemType.String() + "[]" }

type Intersection struct {
	Bounds []JavaType
}

func (i *Intersection) String() string { return joinTypes(i.Bounds, " & ") }

// Unknown stands for a type that could not be resolved.
type Unknown struct{}

func (Unknown) String() string { return "<unknown>" }

func (Primitive) javaType()            {}
func (*Class) javaType()               {}
func (*Parameterized) javaType()       {}
func (*GenericTypeVariable) javaType() {}
func (*Array) javaType()               {}
func (*Intersection) javaType()        {}
func (Unknown) javaType()              {}

func joinTypes(list []JavaType, sep string) string {
	parts := make([]string, len(list))
	for i, t := range list {
		parts[i] = t.String()
	}
	return strings.Join(parts, sep)
}

// classOf returns the class behind a class or parameterized type.
func classOf(t JavaType) (*Class, bool) {
	switch t := t.(type) {
	case *Class:
		return t, true
	case *Parameterized:
		return t.Type, true
	}
	return nil, false
}
