// Package tree is a lossless syntax tree for Java source. Every byte of the
// original text, whitespace and comments included, is owned by exactly one
// field of one node, so printing an unmodified tree reproduces its source.
//
// Nodes are pointers to structs that are never mutated once built. A change
// is expressed by copying the node with new field values; untouched subtrees
// are shared between the old and the new tree.
package tree

import (
	"fmt"
	"reflect"
)

// Meta is the data every node carries.
type Meta struct {
	ID      ID
	Prefix  Space
	Markers Markers
}

// NewMeta returns metadata with a fresh id.
func NewMeta(prefix Space) Meta {
	return Meta{ID: NewID(), Prefix: prefix, Markers: EmptyMarkers()}
}

func (m Meta) Metadata() Meta { return m }

// Tree is any node of the syntax tree. The set of implementations is closed.
type Tree interface {
	Metadata() Meta
	withMeta(Meta) Tree
}

// Expression is a node that can appear where a value is expected.
type Expression interface {
	Tree
	isExpression()
}

// Statement is a node that can appear in a block.
type Statement interface {
	Tree
	isStatement()
}

// TypeTree is a node that names a type.
type TypeTree interface {
	Tree
	isTypeTree()
}

// NameTree is a possibly qualified or parameterized name.
type NameTree interface {
	TypeTree
	isNameTree()
}

func IDOf(t Tree) ID               { return t.Metadata().ID }
func PrefixOf(t Tree) Space        { return t.Metadata().Prefix }
func MarkersOf(t Tree) Markers     { return t.Metadata().Markers }
func HasPrefixNewline(t Tree) bool { return t.Metadata().Prefix.HasNewline() }
func KindOf(t Tree) string         { return reflect.TypeOf(t).Elem().Name() }

// WithPrefix returns a copy of t with the given prefix.
func WithPrefix[T Tree](t T, prefix Space) T {
	m := t.Metadata()
	m.Prefix = prefix
	return t.withMeta(m).(T)
}

// WithMarkers returns a copy of t with the given markers.
func WithMarkers[T Tree](t T, markers Markers) T {
	m := t.Metadata()
	m.Markers = markers
	return t.withMeta(m).(T)
}

// WithID returns a copy of t with a different identity.
func WithID[T Tree](t T, id ID) T {
	m := t.Metadata()
	m.ID = id
	return t.withMeta(m).(T)
}

// IsNil reports whether t is nil or a typed nil pointer.
func IsNil(t any) bool {
	if t == nil {
		return true
	}
	v := reflect.ValueOf(t)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// UnknownKindError is raised when a node kind reaches a dispatch that does
// not handle it. It always indicates a bug.
type UnknownKindError struct {
	Op   string
	Tree Tree
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("%s: unhandled node kind %T", e.Op, e.Tree)
}

// RoleError is raised when a visitor replaces a node with one that cannot
// occupy the same position, or deletes a required child.
type RoleError struct {
	Want string
	Got  Tree
}

func (e *RoleError) Error() string {
	if e.Got == nil {
		return fmt.Sprintf("required %s was deleted", e.Want)
	}
	return fmt.Sprintf("replacement %T cannot be used as %s", e.Got, e.Want)
}
