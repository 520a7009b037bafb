package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		sig  string
		want string
	}{
		{"int", "int"},
		{"String", "java.lang.String"},
		{"java.util.Map<K, V>", "java.util.Map<K, V>"},
		{"java.util.Map<String,java.util.List<Integer>>", "java.util.Map<java.lang.String, java.util.List<java.lang.Integer>>"},
		{"int[][]", "int[][]"},
		{"java.util.List<? extends Number>", "java.util.List<? extends java.lang.Number>"},
		{"java.util.List<? super Integer>[]", "java.util.List<? super java.lang.Integer>[]"},
		{"java.util.List<?>", "java.util.List<?>"},
		{"com.example.Widget", "com.example.Widget"},
	}
	for _, tt := range tests {
		typ, err := r.Parse(tt.sig)
		require.NoError(t, err, tt.sig)
		assert.Equal(t, tt.want, typ.String(), tt.sig)
	}
}

func TestParseTypeVariables(t *testing.T) {
	r := NewRegistry()
	v, err := r.TypeVariable("T extends Comparable<T>")
	require.NoError(t, err)
	require.Len(t, v.Bounds, 1)

	bound, ok := v.Bounds[0].(*Parameterized)
	require.True(t, ok)
	assert.Same(t, v, bound.TypeArguments[0])

	list, err := r.Parse("java.util.List<T>[]", v)
	require.NoError(t, err)
	generic, ok := list.(*Array)
	require.True(t, ok)
	assert.Same(t, v, generic.ElemType.(*Parameterized).TypeArguments[0])
}

func TestParseErrors(t *testing.T) {
	r := NewRegistry()
	for _, sig := range []string{"", "java.util.List<", "int[", "Map<String String>", "? extends", "int int"} {
		_, err := r.Parse(sig)
		var serr *SignatureError
		assert.True(t, errors.As(err, &serr), "%q: %v", sig, err)
	}
}

func TestDefine(t *testing.T) {
	r := NewRegistry()
	_, err := r.Define("com.example.Box<T extends Number>", KindClass, "", "java.lang.Comparable<com.example.Box<T>>")
	require.NoError(t, err)

	box := r.MustParse("com.example.Box<Integer>")
	assert.True(t, IsAssignableTo(r.MustParse("Comparable<com.example.Box<Integer>>"), box, Bound))
	assert.False(t, IsAssignableTo(r.MustParse("Comparable<com.example.Box<Long>>"), box, Bound))

	_, err = r.Define("com.example.Broken<", KindClass, "")
	assert.Error(t, err)
}

func TestDescriptor(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		desc string
		want string
	}{
		{"I", "int"},
		{"[J", "long[]"},
		{"Ljava/lang/String;", "java.lang.String"},
		{"[[Ljava/util/List;", "java.util.List[][]"},
	}
	for _, tt := range tests {
		typ, err := r.Descriptor(tt.desc)
		require.NoError(t, err, tt.desc)
		assert.Equal(t, tt.want, typ.String())
	}

	str, err := r.Descriptor("Ljava/lang/String;")
	require.NoError(t, err)
	assert.Same(t, r.MustParse("String"), str)

	for _, desc := range []string{"", "[", "Q", "Ljava/lang/String"} {
		_, err := r.Descriptor(desc)
		assert.Error(t, err, desc)
	}
}
