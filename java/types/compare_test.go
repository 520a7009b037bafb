package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestIsAssignableTo(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		to, from string
		mode     Mode
		want     bool
	}{
		{"int", "int", Bound, true},
		{"Integer", "int", Bound, true},
		{"int", "Integer", Bound, true},
		{"long", "Integer", Bound, true},
		{"int", "boolean", Bound, false},
		{"int", "long", Bound, false},
		{"long", "int", Bound, true},
		{"int", "char", Bound, true},
		{"char", "short", Bound, false},
		{"Object", "int", Bound, true},
		{"Number", "int", Bound, true},
		{"Long", "int", Bound, false},
		{"Object[]", "int[]", Bound, false},
		{"Object[]", "Integer[]", Bound, true},
		{"Number[]", "Integer[]", Bound, true},
		{"Integer[]", "Number[]", Bound, false},
		{"long[]", "int[]", Bound, false},
		{"Object", "int[]", Bound, true},
		{"Cloneable", "String[]", Bound, true},
		{"String", "null", Bound, true},
		{"int", "null", Bound, false},
		{"java.util.List<String>", "java.util.ArrayList<String>", Bound, true},
		{"java.util.List<Object>", "java.util.ArrayList<String>", Bound, false},
		{"java.lang.Iterable<String>", "java.util.ArrayList<String>", Bound, true},
		{"java.util.List<? extends Object>", "java.util.ArrayList<String>", Bound, true},
		{"java.util.List<? extends Number>", "java.util.List<String>", Bound, false},
		{"java.util.List<? super Integer>", "java.util.List<Number>", Bound, true},
		{"java.util.List<? super Number>", "java.util.List<Integer>", Bound, false},
		{"java.util.List<?>", "java.util.List<String>", Bound, true},
		{"java.util.List<? extends Number>", "java.util.List<? extends Integer>", Bound, true},
		{"java.util.List", "java.util.ArrayList<String>", Bound, true},
		{"java.util.List<String>", "java.util.List", Bound, true},
		{"Comparable<String>", "String", Bound, true},
		{"Comparable<Integer>", "String", Bound, false},
		{"java.util.Map<String, Integer>", "java.util.HashMap<String, Integer>", Bound, true},
		{"java.util.Map<Integer, String>", "java.util.HashMap<String, Integer>", Bound, false},
		{"String", "Object", Bound, false},
	}
	for _, tt := range tests {
		t.Run(tt.to+"<-"+tt.from, func(t *testing.T) {
			to := r.MustParse(tt.to)
			from := r.MustParse(tt.from)
			assert.Equal(t, tt.want, IsAssignableTo(to, from, tt.mode))
		})
	}
}

func TestIsOfType(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		a, b string
		want bool
	}{
		{"int", "int", true},
		{"int", "Integer", false},
		{"String", "java.lang.String", true},
		{"java.util.List<String>", "java.util.List<String>", true},
		{"java.util.List<String>", "java.util.List<Integer>", false},
		{"java.util.List<String>", "java.util.List", false},
		{"int[]", "int[]", true},
		{"int[][]", "int[]", false},
		{"java.util.List<? extends Number>", "java.util.List<? extends Number>", true},
		{"java.util.List<? extends Number>", "java.util.List<? super Number>", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsOfType(r.MustParse(tt.a), r.MustParse(tt.b), Bound), "%s vs %s", tt.a, tt.b)
	}
}

func TestInferIsPermissive(t *testing.T) {
	r := NewRegistry()
	n, err := r.TypeVariable("N")
	require.NoError(t, err)
	to := r.MustParse("java.util.Map<N, N>", n)
	from := r.MustParse("java.util.Map<Long, Integer>")

	// each occurrence of N is checked on its own
	assert.True(t, IsAssignableTo(to, from, Infer))
	assert.False(t, IsAssignableTo(to, from, Bound))

	bounded, err := r.TypeVariable("B extends Number")
	require.NoError(t, err)
	list := r.MustParse("java.util.List<B>", bounded)
	assert.True(t, IsAssignableTo(list, r.MustParse("java.util.List<Integer>"), Infer))
	assert.False(t, IsAssignableTo(list, r.MustParse("java.util.List<String>"), Infer))
	assert.True(t, IsOfType(bounded, r.MustParse("Long"), Infer))
	assert.False(t, IsOfType(bounded, r.MustParse("Long"), Bound))
}

func TestRecursiveBounds(t *testing.T) {
	r := NewRegistry()
	t1, err := r.TypeVariable("T extends Comparable<T>")
	require.NoError(t, err)
	t2, err := r.TypeVariable("T extends Comparable<T>")
	require.NoError(t, err)
	u, err := r.TypeVariable("U extends Comparable<U>")
	require.NoError(t, err)

	assert.True(t, IsOfType(t1, t1, Bound))
	assert.True(t, IsOfType(t1, t2, Bound))
	assert.False(t, IsOfType(t1, u, Bound))
	assert.True(t, IsAssignableTo(r.MustParse("Comparable<T>", t1), t1, Bound))
	assert.True(t, IsAssignableTo(r.MustParse("Object"), t1, Bound))
	assert.False(t, IsAssignableTo(r.MustParse("String"), t1, Bound))
	assert.True(t, IsAssignableTo(t1, t2, Infer))

	e, ok := r.Lookup("java.lang.Enum")
	require.True(t, ok)
	assert.True(t, IsOfType(e.TypeParameters[0], e.TypeParameters[0], Bound))
}

func TestIntersectionBounds(t *testing.T) {
	r := NewRegistry()
	v, err := r.TypeVariable("T extends Number & Comparable<T>")
	require.NoError(t, err)
	require.Len(t, v.Bounds, 2)

	assert.True(t, IsAssignableTo(r.MustParse("Number"), v, Bound))
	assert.True(t, IsAssignableTo(r.MustParse("Comparable<T>", v), v, Bound))
	assert.False(t, IsAssignableTo(r.MustParse("String"), v, Bound))
	assert.False(t, IsAssignableTo(r.MustParse("long"), v, Bound))

	both := &Intersection{Bounds: []JavaType{r.MustParse("Number"), r.MustParse("Comparable<Integer>")}}
	assert.True(t, IsAssignableTo(both, r.MustParse("Integer"), Bound))
	assert.False(t, IsAssignableTo(both, r.MustParse("Long"), Bound))
}

func TestUnknownNeverMatchesOthers(t *testing.T) {
	r := NewRegistry()
	assert.False(t, IsAssignableTo(r.MustParse("Object"), Unknown{}, Bound))
	assert.False(t, IsAssignableTo(Unknown{}, r.MustParse("String"), Infer))
	assert.False(t, IsOfType(Unknown{}, r.MustParse("String"), Bound))
	assert.False(t, IsAssignableTo(nil, r.MustParse("String"), Bound))
}

var signatures = []string{
	"int", "boolean", "char[]", "String", "Object", "Integer[]", "Number",
	"java.util.List<String>", "java.util.List<? extends Number>", "java.util.List<? super Integer>",
	"java.util.Map<String, java.util.List<Integer>>", "java.util.ArrayList<Object>[]",
	"Comparable<String>", "java.util.Map<?, ?>", "java.util.List",
}

func TestReflexive(t *testing.T) {
	r := NewRegistry()
	rapid.Check(t, func(t *rapid.T) {
		sig := rapid.SampledFrom(signatures).Draw(t, "sig")
		for _, mode := range []Mode{Bound, Infer} {
			a, b := r.MustParse(sig), r.MustParse(sig)
			if !IsOfType(a, b, mode) {
				t.Fatalf("%s is not of its own type under %s", sig, mode)
			}
			if !IsAssignableTo(a, b, mode) {
				t.Fatalf("%s is not assignable to itself under %s", sig, mode)
			}
		}
	})
}

func TestOfTypeIsSymmetric(t *testing.T) {
	r := NewRegistry()
	rapid.Check(t, func(t *rapid.T) {
		a := r.MustParse(rapid.SampledFrom(signatures).Draw(t, "a"))
		b := r.MustParse(rapid.SampledFrom(signatures).Draw(t, "b"))
		if IsOfType(a, b, Bound) != IsOfType(b, a, Bound) {
			t.Fatalf("IsOfType(%s, %s) is not symmetric", a, b)
		}
	})
}
