package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkers(t *testing.T) {
	base := EmptyMarkers()
	search := SearchResult{ID: NewID(), Description: "found"}
	gen := Generated{ID: NewID()}

	m := base.Add(search).Add(gen)
	assert.Equal(t, 0, base.Len(), "Add must not modify the receiver")
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, base.ID, m.ID)

	found, ok := FindMarker[SearchResult](m)
	require.True(t, ok)
	assert.Equal(t, "found", found.Description)
	assert.True(t, HasMarker[Generated](m))
	assert.False(t, HasMarker[TrailingComma](m))

	removed := RemoveMarkers[SearchResult](m)
	assert.False(t, HasMarker[SearchResult](removed))
	assert.True(t, HasMarker[SearchResult](m))
	assert.Equal(t, []Marker{gen}, removed.Entries)
}

func TestSetMarker(t *testing.T) {
	first := TrailingComma{ID: NewID(), Suffix: SingleSpace}
	second := TrailingComma{ID: NewID(), Suffix: Whitespace("\n")}
	gen := Generated{ID: NewID()}

	m := SetMarker(EmptyMarkers().Add(first).Add(gen), second)
	assert.Equal(t, []Marker{second, gen}, m.Entries)

	m = SetMarker(EmptyMarkers(), first)
	assert.Equal(t, []Marker{first}, m.Entries)
}

func TestWithPrefixCopies(t *testing.T) {
	id := &Identifier{Meta: NewMeta(EmptySpace), Name: "x"}
	moved := WithPrefix(id, SingleSpace)

	assert.NotSame(t, id, moved)
	assert.Equal(t, EmptySpace, PrefixOf(id))
	assert.Equal(t, SingleSpace, PrefixOf(moved))
	assert.Equal(t, IDOf(id), IDOf(moved))
	assert.Equal(t, "Identifier", KindOf(moved))
}

func TestIsNil(t *testing.T) {
	var ident *Identifier
	var tr Tree
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(ident))
	assert.True(t, IsNil(tr))
	assert.False(t, IsNil(&Identifier{}))
}
