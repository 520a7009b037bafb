package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/lst/java/tree"
)

func TestIntelliJDefaults(t *testing.T) {
	ns := IntelliJ()
	assert.Len(t, ns.Styles, 5)

	tabs, ok := Find[TabsAndIndentsStyle](ns)
	require.True(t, ok)
	assert.Equal(t, 4, tabs.IndentSize)
	assert.Equal(t, 8, tabs.ContinuationIndent)
	assert.False(t, tabs.UseTabCharacter)

	spaces := Default[SpacesStyle]()
	assert.True(t, spaces.BeforeParentheses.If)
	assert.False(t, spaces.BeforeParentheses.MethodCall)
	assert.True(t, spaces.AroundOperators.Assignment)
	assert.False(t, spaces.AroundOperators.Unary)

	blank := Default[BlankLinesStyle]()
	assert.Equal(t, 2, blank.KeepMaximum.BetweenHeaderAndPackage)
	assert.Equal(t, 1, blank.Minimum.AroundMethod)

	assert.Nil(t, Default[OtherStyle]().UseTrailingComma)
}

func TestMergeLaterWins(t *testing.T) {
	custom := DefaultTabsAndIndents()
	custom.IndentSize = 2
	override := NamedStyles{ID: tree.NewID(), Name: "two", Styles: []Style{custom}}

	merged := Merge(IntelliJ(), override)
	assert.Equal(t, "two", merged.Name)
	assert.Len(t, merged.Styles, 5)
	tabs, ok := Find[TabsAndIndentsStyle](merged)
	require.True(t, ok)
	assert.Equal(t, 2, tabs.IndentSize)

	spaces, ok := Find[SpacesStyle](merged)
	require.True(t, ok)
	assert.Equal(t, DefaultSpaces(), spaces)
}

func TestResolve(t *testing.T) {
	custom := DefaultSpaces()
	custom.BeforeParentheses.MethodCall = true
	marked := Attach(&tree.CompilationUnit{Meta: tree.NewMeta(tree.EmptySpace)},
		NamedStyles{ID: tree.NewID(), Name: "custom", Styles: []Style{custom}})
	plain := &tree.CompilationUnit{Meta: tree.NewMeta(tree.EmptySpace)}

	tests := []struct {
		name     string
		cu       *tree.CompilationUnit
		explicit *SpacesStyle
		want     bool
	}{
		{"default", plain, nil, false},
		{"nil unit", nil, nil, false},
		{"marker", marked, nil, true},
		{"explicit", plain, &custom, true},
		{"explicit beats marker", marked, ptr(DefaultSpaces()), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.cu, tt.explicit)
			assert.Equal(t, tt.want, got.BeforeParentheses.MethodCall)
		})
	}

	// A marker lacking a concern falls back to the default for it.
	assert.Equal(t, DefaultBlankLines(), Resolve[BlankLinesStyle](marked, nil))
}

func TestMarkerAndExplicitAgree(t *testing.T) {
	custom := DefaultWrappingAndBraces()
	custom.Braces.Other = NextLine
	marked := Attach(&tree.CompilationUnit{Meta: tree.NewMeta(tree.EmptySpace)},
		NamedStyles{ID: tree.NewID(), Styles: []Style{custom}})

	assert.Equal(t, Resolve(nil, &custom), Resolve[WrappingAndBracesStyle](marked, nil))
}

func TestLookup(t *testing.T) {
	ns, err := Lookup("intellij")
	require.NoError(t, err)
	assert.Equal(t, "IntelliJ IDEA", ns.DisplayName)

	_, err = Lookup("eclipse")
	var unknown *UnknownStyleError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "eclipse", unknown.Name)
}

func TestRenderAndWidth(t *testing.T) {
	spaces := DefaultTabsAndIndents()
	assert.Equal(t, "        ", spaces.Render(8))
	assert.Equal(t, "", spaces.Render(0))

	tabs := spaces
	tabs.UseTabCharacter = true
	assert.Equal(t, "\t\t", tabs.Render(8))
	assert.Equal(t, "\t  ", tabs.Render(6))

	assert.Equal(t, 8, tabs.Width("\t\t"))
	assert.Equal(t, 6, tabs.Width("\t  "))
	assert.Equal(t, 4, tabs.Width("  \t"))
}

func ptr[T any](v T) *T {
	return &v
}
