package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/lst/java/parser"
	"github.com/dhamidi/lst/java/printer"
	"github.com/dhamidi/lst/java/tree"
)

func TestSpacesOwnedDirectly(t *testing.T) {
	expr, err := parser.ParseExpression("a  +  b")
	require.NoError(t, err)

	assert.Equal(t, []tree.Space{tree.EmptySpace, tree.Whitespace("  ")}, tree.Spaces(expr))
}

func TestMapSpacesLeavesChildrenAlone(t *testing.T) {
	expr, err := parser.ParseExpression("a  +  b")
	require.NoError(t, err)

	got := tree.MapSpaces(expr, func(s tree.Space, loc tree.SpaceLoc) tree.Space {
		if loc == tree.LocBinaryOperator {
			return tree.SingleSpace
		}
		return s
	})
	assert.Equal(t, "a +  b", printer.Print(got))
	assert.Equal(t, "a  +  b", printer.Print(expr))
}

func TestMapAllSpaces(t *testing.T) {
	stmt, err := parser.ParseStatement("int[]  a  =  {1,  2,  };")
	require.NoError(t, err)

	var locs []tree.SpaceLoc
	got := tree.MapAllSpaces(stmt, func(s tree.Space, loc tree.SpaceLoc) tree.Space {
		locs = append(locs, loc)
		if s.Whitespace == "  " {
			return s.WithWhitespace(" ")
		}
		return s
	})
	assert.Equal(t, "int[] a = {1, 2, }", printer.Print(got))
	assert.Contains(t, locs, tree.LocTrailingComma)
	assert.Contains(t, locs, tree.LocInitializer)
}

func TestNeedsSemicolon(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"x = 1;", true},
		{"i++;", true},
		{"foo();", true},
		{"int a;", true},
		{"return;", true},
		{";", true},
		{"do x(); while (y);", true},
		{"outer: x = 1;", true},
		{"outer: while (x) {}", false},
		{"{}", false},
		{"if (x) y();", false},
		{"while (x) {}", false},
		{"try {} finally {}", false},
		{"switch (x) {}", false},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			stmt, err := parser.ParseStatement(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tree.NeedsSemicolon(stmt))

			printed := printer.Print(stmt)
			if tt.want {
				printed += ";"
			}
			assert.Equal(t, tt.src, printed)
		})
	}
}
