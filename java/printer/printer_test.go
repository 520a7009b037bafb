package printer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/lst/java/parser"
	"github.com/dhamidi/lst/java/printer"
	"github.com/dhamidi/lst/java/tree"
)

func ident(prefix tree.Space, name string) *tree.Identifier {
	return &tree.Identifier{Meta: tree.NewMeta(prefix), Name: name}
}

func TestPrintSynthesizedTree(t *testing.T) {
	call := &tree.MethodInvocation{
		Meta: tree.NewMeta(tree.EmptySpace),
		Name: ident(tree.EmptySpace, "f"),
		Arguments: tree.NewContainer(tree.EmptySpace,
			tree.PadRight[tree.Expression](ident(tree.EmptySpace, "a"), tree.EmptySpace),
			tree.PadRight[tree.Expression](ident(tree.SingleSpace, "b"), tree.EmptySpace),
		),
	}
	assert.Equal(t, "f(a, b)", printer.Print(call))
}

func TestPrintTrailingComma(t *testing.T) {
	last := tree.PadRight[tree.Expression](ident(tree.SingleSpace, "b"), tree.EmptySpace)
	last.Markers = tree.EmptyMarkers().Add(tree.TrailingComma{ID: tree.NewID(), Suffix: tree.SingleSpace})
	arr := &tree.NewArray{
		Meta: tree.NewMeta(tree.EmptySpace),
		Initializer: &tree.Container[tree.Expression]{
			Elements: []tree.RightPadded[tree.Expression]{
				tree.PadRight[tree.Expression](ident(tree.EmptySpace, "a"), tree.EmptySpace),
				last,
			},
		},
	}
	assert.Equal(t, "{a, b, }", printer.Print(arr))
}

func TestPrintWithOffsets(t *testing.T) {
	src := "class A {\n  int x;\n}\n"
	cu, err := parser.Parse([]byte(src))
	require.NoError(t, err)

	text, offsets := printer.PrintWithOffsets(cu)
	assert.Equal(t, src, text)

	x := tree.Collect[*tree.NamedVariable](cu)[0]
	off, ok := offsets[tree.IDOf(x)]
	require.True(t, ok)
	assert.Equal(t, "x;\n}\n", text[off:])

	field := tree.Collect[*tree.VariableDeclarations](cu)[0]
	assert.Equal(t, 2, printer.Column(text, offsets[tree.IDOf(field)]))
	assert.Equal(t, 0, offsets[tree.IDOf(cu)])
}

func TestColumn(t *testing.T) {
	tests := []struct {
		text   string
		offset int
		want   int
	}{
		{"abc", 0, 0},
		{"abc", 2, 2},
		{"a\nbc", 3, 1},
		{"a\n\n", 2, 0},
		{"ab", 10, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, printer.Column(tt.text, tt.offset), "Column(%q, %d)", tt.text, tt.offset)
	}
}

func TestFprint(t *testing.T) {
	expr, err := parser.ParseExpression("a /* why */ + b")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printer.Fprint(&buf, expr))
	assert.Equal(t, "a /* why */ + b", buf.String())
}
