package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/lst/java/parser"
	"github.com/dhamidi/lst/java/printer"
	"github.com/dhamidi/lst/java/tree"
)

const walkSource = `class A {
    int x;

    void f() {
        log();
        run(x);
    }

    void g() {
        return;
    }
}
`

func mustParse(t *testing.T, src string) *tree.CompilationUnit {
	t.Helper()
	cu, err := parser.Parse([]byte(src))
	require.NoError(t, err)
	return cu
}

func methods(cu *tree.CompilationUnit) []*tree.MethodDeclaration {
	return tree.Collect[*tree.MethodDeclaration](cu)
}

func TestWalkIdentityShares(t *testing.T) {
	cu := mustParse(t, walkSource)
	got := tree.Walk(tree.VisitorFuncs{}, cu, nil)
	assert.Same(t, cu, got)
}

func TestWalkReplaceSharesUntouchedSubtrees(t *testing.T) {
	cu := mustParse(t, walkSource)
	rename := tree.VisitorFuncs{
		Post: func(n tree.Tree, c *tree.Cursor) tree.Tree {
			if id, ok := n.(*tree.Identifier); ok && id.Name == "x" {
				if _, inMethod := tree.FirstEnclosing[*tree.MethodDeclaration](c); inMethod {
					renamed := *id
					renamed.Name = "y"
					return &renamed
				}
			}
			return n
		},
	}
	got := tree.Walk(rename, cu, nil).(*tree.CompilationUnit)

	assert.NotSame(t, cu, got)
	assert.Contains(t, printer.Print(got), "run(y);")
	assert.Contains(t, printer.Print(got), "int x;")
	assert.Equal(t, walkSource, printer.Print(cu), "the input tree must be unchanged")

	before, after := methods(cu), methods(got)
	require.Len(t, after, 2)
	assert.NotSame(t, before[0], after[0])
	assert.Same(t, before[1], after[1])
}

func TestWalkDeleteFromList(t *testing.T) {
	cu := mustParse(t, walkSource)
	drop := tree.VisitorFuncs{
		Pre: func(n tree.Tree, _ *tree.Cursor) tree.Tree {
			if mi, ok := n.(*tree.MethodInvocation); ok && mi.Name.Name == "log" {
				return nil
			}
			return n
		},
	}
	got := tree.Walk(drop, cu, nil)
	want := `class A {
    int x;

    void f() {
        run(x);
    }

    void g() {
        return;
    }
}
`
	assert.Equal(t, want, printer.Print(got))
}

func TestWalkRoleErrors(t *testing.T) {
	expr, err := parser.ParseExpression("a + b")
	require.NoError(t, err)

	assert.PanicsWithError(t, "required left operand was deleted", func() {
		tree.Walk(tree.VisitorFuncs{
			Pre: func(n tree.Tree, _ *tree.Cursor) tree.Tree {
				if id, ok := n.(*tree.Identifier); ok && id.Name == "a" {
					return nil
				}
				return n
			},
		}, expr, nil)
	})

	assert.PanicsWithError(t, "replacement *tree.Modifier cannot be used as right operand", func() {
		tree.Walk(tree.VisitorFuncs{
			Post: func(n tree.Tree, _ *tree.Cursor) tree.Tree {
				if id, ok := n.(*tree.Identifier); ok && id.Name == "b" {
					return &tree.Modifier{Meta: tree.NewMeta(tree.EmptySpace), Keyword: "final"}
				}
				return n
			},
		}, expr, nil)
	})
}

func TestChainOrder(t *testing.T) {
	expr, err := parser.ParseExpression("x")
	require.NoError(t, err)

	var calls []string
	record := func(name string) tree.Visitor {
		return tree.VisitorFuncs{
			Pre: func(n tree.Tree, _ *tree.Cursor) tree.Tree {
				calls = append(calls, name+".pre")
				return n
			},
			Post: func(n tree.Tree, _ *tree.Cursor) tree.Tree {
				calls = append(calls, name+".post")
				return n
			},
		}
	}
	tree.Walk(tree.Chain(record("a"), record("b")), expr, nil)
	assert.Equal(t, []string{"a.pre", "b.pre", "b.post", "a.post"}, calls)
}

func TestChainStopsAfterDeletion(t *testing.T) {
	cu := mustParse(t, walkSource)
	var seen int
	deleteCalls := tree.VisitorFuncs{
		Pre: func(n tree.Tree, _ *tree.Cursor) tree.Tree {
			if _, ok := n.(*tree.MethodInvocation); ok {
				return nil
			}
			return n
		},
	}
	count := tree.VisitorFuncs{
		Pre: func(n tree.Tree, _ *tree.Cursor) tree.Tree {
			if _, ok := n.(*tree.MethodInvocation); ok {
				seen++
			}
			return n
		},
	}
	got := tree.Walk(tree.Chain(deleteCalls, count), cu, nil)
	assert.Zero(t, seen)
	assert.Empty(t, tree.Collect[*tree.MethodInvocation](got))
}

func TestInspectSkipsChildren(t *testing.T) {
	cu := mustParse(t, walkSource)
	var names []string
	tree.Inspect(cu, func(n tree.Tree, _ *tree.Cursor) bool {
		switch n := n.(type) {
		case *tree.Block:
			if len(n.Statements) == 0 {
				break
			}
			if _, ok := n.Statements[0].Element.(*tree.MethodInvocation); ok {
				return false
			}
		case *tree.Identifier:
			names = append(names, n.Name)
		}
		return true
	})
	assert.Equal(t, []string{"A", "x", "f", "g"}, names)
}

func TestSkipChildrenStopsDescent(t *testing.T) {
	cu := mustParse(t, walkSource)
	var pre, post int
	tree.Walk(tree.VisitorFuncs{
		Pre: func(n tree.Tree, c *tree.Cursor) tree.Tree {
			pre++
			if _, ok := n.(*tree.ClassDeclaration); ok {
				c.SkipChildren()
			}
			return n
		},
		Post: func(n tree.Tree, _ *tree.Cursor) tree.Tree {
			post++
			return n
		},
	}, cu, nil)
	assert.Equal(t, 2, pre)
	assert.Equal(t, 2, post)
}

func TestCursor(t *testing.T) {
	cu := mustParse(t, walkSource)
	var checked bool
	tree.Walk(tree.VisitorFuncs{
		Pre: func(n tree.Tree, c *tree.Cursor) tree.Tree {
			switch n := n.(type) {
			case *tree.ClassDeclaration:
				c.PutMessage("class", n.Name.Name)
			case *tree.Identifier:
				if n.Name != "run" {
					return n
				}
				checked = true
				m, ok := tree.FirstEnclosing[*tree.MethodDeclaration](c)
				require.True(t, ok)
				assert.Equal(t, "f", m.Name.Name)

				class, ok := c.NearestMessage("class")
				require.True(t, ok)
				assert.Equal(t, "A", class)
				_, ok = c.Message("class")
				assert.False(t, ok, "Message only looks at the cursor itself")

				path := c.Path()
				assert.Same(t, cu, path[0])
				assert.Same(t, n, path[len(path)-1])
				assert.Equal(t, len(path)-1, c.Depth())
				assert.IsType(t, &tree.MethodInvocation{}, c.ParentTree())
			}
			return n
		},
	}, cu, nil)
	assert.True(t, checked)
}

func TestCursorFor(t *testing.T) {
	cu := mustParse(t, walkSource)
	ret := tree.Collect[*tree.Return](cu)[0]

	c := tree.CursorFor(cu, tree.IDOf(ret))
	require.NotNil(t, c)
	assert.Same(t, ret, c.Value())
	m, ok := tree.FirstEnclosing[*tree.MethodDeclaration](c)
	require.True(t, ok)
	assert.Equal(t, "g", m.Name.Name)

	assert.Nil(t, tree.CursorFor(cu, tree.NewID()))
}

func TestCollectIsInPrintOrder(t *testing.T) {
	cu := mustParse(t, walkSource)
	var names []string
	for _, m := range methods(cu) {
		names = append(names, m.Name.Name)
	}
	assert.Equal(t, []string{"f", "g"}, names)
	assert.Len(t, tree.Collect[*tree.MethodInvocation](cu), 2)
}
