package format

import (
	"strings"

	"github.com/dhamidi/lst/java/printer"
	"github.com/dhamidi/lst/java/style"
	"github.com/dhamidi/lst/java/tree"
)

const (
	placementKey = "indent"
	childrenKey  = "children"
)

// placement is the indentation width of a node's line-starting tokens. A
// statement anchors continuation lines of everything inside it.
type placement struct {
	indent int
	stmt   bool
}

// NewTabsAndIndentsVisitor sets the indentation of every token that
// starts a line. Statements are indented one level per enclosing block and
// wrapped lines by the continuation indent of the line they continue.
func NewTabsAndIndentsVisitor(s style.TabsAndIndentsStyle, opts ...Option) tree.Visitor {
	o := newOptions(opts)
	v := &tabsVisitor{style: s}
	return o.wrap(tree.VisitorFuncs{Pre: v.pre})
}

// TabsAndIndents runs NewTabsAndIndentsVisitor over t. parent positions t
// inside a larger tree and may be nil.
func TabsAndIndents[T tree.Tree](t T, s style.TabsAndIndentsStyle, parent *tree.Cursor, opts ...Option) T {
	return apply(NewTabsAndIndentsVisitor(s, opts...), t, parent)
}

type tabsVisitor struct {
	style style.TabsAndIndentsStyle
}

func (v *tabsVisitor) pre(t tree.Tree, c *tree.Cursor) tree.Tree {
	p := v.place(c)
	c.PutMessage(placementKey, p)
	line := lineIndent(c)
	out := v.ownSpaces(t, c, p.indent, line)
	c.PutMessage(childrenKey, v.children(out, c, p.indent, line))
	return out
}

// place looks up the position the parent assigned to the node at c.
// Nodes the parent says nothing about continue the parent's line.
func (v *tabsVisitor) place(c *tree.Cursor) placement {
	parent := c.Parent()
	if kids, ok := parent.Message(childrenKey); ok {
		if p, ok := kids.(map[tree.ID]placement)[tree.IDOf(c.Value())]; ok {
			return p
		}
	}
	if _, ok := parent.Message(placementKey); !ok {
		return placement{indent: v.base(parent), stmt: true}
	}
	return placement{indent: lineIndent(parent) + v.style.ContinuationIndent}
}

// base is the indentation of a walk's root, derived from the block that
// encloses it.
func (v *tabsVisitor) base(parent *tree.Cursor) int {
	b, ok := tree.FirstEnclosing[*tree.Block](parent)
	if !ok {
		return 0
	}
	return v.style.Width(b.End.Indent()) + v.style.IndentSize
}

// lineIndent is the indentation of the line the node at c sits on.
func lineIndent(c *tree.Cursor) int {
	for p := c; p != nil; p = p.Parent() {
		m, ok := p.Message(placementKey)
		if !ok {
			break
		}
		pl := m.(placement)
		if pl.stmt || startsLine(p.Value()) {
			return pl.indent
		}
	}
	return 0
}

func startsLine(t tree.Tree) bool {
	return !tree.IsNil(t) && strings.Contains(tree.PrefixOf(t).LastWhitespace(), "\n")
}

// closers are the locations of spaces before a closing delimiter, which
// lines up with the line that opened it.
var closers = map[tree.SpaceLoc]bool{
	tree.LocArgumentSuffix:        true,
	tree.LocMethodParameterSuffix: true,
	tree.LocAnnotationArgSuffix:   true,
	tree.LocTypeArgumentSuffix:    true,
	tree.LocTypeParameterSuffix:   true,
	tree.LocRecordComponentSuffix: true,
	tree.LocArrayElementSuffix:    true,
	tree.LocResourceSuffix:        true,
	tree.LocForUpdateSuffix:       true,
	tree.LocParenthesesSuffix:     true,
	tree.LocForEachIterableSuffix: true,
	tree.LocArrayIndexSuffix:      true,
	tree.LocLambdaParameterSuffix: true,
}

func (v *tabsVisitor) ownSpaces(t tree.Tree, c *tree.Cursor, indent, line int) tree.Tree {
	counts := make(map[tree.SpaceLoc]int)
	tree.MapSpaces(t, func(s tree.Space, loc tree.SpaceLoc) tree.Space {
		counts[loc]++
		return s
	})
	inner := indent + v.style.IndentSize
	if _, ok := c.ParentTree().(*tree.Switch); ok {
		inner = indent + v.caseIndent()
	}
	_, method := t.(*tree.MethodDeclaration)
	cont := line + v.style.ContinuationIndent
	seen := make(map[tree.SpaceLoc]int)
	return mapSpaces(t, func(s tree.Space, loc tree.SpaceLoc) tree.Space {
		seen[loc]++
		last := seen[loc] == counts[loc]
		switch {
		case loc == tree.LocPrefix, loc == tree.LocClassKind:
			return v.indentSpace(s, indent, indent)
		case loc == tree.LocTypeParameters && method:
			return v.indentSpace(s, indent, indent)
		case loc == tree.LocBlockEnd:
			return v.indentSpace(s, inner, indent)
		case loc == tree.LocWhile, loc == tree.LocFinally, loc == tree.LocBlockStatic:
			return v.indentSpace(s, line, line)
		case loc == tree.LocEOF, loc == tree.LocPackageSuffix, loc == tree.LocImportSuffix:
			return v.indentSpace(s, 0, 0)
		case loc == tree.LocTrailingComma, closers[loc] && last:
			return v.indentSpace(s, line, line)
		}
		return v.indentSpace(s, cont, cont)
	})
}

func (v *tabsVisitor) caseIndent() int {
	if v.style.IndentCaseFromSwitch {
		return v.style.IndentSize
	}
	return 0
}

// children assigns positions to the children of t that start lines in a
// way that does not follow from the continuation indent.
func (v *tabsVisitor) children(t tree.Tree, c *tree.Cursor, indent, line int) map[tree.ID]placement {
	size := v.style.IndentSize
	m := make(map[tree.ID]placement)
	put := func(child tree.Tree, indent int, stmt bool) {
		if !tree.IsNil(child) {
			m[tree.IDOf(child)] = placement{indent: indent, stmt: stmt}
		}
	}
	body := func(s tree.Statement) {
		if _, ok := s.(*tree.Block); ok {
			put(s, line, false)
			return
		}
		put(s, line+size, true)
	}
	header := func(anns []*tree.Annotation, mods []*tree.Modifier) {
		for _, a := range anns {
			put(a, indent, false)
		}
		for _, mod := range mods {
			put(mod, indent, false)
		}
	}

	switch n := t.(type) {
	case *tree.CompilationUnit:
		if n.Package != nil {
			put(n.Package.Element, 0, true)
		}
		for _, imp := range n.Imports {
			put(imp.Element, 0, true)
		}
		for _, cd := range n.Classes {
			put(cd, 0, true)
		}
	case *tree.Block:
		inner := indent + size
		if _, ok := c.ParentTree().(*tree.Switch); ok {
			inner = indent + v.caseIndent()
		}
		for _, s := range n.Statements {
			put(s.Element, inner, true)
		}
	case *tree.Case:
		for _, s := range n.Statements {
			put(s.Element, indent+size, true)
		}
		if n.Body != nil {
			if _, ok := n.Body.Element.(*tree.Block); ok {
				put(n.Body.Element, line, false)
			} else {
				put(n.Body.Element, line+size, false)
			}
		}
	case *tree.Label:
		put(n.Statement, indent, true)
	case *tree.EnumValueSet:
		for _, ev := range n.Enums {
			put(ev.Element, indent, true)
		}
	case *tree.If:
		body(n.ThenPart.Element)
		if n.ElsePart != nil {
			put(n.ElsePart, line, false)
		}
	case *tree.Else:
		if _, ok := n.Body.Element.(*tree.If); ok {
			put(n.Body.Element, indent, false)
		} else {
			body(n.Body.Element)
		}
	case *tree.WhileLoop:
		body(n.Body.Element)
	case *tree.DoWhileLoop:
		body(n.Body.Element)
	case *tree.ForLoop:
		body(n.Body.Element)
	case *tree.ForEachLoop:
		body(n.Body.Element)
	case *tree.Try:
		put(n.Body, line, false)
		for _, cc := range n.Catches {
			put(cc, line, false)
		}
		if n.Finally != nil {
			put(n.Finally.Element, line, false)
		}
	case *tree.Catch:
		put(n.Body, line, false)
	case *tree.Synchronized:
		put(n.Body, line, false)
	case *tree.Switch:
		put(n.Cases, line, false)
	case *tree.Lambda:
		if _, ok := n.Body.(*tree.Block); ok {
			put(n.Body, line, false)
		}
	case *tree.NewClass:
		if n.Body != nil {
			put(n.Body, line, false)
		}
		if v.style.MethodCallArguments.AlignWhenMultiple {
			alignList(v, c, t, m, n.Arguments.Elements)
		}
	case *tree.EnumValue:
		if n.Body != nil {
			put(n.Body, line, false)
		}
		if n.Arguments != nil && v.style.MethodCallArguments.AlignWhenMultiple {
			alignList(v, c, t, m, n.Arguments.Elements)
		}
	case *tree.MethodInvocation:
		if v.style.MethodCallArguments.AlignWhenMultiple {
			alignList(v, c, t, m, n.Arguments.Elements)
		}
	case *tree.MethodDeclaration:
		header(n.LeadingAnnotations, n.Modifiers)
		put(n.ReturnType, indent, false)
		if n.ReturnType == nil {
			put(n.Name, indent, false)
		}
		if n.Body != nil {
			put(n.Body, line, false)
		}
		if v.style.MethodDeclarationParameters.AlignWhenMultiple {
			alignList(v, c, t, m, n.Parameters.Elements)
		}
	case *tree.ClassDeclaration:
		header(n.LeadingAnnotations, n.Modifiers)
		put(n.Body, line, false)
	case *tree.VariableDeclarations:
		header(n.LeadingAnnotations, n.Modifiers)
		put(n.TypeExpression, indent, false)
	}
	return m
}

// alignList lines up the elements of a list after the first with the
// column of the first one.
func alignList[T tree.Tree](v *tabsVisitor, c *tree.Cursor, self tree.Tree, m map[tree.ID]placement, elems []tree.RightPadded[T]) {
	if len(elems) < 2 || startsLine(elems[0].Element) {
		return
	}
	col, ok := v.column(c, self, elems[0].Element)
	if !ok {
		return
	}
	for _, e := range elems[1:] {
		m[tree.IDOf(e.Element)] = placement{indent: col}
	}
}

// column finds the column at which first is printed, measured on the line
// that contains it. self is the rewritten value of the node at c.
func (v *tabsVisitor) column(c *tree.Cursor, self tree.Tree, first tree.Tree) (int, bool) {
	var root tree.Tree
	for p := c; p != nil; p = p.Parent() {
		value := p.Value()
		if p == c {
			value = self
		}
		m, ok := p.Message(placementKey)
		if !ok || tree.IsNil(value) {
			break
		}
		if m.(placement).stmt || startsLine(value) {
			root = value
			break
		}
	}
	if root == nil {
		return 0, false
	}
	text, offsets := printer.PrintWithOffsets(root)
	off, ok := offsets[tree.IDOf(first)]
	if !ok {
		return 0, false
	}
	start := strings.LastIndexByte(text[:off], '\n') + 1
	return v.style.Width(text[start:off]), true
}

// indentSpace replaces the indentation after each line break of s.
// Whitespace before a comment gets comment columns, the whitespace before
// the next token gets last columns.
func (v *tabsVisitor) indentSpace(s tree.Space, comment, last int) tree.Space {
	n := len(s.Comments)
	run := func(i int) int {
		if i == n {
			return last
		}
		return comment
	}
	out := s.WithWhitespace(v.reindentRun(s.Whitespace, run(0)))
	if n == 0 {
		return out
	}
	prev := s.Whitespace
	comments := make([]tree.Comment, n)
	for i, cm := range s.Comments {
		if cm.Multiline() && strings.Contains(prev, "\n") {
			cm = cm.WithText(v.realign(cm.Text, comment))
		}
		prev = cm.Suffix
		comments[i] = cm.WithSuffix(v.reindentRun(cm.Suffix, run(i+1)))
	}
	return out.WithComments(comments)
}

func (v *tabsVisitor) reindentRun(ws string, width int) string {
	i := strings.LastIndexByte(ws, '\n')
	if i < 0 {
		return ws
	}
	return ws[:i+1] + v.style.Render(width)
}

// realign moves the leading "*" of each continuation line of a block
// comment, and the closing delimiter on a line of its own, under the first
// "*" of its opening delimiter.
func (v *tabsVisitor) realign(text string, width int) string {
	lines := strings.Split(text, "\n")
	last := len(lines) - 1
	for i := 1; i < len(lines); i++ {
		trimmed := strings.TrimLeft(lines[i], " \t")
		if strings.HasPrefix(trimmed, "*") || i == last && trimmed == "" {
			lines[i] = v.style.Render(width) + " " + trimmed
		}
	}
	return strings.Join(lines, "\n")
}
