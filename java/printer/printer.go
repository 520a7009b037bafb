// Package printer turns a syntax tree back into source text. Every space
// stored in the tree is printed as is, so an unmodified tree prints exactly
// the text it was parsed from.
package printer

import (
	"io"
	"strings"

	"github.com/dhamidi/lst/java/tree"
)

// Print returns the source text of t.
func Print(t tree.Tree) string {
	p := &printer{}
	p.tree(t)
	return p.buf.String()
}

// Fprint writes the source text of t to w.
func Fprint(w io.Writer, t tree.Tree) error {
	_, err := io.WriteString(w, Print(t))
	return err
}

// PrintWithOffsets returns the source text of t together with the byte
// offset at which each node's first token starts.
func PrintWithOffsets(t tree.Tree) (string, map[tree.ID]int) {
	p := &printer{offsets: make(map[tree.ID]int)}
	p.tree(t)
	return p.buf.String(), p.offsets
}

// Column returns the zero-based column of offset within text.
func Column(text string, offset int) int {
	if offset > len(text) {
		offset = len(text)
	}
	line := strings.LastIndexByte(text[:offset], '\n')
	return offset - line - 1
}

type printer struct {
	buf     strings.Builder
	offsets map[tree.ID]int
}

func (p *printer) write(s string) {
	p.buf.WriteString(s)
}

func (p *printer) space(s tree.Space) {
	p.buf.WriteString(s.Whitespace)
	for _, c := range s.Comments {
		p.buf.WriteString(c.Printed())
		p.buf.WriteString(c.Suffix)
	}
}

func (p *printer) open(t tree.Tree) {
	p.space(tree.PrefixOf(t))
	if p.offsets != nil {
		p.offsets[tree.IDOf(t)] = p.buf.Len()
	}
}

func (p *printer) opt(t tree.Tree) {
	if !tree.IsNil(t) {
		p.tree(t)
	}
}

func printList[T tree.Tree](p *printer, list []T) {
	for _, t := range list {
		p.tree(t)
	}
}

// printPadded prints elements separated by sep. A TrailingComma marker on
// the last element prints one more separator followed by the marker suffix.
func printPadded[T tree.Tree](p *printer, elements []tree.RightPadded[T], sep string) {
	for i, rp := range elements {
		p.tree(rp.Element)
		p.space(rp.After)
		if i < len(elements)-1 {
			p.write(sep)
			continue
		}
		if tc, ok := tree.FindMarker[tree.TrailingComma](rp.Markers); ok {
			p.write(sep)
			p.space(tc.Suffix)
		}
	}
}

func printContainer[T tree.Tree](p *printer, c tree.Container[T], open, sep, close string) {
	p.space(c.Before)
	p.write(open)
	printPadded(p, c.Elements, sep)
	p.write(close)
}

func printContainerOpt[T tree.Tree](p *printer, c *tree.Container[T], open, sep, close string) {
	if c != nil {
		printContainer(p, *c, open, sep, close)
	}
}

// statement prints a statement followed by its padding and, when the
// statement kind requires one, its semicolon.
func (p *printer) statement(rp tree.RightPadded[tree.Statement]) {
	p.tree(rp.Element)
	p.space(rp.After)
	if tree.NeedsSemicolon(rp.Element) {
		p.write(";")
	}
}

func (p *printer) leftKeyword(before tree.Space, keyword string) {
	p.space(before)
	p.write(keyword)
}

func (p *printer) tree(t tree.Tree) {
	p.open(t)
	switch n := t.(type) {
	case *tree.CompilationUnit:
		if n.Package != nil {
			p.tree(n.Package.Element)
			p.space(n.Package.After)
			p.write(";")
		}
		for _, imp := range n.Imports {
			p.tree(imp.Element)
			p.space(imp.After)
			p.write(";")
		}
		printList(p, n.Classes)
		p.space(n.EOF)
	case *tree.Package:
		p.write("package")
		p.tree(n.Expression)
	case *tree.Import:
		p.write("import")
		if n.Static.Element {
			p.leftKeyword(n.Static.Before, "static")
		}
		p.tree(n.Qualid)
	case *tree.ClassDeclaration:
		printList(p, n.LeadingAnnotations)
		printList(p, n.Modifiers)
		p.leftKeyword(n.KindPrefix, n.Kind.Keyword())
		p.tree(n.Name)
		printContainerOpt(p, n.TypeParameters, "<", ",", ">")
		printContainerOpt(p, n.PrimaryConstructor, "(", ",", ")")
		if n.Extends != nil {
			p.leftKeyword(n.Extends.Before, "extends")
			p.tree(n.Extends.Element)
		}
		if n.Implements != nil {
			p.leftKeyword(n.Implements.Before, n.ImplementsKeyword())
			printPadded(p, n.Implements.Elements, ",")
		}
		p.tree(n.Body)
	case *tree.EnumValueSet:
		printPadded(p, n.Enums, ",")
		if n.TerminatedWithSemicolon {
			p.write(";")
		}
	case *tree.EnumValue:
		printList(p, n.Annotations)
		p.tree(n.Name)
		printContainerOpt(p, n.Arguments, "(", ",", ")")
		p.opt(n.Body)
	case *tree.MethodDeclaration:
		printList(p, n.LeadingAnnotations)
		printList(p, n.Modifiers)
		printContainerOpt(p, n.TypeParameters, "<", ",", ">")
		p.opt(n.ReturnType)
		p.tree(n.Name)
		printContainer(p, n.Parameters, "(", ",", ")")
		if n.Throws != nil {
			p.leftKeyword(n.Throws.Before, "throws")
			printPadded(p, n.Throws.Elements, ",")
		}
		if n.DefaultValue != nil {
			p.leftKeyword(n.DefaultValue.Before, "default")
			p.tree(n.DefaultValue.Element)
		}
		p.opt(n.Body)
	case *tree.VariableDeclarations:
		printList(p, n.LeadingAnnotations)
		printList(p, n.Modifiers)
		p.opt(n.TypeExpression)
		if n.Varargs != nil {
			p.leftKeyword(*n.Varargs, "...")
		}
		printPadded(p, n.Variables, ",")
	case *tree.NamedVariable:
		p.tree(n.Name)
		for _, d := range n.Dimensions {
			p.leftKeyword(d.Before, "[")
			p.leftKeyword(d.Element, "]")
		}
		if n.Initializer != nil {
			p.leftKeyword(n.Initializer.Before, "=")
			p.tree(n.Initializer.Element)
		}
	case *tree.Modifier:
		p.write(n.Keyword)
	case *tree.Annotation:
		p.write("@")
		p.tree(n.AnnotationType)
		printContainerOpt(p, n.Arguments, "(", ",", ")")
	case *tree.TypeParameter:
		printList(p, n.Annotations)
		p.tree(n.Name)
		if n.Bounds != nil {
			p.leftKeyword(n.Bounds.Before, "extends")
			printPadded(p, n.Bounds.Elements, "&")
		}
	case *tree.Block:
		if n.Static.Element {
			p.write("static")
			p.space(n.Static.After)
		}
		p.write("{")
		for _, s := range n.Statements {
			p.statement(s)
		}
		p.space(n.End)
		p.write("}")
	case *tree.If:
		p.write("if")
		p.tree(n.Condition)
		p.statement(n.ThenPart)
		p.opt(n.ElsePart)
	case *tree.Else:
		p.write("else")
		p.statement(n.Body)
	case *tree.WhileLoop:
		p.write("while")
		p.tree(n.Condition)
		p.statement(n.Body)
	case *tree.DoWhileLoop:
		p.write("do")
		p.statement(n.Body)
		p.leftKeyword(n.Condition.Before, "while")
		p.tree(n.Condition.Element)
	case *tree.ForLoop:
		p.write("for")
		p.tree(n.Control)
		p.statement(n.Body)
	case *tree.ForControl:
		p.write("(")
		printPadded(p, n.Init, ",")
		p.write(";")
		p.tree(n.Condition.Element)
		p.space(n.Condition.After)
		p.write(";")
		printPadded(p, n.Update, ",")
		p.write(")")
	case *tree.ForEachLoop:
		p.write("for")
		p.tree(n.Control)
		p.statement(n.Body)
	case *tree.ForEachControl:
		p.write("(")
		p.tree(n.Variable.Element)
		p.space(n.Variable.After)
		p.write(":")
		p.tree(n.Iterable.Element)
		p.space(n.Iterable.After)
		p.write(")")
	case *tree.Return:
		p.write("return")
		p.opt(n.Expression)
	case *tree.Throw:
		p.write("throw")
		p.tree(n.Exception)
	case *tree.Break:
		p.write("break")
		p.opt(n.Label)
	case *tree.Continue:
		p.write("continue")
		p.opt(n.Label)
	case *tree.Yield:
		p.write("yield")
		p.tree(n.Value)
	case *tree.Empty:
	case *tree.Try:
		p.write("try")
		printContainerOpt(p, n.Resources, "(", ";", ")")
		p.tree(n.Body)
		printList(p, n.Catches)
		if n.Finally != nil {
			p.leftKeyword(n.Finally.Before, "finally")
			p.tree(n.Finally.Element)
		}
	case *tree.Catch:
		p.write("catch")
		p.tree(n.Parameter)
		p.tree(n.Body)
	case *tree.MultiCatch:
		printPadded(p, n.Alternatives, "|")
	case *tree.Switch:
		p.write("switch")
		p.tree(n.Selector)
		p.tree(n.Cases)
	case *tree.Case:
		if !n.IsDefault() {
			p.write("case")
		}
		printPadded(p, n.Labels, ",")
		if n.Rule {
			p.write("->")
			if n.Body != nil {
				p.tree(n.Body.Element)
				p.space(n.Body.After)
				if _, block := n.Body.Element.(*tree.Block); !block {
					p.write(";")
				}
			}
			break
		}
		p.write(":")
		for _, s := range n.Statements {
			p.statement(s)
		}
	case *tree.Label:
		p.tree(n.Label.Element)
		p.space(n.Label.After)
		p.write(":")
		p.tree(n.Statement)
	case *tree.Synchronized:
		p.write("synchronized")
		p.tree(n.Lock)
		p.tree(n.Body)
	case *tree.Assert:
		p.write("assert")
		p.tree(n.Condition)
		if n.Detail != nil {
			p.leftKeyword(n.Detail.Before, ":")
			p.tree(n.Detail.Element)
		}
	case *tree.Identifier:
		p.write(n.Name)
	case *tree.Literal:
		p.write(n.Source)
	case *tree.FieldAccess:
		p.tree(n.Target)
		p.leftKeyword(n.Name.Before, ".")
		p.tree(n.Name.Element)
	case *tree.MethodInvocation:
		if n.Select != nil {
			p.tree(n.Select.Element)
			p.space(n.Select.After)
			p.write(".")
		}
		printContainerOpt(p, n.TypeParameters, "<", ",", ">")
		p.tree(n.Name)
		printContainer(p, n.Arguments, "(", ",", ")")
	case *tree.NewClass:
		p.write("new")
		p.tree(n.Clazz)
		printContainer(p, n.Arguments, "(", ",", ")")
		p.opt(n.Body)
	case *tree.NewArray:
		if !tree.IsNil(n.TypeExpression) {
			p.write("new")
			p.tree(n.TypeExpression)
		}
		printList(p, n.Dimensions)
		printContainerOpt(p, n.Initializer, "{", ",", "}")
	case *tree.ArrayDimension:
		p.write("[")
		p.tree(n.Index.Element)
		p.space(n.Index.After)
		p.write("]")
	case *tree.ArrayAccess:
		p.tree(n.Indexed)
		p.tree(n.Dimension)
	case *tree.Binary:
		p.tree(n.Left)
		p.leftKeyword(n.Operator.Before, n.Operator.Element.String())
		p.tree(n.Right)
	case *tree.Unary:
		if n.Operator.Element.IsPostfix() {
			p.tree(n.Expression)
			p.leftKeyword(n.Operator.Before, n.Operator.Element.String())
			break
		}
		p.leftKeyword(n.Operator.Before, n.Operator.Element.String())
		p.tree(n.Expression)
	case *tree.Assignment:
		p.tree(n.Variable)
		p.leftKeyword(n.Assignment.Before, "=")
		p.tree(n.Assignment.Element)
	case *tree.AssignmentOperation:
		p.tree(n.Variable)
		p.leftKeyword(n.Operator.Before, n.Operator.Element.String())
		p.tree(n.Assignment)
	case *tree.Ternary:
		p.tree(n.Condition)
		p.leftKeyword(n.TruePart.Before, "?")
		p.tree(n.TruePart.Element)
		p.leftKeyword(n.FalsePart.Before, ":")
		p.tree(n.FalsePart.Element)
	case *tree.Parentheses:
		p.write("(")
		p.tree(n.Tree.Element)
		p.space(n.Tree.After)
		p.write(")")
	case *tree.ControlParentheses:
		p.write("(")
		p.tree(n.Tree.Element)
		p.space(n.Tree.After)
		p.write(")")
	case *tree.TypeCast:
		p.tree(n.Clazz)
		p.tree(n.Expression)
	case *tree.InstanceOf:
		p.tree(n.Expression.Element)
		p.space(n.Expression.After)
		p.write("instanceof")
		p.tree(n.Clazz)
		p.opt(n.Pattern)
	case *tree.LambdaParameters:
		if n.Parenthesized {
			p.write("(")
			printPadded(p, n.Parameters, ",")
			p.write(")")
			break
		}
		printPadded(p, n.Parameters, ",")
	case *tree.Lambda:
		p.tree(n.Parameters)
		p.leftKeyword(n.Arrow, "->")
		p.tree(n.Body)
	case *tree.MemberReference:
		p.tree(n.Containing)
		p.leftKeyword(n.Reference.Before, "::")
		p.tree(n.Reference.Element)
	case *tree.Primitive:
		p.write(n.Keyword)
	case *tree.ParameterizedType:
		p.tree(n.Clazz)
		printContainerOpt(p, n.TypeParameters, "<", ",", ">")
	case *tree.ArrayType:
		p.tree(n.ElementType)
		p.leftKeyword(n.Dimension.Before, "[")
		p.leftKeyword(n.Dimension.Element, "]")
	case *tree.Wildcard:
		p.write("?")
		if n.Bound != nil {
			p.leftKeyword(n.Bound.Before, n.Bound.Element.Keyword())
			p.opt(n.BoundedType)
		}
	case *tree.AnnotatedType:
		printList(p, n.Annotations)
		p.tree(n.TypeExpression)
	default:
		panic(&tree.UnknownKindError{Op: "printer.Print", Tree: t})
	}
}
