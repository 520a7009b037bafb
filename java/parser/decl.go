package parser

import "github.com/dhamidi/lst/java/tree"

func (p *Parser) parseCompilationUnit() *tree.CompilationUnit {
	cu := &tree.CompilationUnit{Meta: meta(p.space()), SourcePath: p.file}
	for _, m := range p.markers {
		cu.Markers = cu.Markers.Add(m)
	}
	if p.check(TokenPackage) {
		pkg := &tree.Package{Meta: meta(p.space())}
		p.advance()
		pkg.Expression = p.parseQualifiedName(false).(tree.Expression)
		rp := tree.PadRight(pkg, p.skip(TokenSemicolon))
		cu.Package = &rp
	}
	for p.check(TokenImport) {
		imp := p.parseImport()
		cu.Imports = append(cu.Imports, tree.PadRight(imp, p.skip(TokenSemicolon)))
	}
	for !p.check(TokenEOF) {
		if p.check(TokenSemicolon) {
			p.fail("stray ';' between type declarations")
		}
		prefix := p.space()
		mods := p.parseModifiers()
		if !p.atClassKind() {
			p.fail("expected a type declaration, found %s", describe(p.peek()))
		}
		cu.Classes = append(cu.Classes, p.parseClassDecl(prefix, mods))
	}
	cu.EOF = p.space()
	return cu
}

func (p *Parser) parseImport() *tree.Import {
	imp := &tree.Import{Meta: meta(p.space())}
	p.advance()
	if p.check(TokenStatic) {
		imp.Static = tree.PadLeft(p.skip(TokenStatic), true)
	}
	name, ok := p.parseQualifiedName(true).(*tree.FieldAccess)
	if !ok {
		p.fail("import of an unqualified name")
	}
	imp.Qualid = name
	return imp
}

// parseQualifiedName parses a dotted name. With wildcard set the last part
// may be "*".
func (p *Parser) parseQualifiedName(wildcard bool) tree.NameTree {
	var name tree.NameTree = p.parseIdent()
	for p.check(TokenDot) {
		dot := p.skip(TokenDot)
		var part *tree.Identifier
		if wildcard && p.check(TokenStar) {
			part = &tree.Identifier{Meta: meta(p.space()), Name: "*"}
			p.advance()
		} else {
			part = p.parseIdent()
		}
		prefix, target := hoist(name)
		name = &tree.FieldAccess{Meta: meta(prefix), Target: target.(tree.Expression), Name: tree.PadLeft(dot, part)}
	}
	return name
}

func (p *Parser) parseIdent() *tree.Identifier {
	prefix := p.space()
	tok := p.expect(TokenIdent)
	return &tree.Identifier{Meta: meta(prefix), Name: tok.Literal}
}

var modifierKeywords = map[TokenKind]bool{
	TokenPublic:       true,
	TokenProtected:    true,
	TokenPrivate:      true,
	TokenStatic:       true,
	TokenAbstract:     true,
	TokenFinal:        true,
	TokenNative:       true,
	TokenSynchronized: true,
	TokenTransient:    true,
	TokenVolatile:     true,
	TokenStrictfp:     true,
	TokenDefault:      true,
}

func (p *Parser) atModifier() bool {
	tok := p.peek()
	next := p.peekN(1).Kind
	switch {
	case tok.Kind == TokenSynchronized:
		return next != TokenLParen
	case tok.Kind == TokenDefault:
		return next != TokenColon && next != TokenArrow
	case tok.Kind == TokenStatic:
		return next != TokenLBrace
	case modifierKeywords[tok.Kind]:
		return true
	case tok.Kind == TokenIdent && (tok.Literal == "sealed" || tok.Literal == "non-sealed"):
		return next == TokenClass || next == TokenInterface || next == TokenAt || modifierKeywords[next] ||
			next == TokenIdent && p.peekN(1).Literal == "record"
	}
	return false
}

func (p *Parser) atAnnotation() bool {
	return p.check(TokenAt) && p.peekN(1).Kind != TokenInterface
}

func (p *Parser) atClassKind() bool {
	switch p.peek().Kind {
	case TokenClass, TokenInterface, TokenEnum:
		return true
	case TokenAt:
		return p.peekN(1).Kind == TokenInterface
	case TokenIdent:
		return p.checkIdent("record") && p.peekN(1).Kind == TokenIdent &&
			(p.peekN(2).Kind == TokenLParen || p.peekN(2).Kind == TokenLT)
	}
	return false
}

// modifiers holds what precedes a declaration: annotations before the first
// modifier keyword, the keywords, and annotations after them which belong to
// the declared type.
type modifiers struct {
	leading []*tree.Annotation
	mods    []*tree.Modifier
	typed   []*tree.Annotation
}

func (p *Parser) parseModifiers() modifiers {
	var m modifiers
	for {
		switch {
		case p.atAnnotation():
			a := p.parseAnnotation()
			if len(m.mods) == 0 {
				m.leading = append(m.leading, a)
			} else {
				m.typed = append(m.typed, a)
			}
		case p.atModifier():
			if len(m.typed) > 0 {
				p.fail("annotation between modifiers")
			}
			prefix := p.space()
			tok := p.advance()
			m.mods = append(m.mods, &tree.Modifier{Meta: meta(prefix), Keyword: tok.Literal})
		default:
			return m
		}
	}
}

// annotate wraps t in the annotations that followed the modifiers.
func (m modifiers) annotate(t tree.TypeTree) tree.TypeTree {
	if len(m.typed) == 0 {
		return t
	}
	return &tree.AnnotatedType{Meta: meta(tree.EmptySpace), Annotations: m.typed, TypeExpression: t}
}

func (p *Parser) parseAnnotation() *tree.Annotation {
	a := &tree.Annotation{Meta: meta(p.space())}
	p.expect(TokenAt)
	a.AnnotationType = p.parseQualifiedName(false)
	if p.check(TokenLParen) {
		args := p.parseArguments(p.parseElementValue)
		a.Arguments = &args
	}
	return a
}

func (p *Parser) parseElementValue() tree.Expression {
	switch {
	case p.check(TokenIdent) && p.nextIs(TokenAssign):
		name := p.parseIdent()
		before := p.skip(TokenAssign)
		value := p.parseElementValue()
		prefix, variable := hoist(name)
		return &tree.Assignment{Meta: meta(prefix), Variable: variable, Assignment: tree.PadLeft(before, value)}
	case p.check(TokenAt):
		return p.parseAnnotation()
	case p.check(TokenLBrace):
		prefix := p.space()
		init := p.parseArrayInitializer(p.parseElementValue)
		return &tree.NewArray{Meta: meta(prefix), Initializer: &init}
	}
	return p.parseExpression()
}

func (p *Parser) parseClassDecl(prefix tree.Space, m modifiers) *tree.ClassDeclaration {
	if len(m.typed) > 0 {
		p.fail("annotation between modifiers")
	}
	c := &tree.ClassDeclaration{
		Meta:               meta(prefix),
		LeadingAnnotations: m.leading,
		Modifiers:          m.mods,
		KindPrefix:         p.space(),
	}
	switch tok := p.peek(); {
	case tok.Kind == TokenClass:
		c.Kind = tree.KindClass
	case tok.Kind == TokenInterface:
		c.Kind = tree.KindInterface
	case tok.Kind == TokenEnum:
		c.Kind = tree.KindEnum
	case tok.Kind == TokenAt:
		c.Kind = tree.KindAnnotation
		p.advance()
		if p.peek().Trivia != "" {
			p.fail("space between '@' and 'interface'")
		}
	default:
		c.Kind = tree.KindRecord
	}
	p.advance()
	c.Name = p.parseIdent()
	if p.check(TokenLT) {
		tp := p.parseTypeParameters()
		c.TypeParameters = &tp
	}
	if c.Kind == tree.KindRecord {
		params := p.parseParameters()
		c.PrimaryConstructor = &params
	}
	if p.check(TokenExtends) {
		before := p.skip(TokenExtends)
		if c.Kind == tree.KindInterface {
			list := p.parseTypeList(before)
			c.Implements = &list
		} else {
			ext := tree.PadLeft(before, p.parseType())
			c.Extends = &ext
		}
	}
	if p.check(TokenImplements) {
		list := p.parseTypeList(p.skip(TokenImplements))
		c.Implements = &list
	}
	if p.checkIdent("permits") {
		p.fail("permits clauses are not supported")
	}
	c.Body = p.parseClassBody(c.Kind)
	return c
}

// parseTypeList parses comma separated types after a keyword whose
// preceding space is before.
func (p *Parser) parseTypeList(before tree.Space) tree.Container[tree.TypeTree] {
	list := tree.Container[tree.TypeTree]{Before: before}
	for {
		t := p.parseType()
		if p.check(TokenComma) {
			list.Elements = append(list.Elements, tree.PadRight(t, p.skip(TokenComma)))
			continue
		}
		list.Elements = append(list.Elements, tree.PadRight(t, tree.EmptySpace))
		return list
	}
}

func (p *Parser) parseTypeParameters() tree.Container[*tree.TypeParameter] {
	c := tree.Container[*tree.TypeParameter]{Before: p.skip(TokenLT)}
	for {
		tp := &tree.TypeParameter{Meta: meta(p.space())}
		for p.check(TokenAt) {
			tp.Annotations = append(tp.Annotations, p.parseAnnotation())
		}
		tp.Name = p.parseIdent()
		if p.check(TokenExtends) {
			bounds := tree.Container[tree.TypeTree]{Before: p.skip(TokenExtends)}
			for {
				t := p.parseType()
				if p.check(TokenBitAnd) {
					bounds.Elements = append(bounds.Elements, tree.PadRight(t, p.skip(TokenBitAnd)))
					continue
				}
				bounds.Elements = append(bounds.Elements, tree.PadRight(t, tree.EmptySpace))
				break
			}
			tp.Bounds = &bounds
		}
		after := p.space()
		c.Elements = append(c.Elements, tree.PadRight(tp, after))
		if p.check(TokenComma) {
			p.advance()
			continue
		}
		p.closeAngle()
		return c
	}
}

func (p *Parser) parseClassBody(kind tree.ClassKind) *tree.Block {
	b := &tree.Block{Meta: meta(p.space())}
	p.expect(TokenLBrace)
	if kind == tree.KindEnum && !p.check(TokenRBrace) {
		b.Statements = append(b.Statements, tree.PadRight[tree.Statement](p.parseEnumValues(), tree.EmptySpace))
	}
	for !p.check(TokenRBrace) {
		if p.check(TokenEOF) {
			p.fail("unterminated class body")
		}
		b.Statements = append(b.Statements, p.padStatement(p.parseMember()))
	}
	b.End = p.skip(TokenRBrace)
	return b
}

func (p *Parser) parseEnumValues() *tree.EnumValueSet {
	set := &tree.EnumValueSet{Meta: meta(tree.EmptySpace)}
	if p.check(TokenSemicolon) {
		set.Prefix = p.skip(TokenSemicolon)
		set.TerminatedWithSemicolon = true
		return set
	}
	for {
		rp := tree.PadRight(p.parseEnumValue(), tree.EmptySpace)
		if p.check(TokenComma) {
			rp.After = p.skip(TokenComma)
			if p.match(TokenSemicolon, TokenRBrace) {
				var suffix tree.Space
				if p.check(TokenSemicolon) {
					suffix = p.space()
				}
				rp.Markers = trailingComma(suffix)
				set.Enums = append(set.Enums, rp)
				break
			}
			set.Enums = append(set.Enums, rp)
			continue
		}
		if p.check(TokenSemicolon) {
			rp.After = p.space()
		}
		set.Enums = append(set.Enums, rp)
		break
	}
	if p.check(TokenSemicolon) {
		p.advance()
		set.TerminatedWithSemicolon = true
	}
	return set
}

func (p *Parser) parseEnumValue() *tree.EnumValue {
	ev := &tree.EnumValue{Meta: meta(p.space())}
	for p.check(TokenAt) {
		ev.Annotations = append(ev.Annotations, p.parseAnnotation())
	}
	ev.Name = p.parseIdent()
	if p.check(TokenLParen) {
		args := p.parseArguments(p.parseExpression)
		ev.Arguments = &args
	}
	if p.check(TokenLBrace) {
		ev.Body = p.parseClassBody(tree.KindClass)
	}
	return ev
}

func (p *Parser) parseMember() tree.Statement {
	switch {
	case p.check(TokenSemicolon):
		return &tree.Empty{Meta: meta(p.space())}
	case p.check(TokenLBrace):
		return p.parseBlock()
	case p.check(TokenStatic) && p.peekN(1).Kind == TokenLBrace:
		b := &tree.Block{Meta: meta(p.space())}
		p.advance()
		b.Static = tree.PadRight(true, tree.EmptySpace)
		inner := p.parseBlock()
		b.Static.After = inner.Prefix
		b.Statements = inner.Statements
		b.End = inner.End
		return b
	}
	prefix := p.space()
	m := p.parseModifiers()
	if p.atClassKind() {
		return p.parseClassDecl(prefix, m)
	}
	var typeParams *tree.Container[*tree.TypeParameter]
	if p.check(TokenLT) {
		tp := p.parseTypeParameters()
		typeParams = &tp
	}
	if p.check(TokenIdent) && p.peekN(1).Kind == TokenLParen {
		if len(m.typed) > 0 {
			p.fail("annotation between modifiers")
		}
		return p.parseMethodRest(prefix, m, typeParams, nil)
	}
	isMethod := typeParams != nil || p.lookahead(func() bool {
		p.parseType()
		p.parseIdent()
		return p.check(TokenLParen)
	})
	t := m.annotate(p.parseType())
	if isMethod {
		return p.parseMethodRest(prefix, m, typeParams, t)
	}
	return p.parseVariableDeclarators(prefix, m, t)
}

func (p *Parser) parseMethodRest(prefix tree.Space, m modifiers, typeParams *tree.Container[*tree.TypeParameter], returnType tree.TypeTree) *tree.MethodDeclaration {
	md := &tree.MethodDeclaration{
		Meta:               meta(prefix),
		LeadingAnnotations: m.leading,
		Modifiers:          m.mods,
		TypeParameters:     typeParams,
		ReturnType:         returnType,
		Name:               p.parseIdent(),
	}
	md.Parameters = p.parseParameters()
	if p.check(TokenThrows) {
		throws := p.parseTypeList(p.skip(TokenThrows))
		md.Throws = &throws
	}
	if p.check(TokenDefault) {
		before := p.skip(TokenDefault)
		dv := tree.PadLeft(before, p.parseElementValue())
		md.DefaultValue = &dv
	}
	if p.check(TokenLBrace) {
		md.Body = p.parseBlock()
	}
	return md
}

func (p *Parser) parseParameters() tree.Container[tree.Statement] {
	c := tree.Container[tree.Statement]{Before: p.skip(TokenLParen)}
	if p.check(TokenRParen) {
		c.Elements = append(c.Elements, emptyElement[tree.Statement](p))
		p.advance()
		return c
	}
	for {
		param := p.parseFormalParameter()
		after := p.space()
		c.Elements = append(c.Elements, tree.PadRight[tree.Statement](param, after))
		if p.check(TokenComma) {
			p.advance()
			continue
		}
		p.expect(TokenRParen)
		return c
	}
}

func (p *Parser) parseFormalParameter() *tree.VariableDeclarations {
	prefix := p.space()
	m := p.parseModifiers()
	vd := &tree.VariableDeclarations{
		Meta:               meta(prefix),
		LeadingAnnotations: m.leading,
		Modifiers:          m.mods,
		TypeExpression:     m.annotate(p.parseType()),
	}
	if p.check(TokenEllipsis) {
		sp := p.skip(TokenEllipsis)
		vd.Varargs = &sp
	}
	vd.Variables = []tree.RightPadded[*tree.NamedVariable]{tree.PadRight(p.parseNamedVariable(), tree.EmptySpace)}
	return vd
}

// parseVariableDeclarators parses the declarators of a field or local
// variable whose type has already been read.
func (p *Parser) parseVariableDeclarators(prefix tree.Space, m modifiers, t tree.TypeTree) *tree.VariableDeclarations {
	vd := &tree.VariableDeclarations{
		Meta:               meta(prefix),
		LeadingAnnotations: m.leading,
		Modifiers:          m.mods,
		TypeExpression:     t,
	}
	for {
		nv := p.parseNamedVariable()
		if p.check(TokenComma) {
			vd.Variables = append(vd.Variables, tree.PadRight(nv, p.skip(TokenComma)))
			continue
		}
		vd.Variables = append(vd.Variables, tree.PadRight(nv, tree.EmptySpace))
		return vd
	}
}

func (p *Parser) parseNamedVariable() *tree.NamedVariable {
	nv := &tree.NamedVariable{Meta: meta(p.space())}
	nv.Name = p.parseIdent()
	for p.check(TokenLBracket) {
		before := p.skip(TokenLBracket)
		nv.Dimensions = append(nv.Dimensions, tree.PadLeft(before, p.skip(TokenRBracket)))
	}
	if p.check(TokenAssign) {
		before := p.skip(TokenAssign)
		init := tree.PadLeft(before, p.parseVariableInitializer())
		nv.Initializer = &init
	}
	return nv
}

func (p *Parser) parseVariableInitializer() tree.Expression {
	if p.check(TokenLBrace) {
		prefix := p.space()
		init := p.parseArrayInitializer(p.parseVariableInitializer)
		return &tree.NewArray{Meta: meta(prefix), Initializer: &init}
	}
	return p.parseExpression()
}

// parseArrayInitializer parses "{a, b,}". The space before "{" must already
// be claimed by the caller when it belongs to an enclosing node.
func (p *Parser) parseArrayInitializer(element func() tree.Expression) tree.Container[tree.Expression] {
	c := tree.Container[tree.Expression]{Before: p.skip(TokenLBrace)}
	if p.check(TokenRBrace) {
		c.Elements = append(c.Elements, emptyElement[tree.Expression](p))
		p.advance()
		return c
	}
	for {
		rp := tree.PadRight(element(), p.space())
		if p.check(TokenComma) {
			p.advance()
			if p.check(TokenRBrace) {
				rp.Markers = trailingComma(p.space())
				c.Elements = append(c.Elements, rp)
				p.advance()
				return c
			}
			c.Elements = append(c.Elements, rp)
			continue
		}
		c.Elements = append(c.Elements, rp)
		p.expect(TokenRBrace)
		return c
	}
}

// parseArguments parses a parenthesized, comma separated list.
func (p *Parser) parseArguments(element func() tree.Expression) tree.Container[tree.Expression] {
	c := tree.Container[tree.Expression]{Before: p.skip(TokenLParen)}
	if p.check(TokenRParen) {
		c.Elements = append(c.Elements, emptyElement[tree.Expression](p))
		p.advance()
		return c
	}
	for {
		rp := tree.PadRight(element(), p.space())
		c.Elements = append(c.Elements, rp)
		if p.check(TokenComma) {
			p.advance()
			continue
		}
		p.expect(TokenRParen)
		return c
	}
}
