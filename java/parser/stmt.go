package parser

import "github.com/dhamidi/lst/java/tree"

func (p *Parser) parseBlock() *tree.Block {
	b := &tree.Block{Meta: meta(p.space())}
	p.expect(TokenLBrace)
	for !p.check(TokenRBrace) {
		if p.check(TokenEOF) {
			p.fail("unterminated block")
		}
		b.Statements = append(b.Statements, p.padStatement(p.parseBlockStatement()))
	}
	b.End = p.skip(TokenRBrace)
	return b
}

// padStatement consumes the semicolon that ends s, when s has one.
func (p *Parser) padStatement(s tree.Statement) tree.RightPadded[tree.Statement] {
	if !tree.NeedsSemicolon(s) {
		return tree.PadRight(s, tree.EmptySpace)
	}
	return tree.PadRight(s, p.skip(TokenSemicolon))
}

func (p *Parser) parseBlockStatement() tree.Statement {
	if p.atYield() {
		y := &tree.Yield{Meta: meta(p.space())}
		p.advance()
		y.Value = p.parseExpression()
		return y
	}
	if p.atAnnotation() || p.atModifier() || p.atClassKind() {
		prefix := p.space()
		m := p.parseModifiers()
		if p.atClassKind() {
			return p.parseClassDecl(prefix, m)
		}
		return p.parseVariableDeclarators(prefix, m, m.annotate(p.parseType()))
	}
	if p.atLocalVariable() {
		prefix := p.space()
		return p.parseVariableDeclarators(prefix, modifiers{}, p.parseType())
	}
	return p.parseStatement()
}

func (p *Parser) atYield() bool {
	if !p.checkIdent("yield") {
		return false
	}
	switch p.peekN(1).Kind {
	case TokenAssign, TokenDot, TokenLBracket, TokenIncrement, TokenDecrement, TokenArrow,
		TokenSemicolon, TokenColon, TokenColonColon,
		TokenPlusAssign, TokenMinusAssign, TokenStarAssign, TokenSlashAssign, TokenPercentAssign,
		TokenAndAssign, TokenOrAssign, TokenXorAssign, TokenShlAssign, TokenShrAssign, TokenUShrAssign:
		return false
	}
	return true
}

// atLocalVariable reports whether a local variable declaration starts here:
// a type followed by a name and a token that can follow a declarator.
func (p *Parser) atLocalVariable() bool {
	if !p.check(TokenIdent) && !isPrimitive(p.peek().Kind) {
		return false
	}
	return p.lookahead(func() bool {
		p.parseType()
		if !p.check(TokenIdent) {
			return false
		}
		switch p.peekN(1).Kind {
		case TokenAssign, TokenSemicolon, TokenComma, TokenLBracket, TokenColon:
			return true
		}
		return false
	})
}

func (p *Parser) parseStatement() tree.Statement {
	switch p.peek().Kind {
	case TokenLBrace:
		return p.parseBlock()
	case TokenSemicolon:
		return &tree.Empty{Meta: meta(p.space())}
	case TokenIf:
		return p.parseIf()
	case TokenWhile:
		w := &tree.WhileLoop{Meta: meta(p.space())}
		p.advance()
		w.Condition = p.parseControlParentheses()
		w.Body = p.padStatement(p.parseStatement())
		return w
	case TokenDo:
		d := &tree.DoWhileLoop{Meta: meta(p.space())}
		p.advance()
		d.Body = p.padStatement(p.parseStatement())
		before := p.skip(TokenWhile)
		d.Condition = tree.PadLeft(before, p.parseControlParentheses())
		return d
	case TokenFor:
		return p.parseFor()
	case TokenTry:
		return p.parseTry()
	case TokenSwitch:
		return p.parseSwitch()
	case TokenReturn:
		r := &tree.Return{Meta: meta(p.space())}
		p.advance()
		if !p.check(TokenSemicolon) {
			r.Expression = p.parseExpression()
		}
		return r
	case TokenThrow:
		t := &tree.Throw{Meta: meta(p.space())}
		p.advance()
		t.Exception = p.parseExpression()
		return t
	case TokenBreak:
		b := &tree.Break{Meta: meta(p.space())}
		p.advance()
		if p.check(TokenIdent) {
			b.Label = p.parseIdent()
		}
		return b
	case TokenContinue:
		c := &tree.Continue{Meta: meta(p.space())}
		p.advance()
		if p.check(TokenIdent) {
			c.Label = p.parseIdent()
		}
		return c
	case TokenSynchronized:
		s := &tree.Synchronized{Meta: meta(p.space())}
		p.advance()
		s.Lock = p.parseControlParentheses()
		s.Body = p.parseBlock()
		return s
	case TokenAssert:
		a := &tree.Assert{Meta: meta(p.space())}
		p.advance()
		a.Condition = p.parseExpression()
		if p.check(TokenColon) {
			before := p.skip(TokenColon)
			detail := tree.PadLeft(before, p.parseExpression())
			a.Detail = &detail
		}
		return a
	case TokenIdent:
		if p.peekN(1).Kind == TokenColon {
			l := &tree.Label{Meta: meta(p.space())}
			name := p.parseIdent()
			l.Label = tree.PadRight(name, p.skip(TokenColon))
			l.Statement = p.parseStatement()
			return l
		}
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseExpressionStatement() tree.Statement {
	e := p.parseExpression()
	switch s := e.(type) {
	case *tree.MethodInvocation, *tree.NewClass, *tree.Assignment, *tree.AssignmentOperation:
		return s.(tree.Statement)
	case *tree.Unary:
		switch s.Operator.Element {
		case tree.OpPreIncrement, tree.OpPreDecrement, tree.OpPostIncrement, tree.OpPostDecrement:
			return s
		}
	}
	p.fail("not a statement")
	return nil
}

func (p *Parser) parseControlParentheses() *tree.ControlParentheses {
	cp := &tree.ControlParentheses{Meta: meta(p.skip(TokenLParen))}
	e := p.parseExpression()
	cp.Tree = tree.PadRight[tree.Tree](e, p.skip(TokenRParen))
	return cp
}

func (p *Parser) parseIf() *tree.If {
	n := &tree.If{Meta: meta(p.space())}
	p.advance()
	n.Condition = p.parseControlParentheses()
	n.ThenPart = p.padStatement(p.parseStatement())
	if p.check(TokenElse) {
		e := &tree.Else{Meta: meta(p.space())}
		p.advance()
		e.Body = p.padStatement(p.parseStatement())
		n.ElsePart = e
	}
	return n
}

func (p *Parser) atForEach() bool {
	return p.lookahead(func() bool {
		p.parseModifiers()
		p.parseType()
		p.parseIdent()
		return p.check(TokenColon)
	})
}

func (p *Parser) parseFor() tree.Statement {
	prefix := p.space()
	p.advance()
	if p.atForEachAfterParen() {
		return p.parseForEach(prefix)
	}
	ctrl := &tree.ForControl{Meta: meta(p.skip(TokenLParen))}
	switch {
	case p.check(TokenSemicolon):
		ctrl.Init = []tree.RightPadded[tree.Statement]{emptyElement[tree.Statement](p)}
	case p.atAnnotation() || p.atModifier() || p.atLocalVariable():
		vprefix := p.space()
		m := p.parseModifiers()
		decl := p.parseVariableDeclarators(vprefix, m, m.annotate(p.parseType()))
		ctrl.Init = []tree.RightPadded[tree.Statement]{tree.PadRight[tree.Statement](decl, p.space())}
	default:
		ctrl.Init = p.parseStatementList()
	}
	p.expect(TokenSemicolon)
	if p.check(TokenSemicolon) {
		ctrl.Condition = emptyElement[tree.Expression](p)
	} else {
		ctrl.Condition = tree.PadRight(p.parseExpression(), p.space())
	}
	p.expect(TokenSemicolon)
	if p.check(TokenRParen) {
		ctrl.Update = []tree.RightPadded[tree.Statement]{emptyElement[tree.Statement](p)}
	} else {
		ctrl.Update = p.parseStatementList()
	}
	p.expect(TokenRParen)
	loop := &tree.ForLoop{Meta: meta(prefix), Control: ctrl}
	loop.Body = p.padStatement(p.parseStatement())
	return loop
}

func (p *Parser) atForEachAfterParen() bool {
	return p.lookahead(func() bool {
		p.space()
		p.expect(TokenLParen)
		return p.atForEach()
	})
}

// parseStatementList parses comma separated expression statements. The
// last element's After is the space before the token that ends the list.
func (p *Parser) parseStatementList() []tree.RightPadded[tree.Statement] {
	var list []tree.RightPadded[tree.Statement]
	for {
		rp := tree.PadRight(p.parseExpressionStatement(), p.space())
		list = append(list, rp)
		if !p.check(TokenComma) {
			return list
		}
		p.advance()
	}
}

func (p *Parser) parseForEach(prefix tree.Space) *tree.ForEachLoop {
	ctrl := &tree.ForEachControl{Meta: meta(p.skip(TokenLParen))}
	vprefix := p.space()
	m := p.parseModifiers()
	decl := &tree.VariableDeclarations{
		Meta:               meta(vprefix),
		LeadingAnnotations: m.leading,
		Modifiers:          m.mods,
		TypeExpression:     m.annotate(p.parseType()),
	}
	decl.Variables = []tree.RightPadded[*tree.NamedVariable]{tree.PadRight(p.parseNamedVariable(), tree.EmptySpace)}
	ctrl.Variable = tree.PadRight(decl, p.skip(TokenColon))
	iterable := p.parseExpression()
	ctrl.Iterable = tree.PadRight(iterable, p.skip(TokenRParen))
	loop := &tree.ForEachLoop{Meta: meta(prefix), Control: ctrl}
	loop.Body = p.padStatement(p.parseStatement())
	return loop
}

func (p *Parser) parseTry() *tree.Try {
	t := &tree.Try{Meta: meta(p.space())}
	p.advance()
	if p.check(TokenLParen) {
		res := p.parseResources()
		t.Resources = &res
	}
	t.Body = p.parseBlock()
	for p.check(TokenCatch) {
		c := &tree.Catch{Meta: meta(p.space())}
		p.advance()
		c.Parameter = p.parseCatchParameter()
		c.Body = p.parseBlock()
		t.Catches = append(t.Catches, c)
	}
	if p.check(TokenFinally) {
		before := p.skip(TokenFinally)
		f := tree.PadLeft(before, p.parseBlock())
		t.Finally = &f
	}
	if t.Resources == nil && len(t.Catches) == 0 && t.Finally == nil {
		p.fail("try without catch, finally or resources")
	}
	return t
}

func (p *Parser) parseResources() tree.Container[tree.Tree] {
	c := tree.Container[tree.Tree]{Before: p.skip(TokenLParen)}
	for {
		var res tree.Tree
		if p.atAnnotation() || p.atModifier() || p.atLocalVariable() {
			prefix := p.space()
			m := p.parseModifiers()
			res = p.parseVariableDeclarators(prefix, m, m.annotate(p.parseType()))
		} else {
			res = p.parseExpression()
		}
		rp := tree.PadRight(res, p.space())
		if p.check(TokenSemicolon) {
			p.advance()
			if p.check(TokenRParen) {
				rp.Markers = trailingComma(p.space())
				c.Elements = append(c.Elements, rp)
				p.advance()
				return c
			}
			c.Elements = append(c.Elements, rp)
			continue
		}
		c.Elements = append(c.Elements, rp)
		p.expect(TokenRParen)
		return c
	}
}

func (p *Parser) parseCatchParameter() *tree.ControlParentheses {
	cp := &tree.ControlParentheses{Meta: meta(p.skip(TokenLParen))}
	vprefix := p.space()
	m := p.parseModifiers()
	var t tree.TypeTree = p.parseType()
	if p.check(TokenBitOr) {
		prefix, first := hoist(t)
		mc := &tree.MultiCatch{Meta: meta(prefix)}
		mc.Alternatives = append(mc.Alternatives, tree.PadRight(first, p.skip(TokenBitOr)))
		for {
			alt := p.parseType()
			if p.check(TokenBitOr) {
				mc.Alternatives = append(mc.Alternatives, tree.PadRight(alt, p.skip(TokenBitOr)))
				continue
			}
			mc.Alternatives = append(mc.Alternatives, tree.PadRight(alt, tree.EmptySpace))
			break
		}
		t = mc
	}
	decl := &tree.VariableDeclarations{
		Meta:               meta(vprefix),
		LeadingAnnotations: m.leading,
		Modifiers:          m.mods,
		TypeExpression:     m.annotate(t),
	}
	decl.Variables = []tree.RightPadded[*tree.NamedVariable]{tree.PadRight(p.parseNamedVariable(), tree.EmptySpace)}
	cp.Tree = tree.PadRight[tree.Tree](decl, p.skip(TokenRParen))
	return cp
}

func (p *Parser) parseSwitch() *tree.Switch {
	s := &tree.Switch{Meta: meta(p.space())}
	p.advance()
	s.Selector = p.parseControlParentheses()
	body := &tree.Block{Meta: meta(p.space())}
	p.expect(TokenLBrace)
	for !p.check(TokenRBrace) {
		body.Statements = append(body.Statements, tree.PadRight[tree.Statement](p.parseCase(), tree.EmptySpace))
	}
	body.End = p.skip(TokenRBrace)
	s.Cases = body
	return s
}

func (p *Parser) parseCase() *tree.Case {
	c := &tree.Case{Meta: meta(p.space())}
	switch {
	case p.check(TokenDefault):
		p.advance()
		def := &tree.Identifier{Meta: meta(tree.EmptySpace), Name: "default"}
		c.Labels = []tree.RightPadded[tree.Expression]{tree.PadRight[tree.Expression](def, tree.EmptySpace)}
	case p.check(TokenCase):
		p.advance()
		for {
			label := p.parseTernary()
			if p.check(TokenComma) {
				c.Labels = append(c.Labels, tree.PadRight(label, p.skip(TokenComma)))
				continue
			}
			c.Labels = append(c.Labels, tree.PadRight(label, tree.EmptySpace))
			break
		}
	default:
		p.fail("expected 'case' or 'default', found %s", describe(p.peek()))
	}
	c.Labels[len(c.Labels)-1].After = p.space()
	if p.check(TokenArrow) {
		p.advance()
		c.Rule = true
		var body tree.Tree
		switch {
		case p.check(TokenLBrace):
			body = p.parseBlock()
		case p.check(TokenThrow):
			body = p.parseStatement()
		default:
			body = p.parseExpression()
		}
		after := tree.EmptySpace
		if _, block := body.(*tree.Block); !block {
			after = p.skip(TokenSemicolon)
		}
		rp := tree.PadRight(body, after)
		c.Body = &rp
		return c
	}
	p.expect(TokenColon)
	for !p.match(TokenCase, TokenRBrace) && !(p.check(TokenDefault) && !p.atModifier()) {
		if p.check(TokenEOF) {
			p.fail("unterminated switch")
		}
		c.Statements = append(c.Statements, p.padStatement(p.parseBlockStatement()))
	}
	return c
}
