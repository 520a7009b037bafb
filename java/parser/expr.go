package parser

import "github.com/dhamidi/lst/java/tree"

var assignOps = map[TokenKind]tree.AssignOp{
	TokenPlusAssign:    tree.OpAddAssign,
	TokenMinusAssign:   tree.OpSubAssign,
	TokenStarAssign:    tree.OpMulAssign,
	TokenSlashAssign:   tree.OpDivAssign,
	TokenPercentAssign: tree.OpModAssign,
	TokenAndAssign:     tree.OpAndAssign,
	TokenOrAssign:      tree.OpOrAssign,
	TokenXorAssign:     tree.OpXorAssign,
	TokenShlAssign:     tree.OpLeftShiftAssign,
	TokenShrAssign:     tree.OpRightShiftAssign,
	TokenUShrAssign:    tree.OpUnsignedRightShiftAssign,
}

type binaryOp struct {
	op   tree.BinaryOp
	prec int
}

// instanceofPrec is the precedence of instanceof, shared with the
// relational operators.
const instanceofPrec = 7

var binaryOps = map[TokenKind]binaryOp{
	TokenOr:      {tree.OpOr, 1},
	TokenAnd:     {tree.OpAnd, 2},
	TokenBitOr:   {tree.OpBitOr, 3},
	TokenBitXor:  {tree.OpBitXor, 4},
	TokenBitAnd:  {tree.OpBitAnd, 5},
	TokenEQ:      {tree.OpEqual, 6},
	TokenNE:      {tree.OpNotEqual, 6},
	TokenLT:      {tree.OpLess, 7},
	TokenGT:      {tree.OpGreater, 7},
	TokenLE:      {tree.OpLessEq, 7},
	TokenGE:      {tree.OpGreaterEq, 7},
	TokenShl:     {tree.OpLeftShift, 8},
	TokenShr:     {tree.OpRightShift, 8},
	TokenUShr:    {tree.OpUnsignedRightShift, 8},
	TokenPlus:    {tree.OpAdd, 9},
	TokenMinus:   {tree.OpSub, 9},
	TokenStar:    {tree.OpMul, 10},
	TokenSlash:   {tree.OpDiv, 10},
	TokenPercent: {tree.OpMod, 10},
}

var prefixOps = map[TokenKind]tree.UnaryOp{
	TokenIncrement: tree.OpPreIncrement,
	TokenDecrement: tree.OpPreDecrement,
	TokenPlus:      tree.OpPositive,
	TokenMinus:     tree.OpNegative,
	TokenBitNot:    tree.OpComplement,
	TokenNot:       tree.OpNot,
}

func (p *Parser) parseExpression() tree.Expression {
	if p.atLambda() {
		return p.parseLambda()
	}
	left := p.parseTernary()
	if p.check(TokenAssign) {
		before := p.skip(TokenAssign)
		right := p.parseExpression()
		prefix, variable := hoist(left)
		return &tree.Assignment{Meta: meta(prefix), Variable: variable, Assignment: tree.PadLeft(before, right)}
	}
	if op, ok := assignOps[p.peek().Kind]; ok {
		before := p.space()
		p.advance()
		right := p.parseExpression()
		prefix, variable := hoist(left)
		return &tree.AssignmentOperation{
			Meta:       meta(prefix),
			Variable:   variable,
			Operator:   tree.PadLeft(before, op),
			Assignment: right,
		}
	}
	return left
}

func (p *Parser) parseTernary() tree.Expression {
	cond := p.parseBinary(1)
	if !p.check(TokenQuestion) {
		return cond
	}
	qBefore := p.skip(TokenQuestion)
	truePart := p.parseExpression()
	cBefore := p.skip(TokenColon)
	var falsePart tree.Expression
	if p.atLambda() {
		falsePart = p.parseLambda()
	} else {
		falsePart = p.parseTernary()
	}
	prefix, c := hoist(cond)
	return &tree.Ternary{
		Meta:      meta(prefix),
		Condition: c,
		TruePart:  tree.PadLeft(qBefore, truePart),
		FalsePart: tree.PadLeft(cBefore, falsePart),
	}
}

func (p *Parser) parseBinary(minPrec int) tree.Expression {
	left := p.parseUnary()
	for {
		kind := p.peek().Kind
		if kind == TokenInstanceof {
			if instanceofPrec < minPrec {
				return left
			}
			after := p.skip(TokenInstanceof)
			inst := &tree.InstanceOf{Clazz: p.parseType()}
			if p.check(TokenIdent) {
				inst.Pattern = p.parseIdent()
			}
			prefix, e := hoist(left)
			inst.Meta = meta(prefix)
			inst.Expression = tree.PadRight(e, after)
			left = inst
			continue
		}
		op, ok := binaryOps[kind]
		if !ok || op.prec < minPrec {
			return left
		}
		before := p.space()
		p.advance()
		right := p.parseBinary(op.prec + 1)
		prefix, l := hoist(left)
		left = &tree.Binary{Meta: meta(prefix), Left: l, Operator: tree.PadLeft(before, op.op), Right: right}
	}
}

func (p *Parser) parseUnary() tree.Expression {
	if op, ok := prefixOps[p.peek().Kind]; ok {
		prefix := p.space()
		p.advance()
		operand := p.parseUnary()
		return &tree.Unary{Meta: meta(prefix), Operator: tree.PadLeft(tree.EmptySpace, op), Expression: operand}
	}
	if p.check(TokenLParen) {
		if cast, ok := p.tryCast(); ok {
			return cast
		}
	}
	return p.parsePostfix(p.parsePrimary())
}

func (p *Parser) tryCast() (*tree.TypeCast, bool) {
	var cast *tree.TypeCast
	ok := p.attempt(func() {
		prefix := p.skip(TokenLParen)
		t := p.parseType()
		after := p.skip(TokenRParen)
		if !p.castFollows(t) {
			p.fail("not a cast")
		}
		clazz := &tree.ControlParentheses{Meta: meta(tree.EmptySpace), Tree: tree.PadRight[tree.Tree](t, after)}
		var operand tree.Expression
		if p.atLambda() {
			operand = p.parseLambda()
		} else {
			operand = p.parseUnary()
		}
		cast = &tree.TypeCast{Meta: meta(prefix), Clazz: clazz, Expression: operand}
	})
	return cast, ok
}

// castFollows reports whether the current token can start the operand of a
// cast to t. Casts to reference types cannot be followed by + or -, which
// would make "(a) - b" a subtraction.
func (p *Parser) castFollows(t tree.TypeTree) bool {
	kind := p.peek().Kind
	switch kind {
	case TokenIdent, TokenIntLiteral, TokenFloatLiteral, TokenCharLiteral, TokenStringLiteral,
		TokenTextBlock, TokenTrue, TokenFalse, TokenNull, TokenLParen, TokenNot, TokenBitNot,
		TokenThis, TokenSuper, TokenNew, TokenSwitch:
		return true
	case TokenPlus, TokenMinus, TokenIncrement, TokenDecrement:
		_, primitive := t.(*tree.Primitive)
		return primitive
	}
	return isPrimitive(kind)
}

// atLambda reports whether a lambda expression starts here: an identifier
// followed by "->", or a parenthesized list followed by "->".
func (p *Parser) atLambda() bool {
	if p.check(TokenIdent) {
		return p.peekN(1).Kind == TokenArrow
	}
	if !p.check(TokenLParen) {
		return false
	}
	depth := 0
	for i := 0; p.pos+i < len(p.toks); i++ {
		switch p.peekN(i).Kind {
		case TokenLParen:
			depth++
		case TokenRParen:
			depth--
			if depth == 0 {
				return p.peekN(i+1).Kind == TokenArrow
			}
		case TokenEOF, TokenSemicolon, TokenLBrace, TokenRBrace:
			return false
		}
	}
	return false
}

func (p *Parser) parseLambda() *tree.Lambda {
	l := &tree.Lambda{Meta: meta(p.space())}
	params := &tree.LambdaParameters{Meta: meta(tree.EmptySpace)}
	if p.check(TokenIdent) {
		params.Parameters = []tree.RightPadded[tree.Tree]{tree.PadRight[tree.Tree](p.parseIdent(), tree.EmptySpace)}
	} else {
		params.Parenthesized = true
		p.expect(TokenLParen)
		if p.check(TokenRParen) {
			params.Parameters = []tree.RightPadded[tree.Tree]{emptyElement[tree.Tree](p)}
			p.advance()
		} else {
			for {
				var param tree.Tree
				if p.check(TokenIdent) && p.nextIs(TokenComma, TokenRParen) {
					param = p.parseIdent()
				} else {
					param = p.parseFormalParameter()
				}
				params.Parameters = append(params.Parameters, tree.PadRight(param, p.space()))
				if p.check(TokenComma) {
					p.advance()
					continue
				}
				p.expect(TokenRParen)
				break
			}
		}
	}
	l.Parameters = params
	l.Arrow = p.skip(TokenArrow)
	if p.check(TokenLBrace) {
		l.Body = p.parseBlock()
	} else {
		l.Body = p.parseExpression()
	}
	return l
}

// nextIs reports whether the token after the current one is any of kinds.
func (p *Parser) nextIs(kinds ...TokenKind) bool {
	next := p.peekN(1).Kind
	for _, kind := range kinds {
		if next == kind {
			return true
		}
	}
	return false
}

func (p *Parser) parsePrimary() tree.Expression {
	tok := p.peek()
	switch tok.Kind {
	case TokenIntLiteral, TokenFloatLiteral, TokenCharLiteral, TokenStringLiteral, TokenTextBlock,
		TokenTrue, TokenFalse, TokenNull:
		prefix := p.space()
		p.advance()
		return &tree.Literal{Meta: meta(prefix), Source: tok.Literal}
	case TokenThis, TokenSuper:
		prefix := p.space()
		p.advance()
		if p.check(TokenLParen) {
			id := &tree.Identifier{Meta: meta(tree.EmptySpace), Name: tok.Literal}
			return &tree.MethodInvocation{Meta: meta(prefix), Name: id, Arguments: p.parseArguments(p.parseExpression)}
		}
		return &tree.Identifier{Meta: meta(prefix), Name: tok.Literal}
	case TokenIdent:
		id := p.parseIdent()
		if p.check(TokenLParen) {
			prefix, name := hoist(id)
			return &tree.MethodInvocation{Meta: meta(prefix), Name: name, Arguments: p.parseArguments(p.parseExpression)}
		}
		return id
	case TokenLParen:
		paren := &tree.Parentheses{Meta: meta(p.skip(TokenLParen))}
		e := p.parseExpression()
		paren.Tree = tree.PadRight(e, p.skip(TokenRParen))
		return paren
	case TokenNew:
		return p.parseNew()
	case TokenSwitch:
		return p.parseSwitch()
	}
	if isPrimitive(tok.Kind) {
		return p.parseType().(tree.Expression)
	}
	p.fail("expected an expression, found %s", describe(tok))
	return nil
}

func (p *Parser) parsePostfix(e tree.Expression) tree.Expression {
	for {
		switch p.peek().Kind {
		case TokenDot:
			dot := p.skip(TokenDot)
			var typeArgs *tree.Container[tree.Expression]
			if p.check(TokenLT) {
				ta := p.parseTypeArguments()
				typeArgs = &ta
			}
			var name *tree.Identifier
			switch tok := p.peek(); tok.Kind {
			case TokenClass, TokenThis, TokenSuper:
				name = &tree.Identifier{Meta: meta(p.space()), Name: tok.Literal}
				p.advance()
			case TokenNew:
				p.fail("qualified class instance creation is not supported")
			default:
				name = p.parseIdent()
			}
			prefix, target := hoist(e)
			if typeArgs != nil || p.check(TokenLParen) {
				sel := tree.PadRight(target, dot)
				e = &tree.MethodInvocation{
					Meta:           meta(prefix),
					Select:         &sel,
					TypeParameters: typeArgs,
					Name:           name,
					Arguments:      p.parseArguments(p.parseExpression),
				}
				continue
			}
			e = &tree.FieldAccess{Meta: meta(prefix), Target: target, Name: tree.PadLeft(dot, name)}
		case TokenLBracket:
			if p.peekN(1).Kind == TokenRBracket {
				t, ok := e.(tree.TypeTree)
				if !ok {
					p.fail("array dimension after a non-type")
				}
				e = p.parseDimensions(t).(tree.Expression)
				continue
			}
			dim := &tree.ArrayDimension{Meta: meta(p.skip(TokenLBracket))}
			index := p.parseExpression()
			dim.Index = tree.PadRight(index, p.skip(TokenRBracket))
			prefix, indexed := hoist(e)
			e = &tree.ArrayAccess{Meta: meta(prefix), Indexed: indexed, Dimension: dim}
		case TokenIncrement, TokenDecrement:
			op := tree.OpPostIncrement
			if p.check(TokenDecrement) {
				op = tree.OpPostDecrement
			}
			before := p.space()
			p.advance()
			prefix, operand := hoist(e)
			e = &tree.Unary{Meta: meta(prefix), Operator: tree.PadLeft(before, op), Expression: operand}
		case TokenColonColon:
			before := p.skip(TokenColonColon)
			var name *tree.Identifier
			if p.check(TokenNew) {
				name = &tree.Identifier{Meta: meta(p.space()), Name: "new"}
				p.advance()
			} else {
				name = p.parseIdent()
			}
			prefix, containing := hoist(e)
			e = &tree.MemberReference{Meta: meta(prefix), Containing: containing, Reference: tree.PadLeft(before, name)}
		default:
			return e
		}
	}
}

func (p *Parser) parseNew() tree.Expression {
	prefix := p.space()
	p.advance()
	t := p.parseCreatedType()
	if p.check(TokenLBracket) {
		arr := &tree.NewArray{Meta: meta(prefix), TypeExpression: t}
		for p.check(TokenLBracket) {
			dim := &tree.ArrayDimension{Meta: meta(p.skip(TokenLBracket))}
			if p.check(TokenRBracket) {
				dim.Index = emptyElement[tree.Expression](p)
			} else {
				index := p.parseExpression()
				dim.Index = tree.PadRight(index, p.space())
			}
			p.expect(TokenRBracket)
			arr.Dimensions = append(arr.Dimensions, dim)
		}
		if p.check(TokenLBrace) {
			init := p.parseArrayInitializer(p.parseVariableInitializer)
			arr.Initializer = &init
		}
		return arr
	}
	nc := &tree.NewClass{Meta: meta(prefix), Clazz: t, Arguments: p.parseArguments(p.parseExpression)}
	if p.check(TokenLBrace) {
		nc.Body = p.parseClassBody(tree.KindClass)
	}
	return nc
}

// parseCreatedType parses the type after "new", which has no array
// dimensions and may use the diamond.
func (p *Parser) parseCreatedType() tree.TypeTree {
	prefix := p.space()
	var annos []*tree.Annotation
	for p.check(TokenAt) {
		annos = append(annos, p.parseAnnotation())
	}
	t := p.parseNonArrayType()
	if len(annos) > 0 {
		return &tree.AnnotatedType{Meta: meta(prefix), Annotations: annos, TypeExpression: t}
	}
	return tree.WithPrefix(t, prefix)
}

var primitives = map[TokenKind]bool{
	TokenBoolean: true,
	TokenByte:    true,
	TokenChar:    true,
	TokenShort:   true,
	TokenInt:     true,
	TokenLong:    true,
	TokenFloat:   true,
	TokenDouble:  true,
	TokenVoid:    true,
}

func isPrimitive(kind TokenKind) bool {
	return primitives[kind]
}

// parseType parses a type with optional leading annotations and trailing
// array dimensions.
func (p *Parser) parseType() tree.TypeTree {
	if p.check(TokenAt) {
		prefix := p.space()
		var annos []*tree.Annotation
		for p.check(TokenAt) {
			annos = append(annos, p.parseAnnotation())
		}
		t := p.parseDimensions(p.parseNonArrayType())
		return &tree.AnnotatedType{Meta: meta(prefix), Annotations: annos, TypeExpression: t}
	}
	return p.parseDimensions(p.parseNonArrayType())
}

func (p *Parser) parseNonArrayType() tree.TypeTree {
	tok := p.peek()
	switch {
	case isPrimitive(tok.Kind):
		prefix := p.space()
		p.advance()
		return &tree.Primitive{Meta: meta(prefix), Keyword: tok.Literal}
	case tok.Kind == TokenQuestion:
		return p.parseWildcard()
	}
	var t tree.NameTree = p.parseIdent()
	for {
		switch {
		case p.check(TokenLT):
			prefix, clazz := hoist(t)
			args := p.parseTypeArguments()
			t = &tree.ParameterizedType{Meta: meta(prefix), Clazz: clazz, TypeParameters: &args}
		case p.check(TokenDot) && p.peekN(1).Kind == TokenIdent:
			dot := p.skip(TokenDot)
			name := p.parseIdent()
			prefix, target := hoist(t)
			t = &tree.FieldAccess{Meta: meta(prefix), Target: target.(tree.Expression), Name: tree.PadLeft(dot, name)}
		default:
			return t
		}
	}
}

func (p *Parser) parseDimensions(t tree.TypeTree) tree.TypeTree {
	for p.check(TokenLBracket) && p.peekN(1).Kind == TokenRBracket {
		before := p.skip(TokenLBracket)
		inside := p.skip(TokenRBracket)
		prefix, elem := hoist(t)
		t = &tree.ArrayType{Meta: meta(prefix), ElementType: elem, Dimension: tree.PadLeft(before, inside)}
	}
	return t
}

func (p *Parser) parseWildcard() *tree.Wildcard {
	w := &tree.Wildcard{Meta: meta(p.skip(TokenQuestion))}
	if p.match(TokenExtends, TokenSuper) {
		bound := tree.BoundExtends
		if p.check(TokenSuper) {
			bound = tree.BoundSuper
		}
		lp := tree.PadLeft(p.space(), bound)
		p.advance()
		w.Bound = &lp
		w.BoundedType = p.parseType()
	}
	return w
}

// parseTypeArguments parses "<...>", including the diamond "<>".
func (p *Parser) parseTypeArguments() tree.Container[tree.Expression] {
	c := tree.Container[tree.Expression]{Before: p.skip(TokenLT)}
	if p.check(TokenGT) {
		c.Elements = append(c.Elements, emptyElement[tree.Expression](p))
		p.advance()
		return c
	}
	for {
		t, ok := p.parseType().(tree.Expression)
		if !ok {
			p.fail("invalid type argument")
		}
		c.Elements = append(c.Elements, tree.PadRight(t, p.space()))
		if p.check(TokenComma) {
			p.advance()
			continue
		}
		p.closeAngle()
		return c
	}
}
