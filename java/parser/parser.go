package parser

import (
	"fmt"

	"github.com/dhamidi/lst/java/tree"
)

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithMarkers attaches markers to the parsed compilation unit, typically a
// set of named styles.
func WithMarkers(markers ...tree.Marker) Option {
	return func(p *Parser) {
		p.markers = append(p.markers, markers...)
	}
}

// SyntaxError reports input the parser cannot represent.
type SyntaxError struct {
	Pos     Position
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Pos.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.File, e.Pos.Line, e.Pos.Column, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Parser builds a lossless tree from a token stream. Every token's trivia is
// claimed exactly once as the Space stored in the node that owns it.
type Parser struct {
	file    string
	markers []tree.Marker
	toks    []Token
	pos     int
	// claimed is one past the index of the last token whose trivia has been
	// handed out.
	claimed int
}

type state struct {
	toks    []Token
	pos     int
	claimed int
}

func newParser(src []byte, opts []Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	p.toks = NewLexer(src, p.file).Tokens()
	return p
}

// Parse parses a Java source file.
func Parse(src []byte, opts ...Option) (_ *tree.CompilationUnit, err error) {
	p := newParser(src, opts)
	defer p.recover(&err)
	return p.parseCompilationUnit(), nil
}

// ParseExpression parses a single expression. Leading trivia becomes the
// expression's prefix; trailing trivia is discarded.
func ParseExpression(src string, opts ...Option) (_ tree.Expression, err error) {
	p := newParser([]byte(src), opts)
	defer p.recover(&err)
	e := p.parseExpression()
	p.space()
	p.expect(TokenEOF)
	return e, nil
}

// ParseStatement parses a single block statement, including its semicolon
// when the statement kind has one.
func ParseStatement(src string, opts ...Option) (_ tree.Statement, err error) {
	p := newParser([]byte(src), opts)
	defer p.recover(&err)
	s := p.parseBlockStatement()
	if tree.NeedsSemicolon(s) {
		p.space()
		p.expect(TokenSemicolon)
	}
	p.space()
	p.expect(TokenEOF)
	return s, nil
}

func (p *Parser) recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	se, ok := r.(*SyntaxError)
	if !ok {
		panic(r)
	}
	name := p.file
	if name == "" {
		name = "<input>"
	}
	*err = fmt.Errorf("parse %s: %w", name, se)
}

func (p *Parser) fail(format string, args ...any) {
	panic(&SyntaxError{Pos: p.peek().Span.Start, Message: fmt.Sprintf(format, args...)})
}

func (p *Parser) save() state {
	return state{toks: p.toks, pos: p.pos, claimed: p.claimed}
}

func (p *Parser) restore(s state) {
	p.toks, p.pos, p.claimed = s.toks, s.pos, s.claimed
}

// attempt runs fn and keeps its effects if it succeeds. On a syntax error
// the parser is rewound and attempt returns false.
func (p *Parser) attempt(fn func()) (ok bool) {
	s := p.save()
	defer func() {
		if r := recover(); r != nil {
			if _, syntax := r.(*SyntaxError); !syntax {
				panic(r)
			}
			p.restore(s)
			ok = false
		}
	}()
	fn()
	return true
}

// lookahead runs fn speculatively and always rewinds.
func (p *Parser) lookahead(fn func() bool) bool {
	s := p.save()
	defer p.restore(s)
	result := false
	p.attempt(func() { result = fn() })
	return result
}

func (p *Parser) peek() Token {
	return p.peekN(0)
}

func (p *Parser) peekN(n int) Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...TokenKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			return true
		}
	}
	return false
}

// checkIdent reports whether the current token is the contextual keyword
// word.
func (p *Parser) checkIdent(word string) bool {
	tok := p.peek()
	return tok.Kind == TokenIdent && tok.Literal == word
}

// space claims the trivia before the current token.
func (p *Parser) space() tree.Space {
	if p.claimed > p.pos {
		return tree.EmptySpace
	}
	p.claimed = p.pos + 1
	return tree.Format(p.peek().Trivia)
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if tok.Kind == TokenError {
		p.fail("%s", describe(tok))
	}
	if p.claimed <= p.pos && tok.Trivia != "" {
		p.fail("unowned whitespace before %q", tok.Literal)
	}
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(kind TokenKind) Token {
	if !p.check(kind) {
		p.fail("expected %s, found %s", kind, describe(p.peek()))
	}
	return p.advance()
}

// skip claims the trivia before a token of the given kind and consumes it.
func (p *Parser) skip(kind TokenKind) tree.Space {
	sp := p.space()
	p.expect(kind)
	return sp
}

func describe(tok Token) string {
	switch tok.Kind {
	case TokenEOF:
		return "end of input"
	case TokenError:
		return fmt.Sprintf("invalid input %q", tok.Literal)
	}
	return fmt.Sprintf("%q", tok.Literal)
}

// angleRemainder maps a token starting with ">" to what is left once that
// ">" closes a type argument list.
var angleRemainder = map[string]TokenKind{
	">>":   TokenGT,
	">>>":  TokenShr,
	">=":   TokenAssign,
	">>=":  TokenGE,
	">>>=": TokenShrAssign,
}

// closeAngle consumes a ">" ending type arguments, splitting compound
// tokens such as ">>". The token slice is copied so that a rewound
// speculation still sees the original tokens.
func (p *Parser) closeAngle() {
	tok := p.peek()
	if tok.Kind == TokenGT {
		p.advance()
		return
	}
	rest, ok := angleRemainder[tok.Literal]
	if !ok {
		p.fail("expected '>', found %s", describe(tok))
	}
	first := tok
	first.Kind = TokenGT
	first.Literal = ">"
	second := Token{Kind: rest, Literal: tok.Literal[1:], Span: tok.Span}
	second.Span.Start.Offset++
	second.Span.Start.Column++
	first.Span.End = second.Span.Start

	toks := make([]Token, 0, len(p.toks)+1)
	toks = append(toks, p.toks[:p.pos]...)
	toks = append(toks, first, second)
	toks = append(toks, p.toks[p.pos+1:]...)
	p.toks = toks
	p.advance()
}

// hoist moves the prefix of t to the caller, which wraps t in a node that
// starts at the same token.
func hoist[T tree.Tree](t T) (tree.Space, T) {
	return tree.PrefixOf(t), tree.WithPrefix(t, tree.EmptySpace)
}

func meta(prefix tree.Space) tree.Meta {
	return tree.NewMeta(prefix)
}

func emptyElement[T tree.Tree](p *Parser) tree.RightPadded[T] {
	var e tree.Tree = &tree.Empty{Meta: meta(p.space())}
	return tree.PadRight(e.(T), tree.EmptySpace)
}

func trailingComma(suffix tree.Space) tree.Markers {
	return tree.EmptyMarkers().Add(tree.TrailingComma{ID: tree.NewID(), Suffix: suffix})
}
