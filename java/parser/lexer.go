package parser

import (
	"bytes"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer splits Java source into tokens. Whitespace and comments are
// returned as tokens of their own so that no byte of the input is lost.
type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

// Tokens lexes the whole input and returns the significant tokens, each
// carrying the trivia that precedes it. The last token is always TokenEOF
// and carries the trailing trivia of the file.
func (l *Lexer) Tokens() []Token {
	var toks []Token
	triviaStart := l.pos
	for {
		tok := l.NextToken()
		if tok.Kind.IsTrivia() {
			continue
		}
		tok.Trivia = string(l.input[triviaStart:tok.Span.Start.Offset])
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			return toks
		}
		triviaStart = l.pos
	}
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) NextToken() Token {
	startPos := l.Position()

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Span: Span{Start: startPos, End: startPos}}
	}

	ch := l.peek()

	if ch == '/' && l.peekN(1) == '/' {
		return l.scanLineComment(startPos)
	}
	if ch == '/' && l.peekN(1) == '*' {
		return l.scanBlockComment(startPos)
	}

	if isWhitespace(ch) {
		return l.scanWhitespace(startPos)
	}

	if l.atJavaLetter() {
		return l.scanIdentOrKeyword(startPos)
	}

	if isDigit(ch) || ch == '.' && isDigit(l.peekN(1)) {
		return l.scanNumber(startPos)
	}

	if ch == '\'' {
		return l.scanCharLiteral(startPos)
	}

	if ch == '"' {
		if l.peekN(1) == '"' && l.peekN(2) == '"' {
			return l.scanTextBlock(startPos)
		}
		return l.scanStringLiteral(startPos)
	}

	return l.scanOperator(startPos)
}

func (l *Lexer) scanWhitespace(start Position) Token {
	for isWhitespace(l.peek()) {
		l.advance()
	}
	return l.token(TokenWhitespace, start)
}

func (l *Lexer) scanLineComment(start Position) Token {
	l.advanceN(2)
	for l.peek() != 0 && l.peek() != '\n' {
		l.advance()
	}
	return l.token(TokenLineComment, start)
}

func (l *Lexer) scanBlockComment(start Position) Token {
	l.advanceN(2)
	kind := TokenError
	for l.pos < len(l.input) {
		if l.peek() == '*' && l.peekN(1) == '/' {
			l.advanceN(2)
			kind = TokenComment
			break
		}
		l.advance()
	}
	return l.token(kind, start)
}

func (l *Lexer) scanIdentOrKeyword(start Position) Token {
	for l.atJavaLetterOrDigit() {
		l.advanceRune()
	}
	literal := string(l.input[start.Offset:l.pos])

	// "non-sealed" is a single modifier token.
	if literal == "non" && string(l.input[l.pos:min(l.pos+7, len(l.input))]) == "-sealed" {
		if l.pos+7 == len(l.input) || !isJavaLetterOrDigit(rune(l.input[l.pos+7])) {
			l.advanceN(7)
			return l.token(TokenIdent, start)
		}
	}

	return l.token(LookupKeyword(literal), start)
}

// scanNumber scans decimal, hexadecimal and binary literals, with
// underscores, fractions, exponents and type suffixes.
func (l *Lexer) scanNumber(start Position) Token {
	radix := byte(0)
	if l.peek() == '0' {
		radix = l.peekN(1) | 0x20
	}
	if radix == 'b' {
		l.advanceN(2)
		l.skip(func(ch byte) bool { return ch == '0' || ch == '1' || ch == '_' })
		l.accept("lL")
		return l.token(TokenIntLiteral, start)
	}

	digits, exponent := isDecimalPart, "eE"
	hex := radix == 'x'
	if hex {
		l.advanceN(2)
		digits, exponent = isHexPart, "pP"
	}
	l.skip(digits)

	isFloat := false
	if l.peek() == '.' && (hex || isDigit(l.peekN(1))) {
		isFloat = true
		l.advance()
		l.skip(digits)
	}
	if l.accept(exponent) {
		isFloat = true
		l.accept("+-")
		l.skip(isDecimalPart)
	}
	if l.accept("fFdD") {
		isFloat = true
	} else {
		l.accept("lL")
	}

	if isFloat {
		return l.token(TokenFloatLiteral, start)
	}
	return l.token(TokenIntLiteral, start)
}

// skip advances past every byte ok accepts.
func (l *Lexer) skip(ok func(byte) bool) {
	for l.pos < len(l.input) && ok(l.peek()) {
		l.advance()
	}
}

// accept advances past the next byte when it is one of set.
func (l *Lexer) accept(set string) bool {
	if l.pos >= len(l.input) || strings.IndexByte(set, l.peek()) < 0 {
		return false
	}
	l.advance()
	return true
}

func isDecimalPart(ch byte) bool { return isDigit(ch) || ch == '_' }
func isHexPart(ch byte) bool     { return isHexDigit(ch) || ch == '_' }

func (l *Lexer) scanCharLiteral(start Position) Token {
	l.advance()
	for l.peek() != 0 && l.peek() != '\'' {
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	if l.peek() == '\'' {
		l.advance()
	}
	return l.token(TokenCharLiteral, start)
}

func (l *Lexer) scanStringLiteral(start Position) Token {
	l.advance()
	for l.peek() != 0 && l.peek() != '"' && l.peek() != '\n' {
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	if l.peek() == '"' {
		l.advance()
	}
	return l.token(TokenStringLiteral, start)
}

func (l *Lexer) scanTextBlock(start Position) Token {
	l.advanceN(3)
	for l.peek() != 0 {
		if l.peek() == '"' && l.peekN(1) == '"' && l.peekN(2) == '"' {
			l.advanceN(3)
			break
		}
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	return l.token(TokenTextBlock, start)
}

// symbols pairs every operator and separator with its kind, longest
// spelling first, so that scanning takes the longest match.
var symbols = func() []symbol {
	list := make([]symbol, len(symbolText))
	for i, text := range symbolText {
		list[i] = symbol{text: []byte(text), kind: TokenLParen + TokenKind(i)}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return len(list[i].text) > len(list[j].text)
	})
	return list
}()

type symbol struct {
	text []byte
	kind TokenKind
}

func (l *Lexer) scanOperator(start Position) Token {
	rest := l.input[l.pos:]
	for _, sym := range symbols {
		if bytes.HasPrefix(rest, sym.text) {
			l.advanceN(len(sym.text))
			return l.token(sym.kind, start)
		}
	}
	l.advance()
	return l.token(TokenError, start)
}

// token ends the token that began at start.
func (l *Lexer) token(kind TokenKind, start Position) Token {
	end := l.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f'
}

func isJavaLetter(r rune) bool {
	if r >= utf8.RuneSelf {
		return unicode.IsLetter(r)
	}
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '$'
}

func isJavaLetterOrDigit(r rune) bool {
	if r >= utf8.RuneSelf {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return isJavaLetter(r) || (r >= '0' && r <= '9')
}

func (l *Lexer) currentRune() rune {
	if l.pos >= len(l.input) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRune(l.input[l.pos:])
	return r
}

func (l *Lexer) atJavaLetter() bool {
	return l.pos < len(l.input) && isJavaLetter(l.currentRune())
}

func (l *Lexer) atJavaLetterOrDigit() bool {
	return l.pos < len(l.input) && isJavaLetterOrDigit(l.currentRune())
}

// advanceRune consumes one UTF-8 encoded rune.
func (l *Lexer) advanceRune() {
	_, size := utf8.DecodeRune(l.input[l.pos:])
	l.pos += size
	l.column++
}
