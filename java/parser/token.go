package parser

import "strings"

// Position locates a byte in a source file. Line and Column are 1-based.
type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError
	TokenWhitespace
	TokenComment
	TokenLineComment

	// Literals
	TokenIdent
	TokenIntLiteral
	TokenFloatLiteral
	TokenCharLiteral
	TokenStringLiteral
	TokenTextBlock
	TokenTrue
	TokenFalse
	TokenNull

	// Keywords
	TokenAbstract
	TokenAssert
	TokenBoolean
	TokenBreak
	TokenByte
	TokenCase
	TokenCatch
	TokenChar
	TokenClass
	TokenConst
	TokenContinue
	TokenDefault
	TokenDo
	TokenDouble
	TokenElse
	TokenEnum
	TokenExtends
	TokenFinal
	TokenFinally
	TokenFloat
	TokenFor
	TokenGoto
	TokenIf
	TokenImplements
	TokenImport
	TokenInstanceof
	TokenInt
	TokenInterface
	TokenLong
	TokenNative
	TokenNew
	TokenPackage
	TokenPrivate
	TokenProtected
	TokenPublic
	TokenReturn
	TokenShort
	TokenStatic
	TokenStrictfp
	TokenSuper
	TokenSwitch
	TokenSynchronized
	TokenThis
	TokenThrow
	TokenThrows
	TokenTransient
	TokenTry
	TokenVoid
	TokenVolatile
	TokenWhile

	// Operators and punctuation
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenSemicolon
	TokenComma
	TokenDot
	TokenEllipsis
	TokenAt
	TokenColonColon

	TokenAssign
	TokenEQ
	TokenNE
	TokenLT
	TokenLE
	TokenGT
	TokenGE
	TokenAnd
	TokenOr
	TokenNot
	TokenBitAnd
	TokenBitOr
	TokenBitXor
	TokenBitNot
	TokenShl
	TokenShr
	TokenUShr
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenIncrement
	TokenDecrement
	TokenQuestion
	TokenColon
	TokenArrow
	TokenPlusAssign
	TokenMinusAssign
	TokenStarAssign
	TokenSlashAssign
	TokenPercentAssign
	TokenAndAssign
	TokenOrAssign
	TokenXorAssign
	TokenShlAssign
	TokenShrAssign
	TokenUShrAssign
)

// Words and symbols spelled in the same order as the kinds they name.
var (
	wordText = strings.Fields(`true false null
		abstract assert boolean break byte case catch char class const continue
		default do double else enum extends final finally float for goto if
		implements import instanceof int interface long native new package
		private protected public return short static strictfp super switch
		synchronized this throw throws transient try void volatile while`)
	symbolText = strings.Fields(`( ) { } [ ] ; , . ... @ ::
		= == != < <= > >= && || ! & | ^ ~ << >> >>> + - * / % ++ -- ? : ->
		+= -= *= /= %= &= |= ^= <<= >>= >>>=`)
)

var tokenKindNames = func() map[TokenKind]string {
	names := map[TokenKind]string{
		TokenEOF:           "EOF",
		TokenError:         "Error",
		TokenWhitespace:    "Whitespace",
		TokenComment:       "Comment",
		TokenLineComment:   "LineComment",
		TokenIdent:         "Identifier",
		TokenIntLiteral:    "IntLiteral",
		TokenFloatLiteral:  "FloatLiteral",
		TokenCharLiteral:   "CharLiteral",
		TokenStringLiteral: "StringLiteral",
		TokenTextBlock:     "TextBlock",
	}
	for i, w := range wordText {
		names[TokenTrue+TokenKind(i)] = w
	}
	for i, sym := range symbolText {
		names[TokenLParen+TokenKind(i)] = sym
	}
	return names
}()

// keywords holds the reserved words, the literals true, false and null
// included. Contextual words such as var, record or sealed lex as
// identifiers.
var keywords = func() map[string]TokenKind {
	m := make(map[string]TokenKind, len(wordText))
	for i, w := range wordText {
		m[w] = TokenTrue + TokenKind(i)
	}
	return m
}()

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is a significant token. Trivia is the raw whitespace and comments
// that precede it in the source.
type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
	Trivia  string
}

// IsTrivia reports whether tokens of kind k carry no syntax.
func (k TokenKind) IsTrivia() bool {
	return k == TokenWhitespace || k == TokenComment || k == TokenLineComment
}

func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}
