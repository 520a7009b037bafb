package parser

import (
	"strings"
	"testing"
)

func TestLexerTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kinds []TokenKind
	}{
		{"empty", "", []TokenKind{TokenEOF}},
		{"keywords", "class interface enum", []TokenKind{TokenClass, TokenInterface, TokenEnum, TokenEOF}},
		{"contextual words are identifiers", "var record yield sealed permits", []TokenKind{TokenIdent, TokenIdent, TokenIdent, TokenIdent, TokenIdent, TokenEOF}},
		{"non-sealed", "non-sealed class", []TokenKind{TokenIdent, TokenClass, TokenEOF}},
		{"non minus sealed expression", "non - sealed", []TokenKind{TokenIdent, TokenMinus, TokenIdent, TokenEOF}},
		{"literals", `1 2.5 .5 0x1F 'c' "s" true null`, []TokenKind{
			TokenIntLiteral, TokenFloatLiteral, TokenFloatLiteral, TokenIntLiteral,
			TokenCharLiteral, TokenStringLiteral, TokenTrue, TokenNull, TokenEOF,
		}},
		{"number forms", "0b1010L 1_000 1e10 3f 0x1.8p1 10L 2d", []TokenKind{
			TokenIntLiteral, TokenIntLiteral, TokenFloatLiteral, TokenFloatLiteral,
			TokenFloatLiteral, TokenIntLiteral, TokenFloatLiteral, TokenEOF,
		}},
		{"text block", "\"\"\"\n  hi\n  \"\"\"", []TokenKind{TokenTextBlock, TokenEOF}},
		{"shifts", "a >> b >>> c >>= d", []TokenKind{
			TokenIdent, TokenShr, TokenIdent, TokenUShr, TokenIdent, TokenShrAssign, TokenIdent, TokenEOF,
		}},
		{"arrow and method reference", "x -> y::z", []TokenKind{TokenIdent, TokenArrow, TokenIdent, TokenColonColon, TokenIdent, TokenEOF}},
		{"comments are trivia", "a /* b */ // c\nd", []TokenKind{TokenIdent, TokenIdent, TokenEOF}},
		{"unicode identifier", "größe", []TokenKind{TokenIdent, TokenEOF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := NewLexer([]byte(tt.input), "").Tokens()
			if len(toks) != len(tt.kinds) {
				t.Fatalf("got %d tokens, want %d: %v", len(toks), len(tt.kinds), toks)
			}
			for i, tok := range toks {
				if tok.Kind != tt.kinds[i] {
					t.Errorf("token %d: Kind = %v, want %v", i, tok.Kind, tt.kinds[i])
				}
			}
		})
	}
}

func TestLexerTrivia(t *testing.T) {
	input := "/* header */\n\npackage a;  // trailing\n"
	toks := NewLexer([]byte(input), "").Tokens()

	want := []struct {
		kind   TokenKind
		trivia string
	}{
		{TokenPackage, "/* header */\n\n"},
		{TokenIdent, " "},
		{TokenSemicolon, ""},
		{TokenEOF, "  // trailing\n"},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	var rebuilt strings.Builder
	for i, tok := range toks {
		if tok.Kind != want[i].kind {
			t.Errorf("token %d: Kind = %v, want %v", i, tok.Kind, want[i].kind)
		}
		if tok.Trivia != want[i].trivia {
			t.Errorf("token %d: Trivia = %q, want %q", i, tok.Trivia, want[i].trivia)
		}
		rebuilt.WriteString(tok.Trivia)
		rebuilt.WriteString(tok.Literal)
	}
	if rebuilt.String() != input {
		t.Errorf("tokens rebuild %q, want %q", rebuilt.String(), input)
	}
}

func TestLexerPositions(t *testing.T) {
	toks := NewLexer([]byte("a\n  bc"), "A.java").Tokens()
	bc := toks[1]
	if bc.Span.Start.Line != 2 || bc.Span.Start.Column != 3 {
		t.Errorf("position = %d:%d, want 2:3", bc.Span.Start.Line, bc.Span.Start.Column)
	}
	if bc.Span.Start.File != "A.java" {
		t.Errorf("File = %q, want %q", bc.Span.Start.File, "A.java")
	}
}

func TestLexerUnterminatedComment(t *testing.T) {
	toks := NewLexer([]byte("a /* never closed"), "").Tokens()
	if toks[1].Kind != TokenError {
		t.Errorf("Kind = %v, want %v", toks[1].Kind, TokenError)
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  TokenKind
	}{
		{"while", TokenWhile},
		{"instanceof", TokenInstanceof},
		{"var", TokenIdent},
		{"While", TokenIdent},
	}
	for _, tt := range tests {
		if got := LookupKeyword(tt.ident); got != tt.want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tt.ident, got, tt.want)
		}
	}
}

func TestTokenTablesCoverKinds(t *testing.T) {
	if got, want := len(wordText), int(TokenWhile-TokenTrue)+1; got != want {
		t.Fatalf("%d words for %d keyword kinds", got, want)
	}
	if got, want := len(symbolText), int(TokenUShrAssign-TokenLParen)+1; got != want {
		t.Fatalf("%d symbols for %d symbol kinds", got, want)
	}
	for _, tt := range []struct {
		kind TokenKind
		want string
	}{
		{TokenNull, "null"},
		{TokenWhile, "while"},
		{TokenColonColon, "::"},
		{TokenArrow, "->"},
		{TokenUShrAssign, ">>>="},
	} {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
