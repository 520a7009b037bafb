package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/lst/java/style"
)

const uri = "file:///src/A.java"

func open(t *testing.T, ls *Server, text string) {
	t.Helper()
	require.NoError(t, ls.textDocumentDidOpen(nil, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "java", Version: 1, Text: text},
	}))
}

func apply(text string, edits []protocol.TextEdit) string {
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		start, end := offsetOf(text, e.Range.Start), offsetOf(text, e.Range.End)
		text = text[:start] + e.NewText + text[end:]
	}
	return text
}

func TestFormatting(t *testing.T) {
	ls := NewServer("test", style.IntelliJ())
	open(t, ls, "class A{void m(){int x=1;}}")

	edits, err := ls.textDocumentFormatting(nil, &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.Equal(t, "class A {\n    void m() {\n        int x = 1;\n    }\n}", apply("class A{void m(){int x=1;}}", edits))
}

func TestFormattingUsesClientTabSize(t *testing.T) {
	ls := NewServer("test", style.IntelliJ())
	open(t, ls, "class A{void m(){}}")

	edits, err := ls.textDocumentFormatting(nil, &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		Options: protocol.FormattingOptions{
			protocol.FormattingOptionTabSize:      float64(2),
			protocol.FormattingOptionInsertSpaces: true,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "class A {\n  void m() {\n  }\n}", apply("class A{void m(){}}", edits))
}

func TestFormattingFollowsChanges(t *testing.T) {
	ls := NewServer("test", style.IntelliJ())
	open(t, ls, "class A{}")
	require.NoError(t, ls.textDocumentDidChange(nil, &protocol.DidChangeTextDocumentParams{
		TextDocument:   protocol.VersionedTextDocumentIdentifier{TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri}, Version: 2},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "class B {\n}"}},
	}))

	edits, err := ls.textDocumentFormatting(nil, &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	assert.Empty(t, edits)
}

func TestFormattingLeavesBrokenSource(t *testing.T) {
	ls := NewServer("test", style.IntelliJ())
	open(t, ls, "class A{")

	edits, err := ls.textDocumentFormatting(nil, &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	assert.Empty(t, edits)
}

func TestFormattingClosedDocument(t *testing.T) {
	ls := NewServer("test", style.IntelliJ())
	open(t, ls, "class A{}")
	require.NoError(t, ls.textDocumentDidClose(nil, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))

	edits, err := ls.textDocumentFormatting(nil, &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	assert.Nil(t, edits)
}

func TestRangeFormattingStopsAtRangeEnd(t *testing.T) {
	ls := NewServer("test", style.IntelliJ())
	text := "class A{int a=1;int b=2;}"
	open(t, ls, text)

	edits, err := ls.textDocumentRangeFormatting(nil, &protocol.DocumentRangeFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 8},
			End:   protocol.Position{Line: 0, Character: 16},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "class A{int a = 1;int b=2;}", apply(text, edits))
}

func TestTextEdits(t *testing.T) {
	edits := textEdits("class A{}", "class A {\n}")
	require.Len(t, edits, 1)
	assert.Equal(t, protocol.Position{Line: 0, Character: 7}, edits[0].Range.Start)
	assert.Equal(t, protocol.Position{Line: 0, Character: 8}, edits[0].Range.End)
	assert.Equal(t, " {\n", edits[0].NewText)

	assert.Empty(t, textEdits("same", "same"))
}

func TestPositions(t *testing.T) {
	text := "ab\né\U0001F600x\nz"
	tests := []struct {
		offset int
		pos    protocol.Position
	}{
		{0, protocol.Position{Line: 0, Character: 0}},
		{2, protocol.Position{Line: 0, Character: 2}},
		{3, protocol.Position{Line: 1, Character: 0}},
		{5, protocol.Position{Line: 1, Character: 1}},
		{9, protocol.Position{Line: 1, Character: 3}},
		{11, protocol.Position{Line: 2, Character: 0}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.pos, positionOf(text, tt.offset), "offset %d", tt.offset)
		assert.Equal(t, tt.offset, offsetOf(text, tt.pos), "position %v", tt.pos)
	}
	assert.Equal(t, 2, offsetOf(text, protocol.Position{Line: 0, Character: 40}))
	assert.Equal(t, len(text), offsetOf(text, protocol.Position{Line: 9, Character: 0}))
}

func TestURIToPath(t *testing.T) {
	path, err := uriToPath("file:///home/me/My%20App/A.java")
	require.NoError(t, err)
	assert.Equal(t, "/home/me/My App/A.java", path)

	path, err = uriToPath("untitled:1")
	require.NoError(t, err)
	assert.Equal(t, "untitled:1", path)
}
