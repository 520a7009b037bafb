package lsp

import (
	"unicode/utf16"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/lst/java/format"
	"github.com/dhamidi/lst/java/parser"
	"github.com/dhamidi/lst/java/printer"
	"github.com/dhamidi/lst/java/style"
	"github.com/dhamidi/lst/java/tree"
)

// formatText formats a Java source file. With end >= 0 formatting stops after
// the statement starting last before end.
func formatText(text, path string, styles style.NamedStyles, end int) (string, error) {
	cu, err := parser.Parse([]byte(text), parser.WithFile(path))
	if err != nil {
		return "", err
	}
	opts := []format.Option{format.WithStyles(styles)}
	if end >= 0 {
		if stop := lastStatementBefore(cu, end); stop != nil {
			opts = append(opts, format.WithStopAfter(stop))
		}
	}
	return printer.Print(format.Format(cu, opts...)), nil
}

// lastStatementBefore returns the statement or declaration that starts last
// before offset. Of nested statements starting together the outermost wins.
func lastStatementBefore(cu *tree.CompilationUnit, offset int) tree.Tree {
	_, offsets := printer.PrintWithOffsets(cu)
	var found tree.Tree
	start := -1
	for _, s := range tree.Collect[tree.Statement](cu) {
		at, ok := offsets[tree.IDOf(s)]
		if ok && at < offset && at > start {
			found, start = s, at
		}
	}
	return found
}

// textEdits describes the change from before to after as at most one edit
// replacing the span between their common prefix and suffix.
func textEdits(before, after string) []protocol.TextEdit {
	if before == after {
		return []protocol.TextEdit{}
	}
	prefix := 0
	for prefix < len(before) && prefix < len(after) && before[prefix] == after[prefix] {
		prefix++
	}
	for prefix > 0 && !utf8.RuneStart(before[prefix]) {
		prefix--
	}
	suffix := 0
	for suffix < len(before)-prefix && suffix < len(after)-prefix &&
		before[len(before)-1-suffix] == after[len(after)-1-suffix] {
		suffix++
	}
	for suffix > 0 && !utf8.RuneStart(before[len(before)-suffix]) {
		suffix--
	}
	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: positionOf(before, prefix),
			End:   positionOf(before, len(before)-suffix),
		},
		NewText: after[prefix : len(after)-suffix],
	}}
}

// positionOf converts a byte offset to a line and UTF-16 column.
func positionOf(text string, offset int) protocol.Position {
	var line, col protocol.UInteger
	for i, r := range text {
		if i >= offset {
			break
		}
		if r == '\n' {
			line++
			col = 0
			continue
		}
		col += protocol.UInteger(len(utf16.AppendRune(nil, r)))
	}
	return protocol.Position{Line: line, Character: col}
}

// offsetOf converts a position back to a byte offset, clamping positions
// past the end of a line or of the text.
func offsetOf(text string, pos protocol.Position) int {
	var line, col protocol.UInteger
	for i, r := range text {
		if line == pos.Line && (col >= pos.Character || r == '\n') {
			return i
		}
		if r == '\n' {
			line++
			col = 0
			continue
		}
		if line == pos.Line {
			col += protocol.UInteger(len(utf16.AppendRune(nil, r)))
		}
	}
	return len(text)
}
