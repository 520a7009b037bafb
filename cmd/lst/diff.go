package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffContext is the number of unchanged lines shown around a change.
const diffContext = 2

type render func(string) string

type diffStyles struct {
	header  render
	hunk    render
	add     render
	remove  render
	context render
}

func newDiffStyles(color bool) diffStyles {
	if !color {
		plain := func(s string) string { return s }
		return diffStyles{header: plain, hunk: plain, add: plain, remove: plain, context: plain}
	}
	base := lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return diffStyles{
		header:  styled(base.Bold(true)),
		hunk:    styled(base.Foreground(lipgloss.Color("14"))),
		add:     styled(base.Foreground(lipgloss.Color("10"))),
		remove:  styled(base.Foreground(lipgloss.Color("9"))),
		context: styled(base.Foreground(lipgloss.Color("8"))),
	}
}

func styled(s lipgloss.Style) render {
	return func(text string) string { return s.Render(text) }
}

func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type diffLine struct {
	op   diffmatchpatch.Operation
	text string
}

// lineDiff compares two texts line by line.
func lineDiff(before, after string) []diffLine {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []diffLine
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			out = append(out, diffLine{op: d.Type, text: line})
		}
	}
	return out
}

// writeDiff prints the changed lines of a file with a little context,
// colored when w is a terminal.
func writeDiff(w io.Writer, path, before, after string) error {
	st := newDiffStyles(colorEnabled(w))
	lines := lineDiff(before, after)

	show := make([]bool, len(lines))
	for i, l := range lines {
		if l.op == diffmatchpatch.DiffEqual {
			continue
		}
		for j := max(0, i-diffContext); j <= min(len(lines)-1, i+diffContext); j++ {
			show[j] = true
		}
	}

	var b strings.Builder
	b.WriteString(st.header("--- "+path) + "\n")
	b.WriteString(st.header("+++ "+path) + "\n")
	oldLine, newLine := 1, 1
	gap := true
	for i, l := range lines {
		if show[i] {
			if gap {
				b.WriteString(st.hunk(fmt.Sprintf("@@ -%d +%d @@", oldLine, newLine)) + "\n")
				gap = false
			}
			switch l.op {
			case diffmatchpatch.DiffInsert:
				b.WriteString(st.add("+"+l.text) + "\n")
			case diffmatchpatch.DiffDelete:
				b.WriteString(st.remove("-"+l.text) + "\n")
			default:
				b.WriteString(st.context(" "+l.text) + "\n")
			}
		} else {
			gap = true
		}
		switch l.op {
		case diffmatchpatch.DiffInsert:
			newLine++
		case diffmatchpatch.DiffDelete:
			oldLine++
		default:
			oldLine++
			newLine++
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
