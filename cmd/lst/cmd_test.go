package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeJava(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestFmtStdin(t *testing.T) {
	out, err := run(t, "class A{}", "fmt")
	require.NoError(t, err)
	assert.Equal(t, "class A {\n}", out)
}

func TestFmtWrite(t *testing.T) {
	path := writeJava(t, t.TempDir(), "A.java", "class A{void m(){int x=1;}}")

	_, err := run(t, "", "fmt", "-w", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "class A {\n    void m() {\n        int x = 1;\n    }\n}", string(data))
}

func TestFmtCheck(t *testing.T) {
	dir := t.TempDir()
	bad := writeJava(t, dir, "A.java", "class A{}")
	writeJava(t, dir, "B.java", "class B {\n}")

	out, err := run(t, "", "fmt", "--check", dir)
	require.ErrorIs(t, err, errUnformatted)
	assert.Contains(t, out, bad)
	assert.NotContains(t, out, "B.java")
}

func TestFmtDiff(t *testing.T) {
	path := writeJava(t, t.TempDir(), "A.java", "class A{}")

	out, err := run(t, "", "fmt", "--diff", path)
	require.NoError(t, err)
	assert.Contains(t, out, "--- "+path)
	assert.Contains(t, out, "-class A{}\n")
	assert.Contains(t, out, "+class A {\n+}\n")
}

func TestFmtStrip(t *testing.T) {
	out, err := run(t, "class A {\n    int x = 1;\n}", "fmt", "--strip")
	require.NoError(t, err)
	assert.Equal(t, "class A{int x=1;}", out)
}

func TestFmtStyleFromEnvironment(t *testing.T) {
	t.Setenv("LST_STYLE", "eclipse")
	_, err := run(t, "class A{}", "fmt")
	assert.ErrorContains(t, err, `unknown style "eclipse"`)
}

func TestFmtStyleFile(t *testing.T) {
	dir := t.TempDir()
	styleFile := filepath.Join(dir, "team.yaml")
	require.NoError(t, os.WriteFile(styleFile, []byte("tabsAndIndents:\n  indentSize: 2\n"), 0o644))

	out, err := run(t, "class A{void m(){}}", "fmt", "--style", styleFile)
	require.NoError(t, err)
	assert.Equal(t, "class A {\n  void m() {\n  }\n}", out)
}

func TestFmtRejectsOtherFiles(t *testing.T) {
	path := writeJava(t, t.TempDir(), "A.kt", "class A")
	_, err := run(t, "", "fmt", path)
	assert.ErrorContains(t, err, "expected .java file")
}

func TestJavaFilesSkipsHiddenDirectories(t *testing.T) {
	dir := t.TempDir()
	a := writeJava(t, dir, "src/A.java", "class A {}")
	writeJava(t, dir, ".git/B.java", "class B {}")
	writeJava(t, dir, "src/notes.txt", "")

	files, err := javaFiles([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{a}, files)
}

func TestParseTree(t *testing.T) {
	path := writeJava(t, t.TempDir(), "A.java", "class A {\n    int x;\n}\n")

	out, err := run(t, "", "parse", path)
	require.NoError(t, err)
	assert.Contains(t, out, "CompilationUnit")
	assert.Contains(t, out, "ClassDeclaration")
	assert.Contains(t, out, "VariableDeclarations")
}

func TestParseSpaces(t *testing.T) {
	path := writeJava(t, t.TempDir(), "A.java", "class A {\n    // note\n    int x;\n}\n")

	out, err := run(t, "", "parse", "--format", "spaces", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"\n    // note\n    "`)
}

func TestParseUnknownFormat(t *testing.T) {
	path := writeJava(t, t.TempDir(), "A.java", "class A {}")
	_, err := run(t, "", "parse", "--format", "xml", path)
	assert.ErrorContains(t, err, "unknown format: xml")
}

func TestStyles(t *testing.T) {
	out, err := run(t, "", "styles")
	require.NoError(t, err)
	assert.Contains(t, out, "name: intellij")
	assert.Contains(t, out, "tabsAndIndents:")
	assert.Contains(t, out, "indentSize: 4")
}

func TestLineDiff(t *testing.T) {
	lines := lineDiff("a\nb\nc\n", "a\nB\nc\n")
	var b strings.Builder
	for _, l := range lines {
		switch l.op {
		case diffmatchpatch.DiffInsert:
			b.WriteString("+")
		case diffmatchpatch.DiffDelete:
			b.WriteString("-")
		default:
			b.WriteString(" ")
		}
		b.WriteString(l.text + "\n")
	}
	assert.Equal(t, " a\n-b\n+B\n c\n", b.String())
}
