package style

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	for _, file := range []string{"team.yaml", "team.toml"} {
		t.Run(file, func(t *testing.T) {
			ns, err := Load(filepath.Join("testdata", file))
			require.NoError(t, err)
			assert.Equal(t, "team", ns.Name)
			assert.Equal(t, "Team style", ns.DisplayName)

			spaces, _ := Find[SpacesStyle](ns)
			assert.True(t, spaces.BeforeParentheses.MethodCall)
			assert.True(t, spaces.BeforeParentheses.If, "unset keys keep their defaults")

			tabs, _ := Find[TabsAndIndentsStyle](ns)
			assert.True(t, tabs.UseTabCharacter)
			assert.Equal(t, 4, tabs.IndentSize)

			blank, _ := Find[BlankLinesStyle](ns)
			assert.Equal(t, 1, blank.KeepMaximum.InCode)
			assert.Equal(t, 2, blank.KeepMaximum.InDeclarations)

			other, _ := Find[OtherStyle](ns)
			require.NotNil(t, other.UseTrailingComma)
			assert.False(t, *other.UseTrailingComma)
		})
	}
}

func TestLoadNamesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compact.yml")
	require.NoError(t, os.WriteFile(path, []byte("tabsAndIndents:\n  indentSize: 2\n"), 0o644))

	ns, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "compact", ns.Name)
	tabs, _ := Find[TabsAndIndentsStyle](ns)
	assert.Equal(t, 2, tabs.IndentSize)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"extension", write("style.json", "{}"), "unsupported style file extension"},
		{"unknown yaml key", write("bad.yaml", "spaces:\n  sideways: true\n"), "sideways"},
		{"unknown toml key", write("bad.toml", "[spaces]\nsideways = true\n"), "sideways"},
		{"missing", filepath.Join(dir, "missing.yaml"), "no such file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEmptyDocumentIsDefaults(t *testing.T) {
	ns, err := Decode(nil, YAML)
	require.NoError(t, err)
	spaces, _ := Find[SpacesStyle](ns)
	assert.Equal(t, DefaultSpaces(), spaces)
}

func TestMarshalRoundTrip(t *testing.T) {
	custom := DefaultBlankLines()
	custom.Minimum.AroundField = 1
	ns := IntelliJ().With(custom).With(OtherStyle{UseTrailingComma: Bool(true)})

	for _, format := range []Format{YAML, TOML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Marshal(ns, format)
			require.NoError(t, err)

			back, err := Decode(data, format)
			require.NoError(t, err)
			assert.Equal(t, ns.Name, back.Name)
			assert.Equal(t, ns.Styles, back.Styles)
		})
	}
}

func TestMarshalYAMLKeys(t *testing.T) {
	data, err := Marshal(IntelliJ(), YAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: intellij\n")
	assert.Contains(t, string(data), "  keepMaximum:\n")
	assert.NotContains(t, string(data), "useTrailingComma")
}
