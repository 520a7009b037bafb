package style

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/lst/java/tree"
)

// Format is the encoding of a style file.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// document is the on-disk layout of a style file.
type document struct {
	Name              string                 `yaml:"name" toml:"name"`
	DisplayName       string                 `yaml:"displayName,omitempty" toml:"displayName,omitempty"`
	Spaces            SpacesStyle            `yaml:"spaces" toml:"spaces"`
	BlankLines        BlankLinesStyle        `yaml:"blankLines" toml:"blankLines"`
	TabsAndIndents    TabsAndIndentsStyle    `yaml:"tabsAndIndents" toml:"tabsAndIndents"`
	WrappingAndBraces WrappingAndBracesStyle `yaml:"wrappingAndBraces" toml:"wrappingAndBraces"`
	Other             OtherStyle             `yaml:"other" toml:"other"`
}

func newDocument(ns NamedStyles) document {
	return document{
		Name:              ns.Name,
		DisplayName:       ns.DisplayName,
		Spaces:            findOr[SpacesStyle](ns),
		BlankLines:        findOr[BlankLinesStyle](ns),
		TabsAndIndents:    findOr[TabsAndIndentsStyle](ns),
		WrappingAndBraces: findOr[WrappingAndBracesStyle](ns),
		Other:             findOr[OtherStyle](ns),
	}
}

func findOr[S Style](ns NamedStyles) S {
	if s, ok := Find[S](ns); ok {
		return s
	}
	return Default[S]()
}

func (d document) styles() NamedStyles {
	return NamedStyles{
		ID:          tree.NewID(),
		Name:        d.Name,
		DisplayName: d.DisplayName,
		Styles:      []Style{d.Spaces, d.BlankLines, d.TabsAndIndents, d.WrappingAndBraces, d.Other},
	}
}

// FormatOf picks the file format from a path's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return "", fmt.Errorf("unsupported style file extension %q", filepath.Ext(path))
}

// Load reads a style file. Settings missing from the file keep their
// built-in defaults.
func Load(path string) (NamedStyles, error) {
	format, err := FormatOf(path)
	if err != nil {
		return NamedStyles{}, fmt.Errorf("load style %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return NamedStyles{}, fmt.Errorf("load style: %w", err)
	}
	ns, err := Decode(data, format)
	if err != nil {
		return NamedStyles{}, fmt.Errorf("load style %s: %w", path, err)
	}
	if ns.Name == "" {
		ns.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return ns, nil
}

// Decode parses a style document on top of the built-in defaults. Unknown
// keys are errors.
func Decode(data []byte, format Format) (NamedStyles, error) {
	doc := newDocument(IntelliJ())
	doc.Name, doc.DisplayName = "", ""
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return NamedStyles{}, err
		}
	case TOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return NamedStyles{}, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return NamedStyles{}, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	default:
		return NamedStyles{}, fmt.Errorf("unsupported style format %q", format)
	}
	return doc.styles(), nil
}

// Marshal encodes ns as a complete document, filling concerns ns lacks
// with their defaults.
func Marshal(ns NamedStyles, format Format) ([]byte, error) {
	doc := newDocument(ns)
	var buf bytes.Buffer
	switch format {
	case YAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	case TOML:
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported style format %q", format)
	}
	return buf.Bytes(), nil
}
