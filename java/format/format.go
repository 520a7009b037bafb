// Package format rewrites the whitespace of a syntax tree according to a
// code style. Every concern is a separate visitor. AutoFormat runs them in a
// fixed order and Format repeats AutoFormat until the printed text settles.
package format

import (
	"github.com/tliron/commonlog"

	"github.com/dhamidi/lst/java/printer"
	"github.com/dhamidi/lst/java/style"
	"github.com/dhamidi/lst/java/tree"
)

var log = commonlog.GetLogger("lst.format")

// MaxCycles is the default number of AutoFormat runs Format allows before
// giving up on a stable result.
const MaxCycles = 3

type Option func(*options)

type options struct {
	stopAfter tree.Tree
	styles    *style.NamedStyles
	cycles    int
}

func newOptions(opts []Option) options {
	o := options{cycles: MaxCycles}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithStopAfter leaves everything after t untouched: once t has been
// visited the visitor stops changing nodes.
func WithStopAfter(t tree.Tree) Option {
	return func(o *options) {
		o.stopAfter = t
	}
}

// WithStyles makes Format use styles instead of the unit's NamedStyles
// marker.
func WithStyles(styles style.NamedStyles) Option {
	return func(o *options) {
		o.styles = &styles
	}
}

// WithCycles bounds the number of AutoFormat runs in Format.
func WithCycles(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.cycles = n
		}
	}
}

type stopper struct {
	tree.Visitor
	id   tree.ID
	done bool
}

func (s *stopper) PreVisit(t tree.Tree, c *tree.Cursor) tree.Tree {
	if s.done {
		return t
	}
	return s.Visitor.PreVisit(t, c)
}

func (s *stopper) PostVisit(t tree.Tree, c *tree.Cursor) tree.Tree {
	if s.done {
		return t
	}
	out := s.Visitor.PostVisit(t, c)
	if tree.IDOf(t) == s.id {
		s.done = true
	}
	return out
}

func (o options) wrap(v tree.Visitor) tree.Visitor {
	if tree.IsNil(o.stopAfter) {
		return v
	}
	return &stopper{Visitor: v, id: tree.IDOf(o.stopAfter)}
}

func apply[T tree.Tree](v tree.Visitor, t T, parent *tree.Cursor) T {
	return tree.Walk(v, t, parent).(T)
}

type step struct {
	name    string
	visitor tree.Visitor
}

func resolve[S style.Style](cu *tree.CompilationUnit, styles *style.NamedStyles) S {
	if styles != nil {
		if s, ok := style.Find[S](*styles); ok {
			return style.Resolve(cu, &s)
		}
	}
	return style.Resolve[S](cu, nil)
}

func steps(cu *tree.CompilationUnit, styles *style.NamedStyles, opts []Option) []step {
	tabs := resolve[style.TabsAndIndentsStyle](cu, styles)
	return []step{
		{"RemoveTrailingWhitespace", NewRemoveTrailingWhitespaceVisitor(opts...)},
		{"BlankLines", NewBlankLinesVisitor(resolve[style.BlankLinesStyle](cu, styles), opts...)},
		{"WrappingAndBraces", NewWrappingAndBracesVisitor(resolve[style.WrappingAndBracesStyle](cu, styles), opts...)},
		{"TrailingComma", NewTrailingCommaVisitor(resolve[style.OtherStyle](cu, styles), opts...)},
		{"Spaces", NewSpacesVisitor(resolve[style.SpacesStyle](cu, styles), opts...)},
		{"NormalizeTabsOrSpaces", NewNormalizeTabsOrSpacesVisitor(tabs, opts...)},
		{"TabsAndIndents", NewTabsAndIndentsVisitor(tabs, opts...)},
		{"MinimumViableSpacing", NewMinimumViableSpacingVisitor(opts...)},
	}
}

func sourcePath(cu *tree.CompilationUnit) string {
	if cu == nil || cu.SourcePath == "" {
		return "<unknown>"
	}
	return cu.SourcePath
}

func enclosingUnit(t tree.Tree, parent *tree.Cursor) *tree.CompilationUnit {
	if cu, ok := t.(*tree.CompilationUnit); ok {
		return cu
	}
	cu, _ := tree.FirstEnclosing[*tree.CompilationUnit](parent)
	return cu
}

// AutoFormat runs every formatting visitor over t once. Styles missing from
// styles, or all of them when styles is nil, are resolved from the
// enclosing compilation unit. parent positions t inside a larger tree and
// may be nil.
func AutoFormat[T tree.Tree](t T, styles *style.NamedStyles, parent *tree.Cursor, opts ...Option) T {
	return autoFormat(t, styles, parent, 0, opts)
}

func autoFormat[T tree.Tree](t T, styles *style.NamedStyles, parent *tree.Cursor, cycle int, opts []Option) T {
	cu := enclosingUnit(t, parent)
	debug := log.AllowLevel(commonlog.Debug)
	var out tree.Tree = t
	var text string
	if debug {
		text = printer.Print(out)
	}
	for _, s := range steps(cu, styles, opts) {
		out = tree.Walk(s.visitor, out, parent)
		if !debug {
			continue
		}
		if next := printer.Print(out); next != text {
			log.Debugf("cycle %d: %s changed %s", cycle, s.name, sourcePath(cu))
			text = next
		}
	}
	return out.(T)
}

// Format formats a whole compilation unit, repeating AutoFormat until the
// printed text stops changing or the cycle budget runs out.
func Format(cu *tree.CompilationUnit, opts ...Option) *tree.CompilationUnit {
	o := newOptions(opts)
	text := printer.Print(cu)
	for cycle := 1; cycle <= o.cycles; cycle++ {
		next := autoFormat(cu, o.styles, nil, cycle, opts)
		nextText := printer.Print(next)
		cu = next
		if nextText == text {
			log.Debugf("%s: stable after %d cycles", sourcePath(cu), cycle)
			return cu
		}
		text = nextText
	}
	log.Infof("%s: still changing after %d cycles", sourcePath(cu), o.cycles)
	return cu
}

// StripWhitespace empties every whitespace run in t, keeping comments. The
// result usually does not print as valid source until MinimumViableSpacing
// has run.
func StripWhitespace[T tree.Tree](t T) T {
	return tree.MapAllSpaces(t, func(s tree.Space, _ tree.SpaceLoc) tree.Space {
		return mapWhitespace(s, func(string) string { return "" })
	})
}
