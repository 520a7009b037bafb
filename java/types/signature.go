package types

import (
	"fmt"
	"strings"
)

// SignatureError reports a signature that could not be parsed.
type SignatureError struct {
	Signature string
	Offset    int
	Msg       string
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("signature %q at %d: %s", e.Signature, e.Offset, e.Msg)
}

// Parse builds a type from Java source syntax: "int", "java.lang.String[]",
// "java.util.Map<K, java.util.List<? extends Number>>". Names matching one
// of vars refer to that type variable. Names without a package resolve to
// java.lang when the class is known there.
func (r *Registry) Parse(sig string, vars ...*GenericTypeVariable) (JavaType, error) {
	p := r.newParser(sig, vars)
	t, err := p.typeArgument()
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return t, nil
}

// MustParse is Parse for signatures known to be valid.
func (r *Registry) MustParse(sig string, vars ...*GenericTypeVariable) JavaType {
	t, err := r.Parse(sig, vars...)
	if err != nil {
		panic(err)
	}
	return t
}

// TypeVariable declares a type variable, like "T extends Comparable<T>".
// The bounds may refer to the variable itself and to vars.
func (r *Registry) TypeVariable(decl string, vars ...*GenericTypeVariable) (*GenericTypeVariable, error) {
	p := r.newParser(decl, vars)
	v, err := p.typeParameter()
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return v, nil
}

type sigParser struct {
	r    *Registry
	src  string
	pos  int
	vars map[string]*GenericTypeVariable
}

func (r *Registry) newParser(src string, vars []*GenericTypeVariable) *sigParser {
	p := &sigParser{r: r, src: src, vars: make(map[string]*GenericTypeVariable)}
	for _, v := range vars {
		p.vars[v.Name] = v
	}
	return p
}

func (p *sigParser) fail(format string, args ...any) error {
	return &SignatureError{Signature: p.src, Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *sigParser) skipSpaces() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *sigParser) peek() byte {
	p.skipSpaces()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *sigParser) accept(b byte) bool {
	if p.peek() != b {
		return false
	}
	p.pos++
	return true
}

func (p *sigParser) end() error {
	if p.peek() != 0 {
		return p.fail("unexpected %q", p.src[p.pos:])
	}
	return nil
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '$' || b >= 0x80 ||
		'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || '0' <= b && b <= '9'
}

func (p *sigParser) ident() (string, error) {
	p.skipSpaces()
	start := p.pos
	for p.pos < len(p.src) && isIdentByte(p.src[p.pos]) {
		p.pos++
	}
	if start == p.pos {
		if p.pos >= len(p.src) {
			return "", p.fail("unexpected end, want a name")
		}
		return "", p.fail("unexpected %q, want a name", p.src[p.pos])
	}
	return p.src[start:p.pos], nil
}

// keyword consumes word when it is the next identifier.
func (p *sigParser) keyword(word string) bool {
	p.skipSpaces()
	rest := p.src[p.pos:]
	if !strings.HasPrefix(rest, word) || len(rest) > len(word) && isIdentByte(rest[len(word)]) {
		return false
	}
	p.pos += len(word)
	return true
}

func (p *sigParser) qualifiedName() (string, error) {
	name, err := p.ident()
	if err != nil {
		return "", err
	}
	for p.accept('.') {
		part, err := p.ident()
		if err != nil {
			return "", err
		}
		name += "." + part
	}
	return name, nil
}

// typeArgument parses a type or a wildcard.
func (p *sigParser) typeArgument() (JavaType, error) {
	if !p.accept('?') {
		return p.typ()
	}
	w := &GenericTypeVariable{Name: Wildcard, Variance: Invariant}
	switch {
	case p.keyword("extends"):
		w.Variance = Covariant
	case p.keyword("super"):
		w.Variance = Contravariant
	default:
		return w, nil
	}
	bound, err := p.typ()
	if err != nil {
		return nil, err
	}
	w.Bounds = []JavaType{bound}
	return w, nil
}

func (p *sigParser) typ() (JavaType, error) {
	name, err := p.qualifiedName()
	if err != nil {
		return nil, err
	}
	var t JavaType
	switch {
	case p.vars[name] != nil:
		t = p.vars[name]
	case primitives[name] != "":
		t = primitives[name]
	default:
		c := p.r.resolve(name)
		t = c
		if p.peek() == '<' {
			args, err := p.typeArguments()
			if err != nil {
				return nil, err
			}
			t = &Parameterized{Type: c, TypeArguments: args}
		}
	}
	for p.accept('[') {
		if !p.accept(']') {
			return nil, p.fail("want ]")
		}
		t = &Array{ElemType: t}
	}
	return t, nil
}

func (p *sigParser) typeArguments() ([]JavaType, error) {
	p.accept('<')
	var args []JavaType
	for {
		arg, err := p.typeArgument()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.accept(',') {
			continue
		}
		if !p.accept('>') {
			return nil, p.fail("want , or >")
		}
		return args, nil
	}
}

// typeParameters parses "<A, B extends X>" and brings the variables into
// scope as soon as each is named, so bounds may refer to any of them.
func (p *sigParser) typeParameters() ([]*GenericTypeVariable, error) {
	p.accept('<')
	var params []*GenericTypeVariable
	for {
		v, err := p.typeParameter()
		if err != nil {
			return nil, err
		}
		params = append(params, v)
		if p.accept(',') {
			continue
		}
		if !p.accept('>') {
			return nil, p.fail("want , or >")
		}
		return params, nil
	}
}

func (p *sigParser) typeParameter() (*GenericTypeVariable, error) {
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	v := &GenericTypeVariable{Name: name, Variance: Invariant}
	p.vars[name] = v
	if !p.keyword("extends") {
		return v, nil
	}
	for {
		bound, err := p.typ()
		if err != nil {
			return nil, err
		}
		v.Bounds = append(v.Bounds, bound)
		if !p.accept('&') {
			return v, nil
		}
	}
}

var descriptorPrimitives = map[byte]Primitive{
	'B': Byte, 'C': Char, 'D': Double, 'F': Float,
	'I': Int, 'J': Long, 'S': Short, 'Z': Boolean, 'V': Void,
}

// Descriptor builds a type from a JVM field descriptor such as
// "[Ljava/lang/String;".
func (r *Registry) Descriptor(desc string) (JavaType, error) {
	depth := 0
	for depth < len(desc) && desc[depth] == '[' {
		depth++
	}
	rest := desc[depth:]
	if rest == "" {
		return nil, &SignatureError{Signature: desc, Offset: depth, Msg: "missing element type"}
	}
	var t JavaType
	switch {
	case len(rest) == 1 && descriptorPrimitives[rest[0]] != "":
		t = descriptorPrimitives[rest[0]]
	case rest[0] == 'L' && strings.HasSuffix(rest, ";") && len(rest) > 2:
		t = r.Class(strings.ReplaceAll(rest[1:len(rest)-1], "/", "."))
	default:
		return nil, &SignatureError{Signature: desc, Offset: depth, Msg: "bad element type"}
	}
	for i := 0; i < depth; i++ {
		t = &Array{ElemType: t}
	}
	return t, nil
}
