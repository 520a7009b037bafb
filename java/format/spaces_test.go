package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhamidi/lst/java/printer"
	"github.com/dhamidi/lst/java/style"
)

func TestSpaces(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"operators", "class A{int x=a+b*c;}", "class A {int x = a + b * c;}"},
		{"parameters", "class A{void m(int a,int b){}}", "class A {void m(int a, int b) {}}"},
		{"if else", "class A{void m(){if(x){}else{}}}", "class A {void m() {if (x) {} else {}}}"},
		{"line breaks stay", "class A {\n    int x=1;\n}", "class A {\n    int x = 1;\n}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cu := Spaces(mustParse(t, tt.src), style.DefaultSpaces())
			assert.Equal(t, tt.want, printer.Print(cu))
		})
	}
}

func TestSpacesWithinParentheses(t *testing.T) {
	s := style.DefaultSpaces()
	s.Within.MethodDeclarationParentheses = true
	s.BeforeLeftBrace.Method = false
	cu := Spaces(mustParse(t, "class A{void m(int a){}}"), s)
	assert.Equal(t, "class A {void m( int a ){}}", printer.Print(cu))
}
