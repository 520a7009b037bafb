package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhamidi/lst/java/printer"
	"github.com/dhamidi/lst/java/style"
)

func TestWrappingAndBraces(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"statements on own lines", "class A{void m(){a();b();}}", "class A{\nvoid m(){\na();\nb();\n}\n}"},
		{"brace joins header", "class A\n{\n}", "class A {\n}"},
		{"annotations wrap", "class A {\n@A @B void m() {\n}\n}", "class A {\n@A\n@B\nvoid m() {\n}\n}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cu := WrappingAndBraces(mustParse(t, tt.src), style.DefaultWrappingAndBraces())
			assert.Equal(t, tt.want, printer.Print(cu))
		})
	}
}

func TestWrappingKeepsSimpleLambda(t *testing.T) {
	src := "class A {\nRunnable r = () -> {};\n}"
	cu := WrappingAndBraces(mustParse(t, src), style.DefaultWrappingAndBraces())
	assert.Equal(t, src, printer.Print(cu))
}
