package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhamidi/lst/java/printer"
	"github.com/dhamidi/lst/java/style"
)

func TestTrailingComma(t *testing.T) {
	tests := []struct {
		name string
		use  *bool
		src  string
		want string
	}{
		{
			name: "remove from array",
			use:  style.Bool(false),
			src:  "class A {\n    int[] a = {1, 2,};\n}",
			want: "class A {\n    int[] a = {1, 2};\n}",
		},
		{
			name: "add to multiline array",
			use:  style.Bool(true),
			src:  "class A {\n    int[] a = {\n        1,\n        2\n    };\n}",
			want: "class A {\n    int[] a = {\n        1,\n        2,\n    };\n}",
		},
		{
			name: "single line array keeps its shape",
			use:  style.Bool(true),
			src:  "class A {\n    int[] a = {1, 2};\n}",
			want: "class A {\n    int[] a = {1, 2};\n}",
		},
		{
			name: "add to enum",
			use:  style.Bool(true),
			src:  "enum E {\n    A,\n    B\n}",
			want: "enum E {\n    A,\n    B,\n}",
		},
		{
			name: "remove from enum",
			use:  style.Bool(false),
			src:  "enum E {\n    A,\n    B,\n}",
			want: "enum E {\n    A,\n    B\n}",
		},
		{
			name: "unset leaves commas",
			src:  "enum E {\n    A,\n    B,\n}",
			want: "enum E {\n    A,\n    B,\n}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cu := TrailingComma(mustParse(t, tt.src), style.OtherStyle{UseTrailingComma: tt.use})
			assert.Equal(t, tt.want, printer.Print(cu))
		})
	}
}
