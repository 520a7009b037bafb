package parser

import (
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/golden"

	"github.com/dhamidi/lst/java/printer"
)

func TestParseGoldenRoundTrip(t *testing.T) {
	for _, name := range []string{"Inventory.java", "Shapes.java", "Messy.java"} {
		t.Run(name, func(t *testing.T) {
			src := golden.Get(t, name)
			cu, err := Parse(src, WithFile(name))
			assert.NilError(t, err)
			golden.Assert(t, printer.Print(cu), name)
		})
	}
}
