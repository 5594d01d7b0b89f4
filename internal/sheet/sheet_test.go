package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same number", Number(5), Number(5), true},
		{"different number", Number(5), Number(5.5), false},
		{"number vs text", Number(5), Text("5"), false},
		{"same text", Text("OP10"), Text("OP10"), true},
		{"case differs", Text("op10"), Text("OP10"), false},
		{"whitespace differs", Text("OP10 "), Text("OP10"), false},
		{"null vs null", Null(), Null(), true},
		{"null vs empty text", Null(), Text(""), false},
		{"null vs zero", Null(), Number(0), false},
		{"bool", Bool(true), Bool(true), true},
		{"bool vs number", Bool(true), Number(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "", Null().String())
	assert.Equal(t, "5", Number(5).String())
	assert.Equal(t, "5.25", Number(5.25).String())
	assert.Equal(t, "-3", Number(-3).String())
	assert.Equal(t, "OP10", Text("OP10").String())
	assert.Equal(t, "TRUE", Bool(true).String())
	assert.Equal(t, "FALSE", Bool(false).String())
}

func TestGrid(t *testing.T) {
	g := NewGrid("LOTA LOTB", 20, 25)

	assert.Equal(t, "LOTA LOTB", g.Title())
	assert.True(t, g.Cell(4, 25).IsNull())

	g.Set(4, 25, Text("OP10"))
	assert.Equal(t, "OP10", g.Cell(4, 25).String())
	assert.Equal(t, 20, g.MaxColumn())
	assert.Equal(t, 25, g.MaxRow())

	g.Set(27, 30, Number(1))
	assert.Equal(t, 27, g.MaxColumn())
	assert.Equal(t, 30, g.MaxRow())
	assert.Equal(t, 2, g.Len())

	g.Set(4, 25, Null())
	assert.True(t, g.Cell(4, 25).IsNull())
	assert.Equal(t, 1, g.Len())

	g.Set(0, 1, Text("ignored"))
	assert.Equal(t, 1, g.Len())
}
