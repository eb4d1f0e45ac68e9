package fastparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringInLongestMatch(t *testing.T) {
	p := StringIn("if", "ifdef", "else")

	r := p.Parse("ifdefx")
	require.True(t, r.OK())
	assert.Equal(t, 5, r.Index)

	r = p.Parse("if")
	require.True(t, r.OK())
	assert.Equal(t, 2, r.Index)

	// a partial longer word falls back to the longest complete one
	r = p.Parse("ifde")
	require.True(t, r.OK())
	assert.Equal(t, 2, r.Index)

	r = p.Parse("elz")
	require.False(t, r.OK())
	assert.Equal(t, 0, r.Err.Index)
}

func TestStringInOrderIrrelevant(t *testing.T) {
	a := StringIn("if", "ifdef")
	b := StringIn("ifdef", "if")
	for _, in := range []string{"if", "ifdef", "ifd", "x", ""} {
		r1 := a.ParseAt(in, 0, false)
		r2 := b.ParseAt(in, 0, false)
		assert.Equal(t, r1.OK(), r2.OK(), "input %q", in)
		assert.Equal(t, r1.Index, r2.Index, "input %q", in)
	}
}

func TestStringInAtOffset(t *testing.T) {
	p := StringIn("for", "foreach")
	r := p.ParseAt("x foreach", 2, true)
	require.True(t, r.OK())
	assert.Equal(t, 9, r.Index)
}

func TestStringInEmptySet(t *testing.T) {
	p := StringIn()
	assert.False(t, p.Parse("anything").OK())
	assert.False(t, p.Parse("").OK())
}

func TestStringInCaptured(t *testing.T) {
	p := Capture(StringIn("true", "false", "null"))
	r := p.Parse("falsehood")
	require.True(t, r.OK())
	assert.Equal(t, "false", r.Value)
}

func TestStringInStringer(t *testing.T) {
	assert.Equal(t, `StringIn("if", "else")`, StringIn("if", "else").String())
}
