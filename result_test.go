package fastparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralize(t *testing.T) {
	cases := map[string]string{
		"abc":      `"abc"`,
		"a\nb":     `"a\nb"`,
		"a\tb":     `"a\tb"`,
		"a\rb":     `"a\rb"`,
		`say "hi"`: `"say \"hi\""`,
		`a\b`:      `"a\\b"`,
		"\x01":     `"\u0001"`,
		"\x7f":     `"\u007f"`,
		"\u00e9":   `"\u00c3\u00a9"`,
		"":         `""`,
	}
	for in, want := range cases {
		assert.Equal(t, want, Literalize(in), "input %q", in)
	}
}

func TestFailureTrace(t *testing.T) {
	num := Rule("num", func() Parser[string] {
		return Capture(CharsWhileIn("0-9", 1))
	})
	full := Skip(num, End())

	r := full.Parse("abc")
	require.False(t, r.OK())
	assert.Equal(t, `num:0 / CharsWhileIn("0-9"):0 ..."abc"`, r.Err.Trace())
	assert.Equal(t, r.Err.Trace(), r.Err.Error())
}

func TestFailureVerboseTrace(t *testing.T) {
	num := Rule("num", func() Parser[string] {
		return Capture(CharsWhileIn("0-9", 1))
	})

	r := num.Parse("abcdefgh")
	require.False(t, r.OK())
	want := "0\t...\"abcde\"\tnum\n" +
		"0\t...\"abcde\"\tCharsWhileIn(\"0-9\")"
	assert.Equal(t, want, r.Err.VerboseTrace())
}

func TestFailureStackKeepsCutSequences(t *testing.T) {
	p := Or(
		Capture(ThenCut(Literal("foo"), Literal("bar"))),
		Capture(Literal("baz")),
	)

	r := p.Parse("fooba")
	require.False(t, r.OK())

	stack := r.Err.Stack()
	require.Len(t, stack, 2)
	assert.Equal(t, 0, stack[0].Index)
	assert.Equal(t, `("foo" ~! "bar")`, stack[0].Parser.String())
	assert.Equal(t, 3, stack[1].Index)
	assert.Equal(t, `"bar"`, stack[1].Parser.String())

	assert.Equal(t, `("foo" ~! "bar"):0 / "bar":3 ..."ba"`, r.Err.Trace())
}

func TestFailureWithoutTrace(t *testing.T) {
	p := Then(Literal("ab"), Literal("cd"))
	r := p.ParseAt("abxx", 0, false)
	require.False(t, r.OK())
	assert.Empty(t, r.Err.FullStack)
	assert.Equal(t, 2, r.Err.Index)
	assert.Equal(t, `"cd"`, r.Err.Parser.String())

	// the synthetic deepest frame is still present in the filtered stack
	stack := r.Err.Stack()
	require.Len(t, stack, 1)
	assert.Equal(t, 2, stack[0].Index)
}

func TestTraceSnippetClipped(t *testing.T) {
	p := Literal("x")
	r := p.Parse("abcdefghijklmnop")
	require.False(t, r.OK())
	// at most ten code units of lookahead are shown
	assert.Equal(t, `"x":0 ..."abcdefghij"`, r.Err.Trace())
}

func TestFailureAtEndOfInput(t *testing.T) {
	p := Literal("abc")
	r := p.ParseAt("abc", 3, true)
	require.False(t, r.OK())
	assert.Equal(t, `"abc":3 ...""`, r.Err.Trace())
}
