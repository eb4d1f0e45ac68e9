package fastparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeqValues(t *testing.T) {
	num := Map(Capture(CharsWhileIn("0-9", 1)), func(s string) int { return len(s) })
	p := Seq(num, Capture(CharsWhileIn("a-z", 1)), func(n int, s string) string {
		return s[:n]
	})

	r := p.Parse("12abc")
	require.True(t, r.OK())
	assert.Equal(t, "ab", r.Value)
	assert.Equal(t, 5, r.Index)
}

func TestSeqPair(t *testing.T) {
	p := SeqPair(Capture(Literal("a")), Capture(Literal("b")))
	r := p.Parse("ab")
	require.True(t, r.OK())
	assert.Equal(t, Pair[string, string]{Left: "a", Right: "b"}, r.Value)
}

func TestThenSkip(t *testing.T) {
	p := Then(Literal("("), Skip(Capture(CharsWhileIn("0-9", 1)), Literal(")")))
	r := p.Parse("(42)")
	require.True(t, r.OK())
	assert.Equal(t, "42", r.Value)
	assert.Equal(t, 4, r.Index)
}

func TestSeqFailurePositions(t *testing.T) {
	p := Then(Literal("ab"), Literal("cd"))

	r := p.Parse("xx")
	require.False(t, r.OK())
	assert.Equal(t, 0, r.Err.Index)

	r = p.Parse("abxx")
	require.False(t, r.OK())
	assert.Equal(t, 2, r.Err.Index)
}

func TestSeqFlattening(t *testing.T) {
	a, b, c, d := Literal("a"), Literal("b"), Literal("c"), Literal("d")

	// a left spine collapses into one head plus a link per element
	p := Then(Then(Then(a, b), c), d)
	fs, ok := p.Node().(*flatSequence)
	require.True(t, ok)
	assert.Len(t, fs.links, 3)

	// the left operand's links are copied, not shared
	left := Then(a, b)
	p1 := Then(left, c)
	p2 := Then(left, d)
	assert.True(t, accepts(p1, "abc"))
	assert.True(t, accepts(p2, "abd"))
	assert.Len(t, left.Node().(*flatSequence).links, 1)
}

func TestSeqAssociativity(t *testing.T) {
	// left- and right-nested construction parse identically
	mk := func(nest func() Parser[Unit]) Parser[string] { return Capture(nest()) }
	leftNested := mk(func() Parser[Unit] {
		return Then(Then(Literal("a"), Literal("b")), Literal("c"))
	})
	rightNested := mk(func() Parser[Unit] {
		return Then(Literal("a"), Then(Literal("b"), Literal("c")))
	})

	for _, in := range []string{"abc", "abcx", "ab", "abx", "", "xbc"} {
		for i := 0; i <= len(in); i++ {
			r1 := leftNested.ParseAt(in, i, false)
			r2 := rightNested.ParseAt(in, i, false)
			assert.Equal(t, r1.OK(), r2.OK(), "input %q start %d", in, i)
			if r1.OK() {
				assert.Equal(t, r1.Value, r2.Value)
				assert.Equal(t, r1.Index, r2.Index)
			} else {
				assert.Equal(t, r1.Err.Index, r2.Err.Index)
			}
		}
	}
}

func TestSeqCutBarrier(t *testing.T) {
	p := Or(
		Capture(ThenCut(Literal("foo"), Literal("bar"))),
		Capture(Literal("baz")),
	)

	// the cut is crossed, so the second alternative is never tried
	r := p.Parse("foobaX")
	require.False(t, r.OK())
	assert.True(t, r.Err.Cut)
	assert.Equal(t, 3, r.Err.Index)

	// without a cut the same grammar backtracks to baz
	q := Or(
		Capture(Then(Literal("foo"), Literal("bar"))),
		Capture(Literal("baz")),
	)
	r = q.Parse("baz")
	require.True(t, r.OK())
	assert.Equal(t, 3, r.Index)
	assert.Equal(t, "baz", r.Value)
}

func TestSeqCutPromiseSpansSpine(t *testing.T) {
	// the cut crossed in an early link commits every later link
	p := Then(ThenCut(Literal("a"), Literal("b")), Literal("c"))
	r := Or(Capture(p), Capture(Literal("x"))).Parse("abX")
	require.False(t, r.OK())
	assert.True(t, r.Err.Cut)
	assert.Equal(t, 2, r.Err.Index)
}

func TestSeqCutSuccessCarriesFlag(t *testing.T) {
	p := ThenCut(Literal("a"), Literal("b"))
	r := p.Parse("ab")
	require.True(t, r.OK())
	assert.True(t, r.Cut)
}

func TestSeqString(t *testing.T) {
	p := Then(ThenCut(Literal("a"), Literal("b")), Literal("c"))
	assert.Equal(t, `("a" ~! "b" ~ "c")`, p.String())
}
