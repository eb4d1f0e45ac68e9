package fastparse

import (
	"fmt"
	"strings"
)

// charSet is a dense 256-bit membership table over byte values, precomputed
// at construction so the per-character test is a single shift and mask.
type charSet [4]uint64

func (cs *charSet) add(c byte) { cs[c>>6] |= 1 << (c & 63) }

func (cs *charSet) has(c byte) bool { return cs[c>>6]&(1<<(c&63)) != 0 }

// rangeSet compiles a spec like "0-9a-fxyz" into a charSet. A '-' between two
// characters denotes an inclusive range; anywhere else it is literal.
func rangeSet(specs ...string) charSet {
	var cs charSet
	for _, s := range specs {
		for i := 0; i < len(s); i++ {
			if i+2 < len(s) && s[i+1] == '-' && s[i] <= s[i+2] {
				for c := int(s[i]); c <= int(s[i+2]); c++ {
					cs.add(byte(c))
				}
				i += 2
			} else {
				cs.add(s[i])
			}
		}
	}
	return cs
}

type charPredNode struct {
	set  charSet
	name string
}

func (n *charPredNode) parseRec(ctx *ParseContext, index int) *result {
	if index < len(ctx.Input) && n.set.has(ctx.Input[index]) {
		return ctx.succeed(Unit{}, index+1, false)
	}
	return ctx.fail(index, n, false)
}
func (n *charPredNode) MapChildren(Walker) Node { return n }
func (n *charPredNode) String() string          { return n.name }

// CharPred consumes one code unit satisfying pred. The predicate is sampled
// over the full byte range at construction, the parse itself only consults
// the resulting table.
func CharPred(pred func(byte) bool) Parser[Unit] {
	var cs charSet
	for c := 0; c < 256; c++ {
		if pred(byte(c)) {
			cs.add(byte(c))
		}
	}
	return Parser[Unit]{node: &charPredNode{set: cs, name: "CharPred"}}
}

// CharIn consumes one code unit from the given sets, each written in
// rangeSet notation ("0-9", "abc", "a-zA-Z_").
func CharIn(specs ...string) Parser[Unit] {
	name := fmt.Sprintf("CharIn(%s)", Literalize(strings.Join(specs, "")))
	return Parser[Unit]{node: &charPredNode{set: rangeSet(specs...), name: name}}
}

type charsWhileNode struct {
	set  charSet
	min  int
	name string
}

func (n *charsWhileNode) parseRec(ctx *ParseContext, index int) *result {
	input := ctx.Input
	i := index
	for i < len(input) && n.set.has(input[i]) {
		i++
	}
	if i-index < n.min {
		return ctx.fail(index, n, false)
	}
	return ctx.succeed(Unit{}, i, false)
}
func (n *charsWhileNode) MapChildren(Walker) Node { return n }
func (n *charsWhileNode) String() string          { return n.name }

// CharsWhile greedily consumes code units satisfying pred and succeeds when
// at least min were consumed.
func CharsWhile(pred func(byte) bool, min int) Parser[Unit] {
	var cs charSet
	for c := 0; c < 256; c++ {
		if pred(byte(c)) {
			cs.add(byte(c))
		}
	}
	return Parser[Unit]{node: &charsWhileNode{set: cs, min: min, name: "CharsWhile"}}
}

// CharsWhileIn is CharsWhile over a rangeSet spec.
func CharsWhileIn(spec string, min int) Parser[Unit] {
	name := fmt.Sprintf("CharsWhileIn(%s)", Literalize(spec))
	return Parser[Unit]{node: &charsWhileNode{set: rangeSet(spec), min: min, name: name}}
}
