package fastparse

import "strings"

// Sequencer combines the values of two sequenced parsers.
type Sequencer[A, B, R any] func(A, B) R

// Pair is the generic tupling result of SeqPair.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// chain is one erased link of a flattened sequence: the parser to run next,
// whether crossing it commits the parse, and how its value folds into the
// accumulated one.
type chain struct {
	p   Node
	cut bool
	ev  func(acc, v any) any
}

// flatSequence is a left spine of binary sequences collapsed into a head
// parser plus an ordered vector of links, so a deep `((A~B)~C)~D` runs as one
// loop instead of nested recursion.
type flatSequence struct {
	p0    Node
	links []chain
}

func (n *flatSequence) parseRec(ctx *ParseContext, index int) *result {
	r := n.p0.parseRec(ctx, index)
	if !r.ok {
		return ctx.failMore(r, index, n, false)
	}
	acc, idx, cutAcc := r.value, r.index, r.cut
	for i := range n.links {
		c := &n.links[i]
		r = c.p.parseRec(ctx, idx)
		if !r.ok {
			return ctx.failMore(r, index, n, c.cut || cutAcc)
		}
		acc = c.ev(acc, r.value)
		idx = r.index
		cutAcc = cutAcc || r.cut || c.cut
	}
	return ctx.succeed(acc, idx, cutAcc)
}

func (n *flatSequence) MapChildren(w Walker) Node {
	links := make([]chain, len(n.links))
	for i, c := range n.links {
		links[i] = chain{p: w.Walk(c.p), cut: c.cut, ev: c.ev}
	}
	return &flatSequence{p0: w.Walk(n.p0), links: links}
}

func (n *flatSequence) hasCut() bool {
	for _, c := range n.links {
		if c.cut {
			return true
		}
	}
	return false
}

func (n *flatSequence) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(n.p0.String())
	for _, c := range n.links {
		if c.cut {
			b.WriteString(" ~! ")
		} else {
			b.WriteString(" ~ ")
		}
		b.WriteString(c.p.String())
	}
	b.WriteByte(')')
	return b.String()
}

func eraseSequencer[A, B, R any](f Sequencer[A, B, R]) func(any, any) any {
	return func(a, b any) any {
		av, _ := a.(A)
		bv, _ := b.(B)
		return f(av, bv)
	}
}

// seqNode appends a link to an existing flat spine, or starts a new one. The
// links of the left operand are copied so parsers stay shareable.
func seqNode(p, q Node, cut bool, ev func(any, any) any) Node {
	if fs, ok := p.(*flatSequence); ok {
		links := make([]chain, len(fs.links)+1)
		copy(links, fs.links)
		links[len(fs.links)] = chain{p: q, cut: cut, ev: ev}
		return &flatSequence{p0: fs.p0, links: links}
	}
	return &flatSequence{p0: p, links: []chain{{p: q, cut: cut, ev: ev}}}
}

// Seq runs p then q, combining their values with f.
func Seq[A, B, R any](p Parser[A], q Parser[B], f Sequencer[A, B, R]) Parser[R] {
	return Parser[R]{node: seqNode(p.node, q.node, false, eraseSequencer(f))}
}

// SeqCut is Seq with a cut between p and q: once p has matched, a failure of
// q (or anything after it in the same sequence) can no longer backtrack out
// through an enclosing choice or repetition.
func SeqCut[A, B, R any](p Parser[A], q Parser[B], f Sequencer[A, B, R]) Parser[R] {
	return Parser[R]{node: seqNode(p.node, q.node, true, eraseSequencer(f))}
}

// SeqPair sequences p and q keeping both values.
func SeqPair[A, B any](p Parser[A], q Parser[B]) Parser[Pair[A, B]] {
	return Seq(p, q, func(a A, b B) Pair[A, B] { return Pair[A, B]{Left: a, Right: b} })
}

func takeRight[A, B any](_ A, b B) B { return b }

func takeLeft[A, B any](a A, _ B) A { return a }

// Then runs p then q, keeping q's value.
func Then[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Seq(p, q, Sequencer[A, B, B](takeRight[A, B]))
}

// ThenCut is Then with a cut between p and q.
func ThenCut[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return SeqCut(p, q, Sequencer[A, B, B](takeRight[A, B]))
}

// Skip runs p then q, keeping p's value.
func Skip[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Seq(p, q, Sequencer[A, B, A](takeLeft[A, B]))
}

// SkipCut is Skip with a cut between p and q.
func SkipCut[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return SeqCut(p, q, Sequencer[A, B, A](takeLeft[A, B]))
}
