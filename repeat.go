package fastparse

import "fmt"

type repeatNode struct {
	p   Node
	min int
	del Node // nil means no delimiter

	newAcc func() any
	add    func(acc, v any) any
	fin    func(acc any) any
}

func (n *repeatNode) parseRec(ctx *ParseContext, index int) *result {
	acc := n.newAcc()
	idx := index
	cutAcc := false
	count := 0
	// the first iteration has no delimiter in front of it
	del := Node(passNode{})
	for {
		r := del.parseRec(ctx, idx)
		if !r.ok {
			if r.cut {
				return ctx.failMore(r, index, n, true)
			}
			if count >= n.min {
				return ctx.succeed(n.fin(acc), idx, cutAcc)
			}
			return ctx.failMore(r, index, n, cutAcc)
		}
		delIdx, delCut := r.index, r.cut

		r = n.p.parseRec(ctx, delIdx)
		if !r.ok {
			if r.cut || delCut {
				return ctx.failMore(r, index, n, true)
			}
			if count >= n.min {
				// roll back to before the failed delimiter attempt
				return ctx.succeed(n.fin(acc), idx, cutAcc || delCut)
			}
			return ctx.failMore(r, index, n, cutAcc || delCut)
		}
		if r.index == idx {
			// delimiter and element both matched zero width: the loop would
			// never terminate, so treat the iteration as a non-match
			if count >= n.min {
				return ctx.succeed(n.fin(acc), idx, cutAcc)
			}
			return ctx.fail(idx, n, cutAcc)
		}
		acc = n.add(acc, r.value)
		cutAcc = cutAcc || delCut || r.cut
		idx = r.index
		count++
		if n.del != nil {
			del = n.del
		}
	}
}

func (n *repeatNode) MapChildren(w Walker) Node {
	m := &repeatNode{p: w.Walk(n.p), min: n.min, newAcc: n.newAcc, add: n.add, fin: n.fin}
	if n.del != nil {
		m.del = w.Walk(n.del)
	}
	return m
}

func (n *repeatNode) String() string {
	if n.del != nil {
		return fmt.Sprintf("%v.rep(%d, %v)", n.p, n.min, n.del)
	}
	return fmt.Sprintf("%v.rep(%d)", n.p, n.min)
}

func repeatParser[T, R any](p Node, min int, del Node, rep Repeater[T, R]) Parser[R] {
	add := func(acc any, v any) any {
		t, _ := v.(T)
		return rep.Accumulate(acc, t)
	}
	fin := func(acc any) any { return rep.Result(acc) }
	return Parser[R]{node: &repeatNode{
		p:      p,
		min:    min,
		del:    del,
		newAcc: rep.Initial,
		add:    add,
		fin:    fin,
	}}
}

// Repeat matches p at least min times, folding values through rep.
func Repeat[T, R any](p Parser[T], min int, rep Repeater[T, R]) Parser[R] {
	return repeatParser(p.node, min, nil, rep)
}

// RepeatSep is Repeat with a delimiter between consecutive elements. The
// delimiter's value is discarded; a trailing delimiter is not consumed.
func RepeatSep[T, D, R any](p Parser[T], min int, sep Parser[D], rep Repeater[T, R]) Parser[R] {
	return repeatParser(p.node, min, sep.node, rep)
}

// Rep collects at least min matches of p into a slice.
func Rep[T any](p Parser[T], min int) Parser[[]T] {
	return Repeat(p, min, ToSlice[T]())
}

// RepSep collects at least min delimiter-separated matches of p into a slice.
func RepSep[T, D any](p Parser[T], min int, sep Parser[D]) Parser[[]T] {
	return RepeatSep(p, min, sep, ToSlice[T]())
}
