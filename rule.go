package fastparse

import "sync"

// ruleNode is a named, lazily bound parser. The body thunk runs once on first
// use, which lets grammars refer to rules that are still being built and so
// supports self and mutual recursion.
type ruleNode struct {
	name string
	make func() Node

	once sync.Once
	body Node
}

func (n *ruleNode) force() {
	n.once.Do(func() { n.body = n.make() })
}

func (n *ruleNode) parseRec(ctx *ParseContext, index int) *result {
	n.force()
	r := n.body.parseRec(ctx, index)
	if !r.ok {
		return ctx.failMore(r, index, n, false)
	}
	return r
}

// MapChildren defers the walk of the body until the copy is first forced, so
// walking a self-recursive rule terminates even with a walker that carries no
// visited-set.
func (n *ruleNode) MapChildren(w Walker) Node {
	m := &ruleNode{name: n.name}
	m.make = func() Node {
		n.force()
		return w.Walk(n.body)
	}
	return m
}

func (n *ruleNode) String() string { return n.name }

// Rule names a parser produced by a thunk. The thunk is evaluated on first
// parse and memoized; failures of the body gain a trace frame carrying the
// rule's name.
func Rule[T any](name string, body func() Parser[T]) Parser[T] {
	n := &ruleNode{name: name}
	n.make = func() Node { return body().Node() }
	return Parser[T]{node: n}
}
