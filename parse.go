// Package fastparse is a parser combinator library for recursive descent
// parsing of text. Parsers are immutable node trees built from primitives
// (Literal, CharIn, StringIn, ...) and combinators (Seq, Or, Repeat, ...),
// then run against an input string. A parse yields either a typed value with
// the index consumed up to, or a Failure carrying a trace of attempted rules.
//
// Backtracking is controlled by cut points (SeqCut, ThenCut): once a cut is
// crossed, enclosing ordered choices and repetitions no longer try further
// alternatives.
package fastparse

// Unit is the value of parsers that consume input without producing anything.
type Unit = struct{}

// Node is the untyped parser node. All nodes are immutable after construction
// and safe to share between independent parses.
type Node interface {
	// parseRec runs the node at index. The returned result aliases one of the
	// context's scratch cells: consume it before the next parseRec call.
	parseRec(ctx *ParseContext, index int) *result

	// MapChildren returns a copy of the node with each child replaced by
	// w.Walk(child), preserving the node kind and non-child attributes.
	MapChildren(w Walker) Node

	String() string
}

// ParseContext holds the execution state of one top-level parse. Parser nodes
// carry no mutable state; everything that changes during a parse lives here.
type ParseContext struct {
	Input    string
	logDepth int
	trace    bool

	// reusable scratch cells, see result
	success result
	failure result
}

func newParseContext(input string, trace bool) *ParseContext {
	return &ParseContext{Input: input, trace: trace}
}

// succeed overwrites the shared success cell.
func (ctx *ParseContext) succeed(value any, index int, cut bool) *result {
	s := &ctx.success
	s.ok = true
	s.value = value
	s.index = index
	s.cut = cut
	return s
}

// fail overwrites the shared failure cell, discarding any earlier trace.
func (ctx *ParseContext) fail(index int, n Node, cut bool) *result {
	f := &ctx.failure
	f.ok = false
	f.value = nil
	f.index = index
	f.node = n
	f.cut = cut
	f.stack = f.stack[:0]
	return f
}

// failMore re-raises a child failure through a composite node, recording a
// trace frame when tracing and OR-ing in the composite's cut flag.
func (ctx *ParseContext) failMore(f *result, index int, n Node, cut bool) *result {
	if ctx.trace {
		f.stack = append(f.stack, Frame{Index: index, Parser: n})
	}
	f.cut = f.cut || cut
	return f
}

// Parser is a typed handle on a parser node. The type parameter is fixed at
// construction; execution is untyped and values are rechecked only at the
// public boundary.
type Parser[T any] struct {
	node Node
}

// FromNode wraps an untyped node back into a typed parser. The caller asserts
// that the node produces T values; it is meant for walker-based rewriting.
func FromNode[T any](n Node) Parser[T] { return Parser[T]{node: n} }

// Node returns the underlying untyped node.
func (p Parser[T]) Node() Node { return p.node }

func (p Parser[T]) String() string { return p.node.String() }

// Parse runs the parser against input from index 0 with tracing on.
func (p Parser[T]) Parse(input string) Result[T] {
	return p.ParseAt(input, 0, true)
}

// ParseAt runs the parser from the given start index. With trace off,
// failures skip stack bookkeeping, which is faster; Failure.FullStack is
// then empty.
func (p Parser[T]) ParseAt(input string, index int, trace bool) Result[T] {
	ctx := newParseContext(input, trace)
	r := p.node.parseRec(ctx, index)
	if r.ok {
		v, _ := r.value.(T)
		return Result[T]{Value: v, Index: r.index, Cut: r.cut}
	}
	// frames are pushed innermost first while unwinding; flip them so the
	// stack reads outermost to innermost
	stack := make([]Frame, len(r.stack))
	for i, fr := range r.stack {
		stack[len(r.stack)-1-i] = fr
	}
	return Result[T]{
		Index: r.index,
		Cut:   r.cut,
		Err: &Failure{
			Input:     input,
			Index:     r.index,
			Parser:    r.node,
			Cut:       r.cut,
			FullStack: stack,
		},
	}
}
