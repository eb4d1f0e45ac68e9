package fastparse

import "strings"

type passNode struct{}

func (passNode) parseRec(ctx *ParseContext, index int) *result {
	return ctx.succeed(Unit{}, index, false)
}
func (n passNode) MapChildren(Walker) Node { return n }
func (passNode) String() string            { return "Pass" }

// Pass succeeds at the current index consuming nothing.
func Pass() Parser[Unit] { return Parser[Unit]{node: passNode{}} }

type failNode struct{}

func (n failNode) parseRec(ctx *ParseContext, index int) *result {
	return ctx.fail(index, n, false)
}
func (n failNode) MapChildren(Walker) Node { return n }
func (failNode) String() string            { return "Fail" }

// Fail fails at the current index without consuming input.
func Fail() Parser[Unit] { return Parser[Unit]{node: failNode{}} }

type anyCharNode struct{}

func (n anyCharNode) parseRec(ctx *ParseContext, index int) *result {
	if index >= len(ctx.Input) {
		return ctx.fail(index, n, false)
	}
	return ctx.succeed(Unit{}, index+1, false)
}
func (n anyCharNode) MapChildren(Walker) Node { return n }
func (anyCharNode) String() string            { return "AnyChar" }

// AnyChar consumes a single code unit, failing only at end of input.
func AnyChar() Parser[Unit] { return Parser[Unit]{node: anyCharNode{}} }

type startNode struct{}

func (n startNode) parseRec(ctx *ParseContext, index int) *result {
	if index != 0 {
		return ctx.fail(index, n, false)
	}
	return ctx.succeed(Unit{}, index, false)
}
func (n startNode) MapChildren(Walker) Node { return n }
func (startNode) String() string            { return "Start" }

// Start succeeds only at index 0, consuming nothing.
func Start() Parser[Unit] { return Parser[Unit]{node: startNode{}} }

type endNode struct{}

func (n endNode) parseRec(ctx *ParseContext, index int) *result {
	if index != len(ctx.Input) {
		return ctx.fail(index, n, false)
	}
	return ctx.succeed(Unit{}, index, false)
}
func (n endNode) MapChildren(Walker) Node { return n }
func (endNode) String() string            { return "End" }

// End succeeds only at end of input, consuming nothing.
func End() Parser[Unit] { return Parser[Unit]{node: endNode{}} }

type charNode struct{ c byte }

func (n *charNode) parseRec(ctx *ParseContext, index int) *result {
	if index < len(ctx.Input) && ctx.Input[index] == n.c {
		return ctx.succeed(Unit{}, index+1, false)
	}
	return ctx.fail(index, n, false)
}
func (n *charNode) MapChildren(Walker) Node { return n }
func (n *charNode) String() string          { return Literalize(string(n.c)) }

// Char consumes exactly the given code unit.
func Char(c byte) Parser[Unit] { return Parser[Unit]{node: &charNode{c: c}} }

type literalNode struct{ s string }

func (n *literalNode) parseRec(ctx *ParseContext, index int) *result {
	if strings.HasPrefix(ctx.Input[index:], n.s) {
		return ctx.succeed(Unit{}, index+len(n.s), false)
	}
	return ctx.fail(index, n, false)
}
func (n *literalNode) MapChildren(Walker) Node { return n }
func (n *literalNode) String() string          { return Literalize(n.s) }

// Literal consumes exactly the given string, compared code unit by code unit.
func Literal(s string) Parser[Unit] { return Parser[Unit]{node: &literalNode{s: s}} }
