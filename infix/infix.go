// Package infix evaluates arithmetic expressions with the usual precedence,
// built as a recursive fastparse grammar.
package infix

import (
	"strconv"

	fp "github.com/krux02/fastparse"
)

// Expr parses an expression without requiring it to reach end of input.
var Expr = New()

var full = fp.Skip(Expr, fp.Then(fp.CharsWhileIn(" \t", 0), fp.End()))

// Eval parses and evaluates input as a complete expression.
func Eval(input string) (float64, error) {
	r := full.Parse(input)
	if r.Err != nil {
		return 0, r.Err
	}
	return r.Value, nil
}

type tail struct {
	op  byte
	rhs float64
}

func apply(lhs float64, tails []tail) float64 {
	for _, t := range tails {
		switch t.op {
		case '+':
			lhs += t.rhs
		case '-':
			lhs -= t.rhs
		case '*':
			lhs *= t.rhs
		case '/':
			lhs /= t.rhs
		}
	}
	return lhs
}

// New builds the expression parser. A '(' commits to a parenthesized
// expression, so a missing ')' reports the failure inside the group instead
// of backtracking to the number alternative.
func New() fp.Parser[float64] {
	var expr fp.Parser[float64]
	expr = fp.Rule("expr", func() fp.Parser[float64] {
		ws := fp.CharsWhileIn(" \t", 0)

		number := fp.Map(
			fp.Capture(fp.Then(
				fp.Opt(fp.Char('-')),
				fp.Then(
					fp.CharsWhileIn("0-9", 1),
					fp.Opt(fp.Then(fp.Char('.'), fp.CharsWhileIn("0-9", 1)))))),
			func(s string) float64 {
				f, _ := strconv.ParseFloat(s, 64)
				return f
			},
		)

		group := fp.Skip(
			fp.ThenCut(fp.Char('('), fp.Then(ws, expr)),
			fp.Then(ws, fp.Char(')')),
		)
		factor := fp.Then(ws, fp.Or(group, number))

		mulTail := fp.Seq(
			fp.Then(ws, fp.Capture(fp.CharIn("*/"))),
			factor,
			func(op string, rhs float64) tail { return tail{op: op[0], rhs: rhs} },
		)
		term := fp.Seq(factor, fp.Rep(mulTail, 0), apply)

		addTail := fp.Seq(
			fp.Then(ws, fp.Capture(fp.CharIn("+-"))),
			term,
			func(op string, rhs float64) tail { return tail{op: op[0], rhs: rhs} },
		)
		return fp.Seq(term, fp.Rep(addTail, 0), apply)
	})
	return expr
}
