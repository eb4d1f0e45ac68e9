// Package json parses JSON documents with fastparse combinators, producing
// map[string]any, []any, string, float64, bool and nil values.
package json

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	fp "github.com/krux02/fastparse"
)

// Document parses one JSON document spanning the whole input. Like a strict
// reader it requires the top level to be an object or an array.
var Document = New()

// Parse parses input as a single JSON document.
func Parse(input string) (any, error) {
	r := Document.Parse(input)
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Value, nil
}

type member struct {
	key   string
	value any
}

// New builds the document parser. The grammar commits after '{', '[' and
// string escapes, so malformed documents fail in place instead of
// backtracking into sibling alternatives.
func New() fp.Parser[any] {
	ws := fp.CharsWhileIn(" \t\r\n", 0)

	var value fp.Parser[any]
	value = fp.Rule("value", func() fp.Parser[any] {
		hex := fp.CharIn("0-9a-fA-F")
		escape := fp.ThenCut(fp.Char('\\'), fp.Or(
			fp.Then(fp.Char('u'), fp.Then(hex, fp.Then(hex, fp.Then(hex, hex)))),
			fp.CharIn(`"\/bfnrt`),
		))
		plain := fp.CharsWhile(func(c byte) bool { return c != '"' && c != '\\' }, 1)
		content := fp.Capture(fp.Repeat(fp.Or(escape, plain), 0, fp.Discard[fp.Unit]()))
		str := fp.Map(
			fp.Then(fp.Char('"'), fp.Skip(content, fp.Char('"'))),
			unescape,
		)

		intPart := fp.Or(
			fp.Char('0'),
			fp.Then(fp.CharIn("1-9"), fp.CharsWhileIn("0-9", 0)),
		)
		frac := fp.Then(fp.Char('.'), fp.CharsWhileIn("0-9", 1))
		exp := fp.Then(fp.CharIn("eE"), fp.Then(fp.Opt(fp.CharIn("+-")), fp.CharsWhileIn("0-9", 1)))
		number := fp.Map(
			fp.Capture(fp.Then(fp.Opt(fp.Char('-')), fp.Then(intPart, fp.Then(fp.Opt(frac), fp.Opt(exp))))),
			func(s string) any {
				f, _ := strconv.ParseFloat(s, 64)
				return f
			},
		)

		keyword := fp.Map(
			fp.Capture(fp.StringIn("true", "false", "null")),
			func(s string) any {
				switch s {
				case "true":
					return true
				case "false":
					return false
				}
				return nil
			},
		)

		pair := fp.Seq(
			fp.Skip(fp.Then(ws, str), fp.Then(ws, fp.Char(':'))),
			fp.Then(ws, value),
			func(k string, v any) member { return member{key: k, value: v} },
		)
		comma := fp.Then(ws, fp.Char(','))
		object := fp.Map(
			fp.Skip(
				fp.ThenCut(fp.Char('{'), fp.RepSep(pair, 0, comma)),
				fp.Then(ws, fp.Char('}')),
			),
			func(ms []member) any {
				m := make(map[string]any, len(ms))
				for _, kv := range ms {
					m[kv.key] = kv.value
				}
				return m
			},
		)

		element := fp.Then(ws, value)
		array := fp.Map(
			fp.Skip(
				fp.ThenCut(fp.Char('['), fp.RepSep(element, 0, comma)),
				fp.Then(ws, fp.Char(']')),
			),
			func(vs []any) any {
				if vs == nil {
					return []any{}
				}
				return vs
			},
		)

		return fp.Or(
			object,
			array,
			fp.Map(str, func(s string) any { return s }),
			number,
			keyword,
		)
	})

	return fp.Then(ws,
		fp.Then(fp.Peek(fp.CharIn("{[")),
			fp.Skip(value, fp.Then(ws, fp.End()))))
}

// unescape decodes the escape sequences of a raw string body. Surrogate
// pairs written as two \u escapes combine into one rune.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r := rune(hexVal(s[i+1 : i+5]))
			i += 4
			if utf16.IsSurrogate(r) && i+6 < len(s) && s[i+1] == '\\' && s[i+2] == 'u' {
				r2 := rune(hexVal(s[i+3 : i+7]))
				if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
					r = dec
					i += 6
				}
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func hexVal(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n <<= 4
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			n |= int(c - '0')
		case c >= 'a' && c <= 'f':
			n |= int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			n |= int(c-'A') + 10
		}
	}
	return n
}
