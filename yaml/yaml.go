// Package yaml parses the flow-style subset of YAML: flow sequences, flow
// mappings, double-quoted strings, and plain scalars resolved to int, float,
// bool, null or string, close to the core schema (see resolve).
package yaml

import (
	"strconv"
	"strings"

	fp "github.com/krux02/fastparse"
)

// Document parses one flow-style document spanning the whole input.
var Document = New()

// Parse parses input as a single flow-style document.
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

func New() fp.Parser[any] {
	// inside flow collections line breaks fold into plain whitespace
	ws := fp.CharsWhileIn(" \t\r\n", 0)

	var node fp.Parser[any]
	node = fp.Rule("node", func() fp.Parser[any] {
		esc := fp.ThenCut(fp.Char('\\'), fp.CharIn(`"\nt`))
		plainQ := fp.CharsWhile(func(c byte) bool { return c != '"' && c != '\\' }, 1)
		quoted := fp.Map(
			fp.Then(fp.Char('"'),
				fp.Skip(fp.Capture(fp.Repeat(fp.Or(esc, plainQ), 0, fp.Discard[fp.Unit]())), fp.Char('"'))),
			unescape,
		)

		plain := fp.Capture(fp.CharsWhile(func(c byte) bool {
			switch c {
			case ',', '[', ']', '{', '}', ':', '"', ' ', '\t', '\r', '\n':
				return false
			}
			return true
		}, 1))

		comma := fp.Then(ws, fp.Char(','))

		key := fp.Then(ws, fp.Or(quoted, plain))
		pair := fp.Seq(
			fp.Skip(key, fp.Then(ws, fp.Char(':'))),
			fp.Then(ws, node),
			func(k string, v any) member { return member{key: k, value: v} },
		)
		mapping := fp.Map(
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

		sequence := fp.Map(
			fp.Skip(
				fp.ThenCut(fp.Char('['), fp.RepSep(fp.Then(ws, node), 0, comma)),
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
			mapping,
			sequence,
			fp.Map(quoted, func(s string) any { return s }),
			fp.Map(plain, resolve),
		)
	})

	return fp.Then(ws, fp.Skip(node, fp.Then(ws, fp.End())))
}

// resolve interprets a plain scalar: the core schema's spellings of true,
// false and null, then anything strconv.Atoi accepts as an int or
// strconv.ParseFloat accepts as a float, else the string itself. Unlike the
// core schema, hex and octal integers (0x10, 0o17) and .inf/.nan stay
// strings, while inf and nan parse as floats.
func resolve(s string) any {
	switch s {
	case "true", "True", "TRUE":
		return true
	case "false", "False", "FALSE":
		return false
	case "null", "Null", "NULL", "~":
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

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
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		}
	}
	return b.String()
}
