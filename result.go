package fastparse

import (
	"fmt"
	"strings"
)

// result is the internal tagged success/failure record. Two instances live in
// the ParseContext and are overwritten by every node, so a caller must copy
// out the fields it needs before recursing into another child.
type result struct {
	ok    bool
	value any
	index int
	cut   bool

	// failure only
	node  Node
	stack []Frame
}

// Frame is one step of a failure trace: the index a node was entered at and
// the node itself.
type Frame struct {
	Index  int
	Parser Node
}

// Result is the outcome of a parse. Err is nil on success; Index is the
// position after the consumed span on success, the deepest position reached
// on failure.
type Result[T any] struct {
	Value T
	Index int
	Cut   bool
	Err   *Failure
}

func (r Result[T]) OK() bool { return r.Err == nil }

// Failure describes where and why a parse failed. It implements error; the
// message is the single-line Trace rendering.
type Failure struct {
	Input  string
	Index  int
	Parser Node
	Cut    bool

	// FullStack holds one frame per composite node unwound while tracing,
	// outermost first. Empty when the parse ran with trace off.
	FullStack []Frame
}

func (f *Failure) Error() string { return f.Trace() }

// Stack filters FullStack down to the frames that tell a readable story:
// named rules and sequences that contain a cut link, with a final synthetic frame
// for the deepest failing node.
func (f *Failure) Stack() []Frame {
	out := make([]Frame, 0, len(f.FullStack)+1)
	for _, fr := range f.FullStack {
		switch p := fr.Parser.(type) {
		case *ruleNode:
			out = append(out, fr)
		case *flatSequence:
			if p.hasCut() {
				out = append(out, fr)
			}
		}
	}
	return append(out, Frame{Index: f.Index, Parser: f.Parser})
}

// Trace renders the filtered stack on one line, ending with a snippet of the
// unconsumed input.
func (f *Failure) Trace() string {
	frames := f.Stack()
	parts := make([]string, len(frames))
	for i, fr := range frames {
		parts[i] = fmt.Sprintf("%v:%v", fr.Parser, fr.Index)
	}
	return strings.Join(parts, " / ") + " ..." + Literalize(snippet(f.Input, f.Index, 10))
}

// VerboseTrace renders one line per filtered frame, each with its index and
// input snippet.
func (f *Failure) VerboseTrace() string {
	frames := f.Stack()
	lines := make([]string, len(frames))
	for i, fr := range frames {
		lines[i] = fmt.Sprintf("%d\t...%s\t%v", fr.Index, Literalize(snippet(f.Input, fr.Index, 5)), fr.Parser)
	}
	return strings.Join(lines, "\n")
}

func snippet(input string, index, n int) string {
	if index > len(input) {
		return ""
	}
	if index+n > len(input) {
		n = len(input) - index
	}
	return input[index : index+n]
}

// Literalize escapes a string to a printable double-quoted form using
// conventional escapes.
func Literalize(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			if c < 0x20 || c >= 0x7f {
				fmt.Fprintf(&b, `\u%04x`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
