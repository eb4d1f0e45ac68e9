package fastparse

import "strings"

// Repeater aggregates repeated values. The accumulator is allocated per
// Repeat invocation, so a Repeater value itself may be shared freely.
type Repeater[T, R any] struct {
	Initial    func() any
	Accumulate func(acc any, v T) any
	Result     func(acc any) R
}

// ToSlice appends every value to a slice.
func ToSlice[T any]() Repeater[T, []T] {
	return Repeater[T, []T]{
		Initial: func() any { return []T(nil) },
		Accumulate: func(acc any, v T) any {
			s, _ := acc.([]T)
			return append(s, v)
		},
		Result: func(acc any) []T {
			s, _ := acc.([]T)
			return s
		},
	}
}

// Concat joins string values.
func Concat() Repeater[string, string] {
	return Repeater[string, string]{
		Initial: func() any { return new(strings.Builder) },
		Accumulate: func(acc any, v string) any {
			b, _ := acc.(*strings.Builder)
			b.WriteString(v)
			return b
		},
		Result: func(acc any) string {
			b, _ := acc.(*strings.Builder)
			return b.String()
		},
	}
}

// CountOf counts matches, discarding values.
func CountOf[T any]() Repeater[T, int] {
	return Repeater[T, int]{
		Initial:    func() any { return 0 },
		Accumulate: func(acc any, _ T) any { n, _ := acc.(int); return n + 1 },
		Result:     func(acc any) int { n, _ := acc.(int); return n },
	}
}

// Discard drops all values.
func Discard[T any]() Repeater[T, Unit] {
	return Repeater[T, Unit]{
		Initial:    func() any { return Unit{} },
		Accumulate: func(acc any, _ T) any { return acc },
		Result:     func(any) Unit { return Unit{} },
	}
}

// Fold threads a binary function through the values, starting from zero.
func Fold[T, R any](zero R, f func(R, T) R) Repeater[T, R] {
	return Repeater[T, R]{
		Initial: func() any { return zero },
		Accumulate: func(acc any, v T) any {
			r, _ := acc.(R)
			return f(r, v)
		},
		Result: func(acc any) R {
			r, _ := acc.(R)
			return r
		},
	}
}

// Optioner wraps the outcome of an optional parser.
type Optioner[T, R any] struct {
	Some func(T) R
	None func() R
}

// SomeOrZero yields the matched value, or T's zero value.
func SomeOrZero[T any]() Optioner[T, T] {
	return Optioner[T, T]{
		Some: func(v T) T { return v },
		None: func() T { var zero T; return zero },
	}
}

// SomeOrPtr yields a pointer to the matched value, or nil.
func SomeOrPtr[T any]() Optioner[T, *T] {
	return Optioner[T, *T]{
		Some: func(v T) *T { return &v },
		None: func() *T { return nil },
	}
}

// SomeOrElse yields the matched value, or a default.
func SomeOrElse[T any](def T) Optioner[T, T] {
	return Optioner[T, T]{
		Some: func(v T) T { return v },
		None: func() T { return def },
	}
}
