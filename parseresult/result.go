// Package parseresult holds the ParseResult[T] discipline every parsing
// routine in package parser follows: a routine either matches (OK=true,
// with the cursor advanced past what it consumed and Value populated), or
// it does not match structurally (OK=false, cursor unchanged, tried as an
// alternative by the caller), or it fails outright, in which case it
// returns a zero ParseResult alongside a non-nil, located error that the
// caller propagates rather than treating as a soft alternative.
package parseresult

import "wasilang/internal/source"

// ParseResult is the {ok, remaining, value} triple returned by every
// parsing routine.
type ParseResult[T any] struct {
	OK        bool
	Remaining source.Cursor
	Value     T
}

// Ok builds a successful result.
func Ok[T any](remaining source.Cursor, value T) ParseResult[T] {
	return ParseResult[T]{OK: true, Remaining: remaining, Value: value}
}

// Fail builds a structural (non-fatal) failure: no input was consumed and
// the caller is free to try another alternative.
func Fail[T any](remaining source.Cursor) ParseResult[T] {
	return ParseResult[T]{OK: false, Remaining: remaining}
}
