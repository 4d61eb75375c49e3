// Package source provides the parser's cursor and located-error types.
//
// A Cursor is the {current, full, source_name} triple the parser threads
// through every parsing routine: it advances forward only and never backs
// up across the input it has already consumed, so structural alternatives
// are tried by taking a copy of the Cursor rather than by mutating shared
// state.
package source

import "strings"

// Cursor is the parser's read-only view of the input: the unconsumed
// slice (Remaining), the original text (Full), and the file name used in
// diagnostics (Name).
type Cursor struct {
	Full      string
	Name      string
	Remaining string
}

// New returns a Cursor positioned at the start of input.
func New(name, input string) Cursor {
	return Cursor{Full: input, Name: name, Remaining: input}
}

// IsEOF reports whether the cursor has consumed all input.
func (c Cursor) IsEOF() bool {
	return len(c.Remaining) == 0
}

// Offset returns the byte offset of the cursor within Full.
func (c Cursor) Offset() int {
	return len(c.Full) - len(c.Remaining)
}

func (c Cursor) advance(n int) Cursor {
	return Cursor{Full: c.Full, Name: c.Name, Remaining: c.Remaining[n:]}
}

func isIdentStart(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// SkipWS consumes the ws := (" " | "\t" | "\n")* production.
func (c Cursor) SkipWS() Cursor {
	i := 0
	for i < len(c.Remaining) && isSpace(c.Remaining[i]) {
		i++
	}
	return c.advance(i)
}

// Exact matches a literal token. If lit ends in an identifier character
// (a keyword like "in", "fun", "i32"), the match only succeeds when the
// literal is not itself a prefix of a longer identifier in the input —
// this is what lets a bare "in" fail to match against "inout" so that
// trying "in", "out", "inout" in that order still parses "inout"
// correctly.
func (c Cursor) Exact(lit string) (Cursor, bool) {
	if !strings.HasPrefix(c.Remaining, lit) {
		return c, false
	}
	if len(lit) > 0 && isIdentContinue(lit[len(lit)-1]) {
		next := len(lit)
		if next < len(c.Remaining) && isIdentContinue(c.Remaining[next]) {
			return c, false
		}
	}
	return c.advance(len(lit)), true
}

// Identifier matches identifier := [A-Za-z][A-Za-z0-9]*.
func (c Cursor) Identifier() (string, Cursor, bool) {
	if len(c.Remaining) == 0 || !isIdentStart(c.Remaining[0]) {
		return "", c, false
	}
	i := 1
	for i < len(c.Remaining) && isIdentContinue(c.Remaining[i]) {
		i++
	}
	return c.Remaining[:i], c.advance(i), true
}

// Number matches number := "-"? digit+, without the mandatory "i32"
// suffix — the caller consumes that separately so it can report a
// located error when the suffix is missing.
func (c Cursor) Number() (string, Cursor, bool) {
	i := 0
	if i < len(c.Remaining) && c.Remaining[i] == '-' {
		i++
	}
	start := i
	for i < len(c.Remaining) && isDigit(c.Remaining[i]) {
		i++
	}
	if i == start {
		return "", c, false
	}
	return c.Remaining[:i], c.advance(i), true
}
