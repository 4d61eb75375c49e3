package source

import (
	"fmt"
	"strings"
)

// Error is a located parse error: "{source_name}({line}:{column}):
// {description}".
type Error struct {
	Name    string
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s(%d:%d): %s", e.Name, e.Line, e.Column, e.Message)
}

// Position computes (line, column, byteOffset) for the cursor's current
// position within its original input:
//
//   - line is 1 + the count of '\n' strictly before the cursor.
//   - column is byteOffset+1 on line 1, otherwise the distance from the
//     last preceding '\n' to the cursor.
func (c Cursor) Position() (line, column, byteOffset int) {
	byteOffset = c.Offset()
	before := c.Full[:byteOffset]
	line = 1 + strings.Count(before, "\n")
	if line == 1 {
		column = byteOffset + 1
		return
	}
	lastNL := strings.LastIndexByte(before, '\n')
	column = byteOffset - lastNL
	return
}

// NewError builds a located *Error rooted at c's current position.
func NewError(c Cursor, format string, args ...any) *Error {
	line, column, _ := c.Position()
	return &Error{Name: c.Name, Line: line, Column: column, Message: fmt.Sprintf(format, args...)}
}
