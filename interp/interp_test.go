package interp_test

import (
	"testing"

	"wasilang/interp"
	"wasilang/parser"
)

func TestExecuteEndToEnd(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int32
	}{
		{
			"literal exit code",
			`def main = fun(out exitCode: i32) { exitCode = 0i32; };`,
			0,
		},
		{
			"left to right addition with negative literal",
			`def main = fun(out exitCode: i32) { exitCode = 4i32 + 1i32 + -3i32; };`,
			2,
		},
		{
			"equal precedence left fold",
			`def main = fun(out exitCode: i32) { exitCode = 12310i32 % 100i32 / 3i32 + 2i32 * -2i32 - -7i32; };`,
			-3,
		},
		{
			"call with in argument",
			`def id = fun(in x: i32, out r: i32) { r = x; }; def main = fun(out exitCode: i32) { exitCode = id(in x: 5i32); };`,
			5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := parser.Parse(tt.src, tt.name)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			got, err := interp.Execute(program)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Execute() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExecuteDivisionByZero(t *testing.T) {
	src := `def main = fun(out exitCode: i32) { exitCode = 1i32 / 0i32; };`
	program, err := parser.Parse(src, "t")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	_, err = interp.Execute(program)
	if err == nil {
		t.Fatalf("expected a division-by-zero error")
	}
	interpErr, ok := err.(*interp.Error)
	if !ok {
		t.Fatalf("expected a *interp.Error, got %T", err)
	}
	if interpErr.Kind != interp.ErrDivideByZero {
		t.Errorf("Kind = %v, want ErrDivideByZero", interpErr.Kind)
	}
}

func TestExecuteModuloByZero(t *testing.T) {
	src := `def main = fun(out exitCode: i32) { exitCode = 1i32 % 0i32; };`
	program, err := parser.Parse(src, "t")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	_, err = interp.Execute(program)
	if err == nil {
		t.Fatalf("expected a modulo-by-zero error")
	}
}

func TestExecuteUnknownArgumentName(t *testing.T) {
	// The grammar lets an argument name diverge from the callee's
	// parameter name; interp must catch the resulting missing-input case
	// itself since the parser has no symbol table to check it against.
	src := `def id = fun(in x: i32, out r: i32) { r = x; }; def main = fun(out exitCode: i32) { exitCode = id(in y: 5i32); };`
	program, err := parser.Parse(src, "t")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	_, err = interp.Execute(program)
	if err == nil {
		t.Fatalf("expected an error for an argument name that does not match any parameter")
	}
}

func TestWrappingArithmetic(t *testing.T) {
	src := `def main = fun(out exitCode: i32) { exitCode = 2147483647i32 + 1i32; };`
	program, err := parser.Parse(src, "t")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	got, err := interp.Execute(program)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got != -2147483648 {
		t.Errorf("Execute() = %d, want wraparound to -2147483648", got)
	}
}
