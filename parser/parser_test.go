package parser_test

import (
	"strings"
	"testing"

	"wasilang/internal/source"
	"wasilang/parser"
)

func TestParseEndToEnd(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"trivial exit", `def main = fun(out exitCode: i32) { exitCode = 0i32; };`},
		{"arithmetic with negative literal", `def main = fun(out exitCode: i32) { exitCode = 4i32 + 1i32 + -3i32; };`},
		{"call with in argument", `def id = fun(in x: i32, out r: i32) { r = x; }; def main = fun(out exitCode: i32) { exitCode = id(in x: 5i32); };`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := parser.Parse(tt.src, tt.name)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if prog.MainFunction == nil {
				t.Fatalf("expected a main function")
			}
		})
	}
}

func TestParseInterningIsIdempotent(t *testing.T) {
	src := `def id = fun(in x: i32, out r: i32) { r = x; }; def main = fun(out exitCode: i32) { exitCode = id(in x: 5i32); };`

	a, err := parser.Parse(src, "a")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	b, err := parser.Parse(src, "b")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(a.Types) != len(b.Types) {
		t.Fatalf("type set sizes differ: %d vs %d", len(a.Types), len(b.Types))
	}
	for i := range a.Types {
		if !a.Types[i].Equal(b.Types[i]) {
			t.Errorf("type %d differs: %s vs %s", i, a.Types[i].String(), b.Types[i].String())
		}
	}
}

func TestParseDirectionDisambiguation(t *testing.T) {
	// "inout" must not be mis-parsed as "in" followed by garbage, even
	// though "in" is tried first.
	src := `def f = fun(inout x: i32) { x = x; }; def main = fun(out exitCode: i32) { exitCode = 0i32; };`
	prog, err := parser.Parse(src, "t")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	f, ok := prog.FunctionNamed("f")
	if !ok {
		t.Fatalf("expected function f")
	}
	if got := f.FuncType().Parameters[0].Direction.String(); got != "inout" {
		t.Fatalf("direction = %q, want inout", got)
	}
}

func TestParseMainWrongSignature(t *testing.T) {
	src := `def main = fun(in exitCode: i32) { exitCode = 0i32; };`
	_, err := parser.Parse(src, "t")
	if err == nil {
		t.Fatalf("expected an error for a wrong main signature")
	}
	locErr, ok := err.(*source.Error)
	if !ok {
		t.Fatalf("expected a *source.Error, got %T", err)
	}
	if locErr.Line != 1 {
		t.Errorf("Line = %d, want 1", locErr.Line)
	}
}

func TestParseDuplicateMain(t *testing.T) {
	src := `def main = fun(out exitCode: i32) { exitCode = 0i32; }; def main = fun(out exitCode: i32) { exitCode = 1i32; };`
	_, err := parser.Parse(src, "t")
	if err == nil {
		t.Fatalf("expected an error for a duplicate main")
	}
}

func TestParseMissingSemicolon(t *testing.T) {
	src := `def main = fun(out exitCode: i32) { exitCode = 0i32; }`
	_, err := parser.Parse(src, "t")
	if err == nil {
		t.Fatalf("expected a located error for the missing ';'")
	}
	if !strings.Contains(err.Error(), "t(") {
		t.Errorf("error %q does not carry the source name", err.Error())
	}
}

func TestParseMissingI32Suffix(t *testing.T) {
	src := `def main = fun(out exitCode: i32) { exitCode = 5; };`
	_, err := parser.Parse(src, "t")
	if err == nil {
		t.Fatalf("expected an error for a missing i32 suffix")
	}
}

func TestParseLeadingDigitIdentifierFails(t *testing.T) {
	src := `def 9main = fun(out exitCode: i32) { exitCode = 0i32; };`
	_, err := parser.Parse(src, "t")
	if err == nil {
		t.Fatalf("expected an error for an identifier starting with a digit")
	}
}

func TestParseNoMainRejected(t *testing.T) {
	src := `def f = fun(out exitCode: i32) { exitCode = 0i32; };`
	_, err := parser.Parse(src, "t")
	if err == nil {
		t.Fatalf("expected an error when no function is named main")
	}
}

func TestParseMultiArgumentCallRejected(t *testing.T) {
	src := `def f = fun(in a: i32, in b: i32, out r: i32) { r = a; }; def main = fun(out exitCode: i32) { exitCode = f(in a: 1i32, in b: 2i32); };`
	_, err := parser.Parse(src, "t")
	if err == nil {
		t.Fatalf("expected the grammar to reject a multi-argument call")
	}
}
