package wasmgen_test

import (
	"bytes"
	"testing"

	"wasilang/parser"
	"wasilang/wasmgen"
)

func TestCompileHeaderBytes(t *testing.T) {
	program, err := parser.Parse(`def main = fun(out exitCode: i32) { exitCode = 0i32; };`, "t")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var buf bytes.Buffer
	ok, err := wasmgen.Compile(program, &buf)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if !ok {
		t.Fatalf("Compile() returned false")
	}

	want := []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}
	got := buf.Bytes()
	if len(got) < 8 || !bytes.Equal(got[:8], want) {
		t.Fatalf("header = % X, want % X", got[:min(8, len(got))], want)
	}
}

func TestCompileRejectsVarExpression(t *testing.T) {
	src := `def f = fun(in x: i32, out r: i32) { r = x; }; def main = fun(out exitCode: i32) { exitCode = 0i32; };`
	program, err := parser.Parse(src, "t")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var buf bytes.Buffer
	_, err = wasmgen.Compile(program, &buf)
	if err == nil {
		t.Fatalf("expected Compile() to reject a VarExpression in a function body")
	}
	wasmErr, ok := err.(*wasmgen.Error)
	if !ok {
		t.Fatalf("expected a *wasmgen.Error, got %T", err)
	}
	if wasmErr.Kind != wasmgen.ErrUnsupportedExpr {
		t.Errorf("Kind = %v, want ErrUnsupportedExpr", wasmErr.Kind)
	}
}

func TestCompileRejectsInoutParameter(t *testing.T) {
	src := `def f = fun(inout x: i32) { x = 1i32; }; def main = fun(out exitCode: i32) { exitCode = 0i32; };`
	program, err := parser.Parse(src, "t")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var buf bytes.Buffer
	_, err = wasmgen.Compile(program, &buf)
	if err == nil {
		t.Fatalf("expected Compile() to reject an inout parameter")
	}
	wasmErr, ok := err.(*wasmgen.Error)
	if !ok {
		t.Fatalf("expected a *wasmgen.Error, got %T", err)
	}
	if wasmErr.Kind != wasmgen.ErrBadDirection {
		t.Errorf("Kind = %v, want ErrBadDirection", wasmErr.Kind)
	}
}

func TestCompileEmitsLiteralConst(t *testing.T) {
	// SLEB128(0) is a single zero byte; i32.const 0 is 0x41 0x00.
	program, err := parser.Parse(`def main = fun(out exitCode: i32) { exitCode = 0i32; };`, "t")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	var buf bytes.Buffer
	if _, err := wasmgen.Compile(program, &buf); err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte{0x41, 0x00}) {
		t.Errorf("expected the code section to contain i32.const 0 (0x41 0x00)")
	}
}

