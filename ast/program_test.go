package ast_test

import (
	"testing"

	"wasilang/ast"
)

func TestFindOrAddInterns(t *testing.T) {
	prog := &ast.Program{}

	a := prog.FindOrAdd(&ast.BuiltInType{Name: "i32"})
	b := prog.FindOrAdd(&ast.BuiltInType{Name: "i32"})

	if a != b {
		t.Fatalf("FindOrAdd returned distinct values for structurally equal types")
	}
	if len(prog.Types) != 1 {
		t.Fatalf("Types has %d entries, want 1", len(prog.Types))
	}
}

func TestFindOrAddDistinguishesFuncTypes(t *testing.T) {
	prog := &ast.Program{}
	i32 := prog.FindOrAdd(&ast.BuiltInType{Name: "i32"})

	f1 := prog.FindOrAdd(&ast.FuncType{Parameters: []ast.FuncParameter{
		{Name: "exitCode", Direction: ast.DirOut, Type: i32},
	}})
	f2 := prog.FindOrAdd(&ast.FuncType{Parameters: []ast.FuncParameter{
		{Name: "exitCode", Direction: ast.DirOut, Type: i32},
	}})
	f3 := prog.FindOrAdd(&ast.FuncType{Parameters: []ast.FuncParameter{
		{Name: "x", Direction: ast.DirIn, Type: i32},
	}})

	if f1 != f2 {
		t.Errorf("structurally equal FuncTypes were not interned to the same value")
	}
	if f1.Equal(f3) {
		t.Errorf("structurally distinct FuncTypes compared equal")
	}
}

func TestIsEntryType(t *testing.T) {
	prog := &ast.Program{}
	i32 := prog.FindOrAdd(&ast.BuiltInType{Name: "i32"})

	entry := &ast.FuncType{Parameters: []ast.FuncParameter{
		{Name: "exitCode", Direction: ast.DirOut, Type: i32},
	}}
	if !ast.IsEntryType(entry) {
		t.Errorf("expected fun(out exitCode: i32) to be an entry type")
	}

	wrongName := &ast.FuncType{Parameters: []ast.FuncParameter{
		{Name: "code", Direction: ast.DirOut, Type: i32},
	}}
	if ast.IsEntryType(wrongName) {
		t.Errorf("expected a differently named parameter to be rejected")
	}

	wrongDirection := &ast.FuncType{Parameters: []ast.FuncParameter{
		{Name: "exitCode", Direction: ast.DirIn, Type: i32},
	}}
	if ast.IsEntryType(wrongDirection) {
		t.Errorf("expected an 'in' exitCode to be rejected")
	}

	tooManyParams := &ast.FuncType{Parameters: []ast.FuncParameter{
		{Name: "exitCode", Direction: ast.DirOut, Type: i32},
		{Name: "extra", Direction: ast.DirIn, Type: i32},
	}}
	if ast.IsEntryType(tooManyParams) {
		t.Errorf("expected a second parameter to be rejected")
	}
}

func TestFunctionNamedFirstMatchWins(t *testing.T) {
	prog := &ast.Program{
		Functions: []*ast.Function{
			{Name: "f", SourceFile: "a"},
			{Name: "f", SourceFile: "b"},
		},
	}
	f, ok := prog.FunctionNamed("f")
	if !ok || f.SourceFile != "a" {
		t.Fatalf("expected the first function named f, got %+v", f)
	}
}
