// Package wasmgen lowers an *ast.Program into a WASI-compatible
// WebAssembly 1.0 binary module, per spec.md §4.3.
package wasmgen

import (
	"io"

	"wasilang/ast"
	"wasilang/wasmgen/internal/binary"
)

// Compile writes program as a binary WebAssembly module to sink. It
// returns true iff every byte was written successfully; a non-nil error
// means the program itself could not be lowered (unsupported construct,
// missing entry, bad direction, or too many outputs).
func Compile(program *ast.Program, sink io.Writer) (bool, error) {
	if program.MainFunction == nil {
		return false, newError(ErrMissingEntry, "program has no main function")
	}

	m := &module{}

	procExitType := funcType{inputs: []ValType{ValI32}}
	procExitTypeIdx := m.addType(procExitType)
	m.imports = append(m.imports, funcImport{
		module:  wasiModuleName,
		name:    procExitName,
		typeIdx: procExitTypeIdx,
	})

	startTypeIdx := m.addType(funcType{})

	funcTypeIdx := make(map[*ast.Function]uint32, len(program.Functions))
	for _, fn := range program.Functions {
		wt, err := astFuncTypeToWasm(fn.FuncType())
		if err != nil {
			return false, err
		}
		funcTypeIdx[fn] = m.addType(wt)
	}

	numImports := m.numImports()
	funcIdx := make(map[*ast.Function]uint32, len(program.Functions))
	for i, fn := range program.Functions {
		funcIdx[fn] = numImports + uint32(i)
	}
	startIdx := numImports + uint32(len(program.Functions))

	for _, fn := range program.Functions {
		m.funcTypes = append(m.funcTypes, funcTypeIdx[fn])
	}
	m.funcTypes = append(m.funcTypes, startTypeIdx)

	for _, fn := range program.Functions {
		body, err := lowerExpr(fn.Body)
		if err != nil {
			return false, err
		}
		body = append(body, OpEnd)
		m.code = append(m.code, codeEntry{body: body})
	}

	startBody := binary.NewWriter()
	startBody.Byte(OpCall)
	startBody.U32(funcIdx[program.MainFunction])
	startBody.Byte(OpCall)
	startBody.U32(0) // proc_exit is always import index 0
	startBody.Byte(OpEnd)
	m.code = append(m.code, codeEntry{body: startBody.Bytes()})

	m.exports = append(m.exports, funcExport{name: startName, idx: startIdx})

	Logger().Sugar().Debugf("emitted module: %d types, %d functions", len(m.types), len(m.funcTypes))

	out := m.encode()
	n, err := sink.Write(out)
	if err != nil || n != len(out) {
		return false, nil
	}
	return true, nil
}

// astFuncTypeToWasm converts a function's ast.FuncType into the module's
// wasm-level type: "in" parameters become inputs, "out" parameters
// become outputs. "inout" and non-i32 parameters are rejected, as is a
// function with more than one output.
func astFuncTypeToWasm(ft *ast.FuncType) (funcType, error) {
	var wt funcType
	for _, p := range ft.Parameters {
		bt, ok := p.Type.(*ast.BuiltInType)
		if !ok || bt.Name != "i32" {
			return funcType{}, newError(ErrUnsupportedType, "parameter %q has unsupported type %s", p.Name, p.Type.String())
		}
		switch p.Direction {
		case ast.DirIn:
			wt.inputs = append(wt.inputs, ValI32)
		case ast.DirOut:
			wt.outputs = append(wt.outputs, ValI32)
		default:
			return funcType{}, newError(ErrBadDirection, "parameter %q has unsupported direction %s", p.Name, p.Direction)
		}
	}
	if len(wt.outputs) > 1 {
		return funcType{}, newError(ErrMultipleOutputs, "function type %s has more than one output", ft.String())
	}
	return wt, nil
}

// lowerExpr lowers expr into a flat instruction stream, per the table in
// spec.md §4.3.
func lowerExpr(expr ast.Expression) ([]byte, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		w := binary.NewWriter()
		w.Byte(OpI32Const)
		w.S32(e.Value)
		return w.Bytes(), nil

	case *ast.BinaryOpExpression:
		lhs, err := lowerExpr(e.LHS)
		if err != nil {
			return nil, err
		}
		rhs, err := lowerExpr(e.RHS)
		if err != nil {
			return nil, err
		}
		op, err := binaryOpcode(e.Op)
		if err != nil {
			return nil, err
		}
		out := append([]byte{}, lhs...)
		out = append(out, rhs...)
		out = append(out, op)
		return out, nil

	case *ast.InitAssignment:
		return lowerExpr(e.Value)

	default:
		return nil, newError(ErrUnsupportedExpr, "expression %q is not supported by the emitter", expr.Rep())
	}
}

func binaryOpcode(op ast.BinaryOperator) (byte, error) {
	switch op {
	case ast.OpAdd:
		return OpI32Add, nil
	case ast.OpSubtract:
		return OpI32Sub, nil
	case ast.OpMultiply:
		return OpI32Mul, nil
	case ast.OpDivide:
		return OpI32DivS, nil
	case ast.OpModulo:
		return OpI32RemS, nil
	default:
		return 0, newError(ErrUnsupportedExpr, "unknown operator %s", op)
	}
}
