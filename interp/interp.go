// Package interp is the tree-walking evaluator described in spec.md §4.2:
// it runs a Program's entry function and returns the exit code written
// into its single "out" parameter.
package interp

import "wasilang/ast"

// Local is one named i32 slot in a Frame.
type Local struct {
	Name  string
	Value int32
}

// Frame is the ordered list of locals visible to one function invocation:
// one Local per declared parameter, in declaration order.
type Frame struct {
	locals []Local
}

func (f *Frame) find(name string) *Local {
	for i := range f.locals {
		if f.locals[i].Name == name {
			return &f.locals[i]
		}
	}
	return nil
}

// result is the (type_tag, value) pair every expression evaluation
// produces. tag is "i32" for value-producing expressions and "" for
// statements.
type result struct {
	tag   string
	value int32
}

const tagI32 = "i32"

// Execute runs program's entry function with no inputs and a single
// pre-registered "exitCode" out slot, and returns that slot's final
// value.
func Execute(program *ast.Program) (int32, error) {
	if program.MainFunction == nil {
		return 0, newError(ErrMissingEntry, "program has no main function")
	}

	outputs, err := callFunction(program, program.MainFunction, map[string]int32{})
	if err != nil {
		return 0, err
	}
	return outputs["exitCode"], nil
}

// callFunction runs fn with the given named "in" inputs and returns the
// named "out" outputs, per spec.md §4.2's five-step call protocol.
func callFunction(program *ast.Program, fn *ast.Function, inputs map[string]int32) (map[string]int32, error) {
	ft := fn.FuncType()

	for _, p := range ft.Parameters {
		bt, ok := p.Type.(*ast.BuiltInType)
		if !ok || bt.Name != "i32" {
			return nil, newError(ErrTypeMismatch, "parameter %q of %q must be i32", p.Name, fn.Name)
		}
		if p.Direction != ast.DirIn && p.Direction != ast.DirOut {
			return nil, newError(ErrBadDirection, "parameter %q of %q must be in or out", p.Name, fn.Name)
		}
	}

	frame := &Frame{}
	for _, p := range ft.Parameters {
		v := int32(0)
		if p.Direction == ast.DirIn {
			iv, ok := inputs[p.Name]
			if !ok {
				return nil, newError(ErrArityMismatch, "missing argument %q calling %q", p.Name, fn.Name)
			}
			v = iv
		}
		frame.locals = append(frame.locals, Local{Name: p.Name, Value: v})
	}

	if len(inputs) > countDirection(ft, ast.DirIn) {
		return nil, newError(ErrArityMismatch, "too many arguments calling %q", fn.Name)
	}

	if _, err := eval(program, frame, fn.Body); err != nil {
		return nil, err
	}

	outputs := map[string]int32{}
	for _, p := range ft.Parameters {
		if p.Direction == ast.DirOut {
			outputs[p.Name] = frame.find(p.Name).Value
		}
	}
	return outputs, nil
}

func countDirection(ft *ast.FuncType, dir ast.ParameterDirection) int {
	n := 0
	for _, p := range ft.Parameters {
		if p.Direction == dir {
			n++
		}
	}
	return n
}

// eval evaluates expr in frame, per the table in spec.md §4.2.
func eval(program *ast.Program, frame *Frame, expr ast.Expression) (result, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return result{tag: tagI32, value: e.Value}, nil

	case *ast.VarExpression:
		local := frame.find(e.Name)
		if local == nil {
			return result{}, newError(ErrUndeclaredVariable, "undeclared variable %q", e.Name)
		}
		return result{tag: tagI32, value: local.Value}, nil

	case *ast.BinaryOpExpression:
		return evalBinaryOp(program, frame, e)

	case *ast.FunctionCall:
		return evalCall(program, frame, e)

	case *ast.InitAssignment:
		local := frame.find(e.Var)
		if local == nil {
			return result{}, newError(ErrUndeclaredVariable, "%q is not a parameter of the enclosing function", e.Var)
		}
		v, err := eval(program, frame, e.Value)
		if err != nil {
			return result{}, err
		}
		if v.tag != tagI32 {
			return result{}, newError(ErrTypeMismatch, "cannot assign a statement's result to %q", e.Var)
		}
		local.Value = v.value
		return result{}, nil

	default:
		return result{}, newError(ErrTypeMismatch, "unsupported expression %T", expr)
	}
}

func evalBinaryOp(program *ast.Program, frame *Frame, e *ast.BinaryOpExpression) (result, error) {
	lhs, err := eval(program, frame, e.LHS)
	if err != nil {
		return result{}, err
	}
	if lhs.tag != tagI32 {
		return result{}, newError(ErrTypeMismatch, "left operand of %q is not a value", e.Op)
	}

	rhs, err := eval(program, frame, e.RHS)
	if err != nil {
		return result{}, err
	}
	if rhs.tag != tagI32 {
		return result{}, newError(ErrTypeMismatch, "right operand of %q is not a value", e.Op)
	}

	switch e.Op {
	case ast.OpAdd:
		return result{tag: tagI32, value: lhs.value + rhs.value}, nil
	case ast.OpSubtract:
		return result{tag: tagI32, value: lhs.value - rhs.value}, nil
	case ast.OpMultiply:
		return result{tag: tagI32, value: lhs.value * rhs.value}, nil
	case ast.OpDivide:
		if rhs.value == 0 {
			return result{}, newError(ErrDivideByZero, "division by zero")
		}
		return result{tag: tagI32, value: lhs.value / rhs.value}, nil
	case ast.OpModulo:
		if rhs.value == 0 {
			return result{}, newError(ErrDivideByZero, "modulo by zero")
		}
		return result{tag: tagI32, value: lhs.value % rhs.value}, nil
	default:
		return result{}, newError(ErrTypeMismatch, "unknown operator %q", e.Op)
	}
}

func evalCall(program *ast.Program, frame *Frame, e *ast.FunctionCall) (result, error) {
	callee, ok := program.FunctionNamed(e.FunctionName)
	if !ok {
		return result{}, newError(ErrUnknownFunction, "unknown function %q", e.FunctionName)
	}

	inputs := map[string]int32{}
	for _, arg := range e.Arguments {
		if arg.Direction != ast.DirIn {
			return result{}, newError(ErrBadDirection, "argument %q must be passed in (got %s)", arg.Name, arg.Direction)
		}
		v, err := eval(program, frame, arg.Expr)
		if err != nil {
			return result{}, err
		}
		if v.tag != tagI32 {
			return result{}, newError(ErrTypeMismatch, "argument %q is not a value", arg.Name)
		}
		inputs[arg.Name] = v.value
	}

	calleeType := callee.FuncType()
	if len(e.Arguments) != countDirection(calleeType, ast.DirIn) {
		return result{}, newError(ErrArityMismatch, "call to %q passes %d argument(s), expected %d",
			e.FunctionName, len(e.Arguments), countDirection(calleeType, ast.DirIn))
	}

	outCount := countDirection(calleeType, ast.DirOut)
	if outCount > 1 {
		return result{}, newError(ErrArityMismatch, "function %q has more than one out parameter", e.FunctionName)
	}

	outputs, err := callFunction(program, callee, inputs)
	if err != nil {
		return result{}, err
	}

	if outCount == 0 {
		return result{}, nil
	}
	for _, p := range calleeType.Parameters {
		if p.Direction == ast.DirOut {
			return result{tag: tagI32, value: outputs[p.Name]}, nil
		}
	}
	return result{}, nil
}
