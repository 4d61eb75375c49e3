package ast

// FuncArgument binds one call-site expression to a callee parameter name
// and the direction the caller intends to pass it with.
type FuncArgument struct {
	Name      string
	Direction ParameterDirection
	Expr      Expression
}

// FunctionCall invokes the first function named FunctionName in the
// enclosing Program with the given arguments. The grammar admits at most
// one argument.
type FunctionCall struct {
	exprBase
	FunctionName string
	Arguments    []FuncArgument
}

func NewFunctionCall(rep string, functionName string, arguments []FuncArgument) *FunctionCall {
	return &FunctionCall{exprBase: exprBase{rep: rep}, FunctionName: functionName, Arguments: arguments}
}

func (*FunctionCall) isExpression() {}
