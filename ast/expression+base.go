package ast

// Expression is the tagged union {Literal | VarExpression | FunctionCall |
// BinaryOpExpression | InitAssignment}. Every concrete expression also
// carries the textual span it was parsed from, for diagnostics.
type Expression interface {
	isExpression()
	// Rep returns the source text this expression was parsed from.
	Rep() string
}

type exprBase struct {
	rep string
}

func (e exprBase) Rep() string { return e.rep }
