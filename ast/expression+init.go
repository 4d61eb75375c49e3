package ast

// InitAssignment assigns Value to the local named Var. It is a statement:
// it produces no value of its own.
type InitAssignment struct {
	exprBase
	Var   string
	Value Expression
}

func NewInitAssignment(rep string, v string, value Expression) *InitAssignment {
	return &InitAssignment{exprBase: exprBase{rep: rep}, Var: v, Value: value}
}

func (*InitAssignment) isExpression() {}
