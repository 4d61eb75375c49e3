package ast

// VarExpression reads the current value of a local by name.
type VarExpression struct {
	exprBase
	Name string
}

func NewVarExpression(rep string, name string) *VarExpression {
	return &VarExpression{exprBase: exprBase{rep: rep}, Name: name}
}

func (*VarExpression) isExpression() {}
