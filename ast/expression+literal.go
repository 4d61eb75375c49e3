package ast

// Literal is a signed 32-bit integer constant.
type Literal struct {
	exprBase
	Value int32
}

func NewLiteral(rep string, value int32) *Literal {
	return &Literal{exprBase: exprBase{rep: rep}, Value: value}
}

func (*Literal) isExpression() {}
