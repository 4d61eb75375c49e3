package ast

// BuiltInType is a named primitive. Only "i32" is recognised by the
// parser, but the type itself does not enforce that restriction.
type BuiltInType struct {
	Name string
}

func (*BuiltInType) isType() {}

func (b *BuiltInType) Equal(other Type) bool {
	o, ok := other.(*BuiltInType)
	return ok && o.Name == b.Name
}

func (b *BuiltInType) String() string {
	return b.Name
}
