package ast

import "strings"

// FuncParameter is one entry of a FuncType's parameter list. Parameter
// names are unique within a function type.
type FuncParameter struct {
	Name      string
	Direction ParameterDirection
	Type      TypeRef
}

func (p FuncParameter) Equal(other FuncParameter) bool {
	return p.Name == other.Name && p.Direction == other.Direction && p.Type.Equal(other.Type)
}

// FuncType is the type of a function definition or a callable parameter.
type FuncType struct {
	Parameters []FuncParameter
}

func (*FuncType) isType() {}

func (f *FuncType) Equal(other Type) bool {
	o, ok := other.(*FuncType)
	if !ok || len(o.Parameters) != len(f.Parameters) {
		return false
	}
	for i, p := range f.Parameters {
		if !p.Equal(o.Parameters[i]) {
			return false
		}
	}
	return true
}

func (f *FuncType) String() string {
	var b strings.Builder
	b.WriteString("fun(")
	for i, p := range f.Parameters {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Direction.String())
		b.WriteByte(' ')
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(p.Type.String())
	}
	b.WriteByte(')')
	return b.String()
}
