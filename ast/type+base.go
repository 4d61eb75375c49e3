package ast

// Type is the tagged union {BuiltInType | FuncType}. Types are interned:
// a Program holds a single set of unique Type values (Program.Types) and
// every TypeRef in the AST shares identity with one of its members.
//
// Concrete types are held behind pointers so that interning can hand out
// a stable identity: two calls to Program.FindOrAdd with structurally
// equal types return the very same Type value.
type Type interface {
	isType()
	// Equal reports structural equality, independent of identity.
	Equal(other Type) bool
	String() string
}

// TypeRef is a reference into Program.Types. It is the same Go value as
// the interned Type it points to.
type TypeRef = Type
