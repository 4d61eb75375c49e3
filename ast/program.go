package ast

// Program is the parser's output: an interned type set, an ordered list
// of function definitions, and (once validated) a pointer at the entry
// function.
type Program struct {
	Types        []Type
	Functions    []*Function
	MainFunction *Function
}

// FindOrAdd searches Types for a structurally equal entry and returns it;
// otherwise it appends proposed and returns it. Two calls with
// structurally equal arguments always return the identical Type value,
// which is how the AST achieves interning.
func (p *Program) FindOrAdd(proposed Type) Type {
	for _, existing := range p.Types {
		if existing.Equal(proposed) {
			return existing
		}
	}
	p.Types = append(p.Types, proposed)
	return proposed
}

// FunctionNamed returns the first function in Functions with the given
// name, and whether one was found. FunctionCall resolution and the
// interpreter both use first-match-wins semantics.
func (p *Program) FunctionNamed(name string) (*Function, bool) {
	for _, f := range p.Functions {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// IsEntryType reports whether t is exactly fun(out exitCode: i32), the
// required type of the entry function.
func IsEntryType(t Type) bool {
	ft, ok := t.(*FuncType)
	if !ok || len(ft.Parameters) != 1 {
		return false
	}
	p := ft.Parameters[0]
	if p.Name != "exitCode" || p.Direction != DirOut {
		return false
	}
	bt, ok := p.Type.(*BuiltInType)
	return ok && bt.Name == "i32"
}
