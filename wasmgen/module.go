package wasmgen

// funcType is one type-section entry: an ordered input list and at most
// one output, per spec.md §4.3 ("more than one output is rejected").
type funcType struct {
	inputs  []ValType
	outputs []ValType
}

func (a funcType) equal(b funcType) bool {
	if len(a.inputs) != len(b.inputs) || len(a.outputs) != len(b.outputs) {
		return false
	}
	for i := range a.inputs {
		if a.inputs[i] != b.inputs[i] {
			return false
		}
	}
	for i := range a.outputs {
		if a.outputs[i] != b.outputs[i] {
			return false
		}
	}
	return true
}

// funcImport is the module's single WASI import: proc_exit.
type funcImport struct {
	module  string
	name    string
	typeIdx uint32
}

// funcExport binds an export name to a function index.
type funcExport struct {
	name string
	idx  uint32
}

// codeEntry is one function body: no locals beyond its parameters, a
// flat instruction stream, and the 0x0B terminator.
type codeEntry struct {
	body []byte
}

// module is the in-memory model of the WebAssembly module being built,
// covering exactly the section set spec.md §4.3 names.
type module struct {
	types     []funcType
	imports   []funcImport
	funcTypes []uint32 // type index per declared (non-imported) function
	code      []codeEntry
	exports   []funcExport
}

// addType interns t into m.types by structural equality and returns its
// index.
func (m *module) addType(t funcType) uint32 {
	for i, existing := range m.types {
		if existing.equal(t) {
			return uint32(i)
		}
	}
	m.types = append(m.types, t)
	return uint32(len(m.types) - 1)
}

func (m *module) numImports() uint32 {
	return uint32(len(m.imports))
}
