package wasmgen

import "wasilang/wasmgen/internal/binary"

// encode serializes m into a complete WebAssembly binary module,
// following the section layout and ordering of spec.md §4.3.
func (m *module) encode() []byte {
	w := binary.NewWriter()

	w.U32LE(Magic)
	w.U32LE(Version)

	writeSection(w, SectionType, func(s *binary.Writer) {
		s.Vector(len(m.types))
		for _, t := range m.types {
			s.Byte(funcTypeTag)
			s.Vector(len(t.inputs))
			for _, v := range t.inputs {
				s.Byte(byte(v))
			}
			s.Vector(len(t.outputs))
			for _, v := range t.outputs {
				s.Byte(byte(v))
			}
		}
	})

	writeSection(w, SectionImport, func(s *binary.Writer) {
		s.Vector(len(m.imports))
		for _, imp := range m.imports {
			s.Name(imp.module)
			s.Name(imp.name)
			s.Byte(KindFunc)
			s.U32(imp.typeIdx)
		}
	})

	writeSection(w, SectionFunction, func(s *binary.Writer) {
		s.Vector(len(m.funcTypes))
		for _, idx := range m.funcTypes {
			s.U32(idx)
		}
	})

	writeSection(w, SectionMemory, func(s *binary.Writer) {
		s.Vector(1)
		s.Byte(limitsHasMax)
		s.U32(memoryMin)
		s.U32(memoryMax)
	})

	writeSection(w, SectionExport, func(s *binary.Writer) {
		s.Vector(len(m.exports) + 1)
		for _, e := range m.exports {
			s.Name(e.name)
			s.Byte(KindFunc)
			s.U32(e.idx)
		}
		s.Name(memoryExportName)
		s.Byte(KindMemory)
		s.U32(0)
	})

	writeSection(w, SectionCode, func(s *binary.Writer) {
		s.Vector(len(m.code))
		for _, c := range m.code {
			body := binary.NewWriter()
			body.Vector(0) // no local-entries, only parameters
			body.Raw(c.body)
			s.U32(uint32(body.Len()))
			s.Raw(body.Bytes())
		}
	})

	return w.Bytes()
}

// writeSection writes id, the ULEB128 byte-length of build's output, and
// then that output — the length-prefixed-payload shape every section
// after the header shares.
func writeSection(w *binary.Writer, id byte, build func(*binary.Writer)) {
	payload := binary.NewWriter()
	build(payload)
	w.Byte(id)
	w.U32(uint32(payload.Len()))
	w.Raw(payload.Bytes())
}
