// Package binary provides the low-level byte/LEB128 writer the wasmgen
// encoder builds module sections with.
package binary

import (
	"bytes"
	"encoding/binary"
)

// Writer buffers the bytes of one WebAssembly section or module.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns everything written so far.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Byte writes a single byte.
func (w *Writer) Byte(b byte) {
	w.buf.WriteByte(b)
}

// Raw writes data verbatim.
func (w *Writer) Raw(data []byte) {
	w.buf.Write(data)
}

// U32LE writes v as a fixed 4-byte little-endian value, used for the
// module header's magic number and version rather than section counts.
func (w *Writer) U32LE(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
}

// U32 writes v as an unsigned LEB128 value.
func (w *Writer) U32(v uint32) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.buf.WriteByte(b)
		if v == 0 {
			return
		}
	}
}

// S32 writes v as a signed LEB128 value.
func (w *Writer) S32(v int32) {
	more := true
	for more {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			more = false
		} else {
			b |= 0x80
		}
		w.buf.WriteByte(b)
	}
}

// Name writes a UTF-8 name as a ULEB128 byte-length prefix followed by
// its bytes.
func (w *Writer) Name(s string) {
	w.U32(uint32(len(s)))
	w.buf.WriteString(s)
}

// Vector writes n as a ULEB128 element count. Callers write the n
// elements themselves immediately afterward.
func (w *Writer) Vector(n int) {
	w.U32(uint32(n))
}
