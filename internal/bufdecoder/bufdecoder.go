// Package bufdecoder provides a small big-endian byte cursor used by
// the section package to unflatten fixed-layout wire structs, mirrored
// on the teacher's little-endian bufDecoder.
package bufdecoder

import "encoding/binary"

// Decoder is a forward-only cursor over a byte slice.
type Decoder struct {
	buf []byte
}

// New returns a Decoder positioned at the start of buf.
func New(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Skip advances the cursor by n bytes without reading them.
func (d *Decoder) Skip(n int) {
	d.buf = d.buf[n:]
}

// Bytes copies len(x) bytes into x and advances the cursor.
func (d *Decoder) Bytes(x []byte) {
	copy(x, d.buf)
	d.buf = d.buf[len(x):]
}

// U8 reads a single byte.
func (d *Decoder) U8() uint8 {
	x := d.buf[0]
	d.buf = d.buf[1:]
	return x
}

// U16 reads a big-endian uint16.
func (d *Decoder) U16() uint16 {
	x := binary.BigEndian.Uint16(d.buf)
	d.buf = d.buf[2:]
	return x
}

// U32 reads a big-endian uint32.
func (d *Decoder) U32() uint32 {
	x := binary.BigEndian.Uint32(d.buf)
	d.buf = d.buf[4:]
	return x
}

// U64 reads a big-endian uint64.
func (d *Decoder) U64() uint64 {
	x := binary.BigEndian.Uint64(d.buf)
	d.buf = d.buf[8:]
	return x
}

// Remaining returns the number of unconsumed bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf)
}
