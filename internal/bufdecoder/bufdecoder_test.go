package bufdecoder

import "testing"

func TestSequentialReads(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x00, 0x03, 0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x05}
	d := New(buf)
	if got := d.U8(); got != 0x01 {
		t.Fatalf("U8() = %d", got)
	}
	if got := d.U8(); got != 0x02 {
		t.Fatalf("U8() = %d", got)
	}
	if got := d.U16(); got != 0x0003 {
		t.Fatalf("U16() = %d", got)
	}
	if got := d.U32(); got != 0x00000004 {
		t.Fatalf("U32() = %d", got)
	}
	if got := d.U64(); got != 0x0000000000000005 {
		t.Fatalf("U64() = %d", got)
	}
	if d.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", d.Remaining())
	}
}

func TestSkipAndBytes(t *testing.T) {
	buf := []byte{0xaa, 0xbb, 0xcc, 0xdd}
	d := New(buf)
	d.Skip(1)
	dst := make([]byte, 2)
	d.Bytes(dst)
	if dst[0] != 0xbb || dst[1] != 0xcc {
		t.Fatalf("Bytes() = %x", dst)
	}
	if d.Remaining() != 1 {
		t.Fatalf("Remaining() = %d", d.Remaining())
	}
}
