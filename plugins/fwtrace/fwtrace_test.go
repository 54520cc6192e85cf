package fwtrace

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/YADRO-KNS/openpower-esel-parser/paramcol"
	"github.com/YADRO-KNS/openpower-esel-parser/plugin"
)

func zstdCompress(t *testing.T, text string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("zstd.NewWriter: %v", err)
	}
	if _, err := w.Write([]byte(text)); err != nil {
		t.Fatalf("zstd write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zstd close: %v", err)
	}
	return buf.Bytes()
}

func lz4Compress(t *testing.T, text string) []byte {
	t.Helper()
	src := []byte(text)
	dst := make([]byte, lz4.CompressBlockBound(len(src)))
	var c lz4.Compressor
	n, err := c.CompressBlock(src, dst)
	if err != nil {
		t.Fatalf("lz4 compress: %v", err)
	}
	return dst[:n]
}

func TestParseZstdTrace(t *testing.T) {
	want := "TRACE: istep 6.4 entry\nTRACE: istep 6.4 exit\n"
	b := paramcol.NewBuffer()
	if !parseZstd(b, zstdCompress(t, want), 1, 0) {
		t.Fatal("parseZstd returned false")
	}
	if len(b.Params) != 1 || b.Params[0].Value() != want {
		t.Fatalf("decoded trace = %q, want %q", b.Params[0].Value(), want)
	}
}

func TestParseLZ4Trace(t *testing.T) {
	want := "TRACE: sbe bootloader checkpoint 3\n"
	b := paramcol.NewBuffer()
	if !parseLZ4(b, lz4Compress(t, want), 1, 0) {
		t.Fatal("parseLZ4 returned false")
	}
	if len(b.Params) != 1 || b.Params[0].Value() != want {
		t.Fatalf("decoded trace = %q, want %q", b.Params[0].Value(), want)
	}
}

func TestParseZstdCorruptPayload(t *testing.T) {
	b := paramcol.NewBuffer()
	ok := parseZstd(b, []byte{0x00, 0x01, 0x02}, 1, 0)
	if !ok {
		t.Fatal("expected parseZstd to still return true with an error param")
	}
	if b.Params[0].Name() != "Decompression error" {
		t.Errorf("expected a decompression-error param, got %+v", b.Params[0])
	}
}

func TestRegisteredComponents(t *testing.T) {
	for _, id := range []plugin.ComponentID{ComponentTRAC, ComponentTRLZ} {
		if _, ok := plugin.Lookup(id); !ok {
			t.Errorf("component 0x%04x not registered", id)
		}
	}
}
