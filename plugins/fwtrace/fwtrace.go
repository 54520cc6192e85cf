// Package fwtrace registers UDD decoders for compressed firmware trace
// blobs: a zstd codec for component "TRAC" and an lz4 codec for
// component "TRLZ". Each decoder decompresses the payload and emits
// it verbatim as a trace-line dump, the non-shelling-out alternative
// to invoking an external trace-formatting utility.
package fwtrace

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/YADRO-KNS/openpower-esel-parser/paramcol"
	"github.com/YADRO-KNS/openpower-esel-parser/plugin"
)

// Component ids this package registers decoders for.
const (
	ComponentTRAC plugin.ComponentID = 0x5452 // "TR", zstd-coded trace
	ComponentTRLZ plugin.ComponentID = 0x544c // "TL", lz4-coded trace
)

func init() {
	plugin.RegisterName(ComponentTRAC, "fwtrace (zstd)")
	plugin.RegisterName(ComponentTRLZ, "fwtrace (lz4)")
	plugin.Register(ComponentTRAC, parseZstd)
	plugin.Register(ComponentTRLZ, parseLZ4)
}

func parseZstd(collector paramcol.Collector, data []byte, version, subtype uint8) bool {
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return false
	}
	defer decoder.Close()

	decoded, err := decoder.DecodeAll(data, nil)
	if err != nil {
		collector.EmitString("Decompression error", err.Error())
		return true
	}
	collector.EmitTrace(string(decoded))
	return true
}

// lz4MaxExpanded bounds the adaptive decompression buffer, mirroring
// the doubling-retry strategy mebo's lz4 codec uses.
const lz4MaxExpanded = 64 * 1024 * 1024

func parseLZ4(collector paramcol.Collector, data []byte, version, subtype uint8) bool {
	bufSize := len(data) * 4
	for bufSize <= lz4MaxExpanded {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			collector.EmitTrace(string(buf[:n]))
			return true
		}
		bufSize *= 2
	}
	collector.EmitString("Decompression error", fmt.Sprintf("lz4 payload exceeds %d bytes expanded", lz4MaxExpanded))
	return true
}
