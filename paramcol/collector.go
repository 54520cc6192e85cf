// Package paramcol defines the parameter-collector callback interface
// that a section or plugin decoder uses to emit named/typed fields
// without knowing how the result will ultimately be rendered.
package paramcol

import (
	"fmt"
	"strings"

	"github.com/YADRO-KNS/openpower-esel-parser/param"
)

// Collector is the sink a decoder writes human-readable fields into.
// Implementations do not own the destination beyond the lifetime of a
// single decode call; plugin callbacks must not retain a Collector
// past the call that handed it to them.
type Collector interface {
	// EmitString appends a String param. A missing or empty value
	// still produces a param with an empty value.
	EmitString(name, value string)
	// EmitBool appends a Boolean param.
	EmitBool(name string, v bool)
	// EmitNumberI32 classifies v against fmt (see the width-selection
	// rule in NumericWidth) and appends either a Numeric or, if fmt
	// contains a space, a String param.
	EmitNumberI32(name, format string, v int32)
	// EmitNumberU64 is EmitNumberI32 for already-unsigned 64-bit
	// values.
	EmitNumberU64(name, format string, v uint64)
	// EmitHexDump appends a Raw param whose text is the canonical
	// hex dump of data.
	EmitHexDump(data []byte)
	// EmitHeading appends a Heading param.
	EmitHeading(title string)
	// EmitBlank appends a Blank param.
	EmitBlank()
	// EmitTrace appends a Raw param with the literal text.
	EmitTrace(text string)
}

// Buffer is the default Collector: it appends every emitted Param to
// an in-memory Params sequence.
type Buffer struct {
	Params param.Params
}

// NewBuffer returns an empty Buffer collector.
func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) EmitString(name, value string) {
	b.Params = b.Params.Append(param.NewString(name, value))
}

func (b *Buffer) EmitBool(name string, v bool) {
	b.Params = b.Params.Append(param.NewBoolean(name, v))
}

func (b *Buffer) EmitNumberI32(name, format string, v int32) {
	if strings.Contains(format, " ") {
		b.Params = b.Params.Append(param.NewString(name, fmt.Sprintf(format, v)))
		return
	}
	b.emitNumber(name, format, uint64(v))
}

func (b *Buffer) EmitNumberU64(name, format string, v uint64) {
	if strings.Contains(format, " ") {
		b.Params = b.Params.Append(param.NewString(name, fmt.Sprintf(format, v)))
		return
	}
	b.emitNumber(name, format, v)
}

func (b *Buffer) EmitHexDump(data []byte) {
	b.Params = b.Params.Append(param.NewRaw(HexDump(data)))
}

func (b *Buffer) EmitHeading(title string) {
	b.Params = b.Params.Append(param.NewHeading(title))
}

func (b *Buffer) EmitBlank() {
	b.Params = b.Params.Append(param.NewBlank())
}

func (b *Buffer) EmitTrace(text string) {
	b.Params = b.Params.Append(param.NewRaw(text))
}

func (b *Buffer) emitNumber(name, format string, v uint64) {
	b.Params = b.Params.Append(param.NewNumeric(name, v, NumericWidth(format, v)))
}

// NumericWidth implements the numeric classification contract: pick
// the narrowest unsigned byte width that fits both v and the
// printf-like format hint. This is the rule later rendering relies on
// to choose a hex width.
func NumericWidth(format string, v uint64) int {
	switch {
	case v > uint64(^uint32(0)) || strings.Contains(format, "16"):
		return 8
	case v > uint64(^uint16(0)) || strings.Contains(format, "8"):
		return 4
	case v > uint64(^uint8(0)) || strings.Contains(format, "4"):
		return 2
	default:
		return 1
	}
}

var _ Collector = (*Buffer)(nil)
