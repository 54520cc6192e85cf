// Package section implements the binary section framer and the
// typed-section data model: big-endian unflattening of Private
// Header, User Header, Primary System Reference Code and User-Defined
// Data sections, plus a generic fallback for unrecognized section ids.
package section

import (
	"fmt"

	"github.com/YADRO-KNS/openpower-esel-parser/param"
	"github.com/YADRO-KNS/openpower-esel-parser/plugin"
)

// HeaderSize is the wire size of a section header, in bytes.
const HeaderSize = 8

// ID is a section's 16-bit type id, conventionally two ASCII bytes
// (e.g. "PH", "UH", "PS", "UD").
type ID uint16

// MakeID builds an ID from two ASCII bytes, high byte first.
func MakeID(hi, lo byte) ID {
	return ID(uint16(hi)<<8 | uint16(lo))
}

// String renders the id as "0xHHLL" plus a parenthesized ASCII echo
// when both bytes are printable.
func (id ID) String() string {
	hi := byte(id >> 8)
	lo := byte(id)
	s := fmt.Sprintf("0x%04x", uint16(id))
	if isPrintableASCII(hi) && isPrintableASCII(lo) {
		s += fmt.Sprintf(" (%c%c)", hi, lo)
	}
	return s
}

func isPrintableASCII(b byte) bool {
	return b >= 0x20 && b < 0x7f
}

// Known section ids.
const (
	IDPH ID = 0x5048 // "PH"
	IDUH ID = 0x5548 // "UH"
	IDPS ID = 0x5053 // "PS"
	IDUD ID = 0x5544 // "UD"
)

// Header is a section's fixed 8-byte wire header.
type Header struct {
	ID        ID
	Length    uint16 // total section length, including this header
	Version   uint8
	Subtype   uint8
	Component plugin.ComponentID
}

// Params returns the human-readable view of the header itself: five
// entries, in order, Section ID/length/version/subtype/component.
func (h Header) Params() param.Params {
	var ps param.Params
	ps = ps.Append(
		param.NewString("Section ID", h.ID.String()),
		param.NewNumeric("Section length", uint64(h.Length), 2),
		param.NewNumeric("Section version", uint64(h.Version), 1),
		param.NewNumeric("Section subtype", uint64(h.Subtype), 1),
		param.NewString("Section component", plugin.ComponentName(h.Component)),
	)
	return ps
}
