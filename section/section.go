package section

import "github.com/YADRO-KNS/openpower-esel-parser/param"

// Section is a single typed section of an eSEL blob. The framer
// dispatches each section id to a concrete implementation; Generic
// covers any id the core doesn't have a typed decoder for.
type Section interface {
	// Header returns the section's parsed 8-byte header.
	Header() Header
	// Payload returns the section's raw payload bytes (excluding the
	// header); the slice is the section's own copy.
	Payload() []byte
	// Name returns the section-type display name.
	Name() string
	// HeaderParams returns the human-readable view of the header.
	HeaderParams() param.Params
	// PayloadParams returns the human-readable view of the payload.
	PayloadParams() param.Params
}

// base holds the fields and default (header-derived) behavior common
// to every Section implementation.
type base struct {
	header  Header
	payload []byte
	params  param.Params
}

func (b *base) Header() Header             { return b.header }
func (b *base) Payload() []byte            { return b.payload }
func (b *base) HeaderParams() param.Params { return b.header.Params() }
func (b *base) PayloadParams() param.Params {
	return b.params
}

// Generic represents a section whose id the core has no typed decoder
// for; it carries the raw header and payload but no payload-level
// parameters.
type Generic struct {
	base
}

// Name returns the generic section type name.
func (Generic) Name() string { return "General data (unknown section type)" }

func newGeneric(header Header, payload []byte) *Generic {
	return &Generic{base{header: header, payload: payload}}
}

var _ Section = (*Generic)(nil)
