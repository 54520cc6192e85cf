// Package param defines the typed name/value pairs the decoding engine
// emits to describe a section's header and payload in human-readable
// form.
package param

import (
	"fmt"
	"strings"
)

// Kind identifies which of the six Param variants a value holds.
type Kind int

//go:generate stringer -type=Kind

const (
	// Blank is an empty line: no name, no value.
	Blank Kind = iota
	// Heading is a section title; the title is stored in the value
	// slot and the name is empty.
	Heading
	// Raw is free-form text (e.g. a hex dump); name is empty and the
	// value may contain newlines.
	Raw
	// Boolean holds a named true/false value.
	Boolean
	// Numeric holds a named unsigned integer of width 1, 2, 4 or 8
	// bytes.
	Numeric
	// String holds a named, trailing-whitespace-trimmed text value.
	String
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "Blank"
	case Heading:
		return "Heading"
	case Raw:
		return "Raw"
	case Boolean:
		return "Boolean"
	case Numeric:
		return "Numeric"
	case String:
		return "String"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// A Param is a single, immutable name/value pair emitted by the
// decoding engine. Use the New* constructors to build one; the zero
// value is not a valid Param.
type Param struct {
	kind Kind
	name string

	text   string
	number uint64
	width  int // byte width of number, only meaningful for Numeric
	flag   bool
}

// NewBlank returns a blank line Param.
func NewBlank() Param {
	return Param{kind: Blank}
}

// NewHeading returns a Heading Param with the given title.
func NewHeading(title string) Param {
	return Param{kind: Heading, text: title}
}

// NewRaw returns a Raw Param carrying text verbatim.
func NewRaw(text string) Param {
	return Param{kind: Raw, text: text}
}

// NewBoolean returns a Boolean Param.
func NewBoolean(name string, value bool) Param {
	return Param{kind: Boolean, name: name, flag: value}
}

// NewString returns a String Param. Trailing ASCII whitespace in value
// is trimmed at construction.
func NewString(name, value string) Param {
	return Param{kind: String, name: name, text: strings.TrimRight(value, " \t\r\n\v\f")}
}

// NewNumeric returns a Numeric Param of the given byte width (1, 2, 4
// or 8). Width values outside that set are rounded up to the next
// supported width.
func NewNumeric(name string, value uint64, width int) Param {
	switch {
	case width <= 1:
		width = 1
	case width <= 2:
		width = 2
	case width <= 4:
		width = 4
	default:
		width = 8
	}
	return Param{kind: Numeric, name: name, number: value, width: width}
}

// Kind returns the variant of the Param.
func (p Param) Kind() Kind { return p.kind }

// Name returns the Param's name. Empty for Blank, Heading and Raw.
func (p Param) Name() string { return p.name }

// Bool returns the boolean value for a Boolean Param and whether the
// Param actually is one.
func (p Param) Bool() (bool, bool) {
	if p.kind != Boolean {
		return false, false
	}
	return p.flag, true
}

// Uint64 returns the numeric value and byte width for a Numeric Param
// and whether the Param actually is one.
func (p Param) Uint64() (value uint64, width int, ok bool) {
	if p.kind != Numeric {
		return 0, 0, false
	}
	return p.number, p.width, true
}

// Value returns the canonical string form of the Param, per the table
// in the design documentation: Blank is empty, Heading and Raw return
// their stored text verbatim, Boolean is "True"/"False", Numeric is
// "0x" followed by lowercase hex zero-padded to width*2, and String
// returns the stored (already trimmed) text.
func (p Param) Value() string {
	switch p.kind {
	case Blank:
		return ""
	case Heading, Raw, String:
		return p.text
	case Boolean:
		if p.flag {
			return "True"
		}
		return "False"
	case Numeric:
		return fmt.Sprintf("0x%0*x", p.width*2, p.number)
	default:
		return ""
	}
}

// Params is an ordered sequence of Param; insertion order is
// significant.
type Params []Param

// Append adds params to the end of the sequence and returns the
// extended slice, mirroring the append builtin.
func (ps Params) Append(more ...Param) Params {
	return append(ps, more...)
}
