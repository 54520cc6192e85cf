// Package esel parses OpenPOWER eSEL/PEL (extended System Event Log /
// Platform Event Log) binary blobs into a structured, human-readable
// parameter tree.
//
// Parsing starts with a call to Parse, which returns an Event exposing
// the optional leading IPMI SEL record and the ordered section list
// starting with the Private Header. Section- and component-specific
// decoders are pluggable: see the plugin package for the
// component-indexed registries UDD and PSRC decoders register
// through, and the plugins/ subdirectories for illustrative,
// non-core example decoders.
package esel // import "github.com/YADRO-KNS/openpower-esel-parser"

import (
	"github.com/YADRO-KNS/openpower-esel-parser/event"
	"github.com/YADRO-KNS/openpower-esel-parser/param"
	"github.com/YADRO-KNS/openpower-esel-parser/section"
)

// Event is the result of a successful Parse: the optional leading SEL
// record plus the ordered section list.
type Event = event.Event

// Section is the common interface every decoded section implements.
type Section = section.Section

// Param is a single named/typed field emitted by the decoding engine.
type Param = param.Param

// Params is an ordered sequence of Param.
type Params = param.Params

// Parse decodes an eSEL blob: an optional 16-byte SEL record prefix,
// the mandatory Private Header, and the sections it announces.
func Parse(data []byte) (*Event, error) {
	return event.Parse(data)
}
