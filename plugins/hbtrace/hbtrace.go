// Package hbtrace registers a UDD decoder for component "HBBT"
// (HostBoot backtrace) payloads: a NUL-separated list of
// Itanium-mangled C++ symbol names, demangled and emitted one per
// frame. The address-to-symbol lookup machinery that would normally
// resolve a raw backtrace into mangled names is non-core and not
// reproduced here; this plugin only demangles names already present
// in the payload.
package hbtrace

import (
	"bytes"

	"github.com/ianlancetaylor/demangle"

	"github.com/YADRO-KNS/openpower-esel-parser/paramcol"
	"github.com/YADRO-KNS/openpower-esel-parser/plugin"
)

// ComponentID is the HostBoot backtrace component's registry key.
const ComponentID plugin.ComponentID = 0x4842 // "HB", folded "HBBT"

func init() {
	plugin.RegisterName(ComponentID, "hbtrace")
	plugin.Register(ComponentID, parse)
}

func parse(collector paramcol.Collector, data []byte, version, subtype uint8) bool {
	frames := bytes.Split(data, []byte{0x00})
	emitted := false
	for _, frame := range frames {
		if len(frame) == 0 {
			continue
		}
		collector.EmitString("Frame", demangle.Filter(string(frame)))
		emitted = true
	}
	return emitted
}
