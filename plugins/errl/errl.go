// Package errl registers illustrative User-Defined-Data decoders for
// the "errl" component (component id 0x0100, matching the open-power
// errl/hostboot UDD plugins): string tables, target attribute dumps,
// and callout records, dispatched by the section's subtype byte
// exactly as HostBoot's errlplugins.cpp dispatches a single
// component's plugin across its own subsection ids.
package errl

import (
	"github.com/YADRO-KNS/openpower-esel-parser/paramcol"
	"github.com/YADRO-KNS/openpower-esel-parser/plugin"
)

// ComponentID is the errl component's registry key.
const ComponentID plugin.ComponentID = 0x0100

const (
	subtypeStrings = 0x01
	subtypeTargets = 0x02
	subtypeCallout = 0x06
)

func init() {
	plugin.RegisterName(ComponentID, "errl")
	plugin.Register(ComponentID, parse)
}

func parse(collector paramcol.Collector, data []byte, version, subtype uint8) bool {
	switch subtype {
	case subtypeStrings:
		return parseStrings(collector, data)
	case subtypeTargets:
		return parseTargets(collector, data)
	case subtypeCallout:
		return parseCallout(collector, data)
	default:
		return false
	}
}
