// Package diag registers a UDD decoder for structured diagnostic
// tuples (component "DIAG"): a fixed 8-byte xxHash64 checksum followed
// by the tuple body it covers. The plugin verifies the checksum and
// reports the checksum, a pass/fail verdict and a hex dump of the body;
// the body's fields are not decoded.
package diag

import (
	"github.com/cespare/xxhash/v2"

	"github.com/YADRO-KNS/openpower-esel-parser/internal/bufdecoder"
	"github.com/YADRO-KNS/openpower-esel-parser/paramcol"
	"github.com/YADRO-KNS/openpower-esel-parser/plugin"
)

// ComponentID is the diagnostic-tuple component's registry key.
const ComponentID plugin.ComponentID = 0x4441 // "DA", folded "DIAG"

func init() {
	plugin.RegisterName(ComponentID, "diag")
	plugin.Register(ComponentID, parse)
}

// tupleHeaderSize is the fixed 8-byte checksum prefix; the body is
// whatever bytes remain.
const tupleHeaderSize = 8

func parse(collector paramcol.Collector, data []byte, version, subtype uint8) bool {
	if len(data) < tupleHeaderSize {
		return false
	}
	d := bufdecoder.New(data)
	checksum := d.U64()
	body := data[tupleHeaderSize:]

	valid := xxhash.Sum64(body) == checksum
	collector.EmitNumberU64("Checksum", "0x16", checksum)
	collector.EmitBool("Checksum valid", valid)
	if len(body) > 0 {
		collector.EmitHexDump(body)
	}
	return true
}
