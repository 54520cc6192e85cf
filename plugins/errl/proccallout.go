package errl

import (
	"fmt"

	"github.com/YADRO-KNS/openpower-esel-parser/internal/bufdecoder"
	"github.com/YADRO-KNS/openpower-esel-parser/paramcol"
)

// Callout type discriminant (first payload byte).
const (
	calloutTypeHardware  = 0x01
	calloutTypeProcedure = 0x02
)

// procedureNames and priorityNames are tiny host-supplied seed tables:
// HostBoot's procedure/priority enums live in headers outside this
// corpus, so only the values this package's own fixtures exercise are
// named; everything else falls back to the generic "Unknown (0x...)"
// form, mirroring ltables.Table.Get.
var procedureNames = map[uint32]string{
	0x00000055: "EPUB_PRC_HB_CODE",
}

var priorityNames = map[uint32]string{
	0x0003064c: "SRCI_PRIORITY_HIGH",
}

func lookup32(table map[uint32]string, key uint32) string {
	if name, ok := table[key]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (0x%08x)", key)
}

// parseCallout decodes a procedure- or hardware-callout record: the
// first payload byte discriminates the two shapes HostBoot's errl
// callout writer emits. The deconfig-state/GARD-error-type/target-path
// fields a hardware callout also carries belong to MRW tables outside
// this corpus and are not decoded here.
func parseCallout(collector paramcol.Collector, data []byte) bool {
	if len(data) < 1 {
		return false
	}
	switch data[0] {
	case calloutTypeProcedure:
		return parseProcedureCallout(collector, data)
	case calloutTypeHardware:
		return parseHardwareCallout(collector, data)
	default:
		return false
	}
}

// parseProcedureCallout reads: 1-byte type tag, 3-byte "TAK" magic,
// 4-byte reserved, 4-byte procedure id, 4-byte priority id.
func parseProcedureCallout(collector paramcol.Collector, data []byte) bool {
	if len(data) < 16 {
		return false
	}
	d := bufdecoder.New(data[1:])
	d.Skip(3) // "TAK" magic tag
	d.Skip(4) // reserved
	procedure := d.U32()
	priority := d.U32()

	collector.EmitString("Callout type", "Procedure Callout")
	collector.EmitString("Procedure", lookup32(procedureNames, procedure))
	collector.EmitString("Priority", lookup32(priorityNames, priority))
	return true
}

// parseHardwareCallout reads: 1-byte type tag, 3-byte "TAK" magic,
// 4-byte reserved, 8-byte target-path placeholder (the path string
// itself is MRW/symbol-table data out of scope here), 3-byte padding,
// 1-byte CPU id. Remaining bytes carry deconfig-state/GARD-error-type/
// priority fields this illustrative decoder does not interpret.
func parseHardwareCallout(collector paramcol.Collector, data []byte) bool {
	if len(data) < 20 {
		return false
	}
	d := bufdecoder.New(data[1:])
	d.Skip(3) // "TAK" magic tag
	d.Skip(4) // reserved
	d.Skip(8) // target-path placeholder
	d.Skip(3) // padding
	cpuID := d.U8()

	collector.EmitString("Callout type", "Hardware Callout")
	collector.EmitString("CPU id", fmt.Sprintf("0x%02x", cpuID))
	return true
}
