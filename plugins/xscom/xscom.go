// Package xscom registers an illustrative Primary Reference Code (PSRC)
// source-description plugin for XSCOM access errors, matching the
// "xscom" component fixture exercised by original_source's parser
// tests (dispatch component 0x0400, primary reference code
// 0xbc810406).
package xscom

import (
	"fmt"

	"github.com/YADRO-KNS/openpower-esel-parser/paramcol"
	"github.com/YADRO-KNS/openpower-esel-parser/plugin"
)

// ComponentID is the XSCOM component's registry key: bits 8-15 of the
// primary reference code (the same mask the Primary System Reference
// Code section's "Module ID" field is resolved through).
const ComponentID plugin.ComponentID = 0x0400

func init() {
	plugin.RegisterName(ComponentID, "xscom")
	plugin.RegisterSRC(ComponentID, describe)
}

// moduleNames and reasonNames are host-supplied seed tables: XSCOM's
// module/reason enums live in hostboot headers outside this corpus,
// so only the values exercised by this package's own fixtures are
// named.
var moduleNames = map[uint8]string{
	0x08: "XSCOM_RT_DO_OP",
}

var reasonNames = map[uint16]string{
	0x0406: "XSCOM_RUNTIME_ERR",
}

func describe(collector paramcol.Collector, src plugin.SRCDescriptor) bool {
	collector.EmitString("Description", "XSCOM access error")
	collector.EmitString("Module ID", lookupModule(src.ModuleID()))
	collector.EmitString("Reason code", lookupReason(src.ReasonCode()))
	return true
}

func lookupModule(id uint8) string {
	if name, ok := moduleNames[id]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (0x%02x)", id)
}

func lookupReason(code uint16) string {
	if name, ok := reasonNames[code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (0x%04x)", code)
}
