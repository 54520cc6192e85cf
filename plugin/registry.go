// Package plugin holds the process-wide, component-indexed decoder
// registries the section framer dispatches User-Defined-Data (UDD)
// and Primary-Reference-Code (PSRC) payloads through. Registration is
// the only way to extend the decoding engine: the core never ships
// hard-coded decoders for specific components.
//
// Registration and deregistration must happen before the first call
// to event.Parse; during parsing the registries are read-only and may
// be consulted safely by concurrent parses of different events.
package plugin

import (
	"fmt"
	"sync"

	"github.com/YADRO-KNS/openpower-esel-parser/paramcol"
)

// ComponentID is the 16-bit id of the firmware component that
// produced a section, and the dispatch key for both registries.
type ComponentID uint16

// SRCDescriptor exposes the primary and third extended reference code
// words a PSRC plugin needs.
type SRCDescriptor struct {
	PrimaryRefCode uint32
	ExtRefCode3    uint32
}

// ModuleID returns the module id encoded in the third extended
// reference code word (valid only for FipS-format SRCs).
func (s SRCDescriptor) ModuleID() uint8 {
	return uint8((s.ExtRefCode3 >> 8) & 0xff)
}

// ReasonCode returns the reason code encoded in the low 16 bits of the
// primary reference code (valid only for FipS-format SRCs).
func (s SRCDescriptor) ReasonCode() uint16 {
	return uint16(s.PrimaryRefCode & 0xffff)
}

// UDDFunc decodes a User-Defined-Data payload into collector. It must
// return true iff it produced a meaningful rendering; on false the
// caller falls back to a hex dump of the payload.
type UDDFunc func(collector paramcol.Collector, data []byte, version, subtype uint8) bool

// PSRCFunc decodes a Primary Reference Code's source description into
// collector. It must return true iff it produced a meaningful
// rendering.
type PSRCFunc func(collector paramcol.Collector, src SRCDescriptor) bool

var (
	mu        sync.RWMutex
	uddTable  = map[ComponentID]UDDFunc{}
	psrcTable = map[ComponentID]PSRCFunc{}
	nameTable = map[ComponentID]string{}
)

// Register inserts or replaces the UDD decoder for id; last write
// wins.
func Register(id ComponentID, fn UDDFunc) {
	mu.Lock()
	defer mu.Unlock()
	uddTable[id] = fn
}

// Unregister removes the UDD decoder for id, if present.
func Unregister(id ComponentID) {
	mu.Lock()
	defer mu.Unlock()
	delete(uddTable, id)
}

// Lookup returns the UDD decoder registered for id, if any.
func Lookup(id ComponentID) (UDDFunc, bool) {
	mu.RLock()
	defer mu.RUnlock()
	fn, ok := uddTable[id]
	return fn, ok
}

// RegisterSRC inserts or replaces the PSRC decoder for id; last write
// wins.
func RegisterSRC(id ComponentID, fn PSRCFunc) {
	mu.Lock()
	defer mu.Unlock()
	psrcTable[id] = fn
}

// UnregisterSRC removes the PSRC decoder for id, if present.
func UnregisterSRC(id ComponentID) {
	mu.Lock()
	defer mu.Unlock()
	delete(psrcTable, id)
}

// LookupSRC returns the PSRC decoder registered for id, if any.
func LookupSRC(id ComponentID) (PSRCFunc, bool) {
	mu.RLock()
	defer mu.RUnlock()
	fn, ok := psrcTable[id]
	return fn, ok
}

// RegisterName sets the display name for a component id, consulted by
// ComponentName and by the section framer's header params.
func RegisterName(id ComponentID, name string) {
	mu.Lock()
	defer mu.Unlock()
	nameTable[id] = name
}

// UnregisterName removes a previously registered display name.
func UnregisterName(id ComponentID) {
	mu.Lock()
	defer mu.Unlock()
	delete(nameTable, id)
}

// ComponentName returns the display name for id, or the canonical
// "Undefined [0xXXXX]" if none was registered.
func ComponentName(id ComponentID) string {
	mu.RLock()
	defer mu.RUnlock()
	if name, ok := nameTable[id]; ok {
		return name
	}
	return fmt.Sprintf("Undefined [0x%04x]", uint16(id))
}

// ParseUserDefined looks up the UDD plugin for component and invokes
// it, returning the plugin's result or false if no plugin is
// registered. This is the core's only entry point into UDD plugin
// dispatch.
func ParseUserDefined(collector paramcol.Collector, component ComponentID, subtype, version uint8, data []byte) bool {
	fn, ok := Lookup(component)
	if !ok {
		return false
	}
	return fn(collector, data, version, subtype)
}

// GetSourceDescription extracts the component id from bits 8-15 of
// primaryRefCode (primaryRefCode & 0xff00), looks up the PSRC plugin,
// and invokes it.
func GetSourceDescription(collector paramcol.Collector, primaryRefCode, extRefCode3 uint32) bool {
	id := ComponentID(primaryRefCode & 0xff00)
	fn, ok := LookupSRC(id)
	if !ok {
		return false
	}
	return fn(collector, SRCDescriptor{PrimaryRefCode: primaryRefCode, ExtRefCode3: extRefCode3})
}
