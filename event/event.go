// Package event implements the top-level eSEL blob parser: optional
// SEL-record detection, the mandatory Private Header, and the
// section-count-driven loop over the remaining sections.
package event

import (
	"encoding/binary"

	"github.com/YADRO-KNS/openpower-esel-parser/eselerr"
	"github.com/YADRO-KNS/openpower-esel-parser/section"
	"github.com/YADRO-KNS/openpower-esel-parser/selrecord"
)

// Event is a fully parsed eSEL blob: an optional leading SEL record
// plus the ordered section list starting with the Private Header.
type Event struct {
	sel      selrecord.SelRecord
	hasSel   bool
	sections []section.Section
}

// SelRecord returns the leading IPMI SEL record and whether one was
// present.
func (e *Event) SelRecord() (selrecord.SelRecord, bool) {
	return e.sel, e.hasSel
}

// Sections returns the parsed sections in wire order, starting with
// the Private Header.
func (e *Event) Sections() []section.Section {
	return e.sections
}

// PrivateHeader returns the mandatory first section, already type
// asserted.
func (e *Event) PrivateHeader() *section.PH {
	return e.sections[0].(*section.PH)
}

// Parse decodes an eSEL blob: an optional 16-byte SEL record prefix,
// followed by a Private Header section, followed by
// PrivateHeader.Data().SectionCount-1 further sections.
//
// Parse returns a *eselerr.FormatError if data is too
// small, does not contain a Private Header where one is required, or
// is truncated mid-section.
func Parse(data []byte) (*Event, error) {
	if data == nil {
		return nil, eselerr.New("invalid input buffer")
	}
	if len(data) < section.HeaderSize+section.PHDataSize {
		return nil, eselerr.Newf("eSEL buffer too small: %d bytes", len(data))
	}

	ev := &Event{}
	cursor := 0

	if section.ID(binary.BigEndian.Uint16(data[0:2])) != section.IDPH {
		rec, err := selrecord.Parse(data)
		if err != nil {
			return nil, err
		}
		ev.sel = rec
		ev.hasSel = true
		cursor = selrecord.Size
	}

	if len(data) < cursor+section.HeaderSize+section.PHDataSize {
		return nil, eselerr.Newf("eSEL buffer too small: %d bytes", len(data))
	}
	if section.ID(binary.BigEndian.Uint16(data[cursor:cursor+2])) != section.IDPH {
		return nil, eselerr.New("Private Header section not found")
	}

	phSection, err := section.Frame(data[cursor:])
	if err != nil {
		return nil, err
	}
	ph, ok := phSection.(*section.PH)
	if !ok {
		return nil, eselerr.New("Private Header section not found")
	}
	ev.sections = append(ev.sections, ph)
	cursor += int(ph.Header().Length)

	sectionCount := int(ph.Data().SectionCount)
	for i := 1; i < sectionCount; i++ {
		if len(data) <= cursor || len(data)-cursor <= section.HeaderSize {
			return nil, eselerr.Newf("Unexpected buffer end at offset %d", cursor)
		}
		s, err := section.Frame(data[cursor:])
		if err != nil {
			return nil, err
		}
		ev.sections = append(ev.sections, s)
		cursor += int(s.Header().Length)
	}

	return ev, nil
}
