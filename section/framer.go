package section

import (
	"github.com/YADRO-KNS/openpower-esel-parser/eselerr"
	"github.com/YADRO-KNS/openpower-esel-parser/plugin"
)

// Frame parses a single section from the start of data: it reads and
// validates the 8-byte header, then dispatches by header.ID to the
// matching typed constructor. The returned Section owns its own copy
// of the payload, decoupled from the lifetime of data.
//
// Frame does not consume data beyond header.Length; callers advance
// their own cursor by Header().Length to reach the next section.
func Frame(data []byte) (Section, error) {
	if len(data) <= HeaderSize {
		return nil, eselerr.Newf("input buffer (%d bytes) is smaller than header size (%d)", len(data), HeaderSize)
	}

	header := Header{
		ID:        ID(be16(data[0:2])),
		Length:    be16(data[2:4]),
		Version:   data[4],
		Subtype:   data[5],
		Component: plugin.ComponentID(be16(data[6:8])),
	}

	if header.Length <= HeaderSize {
		return nil, eselerr.Newf("section length (%d) is too small", header.Length)
	}
	if int(header.Length) > len(data) {
		return nil, eselerr.Newf("section length (%d) is bigger than buffer size (%d)", header.Length, len(data))
	}

	payload := make([]byte, int(header.Length)-HeaderSize)
	copy(payload, data[HeaderSize:header.Length])

	switch header.ID {
	case IDPH:
		return newPH(header, payload)
	case IDPS:
		return newPS(header, payload)
	case IDUH:
		return newUH(header, payload)
	case IDUD:
		return newUD(header, payload)
	default:
		return newGeneric(header, payload), nil
	}
}

func be16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}
