package section

import (
	"github.com/YADRO-KNS/openpower-esel-parser/eselerr"
	"github.com/YADRO-KNS/openpower-esel-parser/internal/bufdecoder"
	"github.com/YADRO-KNS/openpower-esel-parser/ltables"
	"github.com/YADRO-KNS/openpower-esel-parser/param"
)

// PHDataSize is the fixed wire size of a Private Header payload.
const PHDataSize = 40

// PHData is the unflattened Private Header payload.
type PHData struct {
	CreateTimestamp uint64 // TB register format
	CommitTimestamp uint64 // TB register format
	SubsystemID     uint8
	SectionCount    uint8 // authoritative: the framer uses this to bound the outer loop
	CreatorSubIDHi  uint32
	CreatorSubIDLo  uint32
	PlatformID      uint32
	LogEntryID      uint32
}

// PH is the Private Header section: always the first section of a
// successfully parsed Event.
type PH struct {
	base
	data PHData
}

// Name returns "Private header".
func (*PH) Name() string { return "Private header" }

// Data returns the unflattened Private Header fields.
func (p *PH) Data() PHData { return p.data }

func newPH(header Header, payload []byte) (*PH, error) {
	if len(payload) != PHDataSize {
		return nil, eselerr.Newf("incompatible section payload size: %d bytes, expected %d", len(payload), PHDataSize)
	}

	d := bufdecoder.New(payload)
	var data PHData
	data.CreateTimestamp = d.U64()
	data.CommitTimestamp = d.U64()
	data.SubsystemID = d.U8()
	d.Skip(2) // reserved0
	data.SectionCount = d.U8()
	d.Skip(4) // reserved1
	data.CreatorSubIDHi = d.U32()
	data.CreatorSubIDLo = d.U32()
	data.PlatformID = d.U32()
	data.LogEntryID = d.U32()

	var params param.Params
	params = params.Append(
		param.NewNumeric("Create timestamp", data.CreateTimestamp, 8),
		param.NewNumeric("Commit timestamp", data.CommitTimestamp, 8),
		param.NewString("Creator subsystem", ltables.CreatorSubSys.Get(data.SubsystemID)),
		param.NewNumeric("Section count", uint64(data.SectionCount), 1),
		param.NewNumeric("Creator ID Lo", uint64(data.CreatorSubIDLo), 4),
		param.NewNumeric("Creator ID Hi", uint64(data.CreatorSubIDHi), 4),
		param.NewNumeric("Platform log ID", uint64(data.PlatformID), 4),
		param.NewNumeric("Log entry ID", uint64(data.LogEntryID), 4),
	)

	return &PH{base: base{header: header, payload: payload, params: params}, data: data}, nil
}

var _ Section = (*PH)(nil)
