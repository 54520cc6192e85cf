package section

import (
	"github.com/YADRO-KNS/openpower-esel-parser/eselerr"
	"github.com/YADRO-KNS/openpower-esel-parser/internal/bufdecoder"
	"github.com/YADRO-KNS/openpower-esel-parser/ltables"
	"github.com/YADRO-KNS/openpower-esel-parser/param"
)

// UHDataSize is the fixed wire size of a User Header payload.
const UHDataSize = 16

// UHData is the unflattened User Header payload.
type UHData struct {
	SubsystemID    uint8
	EventData      uint8 // low nibble is the event scope
	EventSeverity  uint8
	EventType      uint8
	ProblemDomain  uint8
	ProblemVector  uint8
	Action         uint16
}

// UH is the User Header section.
type UH struct {
	base
	data UHData
}

// Name returns "User Header".
func (*UH) Name() string { return "User Header" }

// Data returns the unflattened User Header fields.
func (u *UH) Data() UHData { return u.data }

func newUH(header Header, payload []byte) (*UH, error) {
	if len(payload) != UHDataSize {
		return nil, eselerr.Newf("incompatible section payload size: %d bytes, expected %d", len(payload), UHDataSize)
	}

	d := bufdecoder.New(payload)
	var data UHData
	data.SubsystemID = d.U8()
	data.EventData = d.U8()
	data.EventSeverity = d.U8()
	data.EventType = d.U8()
	d.Skip(4) // reserved0
	data.ProblemDomain = d.U8()
	data.ProblemVector = d.U8()
	data.Action = d.U16()
	// reserved1 (4 bytes) is trailing and need not be consumed

	var params param.Params
	params = params.Append(
		param.NewString("Subsystem", ltables.SubsystemName.Get(data.SubsystemID)),
		param.NewString("Event severity", ltables.EventSeverity.Get(data.EventSeverity)),
		param.NewString("Event type", ltables.EventType.Get(data.EventType)),
		param.NewString("Event scope", ltables.EventScope.Get(data.EventData&0x0f)),
		param.NewNumeric("Problem domain", uint64(data.ProblemDomain), 1),
		param.NewNumeric("Problem vector", uint64(data.ProblemVector), 1),
		param.NewNumeric("Action", uint64(data.Action), 2),
	)

	return &UH{base: base{header: header, payload: payload, params: params}, data: data}, nil
}

var _ Section = (*UH)(nil)
