package section

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/YADRO-KNS/openpower-esel-parser/eselerr"
	"github.com/YADRO-KNS/openpower-esel-parser/internal/bufdecoder"
	"github.com/YADRO-KNS/openpower-esel-parser/param"
	"github.com/YADRO-KNS/openpower-esel-parser/paramcol"
	"github.com/YADRO-KNS/openpower-esel-parser/plugin"
)

// PSDataSize is the fixed wire size of a Primary System Reference Code
// payload.
const PSDataSize = 72

// PSData is the unflattened Primary System Reference Code payload.
type PSData struct {
	Version        uint8
	Flags          uint8
	WordCount      uint8
	SRCLength      uint16
	ExtRefCode     [8]uint32 // words 2..9
	PrimaryRefCode [32]byte  // space-padded ASCII hex digits
}

// PS is the Primary System Reference Code section.
type PS struct {
	base
	data PSData
}

// Name returns "Primary System Reference Code".
func (*PS) Name() string { return "Primary System Reference Code" }

// Data returns the unflattened PSRC fields.
func (p *PS) Data() PSData { return p.data }

func newPS(header Header, payload []byte) (*PS, error) {
	if len(payload) != PSDataSize {
		return nil, eselerr.Newf("incompatible section payload size: %d bytes, expected %d", len(payload), PSDataSize)
	}

	d := bufdecoder.New(payload)
	var data PSData
	data.Version = d.U8()
	data.Flags = d.U8()
	d.Skip(1) // reserved0
	data.WordCount = d.U8()
	d.Skip(2) // reserved1
	data.SRCLength = d.U16()
	for i := range data.ExtRefCode {
		data.ExtRefCode[i] = d.U32()
	}
	d.Bytes(data.PrimaryRefCode[:])

	collector := paramcol.NewBuffer()
	rcText := string(data.PrimaryRefCode[:])
	rcNum, err := strconv.ParseUint(strings.TrimSpace(rcText), 16, 32)
	if err != nil {
		collector.Params = collector.Params.Append(param.NewString("Reference code", rcText))
	} else {
		componentID := plugin.ComponentID(uint32(rcNum) & 0xff00)
		collector.Params = collector.Params.Append(
			param.NewString("Module ID", plugin.ComponentName(componentID)),
			param.NewNumeric("Reference code", rcNum, 4),
		)
	}

	collector.Params = collector.Params.Append(
		param.NewNumeric("Flags", uint64(data.Flags), 1),
		param.NewNumeric("Valid word count", uint64(data.WordCount), 1),
		param.NewString("Words 2-5", hexWords(data.ExtRefCode[0:4])),
		param.NewString("Words 6-9", hexWords(data.ExtRefCode[4:8])),
	)

	if err == nil && rcNum != 0 {
		plugin.GetSourceDescription(collector, uint32(rcNum), data.ExtRefCode[1])
	}

	return &PS{base: base{header: header, payload: payload, params: collector.Params}, data: data}, nil
}

func hexWords(words []uint32) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = fmt.Sprintf("%08x", w)
	}
	return strings.Join(parts, " ")
}

var _ Section = (*PS)(nil)
