package section

import (
	"github.com/YADRO-KNS/openpower-esel-parser/paramcol"
	"github.com/YADRO-KNS/openpower-esel-parser/plugin"
)

// UD is the User-Defined Data section: its payload has no fixed
// layout and is delegated to the UDD plugin registry keyed by
// component id.
type UD struct {
	base
}

// Name returns "User Defined Data".
func (*UD) Name() string { return "User Defined Data" }

func newUD(header Header, payload []byte) (*UD, error) {
	collector := paramcol.NewBuffer()
	ok := plugin.ParseUserDefined(collector, header.Component, header.Subtype, header.Version, payload)
	if !ok {
		collector.EmitHexDump(payload)
	}
	return &UD{base{header: header, payload: payload, params: collector.Params}}, nil
}

var _ Section = (*UD)(nil)
