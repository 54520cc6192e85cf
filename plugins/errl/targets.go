package errl

import (
	"strings"

	"github.com/YADRO-KNS/openpower-esel-parser/internal/bufdecoder"
	"github.com/YADRO-KNS/openpower-esel-parser/paramcol"
)

const targetLabelSize = 12

// parseTargets decodes a target attribute dump header: a 4-byte
// magic, a fixed 12-byte ASCII label ("Targdt: <type>"), 12 reserved
// bytes, and a big-endian HUID. The attribute list that follows is a
// HostBoot MRW-attribute TLV stream whose id/enum tables are not part
// of this corpus, so it is surfaced as a hex dump rather than guessed
// at.
func parseTargets(collector paramcol.Collector, data []byte) bool {
	const fixedSize = 4 + targetLabelSize + 12 + 4
	if len(data) < fixedSize {
		return false
	}

	d := bufdecoder.New(data)
	d.Skip(4) // magic

	label := make([]byte, targetLabelSize)
	d.Bytes(label)
	heading := strings.TrimRight(string(label), "\x00 ")

	d.Skip(12) // reserved
	huid := d.U32()

	collector.EmitHeading(heading)
	collector.EmitNumberU64("HUID", "0x%08x", uint64(huid))

	if rest := data[fixedSize:]; len(rest) > 0 {
		collector.EmitHexDump(rest)
	}
	return true
}
