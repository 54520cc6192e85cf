package errl

import (
	"bytes"

	"github.com/YADRO-KNS/openpower-esel-parser/paramcol"
)

// parseStrings decodes a NUL-separated ASCII string table: the
// payload is a flat run of C strings, each terminated by 0x00, with
// trailing padding NULs ignored.
func parseStrings(collector paramcol.Collector, data []byte) bool {
	for _, chunk := range bytes.Split(data, []byte{0x00}) {
		if len(chunk) == 0 {
			continue
		}
		collector.EmitString("String data", string(chunk))
	}
	return true
}
