package paramcol

import (
	"fmt"
	"strings"
)

const (
	bytesPerRow  = 16
	groupSize    = 4
	hexPaneWidth = bytesPerRow*2 + bytesPerRow + bytesPerRow/groupSize
)

// HexDump renders data as a canonical, idempotent hex dump: 16 bytes
// per row, each byte as two lowercase hex digits separated by a
// space, with an extra space before every 4-byte group boundary. Each
// row is prefixed by a 4-hex-digit byte offset and ":   ", padded to a
// fixed hex-pane width, then a single space and a 16-character ASCII
// pane where non-printable bytes show as '.'. Rows are newline
// separated with no trailing newline.
func HexDump(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	var out strings.Builder
	rows := (len(data) + bytesPerRow - 1) / bytesPerRow
	for row := 0; row < rows; row++ {
		if row > 0 {
			out.WriteByte('\n')
		}
		start := row * bytesPerRow
		end := start + bytesPerRow
		if end > len(data) {
			end = len(data)
		}

		var hex strings.Builder
		var ascii strings.Builder
		for pos := start; pos < end; pos++ {
			if pos != start && (pos-start)%groupSize == 0 {
				hex.WriteByte(' ')
			}
			fmt.Fprintf(&hex, "%02x ", data[pos])
			if isPrintableASCII(data[pos]) {
				ascii.WriteByte(data[pos])
			} else {
				ascii.WriteByte('.')
			}
		}

		fmt.Fprintf(&out, "%04x:   ", start)
		hexStr := hex.String()
		if len(hexStr) < hexPaneWidth {
			hexStr += strings.Repeat(" ", hexPaneWidth-len(hexStr))
		}
		out.WriteString(hexStr)
		out.WriteByte(' ')
		out.WriteString(ascii.String())
	}
	return out.String()
}

func isPrintableASCII(b byte) bool {
	return b >= 0x20 && b < 0x7f
}
