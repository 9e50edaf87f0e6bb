package rs63

import (
	"fmt"
	"strings"
)

// Symbols are only 6 bits so there is no point in a character column.
// 21 symbols per line gives 3 lines for a full block.

const HEX_DUMP_WIDTH = 21

func hex_dump(p []byte) string {
	var sb strings.Builder
	var offset = 0

	for len(p) > 0 {
		var n = min(len(p), HEX_DUMP_WIDTH)

		fmt.Fprintf(&sb, "  %02d: ", offset)

		for i := 0; i < n; i++ {
			fmt.Fprintf(&sb, " %02x", p[i])
		}

		sb.WriteString("\n")

		p = p[n:]
		offset += n
	}

	return sb.String()
}
