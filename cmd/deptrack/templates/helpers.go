package templates

import (
	"strconv"
	"strings"
)

func hexDigest(d uint64) string {
	s := strconv.FormatUint(d, 16)
	return strings.Repeat("0", 16-len(s)) + s
}

// indentLines prefixes every non-empty line of s and makes sure the result
// ends with a newline.
func indentLines(prefix, s string) string {
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		if line != "" {
			sb.WriteString(prefix)
			sb.WriteString(line)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
