// Package bytefmt renders byte counts the way the host engine's
// diagnostics expect them: integer-truncated kilobytes or megabytes,
// no rounding, no fractional part.
package bytefmt

import "strconv"

const kilobyte = 1024

// Format renders n as "<mib>M" when n exceeds one mebibyte, otherwise
// "<kib>K". The comparison is strictly greater-than: exactly 1 MiB
// formats as "1024K". Division truncates.
func Format(n uint64) string {
	if n > kilobyte*kilobyte {
		return strconv.FormatUint(n/kilobyte/kilobyte, 10) + "M"
	}
	return strconv.FormatUint(n/kilobyte, 10) + "K"
}
