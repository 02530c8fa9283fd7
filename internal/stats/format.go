package stats

import (
	"fmt"
	"math"
	"strconv"
)

const (
	kib = 1024
	mib = 1024 * kib
	gib = 1024 * mib
	tib = 1024 * gib
)

// FormatFileSize renders a byte count for display: bytes below 1 KB with at
// most two decimals, two decimals above.
func FormatFileSize(bytes float64) string {
	switch {
	case bytes == 0:
		return "0 B"
	case bytes < kib:
		return strconv.FormatFloat(math.Round(bytes*100)/100, 'f', -1, 64) + " B"
	case bytes < mib:
		return fmt.Sprintf("%.2f KB", bytes/kib)
	case bytes < gib:
		return fmt.Sprintf("%.2f MB", bytes/mib)
	case bytes < tib:
		return fmt.Sprintf("%.2f GB", bytes/gib)
	default:
		return fmt.Sprintf("%.2f TB", bytes/tib)
	}
}

// FormatBytes is FormatFileSize for whole byte counts.
func FormatBytes(bytes int64) string {
	return FormatFileSize(float64(bytes))
}
