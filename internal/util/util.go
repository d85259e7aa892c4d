// Package util holds small formatting helpers shared across layers.
package util

import "fmt"

// FormatBytes renders a byte count in human readable form, e.g. "2.4 MB".
// Used for upload-size log fields.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	const units = "KMGTPEZY"

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
