package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{name: "zero", bytes: 0, want: "0 B"},
		{name: "under a kilobyte", bytes: 512, want: "512 B"},
		{name: "exact kilobyte", bytes: 1024, want: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, want: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, want: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, want: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.bytes))
		})
	}
}
