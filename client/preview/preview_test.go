package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		fileName string
		want     Type
	}{
		{"thesis.pdf", TypePDF},
		{"photo.JPG", TypeImage},
		{"scan.jpeg", TypeImage},
		{"notes.txt", TypeText},
		{"report.docx", TypeDocument},
		{"budget.xlsx", TypeSpreadsheet},
		{"archive.zip", TypeOther},
		{"no-extension", TypeOther},
		{"", TypeOther},
		{"weird.name.with.dots.png", TypeImage},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.fileName))
		})
	}
}
