// Package preview classifies uploaded print files for best-effort display.
// Detection is by filename extension only; content is never inspected.
package preview

import (
	"path/filepath"
	"strings"
)

// Type is the rendering strategy a dashboard should pick for a file.
type Type string

const (
	TypeImage       Type = "image"
	TypePDF         Type = "pdf"
	TypeText        Type = "text"
	TypeDocument    Type = "document"
	TypeSpreadsheet Type = "spreadsheet"
	// TypeOther means no inline preview; offer opening the file externally.
	TypeOther Type = "other"
)

//nolint:gochecknoglobals // static lookup table
var extensions = map[string]Type{
	".png":  TypeImage,
	".jpg":  TypeImage,
	".jpeg": TypeImage,
	".gif":  TypeImage,
	".webp": TypeImage,
	".bmp":  TypeImage,

	".pdf": TypePDF,

	".txt": TypeText,
	".md":  TypeText,
	".csv": TypeText,
	".log": TypeText,

	".doc":  TypeDocument,
	".docx": TypeDocument,
	".odt":  TypeDocument,
	".rtf":  TypeDocument,

	".xls":  TypeSpreadsheet,
	".xlsx": TypeSpreadsheet,
	".ods":  TypeSpreadsheet,
}

// Detect maps a file name to its preview type. Unknown or missing
// extensions fall back to TypeOther.
func Detect(fileName string) Type {
	ext := strings.ToLower(filepath.Ext(fileName))
	if t, ok := extensions[ext]; ok {
		return t
	}

	return TypeOther
}
