package service

import (
	"bytes"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const mediaTypePDF = "application/pdf"

var pdfMagic = []byte("%PDF")

// DetectMediaType sniffs the payslip bytes. Unknown content falls back to
// the PDF signature, then to the type declared at upload.
func DetectMediaType(data []byte, declared string) string {
	media := mimetype.Detect(data).String()
	if i := strings.IndexByte(media, ';'); i >= 0 {
		media = media[:i]
	}

	if media == "application/octet-stream" || media == "text/plain" {
		if bytes.HasPrefix(data, pdfMagic) {
			media = mediaTypePDF
		} else if declared != "" {
			media = declared
		}
	}

	if media == "image/jpg" {
		media = "image/jpeg"
	}
	return media
}
