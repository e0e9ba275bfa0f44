package document

import "strings"

// ScanWordThreshold is the word count below which a paged document is treated
// as an image-only scan. A real text layer yields at least tens of words per
// page; a near-empty layer on a paged document indicates scanned images.
// Tunable constant, not a derived value.
const ScanWordThreshold = 50

// IsScanned classifies an extraction result as image-scanned. Only PDF
// documents are ever scan-classified; DOCX text is used as-is.
func IsScanned(res ExtractionResult, format Format) bool {
	if format != FormatPDF {
		return false
	}
	if res.PageCount == 0 {
		return false
	}
	return len(strings.Fields(res.Text)) < ScanWordThreshold
}
