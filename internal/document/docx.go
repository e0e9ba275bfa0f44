package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// extractDOCX reads the package's document body, ignoring styling. The DOCX
// reader exposes no page count, so PageCount is reported as 1; DOCX text is
// never routed to OCR.
func extractDOCX(data []byte) (ExtractionResult, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ExtractionResult{}, fmt.Errorf("%w: opening package: %v", ErrDocxRead, err)
	}

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return ExtractionResult{}, fmt.Errorf("%w: word/document.xml not found", ErrDocxRead)
	}

	rc, err := docFile.Open()
	if err != nil {
		return ExtractionResult{}, fmt.Errorf("%w: opening document.xml: %v", ErrDocxRead, err)
	}
	defer func() { _ = rc.Close() }()

	text, err := docxBodyText(rc)
	if err != nil {
		return ExtractionResult{}, fmt.Errorf("%w: parsing document.xml: %v", ErrDocxRead, err)
	}

	return ExtractionResult{Text: text, PageCount: 1}, nil
}

// docxBodyText streams the WordprocessingML body, collecting run text (w:t)
// and emitting newlines at paragraph ends and explicit breaks (w:br, w:cr).
func docxBodyText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var sb strings.Builder
	inText := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "t":
				inText = true
			case "br", "cr":
				sb.WriteString("\n")
			case "tab":
				sb.WriteString("\t")
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(el)
			}
		}
	}

	return strings.TrimRight(sb.String(), "\n"), nil
}
