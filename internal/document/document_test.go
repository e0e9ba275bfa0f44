package document

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat_AcceptedTags(t *testing.T) {
	f, err := ParseFormat("pdf")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	f, err = ParseFormat("application/pdf")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	f, err = ParseFormat("DOCX")
	require.NoError(t, err)
	assert.Equal(t, FormatDOCX, f)

	f, err = ParseFormat("application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	require.NoError(t, err)
	assert.Equal(t, FormatDOCX, f)
}

func TestParseFormat_Rejected(t *testing.T) {
	for _, tag := range []string{"", "txt", "doc", "image/png", "application/msword"} {
		_, err := ParseFormat(tag)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, "tag %q", tag)
	}
}

func TestExtract_UnknownFormat(t *testing.T) {
	_, err := Extract(SourceDocument{Data: []byte("x"), Format: Format("txt")})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtract_CorruptPDF(t *testing.T) {
	_, err := Extract(SourceDocument{Data: []byte("not a pdf at all"), Format: FormatPDF})
	assert.ErrorIs(t, err, ErrCorrupt)
}

// makeDocx builds a minimal DOCX package in memory.
func makeDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	f, err := w.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(`<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`))
	require.NoError(t, err)

	f, err = w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)

	require.NoError(t, w.Close())
	return buf.Bytes()
}

const docxBody = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Senior Backend</w:t></w:r><w:r><w:t xml:space="preserve"> Engineer</w:t></w:r></w:p>
    <w:p><w:r><w:t>First line</w:t><w:br/><w:t>Second line</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestExtract_DocxBodyText(t *testing.T) {
	data := makeDocx(t, docxBody)

	res, err := Extract(SourceDocument{Data: data, Format: FormatDOCX})
	require.NoError(t, err)

	assert.Contains(t, res.Text, "Jane Doe")
	assert.Contains(t, res.Text, "Senior Backend Engineer")
	assert.Contains(t, res.Text, "First line\nSecond line")
	assert.Equal(t, 1, res.PageCount)
}

func TestExtract_DocxIgnoresStyling(t *testing.T) {
	const styled = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:rPr><w:b/></w:rPr><w:t>Bold heading</w:t></w:r></w:p>
  </w:body>
</w:document>`
	res, err := Extract(SourceDocument{Data: makeDocx(t, styled), Format: FormatDOCX})
	require.NoError(t, err)
	assert.Equal(t, "Bold heading", res.Text)
}

func TestExtract_DocxCorruptPackage(t *testing.T) {
	_, err := Extract(SourceDocument{Data: []byte("definitely not a zip"), Format: FormatDOCX})
	assert.ErrorIs(t, err, ErrDocxRead)
}

func TestExtract_DocxMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = Extract(SourceDocument{Data: buf.Bytes(), Format: FormatDOCX})
	assert.ErrorIs(t, err, ErrDocxRead)
}
