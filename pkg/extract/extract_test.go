package extract

import (
	"bytes"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePDF(t *testing.T, pageTexts []string) []byte {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for _, text := range pageTexts {
		doc.AddPage()
		doc.Cell(40, 10, text)
	}
	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

func TestPagesExtractsEveryPageInOrder(t *testing.T) {
	data := samplePDF(t, []string{"alpha", "bravo", "charlie"})

	pages, err := NewPDFExtractor(nil).Pages("notes.pdf", data)
	require.NoError(t, err)
	require.Len(t, pages, 3)

	for i, page := range pages {
		assert.Equal(t, i+1, page.Number)
	}
	assert.Contains(t, pages[0].Text, "alpha")
	assert.Contains(t, pages[1].Text, "bravo")
	assert.Contains(t, pages[2].Text, "charlie")
}

func TestPagesRejectsNonPDFFilename(t *testing.T) {
	_, err := NewPDFExtractor(nil).Pages("notes.docx", []byte("whatever"))
	require.Error(t, err)
}

func TestPagesRejectsGarbagePayload(t *testing.T) {
	_, err := NewPDFExtractor(nil).Pages("notes.pdf", []byte("not a pdf at all"))
	require.Error(t, err)
}

func TestIsPDF(t *testing.T) {
	assert.True(t, IsPDF("a.pdf"))
	assert.True(t, IsPDF("A.PDF"))
	assert.False(t, IsPDF("a.pdf.exe"))
	assert.False(t, IsPDF("a"))
}
