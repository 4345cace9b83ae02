package extract

import (
	"bytes"
	"path/filepath"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	appErrors "github.com/studybuddy-app/classroom-api/pkg/errors"
)

const observeTarget = "pdf_extract"

// Page is one page of extracted text. Numbers start at 1 and follow the
// page order of the source document.
type Page struct {
	Number int    `json:"page"`
	Text   string `json:"page_content"`
}

// Extractor produces the ordered page-text structure for a PDF payload.
type Extractor interface {
	Pages(filename string, data []byte) ([]Page, error)
}

// Observer records the duration of extraction work.
type Observer interface {
	ObserveUpstream(target string, duration time.Duration)
}

// PDFExtractor reads PDF bytes directly, no external process involved.
type PDFExtractor struct {
	observer Observer
}

// NewPDFExtractor returns the default extractor. A nil observer disables
// instrumentation.
func NewPDFExtractor(observer Observer) PDFExtractor {
	return PDFExtractor{observer: observer}
}

// Pages rejects non-PDF filenames before touching the payload, then walks
// the document page by page. Pages that yield no text are skipped, matching
// how downstream prompts treat empty pages as noise.
func (e PDFExtractor) Pages(filename string, data []byte) ([]Page, error) {
	if !IsPDF(filename) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "only PDF files are accepted")
	}

	start := time.Now()
	defer func() {
		if e.observer != nil {
			e.observer.ObserveUpstream(observeTarget, time.Since(start))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "file is not a readable PDF")
	}

	total := reader.NumPage()
	pages := make([]Page, 0, total)
	for num := 1; num <= total; num++ {
		page := reader.Page(num)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, Page{Number: num, Text: text})
	}

	return pages, nil
}

// IsPDF reports whether the declared filename has a .pdf extension.
func IsPDF(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".pdf")
}
