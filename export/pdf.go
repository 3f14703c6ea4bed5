package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Section is one titled block of report content.
type Section struct {
	Heading string
	Body    string
}

// PDFRenderer turns a title plus ordered sections into PDF bytes.
type PDFRenderer interface {
	Render(title string, sections []Section) ([]byte, error)
}

// FPDFRenderer renders reports with gofpdf: A4 portrait, 50pt margins,
// centered 16pt title, 11pt body.
type FPDFRenderer struct{}

// NewFPDFRenderer creates a PDF renderer.
func NewFPDFRenderer() *FPDFRenderer {
	return &FPDFRenderer{}
}

// Render produces the PDF in memory. Text is transliterated to the core
// font codepage, so accented Portuguese survives; characters outside it
// (emoji) degrade to blanks.
func (r *FPDFRenderer) Render(title string, sections []Section) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(50, 50, 50)
	pdf.SetAutoPageBreak(true, 50)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 20, tr(title), "", "C", false)
	pdf.Ln(12)

	for _, s := range sections {
		if s.Heading != "" {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.MultiCell(0, 16, tr(s.Heading), "", "L", false)
		}
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 14, tr(s.Body), "", "L", false)
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}
