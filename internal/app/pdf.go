package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/hyperifyio/lawextract/internal/extract"
)

const pdfFamily = "law"

// writeArticlesPDF renders an article set to a simple A4 PDF. Core PDF fonts
// cannot encode Cyrillic, so a UTF-8 TrueType font file is required.
func writeArticlesPDF(set extract.ArticleSet, fontPath, outPath string) error {
	if strings.TrimSpace(fontPath) == "" {
		return errors.New("pdf: no font configured")
	}
	// gofpdf joins file names onto its font directory, which breaks absolute
	// paths, so the font is loaded from bytes.
	font, err := os.ReadFile(fontPath)
	if err != nil {
		return fmt.Errorf("pdf: read font: %w", err)
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8FontFromBytes(pdfFamily, "", font)
	pdf.AddUTF8FontFromBytes(pdfFamily, "B", font)
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("pdf: load font: %w", err)
	}
	pdf.SetTitle(set.Source, true)
	pdf.AddPage()

	pdf.SetFont(pdfFamily, "B", 14)
	pdf.CellFormat(0, 8, set.Source, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, id := range set.Articles.IDs() {
		text, _ := set.Articles.Get(id)
		head, body, _ := strings.Cut(text, "\n")
		pdf.SetFont(pdfFamily, "B", 12)
		pdf.MultiCell(0, 6, head, "", "L", false)
		if body != "" {
			pdf.SetFont(pdfFamily, "", 11)
			pdf.MultiCell(0, 5, body, "", "L", false)
		}
		pdf.Ln(3)
	}
	return pdf.OutputFileAndClose(outPath)
}
