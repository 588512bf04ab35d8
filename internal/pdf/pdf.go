// Package pdf renders laid-out invoices with gofpdf.
//
// Output is reproducible: the same document and metadata always produce the
// same bytes. Text is set in the Helvetica core font, so characters outside
// Windows-1252 are translated or dropped.
package pdf

import (
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"invoicegen/internal/invoice"
	"invoicegen/internal/layout"
)

const fontFamily = "Helvetica"

// fallbackDate stamps documents whose invoice date is missing.
var fallbackDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Meta is the document information dictionary of an exported invoice.
type Meta struct {
	Title    string
	Subject  string
	Author   string
	Keywords string
	Creator  string
	Date     time.Time
}

// MetaFor derives the document properties of inv.
func MetaFor(inv *invoice.Invoice) Meta {
	date := inv.Date()
	if date.IsZero() {
		date = fallbackDate
	}
	return Meta{
		Title:    "Invoice " + inv.InvoiceNumber,
		Subject:  "Invoice",
		Author:   inv.FromName,
		Keywords: "invoice, payment",
		Creator:  "Invoice Generator App",
		Date:     date,
	}
}

// FileName suggests the download name for an invoice number, e.g.
// "Invoice_INV-1234.pdf". Characters that are unsafe in file names become "_".
func FileName(number string) string {
	number = strings.TrimSpace(number)
	if number == "" {
		return "Invoice.pdf"
	}
	safe := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`/\:*?"<>|`, r) || r < ' ' {
			return '_'
		}
		return r
	}, number)
	return "Invoice_" + safe + ".pdf"
}

func newFpdf() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(layout.MarginLeft, layout.MarginTop, layout.MarginRight)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0)
	return pdf
}

func setFont(pdf *gofpdf.Fpdf, f layout.Font) {
	pdf.SetFont(fontFamily, string(f.Style), f.Size)
	pdf.SetTextColor(f.Color.R, f.Color.G, f.Color.B)
}

// Generator lays out and renders invoices.
type Generator struct {
	measurer *Measurer
	renderer *Renderer
}

// NewGenerator returns a Generator using the Helvetica measurer and a
// compressing renderer.
func NewGenerator() *Generator {
	return &Generator{
		measurer: NewMeasurer(),
		renderer: NewRenderer(),
	}
}

// Layout returns the document inv lays out to.
func (g *Generator) Layout(inv *invoice.Invoice) layout.Document {
	return layout.Layout(inv.Clone(), g.measurer)
}

// Generate renders inv as PDF bytes.
func (g *Generator) Generate(inv *invoice.Invoice) ([]byte, error) {
	return g.renderer.Render(g.Layout(inv), MetaFor(inv))
}
