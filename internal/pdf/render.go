package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog"

	"invoicegen/internal/layout"
	"invoicegen/internal/logger"
)

// Renderer draws a layout.Document with gofpdf.
type Renderer struct {
	compress bool
	log      zerolog.Logger
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithoutCompression leaves page content streams readable, which helps when
// inspecting output.
func WithoutCompression() RendererOption {
	return func(r *Renderer) { r.compress = false }
}

// NewRenderer creates a Renderer.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		compress: true,
		log:      logger.WithComponent("pdf"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws every page of doc and returns the PDF file.
func (r *Renderer) Render(doc layout.Document, meta Meta) ([]byte, error) {
	pdf := newFpdf()
	pdf.SetCompression(r.compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(meta.Date)
	pdf.SetModificationDate(meta.Date)
	pdf.SetTitle(meta.Title, true)
	pdf.SetSubject(meta.Subject, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetKeywords(meta.Keywords, true)
	pdf.SetCreator(meta.Creator, true)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, op := range page.Ops {
			draw(pdf, tr, op)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		r.log.Error().Err(err).Int("pages", doc.PageCount()).Msg("Failed to render PDF")
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	r.log.Debug().
		Int("pages", doc.PageCount()).
		Int("bytes", buf.Len()).
		Msg("PDF rendered")

	return buf.Bytes(), nil
}

func draw(pdf *gofpdf.Fpdf, tr func(string) string, op layout.Op) {
	switch o := op.(type) {
	case layout.Rect:
		pdf.SetFillColor(o.Fill.R, o.Fill.G, o.Fill.B)
		pdf.Rect(o.X, o.Y, o.W, o.H, "F")

	case layout.Line:
		pdf.SetDrawColor(o.Color.R, o.Color.G, o.Color.B)
		pdf.SetLineWidth(o.Width)
		pdf.Line(o.X1, o.Y1, o.X2, o.Y2)

	case layout.Text:
		setFont(pdf, o.Font)
		s := tr(o.Value)
		x := o.X
		switch o.Align {
		case layout.AlignCenter:
			x -= pdf.GetStringWidth(s) / 2
		case layout.AlignRight:
			x -= pdf.GetStringWidth(s)
		}
		pdf.Text(x, o.Y, s)

	case layout.Cell:
		if o.Fill != nil {
			pdf.SetFillColor(o.Fill.R, o.Fill.G, o.Fill.B)
			pdf.Rect(o.X, o.Y, o.W, o.H, "F")
		}
		pdf.SetDrawColor(o.Border.R, o.Border.G, o.Border.B)
		pdf.SetLineWidth(o.BorderWidth)
		pdf.Rect(o.X, o.Y, o.W, o.H, "D")

		setFont(pdf, o.Font)
		for i, line := range o.Lines {
			pdf.SetXY(o.X+o.Padding, o.Y+o.Padding+float64(i)*o.LineHeight)
			pdf.CellFormat(o.W-2*o.Padding, o.LineHeight, tr(line), "", 0, string(o.Align)+"M", false, 0, "")
		}
	}
}
