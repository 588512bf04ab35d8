package pdf

import (
	"strings"
	"unicode/utf8"

	"github.com/jung-kurt/gofpdf"

	"invoicegen/internal/layout"
)

// Measurer wraps text using the font metrics gofpdf uses when drawing.
type Measurer struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// NewMeasurer returns a Measurer for the Helvetica core font.
func NewMeasurer() *Measurer {
	pdf := newFpdf()
	return &Measurer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// SplitText implements layout.Measurer. Lines break between words; a word
// wider than the whole line is broken between characters.
func (m *Measurer) SplitText(text string, font layout.Font, width float64) []string {
	m.pdf.SetFont(fontFamily, string(font.Style), font.Size)

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, m.wrap(para, width)...)
	}
	return lines
}

// Width returns the width of s in millimetres in the current font.
func (m *Measurer) Width(s string) float64 {
	return m.pdf.GetStringWidth(m.tr(s))
}

func (m *Measurer) wrap(para string, width float64) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := ""
	for _, w := range words {
		for m.Width(w) > width && utf8.RuneCountInString(w) > 1 {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			var head string
			head, w = m.fit(w, width)
			lines = append(lines, head)
		}

		if line == "" {
			line = w
			continue
		}
		if candidate := line + " " + w; m.Width(candidate) <= width {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}

// fit splits word after the longest prefix no wider than width, keeping at
// least one character in the prefix.
func (m *Measurer) fit(word string, width float64) (string, string) {
	runes := []rune(word)
	n := 1
	for n < len(runes) && m.Width(string(runes[:n+1])) <= width {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}
