package layout

import (
	"strings"

	"invoicegen/internal/invoice"
)

// Placeholder stands in for a blank party field.
const Placeholder = "-"

// HeaderBand draws the shaded band at the top of the first page with the
// invoice number, the date and an accent divider.
func HeaderBand(number, date string) Block {
	return func(s State) State {
		top := s.Y
		font := Font{Size: 10, Color: headerTextColor}
		return s.Draw(
			Rect{X: 0, Y: top, W: PageWidth, H: headerBandHeight, Fill: headerBandColor},
			Text{X: ContentLeft, Y: top + headerNumberY, Value: "NO: " + number, Font: font, Align: AlignLeft},
			Text{X: ContentLeft, Y: top + headerDateY, Value: "Date: " + date, Font: font, Align: AlignLeft},
			Line{
				X1: ContentLeft, Y1: top + headerDividerY,
				X2: ContentRight, Y2: top + headerDividerY,
				Color: accentColor, Width: 0.5,
			},
		).At(top + headerBandHeight)
	}
}

// Title draws the centred document title with a short underline.
func Title(text string) Block {
	return func(s State) State {
		base := s.Y + titleOffset
		under := base + titleUnderlineOffset
		mid := PageWidth / 2
		return s.Draw(
			Text{X: mid, Y: base, Value: text, Font: Font{Style: Bold, Size: 28, Color: accentColor}, Align: AlignCenter},
			Line{X1: mid - titleUnderlineHalf, Y1: under, X2: mid + titleUnderlineHalf, Y2: under, Color: accentColor, Width: 0.8},
		).At(under)
	}
}

// Party is one side of the party panel.
type Party struct {
	Heading string
	Lines   []string
}

// BilledTo lists the customer fields; blanks become Placeholder.
func BilledTo(inv *invoice.Invoice) Party {
	return Party{
		Heading: "Billed to:",
		Lines: []string{
			orPlaceholder(inv.BilledToCompanyName),
			orPlaceholder(inv.BilledToAddress),
			"Company ID: " + orPlaceholder(inv.BilledToCompanyID),
			"VAT: " + orPlaceholder(inv.BilledToVat),
		},
	}
}

// From lists the sender fields; blanks become Placeholder.
func From(inv *invoice.Invoice) Party {
	return Party{
		Heading: "From:",
		Lines: []string{
			orPlaceholder(inv.FromName),
			orPlaceholder(inv.FromAddress),
			"VAT: " + orPlaceholder(inv.FromVat),
		},
	}
}

// Parties draws left and right side by side. The cursor ends below the longer
// of the two; lines that would pass the bottom of the page continue at the top
// of a new one.
func Parties(left, right Party, m Measurer) Block {
	return func(s State) State {
		headingFont := Font{Style: Bold, Size: partyHeadingSize, Color: bodyTextColor}
		textFont := Font{Size: partyTextSize, Color: bodyTextColor}

		leftLines := partyLines(left, partyRightX-ContentLeft-partyGutter, textFont, m)
		rightLines := partyLines(right, ContentRight-partyRightX, textFont, m)

		s = s.Ensure(partiesOffset + partyLineHeight)
		heading := s.Y + partiesOffset
		s = s.Draw(
			Text{X: ContentLeft, Y: heading, Value: left.Heading, Font: headingFont, Align: AlignLeft},
			Text{X: partyRightX, Y: heading, Value: right.Heading, Font: headingFont, Align: AlignLeft},
		).At(heading)

		for k := range max(len(leftLines), len(rightLines)) {
			s = s.Ensure(partyLineHeight)
			y := s.Y + partyLineHeight
			if k < len(leftLines) {
				s = s.Draw(Text{X: ContentLeft, Y: y, Value: leftLines[k], Font: textFont, Align: AlignLeft})
			}
			if k < len(rightLines) {
				s = s.Draw(Text{X: partyRightX, Y: y, Value: rightLines[k], Font: textFont, Align: AlignLeft})
			}
			s = s.At(y)
		}
		return s
	}
}

func partyLines(p Party, width float64, font Font, m Measurer) []string {
	var lines []string
	for _, field := range p.Lines {
		lines = append(lines, split(m, field, font, width)...)
	}
	return lines
}

func orPlaceholder(v string) string {
	if strings.TrimSpace(v) == "" {
		return Placeholder
	}
	return v
}

func split(m Measurer, text string, font Font, width float64) []string {
	lines := m.SplitText(text, font, width)
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
