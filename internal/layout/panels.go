package layout

import (
	"fmt"

	"invoicegen/internal/invoice"
)

// Payment holds the bank details shown in the payment panel.
type Payment struct {
	BankName      string
	AccountName   string
	AccountNumber string
	SwiftCode     string
}

// PaymentOf extracts the payment details of inv.
func PaymentOf(inv *invoice.Invoice) Payment {
	return Payment{
		BankName:      inv.BankName,
		AccountName:   inv.AccountName,
		AccountNumber: inv.AccountNumber,
		SwiftCode:     inv.SwiftCode,
	}
}

// PaymentPanel draws the shaded payment box with its heading, underline and a
// two-column label/value grid.
func PaymentPanel(p Payment) Block {
	return func(s State) State {
		s = s.At(s.Y + paymentOffset).Ensure(paymentHeight)

		top := s.Y
		heading := top + paymentHeadingY
		row1, row2 := top+paymentRow1Y, top+paymentRow2Y
		label := Font{Style: Bold, Size: 9, Color: bodyTextColor}
		value := Font{Size: 9, Color: bodyTextColor}

		return s.Draw(
			Rect{X: ContentLeft, Y: top, W: ContentWidth, H: paymentHeight, Fill: panelColor},
			Text{X: ContentLeft, Y: heading, Value: "Payment Details", Font: Font{Style: Bold, Size: 12, Color: accentColor}, Align: AlignLeft},
			Line{X1: ContentLeft, Y1: heading + 2, X2: ContentLeft + paymentUnderlineLen, Y2: heading + 2, Color: accentColor, Width: 0.3},

			Text{X: paymentLabelLeftX, Y: row1, Value: "Bank:", Font: label, Align: AlignLeft},
			Text{X: paymentLabelLeftX, Y: row2, Value: "Account Name:", Font: label, Align: AlignLeft},
			Text{X: paymentLabelRightX, Y: row1, Value: "Account Number:", Font: label, Align: AlignLeft},
			Text{X: paymentLabelRightX, Y: row2, Value: "Swift Code:", Font: label, Align: AlignLeft},

			Text{X: paymentValueLeftX, Y: row1, Value: p.BankName, Font: value, Align: AlignLeft},
			Text{X: paymentValueLeftX, Y: row2, Value: p.AccountName, Font: value, Align: AlignLeft},
			Text{X: paymentValueRightX, Y: row1, Value: p.AccountNumber, Font: value, Align: AlignLeft},
			Text{X: paymentValueRightX, Y: row2, Value: p.SwiftCode, Font: value, Align: AlignLeft},
		).At(top + paymentHeight)
	}
}

// ContactStrip draws a shaded strip with the contact email and phone centred.
func ContactStrip(email, phone string) Block {
	return func(s State) State {
		s = s.At(s.Y + contactOffset).Ensure(contactHeight)
		top := s.Y
		return s.Draw(
			Rect{X: ContentLeft, Y: top, W: ContentWidth, H: contactHeight, Fill: contactColor},
			Text{
				X: PageWidth / 2, Y: top + contactTextY,
				Value: fmt.Sprintf("For inquiries: %s | %s", email, phone),
				Font:  Font{Style: Italic, Size: 8, Color: bodyTextColor},
				Align: AlignCenter,
			},
		).At(top + contactHeight)
	}
}

// Footers stamps every page produced so far with a thin rule and
// "Page i of N". It leaves the cursor where it was.
func Footers() Block {
	return func(s State) State {
		n := len(s.Pages)
		for i := range n {
			s = s.drawOn(i,
				Line{X1: ContentLeft, Y1: FooterRuleY, X2: ContentRight, Y2: FooterRuleY, Color: footerRuleColor, Width: 0.3},
				Text{
					X: PageWidth / 2, Y: FooterTextY,
					Value: fmt.Sprintf("Page %d of %d", i+1, n),
					Font:  Font{Size: 8, Color: footerTextColor},
					Align: AlignCenter,
				},
			)
		}
		return s
	}
}
