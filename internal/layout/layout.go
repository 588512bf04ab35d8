// Package layout turns an invoice into a paginated document description.
//
// Layout is a fold over an ordered list of blocks (header band, title, party
// panel, item table, total row, payment panel, contact strip, page footers).
// Each block receives the cursor and pages left by the previous block and
// returns new ones, so every block can be exercised alone with a synthetic
// State. The result is a pure function of the invoice and the Measurer;
// rendering it to bytes is the job of package pdf.
package layout

import "invoicegen/internal/invoice"

// DocumentTitle is the heading printed on the first page.
const DocumentTitle = "INVOICE"

// Blocks returns the blocks that lay out inv, in order.
func Blocks(inv *invoice.Invoice, m Measurer) []Block {
	return []Block{
		HeaderBand(inv.InvoiceNumber, inv.InvoiceDate),
		Title(DocumentTitle),
		Parties(BilledTo(inv), From(inv), m),
		ItemTable(Rows(inv), m),
		TotalRow(inv.FormattedTotal(), m),
		PaymentPanel(PaymentOf(inv)),
		ContactStrip(inv.ContactEmail, inv.ContactPhone),
		Footers(),
	}
}

// Layout lays out inv on A4 pages.
func Layout(inv *invoice.Invoice, m Measurer) Document {
	return Fold(Start(), Blocks(inv, m)...).Document()
}
