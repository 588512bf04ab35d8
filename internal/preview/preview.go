// Package preview writes a plain-text rendition of an invoice for the terminal.
package preview

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"invoicegen/internal/invoice"
	"invoicegen/internal/money"
)

const placeholder = "-"

// Write renders inv to w: the header fields, both parties, the item table
// with the total, and the payment and contact details.
func Write(w io.Writer, inv *invoice.Invoice) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	p := &printer{w: tw}

	p.printf("INVOICE %s\n", orPlaceholder(inv.InvoiceNumber))
	p.printf("Date\t%s\n", orPlaceholder(inv.InvoiceDate))
	p.printf("\n")

	p.section("Billed To", [][2]string{
		{"Company", inv.BilledToCompanyName},
		{"Address", inv.BilledToAddress},
		{"Company ID", inv.BilledToCompanyID},
		{"VAT", inv.BilledToVat},
	})
	p.section("From", [][2]string{
		{"Name", inv.FromName},
		{"Address", inv.FromAddress},
		{"VAT", inv.FromVat},
	})

	p.printf("ID\tItem\tQuantity\tPrice\tAmount\n")
	for _, it := range inv.Items {
		amount := orPlaceholder(it.Amount)
		if it.AmountMode == invoice.AmountDerived {
			amount += " *"
		}
		p.printf("%s\t%s\t%s\t%s\t%s\n",
			shortID(it.ID),
			orPlaceholder(oneLine(it.Description)),
			orPlaceholder(it.Quantity),
			orPlaceholder(it.Price),
			amount,
		)
	}
	p.printf("\t\t\tTotal\t%s\n", money.FormatCurrency(inv.ComputeTotal()))
	p.printf("\n")

	p.section("Payment Details", [][2]string{
		{"Bank", inv.BankName},
		{"Account Name", inv.AccountName},
		{"Account Number", inv.AccountNumber},
		{"Swift Code", inv.SwiftCode},
	})
	p.printf("For inquiries: %s | %s\n", orPlaceholder(inv.ContactEmail), orPlaceholder(inv.ContactPhone))

	if p.err != nil {
		return p.err
	}
	return tw.Flush()
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) section(title string, rows [][2]string) {
	p.printf("%s\n", title)
	for _, r := range rows {
		p.printf("  %s\t%s\n", r[0], orPlaceholder(oneLine(r[1])))
	}
	p.printf("\n")
}

func orPlaceholder(v string) string {
	if strings.TrimSpace(v) == "" {
		return placeholder
	}
	return v
}

// oneLine folds multi-line values so they stay inside their column.
func oneLine(v string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(v, "\n", ", ")), " ")
}

// shortID abbreviates item ids to the prefix the CLI accepts.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
