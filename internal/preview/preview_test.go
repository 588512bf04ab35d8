package preview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicegen/internal/invoice"
)

func TestWrite(t *testing.T) {
	inv := &invoice.Invoice{
		InvoiceNumber:   "INV-4821",
		InvoiceDate:     "2024-05-02",
		BilledToAddress: "Jl. Merdeka 1\nJakarta",
		FromName:        "Studio Rupa",
		ContactEmail:    "billing@rupa.id",
		Items: []invoice.Item{
			{ID: "0b7e3c1a-aaaa", Description: "Design", Quantity: "2", Price: "1.500.000", Amount: "IDR 3.000.000", AmountMode: invoice.AmountDerived},
			{ID: "9f00d2e4-bbbb", Description: "Hosting", Amount: "500.000", AmountMode: invoice.AmountManual},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, inv))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "INVOICE INV-4821\n"))
	assert.Contains(t, out, "Jl. Merdeka 1, Jakarta")
	assert.Contains(t, out, "Studio Rupa")
	assert.Contains(t, out, "0b7e3c1a")
	assert.NotContains(t, out, "0b7e3c1a-aaaa")
	assert.Contains(t, out, "IDR 3.000.000 *")
	assert.Contains(t, out, "IDR 3.500.000")
	assert.Contains(t, out, "For inquiries: billing@rupa.id | -")
}

func TestWrite_Placeholders(t *testing.T) {
	inv := &invoice.Invoice{Items: []invoice.Item{{ID: "x"}}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, inv))

	assert.Contains(t, buf.String(), "INVOICE -")
	assert.Contains(t, buf.String(), "IDR 0")
}
