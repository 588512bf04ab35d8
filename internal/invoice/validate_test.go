package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, (&Invoice{}).Validate(), ErrInvalidField, "no items")
	assert.Error(t, (&Invoice{Items: []Item{{}}}).Validate(), "item without id")
	assert.Error(t, (&Invoice{InvoiceDate: "yesterday", Items: []Item{{ID: "a"}}}).Validate())
	assert.Error(t, (&Invoice{Items: []Item{{ID: "a", AmountMode: "guess"}}}).Validate())
	assert.NoError(t, (&Invoice{Items: []Item{{ID: "a"}}}).Validate(), "empty fields are legal")
}

func TestNormalize(t *testing.T) {
	t.Run("patches broken record", func(t *testing.T) {
		inv := &Invoice{
			InvoiceNumber: "INV-1234",
			InvoiceDate:   "not a date",
			Items:         []Item{{Description: "x", AmountMode: "weird"}},
		}

		patched := inv.Normalize(fixedNow)

		assert.ElementsMatch(t, []string{"items[0].id", "items[0].amountMode", "invoiceDate"}, patched)
		assert.NotEmpty(t, inv.Items[0].ID)
		assert.Equal(t, AmountManual, inv.Items[0].AmountMode)
		assert.Equal(t, "2026-10-14", inv.InvoiceDate)
		assert.Equal(t, "x", inv.Items[0].Description)
		assert.NoError(t, inv.Validate())
	})

	t.Run("adds an item to an empty list", func(t *testing.T) {
		inv := &Invoice{}
		assert.Equal(t, []string{"items"}, inv.Normalize(fixedNow))
		require.Len(t, inv.Items, 1)
		assert.NoError(t, inv.Validate())
	})

	t.Run("valid record untouched", func(t *testing.T) {
		inv := New(fixedNow)
		before := inv.Clone()
		assert.Empty(t, inv.Normalize(fixedNow))
		assert.Equal(t, before, inv)
	})
}
