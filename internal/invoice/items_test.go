package invoice

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC)

func withItems(items ...Item) *Invoice {
	inv := New(fixedNow)
	inv.Items = items
	return inv
}

func TestNew(t *testing.T) {
	inv := New(fixedNow)

	assert.Regexp(t, `^INV-[1-9][0-9]{3}$`, inv.InvoiceNumber)
	assert.Equal(t, "2026-10-14", inv.InvoiceDate)
	require.Len(t, inv.Items, 1)
	assert.NotEmpty(t, inv.Items[0].ID)
	assert.Equal(t, AmountManual, inv.Items[0].AmountMode)
	assert.Empty(t, inv.BilledToCompanyName)
	assert.NoError(t, inv.Validate())
}

func TestUpdateItemField_DerivesAmount(t *testing.T) {
	// Service A: 2 x IDR 1.500.000
	inv := withItems(Item{ID: "a", Description: "Service A", AmountMode: AmountManual})

	ok, err := inv.UpdateItemField("a", FieldPrice, "IDR 1.500.000")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, inv.Items[0].Amount, "amount waits for a quantity")

	_, err = inv.UpdateItemField("a", FieldQuantity, "2")
	require.NoError(t, err)

	assert.Equal(t, "IDR 3.000.000", inv.Items[0].Amount)
	assert.Equal(t, AmountDerived, inv.Items[0].AmountMode)
	assert.True(t, decimal.NewFromInt(3000000).Equal(inv.ComputeTotal()))
}

func TestUpdateItemField_UnparseableKeepsAmount(t *testing.T) {
	tests := []struct {
		name  string
		field ItemField
		value string
		start Item
	}{
		{
			name:  "quantity letters with valid price",
			field: FieldQuantity,
			value: "abc",
			start: Item{ID: "a", Price: "IDR 10.000", Amount: "IDR 99", AmountMode: AmountManual},
		},
		{
			name:  "price letters with valid quantity",
			field: FieldPrice,
			value: "n/a",
			start: Item{ID: "a", Quantity: "3", Amount: "IDR 30.000", AmountMode: AmountDerived},
		},
		{
			name:  "quantity cleared",
			field: FieldQuantity,
			value: "",
			start: Item{ID: "a", Quantity: "3", Price: "10", Amount: "IDR 30", AmountMode: AmountDerived},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := withItems(tt.start)

			ok, err := inv.UpdateItemField("a", tt.field, tt.value)
			require.NoError(t, err)
			require.True(t, ok)

			assert.Equal(t, tt.start.Amount, inv.Items[0].Amount)
			assert.Equal(t, tt.start.AmountMode, inv.Items[0].AmountMode)
		})
	}
}

func TestUpdateItemField_AmountIsVerbatim(t *testing.T) {
	inv := withItems(Item{ID: "a", Quantity: "2", Price: "5", Amount: "IDR 10", AmountMode: AmountDerived})

	_, err := inv.UpdateItemField("a", FieldAmount, "about 12 thousand")
	require.NoError(t, err)
	assert.Equal(t, "about 12 thousand", inv.Items[0].Amount)
	assert.Equal(t, AmountManual, inv.Items[0].AmountMode)

	// A later valid edit re-derives over the manual value.
	_, err = inv.UpdateItemField("a", FieldQuantity, "3")
	require.NoError(t, err)
	assert.Equal(t, "IDR 15", inv.Items[0].Amount)
	assert.Equal(t, AmountDerived, inv.Items[0].AmountMode)
}

func TestUpdateItemField_UnknownIDAndField(t *testing.T) {
	inv := withItems(Item{ID: "a", Description: "keep", AmountMode: AmountManual})
	before := inv.Clone()

	ok, err := inv.UpdateItemField("missing", FieldDescription, "x")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, inv)

	_, err = inv.UpdateItemField("a", ItemField("colour"), "red")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, before, inv)
}

func TestRemoveItem(t *testing.T) {
	t.Run("last item stays", func(t *testing.T) {
		only := Item{ID: "a", Description: "only", AmountMode: AmountManual}
		inv := withItems(only)

		assert.False(t, inv.RemoveItem("a"))
		require.Len(t, inv.Items, 1)
		assert.Equal(t, only, inv.Items[0])
	})

	t.Run("unknown id is ignored", func(t *testing.T) {
		inv := withItems(Item{ID: "a"}, Item{ID: "b"})
		before := inv.Clone()

		assert.False(t, inv.RemoveItem("zzz"))
		assert.Equal(t, before, inv)
	})

	t.Run("removes matching item and keeps order", func(t *testing.T) {
		inv := withItems(Item{ID: "a"}, Item{ID: "b"}, Item{ID: "c"})

		assert.True(t, inv.RemoveItem("b"))
		require.Len(t, inv.Items, 2)
		assert.Equal(t, "a", inv.Items[0].ID)
		assert.Equal(t, "c", inv.Items[1].ID)
	})
}

func TestAddItem(t *testing.T) {
	inv := New(fixedNow)
	first := inv.Items[0].ID

	added := inv.AddItem()

	require.Len(t, inv.Items, 2)
	assert.Equal(t, first, inv.Items[0].ID)
	assert.Equal(t, added, inv.Items[1])
	assert.NotEqual(t, first, added.ID)
	assert.Empty(t, added.Description)
}

func TestComputeTotal(t *testing.T) {
	inv := withItems(
		Item{ID: "a", Amount: "IDR 1.000.000"},
		Item{ID: "b", Amount: "IDR 2.500.000"},
	)
	assert.True(t, decimal.NewFromInt(3500000).Equal(inv.ComputeTotal()))

	inv.AddItem()
	inv.Items = append(inv.Items, Item{ID: "d", Amount: "not a number"})
	assert.True(t, decimal.NewFromInt(3500000).Equal(inv.ComputeTotal()), "blank and bad amounts add zero")
	assert.Equal(t, "IDR 3.500.000", inv.FormattedTotal())
}

func TestComputeTotal_OrderIndependent(t *testing.T) {
	amounts := []string{"IDR 1.234,56", "IDR -200", "7", "IDR 0,01", "x", "IDR 99.999.999,99"}
	items := make([]Item, len(amounts))
	for i, a := range amounts {
		items[i] = Item{ID: string(rune('a' + i)), Amount: a}
	}

	want := withItems(items...).ComputeTotal()
	for shift := 1; shift < len(items); shift++ {
		rotated := append(append([]Item{}, items[shift:]...), items[:shift]...)
		assert.True(t, want.Equal(withItems(rotated...).ComputeTotal()), "rotation %d", shift)
	}
}

func TestSetField(t *testing.T) {
	inv := New(fixedNow)

	require.NoError(t, inv.SetField("billedToCompanyName", "PT Maju"))
	assert.Equal(t, "PT Maju", inv.BilledToCompanyName)

	got, err := inv.Field("billedToCompanyName")
	require.NoError(t, err)
	assert.Equal(t, "PT Maju", got)

	assert.ErrorIs(t, inv.SetField("taxRate", "11"), ErrUnknownField)

	err = inv.SetField("invoiceDate", "14/10/2026")
	assert.ErrorIs(t, err, ErrInvalidField)
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "invoiceDate", fe.Field)
	assert.Equal(t, "2026-10-14", inv.InvoiceDate)

	require.NoError(t, inv.SetField("invoiceDate", "2026-11-01"))
	assert.Equal(t, "2026-11-01", inv.InvoiceDate)
}

func TestFieldNames(t *testing.T) {
	names := FieldNames()
	assert.Len(t, names, 15)
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "swiftCode")
}

func TestJSONRoundTrip(t *testing.T) {
	inv := New(fixedNow)
	inv.FromName = "CV Sumber"
	inv.ContactEmail = "billing@example.com"
	_, err := inv.UpdateItemField(inv.Items[0].ID, FieldQuantity, "4")
	require.NoError(t, err)
	_, err = inv.UpdateItemField(inv.Items[0].ID, FieldPrice, "IDR 25.000")
	require.NoError(t, err)
	inv.AddItem()

	data, err := json.Marshal(inv)
	require.NoError(t, err)

	var back Invoice
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, inv, &back)
}
