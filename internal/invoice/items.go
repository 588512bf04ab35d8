package invoice

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"invoicegen/internal/money"
)

// ItemField names an editable column of an Item.
type ItemField string

const (
	FieldDescription ItemField = "description"
	FieldQuantity    ItemField = "quantity"
	FieldPrice       ItemField = "price"
	FieldAmount      ItemField = "amount"
)

// ParseItemField validates a column name coming from the user.
func ParseItemField(name string) (ItemField, error) {
	f := ItemField(name)
	switch f {
	case FieldDescription, FieldQuantity, FieldPrice, FieldAmount:
		return f, nil
	}
	return "", fmt.Errorf("%w: item field %q", ErrUnknownField, name)
}

// WithField returns a copy of the item with field set to value.
//
// Editing quantity or price re-derives Amount when both are present and both
// parse; otherwise Amount and AmountMode stay as they were, so a hand-typed
// amount survives an unparseable quantity. Editing Amount stores it verbatim and
// marks the item manual.
func (it Item) WithField(field ItemField, value string) (Item, error) {
	switch field {
	case FieldDescription:
		it.Description = value
	case FieldQuantity:
		it.Quantity = value
		it = it.derive()
	case FieldPrice:
		it.Price = value
		it = it.derive()
	case FieldAmount:
		it.Amount = value
		it.AmountMode = AmountManual
	default:
		return it, fmt.Errorf("%w: item field %q", ErrUnknownField, field)
	}
	return it, nil
}

func (it Item) derive() Item {
	if it.Quantity == "" || it.Price == "" {
		return it
	}
	q, ok := money.ParseAmount(it.Quantity)
	if !ok {
		return it
	}
	p, ok := money.ParseAmount(it.Price)
	if !ok {
		return it
	}
	it.Amount = money.FormatCurrency(q.Mul(p))
	it.AmountMode = AmountDerived
	return it
}

// AmountValue is the parsed Amount; unparseable text counts as zero.
func (it Item) AmountValue() decimal.Decimal {
	d, _ := money.ParseAmount(it.Amount)
	return d
}

// AddItem appends an empty item and returns it.
func (inv *Invoice) AddItem() Item {
	it := NewItem()
	inv.Items = append(inv.Items, it)
	return it
}

// RemoveItem deletes the item with the given id. The last remaining item is
// never removed, and an unknown id is ignored; both report false.
func (inv *Invoice) RemoveItem(id string) bool {
	if len(inv.Items) <= 1 {
		return false
	}
	_, idx, found := lo.FindIndexOf(inv.Items, func(it Item) bool { return it.ID == id })
	if !found {
		return false
	}
	inv.Items = slices.Delete(inv.Items, idx, idx+1)
	return true
}

// UpdateItemField edits one column of the item with the given id. It reports
// false without error when no item has that id.
func (inv *Invoice) UpdateItemField(id string, field ItemField, value string) (bool, error) {
	_, idx, found := lo.FindIndexOf(inv.Items, func(it Item) bool { return it.ID == id })
	if !found {
		if _, err := ParseItemField(string(field)); err != nil {
			return false, err
		}
		return false, nil
	}
	updated, err := inv.Items[idx].WithField(field, value)
	if err != nil {
		return false, err
	}
	inv.Items[idx] = updated
	return true, nil
}

// Item returns the item with the given id.
func (inv *Invoice) Item(id string) (Item, bool) {
	return lo.Find(inv.Items, func(it Item) bool { return it.ID == id })
}

// ComputeTotal sums the parsed amounts of all items. Amounts that do not
// parse contribute zero.
func (inv *Invoice) ComputeTotal() decimal.Decimal {
	return money.Sum(lo.Map(inv.Items, func(it Item, _ int) string { return it.Amount })...)
}

// FormattedTotal is ComputeTotal rendered in the invoice currency.
func (inv *Invoice) FormattedTotal() string {
	return money.FormatCurrency(inv.ComputeTotal())
}
