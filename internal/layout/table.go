package layout

import "invoicegen/internal/invoice"

// Row holds the four cells of a table row: item, quantity, price, amount.
type Row [4]string

var (
	headerRow    = Row{"Item", "Quantity", "Price", "Amount"}
	columnAligns = [4]Align{AlignLeft, AlignRight, AlignRight, AlignRight}
)

// Rows returns one table row per item, in item order.
func Rows(inv *invoice.Invoice) []Row {
	rows := make([]Row, len(inv.Items))
	for i, it := range inv.Items {
		rows[i] = Row{it.Description, it.Quantity, it.Price, it.Amount}
	}
	return rows
}

type laidRow struct {
	cells  [4][]string
	font   Font
	height float64
}

func measureRow(r Row, font Font, m Measurer) laidRow {
	lr := laidRow{font: font, height: minRowHeight}
	for c, text := range r {
		lr.cells[c] = split(m, text, font, columnWidths[c]-2*cellPadding)
		lr.height = max(lr.height, float64(len(lr.cells[c]))*cellLineHeight+2*cellPadding)
	}
	return lr
}

func placeRow(s State, r laidRow, aligns [4]Align, fills [4]*Color) State {
	ops := make([]Op, 0, len(r.cells))
	x := ContentLeft
	for c, lines := range r.cells {
		ops = append(ops, Cell{
			X: x, Y: s.Y, W: columnWidths[c], H: r.height,
			Lines:       lines,
			Font:        r.font,
			Align:       aligns[c],
			Fill:        fills[c],
			Border:      gridColor,
			BorderWidth: gridLineWidth,
			Padding:     cellPadding,
			LineHeight:  cellLineHeight,
		})
		x += columnWidths[c]
	}
	return s.Draw(ops...).At(s.Y + r.height)
}

func rowFill(c *Color) [4]*Color {
	return [4]*Color{c, c, c, c}
}

func fill(c Color) *Color {
	return &c
}

// ItemTable draws the header row and one row per entry of rows, shading rows
// with an even index. A row that does not fit on the current page moves to a
// new page, where the header row is repeated first. A row taller than a whole
// page is split between lines and continues on the following pages.
func ItemTable(rows []Row, m Measurer) Block {
	return func(s State) State {
		header := measureRow(headerRow, Font{Style: Bold, Size: headerFontSize, Color: white}, m)
		headerFills := rowFill(fill(accentColor))
		bodyFont := Font{Size: bodyFontSize, Color: bodyTextColor}
		pageRoom := ContentBottom - MarginTop - header.height

		s = s.At(s.Y + tableOffset)

		laid := make([]laidRow, len(rows))
		for i, r := range rows {
			laid[i] = measureRow(r, bodyFont, m)
		}

		need := header.height
		if len(laid) > 0 {
			if laid[0].height <= pageRoom {
				need += laid[0].height
			} else {
				need += minRowHeight
			}
		}
		s = placeRow(s.Ensure(need), header, columnAligns, headerFills)

		continued := func(s State) State {
			return placeRow(s.NewPage(), header, columnAligns, headerFills)
		}

		onPage := 0
		for i, r := range laid {
			var shade *Color
			if i%2 == 0 {
				shade = fill(stripeColor)
			}
			fills := rowFill(shade)

			for {
				if onPage > 0 && !s.Fits(r.height) && r.height <= pageRoom {
					s = continued(s)
					onPage = 0
				}
				if s.Fits(r.height) {
					s = placeRow(s, r, columnAligns, fills)
					onPage++
					break
				}
				head, rest, ok := r.split(ContentBottom - s.Y)
				if ok {
					s = placeRow(s, head, columnAligns, fills)
					r = rest
				}
				s = continued(s)
				onPage = 0
			}
		}
		return s
	}
}

// split cuts the row after as many lines as fit in avail millimetres. ok is
// false when not even one line fits.
func (r laidRow) split(avail float64) (head, rest laidRow, ok bool) {
	n := int((avail - 2*cellPadding) / cellLineHeight)
	if n < 1 {
		return r, r, false
	}
	head = laidRow{font: r.font, height: minRowHeight}
	rest = laidRow{font: r.font, height: minRowHeight}
	for c, lines := range r.cells {
		k := min(n, len(lines))
		head.cells[c] = lines[:k:k]
		rest.cells[c] = lines[k:]
		head.height = max(head.height, float64(k)*cellLineHeight+2*cellPadding)
		rest.height = max(rest.height, float64(len(lines)-k)*cellLineHeight+2*cellPadding)
	}
	return head, rest, true
}

// TotalRow draws the total directly below the cursor: the label and amount in
// the two right columns, bold and shaded.
func TotalRow(total string, m Measurer) Block {
	return func(s State) State {
		font := Font{Style: Bold, Size: totalFontSize, Color: bodyTextColor}
		row := measureRow(Row{"", "", "Total", total}, font, m)
		aligns := [4]Align{AlignLeft, AlignLeft, AlignRight, AlignRight}
		fills := [4]*Color{nil, nil, fill(totalFillColor), fill(totalFillColor)}

		s = s.At(s.Y + totalOffset).Ensure(row.height)
		return placeRow(s, row, aligns, fills)
	}
}
