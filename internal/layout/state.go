package layout

import "slices"

// State is the value threaded through the blocks of a layout: the vertical
// cursor on the current page and every page produced so far. The current page
// is the last one. Blocks never modify the State they receive.
type State struct {
	Y     float64
	Pages []Page
}

// Block places one unit of content starting at the cursor and returns the
// state after it.
type Block func(State) State

// Start is the state before any block: one empty page, cursor at the top edge.
func Start() State {
	return State{Pages: []Page{{}}}
}

// Page returns the 1-based number of the current page.
func (s State) Page() int {
	return len(s.Pages)
}

// Document returns the pages laid out so far.
func (s State) Document() Document {
	return Document{Pages: slices.Clone(s.Pages)}
}

// At moves the cursor.
func (s State) At(y float64) State {
	s.Y = y
	return s
}

// Draw appends ops to the current page.
func (s State) Draw(ops ...Op) State {
	return s.drawOn(len(s.Pages)-1, ops...)
}

func (s State) drawOn(page int, ops ...Op) State {
	pages := slices.Clone(s.Pages)
	pages[page].Ops = append(slices.Clip(pages[page].Ops), ops...)
	s.Pages = pages
	return s
}

// NewPage opens a page and puts the cursor at the top of its content area.
func (s State) NewPage() State {
	s.Pages = append(slices.Clip(s.Pages), Page{})
	s.Y = MarginTop
	return s
}

// Fits reports whether h millimetres fit between the cursor and the bottom of
// the content area.
func (s State) Fits(h float64) bool {
	return s.Y+h <= ContentBottom
}

// Ensure opens a new page unless h millimetres fit below the cursor.
func (s State) Ensure(h float64) State {
	if s.Fits(h) {
		return s
	}
	return s.NewPage()
}

// Fold runs blocks in order, feeding each the state returned by the previous one.
func Fold(s State, blocks ...Block) State {
	for _, b := range blocks {
		s = b(s)
	}
	return s
}
