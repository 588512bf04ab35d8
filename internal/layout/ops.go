package layout

// Color is an RGB triple in the 0..255 range.
type Color struct{ R, G, B int }

// FontStyle uses the style letters understood by PDF core fonts.
type FontStyle string

const (
	Regular FontStyle = ""
	Bold    FontStyle = "B"
	Italic  FontStyle = "I"
)

// Align is the horizontal alignment of text.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Font describes how a run of text is set.
type Font struct {
	Style FontStyle
	Size  float64 // points
	Color Color
}

// Op is one drawing instruction on a page. Coordinates are millimetres from
// the top-left corner of the page.
type Op interface {
	isOp()
}

// Text draws a single line with its baseline at Y. For AlignCenter X is the
// centre of the line, for AlignRight its right edge.
type Text struct {
	X, Y  float64
	Value string
	Font  Font
	Align Align
}

// Line draws a straight rule.
type Line struct {
	X1, Y1, X2, Y2 float64
	Color          Color
	Width          float64
}

// Rect fills a rectangle.
type Rect struct {
	X, Y, W, H float64
	Fill       Color
}

// Cell is a table cell: optional fill, a hairline border and padded text lines.
type Cell struct {
	X, Y, W, H  float64
	Lines       []string
	Font        Font
	Align       Align
	Fill        *Color
	Border      Color
	BorderWidth float64
	Padding     float64
	LineHeight  float64
}

func (Text) isOp() {}
func (Line) isOp() {}
func (Rect) isOp() {}
func (Cell) isOp() {}

// Page is the ordered list of drawing instructions of one page.
type Page struct {
	Ops []Op
}

// Document is a laid-out invoice.
type Document struct {
	Pages []Page
}

// PageCount returns the number of pages.
func (d Document) PageCount() int {
	return len(d.Pages)
}

// Measurer breaks text into lines that fit a width.
type Measurer interface {
	// SplitText returns the lines of text set in font that fit within width
	// millimetres. Explicit newlines always start a new line.
	SplitText(text string, font Font, width float64) []string
}
