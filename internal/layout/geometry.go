package layout

// A4 portrait, millimetres.
const (
	PageWidth  = 210.0
	PageHeight = 297.0

	MarginLeft  = 14.0
	MarginRight = 14.0
	MarginTop   = 14.0

	ContentLeft  = MarginLeft
	ContentRight = PageWidth - MarginRight
	ContentWidth = ContentRight - ContentLeft

	// ContentBottom is the lowest point content may reach; the footer band
	// below it holds the page rule and page number.
	ContentBottom = PageHeight - 20

	FooterRuleY = PageHeight - 15
	FooterTextY = PageHeight - 10
)

// Header band and title.
const (
	headerBandHeight = 40.0
	headerNumberY    = 15.0
	headerDateY      = 21.0
	headerDividerY   = 30.0

	titleOffset          = 10.0
	titleUnderlineOffset = 4.0
	titleUnderlineHalf   = 20.0
)

// Party panel.
const (
	partiesOffset   = 16.0
	partyLineHeight = 6.0
	partyRightX     = 120.0
	partyGutter     = 6.0
)

// Item and total tables.
const (
	tableOffset      = 11.0
	totalOffset      = 1.0
	cellPadding      = 3.0
	cellLineHeight   = 4.0
	bodyFontSize     = 9.0
	totalFontSize    = 10.0
	headerFontSize   = 9.0
	minRowHeight     = 2*cellPadding + cellLineHeight
	gridLineWidth    = 0.1
	partyHeadingSize = 12.0
	partyTextSize    = 10.0
)

// columnWidths of Item, Quantity, Price, Amount; they span ContentWidth.
var columnWidths = [4]float64{74, 30, 38, 40}

// Payment panel and contact strip.
const (
	paymentOffset       = 10.0
	paymentHeight       = 35.0
	paymentHeadingY     = 5.0
	paymentUnderlineLen = 46.0
	paymentRow1Y        = 15.0
	paymentRow2Y        = 22.0
	paymentLabelLeftX   = 20.0
	paymentValueLeftX   = 50.0
	paymentLabelRightX  = 100.0
	paymentValueRightX  = 140.0

	contactOffset = 5.0
	contactHeight = 15.0
	contactTextY  = 7.0
)

var (
	accentColor     = Color{41, 82, 163}
	headerBandColor = Color{245, 247, 250}
	headerTextColor = Color{80, 80, 80}
	bodyTextColor   = Color{50, 50, 50}
	white           = Color{255, 255, 255}
	stripeColor     = Color{248, 250, 252}
	gridColor       = Color{220, 220, 220}
	totalFillColor  = Color{240, 240, 240}
	panelColor      = Color{248, 250, 252}
	contactColor    = Color{240, 240, 240}
	footerTextColor = Color{150, 150, 150}
	footerRuleColor = Color{200, 200, 200}
)
