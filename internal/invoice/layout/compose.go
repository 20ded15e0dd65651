package layout

import (
	"fmt"
	"strings"

	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/document"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/theme"
)

// Static ink colors. Accent-flagged elements start at the default palette
// accent and follow the applied theme; these never change.
var (
	inkColor   = theme.RGB{R: 26, G: 26, B: 26}
	mutedColor = theme.RGB{R: 128, G: 128, B: 128}
)

// Item table column geometry. Columns read left to right as ITEM, PRICE,
// AMOUNT, QUANTITY; all but the first are right-aligned on their edge.
const (
	colItemX    = Margin
	colItemW    = 150.0
	colPriceR   = Margin + 210
	colAmountR  = Margin + 280
	colQtyR     = PageWidth - Margin
	colNumW     = 60.0
	partyLineH  = 12.0
	headerLineH = 12.0
)

// Compose builds the positioned block tree for a document under the default
// variant. Blocks always stack in the order header, identity, photo when
// present, item table, totals; an absent photo only removes its own height.
func Compose(doc document.Document) *Layout {
	defaultAccent, _ := theme.Accent(theme.ColorDefault)
	defaultFonts, _ := theme.Fonts(theme.FontNormal)

	c := &composer{
		layout: &Layout{originals: make(map[ElementID]original)},
		fonts:  defaultFonts,
		accent: defaultAccent,
	}

	y := c.header(doc)
	y = c.identity(doc, y+BlockSpacing)
	if len(doc.Photo) > 0 {
		y = c.photo(doc, y+BlockSpacing)
	}
	y = c.items(doc, y+BlockSpacing)
	c.totals(doc, y+BlockSpacing)

	return c.layout
}

type composer struct {
	layout *Layout
	fonts  theme.FontSet
	accent theme.RGB
	block  *Block
}

func (c *composer) begin(name BlockName, frame Frame) {
	c.layout.Blocks = append(c.layout.Blocks, Block{Name: name, Frame: frame})
	c.block = &c.layout.Blocks[len(c.layout.Blocks)-1]
}

func (c *composer) text(frame Frame, content string, size float64, weight Weight, color theme.RGB, align Align, accent bool) {
	id := c.layout.nextID
	c.layout.nextID++

	if accent {
		color = c.accent
	}
	c.layout.originals[id] = original{size: size, color: color}

	font := c.fonts.Regular
	switch weight {
	case WeightMedium:
		font = c.fonts.Medium
	case WeightBold:
		font = c.fonts.Bold
	}
	c.block.Texts = append(c.block.Texts, Text{
		ID:      id,
		Frame:   frame,
		Content: content,
		Style:   TextStyle{Font: font, Weight: weight, Size: size, Color: color},
		Align:   align,
		Accent:  accent,
	})
}

func (c *composer) rule(frame Frame, accent bool) {
	color := mutedColor
	if accent {
		color = c.accent
	}
	c.block.Rules = append(c.block.Rules, Rule{Frame: frame, Color: color, Accent: accent})
}

func (c *composer) image(frame Frame, data []byte) {
	c.block.Images = append(c.block.Images, Image{Frame: frame, Data: data})
}

// header lays out the logo, the document-type title and the number and date
// labels, anchored to the page top. Returns the block's bottom edge.
func (c *composer) header(doc document.Document) float64 {
	frame := Frame{X: Margin, Y: Margin, W: ContentWidth, H: LogoSize}
	c.begin(BlockHeader, frame)

	if len(doc.Logo) > 0 {
		c.image(Frame{X: Margin, Y: Margin, W: LogoSize, H: LogoSize}, doc.Logo)
	}

	title := strings.ToUpper(doc.Kind.Label())
	c.text(Frame{X: Margin, Y: Margin, W: ContentWidth, H: SizeTitle + 4},
		title, SizeTitle, WeightBold, inkColor, AlignRight, true)

	labels := []struct {
		label string
		value string
	}{
		{"NUMBER", fmt.Sprintf("#%d", doc.Number)},
		{"ISSUED", doc.IssuedAt},
	}
	if doc.DueAt != "" {
		labels = append(labels, struct {
			label string
			value string
		}{"DUE", doc.DueAt})
	}

	y := Margin + SizeTitle + 8
	for _, row := range labels {
		c.text(Frame{X: PageWidth - Margin - colNumW*2, Y: y, W: colNumW, H: headerLineH},
			row.label, SizeLabel, WeightRegular, mutedColor, AlignRight, false)
		c.text(Frame{X: PageWidth - Margin - colNumW, Y: y, W: colNumW, H: headerLineH},
			row.value, SizeSmall, WeightRegular, inkColor, AlignRight, false)
		y += headerLineH
	}

	return frame.Y + frame.H
}

// identity lays out the two-column FROM / BILL TO box. Each column sizes to
// its own content; the block takes the taller of the two, with a floor so
// short documents keep a stable silhouette.
func (c *composer) identity(doc document.Document, y float64) float64 {
	colW := ContentWidth / 2
	leftH := partyHeight(doc.From)
	rightH := partyHeight(doc.BillTo)
	height := leftH
	if rightH > height {
		height = rightH
	}
	if height < IdentityHeight {
		height = IdentityHeight
	}

	frame := Frame{X: Margin, Y: y, W: ContentWidth, H: height}
	c.begin(BlockIdentity, frame)

	c.party(doc.From, "FROM", Frame{X: Margin, Y: y, W: colW, H: leftH})
	c.party(doc.BillTo, "BILL TO", Frame{X: Margin + colW, Y: y, W: colW, H: rightH})
	c.rule(Frame{X: Margin, Y: y + height, W: ContentWidth, H: 0.5}, true)

	return frame.Y + frame.H
}

func partyHeight(p document.Party) float64 {
	// Label row plus one line per non-empty field.
	return partyLineH + float64(len(partyLines(p)))*partyLineH
}

func partyLines(p document.Party) []string {
	var lines []string
	for _, field := range []string{p.Name, p.Email, p.Phone, p.Address} {
		if strings.TrimSpace(field) != "" {
			lines = append(lines, field)
		}
	}
	return lines
}

func (c *composer) party(p document.Party, label string, frame Frame) {
	c.text(Frame{X: frame.X, Y: frame.Y, W: frame.W, H: partyLineH},
		label, SizeLabel, WeightRegular, mutedColor, AlignLeft, true)

	y := frame.Y + partyLineH
	for i, line := range partyLines(p) {
		weight, size := WeightRegular, SizeSmall
		if i == 0 {
			weight, size = WeightBold, SizeBody
		}
		c.text(Frame{X: frame.X, Y: y, W: frame.W, H: partyLineH},
			line, size, weight, inkColor, AlignLeft, false)
		y += partyLineH
	}
}

// photo inserts the optional attachment below the identity box, shifting
// every later block down by its height plus spacing.
func (c *composer) photo(doc document.Document, y float64) float64 {
	frame := Frame{X: Margin, Y: y, W: ContentWidth, H: PhotoHeight}
	c.begin(BlockPhoto, frame)
	c.image(frame, doc.Photo)
	return frame.Y + frame.H
}

// items lays out the column header row plus one fixed-height row per line,
// in document order. Every row renders on the single page regardless of
// count; export enforces the row cap.
func (c *composer) items(doc document.Document, y float64) float64 {
	height := HeaderRowHeight + float64(len(doc.Lines))*RowHeight
	frame := Frame{X: Margin, Y: y, W: ContentWidth, H: height}
	c.begin(BlockItems, frame)

	c.text(Frame{X: colItemX, Y: y, W: colItemW, H: HeaderRowHeight},
		"ITEM", SizeLabel, WeightMedium, mutedColor, AlignLeft, true)
	c.text(Frame{X: colPriceR - colNumW, Y: y, W: colNumW, H: HeaderRowHeight},
		"PRICE", SizeLabel, WeightMedium, mutedColor, AlignRight, true)
	c.text(Frame{X: colAmountR - colNumW, Y: y, W: colNumW, H: HeaderRowHeight},
		"AMOUNT", SizeLabel, WeightMedium, mutedColor, AlignRight, true)
	c.text(Frame{X: colQtyR - colNumW, Y: y, W: colNumW, H: HeaderRowHeight},
		"QUANTITY", SizeLabel, WeightMedium, mutedColor, AlignRight, true)
	c.rule(Frame{X: Margin, Y: y + HeaderRowHeight - 4, W: ContentWidth, H: 0.5}, true)

	rowY := y + HeaderRowHeight
	for _, line := range doc.Lines {
		c.text(Frame{X: colItemX, Y: rowY, W: colItemW, H: RowHeight / 2},
			line.Name, SizeBody, WeightRegular, inkColor, AlignLeft, false)
		if line.Details != "" {
			c.text(Frame{X: colItemX, Y: rowY + RowHeight/2, W: colItemW, H: RowHeight / 2},
				line.Details, SizeLabel, WeightRegular, mutedColor, AlignLeft, false)
		}
		c.text(Frame{X: colPriceR - colNumW, Y: rowY, W: colNumW, H: RowHeight},
			doc.Amount(line.Price), SizeSmall, WeightRegular, inkColor, AlignRight, false)
		c.text(Frame{X: colAmountR - colNumW, Y: rowY, W: colNumW, H: RowHeight},
			doc.Amount(line.Final), SizeSmall, WeightRegular, inkColor, AlignRight, false)
		qty := fmt.Sprintf("%d", line.Quantity)
		if line.UnitType != "" {
			qty = fmt.Sprintf("%d %s", line.Quantity, line.UnitType)
		}
		c.text(Frame{X: colQtyR - colNumW, Y: rowY, W: colNumW, H: RowHeight},
			qty, SizeSmall, WeightRegular, inkColor, AlignRight, false)
		rowY += RowHeight
	}

	return frame.Y + frame.H
}

// totals lays out the right-aligned summary plus the optional notes and the
// paid marker.
func (c *composer) totals(doc document.Document, y float64) float64 {
	rows := 2
	if doc.Paid {
		rows++
	}
	height := float64(rows) * RowHeight

	frame := Frame{X: Margin, Y: y, W: ContentWidth, H: height}
	c.begin(BlockTotals, frame)

	labelX := colAmountR - colNumW
	valueX := colQtyR - colNumW

	c.text(Frame{X: labelX, Y: y, W: colNumW, H: RowHeight},
		"SUBTOTAL", SizeSmall, WeightRegular, mutedColor, AlignRight, false)
	c.text(Frame{X: valueX, Y: y, W: colNumW, H: RowHeight},
		doc.Amount(doc.Totals.Subtotal), SizeSmall, WeightRegular, inkColor, AlignRight, false)

	c.text(Frame{X: labelX, Y: y + RowHeight, W: colNumW, H: RowHeight},
		"TOTAL", SizeBody, WeightBold, inkColor, AlignRight, true)
	c.text(Frame{X: valueX, Y: y + RowHeight, W: colNumW, H: RowHeight},
		doc.Amount(doc.Totals.GrandTotal), SizeBody, WeightBold, inkColor, AlignRight, true)

	if doc.Paid {
		marker := "PAID"
		if doc.PayMethod != "" {
			marker = fmt.Sprintf("PAID · %s", doc.PayMethod)
		}
		c.text(Frame{X: labelX - colNumW, Y: y + 2*RowHeight, W: colNumW * 2, H: RowHeight},
			marker, SizeSmall, WeightBold, inkColor, AlignRight, true)
	}

	if doc.Notes != "" {
		c.text(Frame{X: Margin, Y: y, W: colItemW, H: height},
			doc.Notes, SizeSmall, WeightRegular, mutedColor, AlignLeft, false)
	}

	return frame.Y + frame.H
}
