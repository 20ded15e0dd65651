// Package layout positions document blocks on a fixed-aspect page. Layout is
// a pure transformation: the same document and theme always produce the same
// block tree, and nothing here touches storage or the clock.
package layout

import (
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/theme"
)

// Page dimensions in points. 210:297 portrait, two points per millimetre, so
// every offset below reads directly in page units.
const (
	PageWidth  = 420.0
	PageHeight = 594.0

	Margin       = 40.0
	ContentWidth = PageWidth - 2*Margin

	LogoSize        = 70.0
	IdentityHeight  = 100.0
	PhotoHeight     = 100.0
	RowHeight       = 20.0
	HeaderRowHeight = 20.0
	BlockSpacing    = 10.0

	// Text sizes as originally authored. The large variant adds the theme's
	// increment on top of these recorded values, never on current values.
	SizeLabel = 6.0
	SizeSmall = 8.0
	SizeBody  = 9.0
	SizeTitle = 16.0
)

// BlockName identifies one of the five fixed page regions.
type BlockName string

const (
	BlockHeader   BlockName = "header"
	BlockIdentity BlockName = "identity"
	BlockPhoto    BlockName = "photo"
	BlockItems    BlockName = "items"
	BlockTotals   BlockName = "totals"
)

// ElementID keys the arena of recorded original styles.
type ElementID int

// Frame is an absolute page rectangle, origin at the top-left.
type Frame struct {
	X, Y, W, H float64
}

// Align controls horizontal text placement within its frame.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Weight selects the font handle within the resolved font set.
type Weight int

const (
	WeightRegular Weight = iota
	WeightMedium
	WeightBold
)

// TextStyle is the fully resolved style of one text element.
type TextStyle struct {
	Font   string
	Weight Weight
	Size   float64
	Color  theme.RGB
}

// Text is one positioned string.
type Text struct {
	ID      ElementID
	Frame   Frame
	Content string
	Style   TextStyle
	Align   Align
	// Accent marks elements tinted with the theme accent; the rest keep
	// their recorded original color under every variant.
	Accent bool
}

// Rule is a horizontal separator line.
type Rule struct {
	Frame  Frame
	Color  theme.RGB
	Accent bool
}

// Image is raw picture bytes placed on the page.
type Image struct {
	Frame Frame
	Data  []byte
}

// Block is one page region with its elements in draw order.
type Block struct {
	Name   BlockName
	Frame  Frame
	Texts  []Text
	Rules  []Rule
	Images []Image
}

// original is the arena entry recorded at construction time.
type original struct {
	size  float64
	color theme.RGB
}

// Layout is the positioned page. ApplyTheme restyles elements in place but
// always derives from the recorded originals, so reapplying the default
// variant restores the exact construction-time output.
type Layout struct {
	Blocks []Block

	originals map[ElementID]original
	nextID    ElementID
}

// Density is a uniform display transform. Both densities share the identical
// block tree; only the scale and top offset differ.
type Density struct {
	Name      string
	Scale     float64
	TopOffset float64
}

var (
	// Compact shrinks the page for display beside editor chrome.
	Compact = Density{Name: "compact", Scale: 0.8, TopOffset: 55}
	// Full shows the page at natural size during a theming session.
	Full = Density{Name: "full", Scale: 1.0, TopOffset: 120}
)

// Placement returns the on-screen frame of the whole page under a density.
// The block tree itself is never rescaled.
func (l *Layout) Placement(d Density) Frame {
	return Frame{
		X: 0,
		Y: d.TopOffset,
		W: PageWidth * d.Scale,
		H: PageHeight * d.Scale,
	}
}

// Block returns the named block, or nil if the document did not produce it.
func (l *Layout) Block(name BlockName) *Block {
	for i := range l.Blocks {
		if l.Blocks[i].Name == name {
			return &l.Blocks[i]
		}
	}
	return nil
}

// Order returns the block names in vertical position order.
func (l *Layout) Order() []BlockName {
	out := make([]BlockName, 0, len(l.Blocks))
	for _, b := range l.Blocks {
		out = append(out, b.Name)
	}
	return out
}
