// Package theme resolves a requested document appearance into concrete
// colors, fonts and size adjustments, enforcing entitlement gates.
package theme

import "errors"

// ColorID names one of the fixed accent palette entries.
type ColorID string

const (
	ColorDefault ColorID = "default"
	ColorBlue    ColorID = "blue"
	ColorOrange  ColorID = "orange"
	ColorSea     ColorID = "sea"
	ColorPurple  ColorID = "purple"
	ColorGreen   ColorID = "green"
	ColorSlate   ColorID = "slate"
)

// FontFamilyID names one of the offered font families.
type FontFamilyID string

const (
	FontNormal  FontFamilyID = "normal"
	FontClassic FontFamilyID = "classic"
	FontRound   FontFamilyID = "round"
)

// FontSizeID names the document-wide size setting.
type FontSizeID string

const (
	SizeStandard FontSizeID = "standard"
	SizeLarge    FontSizeID = "large"
)

// Variant is a requested appearance, as stored in user settings or passed
// on a render request.
type Variant struct {
	Color ColorID      `json:"color"`
	Font  FontFamilyID `json:"font"`
	Size  FontSizeID   `json:"size"`
}

// DefaultVariant is the appearance every business starts with. It is always
// available regardless of entitlement.
var DefaultVariant = Variant{Color: ColorDefault, Font: FontNormal, Size: SizeStandard}

// RGB is an accent color in 0..255 components.
type RGB struct {
	R, G, B int
}

// FontSet maps a family to the concrete renderer font names per weight.
type FontSet struct {
	Regular string
	Medium  string
	Bold    string
}

// Theme is a fully resolved appearance ready for the layout engine.
type Theme struct {
	Variant Variant
	Accent  RGB
	Fonts   FontSet
	// SizeIncrement is added to every recorded original font size. Standard
	// resolves to 0, large to 1.
	SizeIncrement float64
}

var (
	ErrUnknownColor = errors.New("unknown_color")
	ErrUnknownFont  = errors.New("unknown_font")
	ErrUnknownSize  = errors.New("unknown_size")
	// ErrEntitlementRequired marks variants reserved for subscribed
	// businesses.
	ErrEntitlementRequired = errors.New("entitlement_required")
)

var palette = map[ColorID]RGB{
	ColorDefault: {R: 51, G: 51, B: 51},
	ColorBlue:    {R: 43, G: 94, B: 170},
	ColorOrange:  {R: 224, G: 123, B: 57},
	ColorSea:     {R: 0, G: 128, B: 128},
	ColorPurple:  {R: 112, G: 71, B: 158},
	ColorGreen:   {R: 56, G: 142, B: 60},
	ColorSlate:   {R: 84, G: 96, B: 109},
}

var fontSets = map[FontFamilyID]FontSet{
	FontNormal:  {Regular: "Helvetica", Medium: "Helvetica", Bold: "Helvetica"},
	FontClassic: {Regular: "Times", Medium: "Times", Bold: "Times"},
	FontRound:   {Regular: "Courier", Medium: "Courier", Bold: "Courier"},
}

// gatedColors are the palette entries reserved for subscribers.
var gatedColors = map[ColorID]bool{
	ColorSea:    true,
	ColorPurple: true,
	ColorGreen:  true,
}

// Gated reports whether the variant needs an entitled business. Any non-default
// font family and the large size are gated, plus part of the palette.
func Gated(v Variant) bool {
	if gatedColors[v.Color] {
		return true
	}
	if v.Font != FontNormal {
		return true
	}
	return v.Size == SizeLarge
}

// Colors returns the palette in display order.
func Colors() []ColorID {
	return []ColorID{ColorDefault, ColorBlue, ColorOrange, ColorSea, ColorPurple, ColorGreen, ColorSlate}
}

// Accent returns the RGB value for a palette entry.
func Accent(id ColorID) (RGB, bool) {
	rgb, ok := palette[id]
	return rgb, ok
}

// Fonts returns the concrete font set for a family.
func Fonts(id FontFamilyID) (FontSet, bool) {
	set, ok := fontSets[id]
	return set, ok
}
