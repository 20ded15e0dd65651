package layout

import (
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/theme"
)

// ApplyTheme restyles every element from its recorded original size and
// color. Sizes are original plus the theme's increment, never the current
// value plus the increment, so applying variants in any order and then the
// default variant restores the construction-time output exactly.
func (l *Layout) ApplyTheme(t theme.Theme) {
	for bi := range l.Blocks {
		block := &l.Blocks[bi]
		for ti := range block.Texts {
			text := &block.Texts[ti]
			orig, ok := l.originals[text.ID]
			if !ok {
				continue
			}

			text.Style.Size = orig.size + t.SizeIncrement
			switch text.Style.Weight {
			case WeightBold:
				text.Style.Font = t.Fonts.Bold
			case WeightMedium:
				text.Style.Font = t.Fonts.Medium
			default:
				text.Style.Font = t.Fonts.Regular
			}
			if text.Accent {
				text.Style.Color = t.Accent
			} else {
				text.Style.Color = orig.color
			}
		}
		for ri := range block.Rules {
			rule := &block.Rules[ri]
			if rule.Accent {
				rule.Color = t.Accent
			}
		}
	}
}
