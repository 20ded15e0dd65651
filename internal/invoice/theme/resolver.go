package theme

import (
	"context"

	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/entitlement"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Resolver turns requested variants into resolved themes, rejecting gated
// variants for unentitled businesses. Resolution never mutates layout state,
// so re-resolving the same variant always yields the same theme.
type Resolver struct {
	log         *zap.Logger
	entitlement entitlement.Service
}

type ResolverParams struct {
	fx.In

	Log         *zap.Logger
	Entitlement entitlement.Service
}

func NewResolver(p ResolverParams) *Resolver {
	return &Resolver{
		log:         p.Log.Named("invoice.theme"),
		entitlement: p.Entitlement,
	}
}

// Resolve validates the variant, checks the entitlement gate and returns the
// concrete theme. On any failure the caller keeps its current theme.
func (r *Resolver) Resolve(ctx context.Context, v Variant) (Theme, error) {
	if v.Color == "" {
		v.Color = ColorDefault
	}
	if v.Font == "" {
		v.Font = FontNormal
	}
	if v.Size == "" {
		v.Size = SizeStandard
	}

	accent, ok := palette[v.Color]
	if !ok {
		return Theme{}, ErrUnknownColor
	}
	fonts, ok := fontSets[v.Font]
	if !ok {
		return Theme{}, ErrUnknownFont
	}
	if v.Size != SizeStandard && v.Size != SizeLarge {
		return Theme{}, ErrUnknownSize
	}

	if Gated(v) {
		entitled, err := r.entitlement.IsEntitled(ctx)
		if err != nil {
			return Theme{}, err
		}
		if !entitled {
			r.log.Debug("gated variant rejected",
				zap.String("color", string(v.Color)),
				zap.String("font", string(v.Font)),
				zap.String("size", string(v.Size)),
			)
			return Theme{}, ErrEntitlementRequired
		}
	}

	var increment float64
	if v.Size == SizeLarge {
		increment = 1
	}
	return Theme{
		Variant:       v,
		Accent:        accent,
		Fonts:         fonts,
		SizeIncrement: increment,
	}, nil
}
