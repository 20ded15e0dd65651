package theme

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

type fakeEntitlement struct {
	entitled bool
	err      error
}

func (f fakeEntitlement) IsEntitled(context.Context) (bool, error) {
	return f.entitled, f.err
}

func newTestResolver(entitled bool) *Resolver {
	return NewResolver(ResolverParams{
		Log:         zap.NewNop(),
		Entitlement: fakeEntitlement{entitled: entitled},
	})
}

func TestResolveDefaultVariant(t *testing.T) {
	r := newTestResolver(false)

	resolved, err := r.Resolve(context.Background(), DefaultVariant)
	if err != nil {
		t.Fatalf("default variant should always resolve: %v", err)
	}
	if resolved.SizeIncrement != 0 {
		t.Fatalf("standard size increment = %v, want 0", resolved.SizeIncrement)
	}
	if resolved.Fonts.Regular != "Helvetica" {
		t.Fatalf("default font = %q", resolved.Fonts.Regular)
	}
}

func TestResolveEmptyFieldsFallBackToDefaults(t *testing.T) {
	r := newTestResolver(false)

	resolved, err := r.Resolve(context.Background(), Variant{})
	if err != nil {
		t.Fatalf("empty variant should resolve to defaults: %v", err)
	}
	if resolved.Variant != DefaultVariant {
		t.Fatalf("variant = %+v, want defaults", resolved.Variant)
	}
}

func TestGatedVariantRefusedWithoutEntitlement(t *testing.T) {
	r := newTestResolver(false)

	gated := []Variant{
		{Color: ColorSea, Font: FontNormal, Size: SizeStandard},
		{Color: ColorPurple, Font: FontNormal, Size: SizeStandard},
		{Color: ColorGreen, Font: FontNormal, Size: SizeStandard},
		{Color: ColorDefault, Font: FontClassic, Size: SizeStandard},
		{Color: ColorDefault, Font: FontRound, Size: SizeStandard},
		{Color: ColorDefault, Font: FontNormal, Size: SizeLarge},
	}
	for _, v := range gated {
		if _, err := r.Resolve(context.Background(), v); !errors.Is(err, ErrEntitlementRequired) {
			t.Fatalf("variant %+v: err = %v, want ErrEntitlementRequired", v, err)
		}
	}
}

func TestGatedVariantResolvesWithEntitlement(t *testing.T) {
	r := newTestResolver(true)

	resolved, err := r.Resolve(context.Background(), Variant{
		Color: ColorSea, Font: FontClassic, Size: SizeLarge,
	})
	if err != nil {
		t.Fatalf("entitled gated variant failed: %v", err)
	}
	if resolved.SizeIncrement != 1 {
		t.Fatalf("large size increment = %v, want 1", resolved.SizeIncrement)
	}
	if resolved.Fonts.Regular != "Times" {
		t.Fatalf("classic font = %q, want Times", resolved.Fonts.Regular)
	}
}

func TestUngatedColorsResolveWithoutEntitlement(t *testing.T) {
	r := newTestResolver(false)

	for _, id := range []ColorID{ColorDefault, ColorBlue, ColorOrange, ColorSlate} {
		if _, err := r.Resolve(context.Background(), Variant{Color: id}); err != nil {
			t.Fatalf("color %s should not be gated: %v", id, err)
		}
	}
}

func TestResolveUnknownIdentifiers(t *testing.T) {
	r := newTestResolver(true)

	if _, err := r.Resolve(context.Background(), Variant{Color: "magenta"}); !errors.Is(err, ErrUnknownColor) {
		t.Fatalf("err = %v, want ErrUnknownColor", err)
	}
	if _, err := r.Resolve(context.Background(), Variant{Font: "comic"}); !errors.Is(err, ErrUnknownFont) {
		t.Fatalf("err = %v, want ErrUnknownFont", err)
	}
	if _, err := r.Resolve(context.Background(), Variant{Size: "huge"}); !errors.Is(err, ErrUnknownSize) {
		t.Fatalf("err = %v, want ErrUnknownSize", err)
	}
}
