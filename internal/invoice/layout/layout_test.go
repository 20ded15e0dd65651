package layout

import (
	"reflect"
	"testing"

	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/document"
	domain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/domain"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/theme"
)

// Minimal valid PNG header so image elements look real to the composer.
var pngStub = []byte("\x89PNG\r\n\x1a\nstub")

func sampleDocument(lines int, photo bool) document.Document {
	inv := &domain.Invoice{
		Number:   3,
		Kind:     domain.KindInvoice,
		Currency: "USD",
	}
	for i := 0; i < lines; i++ {
		inv.Items = append(inv.Items, domain.LineItem{
			Name: "Line", Price: 10, Quantity: 1 + i,
		})
	}
	if photo {
		inv.Photo = pngStub
	}
	return document.Build(inv, nil, nil, "$")
}

func defaultTheme(t *testing.T) theme.Theme {
	t.Helper()
	accent, ok := theme.Accent(theme.ColorDefault)
	if !ok {
		t.Fatal("default accent missing")
	}
	fonts, ok := theme.Fonts(theme.FontNormal)
	if !ok {
		t.Fatal("normal font set missing")
	}
	return theme.Theme{Variant: theme.DefaultVariant, Accent: accent, Fonts: fonts}
}

func largeClassicTheme(t *testing.T) theme.Theme {
	t.Helper()
	accent, _ := theme.Accent(theme.ColorSea)
	fonts, _ := theme.Fonts(theme.FontClassic)
	return theme.Theme{
		Variant:       theme.Variant{Color: theme.ColorSea, Font: theme.FontClassic, Size: theme.SizeLarge},
		Accent:        accent,
		Fonts:         fonts,
		SizeIncrement: 1,
	}
}

func blockOrder(l *Layout) []BlockName {
	return l.Order()
}

func TestBlockOrderWithoutPhoto(t *testing.T) {
	l := Compose(sampleDocument(3, false))

	want := []BlockName{BlockHeader, BlockIdentity, BlockItems, BlockTotals}
	if got := blockOrder(l); !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestBlockOrderWithPhoto(t *testing.T) {
	l := Compose(sampleDocument(3, true))

	want := []BlockName{BlockHeader, BlockIdentity, BlockPhoto, BlockItems, BlockTotals}
	if got := blockOrder(l); !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestPhotoOnlyShiftsLaterBlocks(t *testing.T) {
	without := Compose(sampleDocument(2, false))
	with := Compose(sampleDocument(2, true))

	for _, name := range []BlockName{BlockHeader, BlockIdentity} {
		a, b := without.Block(name), with.Block(name)
		if a.Frame != b.Frame {
			t.Fatalf("%s moved when photo added: %+v vs %+v", name, a.Frame, b.Frame)
		}
	}

	shift := PhotoHeight + BlockSpacing
	for _, name := range []BlockName{BlockItems, BlockTotals} {
		a, b := without.Block(name), with.Block(name)
		if b.Frame.Y-a.Frame.Y != shift {
			t.Fatalf("%s shifted by %v, want %v", name, b.Frame.Y-a.Frame.Y, shift)
		}
		if a.Frame.H != b.Frame.H || a.Frame.X != b.Frame.X {
			t.Fatalf("%s changed shape when photo added", name)
		}
	}
}

func TestZeroItemsRendersHeaderOnly(t *testing.T) {
	l := Compose(sampleDocument(0, false))

	items := l.Block(BlockItems)
	if items == nil {
		t.Fatal("items block missing")
	}
	if items.Frame.H != HeaderRowHeight {
		t.Fatalf("items height = %v, want header row only %v", items.Frame.H, HeaderRowHeight)
	}

	totals := l.Block(BlockTotals)
	if totals.Frame.Y != items.Frame.Y+items.Frame.H+BlockSpacing {
		t.Fatalf("totals not attached below header: %v", totals.Frame.Y)
	}
}

func TestRowCountGrowsItemsBlock(t *testing.T) {
	small := Compose(sampleDocument(1, false))
	big := Compose(sampleDocument(6, false))

	diff := big.Block(BlockItems).Frame.H - small.Block(BlockItems).Frame.H
	if diff != 5*RowHeight {
		t.Fatalf("5 extra rows grew block by %v, want %v", diff, 5*RowHeight)
	}
}

func TestApplyThemeIdempotence(t *testing.T) {
	l := Compose(sampleDocument(2, true))

	snapshot := snapshotBlocks(l)

	// Churn through a gated variant a few times, then back to default.
	l.ApplyTheme(largeClassicTheme(t))
	l.ApplyTheme(largeClassicTheme(t))
	l.ApplyTheme(defaultTheme(t))

	if !reflect.DeepEqual(snapshot, snapshotBlocks(l)) {
		t.Fatal("default theme after variant churn did not restore original styles")
	}
}

func TestApplyThemeUsesOriginalSizes(t *testing.T) {
	l := Compose(sampleDocument(1, false))

	large := largeClassicTheme(t)
	l.ApplyTheme(large)
	l.ApplyTheme(large)

	// Double application must not double the increment.
	header := l.Block(BlockHeader)
	for _, text := range header.Texts {
		if text.Content == "INVOICE" && text.Style.Size != SizeTitle+1 {
			t.Fatalf("title size = %v, want %v", text.Style.Size, SizeTitle+1)
		}
	}
}

func TestDensitiesShareBlockTree(t *testing.T) {
	l := Compose(sampleDocument(2, false))

	before := snapshotBlocks(l)
	compact := l.Placement(Compact)
	full := l.Placement(Full)
	after := snapshotBlocks(l)

	if !reflect.DeepEqual(before, after) {
		t.Fatal("density placement mutated the block tree")
	}
	if compact.W != PageWidth*0.8 || compact.Y != 55 {
		t.Fatalf("compact placement = %+v", compact)
	}
	if full.W != PageWidth || full.Y != 120 {
		t.Fatalf("full placement = %+v", full)
	}
}

func snapshotBlocks(l *Layout) []Block {
	out := make([]Block, len(l.Blocks))
	for i, b := range l.Blocks {
		nb := b
		nb.Texts = append([]Text(nil), b.Texts...)
		nb.Rules = append([]Rule(nil), b.Rules...)
		nb.Images = append([]Image(nil), b.Images...)
		out[i] = nb
	}
	return out
}
