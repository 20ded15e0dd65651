package export

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/document"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/layout"
	"github.com/jung-kurt/gofpdf"
)

var (
	ErrExportFailed = errors.New("export_failed")
	// ErrPageOverflow rejects documents whose item rows run past the page
	// bottom instead of silently producing a clipped artifact.
	ErrPageOverflow = errors.New("page_overflow")
)

// RenderPDF draws the positioned block tree into a single-page PDF, fully in
// memory. The layout is consumed as-is; no reflow happens here.
func RenderPDF(doc document.Document, l *layout.Layout) (Artifact, error) {
	if overflows(l) {
		return Artifact{}, fmt.Errorf("document %d: %w", doc.Number, ErrPageOverflow)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: layout.PageWidth, Ht: layout.PageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	imageSeq := 0
	for _, block := range l.Blocks {
		for _, img := range block.Images {
			imageSeq++
			if err := drawImage(pdf, img, imageSeq); err != nil {
				return Artifact{}, fmt.Errorf("document %d: %w", doc.Number, err)
			}
		}
		for _, rule := range block.Rules {
			pdf.SetDrawColor(rule.Color.R, rule.Color.G, rule.Color.B)
			pdf.SetLineWidth(rule.Frame.H)
			pdf.Line(rule.Frame.X, rule.Frame.Y, rule.Frame.X+rule.Frame.W, rule.Frame.Y)
		}
		for _, text := range block.Texts {
			drawText(pdf, text)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Artifact{}, fmt.Errorf("document %d: %w: %v", doc.Number, ErrExportFailed, err)
	}
	return Artifact{
		Bytes:    buf.Bytes(),
		Filename: Filename(doc.Kind, doc.Number),
		Number:   doc.Number,
	}, nil
}

// overflows reports whether the last block's bottom edge passes the page
// margin. Layout itself is total; the cap is an export-time policy.
func overflows(l *layout.Layout) bool {
	if len(l.Blocks) == 0 {
		return false
	}
	last := l.Blocks[len(l.Blocks)-1].Frame
	return last.Y+last.H > layout.PageHeight-layout.Margin
}

func drawText(pdf *gofpdf.Fpdf, text layout.Text) {
	style := ""
	if text.Style.Weight == layout.WeightBold {
		style = "B"
	}
	pdf.SetFont(text.Style.Font, style, text.Style.Size)
	pdf.SetTextColor(text.Style.Color.R, text.Style.Color.G, text.Style.Color.B)

	align := "L"
	switch text.Align {
	case layout.AlignCenter:
		align = "C"
	case layout.AlignRight:
		align = "R"
	}
	pdf.SetXY(text.Frame.X, text.Frame.Y)
	pdf.CellFormat(text.Frame.W, text.Frame.H, text.Content, "", 0, align+"T", false, 0, "")
}

func drawImage(pdf *gofpdf.Fpdf, img layout.Image, seq int) error {
	kind := imageType(img.Data)
	if kind == "" {
		return fmt.Errorf("%w: unsupported image format", ErrExportFailed)
	}
	name := fmt.Sprintf("img-%d", seq)
	opts := gofpdf.ImageOptions{ImageType: kind, ReadDpi: false}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))
	if pdf.Err() {
		return fmt.Errorf("%w: %v", ErrExportFailed, pdf.Error())
	}
	pdf.ImageOptions(name, img.Frame.X, img.Frame.Y, img.Frame.W, img.Frame.H, false, opts, 0, "")
	return nil
}

func imageType(data []byte) string {
	switch {
	case len(data) > 8 && bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return "PNG"
	case len(data) > 3 && bytes.HasPrefix(data, []byte("\xff\xd8\xff")):
		return "JPG"
	}
	return ""
}
