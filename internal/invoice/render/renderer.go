package render

import (
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/document"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/theme"
)

// RenderInput is the deterministic input for the HTML preview.
type RenderInput struct {
	Document document.Document
	Theme    theme.Theme
}

type Renderer interface {
	RenderHTML(input RenderInput) (string, error)
}
