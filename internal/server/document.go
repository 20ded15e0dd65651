package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	clientdomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/client/domain"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/currency"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/events"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/document"
	invoicedomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/domain"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/export"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/layout"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/render"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/theme"
	obscontext "github.com/WotanCode88/Estimate-Invoice-Pro/internal/observability/context"
)

type variantQuery struct {
	Color string `form:"color"`
	Font  string `form:"font"`
	Size  string `form:"size"`
}

func (q variantQuery) variant() theme.Variant {
	return theme.Variant{
		Color: theme.ColorID(q.Color),
		Font:  theme.FontFamilyID(q.Font),
		Size:  theme.FontSizeID(q.Size),
	}
}

// buildDocument assembles the themed page for one stored record. Missing
// relations degrade to empty fields; only bad ids, missing records and
// entitlement refusals error out.
func (s *Server) buildDocument(c *gin.Context, id string, v theme.Variant) (*invoicedomain.Invoice, document.Document, *layout.Layout, bool) {
	inv, err := s.invoiceSvc.GetRecord(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return nil, document.Document{}, nil, false
	}
	ctx := withDocumentNumber(c, inv.Number)

	profile, err := s.profileSvc.GetRecord(ctx)
	if err != nil {
		AbortWithError(c, err)
		return nil, document.Document{}, nil, false
	}

	client := clientOrNil(s, c, inv.ClientID)
	if c.IsAborted() {
		return nil, document.Document{}, nil, false
	}

	doc := document.Build(inv, profile, client, currency.Symbol(inv.Currency))

	resolved, err := s.resolver.Resolve(ctx, v)
	if err != nil {
		AbortWithError(c, err)
		return nil, document.Document{}, nil, false
	}

	l := layout.Compose(doc)
	l.ApplyTheme(resolved)
	return inv, doc, l, true
}

// withDocumentNumber attaches the number to the request context so the
// request log line and downstream calls carry it.
func withDocumentNumber(c *gin.Context, number int64) context.Context {
	ctx := obscontext.WithDocumentNumber(c.Request.Context(), number)
	c.Request = c.Request.WithContext(ctx)
	return ctx
}

// @Summary      Preview Document
// @Description  Render the themed HTML preview of an invoice or estimate
// @Tags         documents
// @Produce      html
// @Param        id     path   string  true   "Invoice ID"
// @Param        color  query  string  false  "Accent color"
// @Param        font   query  string  false  "Font family"
// @Param        size   query  string  false  "Font size"
// @Success      200  {string}  string
// @Router       /invoices/{id}/preview [get]
func (s *Server) PreviewDocument(c *gin.Context) {
	var query variantQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	inv, err := s.invoiceSvc.GetRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	ctx := withDocumentNumber(c, inv.Number)
	profile, err := s.profileSvc.GetRecord(ctx)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	client := clientOrNil(s, c, inv.ClientID)
	if c.IsAborted() {
		return
	}

	resolved, err := s.resolver.Resolve(ctx, query.variant())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	doc := document.Build(inv, profile, client, currency.Symbol(inv.Currency))
	html, err := s.renderer.RenderHTML(render.RenderInput{Document: doc, Theme: resolved})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// @Summary      Download Document PDF
// @Description  Stream the rendered PDF artifact
// @Tags         documents
// @Produce      application/pdf
// @Param        id     path   string  true   "Invoice ID"
// @Param        color  query  string  false  "Accent color"
// @Param        font   query  string  false  "Font family"
// @Param        size   query  string  false  "Font size"
// @Success      200  {file}  binary
// @Router       /invoices/{id}/pdf [get]
func (s *Server) DownloadDocument(c *gin.Context) {
	var query variantQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	_, doc, l, ok := s.buildDocument(c, c.Param("id"), query.variant())
	if !ok {
		return
	}

	artifact, err := export.RenderPDF(doc, l)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, "application/pdf", artifact.Bytes)
}

// @Summary      Export Document
// @Description  Write the PDF artifact into the configured export directory
// @Tags         documents
// @Produce      json
// @Param        id     path   string  true   "Invoice ID"
// @Param        color  query  string  false  "Accent color"
// @Param        font   query  string  false  "Font family"
// @Param        size   query  string  false  "Font size"
// @Success      200  {object}  map[string]string
// @Router       /invoices/{id}/export [post]
func (s *Server) ExportDocument(c *gin.Context) {
	var query variantQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	inv, doc, l, ok := s.buildDocument(c, c.Param("id"), query.variant())
	if !ok {
		return
	}

	artifact, err := s.exporter.Export(c.Request.Context(), doc, l,
		export.FileSink{Dir: s.cfg.ExportDir})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	// The artifact is already on disk; an outbox hiccup must not fail the
	// request, only the notification.
	if err := s.outbox.Publish(c.Request.Context(), events.Event{
		DocumentID: inv.ID,
		Type:       events.EventDocumentExported,
		Payload: events.DocumentPayload{
			DocumentID: inv.ID.String(),
			Number:     inv.Number,
			Kind:       string(inv.Kind),
		}.ToMap(),
		DedupeKey: fmt.Sprintf("exported:%d", inv.Number),
	}); err != nil {
		s.log.Warn("export event publish failed",
			zap.Int64("number", inv.Number), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"filename": artifact.Filename}})
}

// clientOrNil loads the referenced client, treating a deleted client as a
// missing relation (renders empty), not an error.
func clientOrNil(s *Server, c *gin.Context, id *snowflake.ID) *clientdomain.Client {
	if id == nil {
		return nil
	}
	record, err := s.clientSvc.GetRecord(c.Request.Context(), *id)
	if err != nil {
		AbortWithError(c, err)
		return nil
	}
	return record
}
