package server

import (
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	invoicedomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/domain"
	"github.com/WotanCode88/Estimate-Invoice-Pro/pkg/db/pagination"
)

type lineItemRequest struct {
	Name     string  `json:"name"`
	Details  string  `json:"details"`
	UnitType string  `json:"unit_type"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Discount int     `json:"discount"`
	Tax      int     `json:"tax"`
}

type createInvoiceRequest struct {
	Kind     string            `json:"kind"`
	IssuedAt string            `json:"issued_at"`
	DueAt    string            `json:"due_at"`
	ClientID string            `json:"client_id"`
	Currency string            `json:"currency"`
	Photo    string            `json:"photo"`
	Notes    string            `json:"notes"`
	Items    []lineItemRequest `json:"items"`
}

// @Summary      Create Invoice
// @Description  Create an invoice or estimate with its line items
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        request body createInvoiceRequest true "Create Invoice Request"
// @Success      200  {object}  invoicedomain.Response
// @Router       /invoices [post]
func (s *Server) CreateInvoice(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	issuedAt, err := parseOptionalDate(req.IssuedAt)
	if err != nil {
		AbortWithError(c, newValidationError("issued_at", "invalid_issued_at", "invalid issued_at"))
		return
	}
	dueAt, err := parseOptionalDate(req.DueAt)
	if err != nil {
		AbortWithError(c, newValidationError("due_at", "invalid_due_at", "invalid due_at"))
		return
	}

	var photo []byte
	if raw := strings.TrimSpace(req.Photo); raw != "" {
		photo, err = base64.StdEncoding.DecodeString(raw)
		if err != nil {
			AbortWithError(c, newValidationError("photo", "invalid_photo", "photo must be base64"))
			return
		}
	}

	create := invoicedomain.CreateRequest{
		Kind:     invoicedomain.Kind(strings.ToUpper(strings.TrimSpace(req.Kind))),
		ClientID: strings.TrimSpace(req.ClientID),
		Currency: strings.TrimSpace(req.Currency),
		Photo:    photo,
		Notes:    strings.TrimSpace(req.Notes),
	}
	if issuedAt != nil {
		create.IssuedAt = *issuedAt
	}
	create.DueAt = dueAt
	for _, item := range req.Items {
		create.Items = append(create.Items, invoicedomain.LineItemInput{
			Name:     strings.TrimSpace(item.Name),
			Details:  strings.TrimSpace(item.Details),
			UnitType: strings.TrimSpace(item.UnitType),
			Price:    item.Price,
			Quantity: item.Quantity,
			Discount: item.Discount,
			Tax:      item.Tax,
		})
	}

	resp, err := s.invoiceSvc.Create(c.Request.Context(), create)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      List Invoices
// @Description  List invoices and estimates
// @Tags         invoices
// @Produce      json
// @Param        kind        query  string  false  "INVOICE or ESTIMATE"
// @Param        paid        query  bool    false  "Paid filter"
// @Param        page_token  query  string  false  "Page Token"
// @Param        page_size   query  int     false  "Page Size"
// @Success      200  {object}  invoicedomain.ListResponse
// @Router       /invoices [get]
func (s *Server) ListInvoices(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Kind string `form:"kind"`
		Paid *bool  `form:"paid"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.invoiceSvc.List(c.Request.Context(), invoicedomain.ListRequest{
		Pagination: query.Pagination,
		Kind:       invoicedomain.Kind(strings.ToUpper(strings.TrimSpace(query.Kind))),
		Paid:       query.Paid,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Get Invoice
// @Tags         invoices
// @Produce      json
// @Param        id  path  string  true  "Invoice ID"
// @Success      200  {object}  invoicedomain.Response
// @Router       /invoices/{id} [get]
func (s *Server) GetInvoice(c *gin.Context) {
	resp, err := s.invoiceSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Delete Invoice
// @Tags         invoices
// @Produce      json
// @Param        id  path  string  true  "Invoice ID"
// @Success      200  {object}  map[string]string
// @Router       /invoices/{id} [delete]
func (s *Server) DeleteInvoice(c *gin.Context) {
	if err := s.invoiceSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

type markPaidRequest struct {
	Method string `json:"method"`
}

// @Summary      Mark Invoice Paid
// @Description  One-way Unpaid to Paid transition with a payment method
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path  string           true  "Invoice ID"
// @Param        request  body  markPaidRequest  true  "Payment method"
// @Success      200  {object}  invoicedomain.Response
// @Router       /invoices/{id}/paid [post]
func (s *Server) MarkInvoicePaid(c *gin.Context) {
	var req markPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.invoiceSvc.MarkPaid(c.Request.Context(), c.Param("id"),
		invoicedomain.PaymentMethod(strings.TrimSpace(req.Method)))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Convert Estimate
// @Description  One-way Estimate to Invoice conversion
// @Tags         invoices
// @Produce      json
// @Param        id  path  string  true  "Estimate ID"
// @Success      200  {object}  invoicedomain.Response
// @Router       /invoices/{id}/convert [post]
func (s *Server) ConvertEstimate(c *gin.Context) {
	resp, err := s.invoiceSvc.ConvertToInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func parseOptionalDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, value); err == nil {
			ts = ts.UTC()
			return &ts, nil
		}
	}
	return nil, newValidationError("date", "invalid_date", "invalid date")
}
