package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	clientdomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/client/domain"
	invoicedomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/domain"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/export"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/theme"
	itemdomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/item/domain"
	profiledomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/profile/domain"
)

// apiError is the wire shape of every error response.
type apiError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e apiError) Error() string { return e.Message }

var ErrNotFound = apiError{Status: http.StatusNotFound, Code: "not_found", Message: "resource not found"}

func invalidRequestError() apiError {
	return apiError{Status: http.StatusBadRequest, Code: "invalid_request", Message: "invalid request body"}
}

func newValidationError(field, code, message string) apiError {
	return apiError{Status: http.StatusBadRequest, Code: code, Message: message, Field: field}
}

// statusByErr maps domain sentinels onto HTTP statuses. Anything unmapped is
// a 500 with an opaque message.
var statusByErr = map[error]int{
	clientdomain.ErrInvalidClientID:     http.StatusBadRequest,
	clientdomain.ErrInvalidName:         http.StatusBadRequest,
	clientdomain.ErrClientNotFound:      http.StatusNotFound,
	itemdomain.ErrInvalidItemID:         http.StatusBadRequest,
	itemdomain.ErrInvalidItem:           http.StatusBadRequest,
	itemdomain.ErrItemNotFound:          http.StatusNotFound,
	invoicedomain.ErrInvalidInvoiceID:   http.StatusBadRequest,
	invoicedomain.ErrInvoiceNotFound:    http.StatusNotFound,
	invoicedomain.ErrInvalidCurrency:    http.StatusBadRequest,
	invoicedomain.ErrInvalidKind:        http.StatusBadRequest,
	invoicedomain.ErrInvalidLineItem:    http.StatusBadRequest,
	invoicedomain.ErrNoLineItems:        http.StatusBadRequest,
	invoicedomain.ErrAlreadyPaid:        http.StatusConflict,
	invoicedomain.ErrInvalidPayMethod:   http.StatusBadRequest,
	invoicedomain.ErrNotEstimate:        http.StatusConflict,
	profiledomain.ErrProfileNotFound:    http.StatusNotFound,
	profiledomain.ErrInvalidName:        http.StatusBadRequest,
	theme.ErrUnknownColor:               http.StatusBadRequest,
	theme.ErrUnknownFont:                http.StatusBadRequest,
	theme.ErrUnknownSize:                http.StatusBadRequest,
	theme.ErrEntitlementRequired:        http.StatusPaymentRequired,
	export.ErrPageOverflow:              http.StatusUnprocessableEntity,
	export.ErrExportFailed:              http.StatusInternalServerError,
}

// AbortWithError writes the mapped error response and stops the handler
// chain.
func AbortWithError(c *gin.Context, err error) {
	var api apiError
	if errors.As(err, &api) {
		c.AbortWithStatusJSON(api.Status, gin.H{"error": api})
		return
	}

	for sentinel, status := range statusByErr {
		if errors.Is(err, sentinel) {
			c.AbortWithStatusJSON(status, gin.H{"error": apiError{
				Status:  status,
				Code:    sentinel.Error(),
				Message: err.Error(),
			}})
			return
		}
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": apiError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "internal error",
	}})
}
