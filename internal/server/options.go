package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	invoicedomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/domain"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/theme"
)

// @Summary      List Currencies
// @Description  List selectable currencies, built-in plus remote
// @Tags         options
// @Produce      json
// @Success      200  {object}  []currency.Currency
// @Router       /currencies [get]
func (s *Server) ListCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.currencySvc.List(c.Request.Context())})
}

// @Summary      List Payment Methods
// @Description  Fixed payment method set for the mark-as-paid action
// @Tags         options
// @Produce      json
// @Success      200  {object}  []invoicedomain.PaymentMethod
// @Router       /payment-methods [get]
func (s *Server) ListPaymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": invoicedomain.PaymentMethods})
}

type themeOption struct {
	ID    string `json:"id"`
	Gated bool   `json:"gated"`
}

// @Summary      List Theme Options
// @Description  Available accent colors, fonts and sizes with their gates
// @Tags         options
// @Produce      json
// @Success      200  {object}  map[string][]themeOption
// @Router       /themes [get]
func (s *Server) ListThemeOptions(c *gin.Context) {
	colors := make([]themeOption, 0, len(theme.Colors()))
	for _, id := range theme.Colors() {
		colors = append(colors, themeOption{
			ID:    string(id),
			Gated: theme.Gated(theme.Variant{Color: id, Font: theme.FontNormal, Size: theme.SizeStandard}),
		})
	}
	fonts := []themeOption{
		{ID: string(theme.FontNormal)},
		{ID: string(theme.FontClassic), Gated: true},
		{ID: string(theme.FontRound), Gated: true},
	}
	sizes := []themeOption{
		{ID: string(theme.SizeStandard)},
		{ID: string(theme.SizeLarge), Gated: true},
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"colors": colors,
		"fonts":  fonts,
		"sizes":  sizes,
	}})
}
