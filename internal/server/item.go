package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	itemdomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/item/domain"
	"github.com/WotanCode88/Estimate-Invoice-Pro/pkg/db/pagination"
)

type createItemRequest struct {
	Name     string  `json:"name"`
	Details  string  `json:"details"`
	UnitType string  `json:"unit_type"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Discount int     `json:"discount"`
	Tax      int     `json:"tax"`
}

// @Summary      Create Item
// @Description  Create a reusable catalog item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        request body createItemRequest true "Create Item Request"
// @Success      200  {object}  itemdomain.Response
// @Router       /items [post]
func (s *Server) CreateItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.itemSvc.Create(c.Request.Context(), itemdomain.CreateRequest{
		Name:     strings.TrimSpace(req.Name),
		Details:  strings.TrimSpace(req.Details),
		UnitType: strings.TrimSpace(req.UnitType),
		Price:    req.Price,
		Quantity: req.Quantity,
		Discount: req.Discount,
		Tax:      req.Tax,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      List Items
// @Tags         items
// @Produce      json
// @Param        name        query  string  false  "Name prefix"
// @Param        page_token  query  string  false  "Page Token"
// @Param        page_size   query  int     false  "Page Size"
// @Success      200  {object}  itemdomain.ListResponse
// @Router       /items [get]
func (s *Server) ListItems(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Name string `form:"name"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.itemSvc.List(c.Request.Context(), itemdomain.ListRequest{
		Pagination: query.Pagination,
		Name:       strings.TrimSpace(query.Name),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Get Item
// @Tags         items
// @Produce      json
// @Param        id  path  string  true  "Item ID"
// @Success      200  {object}  itemdomain.Response
// @Router       /items/{id} [get]
func (s *Server) GetItem(c *gin.Context) {
	resp, err := s.itemSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Delete Item
// @Tags         items
// @Produce      json
// @Param        id  path  string  true  "Item ID"
// @Success      200  {object}  map[string]string
// @Router       /items/{id} [delete]
func (s *Server) DeleteItem(c *gin.Context) {
	if err := s.itemSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
