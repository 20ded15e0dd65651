package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	clientdomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/client/domain"
	"github.com/WotanCode88/Estimate-Invoice-Pro/pkg/db/pagination"
)

type createClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// @Summary      Create Client
// @Description  Create a new client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        request body createClientRequest true "Create Client Request"
// @Success      200  {object}  clientdomain.Response
// @Router       /clients [post]
func (s *Server) CreateClient(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.clientSvc.Create(c.Request.Context(), clientdomain.CreateRequest{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Address: strings.TrimSpace(req.Address),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      List Clients
// @Description  List clients filtered by name prefix
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        name        query  string  false  "Name prefix"
// @Param        page_token  query  string  false  "Page Token"
// @Param        page_size   query  int     false  "Page Size"
// @Success      200  {object}  clientdomain.ListResponse
// @Router       /clients [get]
func (s *Server) ListClients(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Name string `form:"name"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.clientSvc.List(c.Request.Context(), clientdomain.ListRequest{
		Pagination: query.Pagination,
		Name:       strings.TrimSpace(query.Name),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Get Client
// @Tags         clients
// @Produce      json
// @Param        id  path  string  true  "Client ID"
// @Success      200  {object}  clientdomain.Response
// @Router       /clients/{id} [get]
func (s *Server) GetClient(c *gin.Context) {
	resp, err := s.clientSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Delete Client
// @Tags         clients
// @Produce      json
// @Param        id  path  string  true  "Client ID"
// @Success      200  {object}  map[string]string
// @Router       /clients/{id} [delete]
func (s *Server) DeleteClient(c *gin.Context) {
	if err := s.clientSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
