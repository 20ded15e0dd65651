package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	profiledomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/profile/domain"
)

type updateProfileRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// @Summary      Get Profile
// @Description  Get the business profile printed on documents
// @Tags         profile
// @Produce      json
// @Success      200  {object}  profiledomain.Response
// @Router       /profile [get]
func (s *Server) GetProfile(c *gin.Context) {
	resp, err := s.profileSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Update Profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body updateProfileRequest true "Update Profile Request"
// @Success      200  {object}  profiledomain.Response
// @Router       /profile [put]
func (s *Server) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.profileSvc.Update(c.Request.Context(), profiledomain.UpdateRequest{
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

// maxLogoBytes caps uploaded logo size.
const maxLogoBytes = 2 << 20

// @Summary      Set Profile Logo
// @Description  Upload the logo image shown in document headers
// @Tags         profile
// @Accept       octet-stream
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /profile/logo [put]
func (s *Server) SetProfileLogo(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxLogoBytes+1))
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if len(data) == 0 || len(data) > maxLogoBytes {
		AbortWithError(c, newValidationError("logo", "invalid_logo", "logo must be 1 byte to 2 MiB"))
		return
	}

	if err := s.profileSvc.SetLogo(c.Request.Context(), data); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
