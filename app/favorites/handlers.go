package favorites

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/atlas/app/api"
	"github.com/joefazee/atlas/models"
)

// Handler handles HTTP requests for favorites
type Handler struct {
	service Service
}

// NewHandler creates a new favorites handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListFavorites godoc
// @Summary      List favorites
// @Description  Favorite codes resolved to country records
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  api.Response{data=[]FavoriteCountry}
// @Failure      401  {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/favorites [get]
func (h *Handler) ListFavorites(c *gin.Context) {
	resolved, err := h.service.List(c.Request.Context())
	if err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			api.UnauthorizedResponse(c)
			return
		}
		api.InternalErrorResponse(c, "Failed to list favorites")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Favorites retrieved successfully", resolved)
}

// ToggleFavorite godoc
// @Summary      Toggle a favorite
// @Description  Flip membership of a country code in the favorites set
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        code  path      string  true  "Country code (cca3)"
// @Success      200   {object}  api.Response{data=ToggleResponse}
// @Failure      401   {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/favorites/{code} [post]
func (h *Handler) ToggleFavorite(c *gin.Context) {
	resp, err := h.service.Toggle(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			api.UnauthorizedResponse(c)
			return
		}
		api.InternalErrorResponse(c, "Failed to toggle favorite")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Favorite toggled", resp)
}

// GetFavorite godoc
// @Summary      Favorite membership
// @Description  Report whether a country code is a favorite
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        code  path      string  true  "Country code (cca3)"
// @Success      200   {object}  api.Response{data=MembershipResponse}
// @Router       /api/v1/favorites/{code} [get]
func (h *Handler) GetFavorite(c *gin.Context) {
	resp, err := h.service.Membership(c.Param("code"))
	if err != nil {
		api.InternalErrorResponse(c, "Failed to check favorite")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Favorite membership retrieved", resp)
}
