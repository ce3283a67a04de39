package countries

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/atlas/app/api"
	"github.com/joefazee/atlas/internal/validator"
	"github.com/joefazee/atlas/models"
)

// Handler handles HTTP requests for the country directory
type Handler struct {
	service Service
}

// NewHandler creates a new country handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListCountries godoc
// @Summary List visible countries
// @Description Get the countries matching the active filter criteria
// @Tags countries
// @Produce json
// @Success 200 {object} api.Response{data=[]CountrySummary}
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries [get]
func (h *Handler) ListCountries(c *gin.Context) {
	if h.service.Status() == StatusFailed {
		api.ServiceUnavailableResponse(c, h.service.LastError())
		return
	}

	visible := h.service.Visible()
	api.ListResponse(c, "Countries retrieved successfully", visible, len(visible))
}

// UpdateFilters godoc
// @Summary Update filter criteria
// @Description Merge a partial filter change and return the narrowed country list
// @Tags countries
// @Accept json
// @Produce json
// @Param request body CriteriaUpdate true "Partial filter update"
// @Success 200 {object} api.Response{data=[]CountrySummary}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries/filters [put]
func (h *Handler) UpdateFilters(c *gin.Context) {
	var req CriteriaUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	if req.Region != nil {
		v.Check(models.IsValidRegion(*req.Region), "region", "region is not a known continent")
	}
	if !v.Valid() {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	visible := h.service.UpdateFilters(req)
	api.ListResponse(c, "Filters updated", visible, len(visible))
}

// ResetFilters godoc
// @Summary Reset filter criteria
// @Description Clear all filters and return the full country list
// @Tags countries
// @Produce json
// @Success 200 {object} api.Response{data=[]CountrySummary}
// @Router /api/v1/countries/filters [delete]
func (h *Handler) ResetFilters(c *gin.Context) {
	h.service.ResetFilters()
	visible := h.service.Visible()
	api.ListResponse(c, "Filters reset", visible, len(visible))
}

// GetFilters godoc
// @Summary Get filter criteria
// @Description Return the active filter criteria
// @Tags countries
// @Produce json
// @Success 200 {object} api.Response{data=Criteria}
// @Router /api/v1/countries/filters [get]
func (h *Handler) GetFilters(c *gin.Context) {
	api.SuccessResponse(c, 200, "Filters retrieved", h.service.Criteria())
}

// GetCountryByCode godoc
// @Summary Get country by code
// @Description Get detailed information about a country by cca3, cca2 or common name
// @Tags countries
// @Produce json
// @Param code path string true "Country code"
// @Success 200 {object} api.Response{data=CountryDetail}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries/{code} [get]
func (h *Handler) GetCountryByCode(c *gin.Context) {
	code := c.Param("code")

	country, err := h.service.GetByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Country")
			return
		}
		api.ServiceUnavailableResponse(c, "Failed to fetch country")
		return
	}

	api.SuccessResponse(c, 200, "Country retrieved successfully", country)
}

// RefreshCountries godoc
// @Summary Refresh the country collection
// @Description Re-fetch the full collection from the remote provider
// @Tags countries
// @Produce json
// @Success 200 {object} api.Response
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries/refresh [post]
func (h *Handler) RefreshCountries(c *gin.Context) {
	if err := h.service.Refresh(c.Request.Context()); err != nil {
		if errors.Is(err, models.ErrRefreshInFlight) {
			api.ConflictResponse(c, err.Error())
			return
		}
		api.ServiceUnavailableResponse(c, "Failed to refresh countries")
		return
	}

	api.SuccessResponse(c, 200, "Country collection refreshed", nil)
}

// ListRegions godoc
// @Summary List regions
// @Description Get the fixed continent set used by the region filter
// @Tags countries
// @Produce json
// @Success 200 {object} api.Response{data=[]string}
// @Router /api/v1/countries/regions [get]
func (h *Handler) ListRegions(c *gin.Context) {
	regions := h.service.Regions()
	api.ListResponse(c, "Regions retrieved successfully", regions, len(regions))
}

// ListLanguages godoc
// @Summary List languages
// @Description Get the distinct language names of the fetched collection
// @Tags countries
// @Produce json
// @Success 200 {object} api.Response{data=[]string}
// @Router /api/v1/countries/languages [get]
func (h *Handler) ListLanguages(c *gin.Context) {
	languages := h.service.Languages()
	api.ListResponse(c, "Languages retrieved successfully", languages, len(languages))
}
