package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/atlas/app/api"
	"github.com/joefazee/atlas/internal/sanitizer"
	"github.com/joefazee/atlas/internal/validator"
	"github.com/joefazee/atlas/models"
)

// Handler handles HTTP requests for account and session operations
type Handler struct {
	service   Service
	sanitizer sanitizer.HTMLStripperer
}

// NewHandler creates a new user handler
func NewHandler(service Service, strip sanitizer.HTMLStripperer) *Handler {
	return &Handler{service: service, sanitizer: strip}
}

// Register godoc
// @Summary      Register a new account
// @Description  Create an account and start a session for it
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterRequest  true  "Account details"
// @Success      201      {object}  api.Response{data=LoginResponse}
// @Failure      400      {object}  api.Response{error=api.ErrorInfo}
// @Failure      409      {object}  api.Response{error=api.ErrorInfo}
// @Failure      500      {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/users/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	if !req.Validate(v, h.sanitizer) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			api.ConflictResponse(c, err.Error())
			return
		}
		api.InternalErrorResponse(c, "Failed to register account")
		return
	}

	api.CreatedResponse(c, "Account registered successfully", resp)
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate an account and return an access token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Credentials"
// @Success      200      {object}  api.Response{data=LoginResponse}
// @Failure      400      {object}  api.Response{error=api.ErrorInfo}
// @Failure      401      {object}  api.Response{error=api.ErrorInfo}
// @Failure      500      {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/users/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			api.UnauthorizedResponse(c)
			return
		}
		api.InternalErrorResponse(c, "Failed to log in")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Logout godoc
// @Summary      Log out
// @Description  End the active session
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  api.Response
// @Failure      401  {object}  api.Response{error=api.ErrorInfo}
// @Failure      500  {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/users/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context()); err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			api.UnauthorizedResponse(c)
			return
		}
		api.InternalErrorResponse(c, "Failed to log out")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// Me godoc
// @Summary      Get the current account
// @Description  Return the account bound to the active session
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  api.Response{data=Response}
// @Failure      401  {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/users/me [get]
func (h *Handler) Me(c *gin.Context) {
	current := ContextGetUser(c)
	api.SuccessResponse(c, http.StatusOK, "Account retrieved successfully", NewResponse(current))
}
