package favorites

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/joefazee/atlas/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context) ([]FavoriteCountry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]FavoriteCountry), args.Error(1)
}

func (m *mockService) Toggle(ctx context.Context, code string) (*ToggleResponse, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ToggleResponse), args.Error(1)
}

func (m *mockService) Membership(code string) (*MembershipResponse, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*MembershipResponse), args.Error(1)
}

func setupHandlerTest() (*mockService, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	service := new(mockService)
	handler := NewHandler(service)

	r := gin.New()
	group := r.Group("/api/v1/favorites")
	group.GET("", handler.ListFavorites)
	group.POST("/:code", handler.ToggleFavorite)
	group.GET("/:code", handler.GetFavorite)
	return service, r
}

func TestHandler_ListFavorites(t *testing.T) {
	service, r := setupHandlerTest()
	service.On("List", mock.Anything).Return([]FavoriteCountry{
		{Code: "FIN", Name: "Finland", Resolved: true},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/favorites", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Finland")
}

func TestHandler_ListFavorites_Unauthenticated(t *testing.T) {
	service, r := setupHandlerTest()
	service.On("List", mock.Anything).Return(nil, models.ErrUnauthorized)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/favorites", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_ToggleFavorite(t *testing.T) {
	service, r := setupHandlerTest()
	service.On("Toggle", mock.Anything, "FIN").Return(&ToggleResponse{Code: "FIN", IsFavorite: true}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/favorites/FIN", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestHandler_GetFavorite(t *testing.T) {
	service, r := setupHandlerTest()
	service.On("Membership", "FIN").Return(&MembershipResponse{Code: "FIN", IsFavorite: false}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/favorites/FIN", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_favorite":false`)
}
