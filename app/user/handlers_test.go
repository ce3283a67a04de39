package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/atlas/internal/sanitizer"
	"github.com/joefazee/atlas/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, req *RegisterRequest) (*LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*LoginResponse), args.Error(1)
}

func (m *MockService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*LoginResponse), args.Error(1)
}

func (m *MockService) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockService) CurrentUser() (*models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockService) ActiveUserID() uuid.UUID {
	return m.Called().Get(0).(uuid.UUID)
}

func (m *MockService) ToggleFavorite(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockService) IsFavorite(code string) bool {
	return m.Called(code).Bool(0)
}

func (m *MockService) Favorites() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func setupHandlerTest() (*MockService, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	service := new(MockService)
	handler := NewHandler(service, sanitizer.NewHTMLStripper())

	r := gin.New()
	group := r.Group("/api/v1/users")
	group.POST("/register", handler.Register)
	group.POST("/login", handler.Login)
	group.POST("/logout", handler.Logout)
	return service, r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw)))
	return w
}

func TestHandler_Register(t *testing.T) {
	service, r := setupHandlerTest()
	service.On("Register", mock.Anything, mock.AnythingOfType("*user.RegisterRequest")).
		Return(&LoginResponse{AccessToken: "token", User: Response{Email: "jane@example.com"}}, nil)

	w := postJSON(r, "/api/v1/users/register", gin.H{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "abcdef",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	service.AssertExpectations(t)
}

func TestHandler_Register_ValidationFailed(t *testing.T) {
	service, r := setupHandlerTest()

	w := postJSON(r, "/api/v1/users/register", gin.H{
		"name":     "",
		"email":    "not-an-email",
		"password": "abc",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestHandler_Register_StripsHTMLFromName(t *testing.T) {
	service, r := setupHandlerTest()
	service.On("Register", mock.Anything, mock.MatchedBy(func(req *RegisterRequest) bool {
		return req.Name == "Jane Doe"
	})).Return(&LoginResponse{}, nil)

	w := postJSON(r, "/api/v1/users/register", gin.H{
		"name":     "<b>Jane Doe</b>",
		"email":    "jane@example.com",
		"password": "abcdef",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	service.AssertExpectations(t)
}

func TestHandler_Register_DuplicateEmail(t *testing.T) {
	service, r := setupHandlerTest()
	service.On("Register", mock.Anything, mock.Anything).Return(nil, models.ErrDuplicateEmail)

	w := postJSON(r, "/api/v1/users/register", gin.H{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "abcdef",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Login(t *testing.T) {
	service, r := setupHandlerTest()
	service.On("Login", mock.Anything, &LoginRequest{Email: "jane@example.com", Password: "abcdef"}).
		Return(&LoginResponse{AccessToken: "token"}, nil)

	w := postJSON(r, "/api/v1/users/login", gin.H{
		"email":    "jane@example.com",
		"password": "abcdef",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	service, r := setupHandlerTest()
	service.On("Login", mock.Anything, mock.Anything).Return(nil, models.ErrInvalidCredentials)

	w := postJSON(r, "/api/v1/users/login", gin.H{
		"email":    "jane@example.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Login_MissingFields(t *testing.T) {
	service, r := setupHandlerTest()

	w := postJSON(r, "/api/v1/users/login", gin.H{"email": "jane@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestHandler_Logout(t *testing.T) {
	service, r := setupHandlerTest()
	service.On("Logout", mock.Anything).Return(nil)

	w := postJSON(r, "/api/v1/users/logout", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := new(MockService)
	handler := NewHandler(service, sanitizer.NewHTMLStripper())

	current := &models.User{ID: uuid.New(), Name: "Jane Doe", Email: "jane@example.com"}

	r := gin.New()
	r.GET("/api/v1/users/me", func(c *gin.Context) {
		ContextSetUser(c, current)
		handler.Me(c)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data Response `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, current.Email, resp.Data.Email)
	assert.NotNil(t, resp.Data.Favorites)
}
