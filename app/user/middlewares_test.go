package user

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/atlas/internal/security"
	"github.com/joefazee/atlas/models"
)

func setupAuthTest(t *testing.T, service Service) (security.Maker, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	maker, err := security.NewPasetoMaker(GetDefaultConfig().SymmetricKey)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(maker, service), func(c *gin.Context) {
		current := ContextGetUser(c)
		c.JSON(http.StatusOK, gin.H{"email": current.Email})
	})
	return maker, r
}

func authGet(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set(AuthorizationHeaderKey, header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	id := uuid.New()
	service := new(MockService)
	service.On("ActiveUserID").Return(id)
	service.On("CurrentUser").Return(&models.User{ID: id, Email: "jane@example.com"}, nil)

	maker, r := setupAuthTest(t, service)
	token, _, err := maker.CreateToken(id, time.Minute, security.TokenScopeAccess)
	require.NoError(t, err)

	w := authGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jane@example.com")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	_, r := setupAuthTest(t, new(MockService))

	w := authGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	_, r := setupAuthTest(t, new(MockService))

	for _, header := range []string{"Bearer", "Basic abc123", "Bearer a b"} {
		w := authGet(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	_, r := setupAuthTest(t, new(MockService))

	w := authGet(r, "Bearer not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	id := uuid.New()
	service := new(MockService)

	maker, r := setupAuthTest(t, service)
	token, _, err := maker.CreateToken(id, -time.Minute, security.TokenScopeAccess)
	require.NoError(t, err)

	w := authGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_StaleSession(t *testing.T) {
	// A valid token for an account that logged out is rejected.
	service := new(MockService)
	service.On("ActiveUserID").Return(uuid.Nil)

	maker, r := setupAuthTest(t, service)
	token, _, err := maker.CreateToken(uuid.New(), time.Minute, security.TokenScopeAccess)
	require.NoError(t, err)

	w := authGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_DifferentActiveSession(t *testing.T) {
	service := new(MockService)
	service.On("ActiveUserID").Return(uuid.New())

	maker, r := setupAuthTest(t, service)
	token, _, err := maker.CreateToken(uuid.New(), time.Minute, security.TokenScopeAccess)
	require.NoError(t, err)

	w := authGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
