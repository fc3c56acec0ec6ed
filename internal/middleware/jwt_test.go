package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogue_back_end/internal/middleware"
	"catalogue_back_end/internal/utils"
)

const testSecret = "secret_de_test"

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"email":   c.GetString("email"),
			"role":    c.GetString("role"),
		})
	})
	return r
}

func doRequest(r *gin.Engine, method, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired_SansEnTete(t *testing.T) {
	r := setupAuthRouter(t)

	w := doRequest(r, http.MethodGet, "/protected", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token non fourni")
}

func TestAuthRequired_FormatInvalide(t *testing.T) {
	r := setupAuthRouter(t)

	w := doRequest(r, http.MethodGet, "/protected", "Basic abc123")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_TokenIllisible(t *testing.T) {
	r := setupAuthRouter(t)

	w := doRequest(r, http.MethodGet, "/protected", "Bearer pas-un-jwt")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Token invalide ou expiré")
}

func TestAuthRequired_MauvaisSecret(t *testing.T) {
	r := setupAuthRouter(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("autre_secret"))
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/protected", "Bearer "+signed)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthRequired_TokenExpire(t *testing.T) {
	r := setupAuthRouter(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/protected", "Bearer "+signed)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthRequired_TokenValide(t *testing.T) {
	r := setupAuthRouter(t)

	signed, err := utils.GenerateJWT("u1", "admin@example.com", "admin")
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/protected", "Bearer "+signed)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@example.com")
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func setupAdminRouter(t *testing.T, role string, authenticated bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin",
		func(c *gin.Context) {
			if authenticated {
				c.Set("role", role)
			}
		},
		middleware.RequireAdmin,
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})
	return r
}

func TestRequireAdmin_SansIdentite(t *testing.T) {
	r := setupAdminRouter(t, "", false)

	w := doRequest(r, http.MethodGet, "/admin", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Utilisateur non authentifié")
}

func TestRequireAdmin_RoleInsuffisant(t *testing.T) {
	r := setupAdminRouter(t, "user", true)

	w := doRequest(r, http.MethodGet, "/admin", "")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Accès réservé aux administrateurs")
}

func TestRequireAdmin_Admin(t *testing.T) {
	r := setupAdminRouter(t, "admin", true)

	w := doRequest(r, http.MethodGet, "/admin", "")

	assert.Equal(t, http.StatusOK, w.Code)
}
