package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studybuddy-app/classroom-api/internal/models"
	"github.com/studybuddy-app/classroom-api/internal/service"
)

const testSecret = "middleware-test-secret"

func newGateRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authSvc := service.NewAuthService(nil, nil, nil, nil, service.AuthConfig{
		Secret:     testSecret,
		Expiration: time.Hour,
		Issuer:     "classroom-api",
	})

	r := gin.New()
	protected := r.Group("/protected")
	protected.Use(JWT(authSvc))
	protected.GET("/whoami", func(c *gin.Context) {
		claims := c.MustGet(ContextUserKey).(*models.AuthClaims)
		c.JSON(http.StatusOK, gin.H{"subject": claims.Subject, "role": claims.Role})
	})

	professorOnly := protected.Group("")
	professorOnly.Use(RequireRole(models.RoleProfessor))
	professorOnly.GET("/professor-area", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r
}

func signTestToken(t *testing.T, subject string, role models.Role) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.AuthClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestJWTRejectsMissingHeader(t *testing.T) {
	r := newGateRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/whoami", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestJWTRejectsWrongScheme(t *testing.T) {
	r := newGateRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/whoami", nil)
	req.Header.Set("Authorization", "Token "+signTestToken(t, "stud-1", models.RoleStudent))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	r := newGateRouter(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.AuthClaims{
		Role: models.RoleStudent,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "stud-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAdmitsValidToken(t *testing.T) {
	r := newGateRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "stud-1", models.RoleStudent))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "stud-1")
}

func TestRequireRoleBlocksOtherRoles(t *testing.T) {
	r := newGateRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/professor-area", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "stud-1", models.RoleStudent))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected/professor-area", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "prof-1", models.RoleProfessor))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
