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
)

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func runRequireSession(authorization string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/store/cart", nil)
	if authorization != "" {
		c.Request.Header.Set("Authorization", authorization)
	}
	RequireSession(c)
	return c, w
}

func TestRequireSessionSetsSessionID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token := signedToken(t, "test-secret", jwt.MapClaims{
		"session_id": "sess_abc",
		"role":       "guest",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	c, _ := runRequireSession("Bearer " + token)

	assert.False(t, c.IsAborted())
	sessionID, exists := c.Get("session_id")
	require.True(t, exists)
	assert.Equal(t, "sess_abc", sessionID)
}

func TestRequireSessionMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	c, w := runRequireSession("")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireSessionWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token := signedToken(t, "other-secret", jwt.MapClaims{
		"session_id": "sess_abc",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	c, w := runRequireSession("Bearer " + token)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireSessionExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token := signedToken(t, "test-secret", jwt.MapClaims{
		"session_id": "sess_abc",
		"exp":        time.Now().Add(-time.Hour).Unix(),
	})

	c, w := runRequireSession("Bearer " + token)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireSessionMissingSessionClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token := signedToken(t, "test-secret", jwt.MapClaims{
		"role": "guest",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	c, w := runRequireSession("Bearer " + token)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
