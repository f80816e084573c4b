// Package middleware - Test xác thực JWT qua Fiber app.
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// newTestApp dựng app với một route được bảo vệ, handler trả lại user_id từ Locals
func newTestApp() *fiber.App {
	app := fiber.New()
	group := app.Group("/protected")
	group.Use(AuthMiddleware(testSecret))
	group.Get("/", func(c fiber.Ctx) error {
		return c.SendString(c.Locals("user_id").(string))
	})
	return app
}

func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{RegisteredClaims: claims})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware_TokenHopLe(t *testing.T) {
	app := newTestApp()

	signed := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   "64f000000000000000000001",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_ThieuHeader(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/protected/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_SaiDinhDangHeader(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/protected/", nil)
	req.Header.Set("Authorization", "Token abc")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_SaiChuKy(t *testing.T) {
	app := newTestApp()

	signed := signToken(t, "secret-khac", jwt.RegisteredClaims{
		Subject:   "64f000000000000000000001",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenHetHan(t *testing.T) {
	app := newTestApp()

	signed := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   "64f000000000000000000001",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ThieuSubject(t *testing.T) {
	app := newTestApp()

	signed := signToken(t, testSecret, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
