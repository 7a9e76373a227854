package main

import (
	"net/http/httptest"
	"testing"
	"time"

	"salespulse/config"
	"salespulse/middleware"
	"salespulse/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", middleware.JWTMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userID": c.Locals("userID")})
	})
	return app
}

func adminApp() *fiber.App {
	app := fiber.New()
	app.Post("/admin-only", middleware.JWTMiddleware, middleware.AdminRequired, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userID": c.Locals("userID")})
	})
	return app
}

func signToken(t *testing.T, secret string) string {
	t.Helper()
	return signTokenWithRole(t, secret, "analyst")
}

func signTokenWithRole(t *testing.T, secret, role string) string {
	t.Helper()
	claims := models.JwtClaims{
		UserID: "u-1",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestJWTMiddlewareAcceptsValidToken(t *testing.T) {
	config.Load("test-secret")
	app := protectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret"))

	resp, _ := app.Test(req, 1)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestJWTMiddlewareRejectsMissingHeader(t *testing.T) {
	config.Load("test-secret")
	app := protectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)

	resp, _ := app.Test(req, 1)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestJWTMiddlewareRejectsWrongSecret(t *testing.T) {
	config.Load("test-secret")
	app := protectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "another-secret"))

	resp, _ := app.Test(req, 1)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAdminRequiredAllowsAdmin(t *testing.T) {
	config.Load("test-secret")
	app := adminApp()

	req := httptest.NewRequest("POST", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+signTokenWithRole(t, "test-secret", "admin"))

	resp, _ := app.Test(req, 1)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAdminRequiredRejectsAnalyst(t *testing.T) {
	config.Load("test-secret")
	app := adminApp()

	req := httptest.NewRequest("POST", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+signTokenWithRole(t, "test-secret", "analyst"))

	resp, _ := app.Test(req, 1)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestJWTMiddlewareRejectsMalformedHeader(t *testing.T) {
	config.Load("test-secret")
	app := protectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "NotBearer token")

	resp, _ := app.Test(req, 1)
	assert.Equal(t, 401, resp.StatusCode)
}
