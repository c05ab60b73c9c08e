package serverutils

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"paie-detect-be/internal/pkg/logger"
	"paie-detect-be/internal/pkg/ratelimit"
	"paie-detect-be/pkg/oracle"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode[T any](t *testing.T, app *fiber.App, method, path string, header map[string]string) (int, BaseResponse[T]) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body BaseResponse[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func fileLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()
	return logger.NewZapLogger(filepath.Join(t.TempDir(), "app.log"), true)
}

func TestErrorHandlerMiddleware(t *testing.T) {
	log := fileLogger(t)
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(log))
	app.Get("/oracle", func(ctx *fiber.Ctx) error {
		return oracle.ExtractionFailed{RawText: "secret raw answer", Reason: "no JSON object found"}.Err()
	})
	app.Get("/fiber", func(ctx *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Analyse introuvable")
	})
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return errors.New("db exploded")
	})
	app.Get("/invalid", func(ctx *fiber.Ctx) error {
		return ValidateRequest(struct {
			Email string `validate:"required,email"`
		}{Email: "nope"})
	})

	tests := []struct {
		path    string
		code    int
		message string
	}{
		{"/oracle", fiber.StatusBadGateway, MsgOracleFormat},
		{"/fiber", fiber.StatusNotFound, "Analyse introuvable"},
		{"/boom", fiber.StatusInternalServerError, MsgInternal},
		{"/invalid", fiber.StatusBadRequest, "Données invalides"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, body := decode[any](t, app, "GET", tt.path, nil)
			assert.Equal(t, tt.code, status)
			assert.Equal(t, tt.code, body.Code)
			assert.False(t, body.Success)
			assert.Equal(t, tt.message, body.Message)
			assert.NotContains(t, body.Message, "secret raw answer")
		})
	}

	_ = log.Sync()
	entries, err := log.GetLogs("ERROR", 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "HTTP", entries[0].Module)
	assert.Equal(t, "/boom", entries[0].Details["path"])
	assert.Equal(t, "db exploded", entries[0].Details["error"])
}

func TestValidateRequest(t *testing.T) {
	type req struct {
		Name  string `validate:"required,min=2"`
		Email string `validate:"required,email"`
	}

	require.NoError(t, ValidateRequest(req{Name: "Léa", Email: "lea@example.fr"}))

	err := ValidateRequest(req{Name: "L", Email: ""})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "must be at least 2 characters", ve.Fields["name"])
	assert.Equal(t, "is required", ve.Fields["email"])
}

func signed(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAdminJwtMiddleware(t *testing.T) {
	const secret = "admin-secret"
	app := fiber.New()
	app.Get("/admin", AdminJwtMiddleware(secret), func(ctx *fiber.Ctx) error {
		return ctx.JSON(SuccessResponse("ok", ctx.Locals("admin_sub")))
	})

	exp := time.Now().Add(time.Hour).Unix()
	tests := []struct {
		name   string
		header string
		code   int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"not bearer", "Basic abc", fiber.StatusUnauthorized},
		{"wrong secret", "Bearer " + signed(t, "other", jwt.MapClaims{"role": "admin", "exp": exp}), fiber.StatusUnauthorized},
		{"expired", "Bearer " + signed(t, secret, jwt.MapClaims{"role": "admin", "exp": time.Now().Add(-time.Hour).Unix()}), fiber.StatusUnauthorized},
		{"not admin", "Bearer " + signed(t, secret, jwt.MapClaims{"role": "user", "exp": exp}), fiber.StatusForbidden},
		{"admin", "Bearer " + signed(t, secret, jwt.MapClaims{"role": "admin", "sub": "ops", "exp": exp}), fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := decode[any](t, app, "GET", "/admin", map[string]string{"Authorization": tt.header})
			assert.Equal(t, tt.code, status)
			if tt.code == fiber.StatusOK {
				assert.Equal(t, "ops", body.Data)
			}
		})
	}
}

func TestAdminJwtMiddleware_NoSecretConfigured(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", AdminJwtMiddleware(""), func(ctx *fiber.Ctx) error { return ctx.SendStatus(200) })

	token := signed(t, "whatever", jwt.MapClaims{"role": "admin"})
	status, _ := decode[any](t, app, "GET", "/admin", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string, int, time.Duration) (ratelimit.Result, error) {
	return ratelimit.Result{}, errors.New("redis down")
}

func TestRateLimitMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/limited", RateLimitMiddleware(ratelimit.NewMemoryLimiter(), "analyze", 2, time.Hour, "Trop de requêtes", logger.NewNop()), func(ctx *fiber.Ctx) error {
		return ctx.JSON(SuccessResponse("ok", true))
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/limited", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "2", resp.Header.Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, resp.Header.Get("X-RateLimit-Reset"))
	}

	status, body := decode[RateLimitBody](t, app, "GET", "/limited", nil)
	assert.Equal(t, fiber.StatusTooManyRequests, status)
	assert.Equal(t, "Trop de requêtes", body.Message)
	assert.InDelta(t, 3600, body.Data.RetryAfter, 2)
}

func TestRateLimitMiddleware_FailsOpen(t *testing.T) {
	log := fileLogger(t)
	app := fiber.New()
	app.Get("/limited", RateLimitMiddleware(failingLimiter{}, "contact", 3, time.Hour, "Trop de messages", log), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/limited", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "3", resp.Header.Get("X-RateLimit-Remaining"))

	_ = log.Sync()
	warns, err := log.GetLogs("WARN", 10, 0)
	require.NoError(t, err)
	require.Len(t, warns, 1)
	assert.Equal(t, "RATELIMIT", warns[0].Module)
	assert.Equal(t, "contact", warns[0].Details["bucket"])
}
