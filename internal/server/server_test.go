package server

import (
	"io"
	"net/http/httptest"
	"testing"

	"paie-detect-be/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clientIP(t *testing.T, trusted string, forwardedFor string) string {
	t.Helper()
	cfg := &config.Config{App: config.AppConfig{TrustedProxies: trusted}}
	app := fiber.New(fiberConfig(cfg))
	app.Get("/ip", func(ctx *fiber.Ctx) error {
		return ctx.SendString(ctx.IP())
	})

	req := httptest.NewRequest("GET", "/ip", nil)
	req.Header.Set(fiber.HeaderXForwardedFor, forwardedFor)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestFiberConfigTrustedProxies(t *testing.T) {
	tests := []struct {
		name    string
		trusted string
		spoofed bool
	}{
		{"untrusted peer cannot pick its IP", "10.0.0.1", false},
		{"no proxies configured", "", false},
		{"trusted peer forwards the client IP", "0.0.0.0/0, 10.0.0.1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ip := clientIP(t, tt.trusted, "203.0.113.7")
			if tt.spoofed {
				assert.Equal(t, "203.0.113.7", ip)
			} else {
				assert.NotEqual(t, "203.0.113.7", ip)
			}
		})
	}
}

func TestTrustedProxyList(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{TrustedProxies: " 127.0.0.1, ,10.0.0.0/8 "}}
	assert.Equal(t, []string{"127.0.0.1", "10.0.0.0/8"}, cfg.TrustedProxyList())
}
