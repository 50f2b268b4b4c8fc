package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestAPIKeyAuth(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		header     string
		query      string
		want       int
	}{
		{"header match", "k1", "k1", "", http.StatusOK},
		{"query match", "k1", "", "k1", http.StatusOK},
		{"header wins over query", "k1", "bad", "k1", http.StatusUnauthorized},
		{"wrong query", "k1", "", "k2", http.StatusUnauthorized},
		{"missing", "k1", "", "", http.StatusUnauthorized},
		{"prefix only", "k1", "k", "", http.StatusUnauthorized},
		{"empty configured key", "", "", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", APIKeyAuth(tt.configured), func(c *fiber.Ctx) error {
				return c.SendStatus(http.StatusOK)
			})

			target := "/"
			if tt.query != "" {
				target += "?apiKey=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				req.Header.Set("X-API-Key", tt.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}
