package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDoc_PerRequestHost(t *testing.T) {
	spec := &swag.Spec{
		Title:           "Project Tracker API",
		Schemes:         []string{},
		SwaggerTemplate: `{"host": "{{.Host}}", "schemes": {{ marshal .Schemes }}, "title": "{{.Title}}"}`,
	}
	app := fiber.New()
	app.Get("/swagger/doc.json", SwaggerDoc(spec))

	tests := []struct {
		name       string
		host       string
		forwarded  string
		wantScheme string
	}{
		{"plain", "api.example.org", "", "http"},
		{"behind proxy", "tracker.example.com:8443", "https, http", "https"},
		{"plain again", "localhost:8080", "", "http"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/swagger/doc.json", nil)
			req.Host = tt.host
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-Proto", tt.forwarded)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var doc struct {
				Host    string   `json:"host"`
				Schemes []string `json:"schemes"`
				Title   string   `json:"title"`
			}
			require.NoError(t, json.Unmarshal(body, &doc))
			assert.Equal(t, tt.host, doc.Host)
			assert.Equal(t, []string{tt.wantScheme}, doc.Schemes)
			assert.Equal(t, "Project Tracker API", doc.Title)
		})
	}

	assert.Empty(t, spec.Host)
	assert.Empty(t, spec.Schemes)
}
