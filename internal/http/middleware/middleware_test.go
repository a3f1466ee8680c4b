package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(RequestIDLocalKey).(string))
	})

	call := func(t *testing.T, header string) (string, string) {
		t.Helper()
		req := httptest.NewRequest("GET", "/test", nil)
		if header != "" {
			req.Header.Set(RequestIDHeader, header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		return resp.Header.Get(RequestIDHeader), string(body)
	}

	t.Run("mints a uuid when absent", func(t *testing.T) {
		hdr, body := call(t, "")
		_, err := uuid.Parse(hdr)
		assert.NoError(t, err)
		assert.Equal(t, hdr, body)
	})

	t.Run("keeps a caller supplied id", func(t *testing.T) {
		hdr, body := call(t, "test-id-123")
		assert.Equal(t, "test-id-123", hdr)
		assert.Equal(t, "test-id-123", body)
	})

	t.Run("replaces an oversized id", func(t *testing.T) {
		long := strings.Repeat("a", maxRequestIDLen+1)
		hdr, _ := call(t, long)
		assert.NotEqual(t, long, hdr)
		_, err := uuid.Parse(hdr)
		assert.NoError(t, err)
	})
}

func TestValidRequestID(t *testing.T) {
	assert.True(t, validRequestID("abc-123_XYZ"))
	assert.False(t, validRequestID(""))
	assert.False(t, validRequestID("has space"))
	assert.False(t, validRequestID("tab\tid"))
	assert.False(t, validRequestID("ünï"))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(RequestID())
	app.Use(LoggerWithWriter(&buf, time.UTC))

	app.Get("/projects/:id/members", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/projects/7/members", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	var logData map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logData))

	assert.NotEmpty(t, logData["request_id"])
	assert.Equal(t, "GET", logData["method"])
	assert.Equal(t, "/projects/7/members", logData["path"])
	assert.Equal(t, "/projects/:id/members", logData["route"])
	assert.Equal(t, float64(fiber.StatusAccepted), logData["status"])
	assert.Equal(t, "info", logData["level"])
	assert.Equal(t, "http", logData["component"])
	assert.NotNil(t, logData["latency"])
	assert.NotEmpty(t, logData["time"])
}

func TestLogger_ErrorStatus(t *testing.T) {
	tests := []struct {
		name    string
		handler fiber.Handler
		status  float64
		level   string
	}{
		{
			name:    "explicit 500",
			handler: func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusInternalServerError) },
			status:  500,
			level:   "error",
		},
		{
			name:    "fiber error",
			handler: func(*fiber.Ctx) error { return fiber.NewError(fiber.StatusBadRequest, "nope") },
			status:  400,
			level:   "info",
		},
		{
			name:    "plain error",
			handler: func(*fiber.Ctx) error { return io.ErrUnexpectedEOF },
			status:  500,
			level:   "error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			app := fiber.New()
			app.Use(LoggerWithWriter(&buf, nil))
			app.Get("/x", tt.handler)

			_, err := app.Test(httptest.NewRequest("GET", "/x", nil))
			require.NoError(t, err)

			var logData map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logData))
			assert.Equal(t, tt.status, logData["status"])
			assert.Equal(t, tt.level, logData["level"])
			assert.Equal(t, "", logData["request_id"])
		})
	}
}
