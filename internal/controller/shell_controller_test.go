package controller

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"legaldocai-be/internal/pkg/serverutils"
	"legaldocai-be/internal/repository/memory"
	"legaldocai-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newShellApp() *fiber.App {
	sessions := service.NewSessionService(
		memory.NewHistoryRepository(),
		memory.NewPreviewRepository(),
		nil,
		nopLogger{},
	)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewShellController(sessions).RegisterRoutes(api)
	return app
}

func TestShellStepFlow(t *testing.T) {
	app := newShellApp()

	// Fresh service starts at the upload step.
	req := httptest.NewRequest("GET", "/api/shell/v1/step", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
		Data    struct {
			Step int    `json:"step"`
			Key  string `json:"key"`
		} `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Data.Step)
	assert.Equal(t, "upload", body.Data.Key)

	// Advance twice.
	for _, want := range []string{"data", "analytics"} {
		req = httptest.NewRequest("POST", "/api/shell/v1/step/next", nil)
		resp, err = app.Test(req, -1)
		assert.NoError(t, err)
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, want, body.Data.Key)
	}

	// Jump directly to history.
	req = httptest.NewRequest("POST", "/api/shell/v1/step/goto", strings.NewReader(`{"key":"history"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 4, body.Data.Step)
}

func TestShellGoToStepRejectsUnknownKey(t *testing.T) {
	app := newShellApp()

	req := httptest.NewRequest("POST", "/api/shell/v1/step/goto", strings.NewReader(`{"key":"settings"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "error", body.Status)
}
