package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/chaithanya-077/ridewave-r/internal/observability"
	apperrors "github.com/chaithanya-077/ridewave-r/pkg/util"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	return app
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Error.Code
}

func TestErrorHandlingMiddleware_MapsDomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", apperrors.NewValidationError(apperrors.CodePickupInPast, "pickup date cannot be in the past", nil), http.StatusBadRequest, apperrors.CodePickupInPast},
		{"forbidden", apperrors.NewForbidden("not yours"), http.StatusForbidden, apperrors.CodeForbidden},
		{"not found", apperrors.NewNotFound("booking", nil), http.StatusNotFound, apperrors.CodeNotFound},
		{"invalid state", apperrors.NewInvalidState("only upcoming bookings can be cancelled"), http.StatusConflict, apperrors.CodeInvalidState},
		{"unexpected fault is generic", assert.AnError, http.StatusInternalServerError, apperrors.CodeInternalError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp()
			app.Get("/boom", func(c *fiber.Ctx) error { return tc.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			assert.Equal(t, tc.wantCode, errorCode(t, resp))
		})
	}
}

func TestRequestLogger_RecordsMappedStatus(t *testing.T) {
	// The request log must carry the status the error mapper set, not the
	// 200 the response held while the error was still in flight.
	core, logs := observer.New(zapcore.InfoLevel)
	app := fiber.New()
	RegisterMiddlewares(app, zap.New(core), observability.NewMetrics(), 0)
	app.Get("/boom", func(c *fiber.Ctx) error {
		return apperrors.NewForbidden("not yours")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, http.StatusForbidden, fields["status"])
}

func TestErrorHandlingMiddleware_RecoversPanics(t *testing.T) {
	app := newTestApp()
	app.Get("/panic", func(c *fiber.Ctx) error { panic("kaboom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, apperrors.CodeInternalError, errorCode(t, resp))
}
