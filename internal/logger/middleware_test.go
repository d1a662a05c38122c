// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"bytes"
	netHTTP "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestMiddlewareLogger(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)
	logger := NewLogger(buffer)
	logger.SetLevel(TRACE)

	app := fiber.New(fiber.Config{})
	app.Use(RequestMiddlewareLogger(logger, []string{"/-/"}))
	app.Get("/foo", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusTeapot)
	})
	app.Get("/-/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(netHTTP.MethodGet, "http://example.com/foo", nil)
	req.Header.Set("User-Agent", "UnitTestAgent/1.0")
	req.Header.Set(requestIDHeaderName, "req-1")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	logs := buffer.String()
	splitted := strings.Split(logs, "\n")
	require.Len(t, splitted, 3)
	require.Empty(t, splitted[2])
	assert.Contains(t, splitted[0], IncomingRequestMessage)
	assert.Contains(t, splitted[1], RequestCompletedMessage)
	assert.Contains(t, splitted[1], `"statusCode":418`)
	assert.Contains(t, splitted[1], `"@module":"request:req-1"`)

	buffer.Reset()
	req = httptest.NewRequest(netHTTP.MethodGet, "http://example.com/-/healthz", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Empty(t, buffer.String())
}
