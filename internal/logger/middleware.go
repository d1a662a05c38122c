// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	requestIDHeaderName = "x-request-id"

	IncomingRequestMessage  = "incoming request"
	RequestCompletedMessage = "request completed"
)

// RequestID returns the request id carried by the x-request-id header, or a new random one.
func RequestID(c *fiber.Ctx) string {
	if requestID := c.Get(requestIDHeaderName); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// statusCode resolves the status that will be sent, honoring errors returned by the handlers.
func statusCode(c *fiber.Ctx, err error) int {
	if fiberErr, ok := err.(*fiber.Error); ok {
		return fiberErr.Code
	}

	return c.Response().StatusCode()
}

// RequestMiddlewareLogger is a fiber middleware to log all requests
// It logs the incoming request and when request is completed, adding latency of the request
func RequestMiddlewareLogger(logger Logger, excludedPrefix []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		for _, prefix := range excludedPrefix {
			if strings.HasPrefix(path, prefix) {
				return c.Next()
			}
		}

		start := time.Now()
		requestID := RequestID(c)
		requestLogger := logger.WithName("request:" + requestID)
		c.SetUserContext(WithContext(c.UserContext(), requestLogger))

		requestLogger.Trace(IncomingRequestMessage,
			"method", c.Method(),
			"path", path,
			"userAgent", c.Get(fiber.HeaderUserAgent),
		)

		err := c.Next()

		requestLogger.Info(RequestCompletedMessage,
			"method", c.Method(),
			"path", path,
			"statusCode", statusCode(c, err),
			"responseTime", float64(time.Since(start).Milliseconds()),
		)

		return err
	}
}
