// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mia-platform/logpanel/internal/console"
	"github.com/mia-platform/logpanel/internal/panel/html"
	"github.com/mia-platform/logpanel/internal/uilogger"
)

// messageView is the API representation of a recorded entry.
type messageView struct {
	ID        string `json:"id"`
	Level     string `json:"level"`
	Class     string `json:"class"`
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
	Data      any    `json:"data"`
}

// messageRequest is the body accepted to log a new message.
type messageRequest struct {
	Level string          `json:"level"`
	Data  json.RawMessage `json:"data"`
}

type panelView struct {
	Showing bool `json:"showing"`
}

func errorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"statusCode": statusCode,
		"error":      http.StatusText(statusCode),
		"message":    message,
	})
}

func statusRoutes(app *fiber.App, doc *html.Document, serviceName, version string) {
	app.Get("/-/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "OK",
			"name":    serviceName,
			"version": version,
		})
	})

	app.Get("/-/ready", func(c *fiber.Ctx) error {
		if !doc.Ready() {
			return errorResponse(c, http.StatusServiceUnavailable, "document not ready")
		}
		return c.JSON(fiber.Map{"status": "OK"})
	})
}

func pageRoutes(app *fiber.App, doc *html.Document) {
	app.Get("/", func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return doc.Render(c)
	})
}

func apiRoutes(app *fiber.App, uiLogger *uilogger.Logger, cons console.Console) {
	api := app.Group("/api")

	api.Get("/messages", func(c *fiber.Ctx) error {
		decorate := uiLogger.MessageDecorator()
		messages := uiLogger.Messages()

		views := make([]messageView, 0, len(messages))
		for _, entry := range messages {
			views = append(views, messageView{
				ID:        entry.ID,
				Level:     entry.Level.String(),
				Class:     entry.Level.ClassName(),
				Timestamp: entry.Timestamp.Format(time.RFC3339Nano),
				Text:      decorate(entry),
				Data:      entry.Data,
			})
		}
		return c.JSON(views)
	})

	api.Post("/messages", func(c *fiber.Ctx) error {
		var request messageRequest
		if err := json.Unmarshal(c.Body(), &request); err != nil {
			return errorResponse(c, http.StatusBadRequest, "invalid message body")
		}
		if len(request.Data) == 0 {
			return errorResponse(c, http.StatusBadRequest, "missing message data")
		}

		var data any
		if err := json.Unmarshal(request.Data, &data); err != nil {
			return errorResponse(c, http.StatusBadRequest, "invalid message data")
		}

		console.Method(cons, uilogger.LevelFromString(request.Level))(data)
		return c.SendStatus(http.StatusNoContent)
	})

	api.Delete("/messages", func(c *fiber.Ctx) error {
		uiLogger.Clear()
		return c.SendStatus(http.StatusNoContent)
	})

	api.Get("/panel", func(c *fiber.Ctx) error {
		return c.JSON(panelView{Showing: uiLogger.IsShowingLogPanel()})
	})

	api.Put("/panel", func(c *fiber.Ctx) error {
		uiLogger.ShowLogPanel()
		return c.JSON(panelView{Showing: uiLogger.IsShowingLogPanel()})
	})

	api.Delete("/panel", func(c *fiber.Ctx) error {
		uiLogger.HideLogPanel()
		return c.SendStatus(http.StatusNoContent)
	})
}
