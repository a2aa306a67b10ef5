package rest

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"pipeshare/config"
	"pipeshare/di"
	"pipeshare/domain"
	"pipeshare/utils/logger"
)

func registerSSERoutes(v1 *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	v1.GET("/events/stream", handleEventStream(container, cfg))
}

// handleEventStream opens the push channel. Identity keys arrive in the
// `keys` query param (comma separated) and are filtered against the keys the
// caller is entitled to; a caller may only subscribe to its own email and
// tenant domain. Registering a key twice is a no-op.
func handleEventStream(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, err := domain.GetUserFromContext(c.Request().Context())
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}

		allowed := make(map[domain.IdentityKey]struct{})
		for _, key := range caller.IdentityKeys() {
			allowed[key] = struct{}{}
		}

		keys := caller.IdentityKeys()
		if raw := c.QueryParam("keys"); raw != "" {
			keys = keys[:0]
			for _, key := range strings.Split(raw, ",") {
				key = strings.TrimSpace(key)
				if _, ok := allowed[key]; ok {
					keys = append(keys, key)
				}
			}
		}
		if len(keys) == 0 {
			return handleValidationError(c, "no registrable identity keys", "keys", c.QueryParam("keys"))
		}

		c.Response().Header().Set("Content-Type", "text/event-stream")
		c.Response().Header().Set("Cache-Control", "no-cache")
		c.Response().Header().Set("Connection", "keep-alive")
		c.Response().WriteHeader(http.StatusOK)

		w := c.Response().Writer
		flusher, canFlush := w.(http.Flusher)
		if !canFlush {
			logger.Logger.Error("Response writer doesn't support flushing")
			return c.String(http.StatusInternalServerError, "Streaming not supported")
		}

		conn := container.Registry.Connect(keys...)
		defer container.Registry.Disconnect(conn)

		// Confirm the registered keys so the client can detect dropped ones.
		if payload, err := json.Marshal(map[string]interface{}{"keys": keys}); err == nil {
			c.Response().Write([]byte("event: registered\ndata: " + string(payload) + "\n\n"))
			flusher.Flush()
		}

		heartbeatTicker := time.NewTicker(cfg.Push.HeartbeatInterval)
		defer heartbeatTicker.Stop()

		for {
			select {
			case <-heartbeatTicker.C:
				if _, err := c.Response().Write([]byte(": heartbeat\n\n")); err != nil {
					logger.Logger.Info("Client disconnected during heartbeat", "error", err)
					return nil
				}
				flusher.Flush()

			case event, ok := <-conn.Events():
				if !ok {
					return nil
				}

				payload, err := json.Marshal(event)
				if err != nil {
					logger.Logger.Error("Error marshaling share event", "error", err)
					continue
				}

				if _, err := c.Response().Write([]byte("event: resource-shared\ndata: " + string(payload) + "\n\n")); err != nil {
					logger.Logger.Info("Client disconnected", "error", err)
					return nil
				}
				flusher.Flush()

			case <-c.Request().Context().Done():
				logger.Logger.Info("SSE connection closed by client")
				return nil
			}
		}
	}
}
