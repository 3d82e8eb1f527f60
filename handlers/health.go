package handlers

import (
	"github.com/admitdesk/api/database"
	"github.com/gofiber/fiber/v2"
)

// HandleCheckHealth reports liveness and database reachability.
func HandleCheckHealth(store database.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		overall := "ok"
		dbStatus := "ok"
		status := fiber.StatusOK
		if err := store.HealthCheck(); err != nil {
			overall = "degraded"
			dbStatus = "unreachable"
			status = fiber.StatusServiceUnavailable
		}

		return c.Status(status).JSON(fiber.Map{
			"status": overall,
			"db":     dbStatus,
		})
	}
}
