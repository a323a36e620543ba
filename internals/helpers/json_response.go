package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Response helpers writing the wire shapes the kiosk and dashboard
// clients consume directly: bare payloads on success, {"message": ...}
// on the attendance endpoints, {"error": ...} on the admin CRUD
// endpoints.

func JsonError(c *fiber.Ctx, status int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func JsonMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func JsonCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}
