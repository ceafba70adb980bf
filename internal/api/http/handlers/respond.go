package handlers

import "github.com/gofiber/fiber/v2"

// success renders the {"status","message","data"} envelope. A nil data is
// omitted from the body.
func success(c *fiber.Ctx, status int, message string, data interface{}) error {
	body := fiber.Map{
		"status":  "success",
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}
