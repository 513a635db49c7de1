package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired validates the bearer token against the auth service and loads
// the caller's identity into the request context.
func AuthRequired(authServiceURL string) fiber.Handler {
	client := &http.Client{Timeout: 5 * time.Second}

	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing auth"})
		}

		req, err := http.NewRequest(http.MethodGet, authServiceURL+"/api/users/me", nil)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "auth request failed"})
		}
		req.Header.Set("Authorization", auth)

		resp, err := client.Do(req)
		if err != nil {
			log.Println("auth call failed:", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "auth failed"})
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		var user struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "decode failed"})
		}

		c.Locals("user_id", user.ID)
		c.Locals("user_email", user.Email)
		c.Locals("user_role", user.Role)

		return c.Next()
	}
}

// RequireRole gates a route on the role resolved by AuthRequired.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("user_role") != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
		}
		return c.Next()
	}
}
