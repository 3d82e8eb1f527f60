package auth

import (
	"github.com/admitdesk/api/utils/middleware"
	"github.com/admitdesk/api/utils/response"
	"github.com/gofiber/fiber/v2"
)

// GetProfile retrieves the current user's profile
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok || user == nil {
		return response.Unauthorized(c, "Not authenticated")
	}

	return response.Success(c, user.Public())
}
