package handlers

import (
	applog "doacoesonline/internal/log"
	"doacoesonline/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

// POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}

	tok, user, err := h.Auth.Login(req.Email, req.Password, req.UserType)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": req.Email, "userType": req.UserType})
		return writeErr(c, "auth.login", err)
	}

	applog.Audit(c, "auth.login.success", map[string]any{"email": req.Email, "userType": req.UserType})
	return c.JSON(fiber.Map{"token": tok, "user": user})
}
