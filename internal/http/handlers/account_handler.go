package handlers

import (
	"doacoesonline/internal/domain"
	applog "doacoesonline/internal/log"
	"doacoesonline/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AccountHandler struct {
	Accounts *services.AccountService
}

// POST /companies
func (h *AccountHandler) RegisterCompany(c *fiber.Ctx) error {
	var in services.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}
	created, err := h.Accounts.RegisterCompany(in)
	if err != nil {
		return writeErr(c, "company.register", err)
	}
	applog.Audit(c, "company.register", map[string]any{"company_id": created.ID})
	return c.Status(fiber.StatusCreated).JSON(created)
}

// POST /ongs
func (h *AccountHandler) RegisterONG(c *fiber.Ctx) error {
	var in services.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}
	created, err := h.Accounts.RegisterONG(in)
	if err != nil {
		return writeErr(c, "ong.register", err)
	}
	applog.Audit(c, "ong.register", map[string]any{"ong_id": created.ID})
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GET /companies
func (h *AccountHandler) ListCompanies(c *fiber.Ctx) error {
	out, err := h.Accounts.ListCompanies()
	if err != nil {
		return writeErr(c, "company.list", err)
	}
	if out == nil {
		out = []domain.Company{}
	}
	return c.JSON(out)
}

// GET /ongs
func (h *AccountHandler) ListONGs(c *fiber.Ctx) error {
	out, err := h.Accounts.ListONGs()
	if err != nil {
		return writeErr(c, "ong.list", err)
	}
	if out == nil {
		out = []domain.ONG{}
	}
	return c.JSON(out)
}
