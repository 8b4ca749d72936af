package handlers

import (
	applog "doacoesonline/internal/log"
	"doacoesonline/internal/repos"
	"doacoesonline/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// POST /products (company token required; owner comes from the token)
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	claims := CurrentClaims(c)
	var in services.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}
	created, err := h.Catalog.CreateProduct(claims.Subject, in)
	if err != nil {
		return writeErr(c, "product.create", err)
	}
	applog.Audit(c, "product.create", map[string]any{"product_id": created.ID, "company_id": claims.Subject})
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GET /products (public, newest first)
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.Catalog.ListProducts()
	if err != nil {
		return writeErr(c, "product.list", err)
	}
	if out == nil {
		out = []repos.ProductRow{}
	}
	return c.JSON(out)
}
