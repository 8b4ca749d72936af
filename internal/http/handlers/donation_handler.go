package handlers

import (
	"doacoesonline/internal/domain"
	applog "doacoesonline/internal/log"
	"doacoesonline/internal/repos"
	"doacoesonline/internal/services"
	"doacoesonline/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type DonationHandler struct {
	Donations *services.DonationService
}

// POST /donations (ONG token required)
func (h *DonationHandler) Create(c *fiber.Ctx) error {
	claims := CurrentClaims(c)
	var in services.TransferInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}
	// The claim is always made on the caller's own behalf.
	if in.ONGID != "" && in.ONGID != claims.Subject {
		applog.Security(c, "donation.create.spoof", map[string]any{"body_ngo": in.ONGID})
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "ngoId does not match the authenticated account"})
	}
	in.ONGID = claims.Subject

	d, err := h.Donations.Transfer(in)
	if err != nil {
		return writeErr(c, "donation.create", err)
	}
	applog.Audit(c, "donation.create", map[string]any{
		"donation_id": d.ID, "product_id": d.ProductID, "qty": d.QuantityDonated,
	})
	return c.Status(fiber.StatusCreated).JSON(d)
}

type statusRequest struct {
	Status string `json:"status"`
}

// PATCH /donations/:id/status (owning company only)
func (h *DonationHandler) UpdateStatus(c *fiber.Ctx) error {
	claims := CurrentClaims(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "donation not found"})
	}
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}
	d, err := h.Donations.SetStatus(id, claims.Subject, req.Status)
	if err != nil {
		return writeErr(c, "donation.status", err)
	}
	applog.Audit(c, "donation.status", map[string]any{"donation_id": d.ID, "status": d.Status})
	return c.JSON(d)
}

// GET /donations (any authenticated account; scope depends on account type)
func (h *DonationHandler) List(c *fiber.Ctx) error {
	claims := CurrentClaims(c)
	userType := claims.UserType
	if userType != domain.TypeCompany {
		userType = domain.TypeONG
	}
	out, err := h.Donations.ListFor(claims.Subject, userType)
	if err != nil {
		return writeErr(c, "donation.list", err)
	}
	if out == nil {
		out = []repos.DonationRow{}
	}
	return c.JSON(out)
}
