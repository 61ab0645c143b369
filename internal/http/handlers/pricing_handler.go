package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"timebank/internal/log"
	"timebank/internal/present"
	"timebank/internal/pricing"
	"timebank/internal/services"
	"timebank/internal/validate"
)

type PricingHandler struct {
	Catalog *services.CatalogService
}

// GET /api/v1/memberships
func (h *PricingHandler) Memberships(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"memberships": pricing.Memberships()})
}

// GET /api/v1/listings/:id/quote?slot=&membership=&date=
// date (YYYY-MM-DD) decides weekday or weekend; without it ?weekend= is used.
func (h *PricingHandler) Quote(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "listing not found"})
	}
	l, found := h.Catalog.Get(id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "listing not found"})
	}

	slot, ok := pricing.ParseSlot(c.Query("slot", string(pricing.SlotOvernight)))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "slot"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "slot must be AM, PM or OVERNIGHT"})
	}
	membership := c.Query("membership", pricing.MembershipNone)
	if !pricing.KnownMembership(membership) {
		log.Security(c, "validation.fail", map[string]any{"field": "membership"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown membership"})
	}
	weekend := c.QueryBool("weekend", false)
	if raw := c.Query("date"); raw != "" {
		d, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			log.Security(c, "validation.fail", map[string]any{"field": "date"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
		}
		weekend = pricing.IsWeekend(d)
	}

	price := pricing.Quote(l, membership, slot, weekend)
	return c.JSON(fiber.Map{
		"listing":    l.ID,
		"membership": membership,
		"slot":       slot,
		"weekend":    weekend,
		"price":      price,
		"price_text": present.FormatPrice(price),
	})
}

// GET /api/v1/roi?loan=&revenue=
func (h *PricingHandler) ROI(c *fiber.Ctx) error {
	loan := c.QueryInt("loan", 30000000)
	revenue := c.QueryInt("revenue", 1800000)
	if loan < 0 || revenue < 0 {
		log.Security(c, "validation.fail", map[string]any{"field": "roi"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "loan and revenue must be non-negative"})
	}
	return c.JSON(pricing.ROI(loan, revenue))
}
