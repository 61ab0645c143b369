package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"timebank/internal/log"
	"timebank/internal/services"
	"timebank/internal/validate"
)

type ListingHandler struct {
	Catalog *services.CatalogService
}

// GET /api/v1/listings?region=
func (h *ListingHandler) List(c *fiber.Ctx) error {
	region, ok := validate.Region(c.Query("region"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "region"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid region"})
	}
	listings := h.Catalog.Visible(region)
	return c.JSON(fiber.Map{
		"region":   region,
		"count":    len(listings),
		"listings": listings,
	})
}

// GET /api/v1/listings/:id
func (h *ListingHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "id"})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "listing not found"})
	}
	l, found := h.Catalog.Get(id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "listing not found"})
	}
	return c.JSON(l)
}

// GET /api/v1/regions
func (h *ListingHandler) Regions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"regions": h.Catalog.Regions()})
}

// GET /api/v1/store
func (h *ListingHandler) Store(c *fiber.Ctx) error {
	st := h.Catalog.Status()
	out := fiber.Map{
		"state":  st.State.String(),
		"source": st.Source,
		"count":  st.Count,
		"at":     st.At.UTC().Format(time.RFC3339),
	}
	if st.Reason != nil {
		out["reason"] = st.Reason.Error()
	}
	return c.JSON(out)
}
