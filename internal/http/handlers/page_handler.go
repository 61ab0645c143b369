package handlers

import (
	"github.com/gofiber/fiber/v2"

	"timebank/internal/domain"
	"timebank/internal/log"
	"timebank/internal/present"
	"timebank/internal/services"
	"timebank/internal/validate"
)

type PageHandler struct {
	Catalog *services.CatalogService
}

// Home renders the landing page. ?region= narrows the grid and ?site= opens
// the detail modal for that listing; dropping ?site closes it.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	region, ok := validate.Region(c.Query("region"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "region"})
		page := present.NewPage(domain.RegionAll, h.Catalog.Visible(domain.RegionAll), nil, h.Catalog.Status())
		page.Err = "알 수 없는 지역입니다."
		c.Status(fiber.StatusBadRequest)
		return render(c, "home", fiber.Map{"Page": page})
	}

	var selected *domain.Listing
	if raw := c.Query("site"); raw != "" {
		if id, ok := validate.ID(raw); ok {
			if l, found := h.Catalog.Get(id); found {
				selected = &l
			}
		} else {
			log.Security(c, "validation.fail", map[string]any{"field": "site"})
		}
	}

	page := present.NewPage(region, h.Catalog.Visible(region), selected, h.Catalog.Status())
	return render(c, "home", fiber.Map{"Page": page})
}
