package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"

	"timebank/internal/domain"
	"timebank/internal/present"
)

// NewEngine loads the page templates with the presentation helpers.
func NewEngine(dir string, reload bool) *html.Engine {
	engine := html.New(dir, ".html")
	engine.Reload(reload)
	engine.AddFunc("price", present.FormatPrice)
	engine.AddFunc("amenityIcon", present.AmenityIcon)
	engine.AddFunc("knownAmenity", domain.KnownAmenity)
	engine.AddFunc("upper", strings.ToUpper)
	return engine
}

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if rid, ok := c.Locals("requestid").(string); ok {
		data["RequestID"] = rid
	}
	return c.Render(tmpl, data)
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": msg})
}
