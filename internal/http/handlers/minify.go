package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tdewolff/minify/v2"
	mhtml "github.com/tdewolff/minify/v2/html"
)

// MinifyHTML shrinks rendered HTML responses. Bodies that fail to minify
// are sent as rendered.
func MinifyHTML() fiber.Handler {
	m := minify.New()
	m.Add(fiber.MIMETextHTML, &mhtml.Minifier{KeepDocumentTags: true, KeepEndTags: true})
	return func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			return err
		}
		ct := string(c.Response().Header.ContentType())
		if !strings.HasPrefix(ct, fiber.MIMETextHTML) {
			return nil
		}
		out, err := m.Bytes(fiber.MIMETextHTML, c.Response().Body())
		if err != nil {
			return nil
		}
		c.Response().SetBodyRaw(out)
		return nil
	}
}
