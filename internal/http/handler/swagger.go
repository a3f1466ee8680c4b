package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/swaggo/swag"
)

// SwaggerDoc renders the API document for the host and scheme the caller used.
// Each request works on its own copy of spec.
func SwaggerDoc(spec *swag.Spec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get(fiber.HeaderXForwardedProto); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		doc := *spec
		doc.Host = utils.CopyString(c.Get(fiber.HeaderHost))
		doc.Schemes = []string{utils.CopyString(scheme)}

		c.Type("json")
		return c.SendString(doc.ReadDoc())
	}
}
