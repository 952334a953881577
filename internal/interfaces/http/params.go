package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// idParam lee un identificador numérico positivo de la ruta.
func idParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest(name, "debe ser un entero positivo")
	}
	return id, nil
}

// idQuery lee un identificador numérico positivo obligatorio de la query.
func idQuery(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, badRequest(name, "es requerido")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest(name, "debe ser un entero positivo")
	}
	return id, nil
}

// parseBody decodifica el JSON del cuerpo; los errores (incluida una ubicación desconocida) son de validación.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return badRequest("body", "cuerpo inválido: "+err.Error())
	}
	return nil
}
