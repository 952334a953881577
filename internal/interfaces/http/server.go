package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-tienda/pkg/logger"
)

// AppConfig parámetros del servidor Fiber.
type AppConfig struct {
	Name string
	// BodyLimit tamaño máximo del cuerpo; debe cubrir el archivo de importación más el sobre multipart.
	BodyLimit int
}

// NewApp crea la aplicación Fiber con manejo de errores uniforme, recover y log por petición.
func NewApp(cfg AppConfig, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		BodyLimit:    cfg.BodyLimit,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(RequestLogger(log))
	return app
}
