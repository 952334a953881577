package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/domain"
	"github.com/jhoicas/inventario-tienda/pkg/logger"
)

// Categorías de error expuestas al cliente.
const (
	CategoryValidation = "validation"
	CategoryStock      = "stock"
	CategoryNotFound   = "not_found"
	CategoryConflict   = "conflict"
	CategoryInternal   = "internal"
)

// classify traduce un error de dominio a status HTTP y cuerpo de error.
func classify(err error) (int, dto.ErrorResponse) {
	var fe *fiber.Error
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Category: CategoryValidation, Message: err.Error()}
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Category: CategoryStock, Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Category: CategoryNotFound, Message: err.Error()}
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "DUPLICATE", Category: CategoryConflict, Message: err.Error()}
	case errors.Is(err, domain.ErrProductInactive):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "PRODUCT_INACTIVE", Category: CategoryConflict, Message: err.Error()}
	case errors.Is(err, domain.ErrImportInProgress):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "IMPORT_IN_PROGRESS", Category: CategoryConflict, Message: err.Error()}
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "CONFLICT", Category: CategoryConflict, Message: err.Error()}
	case errors.Is(err, domain.ErrInvariantViolation):
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INVARIANT_VIOLATION", Category: CategoryInternal, Message: "estado de inventario inconsistente; contacte al operador"}
	case errors.As(err, &fe):
		return fe.Code, fiberErrorResponse(fe)
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Category: CategoryInternal, Message: "error interno; intente de nuevo más tarde"}
}

func fiberErrorResponse(fe *fiber.Error) dto.ErrorResponse {
	switch {
	case fe.Code == fiber.StatusNotFound:
		return dto.ErrorResponse{Code: "NOT_FOUND", Category: CategoryNotFound, Message: fe.Message}
	case fe.Code == fiber.StatusRequestEntityTooLarge:
		return dto.ErrorResponse{Code: "VALIDATION", Category: CategoryValidation, Message: "el cuerpo de la petición es demasiado grande"}
	case fe.Code >= 500:
		return dto.ErrorResponse{Code: "INTERNAL", Category: CategoryInternal, Message: fe.Message}
	}
	return dto.ErrorResponse{Code: "BAD_REQUEST", Category: CategoryValidation, Message: fe.Message}
}

// ErrorHandler es el fiber.Config.ErrorHandler de la API: todo error sale como dto.ErrorResponse.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := classify(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("request_id", requestID(c)).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("error atendiendo petición")
		}
		return c.Status(status).JSON(body)
	}
}

// badRequest error de validación producido en la capa HTTP (parámetros o cuerpo mal formados).
func badRequest(field, rule string) error {
	return domain.NewValidationError(field, rule)
}
