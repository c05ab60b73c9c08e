package serverutils

import (
	"errors"

	"paie-detect-be/internal/pkg/logger"
	"paie-detect-be/pkg/oracle"

	"github.com/gofiber/fiber/v2"
)

// Messages shown to clients for failures whose detail must stay in the logs.
const (
	MsgOracleFormat = "L'analyse n'a pas pu être finalisée, merci de réessayer."
	MsgInternal     = "Erreur serveur"
)

// ErrorHandlerMiddleware turns handler errors into the BaseResponse envelope.
// Unknown errors are logged and answered with a generic 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return WriteError(ctx, err, log)
	}
}

func WriteError(ctx *fiber.Ctx, err error, log logger.ILogger) error {
	var fiberErr *fiber.Error
	var validationErr *ValidationError

	switch {
	case errors.As(err, &validationErr):
		return ctx.Status(fiber.StatusBadRequest).JSON(BaseResponse[*ValidationError]{
			Success: false,
			Code:    fiber.StatusBadRequest,
			Message: "Données invalides",
			Data:    validationErr,
		})
	case errors.Is(err, oracle.ErrOracleFormat):
		return ctx.Status(fiber.StatusBadGateway).JSON(ErrorResponse(fiber.StatusBadGateway, MsgOracleFormat))
	case errors.As(err, &fiberErr):
		return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
	default:
		log.Error("HTTP", "Unhandled request error", map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"error":  err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, MsgInternal))
	}
}
