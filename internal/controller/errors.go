package controller

import (
	"errors"
	"strings"

	"paie-detect-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// serviceError maps service sentinels to HTTP errors. Anything unknown is
// returned as is and ends up as a 500.
func serviceError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		msg := strings.TrimPrefix(err.Error(), service.ErrInvalidInput.Error()+": ")
		return fiber.NewError(fiber.StatusBadRequest, msg)
	case errors.Is(err, service.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Ressource introuvable")
	case errors.Is(err, service.ErrNothingToReport):
		return fiber.NewError(fiber.StatusBadRequest, "Aucune anomalie à détailler pour cette analyse")
	case errors.Is(err, service.ErrFileExpired):
		return fiber.NewError(fiber.StatusGone, "Le fichier n'est plus disponible")
	case errors.Is(err, service.ErrOracleUnavailable):
		return fiber.NewError(fiber.StatusServiceUnavailable, "Le service d'analyse est momentanément indisponible")
	case errors.Is(err, service.ErrDeliveryFailed):
		return fiber.NewError(fiber.StatusBadGateway, "Le rapport est prêt mais l'email n'a pas pu être envoyé")
	}
	return err
}
