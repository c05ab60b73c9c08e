package controller

import (
	"paie-detect-be/internal/dto"
	"paie-detect-be/internal/pkg/serverutils"
	"paie-detect-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContactController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
}

type contactController struct {
	service service.IContactService
	limit   fiber.Handler
}

func NewContactController(service service.IContactService, limit fiber.Handler) IContactController {
	return &contactController{service: service, limit: limit}
}

func (c *contactController) RegisterRoutes(r fiber.Router) {
	r.Post("/contact", c.limit, c.Submit)
}

func (c *contactController) Submit(ctx *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Corps de requête invalide")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Submit(ctx.UserContext(), &req, ctx.IP())
	if err != nil {
		return serviceError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Message envoyé", res))
}
