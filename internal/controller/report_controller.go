package controller

import (
	"errors"

	"paie-detect-be/internal/dto"
	"paie-detect-be/internal/pkg/serverutils"
	"paie-detect-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReportController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
}

type reportController struct {
	service service.IReportService
}

func NewReportController(service service.IReportService) IReportController {
	return &reportController{service: service}
}

func (c *reportController) RegisterRoutes(r fiber.Router) {
	r.Post("/report/send", c.Send)
}

func (c *reportController) Send(ctx *fiber.Ctx) error {
	var req dto.SendReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Corps de requête invalide")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendReport(ctx.UserContext(), &req)
	if errors.Is(err, service.ErrReportAlreadySent) {
		return ctx.JSON(serverutils.SuccessResponse("Le rapport a déjà été envoyé", dto.SendReportResponse{AlreadySent: true}))
	}
	if err != nil {
		return serviceError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Rapport envoyé par email", res))
}
