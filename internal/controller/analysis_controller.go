package controller

import (
	"paie-detect-be/internal/dto"
	"paie-detect-be/internal/pkg/serverutils"
	"paie-detect-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAnalysisController interface {
	RegisterRoutes(r fiber.Router)
	Analyze(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type analysisController struct {
	service service.IAnalysisService
	limit   fiber.Handler
}

func NewAnalysisController(service service.IAnalysisService, limit fiber.Handler) IAnalysisController {
	return &analysisController{service: service, limit: limit}
}

func (c *analysisController) RegisterRoutes(r fiber.Router) {
	r.Post("/analyze", c.limit, c.Analyze)
	r.Get("/analysis/:id", c.Show)
}

func (c *analysisController) Analyze(ctx *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Corps de requête invalide")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Analyze(ctx.UserContext(), uuid.MustParse(req.FileId))
	if err != nil {
		return serviceError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Analyse terminée", res))
}

func (c *analysisController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Analyse introuvable")
	}

	res, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return serviceError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Analyse", res))
}
