package controller

import (
	"fmt"
	"strings"

	"paie-detect-be/internal/pkg/serverutils"
	"paie-detect-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetAnalyses(ctx *fiber.Ctx) error
	DownloadFile(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
}

type adminController struct {
	service service.IAdminService
	guard   fiber.Handler
}

func NewAdminController(service service.IAdminService, jwtSecret string) IAdminController {
	return &adminController{
		service: service,
		guard:   serverutils.AdminJwtMiddleware(jwtSecret),
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Use(c.guard)
	h.Get("/analyses", c.GetAnalyses)
	h.Get("/files/:id/download", c.DownloadFile)
	h.Get("/logs", c.GetLogs)
}

func (c *adminController) GetAnalyses(ctx *fiber.Ctx) error {
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.ListAnalyses(ctx.UserContext(), offset)
	if err != nil {
		return serviceError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Analyses", res))
}

func (c *adminController) DownloadFile(ctx *fiber.Ctx) error {
	fileId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Identifiant de fichier invalide")
	}

	file, err := c.service.DownloadFile(ctx.UserContext(), fileId)
	if err != nil {
		return serviceError(err)
	}

	name := strings.NewReplacer(`"`, "", "\r", "", "\n", "").Replace(file.FileName)
	ctx.Set(fiber.HeaderContentType, file.FileType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	return ctx.Send(file.Data)
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	level := strings.ToUpper(ctx.Query("level"))
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.GetLogs(level, limit, offset)
	if err != nil {
		return serviceError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Logs", res))
}
