package controller

import (
	"io"

	"paie-detect-be/internal/pkg/serverutils"
	"paie-detect-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
}

type uploadController struct {
	service service.IUploadService
	limit   fiber.Handler
}

func NewUploadController(service service.IUploadService, limit fiber.Handler) IUploadController {
	return &uploadController{service: service, limit: limit}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	r.Post("/upload", c.limit, c.Upload)
}

func (c *uploadController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Aucun fichier fourni")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	res, err := c.service.Upload(ctx.UserContext(), fileHeader.Filename, fileHeader.Header.Get(fiber.HeaderContentType), content)
	if err != nil {
		return serviceError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Fichier reçu", res))
}
