package controller

import (
	"time"

	"paie-detect-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type HealthStatus struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct{}

func NewHealthController() IHealthController {
	return &healthController{}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("OK", HealthStatus{
		Status:    "ok",
		Service:   "paie-detect-backend",
		Timestamp: time.Now().UTC(),
	}))
}
