package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/services"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Overview handles GET /analytics (admin only, enforced by middleware).
func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.analyticsService.Overview()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(overview)
}
