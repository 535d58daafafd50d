package handlers

import (
	"HomeStash-Backend/domain"
	"HomeStash-Backend/internal/api/presenters"
	"HomeStash-Backend/pkg/stats"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	StatsHandler interface {
		GetInventoryStats(c *fiber.Ctx) error
		SendExpiryReport(c *fiber.Ctx) error
	}

	statsHandler struct {
		statsService stats.StatsService
		validator    *validator.Validate
	}
)

func NewStatsHandler(statsService stats.StatsService, validator *validator.Validate) StatsHandler {
	return &statsHandler{
		statsService: statsService,
		validator:    validator,
	}
}

func (h *statsHandler) GetInventoryStats(c *fiber.Ctx) error {
	res, err := h.statsService.GetInventoryStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStats)
}

func (h *statsHandler) SendExpiryReport(c *fiber.Ctx) error {
	req := new(domain.ExpiryReportRequest)

	// Body is optional; an empty body falls back to the configured recipient.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExpiryReport, err)
	}

	res, err := h.statsService.SendExpiryReport(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedExpiryReport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessExpiryReport)
}
