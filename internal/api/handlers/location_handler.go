package handlers

import (
	"HomeStash-Backend/domain"
	"HomeStash-Backend/internal/api/presenters"
	"HomeStash-Backend/pkg/location"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	LocationHandler interface {
		AddLocation(c *fiber.Ctx) error
		UpdateLocation(c *fiber.Ctx) error
		DeleteLocation(c *fiber.Ctx) error
		GetLocations(c *fiber.Ctx) error
		GetLocationDetails(c *fiber.Ctx) error
		GetRooms(c *fiber.Ctx) error
	}

	locationHandler struct {
		locationService location.LocationService
		validator       *validator.Validate
	}
)

func NewLocationHandler(locationService location.LocationService, validator *validator.Validate) LocationHandler {
	return &locationHandler{
		locationService: locationService,
		validator:       validator,
	}
}

func (h *locationHandler) AddLocation(c *fiber.Ctx) error {
	req := new(domain.AddLocationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddLocation, err)
	}

	res, err := h.locationService.AddLocation(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedAddLocation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddLocation)
}

func (h *locationHandler) UpdateLocation(c *fiber.Ctx) error {
	locationID := c.Params("id")
	req := new(domain.UpdateLocationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateLocation, err)
	}

	res, err := h.locationService.UpdateLocation(c.Context(), locationID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedUpdateLocation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateLocation)
}

func (h *locationHandler) DeleteLocation(c *fiber.Ctx) error {
	locationID := c.Params("id")

	if err := h.locationService.DeleteLocation(c.Context(), locationID); err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedDeleteLocation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteLocation)
}

func (h *locationHandler) GetLocations(c *fiber.Ctx) error {
	room := c.Query("room")

	locations, err := h.locationService.GetLocations(c.Context(), room)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetLocations, err)
	}

	return presenters.SuccessResponse(c, locations, fiber.StatusOK, domain.MessageSuccessGetLocations)
}

func (h *locationHandler) GetLocationDetails(c *fiber.Ctx) error {
	locationID := c.Params("id")

	res, err := h.locationService.GetLocationByID(c.Context(), locationID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetLocations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLocations)
}

func (h *locationHandler) GetRooms(c *fiber.Ctx) error {
	rooms, err := h.locationService.GetRooms(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetRooms, err)
	}

	return presenters.SuccessResponse(c, rooms, fiber.StatusOK, domain.MessageSuccessGetRooms)
}
