package handlers

import (
	"HomeStash-Backend/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// statusFromError maps service errors onto the HTTP taxonomy: validation
// failures are 400, missing entities 404, delete conflicts 409, anything
// else 500.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrLocationNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrLocationNotEmpty):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidStorageLocation),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrEmptyIDList),
		errors.Is(err, domain.ErrInvalidImageFormat),
		errors.Is(err, domain.ErrNoReportRecipient),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
