package presenters

import (
	"errors"
	"strings"

	"rhea-backend/domain"

	"github.com/gofiber/fiber/v2"
)

type (
	SuccessBody struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    any    `json:"data"`
	}

	ErrorBody struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
)

func SuccessResponse(c *fiber.Ctx, data any, status int, message string) error {
	return c.Status(status).JSON(SuccessBody{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	return c.Status(status).JSON(ErrorBody{
		Success: false,
		Message: message,
		Error:   ErrorText(err),
	})
}

// statusTable is checked in order; the first sentinel matched wins.
var statusTable = []struct {
	err    error
	status int
}{
	{domain.ErrInsufficientCredits, fiber.StatusPaymentRequired},
	{domain.ErrQuotaExceeded, fiber.StatusForbidden},
	{domain.ErrUnauthorizedAccess, fiber.StatusForbidden},
	{domain.ErrGenerationInProgress, fiber.StatusConflict},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict},
	{domain.ErrWardrobeItemNotFound, fiber.StatusNotFound},
	{domain.ErrProfileNotFound, fiber.StatusNotFound},
	{domain.ErrUserNotFound, fiber.StatusNotFound},
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized},
	{domain.ErrTokenInvalid, fiber.StatusUnauthorized},
	{domain.ErrTokenExpired, fiber.StatusUnauthorized},
	{domain.ErrTokenNotFound, fiber.StatusUnauthorized},
	{domain.ErrInvalidInput, fiber.StatusBadRequest},
	{domain.ErrPreconditionFailed, fiber.StatusBadRequest},
	{domain.ErrParseUUID, fiber.StatusBadRequest},
	{domain.ErrUpstreamFailure, fiber.StatusInternalServerError},
}

func StatusFromError(err error) int {
	for _, entry := range statusTable {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return fiber.StatusInternalServerError
}

var reasonPrefixed = []error{
	domain.ErrInvalidInput,
	domain.ErrPreconditionFailed,
	domain.ErrQuotaExceeded,
}

// ErrorText drops the sentinel prefix from wrapped errors so callers see the
// specific reason.
func ErrorText(err error) string {
	if err == nil {
		return ""
	}
	text := err.Error()
	for _, sentinel := range reasonPrefixed {
		if prefix := sentinel.Error() + ": "; strings.HasPrefix(text, prefix) {
			return strings.TrimPrefix(text, prefix)
		}
	}
	return strings.ReplaceAll(text, "\n", ": ")
}
