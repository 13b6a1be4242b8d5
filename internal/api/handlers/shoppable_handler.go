package handlers

import (
	"rhea-backend/domain"
	"rhea-backend/internal/api/presenters"
	"rhea-backend/pkg/shoppable"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppableHandler interface {
		ShoppableLinks(c *fiber.Ctx) error
	}

	shoppableHandler struct {
		shoppableService shoppable.ShoppableService
		validator        *validator.Validate
	}
)

func NewShoppableHandler(shoppableService shoppable.ShoppableService, validator *validator.Validate) ShoppableHandler {
	return &shoppableHandler{
		shoppableService: shoppableService,
		validator:        validator,
	}
}

func (h *shoppableHandler) ShoppableLinks(c *fiber.Ctx) error {
	req := new(domain.ShoppableLinksRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedShoppableLinks, err)
	}

	res, err := h.shoppableService.ExtractItems(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedShoppableLinks, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.ShoppableMessage(res.ItemCount))
}
