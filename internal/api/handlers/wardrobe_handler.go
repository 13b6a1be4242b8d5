package handlers

import (
	"rhea-backend/domain"
	"rhea-backend/internal/api/presenters"
	"rhea-backend/pkg/wardrobe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	WardrobeHandler interface {
		UploadItem(c *fiber.Ctx) error
		GetItems(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
	}

	wardrobeHandler struct {
		wardrobeService wardrobe.WardrobeService
		validator       *validator.Validate
	}
)

func NewWardrobeHandler(wardrobeService wardrobe.WardrobeService, validator *validator.Validate) WardrobeHandler {
	return &wardrobeHandler{
		wardrobeService: wardrobeService,
		validator:       validator,
	}
}

func (h *wardrobeHandler) UploadItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.UploadWardrobeItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadWardrobeItem, err)
	}

	upload, err := formImage(c)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedUploadWardrobeItem, err)
	}

	res, err := h.wardrobeService.UploadItem(c.Context(), userID, *req, upload)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedUploadWardrobeItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.WardrobeUploadMessage(req.ItemName))
}

func (h *wardrobeHandler) GetItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.wardrobeService.GetItems(c.Context(), userID, c.Query("category"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetWardrobeItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.WardrobeItemsMessage(res.Count))
}

func (h *wardrobeHandler) DeleteItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.wardrobeService.DeleteItem(c.Context(), userID, c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedDeleteWardrobeItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteWardrobeItem)
}
