package handlers

import (
	"strconv"

	"rhea-backend/domain"
	"rhea-backend/internal/api/presenters"
	"rhea-backend/pkg/credit"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CreditHandler interface {
		GenerateLook(c *fiber.Ctx) error
		GetCredits(c *fiber.Ctx) error
		GetCreditHistory(c *fiber.Ctx) error
	}

	creditHandler struct {
		creditService credit.CreditService
		validator     *validator.Validate
	}
)

func NewCreditHandler(creditService credit.CreditService, validator *validator.Validate) CreditHandler {
	return &creditHandler{
		creditService: creditService,
		validator:     validator,
	}
}

func (h *creditHandler) GenerateLook(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.GenerateLookRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateLook, err)
	}

	upload, err := formImage(c)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGenerateLook, err)
	}

	res, err := h.creditService.RequestGeneration(c.Context(), userID, *req, upload)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGenerateLook, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.GenerateLookMessage(res.CreditsRemaining))
}

func (h *creditHandler) GetCredits(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.creditService.GetCredits(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetCredits, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.CreditsMessage(res.Credits))
}

func (h *creditHandler) GetCreditHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	transactions, count, err := h.creditService.GetCreditHistory(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetCreditHistory, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"transactions": transactions,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetCreditHistory)
}
