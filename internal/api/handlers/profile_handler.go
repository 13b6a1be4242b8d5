package handlers

import (
	"rhea-backend/domain"
	"rhea-backend/internal/api/presenters"
	"rhea-backend/pkg/profile"

	"github.com/gofiber/fiber/v2"
)

type (
	ProfileHandler interface {
		AnalyzeFace(c *fiber.Ctx) error
		GetProfile(c *fiber.Ctx) error
	}

	profileHandler struct {
		profileService profile.ProfileService
	}
)

func NewProfileHandler(profileService profile.ProfileService) ProfileHandler {
	return &profileHandler{
		profileService: profileService,
	}
}

func (h *profileHandler) AnalyzeFace(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	upload, err := formImage(c)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedAnalyzeFace, err)
	}

	res, err := h.profileService.AnalyzeFace(c.Context(), userID, upload)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedAnalyzeFace, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.AnalysisMessage(res.AnalysisResult))
}

func (h *profileHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.profileService.GetProfile(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetProfile, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProfile)
}
