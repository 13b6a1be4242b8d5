package domain

import (
	"errors"
)

const (
	RoleUser = "user"

	// Upload policy shared by analysis, generation and wardrobe uploads
	MAX_IMAGE_SIZE = 10 * 1024 * 1024
)

var (
	MessageFailedBodyRequest  = "failed to parse request body"
	MessageFailedGetToken     = "failed to get token"
	MessageFailedTokenInvalid = "failed to token invalid"

	AllowedImageTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}

	ErrParseUUID          = errors.New("failed to parse UUID")
	ErrTokenNotFound      = errors.New("failed to token not found")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrUnauthorizedAccess = errors.New("unauthorized access to resource")

	// Taxonomy surfaced to callers
	ErrInvalidInput         = errors.New("invalid input")
	ErrPreconditionFailed   = errors.New("precondition failed")
	ErrInsufficientCredits  = errors.New("insufficient credits")
	ErrQuotaExceeded        = errors.New("quota exceeded")
	ErrUpstreamFailure      = errors.New("upstream failure")
	ErrGenerationInProgress = errors.New("generation already in progress")
)
