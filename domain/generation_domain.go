package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessGenerateLook     = "look generated successfully"
	MessageSuccessGetCredits       = "credits retrieved successfully"
	MessageSuccessGetCreditHistory = "credit history retrieved successfully"

	MessageFailedGenerateLook     = "failed to generate look"
	MessageFailedGetCredits       = "failed to retrieve credits"
	MessageFailedGetCreditHistory = "failed to retrieve credit history"
)

const (
	CREDIT_COST = 50

	DEFAULT_HAIRSTYLE = "modern layered cut"

	GenerationModeReal = "real"
	GenerationModeMock = "mock"

	CreditTypeGeneration = "Generation"

	PLACEHOLDER_SIDE = 512
)

var (
	MessageAnalysisRequired = "Please complete face analysis first before generating a look."
	MessagePlaceholderNote  = "This is a placeholder. A generated image is returned when the provider responds."
)

func GenerateLookMessage(remaining int) string {
	return fmt.Sprintf("Look generated successfully! %d credits remaining.", remaining)
}

func CreditsMessage(credits int) string {
	return fmt.Sprintf("You have %d Pro credits", credits)
}

// InsufficientCreditsError reports the balance that failed the check.
type InsufficientCreditsError struct {
	Current  int
	Required int
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("Insufficient credits. You have %d credits, but need %d credits to generate an image. Upgrade to Pro or purchase more credits.", e.Current, e.Required)
}

func (e *InsufficientCreditsError) Is(target error) bool {
	return target == ErrInsufficientCredits
}

type (
	GenerateLookRequest struct {
		Hairstyle         string `form:"hairstyle" validate:"omitempty,max=200"`
		OutfitDescription string `form:"outfit_description" validate:"omitempty,max=500"`
	}

	GenerationMetadata struct {
		Hairstyle    string  `json:"hairstyle"`
		Outfit       *string `json:"outfit"`
		Model        string  `json:"model,omitempty"`
		Mode         string  `json:"mode"`
		Reason       string  `json:"reason,omitempty"`
		Note         string  `json:"note,omitempty"`
		PromptLength int     `json:"prompt_length"`
	}

	GenerateLookResponse struct {
		ImageBase64      string             `json:"image_base64"`
		ImageURL         *string            `json:"image_url"`
		CreditsRemaining int                `json:"credits_remaining"`
		CreditsUsed      int                `json:"credits_used"`
		Metadata         GenerationMetadata `json:"metadata"`
	}

	CreditsResponse struct {
		Credits                 int `json:"credits"`
		CreditCostPerGeneration int `json:"credit_cost_per_generation"`
	}

	CreditTransaction struct {
		ID          string    `json:"id"`
		Amount      int       `json:"amount"`
		Type        string    `json:"type"`
		Mode        string    `json:"mode"`
		Description string    `json:"description"`
		Balance     int       `json:"balance"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
