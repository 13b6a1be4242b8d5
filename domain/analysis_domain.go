package domain

import (
	"errors"
	"fmt"
)

var (
	MessageSuccessAnalyzeFace = "face analysis completed successfully"
	MessageSuccessGetProfile  = "style profile retrieved successfully"

	MessageFailedAnalyzeFace = "failed to analyze face"
	MessageFailedGetProfile  = "failed to retrieve style profile"

	ErrProfileNotFound = errors.New("style profile not found, complete face analysis first")
)

const (
	ProcessingModeDeterministic = "deterministic_hash_analysis"
)

type (
	AnalysisDetails struct {
		FaceWidthRatio    float64 `json:"face_width_ratio"`
		JawlineProminence float64 `json:"jawline_prominence"`
		ForeheadHeight    float64 `json:"forehead_height"`
		CheekboneWidth    float64 `json:"cheekbone_width"`
		ColorTemperature  string  `json:"color_temperature"`
		ProcessingMode    string  `json:"processing_mode"`
		ImageHash         string  `json:"image_hash"`
	}

	StylingTips struct {
		HairstyleDos         []string `json:"hairstyle_dos"`
		HairstyleDonts       []string `json:"hairstyle_donts"`
		ColorRecommendations []string `json:"color_recommendations"`
	}

	AnalysisResult struct {
		FaceShape        string          `json:"face_shape"`
		SkinUndertone    string          `json:"skin_undertone"`
		RecommendedStyle string          `json:"recommended_style"`
		Confidence       float64         `json:"confidence"`
		AnalysisDetails  AnalysisDetails `json:"analysis_details"`
		StylingTips      StylingTips     `json:"styling_tips"`
	}

	AnalyzeFaceResponse struct {
		AnalysisResult
		SessionUpdated bool `json:"session_updated"`
	}

	StyleProfileResponse struct {
		ID               string         `json:"id"`
		UserID           string         `json:"user_id"`
		FaceShape        string         `json:"face_shape"`
		SkinUndertone    string         `json:"skin_undertone"`
		CurrentHairstyle string         `json:"current_hairstyle"`
		Preferences      map[string]any `json:"preferences"`
		ProCredits       int            `json:"pro_credits"`
		CreatedAt        string         `json:"created_at"`
		UpdatedAt        string         `json:"updated_at"`
	}
)

func AnalysisMessage(r AnalysisResult) string {
	return fmt.Sprintf(
		"Great! I can see you have a beautiful %s face shape with %s undertones. Based on your features, I'd recommend: %s",
		r.FaceShape, r.SkinUndertone, r.RecommendedStyle,
	)
}
