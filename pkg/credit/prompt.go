package credit

import (
	"strings"
)

const baseModifiers = "photorealistic, professional studio lighting, high quality, 8K resolution, natural skin texture"

// BuildPrompt assembles the styling instruction sent with the base photo.
// Parts are concatenated without separators; the embedded newlines carry the layout.
func BuildPrompt(hairstyle, outfit, faceShape, undertone string) string {
	parts := []string{
		"Transform this person's appearance with the following styling changes:",
		"\nHairstyle: " + hairstyle,
	}
	if outfit != "" {
		parts = append(parts, "Outfit: "+outfit)
	}
	if faceShape != "" {
		parts = append(parts, "\nNote: The person has a "+faceShape+" face shape. Ensure the hairstyle complements this feature.")
	}
	if undertone != "" {
		parts = append(parts, "Skin undertone: "+undertone+". Ensure colors and styling harmonize with this.")
	}
	parts = append(parts,
		"\n\nStyle requirements: "+baseModifiers,
		"\nMaintain the person's core facial features, ethnicity, and identity.",
		"Only change the hairstyle and outfit as specified.",
		"The result should look natural and professionally styled.",
		"Ensure smooth transitions between the original features and the new styling.",
	)
	return strings.Join(parts, "")
}
