package shoppable

const visionPrompt = `Analyze this fashion image and extract detailed information about the visible clothing items and accessories.

Focus ONLY on clearly visible items in the image. Do not hallucinate or invent items that aren't present.

For each distinct clothing item or accessory (maximum 5 items), provide:
1. Item Category (e.g., blazer, dress, shoes, necklace, handbag)
2. Specific Style Description (e.g., "Structured A-line", "Wrap-style", "Chelsea boot")
3. Primary Color (be specific, e.g., "Emerald Green", "Navy Blue", "Burgundy")
4. Fabric Type if identifiable (e.g., "Silk", "Cotton", "Leather", "Denim")
5. Key Style Details (e.g., "Gold buttons", "V-neck", "High-waisted", "Oversized fit")

Format your response as a JSON array with this exact structure:
[
  {
    "item_category": "blazer",
    "style_description": "Structured single-breasted blazer",
    "color": "Emerald Green",
    "fabric": "Silk blend",
    "style_details": "Notched lapels, gold buttons, tailored fit"
  },
  {
    "item_category": "pants",
    "style_description": "High-waisted straight-leg trousers",
    "color": "Black",
    "fabric": "Wool crepe",
    "style_details": "Front pleat, ankle length"
  }
]

CRITICAL: Return ONLY the JSON array. No additional text, explanations, or markdown formatting.`
