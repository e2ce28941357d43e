package grocery

// Style is the display color triple attached to a category chip. Purely
// presentational; the mobile clients render it as-is.
type Style struct {
	Background string `json:"bg"`
	Border     string `json:"border"`
	Text       string `json:"text"`
}

var styles = map[string]Style{
	CategoryBoulangerie:    {"#FFF7E6", "#FFE5B3", "#8A5A00"},
	CategoryFruitsLegumes:  {"#EAFDF5", "#C4F6E5", "#0F7B5F"},
	CategoryBoucherie:      {"#FFF0F0", "#FFD1D1", "#C21F1F"},
	CategoryCharcuterie:    {"#FFF0F4", "#FFD6E3", "#A01243"},
	CategoryPoissonnerie:   {"#EEF7FF", "#CFE8FF", "#0063B1"},
	CategoryFromagerie:     {"#FFF8EB", "#FFE6BF", "#A46900"},
	CategoryCremerie:       {"#F2F5FF", "#D6DFFF", "#2A46FF"},
	CategoryTraiteur:       {"#EFFFF4", "#CFF5DE", "#177245"},
	CategoryEpicerieSalee:  {"#F3F0FF", "#E0D9FF", "#6B4EFF"},
	CategoryEpicerieSucree: {"#FDECF3", "#F7C7DA", "#A61E4D"},
	CategoryVrac:           {"#F0FFF5", "#D5F5E3", "#2E7D32"},
	CategoryBoissons:       {"#E6F7FF", "#B3E5FF", "#005C99"},
	CategoryJusFrais:       {"#FFF7E6", "#FFE1B5", "#9A5D00"},
	CategorySurgeles:       {"#EAF7FF", "#CBEAFF", "#0A66A1"},
	CategoryPetitDejeuner:  {"#FFF1E8", "#FFD8C2", "#9F3E00"},
	CategoryBebe:           {"#F7ECFF", "#E3D0FF", "#6F38C5"},
	CategoryAnimaux:        {"#EAFBF1", "#C7F0D7", "#0E7C3A"},
	CategoryParfumerie:     {"#FFF0F6", "#FFD6E7", "#9C1A5B"},
	CategoryHygiene:        {"#EFF7FF", "#D7E9FF", "#0A66A1"},
	CategoryDroguerie:      {"#F0FFFA", "#D2F7EB", "#146356"},
	CategoryTextile:        {"#F5F5FF", "#E1E1FF", "#4A46A3"},
	CategoryBazar:          {"#FFF7F0", "#FFE0C7", "#9A4A00"},
	CategoryOther:          {"#EEF2F6", "#E6E4ED", "#5B6978"},
}

// CategoryStyle returns the chip colors for a category, falling back to the
// neutral Autre style for unknown or empty labels.
func CategoryStyle(category string) Style {
	if s, ok := styles[category]; ok {
		return s
	}
	return styles[CategoryOther]
}

var icons = map[string]string{
	CategoryFruitsLegumes:  "nutrition-outline",
	CategoryBoulangerie:    "fast-food-outline",
	CategoryPoissonnerie:   "fish-outline",
	CategoryBoucherie:      "restaurant-outline",
	CategoryCharcuterie:    "restaurant-outline",
	CategoryFromagerie:     "ice-cream-outline",
	CategoryTraiteur:       "restaurant-outline",
	CategoryBoissons:       "wine-outline",
	CategoryJusFrais:       "cafe-outline",
	CategoryEpicerieSucree: "ice-cream-outline",
	CategoryCremerie:       "ice-cream-outline",
	CategoryVrac:           "basket-outline",
	CategoryParfumerie:     "color-palette-outline",
	CategoryHygiene:        "medkit-outline",
	CategoryDroguerie:      "color-wand-outline",
	CategoryTextile:        "shirt-outline",
	CategoryBazar:          "construct-outline",
}

// CategoryIcon returns the fallback icon name for a category.
func CategoryIcon(category string) string {
	if icon, ok := icons[category]; ok {
		return icon
	}
	return "cart-outline"
}

// sectionRank orders shopping list sections to match a walk through the
// store. Lower comes first; unknown categories sink to the bottom.
var sectionRank = map[string]float64{
	CategoryBoulangerie:    1,
	CategoryFruitsLegumes:  2,
	CategoryBoucherie:      3,
	CategoryCharcuterie:    3.5,
	CategoryPoissonnerie:   4,
	CategoryFromagerie:     5,
	CategoryCremerie:       6,
	CategoryEpicerieSalee:  6,
	CategoryTraiteur:       7,
	CategoryEpicerieSucree: 7,
	CategoryVrac:           8,
	CategoryBoissons:       9,
	CategoryJusFrais:       10,
	CategorySurgeles:       11,
	CategoryPetitDejeuner:  12,
	CategoryBebe:           13,
	CategoryAnimaux:        14,
	CategoryParfumerie:     15,
	CategoryHygiene:        16,
	CategoryDroguerie:      17,
	CategoryTextile:        18,
	CategoryBazar:          19,
	CategoryOther:          99,
}

// SectionRank returns the sort rank of a category section.
func SectionRank(category string) float64 {
	if r, ok := sectionRank[category]; ok {
		return r
	}
	return sectionRank[CategoryOther]
}
