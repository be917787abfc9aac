package coloranalysis

import "github.com/r-G7D/color-outfit-app/pkg/metrics"

// TanningTendency describes how the skin reacts to sun exposure.
type TanningTendency string

const (
	TanningUnknown TanningTendency = ""
	TanningBurn    TanningTendency = "burn"
	TanningTan     TanningTendency = "tan"
	TanningBoth    TanningTendency = "both"
	TanningNeither TanningTendency = "neither"
)

// VeinColor is the visible color of the wrist veins.
type VeinColor string

const (
	VeinUnknown    VeinColor = ""
	VeinBlueGreen  VeinColor = "blue-green"
	VeinPurpleBlue VeinColor = "purple-blue"
	VeinBoth       VeinColor = "both"
)

// JewelryPreference is the metal the user prefers to wear.
type JewelryPreference string

const (
	JewelryUnknown JewelryPreference = ""
	JewelryGold    JewelryPreference = "gold"
	JewelrySilver  JewelryPreference = "silver"
	JewelryBoth    JewelryPreference = "both"
)

// Climate is the broad climate the user lives in.
type Climate string

const (
	ClimateUnknown   Climate = ""
	ClimateTropical  Climate = "tropical"
	ClimateTemperate Climate = "temperate"
	ClimateCold      Climate = "cold"
	ClimateVaried    Climate = "varied"
)

// UserAttributes is the physical and style description submitted by the user.
// NaturalHairColor is only meaningful when IsHairDyed is set.
type UserAttributes struct {
	HairColor         string            `json:"hairColor"`
	IsHairDyed        bool              `json:"isHairDyed"`
	NaturalHairColor  string            `json:"naturalHairColor,omitempty"`
	EyeColor          string            `json:"eyeColor"`
	TanningTendency   TanningTendency   `json:"tanningTendency" validate:"omitempty,oneof=burn tan both neither"`
	VeinColor         VeinColor         `json:"veinColor" validate:"omitempty,oneof=blue-green purple-blue both"`
	JewelryPreference JewelryPreference `json:"jewelryPreference" validate:"omitempty,oneof=gold silver both"`
	FavoriteColors    string            `json:"favoriteColors"`
	StyleGoals        []string          `json:"styleGoals"`
	DislikedColors    string            `json:"dislikedColors"`
	Profession        string            `json:"profession"`
	CommonOccasions   []string          `json:"commonOccasions"`
	Climate           Climate           `json:"climate" validate:"omitempty,oneof=tropical temperate cold varied"`
}

// Request is the inbound analysis payload. UserData must be present.
type Request struct {
	Color    string          `json:"color"`
	UserData *UserAttributes `json:"userData" validate:"required"`
}

// RecommendedColors holds ordered palettes of color values.
type RecommendedColors struct {
	Neutrals []string `json:"neutrals" validate:"required"`
	Accents  []string `json:"accents" validate:"required"`
}

// ColorAnalysis is the recommendation returned to the caller.
type ColorAnalysis struct {
	SkinTone          string              `json:"skinTone"`
	Season            string              `json:"season" validate:"required"`
	Undertone         string              `json:"undertone" validate:"required"`
	RecommendedColors RecommendedColors   `json:"recommendedColors"`
	Outfits           map[string][]string `json:"outfits" validate:"required"`
}

// Result pairs the analysis with what the upstream call cost.
type Result struct {
	Analysis ColorAnalysis
	Usage    metrics.TokenUsage
}

// Config wires runtime settings for the analysis domain.
type Config struct {
	Model        string
	MaxTokens    int
	SystemPrompt string
}
