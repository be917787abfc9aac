package coloranalysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/r-G7D/color-outfit-app/internal/infra/llm/chatgpt"
)

const defaultSystemPrompt = "You are a professional color analyst and personal stylist. Always return responses in the specified JSON format."

// BuildMessages assembles the system and user turns of the conversation.
func BuildMessages(systemPrompt, color string, attrs UserAttributes) []chatgpt.Message {
	system := strings.TrimSpace(systemPrompt)
	if system == "" {
		system = defaultSystemPrompt
	}
	return []chatgpt.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: buildUserPrompt(color, attrs)},
	}
}

func buildUserPrompt(color string, attrs UserAttributes) string {
	var b strings.Builder
	b.WriteString("Analyze this person's coloring and provide style recommendations based on:\n\n")
	fmt.Fprintf(&b, "Skin tone hexcode: %s\n\n", color)

	b.WriteString("Physical characteristics:\n")
	fmt.Fprintf(&b, "- Hair color: %s\n", describeHair(attrs))
	fmt.Fprintf(&b, "- Eye color: %s\n", attrs.EyeColor)
	fmt.Fprintf(&b, "- Sun reaction: %s\n", attrs.TanningTendency)
	fmt.Fprintf(&b, "- Visible vein color: %s\n", attrs.VeinColor)
	fmt.Fprintf(&b, "- Jewelry preference: %s\n\n", attrs.JewelryPreference)

	b.WriteString("Style preferences:\n")
	fmt.Fprintf(&b, "- Favorite colors: %s\n", attrs.FavoriteColors)
	fmt.Fprintf(&b, "- Style goals: %s\n", strings.Join(attrs.StyleGoals, ", "))
	fmt.Fprintf(&b, "- Disliked colors: %s\n\n", attrs.DislikedColors)

	b.WriteString("Lifestyle:\n")
	fmt.Fprintf(&b, "- Profession/Industry: %s\n", attrs.Profession)
	fmt.Fprintf(&b, "- Common occasions: %s\n", strings.Join(attrs.CommonOccasions, ", "))
	fmt.Fprintf(&b, "- Local climate: %s\n\n", attrs.Climate)

	b.WriteString("Analyze their coloring and return a JSON object with the following structure:\n")
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  \"skinTone\": %s,\n", quote(color))
	b.WriteString("  \"season\": \"Spring/Summer/Autumn/Winter with warm/cool modifier\",\n")
	b.WriteString("  \"undertone\": \"Warm/Cool/Neutral with explanation\",\n")
	b.WriteString("  \"recommendedColors\": {\n")
	b.WriteString("    \"neutrals\": [\"hexcolor1\", \"hexcolor2\", \"hexcolor3\"],\n")
	b.WriteString("    \"accents\": [\"hexcolor1\", \"hexcolor2\", \"hexcolor3\"]\n")
	b.WriteString("  },\n")
	fmt.Fprintf(&b, "  \"outfits\": %s\n", outfitTemplate(attrs.CommonOccasions))
	b.WriteString("}")
	return b.String()
}

func describeHair(attrs UserAttributes) string {
	if attrs.IsHairDyed {
		return fmt.Sprintf("Currently %s (naturally %s)", attrs.HairColor, attrs.NaturalHairColor)
	}
	return attrs.HairColor
}

// outfitTemplate renders one placeholder entry per occasion, in input order.
func outfitTemplate(occasions []string) string {
	placeholder := `["outfit description1", "outfit description2"]`
	seen := make(map[string]struct{}, len(occasions))
	entries := make([]string, 0, len(occasions))
	for _, occasion := range occasions {
		if strings.TrimSpace(occasion) == "" {
			continue
		}
		if _, ok := seen[occasion]; ok {
			continue
		}
		seen[occasion] = struct{}{}
		entries = append(entries, quote(occasion)+": "+placeholder)
	}
	return "{" + strings.Join(entries, ", ") + "}"
}

func quote(s string) string {
	data, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(data)
}
