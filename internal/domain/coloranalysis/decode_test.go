package coloranalysis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const validContent = `{"skinTone":"#C68642","season":"Warm Autumn","undertone":"Warm - golden veins","recommendedColors":{"neutrals":["#F5F5DC","#8B4513"],"accents":["#808000"]},"outfits":{"Work":["Camel blazer","Olive trousers"]}}`

func TestParseAnalysis(t *testing.T) {
	v := newValidator()
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "valid", content: validContent},
		{name: "fenced", content: "```json\n" + validContent + "\n```"},
		{name: "empty", content: "  ", wantErr: "empty llm content"},
		{name: "not json", content: "Autumn, definitely.", wantErr: "decode analysis"},
		{name: "wrong type", content: `{"season":"Autumn","undertone":"Warm","recommendedColors":{"neutrals":"#fff","accents":[]},"outfits":{}}`, wantErr: "decode analysis"},
		{name: "trailing data", content: validContent + ` {"season":"x"}`, wantErr: "trailing data"},
		{name: "stray closing brace", content: validContent + "}", wantErr: "trailing data"},
		{name: "stray closing bracket", content: validContent + "]", wantErr: "trailing data"},
		{name: "doubled closing brace", content: validContent + "}}", wantErr: "trailing data"},
		{name: "fenced with stray brace", content: "```json\n" + validContent + "}\n```", wantErr: "trailing data"},
		{name: "missing season", content: `{"undertone":"Warm","recommendedColors":{"neutrals":[],"accents":[]},"outfits":{}}`, wantErr: "season failed required"},
		{name: "missing palettes", content: `{"season":"Autumn","undertone":"Warm","outfits":{}}`, wantErr: "recommendedColors.neutrals failed required"},
		{name: "missing outfits", content: `{"season":"Autumn","undertone":"Warm","recommendedColors":{"neutrals":[],"accents":[]}}`, wantErr: "outfits failed required"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseAnalysis(v, tt.content)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "Warm Autumn", got.Season)
			require.Equal(t, []string{"#F5F5DC", "#8B4513"}, got.RecommendedColors.Neutrals)
			require.Equal(t, []string{"Camel blazer", "Olive trousers"}, got.Outfits["Work"])
		})
	}
}
