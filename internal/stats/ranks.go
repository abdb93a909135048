package stats

import "fmt"

// Ranked tier codes as reported by the upstream API.
var rankLabels = map[int]string{
	211: "Gold I",
	212: "Gold II",
	213: "Gold III",
	214: "Platinum I",
	215: "Platinum II",
	216: "Platinum III",
	217: "Diamond I",
	218: "Diamond II",
	219: "Diamond III",
	220: "Grandmaster",
}

// RankLabel translates a rank code to its tier name. Unknown codes keep the
// numeric code visible; an absent code reads as "Rank Unknown".
func RankLabel(code *int) string {
	if code == nil {
		return "Rank Unknown"
	}
	if label, ok := rankLabels[*code]; ok {
		return label
	}
	return fmt.Sprintf("Rank %d", *code)
}
