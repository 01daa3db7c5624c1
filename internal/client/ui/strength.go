package ui

import "strings"

var strengthLabels = []string{"Very weak", "Very weak", "Weak", "Fair", "Good", "Strong"}

// StrengthBar draws a five-cell meter for a score in [0,5].
func StrengthBar(st Styles, score int) string {
	if score < 0 {
		score = 0
	}
	if score > 5 {
		score = 5
	}
	style := st.Error
	switch {
	case score >= 5:
		style = st.Success
	case score >= 3:
		style = st.Warning
	}
	bar := strings.Repeat("█", score) + strings.Repeat("░", 5-score)
	return style.Render(bar) + " " + strengthLabels[score]
}
