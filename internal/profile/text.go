package profile

import (
	"fmt"
	"strings"
)

// textIndent prefixes every line after the first. The embedding vectors
// already stored downstream were computed from this exact layout.
const textIndent = "    "

// Text renders the human-readable fields of p as the text block handed to
// the embedding service. The output is byte-for-byte reproducible.
func Text(p *Profile) string {
	prefs := p.Preferences

	lines := []string{
		"Name: " + p.Name,
		fmt.Sprintf("Age: %d", p.Age),
		"Bio: " + p.Bio,
		fmt.Sprintf("Location: %s, %s", p.Location.City, p.Location.Neighborhood),
		fmt.Sprintf("Budget: $%d - $%d", prefs.Budget.Min, prefs.Budget.Max),
		"Move-in: " + prefs.MoveInDate.String(),
		"Duration: " + string(prefs.Duration),
		"Lifestyle: " + prefs.Lifestyle.String(),
		"Habits: " + prefs.Habits.String(),
		"Interests: " + prefs.Interests.String(),
	}

	return strings.TrimSpace(strings.Join(lines, "\n"+textIndent))
}
