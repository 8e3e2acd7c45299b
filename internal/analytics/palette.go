package analytics

import "subtrack/internal/core"

// Known categories keep their fixed legend colors; anything else rotates
// through the fallback palette in first-seen order, so a category's color
// is stable within one render pass.
var defaultPalette = map[string]string{
	"Entertainment": "#00d4ff",
	"Shopping":      "#7dd3fc",
	"Productivity":  "#60a5fa",
	"Work":          "#60a5fa",
	"Finance":       "#93c5fd",
	"Education":     "#a5b4fc",
	"Health":        "#f472b6",
	"Other":         "#c4b5fd",
}

var fallbackPalette = []string{
	"#00d4ff", "#7dd3fc", "#60a5fa", "#93c5fd", "#a5b4fc",
	"#c4b5fd", "#f472b6", "#34d399", "#fbbf24", "#fb7185",
}

// AssignColors maps each category (in the order given) to a legend color.
func AssignColors(categories []string) map[string]string {
	colors := make(map[string]string, len(categories))
	next := 0
	for _, cat := range categories {
		if _, done := colors[cat]; done {
			continue
		}
		if c, ok := defaultPalette[core.DisplayCategory(cat)]; ok {
			colors[cat] = c
			continue
		}
		colors[cat] = fallbackPalette[next%len(fallbackPalette)]
		next++
	}
	return colors
}
