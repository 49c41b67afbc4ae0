package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the TUI and SVG output. The last five
// colors paint bars by highlight.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color

	Bar      lipgloss.Color
	Compare  lipgloss.Color
	Swap     lipgloss.Color
	Pivot    lipgloss.Color
	Sorted   lipgloss.Color
	Backdrop lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"),
		Secondary: lipgloss.Color("#00ffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Bar:       lipgloss.Color("#5555ff"),
		Compare:   lipgloss.Color("#ffff00"),
		Swap:      lipgloss.Color("#ff0055"),
		Pivot:     lipgloss.Color("#ff00ff"),
		Sorted:    lipgloss.Color("#00ff88"),
		Backdrop:  lipgloss.Color("#0a0a0a"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#00cc00"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Bar:       lipgloss.Color("#007700"),
		Compare:   lipgloss.Color("#ffff00"),
		Swap:      lipgloss.Color("#ff5500"),
		Pivot:     lipgloss.Color("#ffffff"),
		Sorted:    lipgloss.Color("#88ff88"),
		Backdrop:  lipgloss.Color("#001100"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Bar:       lipgloss.Color("#aaaaaa"),
		Compare:   lipgloss.Color("#0088ff"),
		Swap:      lipgloss.Color("#ff0000"),
		Pivot:     lipgloss.Color("#aa00ff"),
		Sorted:    lipgloss.Color("#00cc00"),
		Backdrop:  lipgloss.Color("#000000"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"),
		Secondary: lipgloss.Color("#00a8cc"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Bar:       lipgloss.Color("#3a6ea5"),
		Compare:   lipgloss.Color("#ffd700"),
		Swap:      lipgloss.Color("#ff4444"),
		Pivot:     lipgloss.Color("#c77dff"),
		Sorted:    lipgloss.Color("#00ff88"),
		Backdrop:  lipgloss.Color("#001a33"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff6b6b"),
		Secondary: lipgloss.Color("#feca57"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Bar:       lipgloss.Color("#a56cc1"),
		Compare:   lipgloss.Color("#feca57"),
		Swap:      lipgloss.Color("#ff4757"),
		Pivot:     lipgloss.Color("#ff9ff3"),
		Sorted:    lipgloss.Color("#5fd068"),
		Backdrop:  lipgloss.Color("#2d1b2e"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, cyberpunk when unknown.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme cycles through Themes.
func NextTheme(current Theme) Theme {
	for i, t := range Themes {
		if t.Name == current.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Color is the bar color for a highlight.
func (t Theme) Color(h Highlight) lipgloss.Color {
	switch h {
	case HighlightPivot:
		return t.Pivot
	case HighlightSwapping:
		return t.Swap
	case HighlightComparing:
		return t.Compare
	case HighlightSorted:
		return t.Sorted
	}
	return t.Bar
}
