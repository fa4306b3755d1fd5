package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the chrome token set: text, borders, surfaces and accents.
type Theme struct {
	Name string
	Icon string

	Base     lipgloss.Color
	Surface0 lipgloss.Color
	Surface1 lipgloss.Color

	Text    lipgloss.Color
	Subtext lipgloss.Color
	Dim     lipgloss.Color

	Accent   lipgloss.Color
	Lavender lipgloss.Color
	Green    lipgloss.Color
	Yellow   lipgloss.Color
	Red      lipgloss.Color
}

const defaultThemeName = "Catppuccin Mocha"

var (
	themeMu        sync.RWMutex
	themes         []Theme
	activeThemeIdx int
)

func init() {
	themes = builtinThemes()
	activeThemeIdx = defaultThemeIndex(themes)
	applyTheme(themes[activeThemeIdx])
}

func builtinThemes() []Theme {
	return []Theme{
		{
			Name: "Catppuccin Mocha", Icon: "🐱",
			Base: "#1E1E2E", Surface0: "#313244", Surface1: "#45475A",
			Text: "#CDD6F4", Subtext: "#A6ADC8", Dim: "#585B70",
			Accent: "#CBA6F7", Lavender: "#B4BEFE",
			Green: "#A6E3A1", Yellow: "#F9E2AF", Red: "#F38BA8",
		},
		{
			Name: "Gruvbox", Icon: "🌻",
			Base: "#282828", Surface0: "#3C3836", Surface1: "#504945",
			Text: "#EBDBB2", Subtext: "#D5C4A1", Dim: "#665C54",
			Accent: "#D3869B", Lavender: "#D3869B",
			Green: "#B8BB26", Yellow: "#FABD2F", Red: "#FB4934",
		},
		{
			Name: "Nord", Icon: "❄",
			Base: "#2E3440", Surface0: "#3B4252", Surface1: "#434C5E",
			Text: "#ECEFF4", Subtext: "#D8DEE9", Dim: "#4C566A",
			Accent: "#88C0D0", Lavender: "#81A1C1",
			Green: "#A3BE8C", Yellow: "#EBCB8B", Red: "#BF616A",
		},
		{
			Name: "Tokyo Night", Icon: "🌃",
			Base: "#1A1B26", Surface0: "#24283B", Surface1: "#414868",
			Text: "#C0CAF5", Subtext: "#A9B1D6", Dim: "#565F89",
			Accent: "#BB9AF7", Lavender: "#7AA2F7",
			Green: "#9ECE6A", Yellow: "#E0AF68", Red: "#F7768E",
		},
	}
}

func defaultThemeIndex(all []Theme) int {
	for i, t := range all {
		if strings.EqualFold(t.Name, defaultThemeName) {
			return i
		}
	}
	return 0
}

func AvailableThemes() []Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()

	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

func ActiveTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	if activeThemeIdx < 0 || activeThemeIdx >= len(themes) {
		return themes[0]
	}
	return themes[activeThemeIdx]
}

// CycleTheme activates the next theme and returns its name.
func CycleTheme() string {
	themeMu.Lock()
	defer themeMu.Unlock()

	activeThemeIdx = (activeThemeIdx + 1) % len(themes)
	applyTheme(themes[activeThemeIdx])
	return themes[activeThemeIdx].Name
}

func ThemeName() string {
	t := ActiveTheme()
	if strings.TrimSpace(t.Icon) == "" {
		return t.Name
	}
	return t.Icon + " " + t.Name
}

// SetThemeByName activates a theme by exact or case-insensitive name.
func SetThemeByName(name string) bool {
	themeMu.Lock()
	defer themeMu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for i, t := range themes {
		if strings.EqualFold(t.Name, name) {
			activeThemeIdx = i
			applyTheme(t)
			return true
		}
	}
	return false
}
