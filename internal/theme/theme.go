// Package theme holds the dark/light palettes and the ambient provider
// views read the current mode from.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Provider is the ambient, read-only theme context the Home view
// renders against.
type Provider interface {
	IsDarkTheme() bool
}

// Appearance is the Provider owned by the window chrome. Only the
// chrome toggles it; views just read it.
type Appearance struct {
	dark bool
}

// NewAppearance returns an appearance starting in the given mode.
func NewAppearance(dark bool) *Appearance {
	return &Appearance{dark: dark}
}

// IsDarkTheme implements Provider.
func (a *Appearance) IsDarkTheme() bool { return a != nil && a.dark }

// Toggle flips the mode and returns the new value.
func (a *Appearance) Toggle() bool {
	a.dark = !a.dark
	return a.dark
}

// Theme defines the colors used for rendering.
type Theme struct {
	Background string
	Foreground string
	Muted      string
	Accent     string
	Danger     string
	Divider    string
	BannerBg   string
	BannerFg   string
	Selected   string
}

func Dark() Theme {
	return Theme{
		Background: "#181818",
		Foreground: "#f9f9f9",
		Muted:      "#94a3b8",
		Accent:     "#3b82f6",
		Danger:     "#ff0b37",
		Divider:    "#475569",
		BannerBg:   "#f1f5f9",
		BannerFg:   "#1e293b",
		Selected:   "#313131",
	}
}

func Light() Theme {
	return Theme{
		Background: "#f9f9f9",
		Foreground: "#1e293b",
		Muted:      "#64748b",
		Accent:     "#0b69ff",
		Danger:     "#ff0b37",
		Divider:    "#cbd5e1",
		BannerBg:   "#f1f5f9",
		BannerFg:   "#1e293b",
		Selected:   "#e2e8f0",
	}
}

// For returns the palette for the provider's current mode.
func For(p Provider) Theme {
	if p != nil && p.IsDarkTheme() {
		return Dark()
	}
	return Light()
}

func (t Theme) Base() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Foreground)).
		Background(lipgloss.Color(t.Background))
}

func (t Theme) MutedText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)).Render(s)
}

func (t Theme) AccentText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true).Render(s)
}

func (t Theme) DividerText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Divider)).Render(s)
}

func (t Theme) Heading(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Foreground)).Bold(true).Render(s)
}

func (t Theme) Button(s string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(t.Accent)).
		Padding(0, 2).
		Render(s)
}

func (t Theme) Banner() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.BannerFg)).
		Background(lipgloss.Color(t.BannerBg)).
		Padding(0, 1)
}

func (t Theme) SelectedLine(s string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(t.Selected)).Render(s)
}
