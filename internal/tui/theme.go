package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/rosterpick/internal/catalog"
)

// Catppuccin Mocha.
const (
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorDrop    = colorTeal
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	chipKey     = lipgloss.NewStyle().Foreground(colorOverlay0)
	chipValue   = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(colorOverlay0)
	labelStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)
	nameStyle   = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Background(colorMantle)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError).Background(colorMantle)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1)
	cardFocusStyle   = cardStyle.BorderForeground(colorFocus).Border(lipgloss.ThickBorder())
	cardConfirmStyle = cardStyle.BorderForeground(colorSuccess).Border(lipgloss.DoubleBorder())

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1)
	panelActiveStyle = panelStyle.BorderForeground(colorAccent)

	slotStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorSurface1)
	slotDropStyle = slotStyle.BorderForeground(colorDrop)

	selectStyle   = lipgloss.NewStyle().Foreground(colorBlue)
	selectedStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	barFullStyle  = lipgloss.NewStyle().Foreground(colorPeach)
	barEmptyStyle = lipgloss.NewStyle().Foreground(colorSurface1)
)

func rarityColor(r catalog.Rarity) lipgloss.Color {
	switch r {
	case catalog.RarityLegendary:
		return colorYellow
	case catalog.RarityEpic:
		return colorMauve
	case catalog.RarityRare:
		return colorBlue
	default:
		return colorSubtext0
	}
}

func rarityStyle(r catalog.Rarity) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(rarityColor(r))
}
