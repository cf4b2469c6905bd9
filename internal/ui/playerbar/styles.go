package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/imusic/internal/ui/styles"
)

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	loopSymbol  = "⟲"
)

func barStyle() lipgloss.Style {
	return styles.T().S().Panel
}

func titleStyle() lipgloss.Style {
	return styles.T().S().Title
}

func artistStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func progressBarFilled() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Primary)
}

func progressBarEmpty() lipgloss.Style {
	return styles.T().S().Subtle
}

func loopStyle(on bool) lipgloss.Style {
	if on {
		return lipgloss.NewStyle().Foreground(styles.T().Primary)
	}
	return styles.T().S().Subtle
}
