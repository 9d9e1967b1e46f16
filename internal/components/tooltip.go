package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/brikdesigns/brik/internal/theme"
	"github.com/brikdesigns/brik/internal/tokens"
)

// TooltipPlacement positions the tip relative to its anchor text.
type TooltipPlacement int

const (
	TooltipAbove TooltipPlacement = iota
	TooltipBelow
)

// Tooltip annotates an anchor string with a small floating hint.
type Tooltip struct {
	anchor    string
	tip       string
	placement TooltipPlacement
}

// NewTooltip creates a tooltip above the anchor.
func NewTooltip(anchor, tip string) *Tooltip {
	return &Tooltip{anchor: anchor, tip: tip}
}

// WithPlacement sets where the tip appears.
func (tt *Tooltip) WithPlacement(placement TooltipPlacement) *Tooltip {
	tt.placement = placement
	return tt
}

// View renders the tooltip with the light theme.
func (tt *Tooltip) View() string {
	return tt.ViewWithTheme(theme.Light())
}

// ViewWithTheme renders the tooltip with the given theme.
func (tt *Tooltip) ViewWithTheme(t theme.Theme) string {
	tip := theme.Apply(lipgloss.NewStyle(), t,
		theme.Background(theme.SlotNeutral),
		theme.PaddingX(tokens.SpacingXs),
	).Render(tt.tip)
	anchor := theme.Apply(lipgloss.NewStyle(), t,
		theme.WithFont(theme.FontBody),
	).Underline(true).Render(tt.anchor)

	if tt.placement == TooltipBelow {
		return lipgloss.JoinVertical(lipgloss.Left, anchor, tip)
	}
	return lipgloss.JoinVertical(lipgloss.Left, tip, anchor)
}
