package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/brikdesigns/brik/internal/theme"
	"github.com/brikdesigns/brik/internal/tokens"
)

// Badge is a small inline status indicator.
type Badge struct {
	text    string
	variant Variant
}

// NewBadge creates a neutral badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{text: text, variant: VariantNeutral}
}

// SuccessBadge creates a success badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithVariant(VariantSuccess)
}

// DangerBadge creates a danger badge.
func DangerBadge(text string) *Badge {
	return NewBadge(text).WithVariant(VariantDanger)
}

// InfoBadge creates an info badge.
func InfoBadge(text string) *Badge {
	return NewBadge(text).WithVariant(VariantInfo)
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant Variant) *Badge {
	b.variant = variant
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// View renders the badge with the light theme.
func (b *Badge) View() string {
	return b.ViewWithTheme(theme.Light())
}

// ViewWithTheme renders the badge with the given theme.
func (b *Badge) ViewWithTheme(t theme.Theme) string {
	style := theme.Apply(lipgloss.NewStyle(), t,
		theme.Background(b.variant.slot()),
		theme.PaddingX(tokens.SpacingXs),
		theme.WithFont(theme.FontEmphasis),
	)
	return style.Render(b.text)
}
