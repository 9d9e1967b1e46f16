package components

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/brikdesigns/brik/internal/theme"
	"github.com/brikdesigns/brik/internal/tokens"
)

// Avatar shows a user glyph. When no glyph is available (the image-load-error
// case in a browser) it falls back to the initials derived from the name.
type Avatar struct {
	name    string
	glyph   string
	variant Variant
}

// NewAvatar creates an avatar for the given display name.
func NewAvatar(name string) *Avatar {
	return &Avatar{name: name, variant: VariantPrimary}
}

// WithGlyph sets the glyph shown instead of initials. An empty glyph keeps
// the initials fallback.
func (a *Avatar) WithGlyph(glyph string) *Avatar {
	a.glyph = glyph
	return a
}

// WithVariant sets the avatar background variant.
func (a *Avatar) WithVariant(variant Variant) *Avatar {
	a.variant = variant
	return a
}

// Initials derives up to two uppercase initials from the name. An empty name
// produces "?".
func (a *Avatar) Initials() string {
	fields := strings.Fields(a.name)
	if len(fields) == 0 {
		return "?"
	}

	var initials []rune
	for _, field := range fields {
		for _, r := range field {
			initials = append(initials, unicode.ToUpper(r))
			break
		}
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

// View renders the avatar with the light theme.
func (a *Avatar) View() string {
	return a.ViewWithTheme(theme.Light())
}

// ViewWithTheme renders the avatar with the given theme.
func (a *Avatar) ViewWithTheme(t theme.Theme) string {
	content := a.glyph
	if content == "" {
		content = a.Initials()
	}
	style := theme.Apply(lipgloss.NewStyle(), t,
		theme.Background(a.variant.slot()),
		theme.Border(theme.RadiusFull),
		theme.PaddingX(tokens.SpacingXs),
		theme.WithFont(theme.FontEmphasis),
	)
	return style.Render(content)
}
