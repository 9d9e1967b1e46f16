package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/brikdesigns/brik/internal/theme"
	"github.com/brikdesigns/brik/internal/tokens"
)

// ButtonSize represents the button size scale.
type ButtonSize int

const (
	ButtonSizeSmall ButtonSize = iota
	ButtonSizeMedium
	ButtonSizeLarge
)

// ButtonOptions defines the configuration options for a button.
type ButtonOptions struct {
	Variant  Variant
	Size     ButtonSize
	Disabled bool
	Focus    bool
}

// Button is a clickable control. Rendering is visual-only; activation is the
// host application's concern.
type Button struct {
	label   string
	options ButtonOptions
}

// NewButton creates a new button with the given label and options.
func NewButton(label string, opts ButtonOptions) *Button {
	return &Button{label: label, options: opts}
}

// SimpleButton creates a medium primary button.
func SimpleButton(label string) *Button {
	return NewButton(label, ButtonOptions{Variant: VariantPrimary, Size: ButtonSizeMedium})
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant Variant) *Button {
	b.options.Variant = variant
	return b
}

// WithSize sets the button size.
func (b *Button) WithSize(size ButtonSize) *Button {
	b.options.Size = size
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.options.Disabled = disabled
	return b
}

// WithFocus sets the focus state.
func (b *Button) WithFocus(focus bool) *Button {
	b.options.Focus = focus
	return b
}

// View renders the button with the light theme.
func (b *Button) View() string {
	return b.ViewWithTheme(theme.Light())
}

// ViewWithTheme renders the button with the given theme.
func (b *Button) ViewWithTheme(t theme.Theme) string {
	style := theme.Apply(lipgloss.NewStyle(), t,
		theme.Background(b.options.Variant.slot()),
		theme.Border(theme.RadiusMd),
		theme.PaddingX(b.paddingSize()),
		theme.WithFont(theme.FontEmphasis),
	)

	if b.options.Disabled {
		style = theme.Apply(style, t, theme.Foreground(theme.SlotNeutral))
		style = style.UnsetBackground().Faint(true).
			BorderForeground(t.Palette.Neutral.Muted)
	} else if b.options.Focus {
		style = style.Border(t.Border(theme.RadiusLg)).
			BorderForeground(t.Palette.Primary.Base)
	}

	return style.Render(b.label)
}

func (b *Button) paddingSize() tokens.SpacingSize {
	switch b.options.Size {
	case ButtonSizeSmall:
		return tokens.SpacingSm
	case ButtonSizeLarge:
		return tokens.SpacingXl
	default:
		return tokens.SpacingMd
	}
}
