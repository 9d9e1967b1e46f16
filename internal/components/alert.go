package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/brikdesigns/brik/internal/theme"
	"github.com/brikdesigns/brik/internal/tokens"
)

// AlertOptions defines the configuration options for an alert.
type AlertOptions struct {
	Variant     Variant
	Title       string
	Dismissible bool
}

// Alert is a message banner.
type Alert struct {
	message string
	options AlertOptions
}

// NewAlert creates a new alert with the given message and options.
func NewAlert(message string, opts AlertOptions) *Alert {
	return &Alert{message: message, options: opts}
}

// SuccessAlert creates a dismissible success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: VariantSuccess, Title: "Success", Dismissible: true})
}

// ErrorAlert creates a dismissible danger alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: VariantDanger, Title: "Error", Dismissible: true})
}

// WithTitle sets the alert title.
func (a *Alert) WithTitle(title string) *Alert {
	a.options.Title = title
	return a
}

// WithVariant sets the alert variant.
func (a *Alert) WithVariant(variant Variant) *Alert {
	a.options.Variant = variant
	return a
}

// View renders the alert with the light theme.
func (a *Alert) View() string {
	return a.ViewWithTheme(theme.Light())
}

// ViewWithTheme renders the alert with the given theme.
func (a *Alert) ViewWithTheme(t theme.Theme) string {
	var content []string
	if a.options.Title != "" {
		title := theme.Apply(lipgloss.NewStyle(), t, theme.WithFont(theme.FontEmphasis))
		content = append(content, title.Render(a.options.Title))
	}
	if a.message != "" {
		content = append(content, a.message)
	}
	if a.options.Dismissible {
		content = append(content, theme.Apply(lipgloss.NewStyle(), t,
			theme.WithFont(theme.FontEmphasis),
		).Render("[×]"))
	}

	style := theme.Apply(lipgloss.NewStyle(), t,
		theme.Background(a.options.Variant.slot()),
		theme.Border(theme.RadiusSm),
		theme.PaddingX(tokens.SpacingSm),
	)
	return style.Render(strings.Join(content, "\n"))
}
