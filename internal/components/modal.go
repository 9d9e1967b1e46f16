package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/brikdesigns/brik/internal/theme"
	"github.com/brikdesigns/brik/internal/tokens"
)

// ModalOptions defines the configuration options for a modal dialog.
type ModalOptions struct {
	Title   string
	Actions []string
	Width   int
}

// Modal is a dialog rendering: title bar, body, action row. The host decides
// placement and which action is active.
type Modal struct {
	body    string
	options ModalOptions
}

// NewModal creates a modal with the given body and options.
func NewModal(body string, opts ModalOptions) *Modal {
	if opts.Width <= 0 {
		opts.Width = 52
	}
	return &Modal{body: body, options: opts}
}

// WithTitle sets the modal title.
func (m *Modal) WithTitle(title string) *Modal {
	m.options.Title = title
	return m
}

// WithActions sets the action labels rendered at the bottom.
func (m *Modal) WithActions(actions ...string) *Modal {
	m.options.Actions = actions
	return m
}

// View renders the modal with the light theme.
func (m *Modal) View() string {
	return m.ViewWithTheme(theme.Light())
}

// ViewWithTheme renders the modal with the given theme.
func (m *Modal) ViewWithTheme(t theme.Theme) string {
	var content []string

	if m.options.Title != "" {
		title := theme.Apply(lipgloss.NewStyle(), t, theme.WithFont(theme.FontTitle))
		content = append(content, title.Render(m.options.Title), "")
	}
	content = append(content, m.body)

	if len(m.options.Actions) > 0 {
		buttons := make([]string, 0, len(m.options.Actions))
		for idx, action := range m.options.Actions {
			variant := VariantNeutral
			if idx == 0 {
				variant = VariantPrimary
			}
			buttons = append(buttons, NewButton(action, ButtonOptions{Variant: variant, Size: ButtonSizeSmall}).ViewWithTheme(t))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(buttons, " "))
		content = append(content, "", lipgloss.PlaceHorizontal(m.options.Width-4, lipgloss.Right, row))
	}

	frame := theme.Apply(lipgloss.NewStyle(), t,
		theme.Background(theme.SlotSurface),
		theme.Border(theme.RadiusFull),
		theme.PaddingX(tokens.SpacingMd),
		theme.PaddingY(tokens.SpacingXs),
	).Width(m.options.Width).BorderForeground(t.Palette.Primary.Base)

	return frame.Render(strings.Join(content, "\n"))
}
