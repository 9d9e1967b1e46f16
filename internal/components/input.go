package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/brikdesigns/brik/internal/theme"
	"github.com/brikdesigns/brik/internal/tokens"
)

// InputState represents the visual state of an input control.
type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
	InputStateError
)

// Input is a single-line text field rendering. Editing behaviour lives with
// the host; this component only draws value, placeholder and state.
type Input struct {
	value       string
	placeholder string
	label       string
	state       InputState
	width       int
}

// NewInput creates an empty input with the given placeholder.
func NewInput(placeholder string) *Input {
	return &Input{placeholder: placeholder, width: 32}
}

// WithValue sets the input value.
func (i *Input) WithValue(value string) *Input {
	i.value = value
	return i
}

// WithLabel sets the label rendered above the field.
func (i *Input) WithLabel(label string) *Input {
	i.label = label
	return i
}

// WithState sets the visual state.
func (i *Input) WithState(state InputState) *Input {
	i.state = state
	return i
}

// WithWidth sets the field width.
func (i *Input) WithWidth(width int) *Input {
	i.width = width
	return i
}

// View renders the input with the light theme.
func (i *Input) View() string {
	return i.ViewWithTheme(theme.Light())
}

// ViewWithTheme renders the input with the given theme.
func (i *Input) ViewWithTheme(t theme.Theme) string {
	text := i.value
	textStyle := theme.Apply(lipgloss.NewStyle(), t, theme.WithFont(theme.FontBody))
	if text == "" {
		text = i.placeholder
		textStyle = lipgloss.NewStyle().Foreground(t.Palette.Neutral.Muted).Faint(true)
	}

	field := theme.Apply(lipgloss.NewStyle(), t,
		theme.Border(theme.RadiusMd),
		theme.PaddingX(tokens.SpacingXs),
	).Width(i.width)

	switch i.state {
	case InputStateFocus:
		field = field.Border(t.Border(theme.RadiusLg)).BorderForeground(t.Palette.Primary.Base)
	case InputStateError:
		field = field.BorderForeground(t.Palette.Danger.Base)
	default:
		field = field.BorderForeground(t.Palette.Neutral.Muted)
	}

	var parts []string
	if i.label != "" {
		parts = append(parts, theme.Apply(lipgloss.NewStyle(), t, theme.WithFont(theme.FontEmphasis)).Render(i.label))
	}
	parts = append(parts, field.Render(textStyle.Render(text)))
	return strings.Join(parts, "\n")
}
