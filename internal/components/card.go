package components

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/brikdesigns/brik/internal/theme"
	"github.com/brikdesigns/brik/internal/tokens"
)

// CardData represents the content of a card.
type CardData struct {
	Title       string
	Description string
	Icon        string
	Footer      string
}

// Card is a bordered container for grouped content.
type Card struct {
	data  CardData
	width int
}

// NewCard creates a card with the given data and the default width.
func NewCard(data CardData) *Card {
	return &Card{data: data, width: 48}
}

// WithWidth sets the card width in character cells.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// View renders the card with the light theme.
func (c *Card) View() string {
	return c.ViewWithTheme(theme.Light())
}

// ViewWithTheme renders the card with the given theme.
func (c *Card) ViewWithTheme(t theme.Theme) string {
	var content []string

	if c.data.Title != "" {
		header := ""
		if c.data.Icon != "" {
			header = c.data.Icon + " "
		}
		header += theme.Apply(lipgloss.NewStyle(), t, theme.WithFont(theme.FontTitle)).Render(c.data.Title)
		content = append(content, header)
	}
	if c.data.Description != "" {
		body := theme.Apply(lipgloss.NewStyle(), t, theme.WithFont(theme.FontBody))
		content = append(content, body.Render(c.wrap(c.data.Description)))
	}
	if c.data.Footer != "" {
		caption := theme.Apply(lipgloss.NewStyle(), t, theme.WithFont(theme.FontCaption))
		content = append(content, "", caption.Render(c.data.Footer))
	}

	frame := theme.Apply(lipgloss.NewStyle(), t,
		theme.Background(theme.SlotSurface),
		theme.Border(theme.RadiusMd),
		theme.PaddingX(tokens.SpacingMd),
	).Width(c.width)
	return frame.Render(strings.Join(content, "\n"))
}

// wrap fits the description into the card's inner width, breaking words
// longer than a full line.
func (c *Card) wrap(text string) string {
	maxWidth := c.width - 4
	if maxWidth <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	current := ""
	for _, word := range words {
		if utf8.RuneCountInString(word) > maxWidth {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			runes := []rune(word)
			for len(runes) > maxWidth {
				lines = append(lines, string(runes[:maxWidth]))
				runes = runes[maxWidth:]
			}
			current = string(runes)
			continue
		}

		candidate := current
		if candidate != "" {
			candidate += " "
		}
		candidate += word
		if utf8.RuneCountInString(candidate) <= maxWidth {
			current = candidate
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return strings.Join(lines, "\n")
}
