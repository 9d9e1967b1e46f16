package explorer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/brikdesigns/brik/internal/motion"
	"github.com/brikdesigns/brik/internal/theme"
	"github.com/brikdesigns/brik/internal/tokens"
)

const maxDrift = 8

// View renders the catalogue, the preview pane and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.list.View(),
		"   ",
		m.preview.View(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(m.keys))
}

// refreshPreview re-renders the preview content from the current theme and
// engine state, recording each story's line geometry for the next scan.
func (m *Model) refreshPreview() {
	if !m.ready {
		return
	}

	t := m.opts.Themes.Current()
	width := m.preview.Width

	var sections []string
	line := 0
	for i, entry := range m.entries {
		section := m.renderSection(entry, t, width)
		height := measureHeight(section)
		m.tops[i] = line
		entry.setGeometry(line, height)
		sections = append(sections, section)
		line += height + 1
	}

	offset := m.preview.YOffset
	m.preview.SetContent(strings.Join(sections, "\n\n"))
	m.preview.SetYOffset(offset)
}

func (m *Model) renderSection(entry *storyEntry, t theme.Theme, width int) string {
	marker := "○"
	if entry.Visible() {
		marker = effectMarker(m.reveal.Effect(entry))
	}
	header := theme.Apply(lipgloss.NewStyle(), t,
		theme.Foreground(theme.SlotPrimary),
		theme.WithFont(theme.FontTitle),
	).Render(marker + " " + entry.story.Name)

	var body string
	if entry.Visible() {
		body = entry.story.Render(t, width)
	} else {
		body = theme.Apply(lipgloss.NewStyle(), t,
			theme.Foreground(theme.SlotNeutral),
		).Faint(true).Render("· · ·")
	}

	drift := int(entry.Offset())
	if drift < 0 {
		drift = 0
	}
	if drift > maxDrift {
		drift = maxDrift
	}
	body = theme.Apply(lipgloss.NewStyle(), t, theme.MarginX(tokens.SpacingSm)).
		PaddingLeft(drift).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

// effectMarker maps a reveal effect to the glyph shown once a section is
// visible.
func effectMarker(effect motion.Effect) string {
	switch effect {
	case motion.EffectFadeUp:
		return "▲"
	case motion.EffectFadeDown:
		return "▼"
	case motion.EffectSlideLeft:
		return "◀"
	case motion.EffectSlideRight:
		return "▶"
	case motion.EffectScaleIn:
		return "◆"
	default:
		return "●"
	}
}
