package explorer

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/brikdesigns/brik/internal/components"
	"github.com/brikdesigns/brik/internal/motion"
	"github.com/brikdesigns/brik/internal/theme"
)

// Story is one catalogue entry: a named scene that renders a component in a
// handful of representative states.
type Story struct {
	Name        string
	Description string
	// Speed is the parallax speed applied to the story's preview section.
	// Zero uses the engine default.
	Speed float64
	// Kind selects the parallax formula for the section.
	Kind motion.Kind
	// Effect is the reveal presentation the section opts into.
	Effect motion.Effect
	Render func(t theme.Theme, width int) string
}

// Stories returns the built-in catalogue, one story per component.
func Stories() []Story {
	return []Story{
		{
			Name:        "Button",
			Description: "variants, sizes, disabled and focus",
			Speed:       0.1,
			Effect:      motion.EffectFadeUp,
			Render: func(t theme.Theme, width int) string {
				row := lipgloss.JoinHorizontal(lipgloss.Top,
					components.SimpleButton("Primary").ViewWithTheme(t),
					" ",
					components.SimpleButton("Danger").WithVariant(components.VariantDanger).ViewWithTheme(t),
					" ",
					components.SimpleButton("Disabled").WithDisabled(true).ViewWithTheme(t),
				)
				focus := components.SimpleButton("Focused").WithFocus(true).ViewWithTheme(t)
				return lipgloss.JoinVertical(lipgloss.Left, row, focus)
			},
		},
		{
			Name:        "Badge",
			Description: "status labels",
			Effect:      motion.EffectFade,
			Render: func(t theme.Theme, width int) string {
				return lipgloss.JoinHorizontal(lipgloss.Top,
					components.SuccessBadge("active").ViewWithTheme(t),
					" ",
					components.DangerBadge("failed").ViewWithTheme(t),
					" ",
					components.InfoBadge("beta").ViewWithTheme(t),
				)
			},
		},
		{
			Name:        "Alert",
			Description: "success and error callouts",
			Speed:       0.2,
			Effect:      motion.EffectSlideLeft,
			Render: func(t theme.Theme, width int) string {
				return lipgloss.JoinVertical(lipgloss.Left,
					components.SuccessAlert("Settings saved.").WithTitle("Done").ViewWithTheme(t),
					components.ErrorAlert("Could not reach the server.").WithTitle("Error").ViewWithTheme(t),
				)
			},
		},
		{
			Name:        "Card",
			Description: "title, description and footer",
			Speed:       0.15,
			Effect:      motion.EffectScaleIn,
			Kind:        motion.KindImage,
			Render: func(t theme.Theme, width int) string {
				return components.NewCard(components.CardData{
					Title:       "Release notes",
					Description: "Everything that changed in the latest version, including the new token vocabulary.",
					Icon:        "✦",
					Footer:      "updated today",
				}).WithWidth(min(width, 44)).ViewWithTheme(t)
			},
		},
		{
			Name:        "Input",
			Description: "default, focus and error states",
			Speed:       0.1,
			Effect:      motion.EffectFadeUp,
			Render: func(t theme.Theme, width int) string {
				return lipgloss.JoinVertical(lipgloss.Left,
					components.NewInput("you@example.com").WithLabel("Email").ViewWithTheme(t),
					components.NewInput("").WithLabel("Name").WithValue("Ada").WithState(components.InputStateFocus).ViewWithTheme(t),
					components.NewInput("required").WithLabel("Token").WithState(components.InputStateError).ViewWithTheme(t),
				)
			},
		},
		{
			Name:        "Modal",
			Description: "confirmation dialog",
			Effect:      motion.EffectScaleIn,
			Render: func(t theme.Theme, width int) string {
				return components.NewModal("Delete this page? This cannot be undone.", components.ModalOptions{}).
					WithTitle("Confirm").
					WithActions("Delete", "Cancel").
					ViewWithTheme(t)
			},
		},
		{
			Name:        "Tooltip",
			Description: "positioned annotation",
			Speed:       0.1,
			Effect:      motion.EffectFadeDown,
			Render: func(t theme.Theme, width int) string {
				return lipgloss.JoinVertical(lipgloss.Left,
					components.NewTooltip("hover me", "appears above").ViewWithTheme(t),
					components.NewTooltip("hover me", "appears below").WithPlacement(components.TooltipBelow).ViewWithTheme(t),
				)
			},
		},
		{
			Name:        "Avatar",
			Description: "glyph with initials fallback",
			Speed:       0.2,
			Effect:      motion.EffectFade,
			Render: func(t theme.Theme, width int) string {
				return lipgloss.JoinHorizontal(lipgloss.Top,
					components.NewAvatar("Ada Lovelace").WithGlyph("").ViewWithTheme(t),
					" ",
					components.NewAvatar("Grace Hopper").ViewWithTheme(t),
					" ",
					components.NewAvatar("").ViewWithTheme(t),
				)
			},
		},
		{
			Name:        "Pagination",
			Description: "sibling window and ellipses",
			Speed:       0.15,
			Effect:      motion.EffectSlideRight,
			Render: func(t theme.Theme, width int) string {
				return lipgloss.JoinVertical(lipgloss.Left,
					components.NewPagination(components.PaginationOptions{Current: 1, Total: 10, Siblings: 1}).ViewWithTheme(t),
					components.NewPagination(components.PaginationOptions{Current: 44, Total: 80, Siblings: 1}).ViewWithTheme(t),
				)
			},
		},
	}
}

// storyItem adapts a Story to the bubbles list.
type storyItem struct {
	story Story
}

func (i storyItem) Title() string       { return i.story.Name }
func (i storyItem) Description() string { return i.story.Description }
func (i storyItem) FilterValue() string { return i.story.Name }

// storyEntry is the runtime state of one preview section. It is both a reveal
// target (visible marker) and a parallax target (horizontal drift), with line
// geometry measured from the last rendered preview.
type storyEntry struct {
	story Story

	mu      sync.Mutex
	visible bool
	offset  float64
	top     float64
	height  float64
}

func (e *storyEntry) SetVisible() {
	e.mu.Lock()
	e.visible = true
	e.mu.Unlock()
}

func (e *storyEntry) Visible() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visible
}

func (e *storyEntry) SetOffset(offset float64) {
	e.mu.Lock()
	e.offset = offset
	e.mu.Unlock()
}

func (e *storyEntry) Offset() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.offset
}

func (e *storyEntry) Top() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.top
}

func (e *storyEntry) Height() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.height
}

func (e *storyEntry) setGeometry(top, height int) {
	e.mu.Lock()
	e.top = float64(top)
	e.height = float64(height)
	e.mu.Unlock()
}

func (e *storyEntry) reset() {
	e.mu.Lock()
	e.visible = false
	e.offset = 0
	e.mu.Unlock()
}

func measureHeight(s string) int {
	return strings.Count(s, "\n") + 1
}
