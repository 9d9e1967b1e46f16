package explorer

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brikdesigns/brik/internal/logger"
	"github.com/brikdesigns/brik/internal/motion"
	"github.com/brikdesigns/brik/internal/theme"
)

// frameMsg is the explorer's frame pulse. Each one advances the parallax
// engine and rescans the preview for reveal crossings.
type frameMsg time.Time

// Options configures the explorer program.
type Options struct {
	Themes *theme.Manager
	// ReducedMotion disables both engines and shows everything immediately.
	ReducedMotion bool
	// FrameRate is frames per second for the animation pulse; zero selects 60.
	FrameRate int
	// ParallaxSpeed overrides the default drift speed for stories that do not
	// set their own. Empty or malformed values keep the engine default.
	ParallaxSpeed string
	Logger        *logger.Logger
}

// Model is the component-explorer Bubbletea model: a story catalogue on the
// left and a scrolling preview on the right, animated by the reveal and
// parallax engines.
type Model struct {
	opts    Options
	keys    keyMap
	help    help.Model
	list    list.Model
	preview viewport.Model

	stories []Story
	entries []*storyEntry
	// tops[i] is entry i's first line in the preview content.
	tops []int

	reveal   *motion.Reveal
	parallax *motion.Parallax
	scanner  *lineViewport

	width    int
	height   int
	ready    bool
	quitting bool

	log *logger.Logger
}

// NewModel builds an explorer over the built-in story catalogue.
func NewModel(opts Options) Model {
	if opts.Themes == nil {
		opts.Themes = theme.NewManager(theme.Light(), nil, opts.Logger)
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = 60
	}

	stories := Stories()
	items := make([]list.Item, len(stories))
	entries := make([]*storyEntry, len(stories))
	for i, story := range stories {
		items[i] = storyItem{story: story}
		entries[i] = &storyEntry{story: story}
	}

	delegate := list.NewDefaultDelegate()
	catalogue := list.New(items, delegate, 0, 0)
	catalogue.Title = "Brik components"
	catalogue.SetShowHelp(false)
	catalogue.SetFilteringEnabled(false)
	catalogue.SetShowStatusBar(false)

	m := Model{
		opts:    opts,
		keys:    defaultKeyMap(),
		help:    help.New(),
		list:    catalogue,
		stories: stories,
		entries: entries,
		tops:    make([]int, len(stories)),
		log:     opts.Logger.WithComponent("explorer"),
	}
	m.startEngines()

	return m
}

// startEngines wires fresh reveal and parallax engines and registers every
// story entry with both.
func (m *Model) startEngines() {
	pref := motion.StaticPreference(m.opts.ReducedMotion)

	m.reveal = motion.NewReveal(motion.RevealOptions{
		NewViewport: func(cfg motion.ObserverConfig, onCross func(motion.RevealTarget)) motion.Viewport {
			m.scanner = newLineViewport(cfg, onCross)
			return m.scanner
		},
		Preference: pref,
		Logger:     m.opts.Logger,
	})
	cfg := motion.DefaultParallaxConfig()
	cfg.DefaultSpeed = motion.ParseSpeed(m.opts.ParallaxSpeed, cfg.DefaultSpeed)
	m.parallax = motion.NewParallax(motion.ParallaxOptions{
		Config:     cfg,
		Preference: pref,
		Logger:     m.opts.Logger,
	})

	for _, entry := range m.entries {
		m.reveal.Register(entry, entry.story.Effect)
		m.parallax.Register(entry, motion.TargetConfig{Speed: entry.story.Speed, Kind: entry.story.Kind})
	}
	m.reveal.Init()
}

// Init starts the frame pulse.
func (m Model) Init() tea.Cmd {
	return m.frameTick()
}

func (m Model) frameTick() tea.Cmd {
	interval := time.Second / time.Duration(m.opts.FrameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// SelectedStory returns the story under the catalogue cursor.
func (m Model) SelectedStory() (Story, bool) {
	item, ok := m.list.SelectedItem().(storyItem)
	if !ok {
		return Story{}, false
	}
	return item.story, true
}

// RevealedCount returns how many stories have been marked visible.
func (m Model) RevealedCount() int {
	count := 0
	for _, entry := range m.entries {
		if entry.Visible() {
			count++
		}
	}
	return count
}

// Destroy tears down both engines. Called once the program exits.
func (m Model) Destroy() {
	m.reveal.Destroy()
	m.parallax.Destroy()
}
