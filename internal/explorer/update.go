package explorer

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.refreshPreview()
		return m, nil

	case frameMsg:
		if m.quitting {
			return m, nil
		}
		m.pulse()
		return m, m.frameTick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.Destroy()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Theme):
			m.opts.Themes.Cycle()
			m.refreshPreview()
			return m, nil

		case key.Matches(msg, m.keys.Replay):
			m.replay()
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.layout()
			m.refreshPreview()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			m.scrollToSelected()
			return m, cmd

		case key.Matches(msg, m.keys.Scroll):
			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(msg)
			return m, cmd
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	m.preview, cmd = m.preview.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// pulse advances one animation frame: feed the scroll position to the
// parallax engine, step it, and rescan for reveal crossings.
func (m *Model) pulse() {
	if !m.ready {
		return
	}
	m.parallax.SetScroll(float64(m.preview.YOffset))
	m.parallax.Step()
	if m.scanner != nil {
		m.scanner.Scan(float64(m.preview.YOffset), float64(m.preview.Height))
	}
	m.refreshPreview()
}

// replay hides every story and restarts both engines so the reveal sequence
// plays again from the current scroll position.
func (m *Model) replay() {
	m.reveal.Destroy()
	m.parallax.Destroy()
	m.scanner = nil
	for _, entry := range m.entries {
		entry.reset()
	}
	m.startEngines()
	m.refreshPreview()
	m.log.Debug("reveal replayed")
}

func (m *Model) layout() {
	listWidth := 30
	if m.width < 64 {
		listWidth = m.width / 2
	}
	helpHeight := 1
	if m.help.ShowAll {
		helpHeight = 3
	}
	contentHeight := m.height - helpHeight - 1
	if contentHeight < 1 {
		contentHeight = 1
	}

	m.list.SetSize(listWidth, contentHeight)

	previewWidth := m.width - listWidth - 3
	if previewWidth < 10 {
		previewWidth = 10
	}
	if !m.ready {
		m.preview = viewport.New(previewWidth, contentHeight)
		m.parallax.SetViewportHeight(float64(contentHeight))
		m.ready = true
		return
	}
	m.preview.Width = previewWidth
	m.preview.Height = contentHeight
	m.parallax.SetViewportHeight(float64(contentHeight))
}

// scrollToSelected jumps the preview to the top line of the story under the
// catalogue cursor.
func (m *Model) scrollToSelected() {
	if !m.ready {
		return
	}
	index := m.list.Index()
	if index < 0 || index >= len(m.tops) {
		return
	}
	m.preview.SetYOffset(m.tops[index])
}
