// Package tui runs the viewer as a bubbletea program. Each key event runs
// one controller transition and each frame is drawn from a fresh view model.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/csheth/pagescout/internal/config"
	"github.com/csheth/pagescout/internal/input"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Theme config.Theme
}

type model struct {
	ctrl     *input.Controller
	layout   pageLayout
	styles   styles
	help     help.Model
	quitting bool
}

// New returns a tea.Model ready to be mounted into a Program.
func New(ctrl *input.Controller, cfg Config) tea.Model {
	m := &model{
		ctrl:   ctrl,
		layout: newPageLayout(),
		styles: newStyles(cfg.Theme),
		help:   help.New(),
	}
	m.help.Styles = m.styles.help
	m.applyLayout()
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.applyLayout()
		log.Debug().
			Int("width", msg.Width).
			Int("height", msg.Height).
			Int("body_width", m.layout.bodyWidth).
			Int("body_height", m.layout.bodyHeight).
			Msg("resize")
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for _, k := range logicalKeys(msg) {
		if res := m.ctrl.Handle(k); res.Quit {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *model) applyLayout() {
	m.ctrl.Resize(m.layout.bodyWidth, m.layout.bodyHeight)
	m.help.Width = m.layout.windowWidth
}
