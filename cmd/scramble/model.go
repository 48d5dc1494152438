package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/portfolio/internal/scramble"
)

var (
	scrambleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF")).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#374151"))

	// completed titles glow
	glowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#60A5FA")).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#A855F7"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

type frameMsg scramble.Frame

// controller is the part of scramble.Controller the view drives.
type controller interface {
	Start()
	Next()
	Prev()
	Stop()
}

type model struct {
	ctrl   controller
	frames <-chan scramble.Frame
	frame  scramble.Frame
	total  int
	status string
	width  int
	height int
}

func newModel(ctrl controller, frames <-chan scramble.Frame, total int) model {
	return model{ctrl: ctrl, frames: frames, total: total}
}

func waitForFrame(frames <-chan scramble.Frame) tea.Cmd {
	return func() tea.Msg {
		return frameMsg(<-frames)
	}
}

func (m model) Init() tea.Cmd {
	m.ctrl.Start()
	return waitForFrame(m.frames)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case frameMsg:
		m.frame = scramble.Frame(msg)
		return m, waitForFrame(m.frames)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.ctrl.Stop()
			return m, tea.Quit
		case "n", "right":
			m.status = ""
			m.ctrl.Next()
		case "p", "left":
			m.status = ""
			m.ctrl.Prev()
		case "y":
			if !m.frame.Complete {
				m.status = "wait for the title to resolve"
				break
			}
			if err := clipboard.WriteAll(m.frame.Text); err != nil {
				m.status = "copy failed: " + err.Error()
				break
			}
			m.status = "copied"
		}
	}
	return m, nil
}

func (m model) View() string {
	style := scrambleStyle
	if m.frame.Complete {
		style = glowStyle
	}

	text := m.frame.Text
	if text == "" {
		text = " "
	}

	info := fmt.Sprintf("%d/%d  %s", m.frame.Index+1, m.total, m.frame.State)
	if m.status != "" {
		info += "  " + m.status
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		style.Render(text),
		helpStyle.Render(info),
		helpStyle.Render("n/→ next  p/← prev  y copy  q quit"),
	)
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
