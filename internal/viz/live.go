package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paperlab/rollsim/internal/dynamo"
)

const (
	liveGraphHeight = 12
	liveGraphWidth  = 70
	historyCapacity = 600
	frameRate       = 30
)

type TickMsg time.Time

// LiveModel steps a system in real time and renders the state alongside a
// scrolling graph of one chosen component.
type LiveModel struct {
	scenario   string
	sys        dynamo.System
	integrator dynamo.Integrator
	duration   float64

	state   dynamo.State
	initial dynamo.State
	t       float64
	dt      float64
	speed   float64

	history [][]float64 // per component, capped at historyCapacity
	focus   int
	paused  bool
	done    bool
}

func NewLiveModel(scenarioName string, sys dynamo.System, integ dynamo.Integrator, x0 dynamo.State, dt, duration float64) LiveModel {
	history := make([][]float64, sys.StateDim())
	for i := range history {
		history[i] = make([]float64, 0, historyCapacity)
	}
	return LiveModel{
		scenario:   scenarioName,
		sys:        sys,
		integrator: integ,
		duration:   duration,
		state:      x0.Clone(),
		initial:    x0.Clone(),
		dt:         dt,
		speed:      1.0,
		history:    history,
		focus:      minInt(1, sys.StateDim()-1),
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m LiveModel) Init() tea.Cmd { return tick() }

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "tab":
			m.focus = (m.focus + 1) % m.sys.StateDim()
		case "+", "=":
			m.speed *= 2
		case "-":
			m.speed /= 2
		case "r":
			m.state = m.initial.Clone()
			m.t = 0
			m.done = false
			for i := range m.history {
				m.history[i] = m.history[i][:0]
			}
		}
		return m, nil

	case TickMsg:
		if !m.paused && !m.done {
			m.advance(m.speed / frameRate)
		}
		return m, tick()
	}
	return m, nil
}

func (m *LiveModel) advance(span float64) {
	remaining := m.duration - m.t
	if span > remaining {
		span = remaining
	}
	steps := int(span/m.dt) + 1
	dt := span / float64(steps)
	for i := 0; i < steps; i++ {
		m.state = m.integrator.Step(m.sys, m.state, m.t, dt)
		m.t += dt
	}
	for i := range m.history {
		if len(m.history[i]) == historyCapacity {
			m.history[i] = m.history[i][1:]
		}
		m.history[i] = append(m.history[i], m.state[i])
	}
	if m.t >= m.duration-1e-9 {
		m.done = true
	}
}

func (m LiveModel) View() string {
	labels := m.sys.Labels()

	var stats strings.Builder
	stats.WriteString(labelStyle.Render("t") + valueStyle.Render(fmt.Sprintf("%8.3f s", m.t)) + "\n")
	for i, l := range labels {
		line := labelStyle.Render(l) + valueStyle.Render(fmt.Sprintf("%12.6f", m.state[i]))
		if i == m.focus {
			line += valueStyle.Render("  ◀")
		}
		stats.WriteString(line + "\n")
	}

	status := ""
	switch {
	case m.done:
		status = frozenStyle.Render("  [complete]")
	case m.paused:
		status = frozenStyle.Render("  [paused]")
	}

	graph := Sparkline(m.history[m.focus], liveGraphHeight, liveGraphWidth,
		fmt.Sprintf("%s (speed %gx)", labels[m.focus], m.speed))

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(fmt.Sprintf("rollsim live: %s", m.scenario))+status,
		statsStyle.Render(stats.String()),
		graphStyle.Render(graph),
		helpStyle.Render("space pause · tab series · +/- speed · r reset · q quit"),
	)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
