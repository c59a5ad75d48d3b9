package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/heatsim/internal/heat"
)

const (
	canvasCols      = 60
	canvasRows      = 16
	historyCapacity = 600
	maxStepsPerTick = 4096
)

type TickMsg time.Time

// Live is a bubbletea model that steps a simulation towards MaxTime and
// draws the evolving profile.
type Live struct {
	sim          *heat.Simulation
	maxTime      float64
	initial      []float64
	stepsPerTick int
	running      bool
	done         bool
	midHistory   []float64
	title        string
}

// NewLive prepares a live view. The current solution of sim is used as the
// initial condition for resets.
func NewLive(sim *heat.Simulation, maxTime float64, title string) *Live {
	stepsPerTick := 1
	if sim.Dt() > 0 {
		// aim for roughly five seconds of wall time at 60 frames per second
		stepsPerTick = int(maxTime / sim.Dt() / 300)
	}
	return &Live{
		sim:          sim,
		maxTime:      maxTime,
		initial:      sim.Solution(),
		stepsPerTick: clampSteps(stepsPerTick),
		running:      true,
		midHistory:   make([]float64, 0, historyCapacity),
		title:        title,
	}
}

func clampSteps(n int) int {
	if n < 1 {
		return 1
	}
	if n > maxStepsPerTick {
		return maxStepsPerTick
	}
	return n
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m *Live) Init() tea.Cmd {
	return tick()
}

func (m *Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "+", "=":
			m.stepsPerTick = clampSteps(m.stepsPerTick * 2)
		case "-":
			m.stepsPerTick = clampSteps(m.stepsPerTick / 2)
		}
	case TickMsg:
		if m.running && !m.done {
			m.Advance(m.stepsPerTick)
		}
		return m, tick()
	}
	return m, nil
}

// Advance takes up to n steps, stopping once the time passes MaxTime.
func (m *Live) Advance(n int) {
	for i := 0; i < n && !m.done; i++ {
		m.sim.Step()
		m.done = m.sim.Time() > m.maxTime
	}
	m.midHistory = append(m.midHistory, m.sim.Midpoint())
	if len(m.midHistory) > historyCapacity {
		m.midHistory = m.midHistory[1:]
	}
}

// Done reports whether the end time has been passed.
func (m *Live) Done() bool { return m.done }

func (m *Live) reset() {
	m.sim.Reset()
	_ = m.sim.SetSolution(m.initial)
	m.midHistory = m.midHistory[:0]
	m.done = false
	m.running = true
}

func (m *Live) status() string {
	switch {
	case m.done:
		return statusDone.Render("DONE")
	case m.running:
		return statusRunning.Render("RUNNING")
	}
	return statusPaused.Render("PAUSED")
}

func (m *Live) View() string {
	canvas := ProfileCanvas(m.sim.Grid(), m.sim.Solution(), canvasCols, canvasRows)

	var s strings.Builder
	s.WriteString(Title(strings.ToUpper(m.title)) + "\n")
	s.WriteString(m.status() + "\n\n")
	s.WriteString(Field("Scheme", m.sim.Scheme().String()) + "\n")
	s.WriteString(Field("Points", fmt.Sprintf("%d", m.sim.N())) + "\n")
	s.WriteString(Field("dt", fmt.Sprintf("%.6f", m.sim.Dt())) + "\n")
	s.WriteString(Field("Time", fmt.Sprintf("%.5f / %.2f", m.sim.Time(), m.maxTime)) + "\n")
	s.WriteString(Field("Steps", fmt.Sprintf("%d (x%d/frame)", m.sim.Steps(), m.stepsPerTick)) + "\n")
	s.WriteString(Field("Midpoint", fmt.Sprintf("%.6f", m.sim.Midpoint())) + "\n\n")

	frac := 0.0
	if m.maxTime > 0 {
		frac = m.sim.Time() / m.maxTime
	}
	s.WriteString(ProgressBar(frac, 30) + "\n")

	if len(m.midHistory) > 1 {
		chart := asciigraph.Plot(m.midHistory, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("midpoint"))
		s.WriteString("\n" + graphStyle.Render(chart) + "\n")
	}
	s.WriteString(helpStyle.Render("\nSPACE pause  R reset  +/- speed  Q quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(canvas.String()),
		panelStyle.Render(s.String()),
	)
}
