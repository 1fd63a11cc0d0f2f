package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/skidsim/internal/sim"
)

const (
	compassWidth  = 36
	compassHeight = 13
)

var (
	canvasStyle      = lipgloss.NewStyle().Padding(1, 2)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(48)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// tunable is one live-adjustable parameter: a UI row, an adjustment step,
// and the slider range used for the bar display.
type tunable struct {
	name     string
	step     float64
	min, max float64
}

var tunables = []tunable{
	{"Kp", 0.1, 0, 10},
	{"Ki", 0.01, 0, 2},
	{"Kd", 0.01, 0, 2},
	{"Target", 1.0, 0, 360},
}

// Model is the live dashboard: it owns the simulation handle, drives
// Tick(dt) on a fixed cadence, and renders compass, strip charts, and the
// live P/I/D breakdown.
type Model struct {
	s        *sim.Simulation
	dt       float64
	interval time.Duration
	canvas   *Canvas
	selected int
	showHelp bool
}

func NewModel(s *sim.Simulation, dt float64, fps int) Model {
	if fps <= 0 {
		fps = 10
	}
	return Model{
		s:        s,
		dt:       dt,
		interval: time.Second / time.Duration(fps),
		canvas:   NewCanvas(compassWidth, compassHeight),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.s.SetPaused(!m.s.Paused())
		case "r":
			m.s.Reset()
		case "tab":
			m.selected = (m.selected + 1) % len(tunables)
		case "up", "k":
			m.adjustParam(1)
		case "down", "j":
			m.adjustParam(-1)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		m.s.Tick(m.dt)
		return m, tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) adjustParam(dir float64) {
	tun := tunables[m.selected]
	if tun.name == "Target" {
		m.s.Desired = sim.WrapHeading(m.s.Desired + dir*tun.step)
		return
	}

	pid := m.s.Controller()
	val := pid.GetParams()[tun.name] + dir*tun.step
	if val < tun.min {
		val = tun.min
	}
	if val > tun.max {
		val = tun.max
	}
	pid.SetParam(tun.name, val)
}

func (m *Model) paramValue(name string) float64 {
	if name == "Target" {
		return m.s.Desired
	}
	return m.s.Controller().GetParams()[name]
}

// drawCompass renders the heading dial: rim, needle at the current heading,
// and a short tick at the desired heading. North is up, angles clockwise.
func (m *Model) drawCompass() {
	m.canvas.Clear()

	cw, ch := compassWidth*2, compassHeight*4
	cx, cy := cw/2, ch/2
	r := ch/2 - 3

	m.canvas.DrawCircle(cx, cy, r)

	hRad := sim.WrapHeading(m.s.Heading()) * math.Pi / 180
	nx := cx + int(float64(r-2)*math.Sin(hRad))
	ny := cy - int(float64(r-2)*math.Cos(hRad))
	m.canvas.DrawLine(cx, cy, nx, ny)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			m.canvas.Set(nx+dx, ny+dy)
		}
	}

	dRad := sim.WrapHeading(m.s.Desired) * math.Pi / 180
	m.canvas.DrawLine(
		cx+int(float64(r-1)*math.Sin(dRad)), cy-int(float64(r-1)*math.Cos(dRad)),
		cx+int(float64(r+3)*math.Sin(dRad)), cy-int(float64(r+3)*math.Cos(dRad)),
	)
}

func (m Model) View() string {
	m.drawCompass()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("SKID-STEER HEADING") + "\n")

	status := "RUNNING"
	if m.s.Paused() {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	last, hasSample := m.s.Last()

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.1fs", m.s.Elapsed())) + "\n")
	s.WriteString(labelStyle.Render("Heading") + valueStyle.Render(fmt.Sprintf("%.1f°", sim.WrapHeading(m.s.Heading()))) + "\n")
	s.WriteString(labelStyle.Render("Desired") + valueStyle.Render(fmt.Sprintf("%.1f°", sim.WrapHeading(m.s.Desired))) + "\n")
	if hasSample {
		s.WriteString(labelStyle.Render("Error") + valueStyle.Render(fmt.Sprintf("%.1f°", last.Error)) + "\n")
		s.WriteString(labelStyle.Render("Output") + valueStyle.Render(fmt.Sprintf("%.1f°/s", last.Output)) + "\n")
	}

	p, i, d := m.s.Controller().Terms()
	s.WriteString("\nCOMPONENTS\n")
	s.WriteString(labelStyle.Render("P") + valueStyle.Render(fmt.Sprintf("%.2f", p)) + "\n")
	s.WriteString(labelStyle.Render("I") + valueStyle.Render(fmt.Sprintf("%.2f", i)) + "\n")
	s.WriteString(labelStyle.Render("D") + valueStyle.Render(fmt.Sprintf("%.2f", d)) + "\n")

	s.WriteString("\nPARAMETERS\n")
	for idx, tun := range tunables {
		val := m.paramValue(tun.name)
		barWidth := 10
		ratio := (val - tun.min) / (tun.max - tun.min)
		if ratio > 1 {
			ratio = 1
		} else if ratio < 0 {
			ratio = 0
		}
		filled := int(ratio * float64(barWidth))
		bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
		line := fmt.Sprintf("%-8s %s %.2f", tun.name, bar, val)
		if idx == m.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("\nSP:Pause R:Reset Q:Quit\nTab:Select ↑↓:Tune ?:Help"))
	statsView := statsStyle.Render(s.String())

	top := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	var charts strings.Builder
	history := m.s.History()
	if len(history) > 1 {
		errSeries := make([]float64, len(history))
		outSeries := make([]float64, len(history))
		for i, sample := range history {
			errSeries[i] = sample.Error
			outSeries[i] = sample.Output
		}
		charts.WriteString(graphStyle.Render(asciigraph.Plot(errSeries,
			asciigraph.Height(5), asciigraph.Width(80), asciigraph.Caption("error (deg)"))))
		charts.WriteString("\n")
		charts.WriteString(graphStyle.Render(asciigraph.Plot(outSeries,
			asciigraph.Height(5), asciigraph.Width(80), asciigraph.Caption("output (deg/s)"))))
	}

	mainView := top + "\n" + charts.String()

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume simulation  ║
║  R        - Reset run (keeps tuning) ║
║  Q        - Quit                     ║
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter       ║
║  Down/J   - Decrease parameter       ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n" + mainView
	}
	return mainView
}
