package viz

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/foxjammin/sigilry/internal/anim"
	"github.com/foxjammin/sigilry/internal/field"
	"github.com/foxjammin/sigilry/internal/prng"
	"github.com/foxjammin/sigilry/internal/sigil"
	"github.com/foxjammin/sigilry/internal/theme"
)

const (
	sidePanelWidth = 36
	minCanvasCols  = 10
	hostFrameRate  = 60
)

// Options configures the live view.
type Options struct {
	Anim          anim.Config
	Sigil         sigil.Config
	Theme         string
	Seed          uint32
	RandomSeed    bool
	ReducedMotion bool
	Logger        *slog.Logger
}

// Model is the bubbletea program for the animated backdrop and the sigil
// panel.
type Model struct {
	renderer *anim.Renderer
	canvas   *Canvas
	ticks    *frameTicks
	events   *hostEvents
	themes   *theme.Switcher
	gen      *sigil.Generator

	seed  uint32
	sigil sigil.Grid

	width, height int
	showPanel     bool
	showHelp      bool
}

// NewModel wires a terminal canvas, a bubbletea tick source and the host
// event fan-out into a renderer.
func NewModel(opts Options) (Model, error) {
	gen, err := sigil.NewGenerator(opts.Sigil)
	if err != nil {
		return Model{}, fmt.Errorf("sigil config: %w", err)
	}
	if err := opts.Anim.Validate(); err != nil {
		return Model{}, err
	}

	themes := theme.NewSwitcher(opts.Theme)
	canvas := NewCanvas(1, 1, opts.Anim.MinCell)
	canvas.SetBase(themes.Lookup(theme.TokenBackground))

	ticks := newFrameTicks(time.Second / hostFrameRate)
	events := newHostEvents()
	renderer := anim.New(canvas, ticks,
		anim.WithConfig(opts.Anim),
		anim.WithTheme(themes),
		anim.WithReducedMotion(opts.ReducedMotion),
		anim.WithObservers(events),
		anim.WithLogger(opts.Logger),
	)

	seed := opts.Seed
	if opts.RandomSeed {
		seed = prng.NewSeed()
	}

	return Model{
		renderer:  renderer,
		canvas:    canvas,
		ticks:     ticks,
		events:    events,
		themes:    themes,
		gen:       gen,
		seed:      seed,
		sigil:     gen.Generate(seed),
		showPanel: true,
	}, nil
}

func (m Model) Init() tea.Cmd {
	m.renderer.Start()
	return m.ticks.cmd()
}

// Update routes host events to the renderer and handles keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.renderer.Close()
			return m, tea.Quit
		case " ", "p":
			m.renderer.Toggle()
		case "n":
			m.regenerate(prng.NewSeed())
		case "t":
			m.themes.Next()
			m.canvas.SetBase(m.themes.Lookup(theme.TokenBackground))
		case "s":
			m.showPanel = !m.showPanel
			m.layout()
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
	case tea.FocusMsg:
		m.events.visibility(true)
	case tea.BlurMsg:
		m.events.visibility(false)
	case frameMsg:
		m.ticks.deliver(time.Time(msg))
	}
	return m, m.ticks.cmd()
}

func (m *Model) regenerate(seed uint32) {
	m.seed = seed
	m.sigil = m.gen.Generate(seed)
}

// layout gives the canvas whatever the side panel leaves over.
func (m *Model) layout() {
	cols, rows := m.canvasCells()
	pitch := m.canvas.Pitch
	m.events.resize(float64(cols)*pitch, float64(rows)*pitch, 1)
}

func (m Model) canvasCells() (int, int) {
	cols := m.width
	if m.showPanel && m.width-sidePanelWidth >= minCanvasCols {
		cols = m.width - sidePanelWidth
	}
	return max(0, cols), max(0, m.height)
}

func (m Model) status(st Styles) string {
	switch {
	case !m.renderer.PauseEnabled():
		return st.Paused.Render("STILL") + " " + st.Hint.UnsetMarginTop().Render(anim.PauseDisabledReason)
	case m.renderer.Paused():
		return st.Paused.Render("PAUSED")
	case !m.renderer.Visible():
		return st.Paused.Render("HIDDEN")
	}
	return st.Running.Render("RUNNING")
}

func (m Model) panel(st Styles) string {
	cur := m.themes.Current()
	var s strings.Builder

	s.WriteString(st.Header.Render(GradientText("SIGILRY", cur.Accent, cur.Muted)) + "\n")
	s.WriteString(m.status(st) + "\n")
	s.WriteString(st.Sigil.Render(m.sigil.String()) + "\n")
	s.WriteString(st.Label.Render("seed") + st.Value.Render(fmt.Sprintf("%d", m.seed)) + "\n")
	s.WriteString(Separator(sidePanelWidth-4, st.Label.UnsetWidth()) + "\n")

	w, h, _ := m.renderer.Size()
	cell := m.renderer.CellSize()
	if profile := field.Profile(h/2, m.renderer.Time(), w, cell); len(profile) > 1 {
		chart := asciigraph.Plot(profile,
			asciigraph.Height(4),
			asciigraph.Width(sidePanelWidth-12),
			asciigraph.LowerBound(-1),
			asciigraph.UpperBound(1),
			asciigraph.Caption("field, middle row"))
		s.WriteString(st.Graph.Render(chart) + "\n")
	}

	stats := m.renderer.Stats()
	s.WriteString(st.Label.Render("time") + st.Value.Render(fmt.Sprintf("%.2f", m.renderer.Time())) + "\n")
	s.WriteString(st.Label.Render("frames") + st.Value.Render(fmt.Sprintf("%d", stats.Draws)) + "\n")
	s.WriteString(st.Label.Render("accept") + st.Value.Render(fmt.Sprintf("%.0f%%", 100*stats.AcceptRate())) + "\n")
	s.WriteString(st.Label.Render("theme") + st.Value.Render(cur.Label) + "\n")
	s.WriteString(st.Hint.Render("SP:Pause N:New T:Theme\nS:Panel ?:Help Q:Quit"))

	return st.Panel.Render(s.String())
}

// View renders the canvas next to the side panel.
func (m Model) View() string {
	st := NewStyles(m.themes.Current())
	if m.showHelp {
		return helpText
	}
	cols, _ := m.canvasCells()
	if !m.showPanel || cols == m.width {
		return m.canvas.String()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.canvas.String(), m.panel(st))
}

// Renderer exposes the scheduler, mainly for tests.
func (m Model) Renderer() *anim.Renderer { return m.renderer }

func (m Model) Seed() uint32 { return m.seed }

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space/P  - Pause/Resume animation   ║
║  N        - New sigil seed           ║
║  T        - Cycle themes             ║
║  S        - Toggle side panel        ║
║  ?        - Toggle this help         ║
║  Q/Esc    - Quit                     ║
╚══════════════════════════════════════╝
`

// Run starts the live program on the terminal.
func Run(opts Options) error {
	m, err := NewModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus())
	_, err = p.Run()
	m.renderer.Close()
	return err
}
