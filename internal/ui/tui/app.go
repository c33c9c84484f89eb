package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/lpdash/internal/domain"
	"github.com/aalvaropc/lpdash/internal/usecase"
)

type tab int

const (
	tabDashboard tab = iota
	tabExplanation
)

var tabTitles = []string{"Dashboard", "Mathematical Explanation"}

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

type statusLine struct {
	kind statusKind
	text string
}

const (
	sidebarWidth = 36
	infoPrompt   = "Press enter to run the optimization"
)

type model struct {
	theme   Theme
	deps    Deps
	log     *slog.Logger
	keys    keyMap
	help    help.Model
	spinner spinner.Model

	width, height int
	tab           tab

	specs     []domain.ParamSpec
	field     int
	params    domain.Params
	solvers   []domain.SolverName
	solverIdx int
	presetIdx int // -1 when the params do not come from a preset

	chart   domain.Chart
	result  *domain.SolveResult
	solving bool
	status  statusLine
	toast   string

	workspaceFound bool
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.RenderChart == nil {
		deps.RenderChart = usecase.NewRenderChart()
	}
	if deps.Config.Defaults == (domain.Params{}) {
		deps.Config = domain.DefaultConfig()
	}
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	solvers := domain.SupportedSolvers()
	if deps.Solvers != nil {
		if names := deps.Solvers.Names(); len(names) > 0 {
			solvers = names
		}
	}
	solverIdx := 0
	for i, s := range solvers {
		if s == deps.Config.Solver.Default {
			solverIdx = i
		}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := model{
		theme:     DefaultTheme(),
		deps:      deps,
		log:       log,
		keys:      defaultKeys(),
		help:      help.New(),
		spinner:   sp,
		specs:     domain.ParamSpecs(),
		params:    deps.Config.Defaults,
		solvers:   solvers,
		solverIdx: solverIdx,
		presetIdx: -1,
		status:    statusLine{kind: statusInfo, text: infoPrompt},
	}

	if deps.Locator != nil && deps.Root != "" {
		if _, err := deps.Locator.FindRoot(deps.Root); err == nil {
			m.workspaceFound = true
		}
	}

	m.rebuildChart()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) solver() domain.SolverName {
	return m.solvers[m.solverIdx]
}

func (m *model) rebuildChart() {
	m.chart = m.deps.RenderChart.Execute(m.params, m.result)
}

// setParams applies new values and drops a result that no longer matches them.
func (m *model) setParams(p domain.Params) {
	if p == m.params {
		return
	}
	m.params = p
	m.clearResult()
}

func (m *model) clearResult() {
	m.result = nil
	if !m.solving {
		m.status = statusLine{kind: statusInfo, text: infoPrompt}
	}
	m.rebuildChart()
}

func (m *model) step(mult float64) {
	spec := m.specs[m.field]
	v := spec.Clamp(m.params.Get(spec.Field) + mult*spec.Step)
	m.presetIdx = -1
	m.setParams(m.params.With(spec.Field, v))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.solving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case solveDoneMsg:
		m.solving = false
		if msg.params != m.params || msg.solver != m.solver() {
			m.log.Debug("solve.stale", "solver", string(msg.solver), "selected", string(m.solver()))
			m.status = statusLine{kind: statusInfo, text: infoPrompt}
			m.toast = "Inputs changed while solving; result discarded"
			return m, nil
		}
		res := msg.result
		m.result = &res
		if res.Success {
			m.status = statusLine{kind: statusSuccess, text: res.Message}
		} else {
			m.status = statusLine{kind: statusError, text: res.Message}
		}
		m.toast = "Execution Complete"
		m.rebuildChart()
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.log.Error("tui.export.failed", "err", msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Chart saved to " + msg.path
		return m, nil

	case initDoneMsg:
		if msg.err != nil {
			m.log.Error("tui.init.failed", "root", msg.root, "err", msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.workspaceFound = true
		m.toast = "Created lpdash.yaml in " + msg.root
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tab):
		m.tab = (m.tab + 1) % tab(len(tabTitles))

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.field = (m.field - 1 + len(m.specs)) % len(m.specs)

	case key.Matches(msg, m.keys.Down):
		m.field = (m.field + 1) % len(m.specs)

	case key.Matches(msg, m.keys.DecBig):
		m.step(-10)

	case key.Matches(msg, m.keys.IncBig):
		m.step(10)

	case key.Matches(msg, m.keys.Dec):
		m.step(-1)

	case key.Matches(msg, m.keys.Inc):
		m.step(1)

	case key.Matches(msg, m.keys.Reset):
		m.presetIdx = -1
		m.setParams(m.deps.Config.Defaults)
		m.toast = "Parameters reset"

	case key.Matches(msg, m.keys.Preset):
		presets := m.deps.Config.Presets
		if len(presets) == 0 {
			m.toast = "No presets configured in lpdash.yaml"
			break
		}
		m.presetIdx = (m.presetIdx + 1) % len(presets)
		m.setParams(presets[m.presetIdx].Params)
		m.toast = "Preset: " + presets[m.presetIdx].Name

	case key.Matches(msg, m.keys.Solver):
		if len(m.solvers) > 1 {
			m.solverIdx = (m.solverIdx + 1) % len(m.solvers)
			m.clearResult()
		}

	case key.Matches(msg, m.keys.Run):
		if m.solving {
			m.log.Debug("solve.ignored", "reason", "in_flight")
			return m, nil
		}
		m.solving = true
		m.toast = ""
		m.status = statusLine{kind: statusInfo, text: fmt.Sprintf("Running optimization with %s", m.solver())}
		return m, tea.Batch(m.spinner.Tick, cmdSolve(m.deps, m.solver(), m.params))

	case key.Matches(msg, m.keys.Export):
		m.toast = "Exporting chart..."
		return m, cmdExport(m.deps, m.chart)

	case key.Matches(msg, m.keys.Init):
		if m.workspaceFound {
			m.toast = "lpdash.yaml already exists"
			break
		}
		return m, cmdInitWorkspace(m.deps)
	}

	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(0, 1)

	header := m.theme.Title.Render("lpdash: Linear Programming Dashboard") + "\n" +
		m.theme.Subtitle.Render("Maximize x + y over three linear constraints") + "\n"

	if !m.workspaceFound && m.deps.Initializer != nil {
		header += m.theme.Help.Render("No lpdash.yaml found; press i to create one") + "\n"
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(), " ", m.viewMain())

	footer := ""
	if m.toast != "" {
		footer = m.theme.Info.Render(m.toast) + "\n"
	}
	footer += m.help.View(m.keys)

	return wrap.Render(header + "\n" + m.viewTabs() + "\n" + body + "\n" + footer)
}

func (m model) viewTabs() string {
	parts := make([]string, len(tabTitles))
	for i, t := range tabTitles {
		if tab(i) == m.tab {
			parts[i] = m.theme.TabActive.Render(t)
		} else {
			parts[i] = m.theme.TabIdle.Render(t)
		}
	}
	return strings.Join(parts, " ")
}

func (m model) viewSidebar() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Solver") + "\n")
	for i, s := range m.solvers {
		mark := "  "
		if i == m.solverIdx {
			mark = "● "
		}
		line := mark + string(s)
		if m.deps.Solvers != nil && !m.deps.Solvers.Available(s) {
			line += m.theme.Label.Render(" (not installed)")
		}
		if i == m.solverIdx {
			line = m.theme.Selected.Render(mark+string(s)) + strings.TrimPrefix(line, mark+string(s))
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + m.theme.Title.Render("Parameters") + "\n")
	for i, spec := range m.specs {
		v := m.params.Get(spec.Field)
		name := spec.Label
		value := fmt.Sprintf("%6.1f", v)
		rng := m.theme.Label.Render(fmt.Sprintf("[%g, %g]", spec.Min, spec.Max))
		if i == m.field {
			b.WriteString(m.theme.Selected.Render("› "+name) + "\n")
			b.WriteString("  " + m.theme.Selected.Render("◂ "+value+" ▸") + " " + rng + "\n")
		} else {
			b.WriteString("  " + name + "\n")
			b.WriteString("    " + value + "   " + rng + "\n")
		}
	}

	if m.presetIdx >= 0 {
		b.WriteString("\n" + m.theme.Label.Render("Preset: "+m.deps.Config.Presets[m.presetIdx].Name) + "\n")
	}

	return m.theme.Card.Width(sidebarWidth).Render(strings.TrimRight(b.String(), "\n"))
}

func (m model) mainSize() (int, int) {
	w, h := m.width, m.height
	if w == 0 || h == 0 {
		w, h = 120, 40
	}
	return w - sidebarWidth - 8, h - 12
}

func (m model) viewMain() string {
	w, h := m.mainSize()
	if m.tab == tabExplanation {
		return m.theme.Card.Width(w).Render(explanation(m.params, m.solver()))
	}

	metrics := lipgloss.JoinHorizontal(lipgloss.Top,
		m.metric("Optimal x", m.metricValue(func(r domain.SolveResult) float64 { return r.X })),
		" ",
		m.metric("Optimal y", m.metricValue(func(r domain.SolveResult) float64 { return r.Y })),
		" ",
		m.metric("Objective Value Z (x+y)", m.metricValue(func(r domain.SolveResult) float64 { return r.Objective })),
	)

	status := m.viewStatus()
	chartH := h - lipgloss.Height(metrics) - 4
	content := metrics + "\n" + status + "\n\n" + renderChart(m.chart, w-2, chartH)
	return m.theme.Card.Width(w).Render(content)
}

func (m model) metricValue(get func(domain.SolveResult) float64) string {
	if m.result == nil || !m.result.Success {
		return "-"
	}
	return fmt.Sprintf("%.2f", get(*m.result))
}

func (m model) metric(label, value string) string {
	return lipgloss.NewStyle().Padding(0, 1).Render(
		m.theme.Label.Render(label) + "\n" + m.theme.Metric.Render(value),
	)
}

func (m model) viewStatus() string {
	if m.solving {
		return m.spinner.View() + " " + m.theme.Info.Render(m.status.text)
	}
	switch m.status.kind {
	case statusSuccess:
		return m.theme.Success.Render("✓ " + m.status.text)
	case statusError:
		return m.theme.Error.Render("✗ " + m.status.text)
	default:
		return m.theme.Info.Render("ℹ " + m.status.text)
	}
}
