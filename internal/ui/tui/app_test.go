package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/lpdash/internal/domain"
)

type stubSolver struct {
	calls int
	res   domain.SolveResult
}

func (s *stubSolver) Execute(_ context.Context, name string, _ domain.Params) domain.SolveResult {
	s.calls++
	r := s.res
	r.Solver = domain.SolverName(name)
	return r
}

type stubCatalog struct{}

func (stubCatalog) Names() []domain.SolverName          { return domain.SupportedSolvers() }
func (stubCatalog) Available(n domain.SolverName) bool { return n == domain.SolverGLPK }

type stubExporter struct {
	format string
}

func (e *stubExporter) Execute(_ domain.Chart, _, format string) (string, error) {
	e.format = format
	return "charts/out." + format, nil
}

func testModel(t *testing.T) (model, *stubSolver) {
	t.Helper()
	solver := &stubSolver{res: domain.SolveSucceeded("", 4, 6, 10)}
	cfg := domain.DefaultConfig()
	cfg.Presets = []domain.Preset{
		{Name: "bounds-dominate", Params: domain.Params{XUpper: 5, YUpper: 5, RHS1: 8, RHS2: 14, RHS3: 10}},
	}
	m := newModel(Deps{
		Config:      cfg,
		Solvers:     stubCatalog{},
		SolveModel:  solver,
		ExportChart: &stubExporter{},
	})
	return m, solver
}

func press(t *testing.T, m model, k tea.KeyMsg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(k)
	mm, ok := next.(model)
	if !ok {
		t.Fatalf("expected model, got %T", next)
	}
	return mm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel_StartsWithDefaultsAndPrompt(t *testing.T) {
	m, _ := testModel(t)
	if m.params != domain.DefaultParams() {
		t.Fatalf("expected default params, got %+v", m.params)
	}
	if m.solver() != domain.SolverGLPK {
		t.Fatalf("expected glpk selected, got %s", m.solver())
	}
	if m.status.text != infoPrompt {
		t.Fatalf("expected info prompt, got %q", m.status.text)
	}
	if m.chart.Marker != nil {
		t.Fatalf("expected no marker before solving")
	}
}

func TestUpdate_StepClampsToLimits(t *testing.T) {
	m, _ := testModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.params.XUpper != 10.1 {
		t.Fatalf("expected 10.1 after one step, got %v", m.params.XUpper)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftLeft})
	if m.params.XUpper != 9.1 {
		t.Fatalf("expected 9.1 after a big step down, got %v", m.params.XUpper)
	}

	for i := 0; i < 100; i++ {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftLeft})
	}
	if m.params.XUpper != 1 {
		t.Fatalf("expected clamp at 1, got %v", m.params.XUpper)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.specs[m.field].Field != domain.FieldRHS3 {
		t.Fatalf("expected selection to wrap to rhs3, got %v", m.specs[m.field].Key)
	}
}

func TestUpdate_RunSolvesOnceWhileInFlight(t *testing.T) {
	m, solver := testModel(t)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.solving || cmd == nil {
		t.Fatalf("expected solve to start")
	}

	m, cmd2 := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd2 != nil {
		t.Fatalf("expected second trigger to be ignored")
	}

	msg := cmdSolve(m.deps, m.solver(), m.params)()
	next, _ := m.Update(msg)
	m = next.(model)

	if solver.calls != 1 {
		t.Fatalf("expected one solver call, got %d", solver.calls)
	}
	if m.solving {
		t.Fatalf("expected solving to end")
	}
	if m.result == nil || !m.result.Success {
		t.Fatalf("expected a success result, got %+v", m.result)
	}
	if m.status.kind != statusSuccess || m.status.text != "Optimal Solution Found" {
		t.Fatalf("unexpected status %+v", m.status)
	}
	if m.toast != "Execution Complete" {
		t.Fatalf("expected completion notice, got %q", m.toast)
	}
	if m.chart.Marker == nil || m.chart.Marker.Point != (domain.Point{X: 4, Y: 6}) {
		t.Fatalf("expected marker at the optimum, got %+v", m.chart.Marker)
	}

	view := m.View()
	for _, w := range []string{"4.00", "6.00", "10.00", "Optimal Solution Found"} {
		if !strings.Contains(view, w) {
			t.Fatalf("expected view to contain %q", w)
		}
	}
}

func TestUpdate_EditClearsResultAndDropsStaleSolve(t *testing.T) {
	m, _ := testModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	started := m.params

	// Edit while the solve is in flight.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})

	next, _ := m.Update(solveDoneMsg{solver: m.solver(), params: started, result: domain.SolveSucceeded(domain.SolverGLPK, 4, 6, 10)})
	m = next.(model)
	if m.result != nil {
		t.Fatalf("expected stale result to be discarded")
	}
	if m.chart.Marker != nil {
		t.Fatalf("expected no marker for stale result")
	}

	// A fresh result is cleared by a later edit.
	next, _ = m.Update(solveDoneMsg{solver: m.solver(), params: m.params, result: domain.SolveSucceeded(domain.SolverGLPK, 4, 6, 10)})
	m = next.(model)
	if m.result == nil {
		t.Fatalf("expected result for current params")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.result != nil || m.chart.Marker != nil {
		t.Fatalf("expected edit to clear the result")
	}
	if m.status.text != infoPrompt {
		t.Fatalf("expected prompt after edit, got %q", m.status.text)
	}
}

func TestUpdate_FailureShowsMessage(t *testing.T) {
	m, _ := testModel(t)
	res := domain.SolveFailed(domain.SolverCBC, domain.TerminationInfeasible, "No solution found (infeasible)")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	next, _ := m.Update(solveDoneMsg{solver: m.solver(), params: m.params, result: res})
	m = next.(model)

	if m.status.kind != statusError || m.status.text != res.Message {
		t.Fatalf("unexpected status %+v", m.status)
	}
	if got := m.metricValue(func(r domain.SolveResult) float64 { return r.X }); got != "-" {
		t.Fatalf("expected empty metric on failure, got %q", got)
	}
}

func TestUpdate_PresetResetAndSolver(t *testing.T) {
	m, _ := testModel(t)

	m, _ = press(t, m, runes("p"))
	if m.params.XUpper != 5 || m.presetIdx != 0 {
		t.Fatalf("expected preset applied, got %+v", m.params)
	}

	m, _ = press(t, m, runes("r"))
	if m.params != domain.DefaultParams() || m.presetIdx != -1 {
		t.Fatalf("expected reset to defaults, got %+v", m.params)
	}

	m, _ = press(t, m, runes("s"))
	if m.solver() != domain.SolverCBC {
		t.Fatalf("expected cbc after switching, got %s", m.solver())
	}
	if !strings.Contains(m.View(), "not installed") {
		t.Fatalf("expected availability hint for cbc")
	}
}

func TestUpdate_TabsAndExport(t *testing.T) {
	m, _ := testModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.tab != tabExplanation {
		t.Fatalf("expected explanation tab")
	}
	if !strings.Contains(m.View(), "C2:  2x +  y ≤ 14.0") {
		t.Fatalf("expected interpolated model text")
	}

	m, cmd := press(t, m, runes("e"))
	if cmd == nil {
		t.Fatalf("expected export command")
	}
	next, _ := m.Update(cmd())
	m = next.(model)
	if m.toast != "Chart saved to charts/out.png" {
		t.Fatalf("unexpected toast %q", m.toast)
	}
}

func TestUpdate_QuitReturnsQuitCmd(t *testing.T) {
	m, _ := testModel(t)
	_, cmd := press(t, m, runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestUpdate_SolverSwitchDropsInFlightResult(t *testing.T) {
	m, _ := testModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	started := m.solver()
	msg := cmdSolve(m.deps, started, m.params)()

	m, _ = press(t, m, runes("s"))
	if m.solver() == started {
		t.Fatalf("expected solver to change")
	}

	next, _ := m.Update(msg)
	m = next.(model)
	if m.solving {
		t.Fatalf("expected solving to end")
	}
	if m.result != nil || m.chart.Marker != nil {
		t.Fatalf("expected result from %s to be discarded under %s", started, m.solver())
	}
	if m.status.text != infoPrompt {
		t.Fatalf("expected prompt, got %q", m.status.text)
	}
}
