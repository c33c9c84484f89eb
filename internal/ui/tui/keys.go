package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Dec      key.Binding
	Inc      key.Binding
	DecBig   key.Binding
	IncBig   key.Binding
	Reset    key.Binding
	Preset   key.Binding
	Solver   key.Binding
	Run      key.Binding
	Export   key.Binding
	Tab      key.Binding
	Init     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev param")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next param")),
		Dec:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease")),
		Inc:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase")),
		DecBig: key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("shift+←", "decrease ×10")),
		IncBig: key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("shift+→", "increase ×10")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Preset: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "next preset")),
		Solver: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "switch solver")),
		Run:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run optimization")),
		Export: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export chart")),
		Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch tab")),
		Init:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "init lpdash.yaml")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Dec, k.Inc, k.Run, k.Tab, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Dec, k.Inc, k.DecBig, k.IncBig},
		{k.Reset, k.Preset, k.Solver},
		{k.Run, k.Export, k.Tab, k.Init},
		{k.Help, k.Quit},
	}
}
