package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"qgatesim/circuit"
	"qgatesim/quantum"
)

// focus represents which panel/mode has keyboard input.
type focus int

const (
	focusMenu focus = iota
	focusSelectTarget
	focusInputParam
	focusInputShots
)

// Model represents the TUI application state.
type Model struct {
	prog  *circuit.Circuit
	state *quantum.StateVector

	width  int
	height int
	focus  focus

	// Menu state
	menuCat  int
	menuItem int

	// Pending gate placement
	pending     *menuItem
	pendingVal  float64
	selQubits   []int
	cursorQubit int

	paramInput textinput.Model
	shotsInput textinput.Model

	histogram map[string]float64
	lastShots int
	seed      uint64

	statusMsg string
}

func initialModel() Model {
	param := textinput.New()
	param.Placeholder = "pi/2"
	param.CharLimit = 24
	param.Width = 16

	shots := textinput.New()
	shots.Placeholder = "1024"
	shots.CharLimit = 8
	shots.Width = 10

	m := Model{
		prog:       &circuit.Circuit{NumQubits: 3},
		paramInput: param,
		shotsInput: shots,
		seed:       1,
	}
	m.rerun()
	return m
}

// rerun re-executes the whole program and refreshes the state view.
func (m *Model) rerun() {
	state, err := m.prog.Run()
	if err != nil {
		m.statusMsg = err.Error()
		return
	}
	m.state = state
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.focus {
		case focusInputParam:
			return m.updateParamInput(msg)
		case focusInputShots:
			return m.updateShotsInput(msg)
		case focusSelectTarget:
			return m.updateTargetSelect(msg)
		default:
			return m.updateMenu(msg)
		}
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "shift+tab":
		m.menuCat = (m.menuCat + len(gateMenu) - 1) % len(gateMenu)
		m.menuItem = 0
	case "right", "tab":
		m.menuCat = (m.menuCat + 1) % len(gateMenu)
		m.menuItem = 0
	case "up", "k":
		items := len(gateMenu[m.menuCat].items)
		m.menuItem = (m.menuItem + items - 1) % items
	case "down", "j":
		m.menuItem = (m.menuItem + 1) % len(gateMenu[m.menuCat].items)
	case "enter":
		item := gateMenu[m.menuCat].items[m.menuItem]
		m.pending = &item
		m.selQubits = nil
		m.pendingVal = 0
		if item.needsParam {
			m.paramInput.SetValue("")
			m.paramInput.Focus()
			m.focus = focusInputParam
		} else if item.qubits > 0 {
			m.cursorQubit = 0
			m.focus = focusSelectTarget
		} else {
			m.commitPending()
		}
	case "m":
		m.shotsInput.SetValue("")
		m.shotsInput.Focus()
		m.focus = focusInputShots
	case "u":
		if n := len(m.prog.Ops); n > 0 {
			m.prog.Ops = m.prog.Ops[:n-1]
			m.histogram = nil
			m.rerun()
		}
	case "r":
		m.prog.Ops = nil
		m.histogram = nil
		m.rerun()
	case "1", "2", "3", "4", "5":
		n := int(msg.String()[0] - '0')
		if n > maxQubits {
			break
		}
		m.prog = &circuit.Circuit{NumQubits: n}
		m.histogram = nil
		m.rerun()
	}
	return m, nil
}

func (m Model) updateTargetSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pending = nil
		m.focus = focusMenu
	case "up", "k":
		m.cursorQubit = (m.cursorQubit + m.prog.NumQubits - 1) % m.prog.NumQubits
	case "down", "j":
		m.cursorQubit = (m.cursorQubit + 1) % m.prog.NumQubits
	case "enter":
		for _, q := range m.selQubits {
			if q == m.cursorQubit {
				m.statusMsg = "Qubit already selected"
				return m, nil
			}
		}
		m.selQubits = append(m.selQubits, m.cursorQubit)
		if len(m.selQubits) == m.pending.qubits {
			m.commitPending()
			m.focus = focusMenu
		}
	}
	return m, nil
}

func (m Model) updateParamInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pending = nil
		m.paramInput.Blur()
		m.focus = focusMenu
		return m, nil
	case "enter":
		val, ok := circuit.ParseParam(m.paramInput.Value())
		if !ok {
			m.statusMsg = fmt.Sprintf("Cannot parse %q (try %s)", m.paramInput.Value(), m.pending.paramHint)
			return m, nil
		}
		m.pendingVal = val
		m.paramInput.Blur()
		m.cursorQubit = 0
		m.focus = focusSelectTarget
		return m, nil
	}
	var cmd tea.Cmd
	m.paramInput, cmd = m.paramInput.Update(msg)
	return m, cmd
}

func (m Model) updateShotsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.shotsInput.Blur()
		m.focus = focusMenu
		return m, nil
	case "enter":
		shots := 1024
		if v := m.shotsInput.Value(); v != "" {
			if _, err := fmt.Sscanf(v, "%d", &shots); err != nil || shots <= 0 {
				m.statusMsg = fmt.Sprintf("Invalid shot count %q", v)
				return m, nil
			}
		}
		m.measure(shots)
		m.shotsInput.Blur()
		m.focus = focusMenu
		return m, nil
	}
	var cmd tea.Cmd
	m.shotsInput, cmd = m.shotsInput.Update(msg)
	return m, cmd
}

// commitPending appends the pending gate to the program and reruns it.
func (m *Model) commitPending() {
	if m.pending == nil {
		return
	}
	var params []float64
	if m.pending.needsParam {
		params = []float64{m.pendingVal}
	}
	m.prog.Add(m.pending.op, params, m.selQubits...)
	m.pending = nil
	m.selQubits = nil
	m.histogram = nil
	m.rerun()
}

// measure samples the current state; each run advances the seed so
// repeated measurements differ but the session stays reproducible.
func (m *Model) measure(shots int) {
	if m.state == nil {
		return
	}
	hist, err := quantum.NewSampler(m.seed).Measure(m.state, shots)
	if err != nil {
		m.statusMsg = err.Error()
		return
	}
	m.seed++
	m.histogram = hist
	m.lastShots = shots
}
