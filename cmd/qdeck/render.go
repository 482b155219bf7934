package main

import (
	"fmt"
	"math/cmplx"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderBar draws a probability bar of the given width.
func renderBar(p float64, width int) string {
	filled := int(p*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	return barStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", width-filled))
}

// renderState renders the amplitude table for the current state.
func (m Model) renderState() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Register (%d qubits)", m.prog.NumQubits)))
	sb.WriteString("\n\n")

	if m.state == nil {
		sb.WriteString(dimStyle.Render("no state"))
		return statePanelStyle.Render(sb.String())
	}

	probs := m.state.Probabilities()
	for i, amp := range m.state.Amplitudes {
		label := "|" + m.state.Label(i) + "⟩"
		line := labelStyle.Render(padRight(label, labelW))
		line += renderBar(probs[i], barW)
		line += fmt.Sprintf(" %6.1f%%", probs[i]*100)
		if probs[i] > 1e-10 {
			line += phaseStyle.Render(fmt.Sprintf("  φ=%+.2f", cmplx.Phase(amp)))
		}
		if m.focus == focusSelectTarget {
			line = m.markTargetRow(line, i)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if m.focus == focusSelectTarget {
		sb.WriteString("\n")
		sb.WriteString(targetSelectStyle.Render(fmt.Sprintf("Select qubit %d of %d: q[%d]",
			len(m.selQubits)+1, m.pending.qubits, m.cursorQubit)))
	}
	return statePanelStyle.Render(sb.String())
}

// markTargetRow highlights rows whose basis label has the cursor qubit
// set, as a cue while picking targets.
func (m Model) markTargetRow(line string, basis int) string {
	bit := m.prog.NumQubits - 1 - m.cursorQubit
	if basis&(1<<bit) != 0 {
		return targetSelectStyle.Render("▸ ") + line
	}
	return "  " + line
}

// renderProgram renders the textual program listing.
func (m Model) renderProgram() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Program"))
	sb.WriteString("\n\n")
	text := m.prog.String()
	if len(m.prog.Ops) == 0 {
		text += dimStyle.Render("// empty: pick a gate\n")
	}
	sb.WriteString(text)
	if m.statusMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(phaseStyle.Render(m.statusMsg))
	}
	return programStyle.Render(sb.String())
}

// renderMenu renders the gate picker.
func (m Model) renderMenu() string {
	var sb strings.Builder

	var tabs []string
	for i, cat := range gateMenu {
		if i == m.menuCat {
			tabs = append(tabs, menuSelectedStyle.Render(cat.name))
		} else {
			tabs = append(tabs, dimStyle.Render(cat.name))
		}
	}
	sb.WriteString(strings.Join(tabs, dimStyle.Render(" │ ")))
	sb.WriteString("\n\n")

	for i, item := range gateMenu[m.menuCat].items {
		label := fmt.Sprintf("%-4s %s", item.symbol, item.name)
		if item.needsParam {
			label += dimStyle.Render(fmt.Sprintf(" (θ, e.g. %s)", item.paramHint))
		}
		if i == m.menuItem {
			sb.WriteString(menuSelectedStyle.Render("▸ " + label))
		} else {
			sb.WriteString(menuNormalStyle.Render("  " + label))
		}
		sb.WriteString("\n")
	}
	return menuBorderStyle.Render(sb.String())
}

// renderHistogram renders the latest measurement outcome.
func (m Model) renderHistogram() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Measurement (%d shots)", m.lastShots)))
	sb.WriteString("\n\n")

	labels := make([]string, 0, len(m.histogram))
	for label := range m.histogram {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		f := m.histogram[label]
		sb.WriteString(labelStyle.Render(padRight(label, labelW)))
		sb.WriteString(renderBar(f, barW))
		sb.WriteString(fmt.Sprintf(" %6.1f%%\n", f*100))
	}
	return histogramStyle.Render(sb.String())
}

func (m Model) renderParamInput() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Enter Parameter"))
	sb.WriteString("\n\n")
	sb.WriteString(m.paramInput.View())
	sb.WriteString("\n\n")
	sb.WriteString(dimStyle.Render("Examples: pi/2, 3*pi/4, 1.57"))
	return menuBorderStyle.Render(sb.String())
}

func (m Model) renderShotsInput() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Measure"))
	sb.WriteString("\n\n")
	sb.WriteString("Shots: ")
	sb.WriteString(m.shotsInput.View())
	return menuBorderStyle.Render(sb.String())
}

func (m Model) View() string {
	left := lipgloss.JoinVertical(lipgloss.Left, m.renderState(), m.renderProgram())

	var right string
	switch m.focus {
	case focusInputParam:
		right = m.renderParamInput()
	case focusInputShots:
		right = m.renderShotsInput()
	default:
		right = m.renderMenu()
	}
	if m.histogram != nil {
		right = lipgloss.JoinVertical(lipgloss.Left, right, m.renderHistogram())
	}

	controls := controlsStyle.Render(
		"↑↓←→ navigate  ⏎ place gate  m measure  u undo  r reset  1-5 register size  q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right),
		controls)
}

// padRight pads to display width; labels carry multi-byte runes like ⟩,
// so byte length would misalign the columns.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
