// qdeck is an interactive terminal deck for building small quantum
// circuits and watching the state vector evolve gate by gate.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "qdeck: %v\n", err)
		os.Exit(1)
	}
}
