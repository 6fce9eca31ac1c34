// Package viewer implements the full-screen interactive move viewer: a
// bubbletea model that steps forward and backward through a solved game's
// move list, rendering the resulting board beside each move. It backs both
// cmd/solverview (which always uses it) and cmd/solver's --interactive flag
// (which falls back to a line-buffered stepper when it can't attach to a
// tty).
package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JoshDreamland/FreeCell-Solver/render"
	"github.com/JoshDreamland/FreeCell-Solver/search"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	moveStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
)

// keyMap is the viewer's key bindings, rendered by bubbles/help.
type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Head key.Binding
	Tail key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Head, k.Tail, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Next: key.NewBinding(key.WithKeys("right", "l", "n", " ", "enter"), key.WithHelp("→/n", "next move")),
	Prev: key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/p", "previous move")),
	Head: key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first move")),
	Tail: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last move")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

// model is the bubbletea model for stepping through a solution.
type model struct {
	steps   []search.Step
	current int
	help    help.Model
	quit    bool
}

// Run launches the full-screen viewer over steps and blocks until the user
// quits. It returns an error if the program can't attach to a terminal,
// letting the caller fall back to a simpler stepper.
func Run(steps []search.Step) error {
	p := tea.NewProgram(model{steps: steps, help: help.New()})
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.Quit):
		m.quit = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Next):
		if m.current < len(m.steps)-1 {
			m.current++
		}
	case key.Matches(keyMsg, keys.Prev):
		if m.current > 0 {
			m.current--
		}
	case key.Matches(keyMsg, keys.Head):
		m.current = 0
	case key.Matches(keyMsg, keys.Tail):
		m.current = len(m.steps) - 1
	}
	return m, nil
}

func (m model) View() string {
	if m.quit {
		return ""
	}
	if len(m.steps) == 0 {
		return "no moves to show\n"
	}
	step := m.steps[m.current]

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("move %d of %d", m.current+1, len(m.steps))))
	b.WriteString("\n")
	b.WriteString(moveStyle.Render(step.Move.String()))
	b.WriteString("\n\n")
	b.WriteString(render.Diagram(step.Board))
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	return b.String()
}
