package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel is a yes/no prompt: 'y' confirms, 'n' or esc declines.
type confirmModel struct {
	question string
	answer   bool
	answered bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		m.answer = true
		m.answered = true
		return m, tea.Quit
	case "n", "N", "esc", "ctrl+c":
		m.answer = false
		m.answered = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.question))
	b.WriteString(" ")
	b.WriteString(helpStyle.Render("[y/n]"))
	return b.String()
}

// Confirm asks a yes/no question and returns the user's answer.
func Confirm(question string) (bool, error) {
	p := tea.NewProgram(confirmModel{question: question})
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("run prompt: %w", err)
	}
	return final.(confirmModel).answer, nil
}
