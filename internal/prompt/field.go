package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// fieldModel is a single-input bubbletea form: one textinput.Model, a
// title, and optional masked echo, submitted with enter and abandoned
// with esc or ctrl+c.
type fieldModel struct {
	title      string
	input      textinput.Model
	done       bool
	errMsg     string
	canceled   bool
	allowEmpty bool
}

func newFieldModel(title string, masked bool) fieldModel {
	in := textinput.New()
	in.Width = 40
	if masked {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	in.Focus()
	return fieldModel{title: title, input: in}
}

func (m fieldModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m fieldModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc", "ctrl+c":
			m.canceled = true
			m.done = true
			return m, tea.Quit
		case "enter":
			if m.input.Value() == "" && !m.allowEmpty {
				m.errMsg = "value is required"
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m fieldModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n[")
	b.WriteString(m.input.View())
	b.WriteString("]\n")
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: submit  esc: cancel"))
	return b.String()
}

// runField drives a single fieldModel to completion via tea.NewProgram
// and returns its final value.
func runField(title string, masked, allowEmpty bool) (string, error) {
	m := newFieldModel(title, masked)
	m.allowEmpty = allowEmpty
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("run prompt: %w", err)
	}

	fm := final.(fieldModel)
	if fm.canceled {
		return "", ErrCancelled
	}
	return fm.input.Value(), nil
}

// Text prompts for a single required plain-text value.
func Text(title string) (string, error) {
	return runField(title, false, false)
}

// TextOptional prompts for a plain-text value that may be left empty,
// e.g. a password field left blank to trigger generation.
func TextOptional(title string) (string, error) {
	return runField(title, false, true)
}
