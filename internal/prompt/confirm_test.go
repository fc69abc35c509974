package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestConfirmModel_YConfirms(t *testing.T) {
	m := confirmModel{question: "Proceed?"}
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	cm := updated.(confirmModel)
	assert.True(t, cm.answered)
	assert.True(t, cm.answer)
}

func TestConfirmModel_NDeclines(t *testing.T) {
	m := confirmModel{question: "Proceed?"}
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	cm := updated.(confirmModel)
	assert.True(t, cm.answered)
	assert.False(t, cm.answer)
}

func TestConfirmModel_EscDeclines(t *testing.T) {
	m := confirmModel{question: "Proceed?"}
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	cm := updated.(confirmModel)
	assert.True(t, cm.answered)
	assert.False(t, cm.answer)
}

func TestConfirmModel_OtherKeysIgnored(t *testing.T) {
	m := confirmModel{question: "Proceed?"}
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	cm := updated.(confirmModel)
	assert.False(t, cm.answered)
}
