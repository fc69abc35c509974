// Package prompt renders interactive terminal prompts — a masked
// passphrase field, a plain text field, and a yes/no confirm — using
// bubbletea, bubbles/textinput, and lipgloss, the way the original
// keeper's login screen does.
package prompt
