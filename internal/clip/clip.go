package clip

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
)

// DefaultTimeout is how long a copied value survives before Copy clears
// it back out, absent an explicit override.
const DefaultTimeout = 20 * time.Second

// board is the clipboard seam Copy writes through; tests substitute a
// fake so they don't depend on a real clipboard provider being present.
type board interface {
	WriteAll(string) error
	ReadAll() (string, error)
}

type systemBoard struct{}

func (systemBoard) WriteAll(s string) error  { return clipboard.WriteAll(s) }
func (systemBoard) ReadAll() (string, error) { return clipboard.ReadAll() }

// Clipper copies values to the clipboard and clears them after timeout.
type Clipper struct {
	board   board
	timeout time.Duration
	after   func(time.Duration, func()) *time.Timer
}

// New returns a Clipper backed by the real system clipboard with
// [DefaultTimeout].
func New() *Clipper {
	return &Clipper{board: systemBoard{}, timeout: DefaultTimeout, after: time.AfterFunc}
}

// WithTimeout returns a copy of c using timeout instead of its current one.
func (c *Clipper) WithTimeout(timeout time.Duration) *Clipper {
	clone := *c
	clone.timeout = timeout
	return &clone
}

// Copy writes value to the clipboard and schedules its own clearing after
// c.timeout, but only if the clipboard still holds exactly what Copy put
// there — so it never stomps on something the user copied afterward.
func (c *Clipper) Copy(value string) error {
	if err := c.board.WriteAll(value); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	c.after(c.timeout, func() {
		if current, err := c.board.ReadAll(); err == nil && current == value {
			_ = c.board.WriteAll("")
		}
	})
	return nil
}
