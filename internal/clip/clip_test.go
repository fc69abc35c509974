package clip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBoard struct {
	content string
}

func (f *fakeBoard) WriteAll(s string) error {
	f.content = s
	return nil
}

func (f *fakeBoard) ReadAll() (string, error) {
	return f.content, nil
}

// fakeAfter records the callback instead of scheduling it, so tests can
// run it on demand without sleeping for real timers.
func fakeAfter(scheduled *[]func()) func(time.Duration, func()) *time.Timer {
	return func(_ time.Duration, f func()) *time.Timer {
		*scheduled = append(*scheduled, f)
		return nil
	}
}

func TestCopy_WritesValue(t *testing.T) {
	b := &fakeBoard{}
	var scheduled []func()
	c := &Clipper{board: b, timeout: time.Second, after: fakeAfter(&scheduled)}

	require.NoError(t, c.Copy("hunter2"))
	assert.Equal(t, "hunter2", b.content)
	require.Len(t, scheduled, 1)
}

func TestCopy_ClearsAfterTimeoutWhenUnchanged(t *testing.T) {
	b := &fakeBoard{}
	var scheduled []func()
	c := &Clipper{board: b, timeout: time.Second, after: fakeAfter(&scheduled)}

	require.NoError(t, c.Copy("hunter2"))
	scheduled[0]()
	assert.Equal(t, "", b.content)
}

func TestCopy_DoesNotClearIfClipboardChanged(t *testing.T) {
	b := &fakeBoard{}
	var scheduled []func()
	c := &Clipper{board: b, timeout: time.Second, after: fakeAfter(&scheduled)}

	require.NoError(t, c.Copy("hunter2"))
	b.content = "something else the user copied"
	scheduled[0]()
	assert.Equal(t, "something else the user copied", b.content)
}

func TestWithTimeout_ReturnsIndependentCopy(t *testing.T) {
	c := New()
	other := c.WithTimeout(5 * time.Minute)
	assert.Equal(t, DefaultTimeout, c.timeout)
	assert.Equal(t, 5*time.Minute, other.timeout)
}
