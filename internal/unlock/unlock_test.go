package unlock

import (
	"testing"
	"time"

	"github.com/avdushin/pm/internal/crypto"
	"github.com/avdushin/pm/internal/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCache is a hand-rolled stand-in for session.Cache. A generated
// go.uber.org/mock version would serve identically here; this keeps the
// test self-contained since nothing else in the package needs a mock.
type fakeCache struct {
	stored []byte
	ttl    time.Duration
}

func (f *fakeCache) Put(mk []byte, ttl time.Duration) error {
	f.stored = append([]byte{}, mk...)
	f.ttl = ttl
	return nil
}

func (f *fakeCache) Get() ([]byte, error) { return f.stored, nil }

func (f *fakeCache) Invalidate() error {
	f.stored = nil
	return nil
}

type fakePrompter struct {
	answers [][]byte
	calls   int
}

func (f *fakePrompter) PromptPassphrase() ([]byte, error) {
	a := f.answers[f.calls]
	f.calls++
	return append([]byte{}, a...), nil
}

func fastParams() crypto.KDFParams {
	return crypto.KDFParams{TimeCost: 1, MemoryCost: 8 * 1024, Parallelism: 1}
}

func TestUnlock_CacheHitSkipsPrompt(t *testing.T) {
	mk := make([]byte, keyring.MKSize)
	cache := &fakeCache{stored: mk}
	prompter := &fakePrompter{}

	got, err := Unlock(keyring.Config{}, cache, prompter, time.Minute)
	require.NoError(t, err)
	defer got.Close()
	assert.Equal(t, mk, got.Bytes())
	assert.Equal(t, 0, prompter.calls)
}

func TestUnlock_CacheMissPromptsAndCaches(t *testing.T) {
	cfg, mk, err := keyring.Initialize([]byte("correcthorse"), fastParams())
	require.NoError(t, err)
	defer mk.Close()

	cache := &fakeCache{}
	prompter := &fakePrompter{answers: [][]byte{[]byte("correcthorse")}}

	got, err := Unlock(cfg, cache, prompter, time.Minute)
	require.NoError(t, err)
	defer got.Close()

	assert.Equal(t, mk.Bytes(), got.Bytes())
	assert.Equal(t, mk.Bytes(), cache.stored)
	assert.Equal(t, 1, prompter.calls)
}

func TestUnlock_RetriesThenSucceeds(t *testing.T) {
	cfg, mk, err := keyring.Initialize([]byte("correcthorse"), fastParams())
	require.NoError(t, err)
	defer mk.Close()

	cache := &fakeCache{}
	prompter := &fakePrompter{answers: [][]byte{[]byte("wrong1"), []byte("wrong2"), []byte("correcthorse")}}

	got, err := Unlock(cfg, cache, prompter, time.Minute)
	require.NoError(t, err)
	defer got.Close()
	assert.Equal(t, 3, prompter.calls)
}

func TestUnlock_AbortsAfterMaxAttempts(t *testing.T) {
	cfg, mk, err := keyring.Initialize([]byte("correcthorse"), fastParams())
	require.NoError(t, err)
	defer mk.Close()

	cache := &fakeCache{}
	prompter := &fakePrompter{answers: [][]byte{[]byte("a"), []byte("b"), []byte("c")}}

	_, err = Unlock(cfg, cache, prompter, time.Minute)
	assert.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, MaxAttempts, prompter.calls)
	assert.Nil(t, cache.stored)
}
