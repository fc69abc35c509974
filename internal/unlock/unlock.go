package unlock

import (
	"time"

	"github.com/avdushin/pm/internal/keyring"
	"github.com/avdushin/pm/internal/secret"
	"github.com/avdushin/pm/internal/session"
)

// Prompter asks the user for their passphrase. internal/prompt's
// bubbletea-backed implementation satisfies this; tests supply a stub.
type Prompter interface {
	PromptPassphrase() ([]byte, error)
}

// Unlock runs the state machine of spec.md §4.9: TryCache, and on a miss,
// Prompt → DeriveKEK → Unwrap, retried up to [MaxAttempts] times before
// returning [ErrAborted]. On success the Master Key is cached for ttl and
// returned to the caller, who owns its lifetime and must Close it.
func Unlock(cfg keyring.Config, cache session.Cache, prompter Prompter, ttl time.Duration) (*secret.Bytes, error) {
	if cached, err := cache.Get(); err != nil {
		return nil, err
	} else if cached != nil {
		return secret.Take(cached), nil
	}

	for attempt := 0; attempt < MaxAttempts; attempt++ {
		passphrase, err := prompter.PromptPassphrase()
		if err != nil {
			return nil, err
		}

		mk, unwrapErr := keyring.Unwrap(cfg, passphrase)
		secret.Wipe(passphrase)
		if unwrapErr != nil {
			continue
		}

		if err := cache.Put(mk.Bytes(), ttl); err != nil {
			mk.Close()
			return nil, err
		}
		return mk, nil
	}

	return nil, ErrAborted
}
