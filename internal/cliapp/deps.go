package cliapp

import (
	"github.com/avdushin/pm/internal/clip"
	"github.com/avdushin/pm/internal/keyring"
	"github.com/avdushin/pm/internal/prompt"
	"github.com/avdushin/pm/internal/secret"
	"github.com/avdushin/pm/internal/session"
	"github.com/avdushin/pm/internal/store"
	"github.com/avdushin/pm/internal/unlock"
)

// openStore resolves the configured store root and opens it, creating
// the root and its entries directory on first use.
func (a *App) openStore() (*store.Store, error) {
	root, err := a.cfg.StoreRoot()
	if err != nil {
		return nil, err
	}
	return store.Open(root)
}

// unlockMK runs the unlock state machine against s, returning the
// caller-owned Master Key. It requires s to already have a config.json.
func (a *App) unlockMK(s *store.Store) (*secret.Bytes, error) {
	if !s.HasConfig() {
		return nil, ErrNotInitialized
	}

	cfg, err := keyring.ReadConfigFile(s.ConfigPath())
	if err != nil {
		return nil, err
	}

	cache, err := session.NewFileCache()
	if err != nil {
		return nil, err
	}

	prompter := prompt.TerminalPrompter{Title: "Passphrase"}
	return unlock.Unlock(cfg, cache, prompter, a.cfg.SessionTTL())
}

// clipper returns a Clipper configured with the default clipboard timeout.
func (a *App) clipper() *clip.Clipper {
	return clip.New()
}
