package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/avdushin/pm/internal/crypto"
	"github.com/avdushin/pm/internal/genpass"
	"github.com/avdushin/pm/internal/session"
)

// defaultStoreDirName is the subdirectory created under the OS user-data
// directory when Store.Root is not overridden.
const defaultStoreDirName = "pm-store"

// Default returns the zero-config baseline: built-in KDF and generator
// defaults, no store-root override, and session.DefaultTTL. It is the
// last source merged in [Load], so it only fills the fields no other
// source set.
func Default() *Config {
	kdf := crypto.DefaultKDFParams()
	return &Config{
		Session: Session{TTL: session.DefaultTTL},
		KDF: KDF{
			TimeCost:      kdf.TimeCost,
			MemoryCostKiB: kdf.MemoryCost,
			Parallelism:   kdf.Parallelism,
		},
		Generator: Generator{Length: genpass.DefaultLength},
	}
}

// KDFParams converts c's KDF section into a [crypto.KDFParams].
func (c Config) KDFParams() crypto.KDFParams {
	return crypto.KDFParams{
		TimeCost:    c.KDF.TimeCost,
		MemoryCost:  c.KDF.MemoryCostKiB,
		Parallelism: c.KDF.Parallelism,
	}
}

// SessionTTL returns the configured session cache TTL.
func (c Config) SessionTTL() time.Duration {
	return c.Session.TTL
}

// StoreRoot returns the store root directory: c.Store.Root if set,
// otherwise <user config dir>/pm-store.
func (c Config) StoreRoot() (string, error) {
	if c.Store.Root != "" {
		return c.Store.Root, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve default store root: %w", err)
	}
	return filepath.Join(dir, defaultStoreDirName), nil
}
