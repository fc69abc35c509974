package config

import "time"

// Config is the top-level configuration container for pm. It is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
type Config struct {
	// Store holds store-root and path settings.
	Store Store `envPrefix:"STORE_"`

	// Session holds session-cache settings.
	Session Session `envPrefix:"SESSION_"`

	// KDF holds the Argon2id defaults applied at `pm init`.
	KDF KDF `envPrefix:"KDF_"`

	// Generator holds the default password-generation policy.
	Generator Generator `envPrefix:"GENERATOR_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the PM_CONFIG environment variable or -c/-config flag.
	JSONFilePath string `env:"PM_CONFIG"`
}

// Store holds the on-disk location of the vault.
type Store struct {
	// Root overrides the default user-data-dir/pm-store location.
	// Env: STORE_ROOT
	Root string `env:"ROOT"`
}

// Session holds session-cache behavior.
type Session struct {
	// TTL is how long an unlocked Master Key stays cached. Zero means
	// unset; [Default] fills in session.DefaultTTL.
	// Env: SESSION_TTL
	TTL time.Duration `env:"TTL"`
}

// KDF holds the Argon2id cost parameters applied when a new store is
// initialized. Existing stores keep whatever parameters their config.json
// already records; these only take effect at `pm init`.
type KDF struct {
	// TimeCost is the Argon2id time cost (number of passes).
	// Env: KDF_TIME_COST
	TimeCost uint32 `env:"TIME_COST"`

	// MemoryCostKiB is the Argon2id memory cost in kibibytes.
	// Env: KDF_MEMORY_COST_KIB
	MemoryCostKiB uint32 `env:"MEMORY_COST_KIB"`

	// Parallelism is the Argon2id thread count.
	// Env: KDF_PARALLELISM
	Parallelism uint8 `env:"PARALLELISM"`
}

// Generator holds the password-generation settings `pm add` applies when
// the password prompt is left blank.
type Generator struct {
	// Length is the default generated password length.
	// Env: GENERATOR_LENGTH
	Length int `env:"LENGTH"`
}
