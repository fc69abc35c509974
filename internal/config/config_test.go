package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNothingSet(t *testing.T) {
	cfg, rest, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default().KDF, cfg.KDF)
	assert.Equal(t, Default().Session.TTL, cfg.Session.TTL)
	assert.Equal(t, Default().Generator.Length, cfg.Generator.Length)
	assert.Empty(t, rest)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	t.Setenv("STORE_ROOT", "/from/env")

	cfg, _, err := Load([]string{"-store", "/from/flag"})
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.Store.Root)
}

func TestLoad_EnvUsedWhenNoFlag(t *testing.T) {
	t.Setenv("STORE_ROOT", "/from/env")

	cfg, _, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Store.Root)
}

func TestLoad_JSONOnlyFillsWhatFlagsAndEnvLeaveZero(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pm.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"store": {"root": "/from/json"},
		"generator": {"length": 32}
	}`), 0o600))

	cfg, _, err := Load([]string{"-c", path, "-store", "/from/flag"})
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.Store.Root, "flag beats json")
	assert.Equal(t, 32, cfg.Generator.Length, "json fills what flags left zero")
}

func TestLoad_SessionTTLFlag(t *testing.T) {
	cfg, _, err := Load([]string{"-session-ttl", "10m"})
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, cfg.Session.TTL)
}

func TestLoad_ReturnsRemainingArgsForDispatch(t *testing.T) {
	_, rest, err := Load([]string{"-store", "/x", "add", "work/github"})
	require.NoError(t, err)
	assert.Equal(t, []string{"add", "work/github"}, rest)
}

func TestKDFParams_ConvertsFromConfig(t *testing.T) {
	cfg, _, err := Load(nil)
	require.NoError(t, err)
	params := cfg.KDFParams()
	assert.Equal(t, cfg.KDF.TimeCost, params.TimeCost)
	assert.Equal(t, cfg.KDF.MemoryCostKiB, params.MemoryCost)
	assert.Equal(t, cfg.KDF.Parallelism, params.Parallelism)
}

func TestStoreRoot_UsesOverrideWhenSet(t *testing.T) {
	cfg := Config{Store: Store{Root: "/explicit/root"}}
	root, err := cfg.StoreRoot()
	require.NoError(t, err)
	assert.Equal(t, "/explicit/root", root)
}

func TestStoreRoot_FallsBackToUserConfigDir(t *testing.T) {
	cfg := Config{}
	root, err := cfg.StoreRoot()
	require.NoError(t, err)

	userDir, err := os.UserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(userDir, "pm-store"), root)
}
