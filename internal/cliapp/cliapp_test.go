package cliapp

import (
	"testing"

	"github.com/avdushin/pm/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_ListsAllSubcommands(t *testing.T) {
	app := New(config.Default())
	cmd := app.Command()

	names := map[string]bool{}
	for _, c := range cmd.Commands {
		names[c.Name] = true
	}

	for _, want := range []string{"init", "add", "show", "ls", "rm", "clip", "otp", "backup", "lock"} {
		assert.True(t, names[want], "missing command %q", want)
	}
}

func TestOtpCommand_HasAddShowClip(t *testing.T) {
	app := New(config.Default())
	otp := app.otpCommand()

	names := map[string]bool{}
	for _, c := range otp.Commands {
		names[c.Name] = true
	}
	assert.True(t, names["add"])
	assert.True(t, names["show"])
	assert.True(t, names["clip"])
}

func TestBackupCommand_HasCreateAndLock(t *testing.T) {
	app := New(config.Default())
	backup := app.backupCommand()

	names := map[string]bool{}
	for _, c := range backup.Commands {
		names[c.Name] = true
	}
	assert.True(t, names["create"])
	assert.True(t, names["lock"])
}

func TestOtpFromRaw_DetectsURIvsSecret(t *testing.T) {
	o, err := otpFromRaw("GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ")
	require.NoError(t, err)
	assert.NotEmpty(t, o.Secret)

	o, err = otpFromRaw("otpauth://totp/Example:alice?secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ&issuer=Example")
	require.NoError(t, err)
	assert.Equal(t, "Example", o.Issuer)
}
