package store

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/avdushin/pm/internal/crypto"
	"github.com/avdushin/pm/internal/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMK(t *testing.T) []byte {
	t.Helper()
	mk := make([]byte, crypto.KeySize)
	for i := range mk {
		mk[i] = byte(i)
	}
	return mk
}

func TestCreateThenRead_RoundTrip(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	mk := testMK(t)

	e := vault.New("work/github")
	e.Username = "alice"
	e.Password = "hunter2"
	require.NoError(t, s.Create(mk, e, false))

	got, err := s.Read(mk, "work/github")
	require.NoError(t, err)
	assert.Equal(t, e.Title, got.Title)
	assert.Equal(t, e.Username, got.Username)
	assert.Equal(t, e.Password, got.Password)
}

func TestCreate_RejectsDuplicateWithoutOverwrite(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	mk := testMK(t)

	e := vault.New("demo")
	require.NoError(t, s.Create(mk, e, false))
	err = s.Create(mk, e, false)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestCreate_OverwriteSucceeds(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	mk := testMK(t)

	e := vault.New("demo")
	require.NoError(t, s.Create(mk, e, false))

	e.Password = "newpass"
	require.NoError(t, s.Create(mk, e, true))

	got, err := s.Read(mk, "demo")
	require.NoError(t, err)
	assert.Equal(t, "newpass", got.Password)
}

func TestCreate_RejectsPathTraversal(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	mk := testMK(t)

	for _, name := range []string{"../etc/passwd", "/etc/passwd", "a/../../b", "a/../b", ""} {
		e := vault.New(name)
		err := s.Create(mk, e, false)
		assert.ErrorIsf(t, err, ErrInvalidName, "name %q", name)
	}
}

func TestCreate_RejectsCaseCollision(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	mk := testMK(t)

	require.NoError(t, s.Create(mk, vault.New("Demo"), false))
	err = s.Create(mk, vault.New("demo"), false)
	assert.ErrorIs(t, err, ErrCaseCollision)
}

func TestRead_MissingEntry(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	_, err = s.Read(testMK(t), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRead_WrongKeyFailsDecrypt(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	mk := testMK(t)
	require.NoError(t, s.Create(mk, vault.New("demo"), false))

	wrongMK := make([]byte, crypto.KeySize)
	_, err = s.Read(wrongMK, "demo")
	assert.ErrorIs(t, err, crypto.ErrDecryptFailure)
}

func TestRead_TamperedCiphertextFailsDecrypt(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	mk := testMK(t)
	require.NoError(t, s.Create(mk, vault.New("demo"), false))

	path := filepath.Join(dir, "store", "demo.enc")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data[len(data)-5] ^= 0xFF
	require.NoError(t, os.WriteFile(path, data, 0o600))

	_, err = s.Read(mk, "demo")
	assert.ErrorIs(t, err, crypto.ErrDecryptFailure)
}

func TestDelete_RemovesEntryAndPrunesEmptyDirs(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	mk := testMK(t)
	require.NoError(t, s.Create(mk, vault.New("work/personal/github"), false))

	require.NoError(t, s.Delete("work/personal/github"))

	_, err = s.Read(mk, "work/personal/github")
	assert.ErrorIs(t, err, ErrNotFound)

	_, statErr := os.Stat(filepath.Join(dir, "store", "work", "personal"))
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(filepath.Join(dir, "store", "work"))
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(filepath.Join(dir, "store"))
	assert.NoError(t, statErr)
}

func TestDelete_MissingEntry(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	assert.ErrorIs(t, s.Delete("nope"), ErrNotFound)
}

func TestList_PrefixFilter(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	mk := testMK(t)

	for _, name := range []string{"work/github", "work/gitlab", "personal/email"} {
		require.NoError(t, s.Create(mk, vault.New(name), false))
	}

	all, err := s.List("")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"work/github", "work/gitlab", "personal/email"}, all)

	work, err := s.List("work")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"work/github", "work/gitlab"}, work)
}

func TestList_EmptyStore(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	names, err := s.List("")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestCreate_NonceUniquenessAcrossWrites(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	mk := testMK(t)

	e := vault.New("demo")
	require.NoError(t, s.Create(mk, e, false))
	first, err := os.ReadFile(filepath.Join(dir, "store", "demo.enc"))
	require.NoError(t, err)

	e.Touch()
	require.NoError(t, s.Create(mk, e, true))
	second, err := os.ReadFile(filepath.Join(dir, "store", "demo.enc"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestWriteFileAtomic_NoLeftoverTempFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission semantics differ on windows")
	}
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Create(testMK(t), vault.New("demo"), false))

	entries, err := os.ReadDir(filepath.Join(dir, "store"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "demo.enc", entries[0].Name())
}
