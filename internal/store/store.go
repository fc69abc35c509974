package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/avdushin/pm/internal/crypto"
	"github.com/avdushin/pm/internal/keyring"
	"github.com/avdushin/pm/internal/vault"
)

// Store is a filesystem-backed collection of encrypted entries rooted at
// a single directory: config.json at the root, one envelope file per
// entry under store/.
type Store struct {
	root string
}

// Open returns a Store rooted at root, creating the root and its store/
// subdirectory if they do not yet exist.
func Open(root string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(root, entriesDir), 0o700); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &Store{root: root}, nil
}

// ConfigPath returns the path of the store's config.json.
func (s *Store) ConfigPath() string {
	return filepath.Join(s.root, keyring.ConfigFileName)
}

// HasConfig reports whether the store has already been initialized.
func (s *Store) HasConfig() bool {
	_, err := os.Stat(s.ConfigPath())
	return err == nil
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// EntriesDir returns the directory holding encrypted entry envelopes.
func (s *Store) EntriesDir() string {
	return filepath.Join(s.root, entriesDir)
}

func (s *Store) absPath(name string) (string, error) {
	segments, err := normalizeName(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, filepath.FromSlash(relFilePath(segments))), nil
}

// Create seals e under mk and writes it as name's envelope file. If an
// entry with the same name already exists and overwrite is false, it
// fails with [ErrAlreadyExists]. Create also rejects a name that would
// collide with an existing entry under a different case, since a
// case-insensitive host filesystem cannot otherwise tell them apart.
func (s *Store) Create(mk []byte, e vault.Entry, overwrite bool) error {
	abs, err := s.absPath(e.Title)
	if err != nil {
		return err
	}

	if !overwrite {
		if _, err := os.Stat(abs); err == nil {
			return ErrAlreadyExists
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	if collides, err := s.caseCollides(e.Title); err != nil {
		return err
	} else if collides {
		return ErrCaseCollision
	}

	plaintext, err := vault.Marshal(e)
	if err != nil {
		return err
	}
	sealed, err := crypto.Seal(mk, plaintext)
	if err != nil {
		return err
	}
	data, err := encodeEnvelope(sealed.Nonce, sealed.Ciphertext)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0o700); err != nil {
		return fmt.Errorf("create entry dirs: %w", err)
	}
	return writeFileAtomic(abs, data, 0o600)
}

// caseCollides reports whether name, compared case-insensitively, matches
// an existing entry other than name itself.
func (s *Store) caseCollides(name string) (bool, error) {
	names, err := s.List("")
	if err != nil {
		return false, err
	}
	lower := strings.ToLower(name)
	for _, n := range names {
		if n != name && strings.ToLower(n) == lower {
			return true, nil
		}
	}
	return false, nil
}

// Read decrypts and returns the entry named name. It fails with
// [ErrNotFound] if no such entry exists, or with
// [crypto.ErrDecryptFailure] if its envelope file is malformed or mk
// cannot open it.
func (s *Store) Read(mk []byte, name string) (vault.Entry, error) {
	abs, err := s.absPath(name)
	if err != nil {
		return vault.Entry{}, err
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return vault.Entry{}, ErrNotFound
		}
		return vault.Entry{}, err
	}

	nonce, ciphertext, err := decodeEnvelope(data)
	if err != nil {
		return vault.Entry{}, fmt.Errorf("%w: %w", crypto.ErrDecryptFailure, err)
	}
	plaintext, err := crypto.Open(mk, nonce, ciphertext)
	if err != nil {
		return vault.Entry{}, err
	}
	return vault.Unmarshal(plaintext)
}

// Delete removes the entry named name and prunes any parent directory
// left empty by the removal, up to (but not including) the store root.
func (s *Store) Delete(name string) error {
	abs, err := s.absPath(name)
	if err != nil {
		return err
	}

	if err := os.Remove(abs); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return err
	}

	root := filepath.Join(s.root, entriesDir)
	for dir := filepath.Dir(abs); dir != root && strings.HasPrefix(dir, root); dir = filepath.Dir(dir) {
		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			break
		}
		if err := os.Remove(dir); err != nil {
			break
		}
	}
	return nil
}

// List returns the names of every entry in the store, optionally
// filtered to those starting with "<prefix>/". An empty prefix returns
// every name. The result is a materialized, sorted-by-walk-order slice;
// spec.md §4.5 permits a lazy sequence, but callers here always want the
// full set, so List produces it directly.
func (s *Store) List(prefix string) ([]string, error) {
	root := filepath.Join(s.root, entriesDir)
	var names []string

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(p, entrySuffix) {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.ToSlash(rel), entrySuffix)
		names = append(names, name)
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	if prefix == "" {
		return names, nil
	}
	want := prefix + "/"
	filtered := names[:0]
	for _, n := range names {
		if strings.HasPrefix(n, want) {
			filtered = append(filtered, n)
		}
	}
	return filtered, nil
}

// writeFileAtomic writes data to path via a temp file in the same
// directory, fsynced and renamed over path, so readers never observe a
// torn write.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp entry: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp entry: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp entry: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp entry: %w", err)
	}
	return os.Rename(tmpName, path)
}
