package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// DefaultTTL is the cache lifetime spec.md §4.6 assigns when a caller
// doesn't override it.
const DefaultTTL = 5 * time.Minute

// mkSize is the expected length, in bytes, of a cached Master Key.
const mkSize = 32

// record is the on-disk shape of the session cache file.
type record struct {
	MasterKeyBase64 string `json:"master_key_base64"`
	CachedAt        int64  `json:"cached_at"`
	TTLSeconds      int64  `json:"ttl_seconds"`
}

// FileCache is the filesystem-backed implementation of [Cache].
type FileCache struct {
	path string
}

// NewFileCache resolves the session cache path for the current OS and
// returns a [FileCache] bound to it.
func NewFileCache() (*FileCache, error) {
	path, err := CachePath()
	if err != nil {
		return nil, err
	}
	return &FileCache{path: path}, nil
}

// Put writes mk to the cache file with the given ttl, atomically and with
// owner-only permissions. It is called immediately after a successful
// Master Key unwrap.
func (c *FileCache) Put(mk []byte, ttl time.Duration) error {
	r := record{
		MasterKeyBase64: base64.StdEncoding.EncodeToString(mk),
		CachedAt:        time.Now().Unix(),
		TTLSeconds:      int64(ttl.Seconds()),
	}
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, c.path)
}

// Get returns the cached Master Key, or nil with no error if the cache is
// absent, expired, permission-widened, or malformed — in every such case
// the stale file, if any, is deleted so the next Put starts clean.
func (c *FileCache) Get() ([]byte, error) {
	info, err := os.Stat(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	if runtime.GOOS != "windows" && info.Mode().Perm()&0o077 != 0 {
		c.Invalidate()
		return nil, nil
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		c.Invalidate()
		return nil, nil
	}

	if time.Unix(r.CachedAt, 0).Add(time.Duration(r.TTLSeconds) * time.Second).Before(time.Now()) {
		c.Invalidate()
		return nil, nil
	}

	mk, err := base64.StdEncoding.DecodeString(r.MasterKeyBase64)
	if err != nil || len(mk) != mkSize {
		c.Invalidate()
		return nil, nil
	}
	return mk, nil
}

// Invalidate unconditionally deletes the cache file. It is the
// implementation of `pm lock` and is safe to call when no cache exists.
func (c *FileCache) Invalidate() error {
	err := os.Remove(c.path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
