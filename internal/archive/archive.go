package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avdushin/pm/internal/store"
)

// archiveWriter abstracts over zip and tar.gz so Create can share one
// copy/manifest routine across both formats.
type archiveWriter interface {
	create(name string, size int64) (io.Writer, error)
	Close() error
}

type zipArchive struct{ w *zip.Writer }

func (z zipArchive) create(name string, _ int64) (io.Writer, error) { return z.w.Create(name) }
func (z zipArchive) Close() error                                   { return z.w.Close() }

type tarGzArchive struct {
	gz *gzip.Writer
	tw *tar.Writer
}

func (t tarGzArchive) create(name string, size int64) (io.Writer, error) {
	if err := t.tw.WriteHeader(&tar.Header{Name: name, Mode: 0o600, Size: size}); err != nil {
		return nil, err
	}
	return t.tw, nil
}

func (t tarGzArchive) Close() error {
	if err := t.tw.Close(); err != nil {
		return err
	}
	return t.gz.Close()
}

// Create writes an archive at destPath containing the vault's
// config.json, every encrypted entry under its entries directory, and a
// manifest.json describing the backup. The format is zip unless destPath
// ends in ".tar.gz". It returns the manifest written.
//
// Create never touches the master key or any decrypted entry data: the
// entry envelopes are copied byte-for-byte from disk.
func Create(s *store.Store, destPath string) (Manifest, error) {
	if !s.HasConfig() {
		return Manifest{}, ErrNoConfig
	}

	out, err := os.OpenFile(destPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return Manifest{}, fmt.Errorf("create archive: %w", err)
	}
	defer out.Close()

	aw := newArchiveWriter(out, destPath)

	files, err := copyConfig(aw, s)
	if err != nil {
		aw.Close()
		return Manifest{}, err
	}

	entryFiles, err := copyEntries(aw, s)
	if err != nil {
		aw.Close()
		return Manifest{}, err
	}
	files = append(files, entryFiles...)

	manifest := newManifest(newIDGenerator(), time.Now(), files)
	if err := writeManifest(aw, manifest); err != nil {
		aw.Close()
		return Manifest{}, err
	}

	if err := aw.Close(); err != nil {
		return Manifest{}, fmt.Errorf("finalize archive: %w", err)
	}
	return manifest, nil
}

func newArchiveWriter(out *os.File, destPath string) archiveWriter {
	if strings.HasSuffix(destPath, ".tar.gz") {
		gz := gzip.NewWriter(out)
		return tarGzArchive{gz: gz, tw: tar.NewWriter(gz)}
	}
	return zipArchive{w: zip.NewWriter(out)}
}

func copyConfig(aw archiveWriter, s *store.Store) ([]string, error) {
	rel := filepath.Base(s.ConfigPath())
	if err := copyFileInto(aw, s.ConfigPath(), rel); err != nil {
		return nil, fmt.Errorf("archive config: %w", err)
	}
	return []string{rel}, nil
}

func copyEntries(aw archiveWriter, s *store.Store) ([]string, error) {
	var files []string
	entriesDir := s.EntriesDir()

	err := filepath.WalkDir(entriesDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.Root(), path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if err := copyFileInto(aw, path, rel); err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("archive entries: %w", err)
	}
	return files, nil
}

func copyFileInto(aw archiveWriter, srcPath, archivePath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return err
	}

	w, err := aw.create(archivePath, info.Size())
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}

func writeManifest(aw archiveWriter, m Manifest) error {
	data, err := m.marshal()
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	w, err := aw.create(manifestName, int64(len(data)))
	if err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	_, err = w.Write(data)
	return err
}
