// Package fsxlocal keeps files on local disk. It backs development setups
// that run without an object storage bucket.
package fsxlocal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Abraxas-365/pathway/pkg/fsx"
)

type LocalFileSystem struct {
	root string
}

func NewLocalFileSystem(root string) fsx.FileSystem {
	return &LocalFileSystem{root: root}
}

func (l *LocalFileSystem) Join(elem ...string) string {
	return filepath.ToSlash(filepath.Join(elem...))
}

// resolve maps a storage path under root, refusing paths that escape it
func (l *LocalFileSystem) resolve(p string) (string, error) {
	root := filepath.Clean(l.root)
	clean := filepath.Clean("/" + filepath.FromSlash(p))
	full := filepath.Join(root, clean)
	if root != "." && full != root && !strings.HasPrefix(full, root+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes storage root", p)
	}
	return full, nil
}

func (l *LocalFileSystem) WriteFile(ctx context.Context, p string, data []byte) error {
	full, err := l.resolve(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}

func (l *LocalFileSystem) WriteFileStream(ctx context.Context, p string, r io.Reader) error {
	full, err := l.resolve(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	f, err := os.Create(full)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (l *LocalFileSystem) ReadFile(ctx context.Context, p string) ([]byte, error) {
	full, err := l.resolve(p)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fsx.ErrNotFound
	}
	return data, err
}

func (l *LocalFileSystem) DeleteFile(ctx context.Context, p string) error {
	full, err := l.resolve(p)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
