package cache

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

type fileStore struct {
	path string
}

func (s *fileStore) Load(ctx context.Context) (*Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrManifestNotFound.WithDetail("location", s.path)
	}
	if err != nil {
		return nil, ErrReadManifest.WithDetail("location", s.path).WithCause(err)
	}

	return decodeManifest(s.path, data)
}

// Save writes to a temporary file next to the target and renames it, so a
// concurrent Load never sees a partial manifest.
func (s *fileStore) Save(ctx context.Context, manifest *Manifest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeManifest(manifest)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return ErrWriteManifest.WithDetail("location", s.path).WithCause(err)
	}

	tmp, err := os.CreateTemp(dir, ".manifest-*")
	if err != nil {
		return ErrWriteManifest.WithDetail("location", s.path).WithCause(err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return ErrWriteManifest.WithDetail("location", s.path).WithCause(err)
	}
	if err = tmp.Close(); err != nil {
		return ErrWriteManifest.WithDetail("location", s.path).WithCause(err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return ErrWriteManifest.WithDetail("location", s.path).WithCause(err)
	}
	return nil
}

func (s *fileStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ErrWriteManifest.WithDetail("location", s.path).WithCause(err)
	}
	return nil
}
