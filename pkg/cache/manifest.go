package cache

import (
	"cmp"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"slices"

	"github.com/goccy/go-yaml"
)

type Entry struct {
	Base        string `yaml:"base"`
	Pattern     string `yaml:"pattern,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Manifest is a snapshot of the registered commands. Its checksum only
// depends on the entries, so two manifests built from the same commands
// compare equal regardless of registration order.
type Manifest struct {
	Name     string  `yaml:"name"`
	Version  string  `yaml:"version,omitempty"`
	Commands []Entry `yaml:"commands"`
	Checksum string  `yaml:"checksum"`
}

type Store interface {
	Load(ctx context.Context) (*Manifest, error)
	Save(ctx context.Context, manifest *Manifest) error
	Clear(ctx context.Context) error
}

func NewManifest(name, version string, entries []Entry) *Manifest {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Entry) int {
		return cmp.Compare(a.Base, b.Base)
	})

	return &Manifest{
		Name:     name,
		Version:  version,
		Commands: sorted,
		Checksum: Checksum(sorted),
	}
}

func Checksum(entries []Entry) string {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Entry) int {
		return cmp.Compare(a.Base, b.Base)
	})

	h := sha256.New()
	for _, e := range sorted {
		for _, part := range []string{e.Base, e.Pattern, e.Description} {
			h.Write([]byte(part))
			h.Write([]byte{0})
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Stale reports whether the manifest no longer matches entries.
func (m *Manifest) Stale(entries []Entry) bool {
	return m.Checksum != Checksum(entries)
}

func encodeManifest(m *Manifest) ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, ErrEncodeManifest.
			WithDetail("reason", err.Error()).
			WithCause(err)
	}
	return data, nil
}

func decodeManifest(location string, data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, ErrDecodeManifest.
			WithDetail("location", location).
			WithDetail("reason", err.Error()).
			WithCause(err)
	}
	if m.Checksum == "" {
		return nil, ErrDecodeManifest.
			WithDetail("location", location).
			WithDetail("reason", "missing checksum")
	}
	return &m, nil
}
