package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// fileLoader reads every existing file in order and merges them, so a local
// override file can follow the shared one. Missing files are skipped.
type fileLoader struct {
	paths []string
}

func (l *fileLoader) Load() (map[string]any, error) {
	final := make(map[string]any)

	for _, path := range l.paths {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, ErrReadFile.WithDetail("path", path).WithCause(err)
		}

		values, err := decodeFile(path, data)
		if err != nil {
			return nil, err
		}
		mergeMaps(final, values)
	}

	return final, nil
}

func decodeFile(path string, data []byte) (map[string]any, error) {
	var values map[string]any

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.UnmarshalWithOptions(data, &values, yaml.UseJSONUnmarshaler()); err != nil {
			return nil, ErrParseYAML.
				WithDetail("path", path).
				WithDetail("reason", err.Error()).
				WithCause(err)
		}
	case ".json":
		if err := json.Unmarshal(data, &values); err != nil {
			return nil, ErrParseJSON.
				WithDetail("path", path).
				WithDetail("reason", err.Error()).
				WithCause(err)
		}
	default:
		return nil, ErrUnsupportedFile.WithDetail("path", path)
	}

	if values == nil {
		values = make(map[string]any)
	}
	return values, nil
}
