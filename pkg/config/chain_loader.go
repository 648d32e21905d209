package config

import "os"

type chainLoader struct {
	loaders []Loader
}

// Load merges the layers in order; later layers win key by key.
func (c *chainLoader) Load() (map[string]any, error) {
	final := make(map[string]any)

	for _, loader := range c.loaders {
		values, err := loader.Load()
		if err != nil {
			return nil, err
		}
		mergeMaps(final, values)
	}

	return expandValues(final).(map[string]any), nil
}

func mergeMaps(dst, src map[string]any) {
	for k, v := range src {
		if vMap, ok := v.(map[string]any); ok {
			if dstMap, ok := dst[k].(map[string]any); ok {
				mergeMaps(dstMap, vMap)
				continue
			}
		}
		dst[k] = v
	}
}

// expandValues replaces ${VAR} references in string values with the
// environment, so secrets like DSN passwords stay out of the files.
func expandValues(v any) any {
	switch val := v.(type) {
	case string:
		return os.ExpandEnv(val)
	case map[string]any:
		for k, item := range val {
			val[k] = expandValues(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = expandValues(item)
		}
		return val
	default:
		return val
	}
}
