package config

import (
	"os"
	"strconv"
	"strings"
)

// envLoader maps PREFIX_CACHE__REDIS__ADDR=... to cache.redis.addr.
type envLoader struct {
	prefix  string
	environ func() []string
}

func (l *envLoader) Load() (map[string]any, error) {
	values := make(map[string]any)

	for _, env := range l.environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(key, l.prefix) {
			continue
		}

		configKey := strings.ToLower(strings.TrimPrefix(key, l.prefix))
		configKey = strings.ReplaceAll(configKey, "__", ".")
		if configKey == "" {
			continue
		}

		setNested(values, configKey, typedValue(value))
	}

	return values, nil
}

func typedValue(value string) any {
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	if i, err := strconv.Atoi(value); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}

func setNested(m map[string]any, key string, value any) {
	keys := strings.Split(key, ".")
	last := len(keys) - 1

	current := m
	for i, k := range keys {
		if i == last {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[k] = next
		}
		current = next
	}
}

func defaultEnviron() []string {
	return os.Environ()
}
