package config

import (
	"reflect"
	"testing"
	"time"
)

func TestMapConfig_Get(t *testing.T) {
	cfg := NewMapConfig(map[string]any{
		"cache": map[string]any{
			"redis": map[string]any{"addr": "localhost:6379"},
		},
		"legacy": map[any]any{"key": "value"},
	})

	if cfg.Get("cache.redis.addr") != "localhost:6379" {
		t.Errorf("expected cache.redis.addr, got %v", cfg.Get("cache.redis.addr"))
	}
	if cfg.Get("legacy.key") != "value" {
		t.Errorf("expected legacy.key to resolve through map[any]any, got %v", cfg.Get("legacy.key"))
	}
	if cfg.Get("cache.redis.addr.deeper") != nil {
		t.Error("expected nil for a path through a scalar")
	}
	if cfg.Has("missing") {
		t.Error("expected Has('missing') = false")
	}
}

func TestMapConfig_GetString(t *testing.T) {
	cfg := NewMapConfig(map[string]any{"name": "artisan", "port": 8080, "empty": nil})

	tests := []struct {
		key      string
		def      []string
		expected string
	}{
		{"name", nil, "artisan"},
		{"port", nil, "8080"},
		{"empty", []string{"x"}, ""},
		{"missing", []string{"fallback"}, "fallback"},
		{"missing", nil, ""},
	}
	for _, tt := range tests {
		if got := cfg.GetString(tt.key, tt.def...); got != tt.expected {
			t.Errorf("GetString(%q): expected %q, got %q", tt.key, tt.expected, got)
		}
	}
}

func TestMapConfig_GetInt(t *testing.T) {
	cfg := NewMapConfig(map[string]any{
		"int":    5,
		"int64":  int64(6),
		"uint64": uint64(7),
		"float":  8.9,
		"string": " 10 ",
		"bool":   true,
		"bad":    "ten",
	})

	tests := map[string]int{"int": 5, "int64": 6, "uint64": 7, "float": 8, "string": 10, "bool": 1, "bad": -1, "missing": -1}
	for key, expected := range tests {
		if got := cfg.GetInt(key, -1); got != expected {
			t.Errorf("GetInt(%q): expected %d, got %d", key, expected, got)
		}
	}
}

func TestMapConfig_GetBool(t *testing.T) {
	cfg := NewMapConfig(map[string]any{
		"yes":  "yes",
		"off":  "OFF",
		"bool": true,
		"one":  1,
		"odd":  "maybe",
	})

	if !cfg.GetBool("yes") || cfg.GetBool("off") || !cfg.GetBool("bool") || !cfg.GetBool("one") {
		t.Error("unexpected boolean conversion")
	}
	if !cfg.GetBool("odd", true) {
		t.Error("expected default for unparsable value")
	}
}

func TestMapConfig_GetDuration(t *testing.T) {
	cfg := NewMapConfig(map[string]any{"text": "250ms", "seconds": 3, "bad": "soon"})

	if got := cfg.GetDuration("text"); got != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", got)
	}
	if got := cfg.GetDuration("seconds"); got != 3*time.Second {
		t.Errorf("expected 3s, got %v", got)
	}
	if got := cfg.GetDuration("bad", time.Minute); got != time.Minute {
		t.Errorf("expected default, got %v", got)
	}
}

func TestMapConfig_GetStringSlice(t *testing.T) {
	cfg := NewMapConfig(map[string]any{
		"csv":   "a, b ,c",
		"list":  []any{"x", 1},
		"plain": []string{"p"},
		"pipe":  "a|b",
	})

	tests := []struct {
		key      string
		sep      []string
		expected []string
	}{
		{"csv", nil, []string{"a", "b", "c"}},
		{"list", nil, []string{"x", "1"}},
		{"plain", nil, []string{"p"}},
		{"pipe", []string{"|"}, []string{"a", "b"}},
		{"missing", nil, nil},
	}
	for _, tt := range tests {
		if got := cfg.GetStringSlice(tt.key, tt.sep...); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("GetStringSlice(%q): expected %v, got %v", tt.key, tt.expected, got)
		}
	}
}

func TestMapConfig_Sub(t *testing.T) {
	cfg := NewMapConfig(map[string]any{
		"database": map[string]any{
			"connections": map[string]any{
				"main": map[string]any{"driver": "sqlite3"},
			},
		},
		"scalar": 1,
	})

	conns, ok := cfg.Sub("database.connections")
	if !ok {
		t.Fatal("expected sub config")
	}
	if !reflect.DeepEqual(conns.Keys(), []string{"main"}) {
		t.Errorf("expected [main], got %v", conns.Keys())
	}
	if conns.GetString("main.driver") != "sqlite3" {
		t.Errorf("expected sqlite3, got %q", conns.GetString("main.driver"))
	}
	if _, ok := cfg.Sub("scalar"); ok {
		t.Error("expected scalar not to produce a sub config")
	}
}

func TestMapConfig_AllReturnsCopy(t *testing.T) {
	cfg := NewMapConfig(map[string]any{"a": 1})
	all := cfg.All()
	all["a"] = 2
	if cfg.GetInt("a") != 1 {
		t.Error("expected All to return a copy")
	}
}
