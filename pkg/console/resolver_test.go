package console

import (
	"errors"
	"reflect"
	"testing"
)

func newTestRegistry(t *testing.T, signatures ...string) Registry {
	t.Helper()
	r := NewRegistry()
	for _, sig := range signatures {
		if err := r.Register(newCommand(sig)); err != nil {
			t.Fatalf("register %q: %v", sig, err)
		}
	}
	return r
}

func TestResolve_ExactMatchWins(t *testing.T) {
	r := newTestRegistry(t, "migrate", "migrate:rollback", "seed")

	res, err := Resolve("migrate", r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Entry == nil || res.Entry.Base != "migrate" {
		t.Errorf("expected migrate entry, got %+v", res)
	}
	if len(res.Suggestions) != 0 {
		t.Errorf("expected no suggestions, got %v", res.Suggestions)
	}
}

func TestResolve_PrefixSuggestions(t *testing.T) {
	r := newTestRegistry(t, "seed", "migrate:rollback", "migrate", "migrate:status")

	res, err := Resolve("mig", r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{"migrate", "migrate:rollback", "migrate:status"}
	if res.Entry != nil || !reflect.DeepEqual(res.Suggestions, expected) {
		t.Errorf("expected suggestions %v, got %+v", expected, res)
	}
}

func TestResolve_NamespaceFallback(t *testing.T) {
	r := newTestRegistry(t, "migrate", "migrate:rollback", "seed")

	res, err := Resolve("migrate:foo", r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(res.Suggestions, []string{"migrate:rollback"}) {
		t.Errorf("expected [migrate:rollback], got %v", res.Suggestions)
	}
}

func TestResolve_Unresolved(t *testing.T) {
	r := newTestRegistry(t, "migrate", "migrate:rollback", "seed")

	for _, base := range []string{"xyz", "db:wipe", "seeds"} {
		_, err := Resolve(base, r)
		if !errors.Is(err, ErrUnresolvedCommand) {
			t.Errorf("%s: expected ErrUnresolvedCommand, got %v", base, err)
		}
	}
}

func TestSuggest(t *testing.T) {
	bases := []string{"seed", "migrate:status", "migrate", "migrate:rollback"}

	tests := []struct {
		base     string
		expected []string
	}{
		{"m", []string{"migrate", "migrate:rollback", "migrate:status"}},
		{"migrate:", []string{"migrate:rollback", "migrate:status"}},
		{"migrate:r", []string{"migrate:rollback"}},
		{"migrate:x", []string{"migrate:rollback", "migrate:status"}},
		{"s", []string{"seed"}},
		{"q", nil},
		{":x", nil},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			if got := Suggest(tt.base, bases); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSuggest_EverySuggestionHasThePrefix(t *testing.T) {
	bases := []string{"a", "ab", "abc", "b", "ba", "a:b", "a:c"}
	for _, base := range []string{"a", "ab", "b", "a:"} {
		got := Suggest(base, bases)
		for i, s := range got {
			if len(s) < len(base) || s[:len(base)] != base {
				t.Errorf("%q: suggestion %q lacks the prefix", base, s)
			}
			if i > 0 && got[i-1] > s {
				t.Errorf("%q: suggestions not sorted: %v", base, got)
			}
		}
	}
}
