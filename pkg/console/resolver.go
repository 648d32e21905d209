package console

import (
	"slices"
	"strings"
)

// Resolve finds the command registered under base. When there is none, the
// resolution carries the bases base could be short for; an error is only
// returned when there is nothing to suggest either.
func Resolve(base string, registry Registry) (Resolution, error) {
	if entry, ok := registry.Get(base); ok {
		return Resolution{Entry: entry}, nil
	}

	suggestions := Suggest(base, registry.Bases())
	if len(suggestions) == 0 {
		return Resolution{}, ErrUnresolvedCommand.WithDetail("command", base)
	}
	return Resolution{Suggestions: suggestions}, nil
}

// Suggest returns the sorted bases starting with base. A namespaced request
// such as "migrate:foo" with no match falls back to everything under
// "migrate:".
func Suggest(base string, bases []string) []string {
	matches := withPrefix(base, bases)
	if len(matches) == 0 {
		if ns, _, ok := strings.Cut(base, ":"); ok && ns != "" {
			matches = withPrefix(ns+":", bases)
		}
	}
	slices.Sort(matches)
	return matches
}

func withPrefix(prefix string, bases []string) []string {
	var matches []string
	for _, b := range bases {
		if strings.HasPrefix(b, prefix) {
			matches = append(matches, b)
		}
	}
	return matches
}
