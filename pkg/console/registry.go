package console

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/shuldan/artisan/pkg/errors"
	"github.com/shuldan/artisan/pkg/signature"
)

const defaultGroup = "general"

type cmdRegistry struct {
	mutex    sync.RWMutex
	commands map[string]*Entry
}

// Register parses the signature of cmd and stores it under its base name.
// Everything that can be wrong with a signature is reported here, once,
// instead of on every invocation.
func (r *cmdRegistry) Register(cmd Command) error {
	if cmd == nil {
		return ErrCommandRegistration.
			WithDetail("command", "nil").
			WithDetail("reason", "command is nil")
	}

	entry, err := newEntry(cmd)
	if err != nil {
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.commands[entry.Base]; exists {
		return ErrCommandRegistration.
			WithDetail("command", entry.Base).
			WithDetail("reason", "already registered")
	}

	r.commands[entry.Base] = entry
	return nil
}

func (r *cmdRegistry) Get(base string) (*Entry, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	entry, exists := r.commands[base]
	return entry, exists
}

func (r *cmdRegistry) Bases() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	bases := make([]string, 0, len(r.commands))
	for base := range r.commands {
		bases = append(bases, base)
	}
	sort.Strings(bases)
	return bases
}

func (r *cmdRegistry) All() []*Entry {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	entries := make([]*Entry, 0, len(r.commands))
	for _, entry := range r.commands {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Base < entries[j].Base
	})
	return entries
}

func (r *cmdRegistry) Groups() map[string][]*Entry {
	result := make(map[string][]*Entry)
	for _, entry := range r.All() {
		result[entry.Group] = append(result[entry.Group], entry)
	}
	return result
}

func newEntry(cmd Command) (*Entry, error) {
	base, pattern := signature.Split(cmd.Signature())
	if base == "" || strings.ContainsAny(base[:1], "{-") {
		return nil, ErrCommandRegistration.
			WithDetail("command", fmt.Sprintf("%T", cmd)).
			WithDetail("reason", "signature must start with a command name")
	}

	spec, err := signature.Parse(pattern)
	if err != nil {
		return nil, ErrCommandRegistration.
			WithDetail("command", base).
			WithDetail("reason", errors.UserMessage(err)).
			WithCause(err)
	}

	merged := signature.Global.Merge(spec)
	if err = checkAliases(merged); err != nil {
		return nil, ErrCommandRegistration.
			WithDetail("command", base).
			WithDetail("reason", err.Error())
	}

	return &Entry{
		Base:    base,
		Pattern: pattern,
		Group:   groupOf(base),
		Spec:    merged,
		Command: cmd,
	}, nil
}

// checkAliases catches a command alias colliding with a global one, which
// the signature parser cannot see because it parses the pattern alone.
func checkAliases(spec signature.Spec) error {
	seen := make(map[string]string, len(spec.Options))
	for _, o := range spec.Options {
		if o.ShortName == "" {
			continue
		}
		if other, ok := seen[o.ShortName]; ok {
			return fmt.Errorf("alias -%s is used by both --%s and --%s", o.ShortName, other, o.Name)
		}
		seen[o.ShortName] = o.Name
	}
	return nil
}

func groupOf(base string) string {
	if ns, _, ok := strings.Cut(base, ":"); ok && ns != "" {
		return ns
	}
	return defaultGroup
}
