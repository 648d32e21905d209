package console

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shuldan/artisan/pkg/output"
	"github.com/shuldan/artisan/pkg/signature"
)

func renderHelp(w *output.Writer, entry *Entry) {
	descriptions := entry.Spec.Descriptions()

	if d := entry.Command.Description(); d != "" {
		w.Title("Description:")
		w.Line("  %s", d)
		w.Newline()
	}

	w.Title("Usage:")
	w.Line("  %s", usage(entry))

	if len(entry.Spec.Arguments) > 0 {
		w.Newline()
		w.Title("Arguments:")
		for i, f := range entry.Spec.Arguments {
			w.KeyValue(f.Name, withDefault(descriptions.Arguments[i].Text(), f))
		}
	}

	if len(entry.Spec.Options) > 0 {
		w.Newline()
		w.Title("Options:")
		for i, f := range entry.Spec.Options {
			w.KeyValue(optionLabel(f), withDefault(descriptions.Options[i].Text(), f))
		}
	}
}

func usage(entry *Entry) string {
	parts := []string{entry.Base}
	if len(entry.Spec.Options) > 0 {
		parts = append(parts, "[options]")
	}
	for _, f := range entry.Spec.Arguments {
		switch {
		case f.Variadic:
			parts = append(parts, fmt.Sprintf("%s <%s>...", f.Name, f.Name))
		case f.Optional:
			parts = append(parts, "[<"+f.Name+">]")
		default:
			parts = append(parts, "<"+f.Name+">")
		}
	}
	return strings.Join(parts, " ")
}

func optionLabel(f signature.FieldSpec) string {
	label := "--" + f.Name
	if f.NeedsValue {
		label += "=" + strings.ToUpper(f.Name)
	}
	if f.ShortName != "" {
		return "-" + f.ShortName + ", " + label
	}
	return "    " + label
}

func withDefault(text string, f signature.FieldSpec) string {
	if f.Default == nil {
		return text
	}
	suffix := fmt.Sprintf("[default: %q]", *f.Default)
	if text == "" {
		return suffix
	}
	return text + " " + suffix
}

// renderList prints the registered commands grouped by namespace. An empty
// namespace lists every group.
func renderList(w *output.Writer, registry Registry, namespace string) error {
	groups := registry.Groups()
	if namespace != "" {
		entries, ok := groups[namespace]
		if !ok {
			return ErrUnresolvedCommand.WithDetail("command", namespace+":")
		}
		groups = map[string][]*Entry{namespace: entries}
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == defaultGroup || names[j] == defaultGroup {
			return names[i] == defaultGroup && names[j] != defaultGroup
		}
		return names[i] < names[j]
	})

	w.Title("Usage:")
	w.Line("  command [options] [arguments]")
	w.Newline()
	w.Title("Available commands:")
	for _, name := range names {
		w.Title(" " + name)
		for _, entry := range groups[name] {
			w.KeyValue(entry.Base, entry.Command.Description())
		}
	}
	return nil
}
