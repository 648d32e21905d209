package console

import (
	"context"

	"github.com/shuldan/artisan/pkg/cache"
)

type listCommand struct {
	BaseCommand
	registry Registry
}

func (c *listCommand) Signature() string {
	return "list {namespace?: Only list the commands of this namespace}"
}

func (c *listCommand) Description() string {
	return "List commands"
}

func (c *listCommand) Handle(context.Context) error {
	ns, _ := c.Argument("namespace")
	return renderList(c.Output(), c.registry, ns.String())
}

type cacheCommand struct {
	BaseCommand
	registry Registry
	store    cache.Store
	config   Config
}

func (c *cacheCommand) Signature() string {
	return "cache {--clear: Remove the cached command manifest}"
}

func (c *cacheCommand) Description() string {
	return "Cache the list of registered commands"
}

func (c *cacheCommand) Handle(ctx context.Context) error {
	if clearOpt, _ := c.Option("clear"); clearOpt.Bool() {
		if err := c.store.Clear(ctx); err != nil {
			return err
		}
		c.Info("Command cache cleared.")
		return nil
	}

	manifest := buildManifest(c.config, c.registry)
	if err := c.store.Save(ctx, manifest); err != nil {
		return err
	}
	c.Info("Cached %d commands.", len(manifest.Commands))
	c.Verbose("checksum %s", manifest.Checksum)
	return nil
}

func buildManifest(cfg Config, registry Registry) *cache.Manifest {
	return cache.NewManifest(cfg.Name, cfg.Version, manifestEntries(registry))
}

func manifestEntries(registry Registry) []cache.Entry {
	all := registry.All()
	entries := make([]cache.Entry, 0, len(all))
	for _, e := range all {
		entries = append(entries, cache.Entry{
			Base:        e.Base,
			Pattern:     e.Pattern,
			Description: e.Command.Description(),
		})
	}
	return entries
}
