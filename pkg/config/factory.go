package config

var (
	_ Loader = (*envLoader)(nil)
	_ Loader = (*fileLoader)(nil)
	_ Loader = (*chainLoader)(nil)
)

func NewEnvLoader(prefix string) Loader {
	return &envLoader{prefix: prefix, environ: defaultEnviron}
}

// NewFileLoader reads YAML (.yaml, .yml) and JSON (.json) files.
func NewFileLoader(paths ...string) Loader {
	return &fileLoader{paths: paths}
}

func NewChainLoader(loaders ...Loader) Loader {
	return &chainLoader{loaders: loaders}
}

func NewMapConfig(values map[string]any) Config {
	if values == nil {
		values = make(map[string]any)
	}
	return &MapConfig{values: values}
}

// Load reads the given files and then the environment variables carrying
// envPrefix, in that order of precedence.
func Load(envPrefix string, paths ...string) (Config, error) {
	values, err := NewChainLoader(NewFileLoader(paths...), NewEnvLoader(envPrefix)).Load()
	if err != nil {
		return nil, err
	}
	return NewMapConfig(values), nil
}
