package config

type Loader interface {
	Load() (map[string]any, error)
}

type LoaderFunc func() (map[string]any, error)

func (f LoaderFunc) Load() (map[string]any, error) {
	return f()
}
