package config

import "github.com/shuldan/artisan/pkg/errors"

var newConfigCode = errors.WithPrefix("CONFIG")

var (
	ErrReadFile        = newConfigCode().New("failed to read configuration file {{.path}}")
	ErrParseYAML       = newConfigCode().New("failed to parse YAML file {{.path}}: {{.reason}}")
	ErrParseJSON       = newConfigCode().New("failed to parse JSON file {{.path}}: {{.reason}}")
	ErrUnsupportedFile = newConfigCode().New("unsupported configuration file {{.path}}")
)
