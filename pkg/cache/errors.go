package cache

import "github.com/shuldan/artisan/pkg/errors"

var newCacheCode = errors.WithPrefix("CACHE")

var (
	ErrManifestNotFound = newCacheCode().New("command manifest not found in {{.location}}")
	ErrReadManifest     = newCacheCode().New("failed to read command manifest from {{.location}}")
	ErrWriteManifest    = newCacheCode().New("failed to write command manifest to {{.location}}")
	ErrDecodeManifest   = newCacheCode().New("command manifest in {{.location}} is corrupt: {{.reason}}")
	ErrEncodeManifest   = newCacheCode().New("failed to encode command manifest: {{.reason}}")
	ErrUnknownDriver    = newCacheCode().New("unknown cache driver {{.driver}}")
)
