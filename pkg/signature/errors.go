package signature

import "github.com/shuldan/artisan/pkg/errors"

var newSignatureCode = errors.WithPrefix("SIGNATURE")

var (
	ErrMalformedSignature = newSignatureCode().New("malformed signature near position {{.position}}: {{.reason}}")
)
