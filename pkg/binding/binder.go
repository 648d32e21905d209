package binding

import (
	"slices"
	"strings"

	"github.com/shuldan/artisan/pkg/signature"
)

// Bind matches raw invocation tokens against a parsed signature. Tokens
// starting with '-' are options, everything else is positional.
func Bind(spec signature.Spec, tokens []string) (*Input, error) {
	positional, flags := partition(tokens)

	args, err := bindArguments(spec.Arguments, positional)
	if err != nil {
		return nil, err
	}

	opts, err := bindOptions(spec.Options, flags)
	if err != nil {
		return nil, err
	}

	return &Input{Arguments: args, Options: opts}, nil
}

func partition(tokens []string) (positional, flags []string) {
	for _, token := range tokens {
		if strings.HasPrefix(token, "-") {
			flags = append(flags, token)
		} else {
			positional = append(positional, token)
		}
	}
	return positional, flags
}

func bindArguments(fields []signature.FieldSpec, tokens []string) (Values, error) {
	var values Values
	remaining := slices.Clone(tokens)

	for _, f := range fields {
		if f.Variadic {
			// the field name itself marks where the list starts
			marker := slices.Index(remaining, f.Name)
			if marker < 0 && f.Optional {
				values.set(f.Name, List(nil))
				continue
			}
			if marker < 0 {
				return Values{}, ErrTooFewArguments.WithDetail("name", f.Name)
			}
			values.set(f.Name, List(remaining[marker+1:]))
			remaining = remaining[:marker]
			continue
		}

		if len(remaining) > 0 {
			values.set(f.Name, String(remaining[0]))
			remaining = remaining[1:]
			continue
		}

		if !f.Optional {
			return Values{}, ErrTooFewArguments.WithDetail("name", f.Name)
		}
		values.set(f.Name, defaultValue(f))
	}

	if len(remaining) > 0 {
		return Values{}, ErrTooManyArguments.WithDetail("tokens", strings.Join(remaining, " "))
	}

	return values, nil
}

func bindOptions(fields []signature.FieldSpec, tokens []string) (Values, error) {
	var values Values
	remaining := slices.Clone(tokens)

	for _, f := range fields {
		value := optionDefault(f)

		for i, token := range remaining {
			raw, ok := matchOption(f, token)
			if !ok {
				continue
			}

			if f.NeedsValue {
				if raw == "" {
					return Values{}, ErrTooFewArguments.WithDetail("name", "--"+f.Name)
				}
				value = String(raw)
			} else {
				value = Bool(true)
			}

			remaining = slices.Delete(remaining, i, i+1)
			break
		}

		values.set(f.Name, value)
	}

	if len(remaining) > 0 {
		return Values{}, ErrUnknownOption.WithDetail("option", remaining[0])
	}

	return values, nil
}

// matchOption reports whether token addresses f and returns the raw value
// segment. Grouped short flags such as -abc are not decomposed: only the
// character right after the dash is compared.
func matchOption(f signature.FieldSpec, token string) (string, bool) {
	if strings.HasPrefix(token, "--") {
		name, value, _ := strings.Cut(token[2:], "=")
		if name == f.Name {
			return value, true
		}
		return "", false
	}

	if f.ShortName != "" && len(token) >= 2 && token[1:2] == f.ShortName {
		return token[2:], true
	}

	return "", false
}

func defaultValue(f signature.FieldSpec) Value {
	if f.Default != nil {
		return String(*f.Default)
	}
	return Null()
}

func optionDefault(f signature.FieldSpec) Value {
	if f.NeedsValue {
		return defaultValue(f)
	}
	if f.NullDefault {
		return Null()
	}
	return Bool(false)
}
