package signature

import (
	"strings"
	"unicode"
)

// GlobalOptions is merged into the pattern of every command.
const GlobalOptions = `{--h|help: Show help of a command} {--v|verbose: Get verbose output}`

// Global is the parsed form of GlobalOptions.
var Global = MustParse(GlobalOptions)

// Split separates a signature into its base (the first word) and its
// pattern (everything after it).
func Split(signature string) (base, pattern string) {
	s := strings.TrimSpace(signature)
	idx := strings.IndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return s, ""
	}
	return s[:idx], strings.TrimSpace(s[idx:])
}

// Parse scans text for {...} clauses. Anything outside braces, including the
// base word of a full signature, is ignored.
func Parse(text string) (Spec, error) {
	var spec Spec

	for i := 0; i < len(text); i++ {
		if text[i] != '{' {
			continue
		}

		field, next, err := scanField(text, i+1)
		if err != nil {
			return Spec{}, err
		}
		if err = spec.add(field, i); err != nil {
			return Spec{}, err
		}
		i = next
	}

	return spec, nil
}

func MustParse(text string) Spec {
	spec, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return spec
}

// scanField reads one clause starting right after its '{' and returns the
// field together with the index of the closing '}'.
func scanField(text string, start int) (FieldSpec, int, error) {
	var (
		field      FieldSpec
		ident      strings.Builder
		singleDash bool
	)

	i := skipSpaces(text, start)

	if i < len(text) && text[i] == '-' {
		field.Kind = Flag
		field.Optional = true
		i++
		if i < len(text) && text[i] == '-' {
			i++
		} else {
			singleDash = true
		}
	}

	for ; i < len(text); i++ {
		c := text[i]

		switch {
		case c == '}':
			f, err := finishField(field, ident.String(), singleDash, start)
			return f, i, err
		case isIdentChar(c):
			ident.WriteByte(c)
		case c == '|':
			if field.Kind != Flag {
				return FieldSpec{}, i, malformed(i, "alias on a positional argument")
			}
			field.ShortName = ident.String()
			ident.Reset()
		case c == '=':
			value, end := scanDefault(text, i+1)
			field.HasDefault = true
			field.Default = nil
			if value != "" {
				field.Default = &value
			}
			if field.Kind == Flag {
				field.NeedsValue = true
			} else {
				field.Optional = true
			}
			i = end - 1
		case c == '?':
			field.Optional = true
			field.Default = nil
			if field.Kind == Flag {
				field.NullDefault = true
			}
		case c == '*':
			if field.Kind == Positional {
				field.Variadic = true
			}
		case c == ':':
			end := strings.IndexByte(text[i+1:], '}')
			if end < 0 {
				return FieldSpec{}, len(text), malformed(start, "missing closing brace")
			}
			description := strings.TrimSpace(text[i+1 : i+1+end])
			field.Description = &description
			i += end
		}
	}

	return FieldSpec{}, len(text), malformed(start, "missing closing brace")
}

func finishField(field FieldSpec, name string, singleDash bool, position int) (FieldSpec, error) {
	if name == "" {
		return FieldSpec{}, malformed(position, "missing name")
	}
	if len(field.ShortName) > 1 {
		return FieldSpec{}, malformed(position, "alias "+field.ShortName+" must be a single character")
	}
	if singleDash && field.ShortName == "" && len(name) == 1 {
		field.ShortName = name
	}

	field.Name = name
	return field, nil
}

// scanDefault reads a default value up to the closing brace or whitespace
// and returns the index of the terminating character.
func scanDefault(text string, start int) (string, int) {
	i := start
	for i < len(text) && text[i] != '}' && !isSpace(text[i]) {
		i++
	}
	return text[start:i], i
}

func skipSpaces(text string, i int) int {
	for i < len(text) && isSpace(text[i]) {
		i++
	}
	return i
}

func isIdentChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func malformed(position int, reason string) error {
	return ErrMalformedSignature.
		WithDetail("position", position).
		WithDetail("reason", reason)
}
