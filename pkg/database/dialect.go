package database

import (
	"strconv"
	"strings"
)

// Rebind rewrites ? placeholders into the form the driver expects. Only
// postgres needs numbered $n placeholders; quoted text is left untouched.
func Rebind(driver, query string) string {
	if sqlDriver(driver) != "postgres" {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	var quote byte
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '?':
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
