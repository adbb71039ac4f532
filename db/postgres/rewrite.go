package postgres

import (
	"strconv"
	"strings"
)

// rewritePlaceholders converts `?` positional placeholders to the $1..$N
// ordinals postgres requires, preserving authoring order. Question marks
// inside single-quoted literals ('' escapes included) and double-quoted
// identifiers are left alone.
func rewritePlaceholders(query string) string {
	if !strings.ContainsRune(query, '?') {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch c {
		case '\'', '"':
			quote := c
			b.WriteByte(c)
			for i++; i < len(query); i++ {
				b.WriteByte(query[i])
				if query[i] == quote {
					// '' inside a literal is an escaped quote, not a close
					if quote == '\'' && i+1 < len(query) && query[i+1] == '\'' {
						i++
						b.WriteByte(query[i])
						continue
					}
					break
				}
			}
		case '?':
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// needsReturningID reports whether Execute should append a RETURNING clause
// so the inserted primary key can be surfaced like sqlite's rowid.
func needsReturningID(query string) bool {
	q := strings.ToUpper(strings.TrimSpace(query))
	return strings.HasPrefix(q, "INSERT") && !strings.Contains(q, "RETURNING")
}
