// Package sqlutil provides SQL identifier helpers.
package sqlutil

import (
	"fmt"
	"strings"
)

// QuoteStyle selects the identifier quoting convention of a dialect.
type QuoteStyle string

const (
	// QuoteBacktick quotes as MySQL and TiDB do: `name`.
	QuoteBacktick QuoteStyle = "backtick"
	// QuoteDouble quotes as ANSI SQL, PostgreSQL and SQLite do: "name".
	QuoteDouble QuoteStyle = "double"
)

// ParseQuoteStyle validates a configured quote style.
func ParseQuoteStyle(s string) (QuoteStyle, error) {
	switch style := QuoteStyle(strings.ToLower(strings.TrimSpace(s))); style {
	case QuoteBacktick, QuoteDouble:
		return style, nil
	default:
		return "", fmt.Errorf("unknown quote style %q (want %q or %q)", s, QuoteBacktick, QuoteDouble)
	}
}

// QuoteIdentifier quotes a SQL identifier (table name, column name, etc.)
// with backticks and escapes any backticks within the identifier.
func QuoteIdentifier(name string) string {
	return Quote(name, QuoteBacktick)
}

// Quote quotes a SQL identifier in the given style, doubling any quote
// characters within it. Unknown styles fall back to backticks.
func Quote(name string, style QuoteStyle) string {
	q := "`"
	if style == QuoteDouble {
		q = `"`
	}
	return q + strings.ReplaceAll(name, q, q+q) + q
}
