package store

import (
	"database/sql"
	"strconv"
	"strings"
)

// nilIfAbsent returns nil for an absent optional string, otherwise its value.
// Used for nullable database columns.
func nilIfAbsent(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// stringPtr converts a scanned nullable column back into an optional string.
func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

// rebindDollar rewrites '?' placeholders as $1, $2, ... for PostgreSQL.
// Queries in this package never contain literal question marks.
func rebindDollar(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
