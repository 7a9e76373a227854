package utils

import "database/sql"

// NullStringOr returns the string held by a sql.NullString, or the
// fallback when the column was NULL.
func NullStringOr(ns sql.NullString, fallback string) string {
	if ns.Valid {
		return ns.String
	}
	return fallback
}
