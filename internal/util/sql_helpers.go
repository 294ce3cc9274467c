package util

import "database/sql"

// IntToNullInt64 converts an int to sql.NullInt64. Zero is treated as NULL.
func IntToNullInt64(n int) sql.NullInt64 {
	if n == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(n), Valid: true}
}
