package models

import (
	"database/sql"
	"time"
)

// Feedback maps to the feedback table.
type Feedback struct {
	ID        string        `db:"id"`
	Name      string        `db:"name"`
	Message   string        `db:"message"`
	Rating    sql.NullInt64 `db:"rating"`
	CreatedAt time.Time     `db:"created_at"`
}
