package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// withConn runs fn on a dedicated pooled connection and returns it to the
// pool on every exit path.
func withConn(ctx context.Context, db *sql.DB, fn func(conn *sql.Conn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	return fn(conn)
}
