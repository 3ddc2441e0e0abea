package waitfor

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const probeTimeout = 3 * time.Second

// PostgresProbe returns a probe that reports whether the PostgreSQL
// server behind the DSN accepts connections. Each probe opens a fresh
// handle and pings, so a flapping server is observed accurately; the
// gate never inspects credentials beyond what the DSN carries.
func PostgresProbe(dsn string) Probe {
	return func(ctx context.Context) error {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer db.Close()
		ctx, cancel := context.WithTimeout(ctx, probeTimeout)
		defer cancel()
		return db.PingContext(ctx)
	}
}
