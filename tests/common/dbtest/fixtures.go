//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"restaurant-booking/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool, pgx.Tx and *pgx.Conn, so fixtures can
// run inside a test transaction as well as against the pool.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TableID resolves a seeded table number to its id.
func TableID(t *testing.T, conn DBLike, number int) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(context.Background(), "SELECT id FROM tables WHERE number = $1", number).Scan(&id)
	require.NoError(t, err, "table %d is not seeded", number)
	return id
}

func CreateTestCustomer(t *testing.T, conn DBLike, name, email, phone string) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := conn.QueryRow(ctx, `
		INSERT INTO customers (name, email, phone) VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id`, name, strings.ToLower(email), phone).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestReservation inserts a reservation directly, bypassing availability checks.
func CreateTestReservation(t *testing.T, conn DBLike, tableNumber int, customerID int64, date, at string, guests int, status string) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := conn.QueryRow(ctx, `
		INSERT INTO reservations (reservation_date, reservation_time, table_id, customer_id, guest_count, status)
		SELECT $1::date, $2::time, t.id, $3, $4, $5 FROM tables t WHERE t.number = $6
		RETURNING id`, date, at, customerID, guests, status, tableNumber).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountReservations(t *testing.T, conn DBLike) int {
	t.Helper()

	var n int
	err := conn.QueryRow(context.Background(), "SELECT COUNT(*) FROM reservations").Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts the default sections and tables
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return db.Seed(ctx, pool)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
