package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

// Tables counted by the diagnostics endpoint.
const (
	TableStudents    = "students"
	TableCourses     = "courses"
	TableEnrollments = "enrollments"
	TableDepartments = "departments"
)

// EntityCounts holds one row count per domain table. The counts are taken
// independently and are not a consistent snapshot.
type EntityCounts struct {
	Students    int64
	Courses     int64
	Enrollments int64
	Departments int64
}

// StatsRepository answers the database questions of the diagnostics endpoint.
type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

// Ping acquires a connection and round-trips to the server.
func (r *StatsRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// ServerVersion returns the version string reported by the server.
func (r *StatsRepository) ServerVersion(ctx context.Context) (string, error) {
	var version string
	if err := r.pool.QueryRow(ctx, "SHOW server_version").Scan(&version); err != nil {
		return "", fmt.Errorf("reading server version: %w", err)
	}
	return version, nil
}

// Count returns the number of rows in table.
func (r *StatsRepository) Count(ctx context.Context, table string) (int64, error) {
	n, err := count(ctx, r.pool, psql.Select("COUNT(*)").From(table))
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}
	return n, nil
}

// Counts counts all four domain tables concurrently. The first failure
// cancels the remaining queries and is returned.
func (r *StatsRepository) Counts(ctx context.Context) (EntityCounts, error) {
	return countTables(ctx, r.Count)
}

func countTables(ctx context.Context, count func(context.Context, string) (int64, error)) (EntityCounts, error) {
	var c EntityCounts
	targets := []struct {
		table string
		dst   *int64
	}{
		{TableStudents, &c.Students},
		{TableCourses, &c.Courses},
		{TableEnrollments, &c.Enrollments},
		{TableDepartments, &c.Departments},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range targets {
		g.Go(func() error {
			n, err := count(gctx, t.table)
			if err != nil {
				return err
			}
			*t.dst = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return EntityCounts{}, err
	}
	return c, nil
}

// IsEmpty reports whether table has no rows. db may be a pool or a transaction.
func IsEmpty(ctx context.Context, db DBTX, table string) (bool, error) {
	sql, args, err := psql.Select("1").From(table).Limit(1).Prefix("SELECT NOT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("building emptiness query for %s: %w", table, err)
	}
	var empty bool
	if err := db.QueryRow(ctx, sql, args...).Scan(&empty); err != nil {
		return false, fmt.Errorf("checking %s: %w", table, err)
	}
	return empty, nil
}
