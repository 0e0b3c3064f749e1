// Package audit ведёт в PostgreSQL журнал запусков патчей.
//
// Журнал опционален: инструмент работает и без БД, но когда она
// настроена, каждый запуск оставляет строку в patch_runs с итогами
// и отпечатками файлов до и после записи.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ledger wraps a pgx connection pool for the patch run journal.
type Ledger struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL and returns a Ledger handle.
func New(ctx context.Context, dsn string) (*Ledger, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &Ledger{pool: pool}, nil
}

// Close closes the database connection pool.
func (l *Ledger) Close() {
	l.pool.Close()
}

// Pool returns the underlying pgx pool.
func (l *Ledger) Pool() *pgxpool.Pool {
	return l.pool
}

// Run описывает один запуск патча.
//
// Отпечатки (BLAKE2b-256, hex) снимаются с обоих файлов до применения
// и после записи. Если запись не состоялась, before == after.
type Run struct {
	ID                  uuid.UUID
	PatchName           string
	StartedAt           time.Time
	FinishedAt          time.Time
	AppliedMechanical   int
	AppliedDescriptions int
	Failed              int
	DryRun              bool
	FilesWritten        bool
	SkillDataBefore     string
	SkillDataAfter      string
	SkillDescBefore     string
	SkillDescAfter      string
}

// Record вставляет строку о запуске в patch_runs.
func (l *Ledger) Record(ctx context.Context, run Run) error {
	_, err := l.pool.Exec(ctx,
		`INSERT INTO patch_runs (
			id, patch_name, started_at, finished_at,
			applied_mechanical, applied_descriptions, failed,
			dry_run, files_written,
			skilldata_before, skilldata_after,
			skilldesc_before, skilldesc_after
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		run.ID, run.PatchName, run.StartedAt, run.FinishedAt,
		run.AppliedMechanical, run.AppliedDescriptions, run.Failed,
		run.DryRun, run.FilesWritten,
		run.SkillDataBefore, run.SkillDataAfter,
		run.SkillDescBefore, run.SkillDescAfter,
	)
	if err != nil {
		return fmt.Errorf("recording patch run %q: %w", run.PatchName, err)
	}
	return nil
}

// Runs загружает историю запусков патча, новые первыми.
func (l *Ledger) Runs(ctx context.Context, patchName string) ([]Run, error) {
	rows, err := l.pool.Query(ctx,
		`SELECT id, patch_name, started_at, finished_at,
			applied_mechanical, applied_descriptions, failed,
			dry_run, files_written,
			skilldata_before, skilldata_after,
			skilldesc_before, skilldesc_after
		 FROM patch_runs
		 WHERE patch_name = $1
		 ORDER BY started_at DESC`, patchName,
	)
	if err != nil {
		return nil, fmt.Errorf("querying runs for %q: %w", patchName, err)
	}
	defer rows.Close()

	runs := make([]Run, 0, 8)
	for rows.Next() {
		var r Run
		if err := rows.Scan(
			&r.ID, &r.PatchName, &r.StartedAt, &r.FinishedAt,
			&r.AppliedMechanical, &r.AppliedDescriptions, &r.Failed,
			&r.DryRun, &r.FilesWritten,
			&r.SkillDataBefore, &r.SkillDataAfter,
			&r.SkillDescBefore, &r.SkillDescAfter,
		); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run rows: %w", err)
	}

	return runs, nil
}
