package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/moba-league/league-system/models"
)

var ErrScheduleNotFound = errors.New("schedule snapshot not found")

// ScheduleRepository stores generated draws as immutable snapshots. The
// current schedule is whichever snapshot was created last; older ones remain
// listed for audit.
type ScheduleRepository interface {
	SaveSnapshot(ctx context.Context, snapshot *models.ScheduleSnapshot) error
	GetLatest(ctx context.Context) (*models.ScheduleSnapshot, error)
	ListSnapshots(ctx context.Context) ([]models.ScheduleSnapshot, error)
}

type postgresScheduleRepository struct {
	db *sql.DB
}

func NewPostgresScheduleRepository(db *sql.DB) ScheduleRepository {
	return &postgresScheduleRepository{db: db}
}

func (r *postgresScheduleRepository) SaveSnapshot(ctx context.Context, snapshot *models.ScheduleSnapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save schedule snapshot: begin: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO schedule_snapshots (id) VALUES ($1) RETURNING created_at`,
		snapshot.ID,
	).Scan(&snapshot.CreatedAt)
	if err != nil {
		return fmt.Errorf("save schedule snapshot %s: %w", snapshot.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO schedule_matches (snapshot_id, match_day, team_a, team_b)
		VALUES ($1, $2, $3, $4)`)
	if err != nil {
		return fmt.Errorf("save schedule snapshot %s: prepare: %w", snapshot.ID, err)
	}
	defer stmt.Close()

	for _, m := range snapshot.Matches {
		if _, err = stmt.ExecContext(ctx, snapshot.ID, m.MatchDay, m.TeamA, m.TeamB); err != nil {
			return fmt.Errorf("save schedule snapshot %s: match day %d: %w", snapshot.ID, m.MatchDay, err)
		}
	}

	return tx.Commit()
}

func (r *postgresScheduleRepository) GetLatest(ctx context.Context) (*models.ScheduleSnapshot, error) {
	var snapshot models.ScheduleSnapshot
	err := r.db.QueryRowContext(ctx,
		`SELECT id, created_at FROM schedule_snapshots ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&snapshot.ID, &snapshot.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	if err := r.loadMatches(ctx, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *postgresScheduleRepository) ListSnapshots(ctx context.Context) ([]models.ScheduleSnapshot, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at FROM schedule_snapshots ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list schedule snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := make([]models.ScheduleSnapshot, 0)
	for rows.Next() {
		var s models.ScheduleSnapshot
		if err := rows.Scan(&s.ID, &s.CreatedAt); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

func (r *postgresScheduleRepository) loadMatches(ctx context.Context, snapshot *models.ScheduleSnapshot) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT match_day, team_a, team_b FROM schedule_matches WHERE snapshot_id = $1 ORDER BY match_day, id`,
		snapshot.ID)
	if err != nil {
		return fmt.Errorf("load schedule matches for %s: %w", snapshot.ID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.ScheduledMatch
		if err := rows.Scan(&m.MatchDay, &m.TeamA, &m.TeamB); err != nil {
			return err
		}
		snapshot.Matches = append(snapshot.Matches, m)
	}
	return rows.Err()
}
