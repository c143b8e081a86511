package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/moba-league/league-system/models"
)

var ErrMatchResultNotFound = errors.New("match result not found")

type MatchResultRepository interface {
	ListAll(ctx context.Context) ([]models.MatchResult, error)
	GetByMatchID(ctx context.Context, matchID string) (*models.MatchResult, error)
	Upsert(ctx context.Context, result *models.MatchResult) error
	DeleteByMatchID(ctx context.Context, matchID string) error
}

type postgresMatchResultRepository struct {
	db *sql.DB
}

func NewPostgresMatchResultRepository(db *sql.DB) MatchResultRepository {
	return &postgresMatchResultRepository{db: db}
}

const matchResultColumns = `id, match_id, match_day, team_blue, team_red, score_blue, score_red, winner, loser, is_bye_win, created_at`

func (r *postgresMatchResultRepository) scanResult(rowScanner interface{ Scan(...interface{}) error }) (*models.MatchResult, error) {
	var m models.MatchResult
	err := rowScanner.Scan(
		&m.ID, &m.MatchID, &m.MatchDay, &m.TeamBlue, &m.TeamRed,
		&m.ScoreBlue, &m.ScoreRed, &m.Winner, &m.Loser, &m.IsByeWin, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchResultNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *postgresMatchResultRepository) ListAll(ctx context.Context) ([]models.MatchResult, error) {
	query := `SELECT ` + matchResultColumns + ` FROM match_results ORDER BY match_day, match_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list match results: %w", err)
	}
	defer rows.Close()

	results := make([]models.MatchResult, 0)
	for rows.Next() {
		m, errScan := r.scanResult(rows)
		if errScan != nil {
			return nil, errScan
		}
		results = append(results, *m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if err = r.attachGameDetails(ctx, results); err != nil {
		return nil, err
	}
	return results, nil
}

// attachGameDetails loads the per-game detail rows for every listed match in
// one query.
func (r *postgresMatchResultRepository) attachGameDetails(ctx context.Context, results []models.MatchResult) error {
	if len(results) == 0 {
		return nil
	}
	index := make(map[string]*models.MatchResult, len(results))
	for i := range results {
		index[results[i].MatchID] = &results[i]
	}

	query := `SELECT match_id, game_number, duration_seconds FROM match_game_details ORDER BY match_id, game_number`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("list game details: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var matchID string
		var gd models.GameDetail
		if err := rows.Scan(&matchID, &gd.GameNumber, &gd.DurationSeconds); err != nil {
			return err
		}
		if m, ok := index[matchID]; ok {
			m.GameDetails = append(m.GameDetails, gd)
		}
	}
	return rows.Err()
}

func (r *postgresMatchResultRepository) GetByMatchID(ctx context.Context, matchID string) (*models.MatchResult, error) {
	query := `SELECT ` + matchResultColumns + ` FROM match_results WHERE match_id = $1`
	m, err := r.scanResult(r.db.QueryRowContext(ctx, query, matchID))
	if err != nil {
		return nil, err
	}
	results := []models.MatchResult{*m}
	if err := r.attachGameDetails(ctx, results); err != nil {
		return nil, err
	}
	return &results[0], nil
}

// Upsert inserts or fully replaces a match result keyed by its deterministic
// match_id, rewriting the per-game detail rows in the same transaction.
func (r *postgresMatchResultRepository) Upsert(ctx context.Context, result *models.MatchResult) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("upsert match result: begin: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO match_results
			(match_id, match_day, team_blue, team_red, score_blue, score_red, winner, loser, is_bye_win)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (match_id) DO UPDATE SET
			match_day = EXCLUDED.match_day,
			team_blue = EXCLUDED.team_blue,
			team_red = EXCLUDED.team_red,
			score_blue = EXCLUDED.score_blue,
			score_red = EXCLUDED.score_red,
			winner = EXCLUDED.winner,
			loser = EXCLUDED.loser,
			is_bye_win = EXCLUDED.is_bye_win
		RETURNING id, created_at`
	err = tx.QueryRowContext(ctx, query,
		result.MatchID, result.MatchDay, result.TeamBlue, result.TeamRed,
		result.ScoreBlue, result.ScoreRed, result.Winner, result.Loser, result.IsByeWin,
	).Scan(&result.ID, &result.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert match result %s: %w", result.MatchID, err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM match_game_details WHERE match_id = $1`, result.MatchID); err != nil {
		return fmt.Errorf("upsert match result %s: clear details: %w", result.MatchID, err)
	}
	for _, gd := range result.GameDetails {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO match_game_details (match_id, game_number, duration_seconds) VALUES ($1, $2, $3)`,
			result.MatchID, gd.GameNumber, gd.DurationSeconds,
		)
		if err != nil {
			return fmt.Errorf("upsert match result %s: detail %d: %w", result.MatchID, gd.GameNumber, err)
		}
	}

	return tx.Commit()
}

func (r *postgresMatchResultRepository) DeleteByMatchID(ctx context.Context, matchID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM match_results WHERE match_id = $1`, matchID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchResultNotFound)
}
