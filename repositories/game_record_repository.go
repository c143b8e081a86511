package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/moba-league/league-system/models"
)

// GameRecordFilter narrows List; nil fields mean no constraint.
type GameRecordFilter struct {
	MatchID  *string
	TeamName *string
}

type GameRecordRepository interface {
	List(ctx context.Context, filter GameRecordFilter) ([]models.GameRecord, error)
	// ReplaceByMatchID deletes every record for the match and inserts the
	// given set in one transaction, so a match never holds a partial mix of
	// old and new stat rows.
	ReplaceByMatchID(ctx context.Context, matchID string, records []models.GameRecord) error
	DeleteByMatchID(ctx context.Context, matchID string) error
}

type postgresGameRecordRepository struct {
	db *sql.DB
}

func NewPostgresGameRecordRepository(db *sql.DB) GameRecordRepository {
	return &postgresGameRecordRepository{db: db}
}

func (r *postgresGameRecordRepository) List(ctx context.Context, filter GameRecordFilter) ([]models.GameRecord, error) {
	queryBuilder := strings.Builder{}
	queryBuilder.WriteString(`
		SELECT id, match_id, game_number, team_name, player_name, hero,
		       kills, deaths, assists, is_mvp, won, duration_seconds
		FROM game_records`)

	conditions := make([]string, 0, 2)
	args := make([]interface{}, 0, 2)
	if filter.MatchID != nil {
		args = append(args, *filter.MatchID)
		conditions = append(conditions, "match_id = $"+strconv.Itoa(len(args)))
	}
	if filter.TeamName != nil {
		args = append(args, *filter.TeamName)
		conditions = append(conditions, "team_name = $"+strconv.Itoa(len(args)))
	}
	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY match_id, game_number, id")

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list game records: %w", err)
	}
	defer rows.Close()

	records := make([]models.GameRecord, 0)
	for rows.Next() {
		var g models.GameRecord
		err := rows.Scan(
			&g.ID, &g.MatchID, &g.GameNumber, &g.TeamName, &g.PlayerName, &g.Hero,
			&g.Kills, &g.Deaths, &g.Assists, &g.IsMVP, &g.Won, &g.DurationSeconds,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, g)
	}
	return records, rows.Err()
}

func (r *postgresGameRecordRepository) ReplaceByMatchID(ctx context.Context, matchID string, records []models.GameRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace game records: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM game_records WHERE match_id = $1`, matchID); err != nil {
		return fmt.Errorf("replace game records for %s: delete: %w", matchID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO game_records
			(match_id, game_number, team_name, player_name, hero,
			 kills, deaths, assists, is_mvp, won, duration_seconds)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`)
	if err != nil {
		return fmt.Errorf("replace game records for %s: prepare: %w", matchID, err)
	}
	defer stmt.Close()

	for _, g := range records {
		_, err = stmt.ExecContext(ctx,
			matchID, g.GameNumber, g.TeamName, g.PlayerName, g.Hero,
			g.Kills, g.Deaths, g.Assists, g.IsMVP, g.Won, g.DurationSeconds,
		)
		if err != nil {
			return fmt.Errorf("replace game records for %s: insert %s/%d: %w", matchID, g.PlayerName, g.GameNumber, err)
		}
	}

	return tx.Commit()
}

func (r *postgresGameRecordRepository) DeleteByMatchID(ctx context.Context, matchID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM game_records WHERE match_id = $1`, matchID)
	return err
}
