package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/moba-league/league-system/models"
)

var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrPlayerNameConflict = errors.New("player real name already registered")
)

type RosterRepository interface {
	ListAll(ctx context.Context) ([]models.PlayerIdentity, error)
	GetByID(ctx context.Context, id int) (*models.PlayerIdentity, error)
	Create(ctx context.Context, player *models.PlayerIdentity) error
	Update(ctx context.Context, player *models.PlayerIdentity) error
	Delete(ctx context.Context, id int) error
}

type postgresRosterRepository struct {
	db *sql.DB
}

func NewPostgresRosterRepository(db *sql.DB) RosterRepository {
	return &postgresRosterRepository{db: db}
}

func (r *postgresRosterRepository) scanPlayer(rowScanner interface{ Scan(...interface{}) error }) (*models.PlayerIdentity, error) {
	var p models.PlayerIdentity
	err := rowScanner.Scan(&p.ID, &p.RealName, &p.IGN, &p.PreviousIGNs, &p.TeamName, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresRosterRepository) ListAll(ctx context.Context) ([]models.PlayerIdentity, error) {
	// Roster order matters: the resolver gives earlier entries priority on
	// colliding aliases, so listing must be stable.
	query := `SELECT id, real_name, ign, previous_igns, team_name, created_at FROM roster ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	defer rows.Close()

	roster := make([]models.PlayerIdentity, 0)
	for rows.Next() {
		p, errScan := r.scanPlayer(rows)
		if errScan != nil {
			return nil, errScan
		}
		roster = append(roster, *p)
	}
	return roster, rows.Err()
}

func (r *postgresRosterRepository) GetByID(ctx context.Context, id int) (*models.PlayerIdentity, error) {
	query := `SELECT id, real_name, ign, previous_igns, team_name, created_at FROM roster WHERE id = $1`
	return r.scanPlayer(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresRosterRepository) Create(ctx context.Context, player *models.PlayerIdentity) error {
	query := `
		INSERT INTO roster (real_name, ign, previous_igns, team_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		player.RealName, player.IGN, player.PreviousIGNs, player.TeamName,
	).Scan(&player.ID, &player.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return ErrPlayerNameConflict
		}
		return fmt.Errorf("create roster entry: %w", err)
	}
	return nil
}

func (r *postgresRosterRepository) Update(ctx context.Context, player *models.PlayerIdentity) error {
	query := `
		UPDATE roster SET real_name = $1, ign = $2, previous_igns = $3, team_name = $4
		WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query,
		player.RealName, player.IGN, player.PreviousIGNs, player.TeamName, player.ID,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return ErrPlayerNameConflict
		}
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresRosterRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM roster WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}
