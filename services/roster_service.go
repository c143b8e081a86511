package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/moba-league/league-system/models"
	"github.com/moba-league/league-system/repositories"
)

type UpsertPlayerInput struct {
	RealName     string   `json:"real_name"`
	IGN          string   `json:"ign"`
	PreviousIGNs []string `json:"previous_igns"`
	TeamName     string   `json:"team_name"`
}

type RosterService interface {
	ListRoster(ctx context.Context) ([]models.PlayerIdentity, error)
	CreatePlayer(ctx context.Context, input UpsertPlayerInput) (*models.PlayerIdentity, error)
	UpdatePlayer(ctx context.Context, id int, input UpsertPlayerInput) (*models.PlayerIdentity, error)
	DeletePlayer(ctx context.Context, id int) error
}

type rosterService struct {
	rosterRepo repositories.RosterRepository
	logger     *slog.Logger
}

func NewRosterService(rosterRepo repositories.RosterRepository, logger *slog.Logger) RosterService {
	return &rosterService{rosterRepo: rosterRepo, logger: logger}
}

func (s *rosterService) ListRoster(ctx context.Context) ([]models.PlayerIdentity, error) {
	roster, err := s.rosterRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRosterListFailed, err)
	}
	return roster, nil
}

func validatePlayerInput(input UpsertPlayerInput) error {
	if input.RealName == "" {
		return ErrRosterNameRequired
	}
	if input.IGN == "" {
		return ErrRosterIGNRequired
	}
	return nil
}

// warnOnAliasOverlap logs when a new alias set collides with an existing
// entry. Overlaps are tolerated, not rejected: the resolver deterministically
// prefers the earlier roster entry, so stats stay computable either way.
func (s *rosterService) warnOnAliasOverlap(ctx context.Context, player *models.PlayerIdentity) {
	roster, err := s.rosterRepo.ListAll(ctx)
	if err != nil {
		return // best effort, the write already succeeded
	}
	claimed := make(map[string]string)
	for _, p := range roster {
		if p.ID == player.ID {
			continue
		}
		claimed[p.IGN] = p.RealName
		for _, prev := range p.PreviousIGNs {
			claimed[prev] = p.RealName
		}
	}
	aliases := append([]string{player.IGN}, player.PreviousIGNs...)
	for _, alias := range aliases {
		if owner, taken := claimed[alias]; taken {
			s.logger.Warn("roster alias overlap",
				slog.String("alias", alias),
				slog.String("player", player.RealName),
				slog.String("already_claimed_by", owner))
		}
	}
}

func (s *rosterService) CreatePlayer(ctx context.Context, input UpsertPlayerInput) (*models.PlayerIdentity, error) {
	if err := validatePlayerInput(input); err != nil {
		return nil, err
	}
	player := &models.PlayerIdentity{
		RealName:     input.RealName,
		IGN:          input.IGN,
		PreviousIGNs: input.PreviousIGNs,
		TeamName:     input.TeamName,
	}
	if err := s.rosterRepo.Create(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerNameConflict) {
			return nil, ErrRosterNameConflict
		}
		return nil, err
	}
	s.warnOnAliasOverlap(ctx, player)
	return player, nil
}

func (s *rosterService) UpdatePlayer(ctx context.Context, id int, input UpsertPlayerInput) (*models.PlayerIdentity, error) {
	if err := validatePlayerInput(input); err != nil {
		return nil, err
	}
	player := &models.PlayerIdentity{
		ID:           id,
		RealName:     input.RealName,
		IGN:          input.IGN,
		PreviousIGNs: input.PreviousIGNs,
		TeamName:     input.TeamName,
	}
	if err := s.rosterRepo.Update(ctx, player); err != nil {
		switch {
		case errors.Is(err, repositories.ErrPlayerNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repositories.ErrPlayerNameConflict):
			return nil, ErrRosterNameConflict
		}
		return nil, err
	}
	s.warnOnAliasOverlap(ctx, player)
	return player, nil
}

func (s *rosterService) DeletePlayer(ctx context.Context, id int) error {
	if err := s.rosterRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
