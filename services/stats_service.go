package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/moba-league/league-system/models"
	"github.com/moba-league/league-system/repositories"
	"github.com/moba-league/league-system/stats"
)

// StatsService exposes the derived-statistics queries. Every call re-reads
// the relevant collections and recomputes from scratch; there is no cached
// aggregate state, so concurrent calls never interfere.
type StatsService interface {
	GetStandings(ctx context.Context) ([]models.StandingsRow, error)
	GetDetailedStandings(ctx context.Context) ([]models.DetailedStandingsRow, error)
	GetPlayerStats(ctx context.Context) ([]models.PlayerStatRow, error)
	GetTeamStats(ctx context.Context) ([]models.TeamStatRow, error)
	GetSeasonStats(ctx context.Context) (models.SeasonStats, error)
	GetPlayerHeroStats(ctx context.Context) ([]models.PlayerHeroStatRow, error)
}

type statsService struct {
	matchRepo  repositories.MatchResultRepository
	gameRepo   repositories.GameRecordRepository
	rosterRepo repositories.RosterRepository
}

func NewStatsService(
	matchRepo repositories.MatchResultRepository,
	gameRepo repositories.GameRecordRepository,
	rosterRepo repositories.RosterRepository,
) StatsService {
	return &statsService{
		matchRepo:  matchRepo,
		gameRepo:   gameRepo,
		rosterRepo: rosterRepo,
	}
}

func (s *statsService) GetStandings(ctx context.Context) ([]models.StandingsRow, error) {
	matches, err := s.matchRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: standings: %w", ErrStatsQueryFailed, err)
	}
	return stats.ComputeStandings(matches), nil
}

func (s *statsService) GetDetailedStandings(ctx context.Context) ([]models.DetailedStandingsRow, error) {
	matches, err := s.matchRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: detailed standings: %w", ErrStatsQueryFailed, err)
	}
	return stats.ComputeDetailedStandings(matches), nil
}

// loadGamesAndRoster fetches both collections concurrently; a failure on
// either side cancels the other and propagates.
func (s *statsService) loadGamesAndRoster(ctx context.Context) ([]models.GameRecord, []models.PlayerIdentity, error) {
	var (
		games  []models.GameRecord
		roster []models.PlayerIdentity
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		games, err = s.gameRepo.List(gCtx, repositories.GameRecordFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		roster, err = s.rosterRepo.ListAll(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return games, roster, nil
}

func (s *statsService) GetPlayerStats(ctx context.Context) ([]models.PlayerStatRow, error) {
	games, roster, err := s.loadGamesAndRoster(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: player stats: %w", ErrStatsQueryFailed, err)
	}
	return stats.ComputePlayerStats(games, roster), nil
}

func (s *statsService) GetTeamStats(ctx context.Context) ([]models.TeamStatRow, error) {
	games, err := s.gameRepo.List(ctx, repositories.GameRecordFilter{})
	if err != nil {
		return nil, fmt.Errorf("%w: team stats: %w", ErrStatsQueryFailed, err)
	}
	return stats.ComputeTeamStats(games), nil
}

func (s *statsService) GetSeasonStats(ctx context.Context) (models.SeasonStats, error) {
	var (
		matches []models.MatchResult
		games   []models.GameRecord
		roster  []models.PlayerIdentity
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.ListAll(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		games, err = s.gameRepo.List(gCtx, repositories.GameRecordFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		roster, err = s.rosterRepo.ListAll(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.SeasonStats{}, fmt.Errorf("%w: season stats: %w", ErrStatsQueryFailed, err)
	}
	return stats.ComputeSeasonStats(matches, games, roster), nil
}

func (s *statsService) GetPlayerHeroStats(ctx context.Context) ([]models.PlayerHeroStatRow, error) {
	games, roster, err := s.loadGamesAndRoster(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: player hero stats: %w", ErrStatsQueryFailed, err)
	}
	return stats.ComputePlayerHeroStats(games, roster), nil
}
