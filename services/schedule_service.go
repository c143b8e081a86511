package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/moba-league/league-system/live"
	"github.com/moba-league/league-system/models"
	"github.com/moba-league/league-system/repositories"
	"github.com/moba-league/league-system/schedule"
)

type ScheduleService interface {
	// GenerateDraw builds a fresh round-robin draw for the given teams and
	// stores it as a new snapshot. Older snapshots are kept.
	GenerateDraw(ctx context.Context, teams []string) (*models.ScheduleSnapshot, error)
	GetCurrent(ctx context.Context) (*models.ScheduleSnapshot, error)
	ListHistory(ctx context.Context) ([]models.ScheduleSnapshot, error)
}

type scheduleService struct {
	scheduleRepo repositories.ScheduleRepository
	hub          *live.Hub
}

func NewScheduleService(scheduleRepo repositories.ScheduleRepository, hub *live.Hub) ScheduleService {
	return &scheduleService{scheduleRepo: scheduleRepo, hub: hub}
}

func (s *scheduleService) GenerateDraw(ctx context.Context, teams []string) (*models.ScheduleSnapshot, error) {
	if len(teams) < 2 {
		return nil, ErrScheduleNeedsTeams
	}
	matches, err := schedule.GenerateRoundRobin(teams)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScheduleNeedsTeams, err)
	}

	snapshot := &models.ScheduleSnapshot{
		ID:      uuid.New(),
		Matches: matches,
	}
	if err := s.scheduleRepo.SaveSnapshot(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScheduleSaveFailed, err)
	}

	if s.hub != nil {
		s.hub.Publish(live.Event{Type: live.EventScheduleUpdated, Payload: map[string]string{"snapshot_id": snapshot.ID.String()}})
	}
	return snapshot, nil
}

func (s *scheduleService) GetCurrent(ctx context.Context) (*models.ScheduleSnapshot, error) {
	snapshot, err := s.scheduleRepo.GetLatest(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrScheduleNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrScheduleLoadFailed, err)
	}
	return snapshot, nil
}

func (s *scheduleService) ListHistory(ctx context.Context) ([]models.ScheduleSnapshot, error) {
	snapshots, err := s.scheduleRepo.ListSnapshots(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScheduleLoadFailed, err)
	}
	return snapshots, nil
}
