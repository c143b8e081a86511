package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/moba-league/league-system/live"
	"github.com/moba-league/league-system/models"
	"github.com/moba-league/league-system/repositories"
)

// SaveResultInput is the match-result entry payload. Winner/Loser arrive as
// free-text team names (manual entry or OCR) and are validated tolerantly.
type SaveResultInput struct {
	MatchDay    int                 `json:"match_day"`
	TeamBlue    string              `json:"team_blue"`
	TeamRed     string              `json:"team_red"`
	ScoreBlue   int                 `json:"score_blue"`
	ScoreRed    int                 `json:"score_red"`
	Winner      string              `json:"winner"`
	Loser       string              `json:"loser"`
	IsByeWin    bool                `json:"is_bye_win"`
	GameDetails []models.GameDetail `json:"game_details"`
}

type ResultService interface {
	ListResults(ctx context.Context) ([]models.MatchResult, error)
	SaveResult(ctx context.Context, input SaveResultInput) (*models.MatchResult, error)
	SaveGameRecords(ctx context.Context, matchID string, records []models.GameRecord) error
	DeleteResult(ctx context.Context, matchID string) error
}

type resultService struct {
	matchRepo repositories.MatchResultRepository
	gameRepo  repositories.GameRecordRepository
	hub       *live.Hub
}

func NewResultService(
	matchRepo repositories.MatchResultRepository,
	gameRepo repositories.GameRecordRepository,
	hub *live.Hub,
) ResultService {
	return &resultService{
		matchRepo: matchRepo,
		gameRepo:  gameRepo,
		hub:       hub,
	}
}

// stripWhitespace removes every whitespace rune so team names embed cleanly
// into the match identifier.
func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// BuildMatchID derives the natural match key: "{day}_{teamA}_vs_{teamB}".
// The same fixture always maps to the same key, which is what makes re-saving
// a result an upsert instead of a duplicate.
func BuildMatchID(matchDay int, teamBlue, teamRed string) string {
	return fmt.Sprintf("%d_%s_vs_%s", matchDay, stripWhitespace(teamBlue), stripWhitespace(teamRed))
}

// resolveOutcome normalizes the declared winner/loser against the two team
// names. If the provided strings match neither team, both come back nil: the
// row is stored unattributed and the standings calculator degrades it to a
// played match with no win/loss credit.
func resolveOutcome(input SaveResultInput) (winner, loser *string) {
	blue, red := input.TeamBlue, input.TeamRed
	switch {
	case input.Winner == blue:
		return &blue, &red
	case input.Winner == red:
		return &red, &blue
	case input.Loser == blue:
		return &red, &blue
	case input.Loser == red:
		return &blue, &red
	default:
		return nil, nil
	}
}

func validateResultInput(input SaveResultInput) error {
	if input.TeamBlue == "" || input.TeamRed == "" {
		return ErrResultTeamsRequired
	}
	if input.TeamBlue == input.TeamRed {
		return ErrResultSameTeam
	}
	if input.MatchDay <= 0 {
		return ErrResultInvalidDay
	}
	if input.ScoreBlue < 0 || input.ScoreRed < 0 {
		return ErrResultInvalidScore
	}
	return nil
}

func (s *resultService) ListResults(ctx context.Context) ([]models.MatchResult, error) {
	results, err := s.matchRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResultsListFailed, err)
	}
	return results, nil
}

func (s *resultService) SaveResult(ctx context.Context, input SaveResultInput) (*models.MatchResult, error) {
	if err := validateResultInput(input); err != nil {
		return nil, err
	}

	winner, loser := resolveOutcome(input)
	result := &models.MatchResult{
		MatchID:     BuildMatchID(input.MatchDay, input.TeamBlue, input.TeamRed),
		MatchDay:    input.MatchDay,
		TeamBlue:    input.TeamBlue,
		TeamRed:     input.TeamRed,
		ScoreBlue:   input.ScoreBlue,
		ScoreRed:    input.ScoreRed,
		Winner:      winner,
		Loser:       loser,
		IsByeWin:    input.IsByeWin,
		GameDetails: input.GameDetails,
	}

	if err := s.matchRepo.Upsert(ctx, result); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrResultSaveFailed, result.MatchID, err)
	}

	s.publish(live.Event{Type: live.EventStandingsUpdated, Payload: map[string]string{"match_id": result.MatchID}})
	return result, nil
}

// SaveGameRecords bulk-replaces the per-player stat sheet of one match. The
// input may come from the vision extractor and is untrusted: negative numeric
// fields are clamped to zero rather than rejected.
func (s *resultService) SaveGameRecords(ctx context.Context, matchID string, records []models.GameRecord) error {
	if matchID == "" {
		return ErrValidationFailed
	}
	if _, err := s.matchRepo.GetByMatchID(ctx, matchID); err != nil {
		if errors.Is(err, repositories.ErrMatchResultNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %s: %w", ErrRecordsSaveFailed, matchID, err)
	}

	sanitized := make([]models.GameRecord, len(records))
	for i, g := range records {
		g.MatchID = matchID
		if g.Kills < 0 {
			g.Kills = 0
		}
		if g.Deaths < 0 {
			g.Deaths = 0
		}
		if g.Assists < 0 {
			g.Assists = 0
		}
		if g.DurationSeconds < 0 {
			g.DurationSeconds = 0
		}
		if g.GameNumber <= 0 {
			g.GameNumber = 1
		}
		sanitized[i] = g
	}

	if err := s.gameRepo.ReplaceByMatchID(ctx, matchID, sanitized); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRecordsSaveFailed, matchID, err)
	}

	s.publish(live.Event{Type: live.EventMatchStatsUpdated, Payload: map[string]string{"match_id": matchID}})
	return nil
}

func (s *resultService) DeleteResult(ctx context.Context, matchID string) error {
	if err := s.gameRepo.DeleteByMatchID(ctx, matchID); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrResultSaveFailed, matchID, err)
	}
	if err := s.matchRepo.DeleteByMatchID(ctx, matchID); err != nil {
		if errors.Is(err, repositories.ErrMatchResultNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %s: %w", ErrResultSaveFailed, matchID, err)
	}
	s.publish(live.Event{Type: live.EventStandingsUpdated, Payload: map[string]string{"match_id": matchID}})
	return nil
}

func (s *resultService) publish(event live.Event) {
	if s.hub != nil {
		s.hub.Publish(event)
	}
}
