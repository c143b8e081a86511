package services

import (
	"context"
	"errors"
	"testing"

	"github.com/moba-league/league-system/models"
	"github.com/moba-league/league-system/repositories"
)

// In-memory repositories for service tests.

type fakeMatchRepo struct {
	byMatchID map[string]*models.MatchResult
	listErr   error
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{byMatchID: make(map[string]*models.MatchResult)}
}

func (f *fakeMatchRepo) ListAll(ctx context.Context) ([]models.MatchResult, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.MatchResult, 0, len(f.byMatchID))
	for _, m := range f.byMatchID {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMatchRepo) GetByMatchID(ctx context.Context, matchID string) (*models.MatchResult, error) {
	m, ok := f.byMatchID[matchID]
	if !ok {
		return nil, repositories.ErrMatchResultNotFound
	}
	return m, nil
}

func (f *fakeMatchRepo) Upsert(ctx context.Context, result *models.MatchResult) error {
	f.byMatchID[result.MatchID] = result
	return nil
}

func (f *fakeMatchRepo) DeleteByMatchID(ctx context.Context, matchID string) error {
	if _, ok := f.byMatchID[matchID]; !ok {
		return repositories.ErrMatchResultNotFound
	}
	delete(f.byMatchID, matchID)
	return nil
}

type fakeGameRepo struct {
	byMatchID map[string][]models.GameRecord
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{byMatchID: make(map[string][]models.GameRecord)}
}

func (f *fakeGameRepo) List(ctx context.Context, filter repositories.GameRecordFilter) ([]models.GameRecord, error) {
	out := make([]models.GameRecord, 0)
	for matchID, records := range f.byMatchID {
		if filter.MatchID != nil && *filter.MatchID != matchID {
			continue
		}
		for _, g := range records {
			if filter.TeamName != nil && *filter.TeamName != g.TeamName {
				continue
			}
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGameRepo) ReplaceByMatchID(ctx context.Context, matchID string, records []models.GameRecord) error {
	f.byMatchID[matchID] = records
	return nil
}

func (f *fakeGameRepo) DeleteByMatchID(ctx context.Context, matchID string) error {
	delete(f.byMatchID, matchID)
	return nil
}

func newResultService(matchRepo *fakeMatchRepo, gameRepo *fakeGameRepo) ResultService {
	return NewResultService(matchRepo, gameRepo, nil)
}

// ---- Match ID derivation ----

func TestBuildMatchID(t *testing.T) {
	cases := []struct {
		day       int
		blue, red string
		want      string
	}{
		{1, "A", "B", "1_A_vs_B"},
		{3, "Team Alpha", "Red  Dragons", "3_TeamAlpha_vs_RedDragons"},
		{12, "Tab\tTeam", "New\nLine", "12_TabTeam_vs_NewLine"},
	}
	for _, c := range cases {
		if got := BuildMatchID(c.day, c.blue, c.red); got != c.want {
			t.Errorf("BuildMatchID(%d, %q, %q) = %q, want %q", c.day, c.blue, c.red, got, c.want)
		}
	}
}

// Re-saving the same fixture must overwrite, not duplicate.
func TestSaveResult_UpsertByNaturalKey(t *testing.T) {
	matchRepo := newFakeMatchRepo()
	svc := newResultService(matchRepo, newFakeGameRepo())

	input := SaveResultInput{MatchDay: 1, TeamBlue: "A", TeamRed: "B", ScoreBlue: 2, ScoreRed: 0, Winner: "A", Loser: "B"}
	if _, err := svc.SaveResult(context.Background(), input); err != nil {
		t.Fatalf("first save: %v", err)
	}
	input.ScoreBlue, input.ScoreRed = 2, 1
	if _, err := svc.SaveResult(context.Background(), input); err != nil {
		t.Fatalf("second save: %v", err)
	}

	if len(matchRepo.byMatchID) != 1 {
		t.Fatalf("expected 1 stored result, got %d", len(matchRepo.byMatchID))
	}
	if got := matchRepo.byMatchID["1_A_vs_B"].ScoreRed; got != 1 {
		t.Errorf("ScoreRed after re-save = %d, want 1", got)
	}
}

// ---- Winner/loser resolution ----

func TestSaveResult_ResolvesWinnerFromLoser(t *testing.T) {
	svc := newResultService(newFakeMatchRepo(), newFakeGameRepo())
	result, err := svc.SaveResult(context.Background(), SaveResultInput{
		MatchDay: 1, TeamBlue: "A", TeamRed: "B", ScoreBlue: 0, ScoreRed: 2,
		Loser: "A", // winner omitted; must be inferred
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Winner == nil || *result.Winner != "B" {
		t.Errorf("Winner = %v, want B", result.Winner)
	}
	if result.Loser == nil || *result.Loser != "A" {
		t.Errorf("Loser = %v, want A", result.Loser)
	}
}

// Matching neither team must not error; the row is stored unattributed.
func TestSaveResult_UnresolvableOutcomeToleratedAsNil(t *testing.T) {
	svc := newResultService(newFakeMatchRepo(), newFakeGameRepo())
	result, err := svc.SaveResult(context.Background(), SaveResultInput{
		MatchDay: 2, TeamBlue: "A", TeamRed: "B", ScoreBlue: 1, ScoreRed: 0,
		Winner: "Typo'd Name", IsByeWin: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Winner != nil || result.Loser != nil {
		t.Errorf("winner/loser = %v/%v, want nil/nil for an unresolvable outcome", result.Winner, result.Loser)
	}
}

func TestSaveResult_Validation(t *testing.T) {
	svc := newResultService(newFakeMatchRepo(), newFakeGameRepo())
	cases := []struct {
		name  string
		input SaveResultInput
		want  error
	}{
		{"missing teams", SaveResultInput{MatchDay: 1}, ErrResultTeamsRequired},
		{"same team", SaveResultInput{MatchDay: 1, TeamBlue: "A", TeamRed: "A"}, ErrResultSameTeam},
		{"bad day", SaveResultInput{MatchDay: 0, TeamBlue: "A", TeamRed: "B"}, ErrResultInvalidDay},
		{"negative score", SaveResultInput{MatchDay: 1, TeamBlue: "A", TeamRed: "B", ScoreBlue: -1}, ErrResultInvalidScore},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := svc.SaveResult(context.Background(), c.input); !errors.Is(err, c.want) {
				t.Errorf("got %v, want %v", err, c.want)
			}
		})
	}
}

// ---- Game record replacement ----

func TestSaveGameRecords_ReplacesAndSanitizes(t *testing.T) {
	matchRepo := newFakeMatchRepo()
	gameRepo := newFakeGameRepo()
	svc := newResultService(matchRepo, gameRepo)

	if _, err := svc.SaveResult(context.Background(), SaveResultInput{
		MatchDay: 1, TeamBlue: "A", TeamRed: "B", ScoreBlue: 2, ScoreRed: 0, Winner: "A",
	}); err != nil {
		t.Fatalf("save result: %v", err)
	}

	records := []models.GameRecord{
		{GameNumber: 1, TeamName: "A", PlayerName: "P1", Kills: -3, Deaths: 2, Assists: 1},
		{GameNumber: 0, TeamName: "A", PlayerName: "P2", Kills: 4, Deaths: -1, Assists: 2},
	}
	if err := svc.SaveGameRecords(context.Background(), "1_A_vs_B", records); err != nil {
		t.Fatalf("save records: %v", err)
	}

	stored := gameRepo.byMatchID["1_A_vs_B"]
	if len(stored) != 2 {
		t.Fatalf("expected 2 stored records, got %d", len(stored))
	}
	if stored[0].Kills != 0 {
		t.Errorf("negative kills not clamped: %d", stored[0].Kills)
	}
	if stored[1].Deaths != 0 {
		t.Errorf("negative deaths not clamped: %d", stored[1].Deaths)
	}
	if stored[1].GameNumber != 1 {
		t.Errorf("zero game number not defaulted: %d", stored[1].GameNumber)
	}
	if stored[0].MatchID != "1_A_vs_B" {
		t.Errorf("match id not stamped onto records: %q", stored[0].MatchID)
	}
}

func TestSaveGameRecords_UnknownMatch(t *testing.T) {
	svc := newResultService(newFakeMatchRepo(), newFakeGameRepo())
	err := svc.SaveGameRecords(context.Background(), "9_X_vs_Y", nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

// Storage failures must surface to the caller, not be swallowed.
func TestStatsService_PropagatesStorageError(t *testing.T) {
	matchRepo := newFakeMatchRepo()
	matchRepo.listErr = errors.New("connection refused")
	svc := NewStatsService(matchRepo, newFakeGameRepo(), fakeRosterRepo{})

	_, err := svc.GetStandings(context.Background())
	if err == nil || !errors.Is(err, matchRepo.listErr) {
		t.Errorf("storage error not propagated: %v", err)
	}
}

type fakeRosterRepo struct{}

func (fakeRosterRepo) ListAll(ctx context.Context) ([]models.PlayerIdentity, error) {
	return nil, nil
}
func (fakeRosterRepo) GetByID(ctx context.Context, id int) (*models.PlayerIdentity, error) {
	return nil, repositories.ErrPlayerNotFound
}
func (fakeRosterRepo) Create(ctx context.Context, p *models.PlayerIdentity) error { return nil }
func (fakeRosterRepo) Update(ctx context.Context, p *models.PlayerIdentity) error { return nil }
func (fakeRosterRepo) Delete(ctx context.Context, id int) error                   { return nil }
