package models

import "time"

// KnockoutStageThreshold marks the first match day that belongs to the
// knockout stage. Knockout matches never count toward league standings.
const KnockoutStageThreshold = 90

// MatchResult is one scheduled fixture between two teams. A match may consist
// of several games (best-of-N); Score* hold the per-side game wins.
//
// MatchID is derived from the match day and the sanitized team names
// ("{day}_{teamA}_vs_{teamB}") and doubles as the natural key for upserts.
type MatchResult struct {
	ID          int          `json:"id" db:"id"`
	MatchID     string       `json:"match_id" db:"match_id"`
	MatchDay    int          `json:"match_day" db:"match_day"`
	TeamBlue    string       `json:"team_blue" db:"team_blue"`
	TeamRed     string       `json:"team_red" db:"team_red"`
	ScoreBlue   int          `json:"score_blue" db:"score_blue"`
	ScoreRed    int          `json:"score_red" db:"score_red"`
	Winner      *string      `json:"winner,omitempty" db:"winner"`
	Loser       *string      `json:"loser,omitempty" db:"loser"`
	IsByeWin    bool         `json:"is_bye_win" db:"is_bye_win"`
	GameDetails []GameDetail `json:"game_details,omitempty" db:"-"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
}

// GameDetail is per-game metadata attached to a MatchResult (one entry per
// game actually played; byes have none).
type GameDetail struct {
	GameNumber      int `json:"game_number"`
	DurationSeconds int `json:"duration_seconds"`
}

// IsKnockout reports whether the match belongs to the knockout stage.
func (m *MatchResult) IsKnockout() bool {
	return m.MatchDay >= KnockoutStageThreshold
}
