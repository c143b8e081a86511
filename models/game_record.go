package models

// PlayersPerSide is the fixed roster size per team per game. GameRecord rows
// are per-player, so team-level game counts divide by this and round up.
const PlayersPerSide = 5

// GameRecord is one row per player per individual game within a match.
// PlayerName is the raw in-game display name as typed or OCR'd upstream;
// it is not necessarily a roster-registered name.
//
// Records are immutable except for bulk replace-by-match-id: re-saving a
// match's stat sheet deletes and reinserts every record for that match.
type GameRecord struct {
	ID              int    `json:"id" db:"id"`
	MatchID         string `json:"match_id" db:"match_id"`
	GameNumber      int    `json:"game_number" db:"game_number"`
	TeamName        string `json:"team_name" db:"team_name"`
	PlayerName      string `json:"player_name" db:"player_name"`
	Hero            string `json:"hero" db:"hero"`
	Kills           int    `json:"kills" db:"kills"`
	Deaths          int    `json:"deaths" db:"deaths"`
	Assists         int    `json:"assists" db:"assists"`
	IsMVP           bool   `json:"is_mvp" db:"is_mvp"`
	Won             bool   `json:"won" db:"won"`
	DurationSeconds int    `json:"duration_seconds" db:"duration_seconds"`
}
