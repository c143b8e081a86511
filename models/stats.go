package models

// Derived, read-only rows. None of these are persisted; they are recomputed
// from MatchResult/GameRecord/PlayerIdentity on every query.

type StandingsRow struct {
	Name   string `json:"name"`
	Played int    `json:"p"`
	Won    int    `json:"w"`
	Lost   int    `json:"l"`
	GD     int    `json:"gd"`
	Points int    `json:"pts"`
}

type DetailedStandingsRow struct {
	StandingsRow
	GF   int      `json:"gf"`
	GA   int      `json:"ga"`
	Form []string `json:"form"` // W/L outcomes of the 5 most recent matches, most recent first
}

type PlayerStatRow struct {
	RealName          string  `json:"real_name"`
	PlayerName        string  `json:"player_name"` // last raw in-game name seen
	TeamName          string  `json:"team_name"`
	TotalKills        int     `json:"total_kills"`
	TotalDeaths       int     `json:"total_deaths"`
	TotalAssists      int     `json:"total_assists"`
	GamesPlayed       int     `json:"games_played"`
	MVPCount          int     `json:"mvp_count"`
	Wins              int     `json:"wins"`
	WinRate           float64 `json:"win_rate"`
	AvgKillsPerGame   float64 `json:"avg_kills_per_game"`
	AvgDeathsPerGame  float64 `json:"avg_deaths_per_game"`
	AvgAssistsPerGame float64 `json:"avg_assists_per_game"`
	MVPRate           float64 `json:"mvp_rate"`
	KDA               float64 `json:"kda"`
}

type TeamStatRow struct {
	TeamName          string  `json:"team_name"`
	TotalKills        int     `json:"total_kills"`
	TotalDeaths       int     `json:"total_deaths"`
	TotalAssists      int     `json:"total_assists"`
	MVPCount          int     `json:"mvp_count"`
	RealGamesPlayed   int     `json:"real_games_played"`
	RealWins          int     `json:"real_wins"`
	RealLosses        int     `json:"real_losses"`
	WinRate           float64 `json:"win_rate"`
	AvgKillsPerGame   float64 `json:"avg_kills_per_game"`
	AvgDeathsPerGame  float64 `json:"avg_deaths_per_game"`
	AvgAssistsPerGame float64 `json:"avg_assists_per_game"`
	AvgDuration       float64 `json:"avg_duration"`
	KDA               float64 `json:"kda"`
}

// SeasonStats powers the season highlight cards. Percentage fields are
// pre-formatted display strings (1 decimal place) because they are surfaced
// verbatim by the frontend.
type SeasonStats struct {
	TotalMatches    int     `json:"total_matches"`
	TotalGames      int     `json:"total_games"`
	AvgGameDuration float64 `json:"avg_game_duration"`

	BloodiestGame *GameHighlight `json:"bloodiest_game,omitempty"`
	LongestGame   *GameHighlight `json:"longest_game,omitempty"`

	TopMVPPlayer *PlayerHighlight `json:"top_mvp_player,omitempty"`
	TopKiller    *PlayerHighlight `json:"top_killer,omitempty"`

	BestTeam *TeamHighlight `json:"best_team,omitempty"`

	MostPickedHero  *HeroHighlight `json:"most_picked_hero,omitempty"`
	BestWinRateHero *HeroHighlight `json:"best_win_rate_hero,omitempty"`
}

type GameHighlight struct {
	MatchID         string `json:"match_id"`
	GameNumber      int    `json:"game_number"`
	TotalKills      int    `json:"total_kills,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
}

type PlayerHighlight struct {
	RealName   string `json:"real_name"`
	PlayerName string `json:"player_name"`
	TeamName   string `json:"team_name"`
	Count      int    `json:"count"`
}

type TeamHighlight struct {
	TeamName string `json:"team_name"`
	Games    int    `json:"games"`
	Wins     int    `json:"wins"`
	WinRate  string `json:"win_rate"`
}

type HeroHighlight struct {
	Hero    string `json:"hero"`
	Picks   int    `json:"picks"`
	Wins    int    `json:"wins"`
	WinRate string `json:"win_rate"`
}

// HeroAffinity is one hero line in a player's most-played list.
type HeroAffinity struct {
	Hero    string `json:"hero"`
	Games   int    `json:"games"`
	Wins    int    `json:"wins"`
	Kills   int    `json:"kills"`
	Deaths  int    `json:"deaths"`
	Assists int    `json:"assists"`
}

type PlayerHeroStatRow struct {
	RealName   string         `json:"real_name"`
	PlayerName string         `json:"player_name"`
	TopHeroes  []HeroAffinity `json:"top_heroes"` // up to 3, most played first
}
