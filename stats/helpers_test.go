package stats

import (
	"github.com/moba-league/league-system/models"
)

// Shared builders for the stats tests.

func strPtr(s string) *string { return &s }

func record(matchID string, gameNumber int, team, player string) models.GameRecord {
	return models.GameRecord{
		MatchID:         matchID,
		GameNumber:      gameNumber,
		TeamName:        team,
		PlayerName:      player,
		Hero:            "Zilong",
		DurationSeconds: 900,
	}
}

func recordKDA(matchID string, gameNumber int, team, player string, k, d, a int) models.GameRecord {
	r := record(matchID, gameNumber, team, player)
	r.Kills, r.Deaths, r.Assists = k, d, a
	return r
}

func rosterEntry(realName, ign string, previous ...string) models.PlayerIdentity {
	return models.PlayerIdentity{
		RealName:     realName,
		IGN:          ign,
		PreviousIGNs: previous,
		TeamName:     "Alpha",
	}
}

func leagueMatch(matchID string, day int, blue, red string, scoreBlue, scoreRed int, winner, loser string) models.MatchResult {
	return models.MatchResult{
		MatchID:   matchID,
		MatchDay:  day,
		TeamBlue:  blue,
		TeamRed:   red,
		ScoreBlue: scoreBlue,
		ScoreRed:  scoreRed,
		Winner:    strPtr(winner),
		Loser:     strPtr(loser),
	}
}

func findStanding(t []models.StandingsRow, name string) (models.StandingsRow, bool) {
	for _, row := range t {
		if row.Name == name {
			return row, true
		}
	}
	return models.StandingsRow{}, false
}
