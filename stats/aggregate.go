package stats

import (
	"sort"

	"github.com/moba-league/league-system/models"
)

// entityTotals is the running fold state for one aggregation key. Raw display
// names are kept as a secondary "as-played" label next to the canonical name.
type entityTotals struct {
	kills    int
	deaths   int
	assists  int
	games    int
	wins     int
	mvps     int
	duration int

	lastRawName string
	lastTeam    string
}

func (t *entityTotals) add(g models.GameRecord) {
	t.kills += g.Kills
	t.deaths += g.Deaths
	t.assists += g.Assists
	t.games++
	if g.Won {
		t.wins++
	}
	if g.IsMVP {
		t.mvps++
	}
	t.duration += g.DurationSeconds
	t.lastRawName = g.PlayerName
	t.lastTeam = g.TeamName
}

type playerKey struct {
	realName string
	teamName string
}

// foldByPlayer groups game records by (canonical player, team) preserving
// first-seen key order so output is deterministic before ranking.
func foldByPlayer(games []models.GameRecord, resolver Resolver) ([]playerKey, map[playerKey]*entityTotals) {
	order := make([]playerKey, 0)
	totals := make(map[playerKey]*entityTotals)
	for _, g := range games {
		key := playerKey{realName: resolver.Resolve(g.PlayerName), teamName: g.TeamName}
		t, ok := totals[key]
		if !ok {
			t = &entityTotals{}
			totals[key] = t
			order = append(order, key)
		}
		t.add(g)
	}
	return order, totals
}

// ComputePlayerStats aggregates per-game records into one stat line per
// (canonical player, team) and ranks them for the player leaderboard.
func ComputePlayerStats(games []models.GameRecord, roster []models.PlayerIdentity) []models.PlayerStatRow {
	resolver := NewResolver(roster)
	order, totals := foldByPlayer(games, resolver)

	rows := make([]models.PlayerStatRow, 0, len(order))
	for _, key := range order {
		t := totals[key]
		rows = append(rows, models.PlayerStatRow{
			RealName:          key.realName,
			PlayerName:        t.lastRawName,
			TeamName:          key.teamName,
			TotalKills:        t.kills,
			TotalDeaths:       t.deaths,
			TotalAssists:      t.assists,
			GamesPlayed:       t.games,
			MVPCount:          t.mvps,
			Wins:              t.wins,
			WinRate:           Percentage(t.wins, t.games),
			AvgKillsPerGame:   PerGame(t.kills, t.games),
			AvgDeathsPerGame:  PerGame(t.deaths, t.games),
			AvgAssistsPerGame: PerGame(t.assists, t.games),
			MVPRate:           Percentage(t.mvps, t.games),
			KDA:               KDA(t.kills, t.deaths, t.assists),
		})
	}

	SortPlayerRows(rows)
	return rows
}

// ComputeTeamStats aggregates per-game records by team. GameRecord rows are
// per-player, so raw per-team counts over-count by the roster size: "real"
// games and wins divide by 5 rounding up, and per-game averages use real
// games as the denominator.
func ComputeTeamStats(games []models.GameRecord) []models.TeamStatRow {
	order := make([]string, 0)
	totals := make(map[string]*entityTotals)
	for _, g := range games {
		t, ok := totals[g.TeamName]
		if !ok {
			t = &entityTotals{}
			totals[g.TeamName] = t
			order = append(order, g.TeamName)
		}
		t.add(g)
	}

	rows := make([]models.TeamStatRow, 0, len(order))
	for _, name := range order {
		t := totals[name]
		realGames := ceilDiv(t.games, models.PlayersPerSide)
		realWins := ceilDiv(t.wins, models.PlayersPerSide)
		rows = append(rows, models.TeamStatRow{
			TeamName:          name,
			TotalKills:        t.kills,
			TotalDeaths:       t.deaths,
			TotalAssists:      t.assists,
			MVPCount:          t.mvps,
			RealGamesPlayed:   realGames,
			RealWins:          realWins,
			RealLosses:        realGames - realWins,
			WinRate:           Percentage(realWins, realGames),
			AvgKillsPerGame:   PerGame(t.kills, realGames),
			AvgDeathsPerGame:  PerGame(t.deaths, realGames),
			AvgAssistsPerGame: PerGame(t.assists, realGames),
			AvgDuration:       PerGame(t.duration, t.games),
			KDA:               KDA(t.kills, t.deaths, t.assists),
		})
	}

	SortTeamRows(rows)
	return rows
}

// ComputePlayerHeroStats lists each player's three most-played heroes with
// per-hero K/D/A, games and wins. Players appear in order of total games
// played descending; heroes within a player by games played descending.
func ComputePlayerHeroStats(games []models.GameRecord, roster []models.PlayerIdentity) []models.PlayerHeroStatRow {
	resolver := NewResolver(roster)

	type heroKey struct {
		realName string
		hero     string
	}
	playerOrder := make([]string, 0)
	heroOrder := make(map[string][]string) // realName -> heroes in first-seen order
	totals := make(map[heroKey]*entityTotals)
	lastRaw := make(map[string]string)
	gamesByPlayer := make(map[string]int)

	for _, g := range games {
		real := resolver.Resolve(g.PlayerName)
		if _, seen := gamesByPlayer[real]; !seen {
			playerOrder = append(playerOrder, real)
		}
		gamesByPlayer[real]++
		lastRaw[real] = g.PlayerName

		key := heroKey{realName: real, hero: g.Hero}
		t, ok := totals[key]
		if !ok {
			t = &entityTotals{}
			totals[key] = t
			heroOrder[real] = append(heroOrder[real], g.Hero)
		}
		t.add(g)
	}

	rows := make([]models.PlayerHeroStatRow, 0, len(playerOrder))
	for _, real := range playerOrder {
		heroes := make([]models.HeroAffinity, 0, len(heroOrder[real]))
		for _, hero := range heroOrder[real] {
			t := totals[heroKey{realName: real, hero: hero}]
			heroes = append(heroes, models.HeroAffinity{
				Hero:    hero,
				Games:   t.games,
				Wins:    t.wins,
				Kills:   t.kills,
				Deaths:  t.deaths,
				Assists: t.assists,
			})
		}
		sort.SliceStable(heroes, func(i, j int) bool {
			return heroes[i].Games > heroes[j].Games
		})
		if len(heroes) > 3 {
			heroes = heroes[:3]
		}
		rows = append(rows, models.PlayerHeroStatRow{
			RealName:   real,
			PlayerName: lastRaw[real],
			TopHeroes:  heroes,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return gamesByPlayer[rows[i].RealName] > gamesByPlayer[rows[j].RealName]
	})
	return rows
}
