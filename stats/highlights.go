package stats

import (
	"fmt"

	"github.com/moba-league/league-system/models"
)

// Minimum sample sizes: a single lucky game must not dominate a season card.
const (
	minTeamRealGames = 2
	minHeroPicks     = 5
)

func formatPercent(part, total int) string {
	return fmt.Sprintf("%.1f", Percentage(part, total))
}

type gameKey struct {
	matchID    string
	gameNumber int
}

// ComputeSeasonStats scans the season's matches and game records for the
// highlight cards: totals, superlative games, top players, best team and the
// hero picks. Percentage fields come out as 1-decimal display strings since
// the cards surface them verbatim.
func ComputeSeasonStats(matches []models.MatchResult, games []models.GameRecord, roster []models.PlayerIdentity) models.SeasonStats {
	var out models.SeasonStats

	// Match/game totals exclude byes: a walkover is not played gameplay.
	for _, m := range matches {
		if m.IsByeWin {
			continue
		}
		out.TotalMatches++
		if len(m.GameDetails) > 0 {
			out.TotalGames += len(m.GameDetails)
		} else {
			out.TotalGames += m.ScoreBlue + m.ScoreRed
		}
	}

	// Longest game comes from per-match game details.
	for _, m := range matches {
		for _, gd := range m.GameDetails {
			if out.LongestGame == nil || gd.DurationSeconds > out.LongestGame.DurationSeconds {
				out.LongestGame = &models.GameHighlight{
					MatchID:         m.MatchID,
					GameNumber:      gd.GameNumber,
					DurationSeconds: gd.DurationSeconds,
				}
			}
		}
	}

	// Per-game scans group player rows by (match, game) first so the 10 rows
	// of one game are not counted 10 times.
	gameOrder := make([]gameKey, 0)
	killsByGame := make(map[gameKey]int)
	durationByGame := make(map[gameKey]int)
	for _, g := range games {
		key := gameKey{matchID: g.MatchID, gameNumber: g.GameNumber}
		if _, seen := killsByGame[key]; !seen {
			gameOrder = append(gameOrder, key)
			durationByGame[key] = g.DurationSeconds
		}
		killsByGame[key] += g.Kills
	}

	if len(gameOrder) > 0 {
		totalDuration := 0
		for _, key := range gameOrder {
			totalDuration += durationByGame[key]
		}
		out.AvgGameDuration = PerGame(totalDuration, len(gameOrder))
	}
	for _, key := range gameOrder {
		if out.BloodiestGame == nil || killsByGame[key] > out.BloodiestGame.TotalKills {
			out.BloodiestGame = &models.GameHighlight{
				MatchID:    key.matchID,
				GameNumber: key.gameNumber,
				TotalKills: killsByGame[key],
			}
		}
	}

	out.TopMVPPlayer, out.TopKiller = topPlayers(games, roster)
	out.BestTeam = bestTeam(games)
	out.MostPickedHero, out.BestWinRateHero = heroHighlights(games)

	return out
}

// topPlayers returns the season's top MVP collector and top killer, both
// resolved through the roster so aliases merge before counting.
func topPlayers(games []models.GameRecord, roster []models.PlayerIdentity) (topMVP, topKiller *models.PlayerHighlight) {
	resolver := NewResolver(roster)
	order, totals := foldByPlayer(games, resolver)

	for _, key := range order {
		t := totals[key]
		if t.mvps > 0 && (topMVP == nil || t.mvps > topMVP.Count) {
			topMVP = &models.PlayerHighlight{
				RealName:   key.realName,
				PlayerName: t.lastRawName,
				TeamName:   key.teamName,
				Count:      t.mvps,
			}
		}
		if t.kills > 0 && (topKiller == nil || t.kills > topKiller.Count) {
			topKiller = &models.PlayerHighlight{
				RealName:   key.realName,
				PlayerName: t.lastRawName,
				TeamName:   key.teamName,
				Count:      t.kills,
			}
		}
	}
	return topMVP, topKiller
}

// bestTeam picks the highest win rate among teams with at least 2 real games,
// breaking ties by real wins.
func bestTeam(games []models.GameRecord) *models.TeamHighlight {
	var best *models.TeamHighlight
	var bestRate float64

	for _, row := range ComputeTeamStats(games) {
		if row.RealGamesPlayed < minTeamRealGames {
			continue
		}
		if best == nil || row.WinRate > bestRate ||
			(row.WinRate == bestRate && row.RealWins > best.Wins) {
			best = &models.TeamHighlight{
				TeamName: row.TeamName,
				Games:    row.RealGamesPlayed,
				Wins:     row.RealWins,
				WinRate:  formatPercent(row.RealWins, row.RealGamesPlayed),
			}
			bestRate = row.WinRate
		}
	}
	return best
}

// heroHighlights computes the most-picked hero (raw row count) and the best
// win-rate hero among heroes with at least 5 picks (ties to the more picked).
func heroHighlights(games []models.GameRecord) (mostPicked, bestWinRate *models.HeroHighlight) {
	order := make([]string, 0)
	picks := make(map[string]int)
	wins := make(map[string]int)
	for _, g := range games {
		if _, seen := picks[g.Hero]; !seen {
			order = append(order, g.Hero)
		}
		picks[g.Hero]++
		if g.Won {
			wins[g.Hero]++
		}
	}

	var bestRate float64
	for _, hero := range order {
		h := models.HeroHighlight{
			Hero:    hero,
			Picks:   picks[hero],
			Wins:    wins[hero],
			WinRate: formatPercent(wins[hero], picks[hero]),
		}
		if mostPicked == nil || h.Picks > mostPicked.Picks {
			cp := h
			mostPicked = &cp
		}
		if h.Picks < minHeroPicks {
			continue
		}
		rate := Percentage(h.Wins, h.Picks)
		if bestWinRate == nil || rate > bestRate ||
			(rate == bestRate && h.Picks > bestWinRate.Picks) {
			cp := h
			bestWinRate = &cp
			bestRate = rate
		}
	}
	return mostPicked, bestWinRate
}
