package stats

import (
	"sort"

	"github.com/moba-league/league-system/models"
)

// Leaderboard orderings. Both sorts are stable, so anything still tied after
// the listed keys keeps its input order.

// SortPlayerRows orders the player leaderboard: KDA descending, then total
// kills descending, then MVP count descending.
func SortPlayerRows(rows []models.PlayerStatRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.KDA != b.KDA {
			return a.KDA > b.KDA
		}
		if a.TotalKills != b.TotalKills {
			return a.TotalKills > b.TotalKills
		}
		return a.MVPCount > b.MVPCount
	})
}

// SortTeamRows orders the team leaderboard: win rate descending, then wins
// descending, then KDA descending, then total kills descending, with team
// name ascending as the final key so the order is total.
func SortTeamRows(rows []models.TeamStatRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.WinRate != b.WinRate {
			return a.WinRate > b.WinRate
		}
		if a.RealWins != b.RealWins {
			return a.RealWins > b.RealWins
		}
		if a.KDA != b.KDA {
			return a.KDA > b.KDA
		}
		if a.TotalKills != b.TotalKills {
			return a.TotalKills > b.TotalKills
		}
		return a.TeamName < b.TeamName
	})
}
