package stats

import (
	"sort"

	"github.com/moba-league/league-system/models"
)

const (
	pointsPerWin = 3
	formLength   = 5
)

// perspectiveRow is one match seen from one team's side. Two are synthesized
// per league match.
type perspectiveRow struct {
	team         string
	opponent     string
	scoreFor     int
	scoreAgainst int
	winner       *string
	loser        *string
	isBye        bool
	matchDay     int
}

func matchesName(name *string, team string) bool {
	return name != nil && *name == team
}

// leagueRows expands league-stage matches into per-team perspective rows.
// Knockout matches (matchDay >= 90) are excluded entirely.
func leagueRows(matches []models.MatchResult) []perspectiveRow {
	rows := make([]perspectiveRow, 0, 2*len(matches))
	for _, m := range matches {
		if m.IsKnockout() {
			continue
		}
		rows = append(rows, perspectiveRow{
			team: m.TeamBlue, opponent: m.TeamRed,
			scoreFor: m.ScoreBlue, scoreAgainst: m.ScoreRed,
			winner: m.Winner, loser: m.Loser,
			isBye: m.IsByeWin, matchDay: m.MatchDay,
		})
		rows = append(rows, perspectiveRow{
			team: m.TeamRed, opponent: m.TeamBlue,
			scoreFor: m.ScoreRed, scoreAgainst: m.ScoreBlue,
			winner: m.Winner, loser: m.Loser,
			isBye: m.IsByeWin, matchDay: m.MatchDay,
		})
	}
	return rows
}

func groupRowsByTeam(rows []perspectiveRow) ([]string, map[string][]perspectiveRow) {
	order := make([]string, 0)
	byTeam := make(map[string][]perspectiveRow)
	for _, row := range rows {
		if _, seen := byTeam[row.team]; !seen {
			order = append(order, row.team)
		}
		byTeam[row.team] = append(byTeam[row.team], row)
	}
	return order, byTeam
}

func standingsFromRows(team string, rows []perspectiveRow) models.StandingsRow {
	s := models.StandingsRow{Name: team}
	for _, row := range rows {
		s.Played++
		// A nil winner/loser (malformed bye entry) matches no team: the match
		// still counts as played but credits neither a win nor a loss.
		if matchesName(row.winner, team) {
			s.Won++
		}
		if matchesName(row.loser, team) {
			s.Lost++
		}
		// Bye scores carry no meaningful differential.
		if !row.isBye {
			s.GD += row.scoreFor - row.scoreAgainst
		}
	}
	s.Points = pointsPerWin * s.Won
	return s
}

// ComputeStandings builds the league table from match results. Teams with no
// league matches do not appear; grouping is driven by existing rows.
func ComputeStandings(matches []models.MatchResult) []models.StandingsRow {
	order, byTeam := groupRowsByTeam(leagueRows(matches))

	table := make([]models.StandingsRow, 0, len(order))
	for _, team := range order {
		table = append(table, standingsFromRows(team, byTeam[team]))
	}

	sort.SliceStable(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GD != b.GD {
			return a.GD > b.GD
		}
		return a.Name < b.Name
	})
	return table
}

// ComputeDetailedStandings is ComputeStandings plus goals for/against and the
// recent form: W/L outcomes of each team's 5 most recent matches, most recent
// first. Unattributable matches (nil winner and loser) contribute no form
// letter.
func ComputeDetailedStandings(matches []models.MatchResult) []models.DetailedStandingsRow {
	order, byTeam := groupRowsByTeam(leagueRows(matches))

	table := make([]models.DetailedStandingsRow, 0, len(order))
	for _, team := range order {
		rows := byTeam[team]
		d := models.DetailedStandingsRow{StandingsRow: standingsFromRows(team, rows)}
		for _, row := range rows {
			if row.isBye {
				continue
			}
			d.GF += row.scoreFor
			d.GA += row.scoreAgainst
		}

		recent := make([]perspectiveRow, len(rows))
		copy(recent, rows)
		sort.SliceStable(recent, func(i, j int) bool {
			return recent[i].matchDay > recent[j].matchDay
		})
		d.Form = make([]string, 0, formLength)
		for _, row := range recent {
			if len(d.Form) == formLength {
				break
			}
			switch {
			case matchesName(row.winner, team):
				d.Form = append(d.Form, "W")
			case matchesName(row.loser, team):
				d.Form = append(d.Form, "L")
			}
		}
		table = append(table, d)
	}

	sort.SliceStable(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GD != b.GD {
			return a.GD > b.GD
		}
		return a.Name < b.Name
	})
	return table
}
