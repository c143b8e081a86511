package stats

import (
	"reflect"
	"testing"

	"github.com/moba-league/league-system/models"
)

// End-to-end single match: a straightforward 2-1 win.
func TestComputeStandings_SingleMatch(t *testing.T) {
	matches := []models.MatchResult{
		leagueMatch("1_A_vs_B", 1, "A", "B", 2, 1, "A", "B"),
	}

	table := ComputeStandings(matches)
	if len(table) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table))
	}
	wantA := models.StandingsRow{Name: "A", Played: 1, Won: 1, Lost: 0, GD: 1, Points: 3}
	wantB := models.StandingsRow{Name: "B", Played: 1, Won: 0, Lost: 1, GD: -1, Points: 0}
	if table[0] != wantA {
		t.Errorf("row 0 = %+v, want %+v", table[0], wantA)
	}
	if table[1] != wantB {
		t.Errorf("row 1 = %+v, want %+v", table[1], wantB)
	}
}

// Knockout matches (matchDay >= 90) must contribute nothing.
func TestComputeStandings_KnockoutExcluded(t *testing.T) {
	matches := []models.MatchResult{
		leagueMatch("90_A_vs_B", 90, "A", "B", 2, 0, "A", "B"),
	}
	table := ComputeStandings(matches)
	if len(table) != 0 {
		t.Fatalf("knockout-only input should yield an empty table, got %d rows", len(table))
	}
}

// A bye win counts for W/L/points but its scores never reach game difference.
func TestComputeStandings_ByeGameDifferenceNeutral(t *testing.T) {
	m := leagueMatch("3_A_vs_B", 3, "A", "B", 2, 0, "A", "B")
	m.IsByeWin = true
	table := ComputeStandings([]models.MatchResult{m})

	a, _ := findStanding(table, "A")
	b, _ := findStanding(table, "B")
	if a.GD != 0 || b.GD != 0 {
		t.Errorf("bye GD = %d / %d, want 0 / 0", a.GD, b.GD)
	}
	if a.Won != 1 || a.Points != 3 || b.Lost != 1 {
		t.Errorf("bye must still credit the win: %+v / %+v", a, b)
	}
}

// A malformed bye entry can carry nil winner/loser. The match still counts as
// played for both sides but credits neither a win nor a loss.
func TestComputeStandings_NilWinnerDegradesSafely(t *testing.T) {
	m := models.MatchResult{
		MatchID: "4_A_vs_B", MatchDay: 4,
		TeamBlue: "A", TeamRed: "B",
		ScoreBlue: 1, ScoreRed: 0,
		IsByeWin: true, // winner/loser left nil by the save fallback
	}
	table := ComputeStandings([]models.MatchResult{m})

	for _, name := range []string{"A", "B"} {
		row, ok := findStanding(table, name)
		if !ok {
			t.Fatalf("team %s missing from table", name)
		}
		if row.Played != 1 || row.Won != 0 || row.Lost != 0 || row.Points != 0 {
			t.Errorf("%s = %+v, want played 1 with no W/L/points credit", name, row)
		}
	}
}

func TestComputeStandings_SortOrder(t *testing.T) {
	matches := []models.MatchResult{
		leagueMatch("1_A_vs_B", 1, "A", "B", 2, 0, "A", "B"),
		leagueMatch("2_C_vs_D", 2, "C", "D", 2, 1, "C", "D"),
	}
	table := ComputeStandings(matches)
	// A and C both have 3 points; A's +2 GD outranks C's +1.
	if table[0].Name != "A" || table[1].Name != "C" {
		t.Errorf("order = %s, %s; want A then C (points, then GD)", table[0].Name, table[1].Name)
	}
	// D (-1) outranks B (-2) on GD at 0 points.
	if table[2].Name != "D" || table[3].Name != "B" {
		t.Errorf("order = %s, %s; want D then B", table[2].Name, table[3].Name)
	}
}

func TestComputeStandings_EmptyInput(t *testing.T) {
	if table := ComputeStandings(nil); len(table) != 0 {
		t.Fatalf("expected empty table, got %d rows", len(table))
	}
}

func TestComputeStandings_Deterministic(t *testing.T) {
	matches := []models.MatchResult{
		leagueMatch("1_A_vs_B", 1, "A", "B", 2, 1, "A", "B"),
		leagueMatch("2_B_vs_A", 2, "B", "A", 2, 1, "B", "A"),
	}
	first := ComputeStandings(matches)
	second := ComputeStandings(matches)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs over the same input differ:\n%+v\n%+v", first, second)
	}
}

// ---- Detailed standings ----

func TestComputeDetailedStandings_FormMostRecentFirst(t *testing.T) {
	matches := []models.MatchResult{
		leagueMatch("1_A_vs_B", 1, "A", "B", 2, 0, "A", "B"),
		leagueMatch("2_A_vs_C", 2, "A", "C", 0, 2, "C", "A"),
		leagueMatch("3_A_vs_D", 3, "A", "D", 2, 1, "A", "D"),
	}
	table := ComputeDetailedStandings(matches)

	var a models.DetailedStandingsRow
	for _, row := range table {
		if row.Name == "A" {
			a = row
		}
	}
	want := []string{"W", "L", "W"} // day 3, day 2, day 1
	if !reflect.DeepEqual(a.Form, want) {
		t.Errorf("form = %v, want %v", a.Form, want)
	}
	if a.GF != 4 || a.GA != 3 {
		t.Errorf("gf/ga = %d/%d, want 4/3", a.GF, a.GA)
	}
}

func TestComputeDetailedStandings_FormCapsAtFive(t *testing.T) {
	matches := make([]models.MatchResult, 0, 7)
	for day := 1; day <= 7; day++ {
		matches = append(matches, leagueMatch("x", day, "A", "B", 2, 0, "A", "B"))
	}
	table := ComputeDetailedStandings(matches)
	for _, row := range table {
		if len(row.Form) > 5 {
			t.Errorf("%s form has %d entries, max is 5", row.Name, len(row.Form))
		}
	}
}

// Bye scores stay out of gf/ga just like they stay out of gd.
func TestComputeDetailedStandings_ByeExcludedFromGoals(t *testing.T) {
	m := leagueMatch("1_A_vs_B", 1, "A", "B", 2, 0, "A", "B")
	m.IsByeWin = true
	table := ComputeDetailedStandings([]models.MatchResult{m})
	for _, row := range table {
		if row.GF != 0 || row.GA != 0 {
			t.Errorf("%s gf/ga = %d/%d, want 0/0 for a bye", row.Name, row.GF, row.GA)
		}
	}
}
