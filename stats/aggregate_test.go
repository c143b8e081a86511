package stats

import (
	"testing"

	"github.com/moba-league/league-system/models"
)

// ---- Player aggregation ----

// A player's games under an old IGN and the current IGN must merge into a
// single stat line keyed by the roster real name.
func TestComputePlayerStats_AliasMerge(t *testing.T) {
	roster := []models.PlayerIdentity{rosterEntry("Alice Tan", "NewName", "OldName")}
	games := []models.GameRecord{
		recordKDA("1_A_vs_B", 1, "Alpha", "OldName", 5, 2, 3),
		recordKDA("1_A_vs_B", 2, "Alpha", "NewName", 7, 1, 4),
	}

	rows := ComputePlayerStats(games, roster)
	if len(rows) != 1 {
		t.Fatalf("expected 1 merged row, got %d", len(rows))
	}
	row := rows[0]
	if row.RealName != "Alice Tan" {
		t.Errorf("RealName = %q, want %q", row.RealName, "Alice Tan")
	}
	if row.GamesPlayed != 2 {
		t.Errorf("GamesPlayed = %d, want 2", row.GamesPlayed)
	}
	if row.TotalKills != 12 || row.TotalDeaths != 3 || row.TotalAssists != 7 {
		t.Errorf("totals = %d/%d/%d, want 12/3/7", row.TotalKills, row.TotalDeaths, row.TotalAssists)
	}
	// The as-played label keeps the last raw name seen.
	if row.PlayerName != "NewName" {
		t.Errorf("PlayerName = %q, want last-seen raw %q", row.PlayerName, "NewName")
	}
}

func TestComputePlayerStats_DerivedFields(t *testing.T) {
	games := []models.GameRecord{
		func() models.GameRecord {
			r := recordKDA("1_A_vs_B", 1, "Alpha", "Solo", 8, 2, 4)
			r.Won = true
			r.IsMVP = true
			return r
		}(),
		recordKDA("1_A_vs_B", 2, "Alpha", "Solo", 2, 4, 2),
	}

	rows := ComputePlayerStats(games, nil)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.KDA != 2.67 { // (10+6)/6
		t.Errorf("KDA = %v, want 2.67", row.KDA)
	}
	if row.WinRate != 50.0 {
		t.Errorf("WinRate = %v, want 50.0", row.WinRate)
	}
	if row.MVPRate != 50.0 {
		t.Errorf("MVPRate = %v, want 50.0", row.MVPRate)
	}
	if row.AvgKillsPerGame != 5.0 {
		t.Errorf("AvgKillsPerGame = %v, want 5.0", row.AvgKillsPerGame)
	}
}

func TestComputePlayerStats_EmptyInput(t *testing.T) {
	rows := ComputePlayerStats(nil, nil)
	if len(rows) != 0 {
		t.Fatalf("expected empty result, got %d rows", len(rows))
	}
}

// Same raw name on two different teams stays two stat lines: the grouping
// key is (canonical player, team).
func TestComputePlayerStats_SplitAcrossTeams(t *testing.T) {
	games := []models.GameRecord{
		recordKDA("1_A_vs_B", 1, "Alpha", "Nomad", 3, 1, 1),
		recordKDA("2_B_vs_C", 1, "Bravo", "Nomad", 4, 1, 1),
	}
	rows := ComputePlayerStats(games, nil)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows for 2 teams, got %d", len(rows))
	}
}

// ---- Team aggregation ----

// 12 raw per-player rows = 2 full games + 2 stray rows → 3 real games.
func TestComputeTeamStats_RealGamesCeiling(t *testing.T) {
	games := make([]models.GameRecord, 0, 12)
	for i := 0; i < 12; i++ {
		g := record("1_A_vs_B", 1+i/5, "Alpha", "P")
		games = append(games, g)
	}

	rows := ComputeTeamStats(games)
	if len(rows) != 1 {
		t.Fatalf("expected 1 team row, got %d", len(rows))
	}
	if rows[0].RealGamesPlayed != 3 {
		t.Errorf("RealGamesPlayed = %d, want ceil(12/5) = 3", rows[0].RealGamesPlayed)
	}
}

func TestComputeTeamStats_RealWinsAndLosses(t *testing.T) {
	games := make([]models.GameRecord, 0, 10)
	for i := 0; i < 10; i++ {
		g := record("1_A_vs_B", 1+i/5, "Alpha", "P")
		g.Won = i < 5 // first game won, second lost
		games = append(games, g)
	}

	rows := ComputeTeamStats(games)
	row := rows[0]
	if row.RealGamesPlayed != 2 || row.RealWins != 1 || row.RealLosses != 1 {
		t.Errorf("games/wins/losses = %d/%d/%d, want 2/1/1",
			row.RealGamesPlayed, row.RealWins, row.RealLosses)
	}
	// Team win rate uses real counts, not raw rows.
	if row.WinRate != 50.0 {
		t.Errorf("WinRate = %v, want 50.0", row.WinRate)
	}
}

func TestComputeTeamStats_EmptyInput(t *testing.T) {
	if rows := ComputeTeamStats(nil); len(rows) != 0 {
		t.Fatalf("expected empty result, got %d rows", len(rows))
	}
}

// ---- Player-hero affinity ----

func TestComputePlayerHeroStats_TopThreeByGames(t *testing.T) {
	mk := func(hero string, n int) []models.GameRecord {
		out := make([]models.GameRecord, 0, n)
		for i := 0; i < n; i++ {
			g := recordKDA("1_A_vs_B", i+1, "Alpha", "Solo", 2, 1, 1)
			g.Hero = hero
			out = append(out, g)
		}
		return out
	}
	var games []models.GameRecord
	games = append(games, mk("Layla", 4)...)
	games = append(games, mk("Zilong", 2)...)
	games = append(games, mk("Franco", 3)...)
	games = append(games, mk("Eudora", 1)...)

	rows := ComputePlayerHeroStats(games, nil)
	if len(rows) != 1 {
		t.Fatalf("expected 1 player, got %d", len(rows))
	}
	heroes := rows[0].TopHeroes
	if len(heroes) != 3 {
		t.Fatalf("expected top 3 heroes, got %d", len(heroes))
	}
	want := []string{"Layla", "Franco", "Zilong"}
	for i, h := range heroes {
		if h.Hero != want[i] {
			t.Errorf("hero[%d] = %q, want %q", i, h.Hero, want[i])
		}
	}
	if heroes[0].Games != 4 || heroes[0].Kills != 8 {
		t.Errorf("Layla line = %d games / %d kills, want 4 / 8", heroes[0].Games, heroes[0].Kills)
	}
}

func TestComputePlayerHeroStats_ResolvesAliases(t *testing.T) {
	roster := []models.PlayerIdentity{rosterEntry("Alice Tan", "NewName", "OldName")}
	g1 := record("1_A_vs_B", 1, "Alpha", "OldName")
	g2 := record("1_A_vs_B", 2, "Alpha", "NewName")
	rows := ComputePlayerHeroStats([]models.GameRecord{g1, g2}, roster)
	if len(rows) != 1 {
		t.Fatalf("expected aliases merged into 1 player, got %d", len(rows))
	}
	if rows[0].TopHeroes[0].Games != 2 {
		t.Errorf("hero games = %d, want 2", rows[0].TopHeroes[0].Games)
	}
}
