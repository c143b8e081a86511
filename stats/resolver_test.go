package stats

import (
	"testing"

	"github.com/moba-league/league-system/models"
)

func TestResolve_CurrentIGN(t *testing.T) {
	roster := []models.PlayerIdentity{rosterEntry("Alice Tan", "NewName", "OldName")}
	if got := ResolvePlayerName("NewName", roster); got != "Alice Tan" {
		t.Errorf("Resolve(NewName) = %q, want %q", got, "Alice Tan")
	}
}

func TestResolve_PreviousIGN(t *testing.T) {
	roster := []models.PlayerIdentity{rosterEntry("Alice Tan", "NewName", "OldName", "OlderName")}
	for _, alias := range []string{"OldName", "OlderName"} {
		if got := ResolvePlayerName(alias, roster); got != "Alice Tan" {
			t.Errorf("Resolve(%s) = %q, want %q", alias, got, "Alice Tan")
		}
	}
}

func TestResolve_RealNameMatchesItself(t *testing.T) {
	roster := []models.PlayerIdentity{rosterEntry("Alice Tan", "NewName")}
	if got := ResolvePlayerName("Alice Tan", roster); got != "Alice Tan" {
		t.Errorf("Resolve(real name) = %q, want %q", got, "Alice Tan")
	}
}

// Unknown names fall back to the raw string so guests still show up in stats.
func TestResolve_UnknownFallsBackToRaw(t *testing.T) {
	roster := []models.PlayerIdentity{rosterEntry("Alice Tan", "NewName")}
	if got := ResolvePlayerName("RandomGuest", roster); got != "RandomGuest" {
		t.Errorf("Resolve(unknown) = %q, want raw name back", got)
	}
}

func TestResolve_EmptyRoster(t *testing.T) {
	if got := ResolvePlayerName("Anyone", nil); got != "Anyone" {
		t.Errorf("Resolve with empty roster = %q, want %q", got, "Anyone")
	}
}

// Overlapping alias sets are invalid roster data but must not break lookups:
// the entry earliest in roster order wins, deterministically.
func TestResolve_AliasCollisionFirstEntryWins(t *testing.T) {
	roster := []models.PlayerIdentity{
		rosterEntry("Alice Tan", "Shadow"),
		rosterEntry("Bob Lee", "Shadow"),
	}
	if got := ResolvePlayerName("Shadow", roster); got != "Alice Tan" {
		t.Errorf("collided alias resolved to %q, want first entry %q", got, "Alice Tan")
	}
}

func TestResolve_CaseSensitive(t *testing.T) {
	roster := []models.PlayerIdentity{rosterEntry("Alice Tan", "Shadow")}
	if got := ResolvePlayerName("shadow", roster); got != "shadow" {
		t.Errorf("lookup should be case-sensitive, got %q", got)
	}
}
