package schedule

import (
	"fmt"

	"github.com/moba-league/league-system/models"
)

// GenerateRoundRobin produces a single round-robin draw using the standard
// rotation (circle) method: one team stays fixed while the rest rotate one
// position per match day. Every team meets every other team exactly once.
// An odd team count gets a BYE slot; whoever draws it sits the day out.
func GenerateRoundRobin(teams []string) ([]models.ScheduledMatch, error) {
	if len(teams) < 2 {
		return nil, fmt.Errorf("round robin needs at least 2 teams, got %d", len(teams))
	}

	rotation := make([]string, len(teams))
	copy(rotation, teams)
	if len(rotation)%2 != 0 {
		rotation = append(rotation, models.ByeOpponent)
	}

	n := len(rotation)
	days := n - 1
	matches := make([]models.ScheduledMatch, 0, days*n/2)

	for day := 1; day <= days; day++ {
		for i := 0; i < n/2; i++ {
			a := rotation[i]
			b := rotation[n-1-i]
			matches = append(matches, models.ScheduledMatch{
				MatchDay: day,
				TeamA:    a,
				TeamB:    b,
			})
		}
		// Rotate all but the first slot.
		last := rotation[n-1]
		copy(rotation[2:], rotation[1:n-1])
		rotation[1] = last
	}

	return matches, nil
}
