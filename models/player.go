package models

import (
	"time"

	"github.com/lib/pq"
)

// PlayerIdentity is a roster entry: the canonical real name a player's
// statistics are attributed to, the current in-game name, and every previous
// in-game name the player has appeared under.
//
// Alias sets across roster entries should not overlap; when they do, the
// resolver picks the first matching entry in roster order.
type PlayerIdentity struct {
	ID           int            `json:"id" db:"id"`
	RealName     string         `json:"real_name" db:"real_name"`
	IGN          string         `json:"ign" db:"ign"`
	PreviousIGNs pq.StringArray `json:"previous_igns" db:"previous_igns"`
	TeamName     string         `json:"team_name" db:"team_name"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
}
