package models

import (
	"time"

	"github.com/google/uuid"
)

// ScheduledMatch is one pairing inside a generated round-robin draw.
// A team paired against ByeOpponent sits the round out.
type ScheduledMatch struct {
	MatchDay int    `json:"match_day"`
	TeamA    string `json:"team_a"`
	TeamB    string `json:"team_b"`
}

const ByeOpponent = "BYE"

// ScheduleSnapshot is one immutable generated draw. The "current" schedule is
// simply the most recently created snapshot; older snapshots stay queryable
// so regenerations remain auditable.
type ScheduleSnapshot struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	Matches   []ScheduledMatch `json:"matches" db:"-"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}
