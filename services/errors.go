package services

import "errors"

// Shared sentinels used across services and the HTTP error mapping.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation / business rules
	ErrValidationFailed    = errors.New("validation failed")
	ErrResultTeamsRequired = errors.New("both team names are required")
	ErrResultSameTeam      = errors.New("a team cannot play itself")
	ErrResultInvalidDay    = errors.New("match day must be positive")
	ErrResultInvalidScore  = errors.New("scores must not be negative")
	ErrRosterNameRequired  = errors.New("player real name is required")
	ErrRosterIGNRequired   = errors.New("player in-game name is required")
	ErrScheduleNeedsTeams  = errors.New("schedule generation needs at least two teams")

	// Conflicts
	ErrRosterNameConflict = errors.New("player real name is already registered")

	// Query-path failures (wrap the storage error)
	ErrStatsQueryFailed   = errors.New("failed to compute statistics")
	ErrResultsListFailed  = errors.New("failed to list match results")
	ErrResultSaveFailed   = errors.New("failed to save match result")
	ErrRecordsSaveFailed  = errors.New("failed to save game records")
	ErrRosterListFailed   = errors.New("failed to list roster")
	ErrScheduleLoadFailed = errors.New("failed to load schedule")
	ErrScheduleSaveFailed = errors.New("failed to save schedule")
)
