// Package rolllog keeps a short-lived record of the dice rolled for an investigator
package rolllog

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=rolllogmock github.com/KirkDiggler/coc-api/internal/repositories/roll_log Repository

// Roll contexts
const (
	ContextCharacteristics = "characteristics"
	ContextImprovement     = "improvement"
)

// RollLog is the list of rolls made for one investigator
type RollLog struct {
	InvestigatorID string
	Entries        []Entry
	CreatedAt      time.Time
	ExpiresAt      time.Time
}

// Entry is a single roll
type Entry struct {
	// ID is unique within the log
	ID string

	// Context groups related rolls, e.g. "characteristics"
	Context string

	// Label names what was rolled, e.g. "STR" or "Spot Hidden check"
	Label string

	// Notation is the dice expression, e.g. "3d6*5"
	Notation string

	// Dice holds the individual faces
	Dice []int

	// Total is the final result
	Total int

	RolledAt time.Time
}

// AppendInput contains the rolls to add
type AppendInput struct {
	InvestigatorID string
	Entries        []Entry
	TTL            time.Duration // zero uses the repository default
}

// AppendOutput contains the log after the append
type AppendOutput struct {
	Log *RollLog
}

// GetInput identifies a log
type GetInput struct {
	InvestigatorID string
}

// GetOutput contains the log
type GetOutput struct {
	Log *RollLog
}

// ClearInput identifies a log
type ClearInput struct {
	InvestigatorID string
}

// ClearOutput reports how many rolls were removed
type ClearOutput struct {
	EntriesDeleted int
}

// Repository defines roll log storage
type Repository interface {
	// Append adds rolls, creating the log if needed and extending its expiry
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// Get returns the log, errors.NotFound if it is missing or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Clear removes the log. Clearing a missing log is not an error.
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}
