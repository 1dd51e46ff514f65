// Package store persists generated plans so they can be fetched again by ID.
//
// Plans are stored as [plan.Snapshot] values. Three backends are provided:
//   - [MemoryStore]: in-process map for tests and a standalone server
//   - [FileStore]: one JSON file per plan for the CLI
//   - [MongoStore]: a MongoDB collection for a shared server deployment
//
// Save assigns a random UUID and a creation time when the snapshot has
// none. Get reports a missing plan with [errors.ErrCodePlanNotFound].
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/plan"
)

// DefaultListLimit bounds List when the caller passes a non-positive limit.
const DefaultListLimit = 50

// Store is the interface for plan storage backends.
type Store interface {
	// Save stores s and returns its ID. s.ID and s.CreatedAt are filled in
	// when empty.
	Save(ctx context.Context, s *plan.Snapshot) (string, error)

	// Get returns the plan with the given ID.
	Get(ctx context.Context, id string) (*plan.Snapshot, error)

	// List returns up to limit plans, newest first.
	List(ctx context.Context, limit int) ([]*plan.Snapshot, error)

	// Delete removes a plan. Deleting a missing plan is not an error.
	Delete(ctx context.Context, id string) error

	Close() error
}

// prepare stamps s with an ID and creation time if missing.
func prepare(s *plan.Snapshot) error {
	if s == nil {
		return errors.New(errors.ErrCodeInvalidInput, "nil snapshot")
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	} else if err := errors.ValidatePlanID(s.ID); err != nil {
		return err
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	return nil
}

func notFound(id string) error {
	return errors.New(errors.ErrCodePlanNotFound, "plan %s not found", id)
}

func listLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}
