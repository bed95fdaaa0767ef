// Package repository provides access to the remote member store.
package repository

import (
	"context"

	"github.com/coopebred/registro-socios/internal/models"
)

// MemberStore defines the store-agnostic interface for member records.
// Implementations must be safe for concurrent use.
type MemberStore interface {
	// FindIndividualsByCedula returns the individual members whose cedula equals the given value
	FindIndividualsByCedula(ctx context.Context, cedula string) ([]models.IndividualMember, error)

	// InsertIndividual stores a new individual member and returns the affected row count
	InsertIndividual(ctx context.Context, member *models.IndividualMember) (int64, error)

	// InsertCorporate stores a new corporate member and returns the affected row count
	InsertCorporate(ctx context.Context, member *models.CorporateMember) (int64, error)

	// Ping verifies that the store is reachable
	Ping(ctx context.Context) error
}
