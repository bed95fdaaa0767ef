// Package testutil provides test doubles shared by handler and service tests.
package testutil

import (
	"context"
	"sync"

	"github.com/coopebred/registro-socios/internal/models"
)

// MockStore is an in-memory implementation of repository.MemberStore for testing.
// Set the *Err fields to make the corresponding call fail, or FindPanic to make the
// duplicate lookup panic.
type MockStore struct {
	mu sync.Mutex

	Individuals []models.IndividualMember
	Corporates  []models.CorporateMember

	FindErr             error
	FindPanic           any
	InsertIndividualErr error
	InsertCorporateErr  error
	PingErr             error

	FindCalls             int
	InsertIndividualCalls int
	InsertCorporateCalls  int
}

// NewMockStore creates a new MockStore instance
func NewMockStore() *MockStore {
	return &MockStore{}
}

// FindIndividualsByCedula returns stored individuals with a matching cedula
func (m *MockStore) FindIndividualsByCedula(ctx context.Context, cedula string) ([]models.IndividualMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.FindCalls++
	if m.FindPanic != nil {
		panic(m.FindPanic)
	}
	if m.FindErr != nil {
		return nil, m.FindErr
	}

	matches := []models.IndividualMember{}
	for _, member := range m.Individuals {
		if member.Cedula == cedula {
			matches = append(matches, member)
		}
	}
	return matches, nil
}

// InsertIndividual appends the member unless InsertIndividualErr is set
func (m *MockStore) InsertIndividual(ctx context.Context, member *models.IndividualMember) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.InsertIndividualCalls++
	if m.InsertIndividualErr != nil {
		return 0, m.InsertIndividualErr
	}
	m.Individuals = append(m.Individuals, *member)
	return 1, nil
}

// InsertCorporate appends the member unless InsertCorporateErr is set
func (m *MockStore) InsertCorporate(ctx context.Context, member *models.CorporateMember) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.InsertCorporateCalls++
	if m.InsertCorporateErr != nil {
		return 0, m.InsertCorporateErr
	}
	m.Corporates = append(m.Corporates, *member)
	return 1, nil
}

// Ping returns PingErr
func (m *MockStore) Ping(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.PingErr
}

// TotalCalls returns the number of find and insert calls made so far
func (m *MockStore) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.FindCalls + m.InsertIndividualCalls + m.InsertCorporateCalls
}
