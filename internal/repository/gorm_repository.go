package repository

import (
	"context"
	"fmt"

	"github.com/coopebred/registro-socios/internal/models"
	"gorm.io/gorm"
)

// GormStore implements MemberStore using GORM (works with SQLite or PostgreSQL).
// Database errors are returned unwrapped so callers can surface the store's message.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// FindIndividualsByCedula queries SocioIndividual by cedula
func (s *GormStore) FindIndividualsByCedula(ctx context.Context, cedula string) ([]models.IndividualMember, error) {
	var members []models.IndividualMember
	if err := s.db.WithContext(ctx).Where("cedula = ?", cedula).Find(&members).Error; err != nil {
		return nil, err
	}
	if members == nil {
		members = []models.IndividualMember{}
	}
	return members, nil
}

// InsertIndividual inserts one row into SocioIndividual
func (s *GormStore) InsertIndividual(ctx context.Context, member *models.IndividualMember) (int64, error) {
	result := s.db.WithContext(ctx).Create(member)
	return result.RowsAffected, result.Error
}

// InsertCorporate inserts one row into SocioEmpresa
func (s *GormStore) InsertCorporate(ctx context.Context, member *models.CorporateMember) (int64, error) {
	result := s.db.WithContext(ctx).Create(member)
	return result.RowsAffected, result.Error
}

// Ping checks the underlying connection pool
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
