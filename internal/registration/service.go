// Package registration implements the member registration workflows:
// validation, the cedula duplicate guard and record insertion.
package registration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/coopebred/registro-socios/internal/models"
	"github.com/coopebred/registro-socios/internal/repository"
)

// Service handles individual and corporate member registration
type Service struct {
	store repository.MemberStore
	now   func() time.Time
}

// Option configures a Service
type Option func(*Service)

// WithClock overrides the clock used for fecha_creacion
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new registration service instance
func NewService(store repository.MemberStore, opts ...Option) *Service {
	s := &Service{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckDuplicate rejects a cedula that already belongs to a stored individual member.
// The check is not atomic with the subsequent insert.
func (s *Service) CheckDuplicate(ctx context.Context, cedula string) error {
	var rows []models.IndividualMember
	err := safeStoreCall("find individuals by cedula", func() error {
		var err error
		rows, err = s.store.FindIndividualsByCedula(ctx, cedula)
		return err
	})
	if err != nil {
		return err
	}
	if len(rows) > 0 {
		slog.Warn("Rejected duplicate cedula", "cedula", cedula, "matches", len(rows))
		return ErrDuplicateCedula
	}
	return nil
}

// RegisterIndividual validates the payload, runs the duplicate guard and inserts the member
func (s *Service) RegisterIndividual(ctx context.Context, req *models.IndividualRegistrationRequest) (*models.MessageResponse, error) {
	if err := ValidateIndividual(req); err != nil {
		if vErr, ok := err.(*ValidationError); ok {
			slog.Warn("Individual registration missing required fields", "missing", vErr.Missing)
		}
		return nil, err
	}

	if err := s.CheckDuplicate(ctx, req.Cedula); err != nil {
		return nil, err
	}

	member := &models.IndividualMember{
		Names:           req.Names,
		Surnames:        req.Surnames,
		Cedula:          req.Cedula,
		Phone:           req.Phone,
		Email:           req.Email,
		Address:         req.Address,
		City:            req.City,
		StateProvince:   req.StateProvince,
		Country:         req.Country,
		AffiliationCity: req.AffiliationCity,
		BaseModel:       models.BaseModel{CreatedAt: s.now().UTC()},
	}

	err := safeStoreCall("insert individual", func() error {
		_, err := s.store.InsertIndividual(ctx, member)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Registered individual member", "cedula", member.Cedula)
	return &models.MessageResponse{Message: MsgIndividualRegistered}, nil
}

// RegisterCompany inserts a corporate member. There is no validation and no duplicate check;
// an empty or absent tax id is stored as NULL.
func (s *Service) RegisterCompany(ctx context.Context, req *models.CorporateRegistrationRequest) (*models.MessageResponse, error) {
	member := &models.CorporateMember{
		MemberType:          req.MemberType,
		ManagerNames:        req.ManagerNames,
		ManagerSurnames:     req.ManagerSurnames,
		ManagerCedula:       req.ManagerCedula,
		ManagerPhone:        req.ManagerPhone,
		ManagerEmail:        req.ManagerEmail,
		ManagerAddress:      req.ManagerAddress,
		ManagerMunicipality: req.ManagerMunicipality,
		ManagerProvince:     req.ManagerProvince,
		LegalName:           req.LegalName,
		RNC:                 nullIfEmpty(req.RNC),
		CommercialRegistry:  req.CommercialRegistry,
		EconomicActivity:    req.EconomicActivity,
		CompanyAddress:      req.CompanyAddress,
		CompanyPhone:        req.CompanyPhone,
		CompanyEmail:        req.CompanyEmail,
		BaseModel:           models.BaseModel{CreatedAt: s.now().UTC()},
	}

	err := safeStoreCall("insert corporate", func() error {
		_, err := s.store.InsertCorporate(ctx, member)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Registered corporate member", "razon_social", valueOrEmpty(member.LegalName))
	return &models.MessageResponse{Message: MsgCorporateRegistered}, nil
}

// safeStoreCall runs a store operation, converting both returned errors and panics into *StoreError
func safeStoreCall(op string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Store call panicked", "op", op, "panic", r)
			err = &StoreError{Op: op, Err: fmt.Errorf("%v", r)}
		}
	}()

	if callErr := fn(); callErr != nil {
		slog.Error("Store call failed", "op", op, "error", callErr)
		return &StoreError{Op: op, Err: callErr}
	}
	return nil
}

func nullIfEmpty(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	return value
}

func valueOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
