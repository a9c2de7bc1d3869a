package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/internal/repository"
	apperrors "github.com/spec-kit/complaint-portal/pkg/util"
)

// AgencyService owns admin CRUD over municipal agencies.
type AgencyService struct {
	agencies repository.AgencyRepository
}

// AgencyInput describes create/update payloads.
type AgencyInput struct {
	Name         string
	Categories   []string
	ContactEmail string
}

// NewAgencyService constructs the service.
func NewAgencyService(agencies repository.AgencyRepository) *AgencyService {
	return &AgencyService{agencies: agencies}
}

// CreateAgency registers a new agency.
func (s *AgencyService) CreateAgency(ctx context.Context, input AgencyInput) (*domain.Agency, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.ContactEmail) == "" {
		return nil, apperrors.NewValidationError("name and contact email are required", nil)
	}
	agency := &domain.Agency{
		Name:         strings.TrimSpace(input.Name),
		Categories:   input.Categories,
		ContactEmail: strings.TrimSpace(input.ContactEmail),
	}
	if err := s.agencies.Create(ctx, agency); err != nil {
		return nil, err
	}
	return agency, nil
}

// UpdateAgency applies changes to an agency.
func (s *AgencyService) UpdateAgency(ctx context.Context, id string, input AgencyInput) (*domain.Agency, error) {
	agency, err := s.getAgency(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) != "" {
		agency.Name = strings.TrimSpace(input.Name)
	}
	if input.Categories != nil {
		agency.Categories = input.Categories
	}
	if strings.TrimSpace(input.ContactEmail) != "" {
		agency.ContactEmail = strings.TrimSpace(input.ContactEmail)
	}
	if err := s.agencies.Update(ctx, agency); err != nil {
		return nil, err
	}
	return agency, nil
}

// DeleteAgency removes an agency.
func (s *AgencyService) DeleteAgency(ctx context.Context, id string) error {
	if err := s.agencies.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("agency", map[string]any{"id": id})
		}
		return err
	}
	return nil
}

// GetAgency fetches one agency by ID.
func (s *AgencyService) GetAgency(ctx context.Context, id string) (*domain.Agency, error) {
	return s.getAgency(ctx, id)
}

// ListAgencies returns all agencies.
func (s *AgencyService) ListAgencies(ctx context.Context) ([]domain.Agency, error) {
	return s.agencies.List(ctx)
}

func (s *AgencyService) getAgency(ctx context.Context, id string) (*domain.Agency, error) {
	agency, err := s.agencies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("agency", map[string]any{"id": id})
		}
		return nil, err
	}
	return agency, nil
}
