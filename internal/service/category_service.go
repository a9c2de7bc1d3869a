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

// CategoryService owns admin CRUD over category reference data and exposes
// the read-only lookup consumed by the categorization engine.
type CategoryService struct {
	categories repository.CategoryRepository
}

// CategoryInput describes create/update payloads.
type CategoryInput struct {
	Name            domain.ComplaintCategory
	Description     *string
	AgencyResponsible string
	ContactEmail    *string
	ContactPhone    *string
	Subcategories   []string
	ResponseHours   int
	ResolutionHours int
	Active          *bool
}

// NewCategoryService constructs the service.
func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// CreateCategory registers configuration for a complaint category.
func (s *CategoryService) CreateCategory(ctx context.Context, input CategoryInput) (*domain.CategoryConfig, error) {
	if !input.Name.IsValid() {
		return nil, apperrors.NewValidationError("invalid category name", map[string]any{"name": input.Name})
	}
	if strings.TrimSpace(input.AgencyResponsible) == "" {
		return nil, apperrors.NewValidationError("responsible agency is required", nil)
	}
	if _, err := s.categories.GetByName(ctx, input.Name); err == nil {
		return nil, apperrors.NewConflict("category already configured", map[string]any{"name": input.Name})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	category := &domain.CategoryConfig{
		Name:              input.Name,
		Description:       input.Description,
		AgencyResponsible: strings.TrimSpace(input.AgencyResponsible),
		ContactEmail:      input.ContactEmail,
		ContactPhone:      input.ContactPhone,
		Subcategories:     input.Subcategories,
		ServiceLevel:      serviceLevel(input),
		Active:            true,
	}
	if input.Active != nil {
		category.Active = *input.Active
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory applies changes to an existing category configuration.
func (s *CategoryService) UpdateCategory(ctx context.Context, name domain.ComplaintCategory, input CategoryInput) (*domain.CategoryConfig, error) {
	category, err := s.categories.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("category", map[string]any{"name": name})
		}
		return nil, err
	}
	if strings.TrimSpace(input.AgencyResponsible) != "" {
		category.AgencyResponsible = strings.TrimSpace(input.AgencyResponsible)
	}
	if input.Description != nil {
		category.Description = input.Description
	}
	if input.ContactEmail != nil {
		category.ContactEmail = input.ContactEmail
	}
	if input.ContactPhone != nil {
		category.ContactPhone = input.ContactPhone
	}
	if input.Subcategories != nil {
		category.Subcategories = input.Subcategories
	}
	if input.ResponseHours > 0 {
		category.ServiceLevel.ResponseHours = input.ResponseHours
	}
	if input.ResolutionHours > 0 {
		category.ServiceLevel.ResolutionHours = input.ResolutionHours
	}
	if input.Active != nil {
		category.Active = *input.Active
	}
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories returns all configured categories.
func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.CategoryConfig, error) {
	return s.categories.List(ctx)
}

// LookupCategory resolves active configuration for the categorization
// engine. A missing or inactive record is reported as nil without error.
func (s *CategoryService) LookupCategory(ctx context.Context, name domain.ComplaintCategory) (*domain.CategoryConfig, error) {
	category, err := s.categories.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if !category.Active {
		return nil, nil
	}
	return category, nil
}

func serviceLevel(input CategoryInput) domain.ServiceLevel {
	level := domain.ServiceLevel{ResponseHours: 48, ResolutionHours: 120}
	if input.ResponseHours > 0 {
		level.ResponseHours = input.ResponseHours
	}
	if input.ResolutionHours > 0 {
		level.ResolutionHours = input.ResolutionHours
	}
	return level
}
