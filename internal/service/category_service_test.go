package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

type fakeCategoryRepo struct {
	byName map[domain.ComplaintCategory]*domain.CategoryConfig
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byName: map[domain.ComplaintCategory]*domain.CategoryConfig{}}
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *domain.CategoryConfig) error {
	stored := *category
	f.byName[category.Name] = &stored
	return nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *domain.CategoryConfig) error {
	stored := *category
	f.byName[category.Name] = &stored
	return nil
}

func (f *fakeCategoryRepo) GetByName(_ context.Context, name domain.ComplaintCategory) (*domain.CategoryConfig, error) {
	stored, ok := f.byName[name]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *stored
	return &copied, nil
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]domain.CategoryConfig, error) {
	var result []domain.CategoryConfig
	for _, stored := range f.byName {
		result = append(result, *stored)
	}
	return result, nil
}

func TestCreateCategoryAppliesServiceLevelDefaults(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	category, err := svc.CreateCategory(context.Background(), CategoryInput{
		Name:              domain.CategoryRoads,
		AgencyResponsible: "Public Works Department",
	})
	require.NoError(t, err)
	assert.Equal(t, 48, category.ServiceLevel.ResponseHours)
	assert.Equal(t, 120, category.ServiceLevel.ResolutionHours)
	assert.True(t, category.Active)
}

func TestCreateCategoryValidation(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	_, err := svc.CreateCategory(context.Background(), CategoryInput{
		Name:              "plumbing",
		AgencyResponsible: "Public Works Department",
	})
	requireDomainError(t, err, "VALIDATION_FAILED")

	_, err = svc.CreateCategory(context.Background(), CategoryInput{
		Name:              domain.CategoryRoads,
		AgencyResponsible: "  ",
	})
	requireDomainError(t, err, "VALIDATION_FAILED")
}

func TestCreateCategoryRejectsDuplicate(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	_, err := svc.CreateCategory(context.Background(), CategoryInput{
		Name:              domain.CategoryRoads,
		AgencyResponsible: "Public Works Department",
	})
	require.NoError(t, err)

	_, err = svc.CreateCategory(context.Background(), CategoryInput{
		Name:              domain.CategoryRoads,
		AgencyResponsible: "Another Agency",
	})
	requireDomainError(t, err, "CONFLICT")
}

func TestUpdateCategoryNotFound(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	_, err := svc.UpdateCategory(context.Background(), domain.CategoryWater, CategoryInput{
		AgencyResponsible: "Water Board",
	})
	requireDomainError(t, err, "NOT_FOUND")
}

func TestUpdateCategoryDeactivates(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)

	_, err := svc.CreateCategory(context.Background(), CategoryInput{
		Name:              domain.CategoryRoads,
		AgencyResponsible: "Public Works Department",
	})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.UpdateCategory(context.Background(), domain.CategoryRoads, CategoryInput{Active: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.Active)
}

func TestLookupCategory(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)

	// absent category resolves to nil, not an error
	config, err := svc.LookupCategory(context.Background(), domain.CategoryRoads)
	require.NoError(t, err)
	assert.Nil(t, config)

	_, err = svc.CreateCategory(context.Background(), CategoryInput{
		Name:              domain.CategoryRoads,
		AgencyResponsible: "Public Works Department",
	})
	require.NoError(t, err)

	config, err = svc.LookupCategory(context.Background(), domain.CategoryRoads)
	require.NoError(t, err)
	require.NotNil(t, config)
	assert.Equal(t, "Public Works Department", config.AgencyResponsible)

	// inactive categories are treated as absent
	inactive := false
	_, err = svc.UpdateCategory(context.Background(), domain.CategoryRoads, CategoryInput{Active: &inactive})
	require.NoError(t, err)

	config, err = svc.LookupCategory(context.Background(), domain.CategoryRoads)
	require.NoError(t, err)
	assert.Nil(t, config)
}
