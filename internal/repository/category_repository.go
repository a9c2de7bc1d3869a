package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// CategoryRepository persists category reference data.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.CategoryConfig) error
	Update(ctx context.Context, category *domain.CategoryConfig) error
	GetByName(ctx context.Context, name domain.ComplaintCategory) (*domain.CategoryConfig, error)
	List(ctx context.Context) ([]domain.CategoryConfig, error)
}

type categoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository returns a Postgres-backed implementation.
func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &categoryRepository{pool: pool}
}

const categoryColumns = `id, name, description, agency_responsible, contact_email, contact_phone,
       subcategories, response_hours, resolution_hours, active, created_at, updated_at`

func (r *categoryRepository) Create(ctx context.Context, category *domain.CategoryConfig) error {
	const query = `
        INSERT INTO categories (name, description, agency_responsible, contact_email, contact_phone, subcategories, response_hours, resolution_hours, active)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		category.Name,
		category.Description,
		category.AgencyResponsible,
		category.ContactEmail,
		category.ContactPhone,
		category.Subcategories,
		category.ServiceLevel.ResponseHours,
		category.ServiceLevel.ResolutionHours,
		category.Active,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

func (r *categoryRepository) Update(ctx context.Context, category *domain.CategoryConfig) error {
	const query = `
        UPDATE categories SET description=$1, agency_responsible=$2, contact_email=$3, contact_phone=$4,
            subcategories=$5, response_hours=$6, resolution_hours=$7, active=$8, updated_at=NOW()
        WHERE id=$9`
	cmd, err := r.pool.Exec(ctx, query,
		category.Description,
		category.AgencyResponsible,
		category.ContactEmail,
		category.ContactPhone,
		category.Subcategories,
		category.ServiceLevel.ResponseHours,
		category.ServiceLevel.ResolutionHours,
		category.Active,
		category.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name domain.ComplaintCategory) (*domain.CategoryConfig, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE name=$1`
	var category domain.CategoryConfig
	if err := r.pool.QueryRow(ctx, query, name).Scan(categoryFields(&category)...); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.CategoryConfig, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.CategoryConfig
	for rows.Next() {
		var category domain.CategoryConfig
		if err := rows.Scan(categoryFields(&category)...); err != nil {
			return nil, err
		}
		result = append(result, category)
	}
	return result, rows.Err()
}

func categoryFields(c *domain.CategoryConfig) []any {
	return []any{
		&c.ID,
		&c.Name,
		&c.Description,
		&c.AgencyResponsible,
		&c.ContactEmail,
		&c.ContactPhone,
		&c.Subcategories,
		&c.ServiceLevel.ResponseHours,
		&c.ServiceLevel.ResolutionHours,
		&c.Active,
		&c.CreatedAt,
		&c.UpdatedAt,
	}
}
