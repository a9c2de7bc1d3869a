package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// AgencyRepository persists municipal agency records.
type AgencyRepository interface {
	Create(ctx context.Context, agency *domain.Agency) error
	Update(ctx context.Context, agency *domain.Agency) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Agency, error)
	List(ctx context.Context) ([]domain.Agency, error)
}

type agencyRepository struct {
	pool *pgxpool.Pool
}

// NewAgencyRepository returns a Postgres-backed implementation.
func NewAgencyRepository(pool *pgxpool.Pool) AgencyRepository {
	return &agencyRepository{pool: pool}
}

func (r *agencyRepository) Create(ctx context.Context, agency *domain.Agency) error {
	const query = `
        INSERT INTO agencies (name, categories, contact_email)
        VALUES ($1,$2,$3)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		agency.Name,
		agency.Categories,
		agency.ContactEmail,
	).Scan(&agency.ID, &agency.CreatedAt, &agency.UpdatedAt)
}

func (r *agencyRepository) Update(ctx context.Context, agency *domain.Agency) error {
	const query = `
        UPDATE agencies SET name=$1, categories=$2, contact_email=$3, updated_at=NOW()
        WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query,
		agency.Name,
		agency.Categories,
		agency.ContactEmail,
		agency.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *agencyRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM agencies WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *agencyRepository) GetByID(ctx context.Context, id string) (*domain.Agency, error) {
	const query = `SELECT id, name, categories, contact_email, created_at, updated_at FROM agencies WHERE id=$1`
	var agency domain.Agency
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&agency.ID,
		&agency.Name,
		&agency.Categories,
		&agency.ContactEmail,
		&agency.CreatedAt,
		&agency.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &agency, nil
}

func (r *agencyRepository) List(ctx context.Context) ([]domain.Agency, error) {
	const query = `SELECT id, name, categories, contact_email, created_at, updated_at FROM agencies ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Agency
	for rows.Next() {
		var agency domain.Agency
		if err := rows.Scan(
			&agency.ID,
			&agency.Name,
			&agency.Categories,
			&agency.ContactEmail,
			&agency.CreatedAt,
			&agency.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, agency)
	}
	return result, rows.Err()
}
