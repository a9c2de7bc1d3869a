package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// ResponseRepository persists the append-only response log. Entries are
// never updated or deleted; listing order is insertion order.
type ResponseRepository interface {
	Append(ctx context.Context, entry *domain.ComplaintResponse) error
	ListByComplaint(ctx context.Context, complaintID string) ([]domain.ComplaintResponse, error)
}

type responseRepository struct {
	pool *pgxpool.Pool
}

// NewResponseRepository instantiates repository.
func NewResponseRepository(pool *pgxpool.Pool) ResponseRepository {
	return &responseRepository{pool: pool}
}

func (r *responseRepository) Append(ctx context.Context, entry *domain.ComplaintResponse) error {
	const query = `
        INSERT INTO complaint_responses (complaint_id, respondent_id, author_type, message)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		entry.ComplaintID,
		entry.RespondentID,
		entry.AuthorType,
		entry.Message,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *responseRepository) ListByComplaint(ctx context.Context, complaintID string) ([]domain.ComplaintResponse, error) {
	const query = `
        SELECT id, complaint_id, respondent_id, author_type, message, created_at
        FROM complaint_responses WHERE complaint_id=$1
        ORDER BY created_at ASC, id ASC`
	rows, err := r.pool.Query(ctx, query, complaintID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ComplaintResponse
	for rows.Next() {
		var entry domain.ComplaintResponse
		if err := rows.Scan(
			&entry.ID,
			&entry.ComplaintID,
			&entry.RespondentID,
			&entry.AuthorType,
			&entry.Message,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
