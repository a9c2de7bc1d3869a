package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// ComplaintFilter captures listing parameters.
type ComplaintFilter struct {
	SubmitterID *string
	Statuses    []domain.ComplaintStatus
	Categories  []domain.ComplaintCategory
	Priorities  []domain.ComplaintPriority
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Limit       int
	Offset      int
}

// StatusCount pairs a grouping key with its complaint count.
type StatusCount struct {
	Key   string
	Count int64
}

// DailyCount is one day of the submission trend.
type DailyCount struct {
	Day   time.Time
	Count int64
}

// ComplaintRepository encapsulates complaint persistence.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	GetByTicketID(ctx context.Context, ticketID string) (*domain.Complaint, error)
	// SetStatusWithLog persists the status change and appends the system
	// response in a single transaction.
	SetStatusWithLog(ctx context.Context, complaint *domain.Complaint, entry *domain.ComplaintResponse) error
	IncrementVotes(ctx context.Context, id string) (int, error)
	ListWithFilter(ctx context.Context, filter ComplaintFilter) ([]domain.Complaint, error)
	Count(ctx context.Context) (int64, error)
	CountGroupedBy(ctx context.Context, column string) ([]StatusCount, error)
	DailyCounts(ctx context.Context, since time.Time) ([]DailyCount, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Complaint, error)
}

type complaintRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintRepository instantiates repository.
func NewComplaintRepository(pool *pgxpool.Pool) ComplaintRepository {
	return &complaintRepository{pool: pool}
}

const complaintColumns = `id, ticket_id, submitter_id, category, description, location,
       status, assigned_agency, priority, tags, media, votes, created_at, updated_at`

func (r *complaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	const query = `
        INSERT INTO complaints (ticket_id, submitter_id, category, description, location, status, assigned_agency, priority, tags, media)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, votes, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		complaint.TicketID,
		complaint.SubmitterID,
		complaint.Category,
		complaint.Description,
		complaint.Location,
		complaint.Status,
		complaint.AssignedAgency,
		complaint.Priority,
		complaint.Tags,
		complaint.Media,
	).Scan(&complaint.ID, &complaint.Votes, &complaint.CreatedAt, &complaint.UpdatedAt)
}

func (r *complaintRepository) GetByTicketID(ctx context.Context, ticketID string) (*domain.Complaint, error) {
	query := fmt.Sprintf(`SELECT %s FROM complaints WHERE ticket_id=$1`, complaintColumns)
	var complaint domain.Complaint
	if err := r.pool.QueryRow(ctx, query, ticketID).Scan(complaintFields(&complaint)...); err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (r *complaintRepository) SetStatusWithLog(ctx context.Context, complaint *domain.Complaint, entry *domain.ComplaintResponse) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const updateQuery = `UPDATE complaints SET status=$1, updated_at=NOW() WHERE id=$2 RETURNING updated_at`
	if err := tx.QueryRow(ctx, updateQuery, complaint.Status, complaint.ID).Scan(&complaint.UpdatedAt); err != nil {
		return err
	}

	const insertQuery = `
        INSERT INTO complaint_responses (complaint_id, respondent_id, author_type, message)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	if err := tx.QueryRow(ctx, insertQuery,
		entry.ComplaintID,
		entry.RespondentID,
		entry.AuthorType,
		entry.Message,
	).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *complaintRepository) IncrementVotes(ctx context.Context, id string) (int, error) {
	const query = `UPDATE complaints SET votes = votes + 1, updated_at=NOW() WHERE id=$1 RETURNING votes`
	var votes int
	if err := r.pool.QueryRow(ctx, query, id).Scan(&votes); err != nil {
		return 0, err
	}
	return votes, nil
}

func (r *complaintRepository) ListWithFilter(ctx context.Context, filter ComplaintFilter) ([]domain.Complaint, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.SubmitterID != nil {
		args = append(args, *filter.SubmitterID)
		clauses = append(clauses, fmt.Sprintf("submitter_id=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}
	if len(filter.Categories) > 0 {
		placeholders := make([]string, len(filter.Categories))
		for i, category := range filter.Categories {
			args = append(args, category)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("category IN (%s)", strings.Join(placeholders, ",")))
	}
	if len(filter.Priorities) > 0 {
		placeholders := make([]string, len(filter.Priorities))
		for i, priority := range filter.Priorities {
			args = append(args, priority)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("priority IN (%s)", strings.Join(placeholders, ",")))
	}
	if filter.CreatedFrom != nil {
		args = append(args, *filter.CreatedFrom)
		clauses = append(clauses, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.CreatedTo != nil {
		args = append(args, *filter.CreatedTo)
		clauses = append(clauses, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM complaints WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		complaintColumns, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComplaints(rows)
}

func (r *complaintRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM complaints`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *complaintRepository) CountGroupedBy(ctx context.Context, column string) ([]StatusCount, error) {
	switch column {
	case "status", "category", "priority":
	default:
		return nil, fmt.Errorf("unsupported grouping column %q", column)
	}
	query := fmt.Sprintf(`SELECT %s, COUNT(*) FROM complaints GROUP BY %s`, column, column)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []StatusCount
	for rows.Next() {
		var entry StatusCount
		if err := rows.Scan(&entry.Key, &entry.Count); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

func (r *complaintRepository) DailyCounts(ctx context.Context, since time.Time) ([]DailyCount, error) {
	const query = `
        SELECT DATE_TRUNC('day', created_at) AS day, COUNT(*)
        FROM complaints WHERE created_at >= $1
        GROUP BY day ORDER BY day`
	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []DailyCount
	for rows.Next() {
		var entry DailyCount
		if err := rows.Scan(&entry.Day, &entry.Count); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

func (r *complaintRepository) ListRecent(ctx context.Context, limit int) ([]domain.Complaint, error) {
	if limit <= 0 {
		limit = 5
	}
	query := fmt.Sprintf(`SELECT %s FROM complaints ORDER BY created_at DESC LIMIT %d`, complaintColumns, limit)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComplaints(rows)
}

func complaintFields(c *domain.Complaint) []any {
	return []any{
		&c.ID,
		&c.TicketID,
		&c.SubmitterID,
		&c.Category,
		&c.Description,
		&c.Location,
		&c.Status,
		&c.AssignedAgency,
		&c.Priority,
		&c.Tags,
		&c.Media,
		&c.Votes,
		&c.CreatedAt,
		&c.UpdatedAt,
	}
}

func scanComplaints(rows pgx.Rows) ([]domain.Complaint, error) {
	var result []domain.Complaint
	for rows.Next() {
		var complaint domain.Complaint
		if err := rows.Scan(complaintFields(&complaint)...); err != nil {
			return nil, err
		}
		result = append(result, complaint)
	}
	return result, rows.Err()
}
