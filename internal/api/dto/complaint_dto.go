package dto

import (
	"time"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// CreateComplaintRequest payload.
type CreateComplaintRequest struct {
	Category    domain.ComplaintCategory `json:"category"`
	Description string                   `json:"description"`
	Location    string                   `json:"location"`
	Priority    domain.ComplaintPriority `json:"priority"`
	Media       []string                 `json:"media"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status domain.ComplaintStatus `json:"status"`
}

// AddResponseRequest payload.
type AddResponseRequest struct {
	Message string `json:"message"`
}

// ComplaintSummary response.
type ComplaintSummary struct {
	TicketID       string                   `json:"ticket_id"`
	Category       domain.ComplaintCategory `json:"category"`
	Location       string                   `json:"location"`
	Status         domain.ComplaintStatus   `json:"status"`
	Priority       domain.ComplaintPriority `json:"priority"`
	AssignedAgency *string                  `json:"assigned_agency,omitempty"`
	Tags           []string                 `json:"tags"`
	Votes          int                      `json:"votes"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

// ComplaintDetailResponse provides full complaint info.
type ComplaintDetailResponse struct {
	TicketID       string                   `json:"ticket_id"`
	SubmitterID    string                   `json:"submitter_id"`
	Category       domain.ComplaintCategory `json:"category"`
	Description    string                   `json:"description"`
	Location       string                   `json:"location"`
	Status         domain.ComplaintStatus   `json:"status"`
	Priority       domain.ComplaintPriority `json:"priority"`
	AssignedAgency *string                  `json:"assigned_agency,omitempty"`
	Tags           []string                 `json:"tags"`
	Media          []string                 `json:"media"`
	Votes          int                      `json:"votes"`
	Responses      []ResponseEntry          `json:"responses"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

// ResponseEntry is one entry of the response log.
type ResponseEntry struct {
	ID           string                    `json:"id"`
	RespondentID *string                   `json:"respondent_id,omitempty"`
	AuthorType   domain.ResponseAuthorType `json:"author_type"`
	Message      string                    `json:"message"`
	CreatedAt    time.Time                 `json:"created_at"`
}
