package events

import (
	"time"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventComplaintCreated       EventType = "complaint_created"
	EventComplaintStatusChanged EventType = "complaint_status_changed"
	EventComplaintResponseAdded EventType = "complaint_response_added"
	EventComplaintVoted         EventType = "complaint_voted"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID *string         `json:"user_id,omitempty"`
	Role   domain.UserRole `json:"role,omitempty"`
	System bool            `json:"system,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	ComplaintID string      `json:"complaint_id"`
	TicketID    string      `json:"ticket_id"`
	Actor       Actor       `json:"actor"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     interface{} `json:"payload"`
}

// ComplaintCreatedPayload payload.
type ComplaintCreatedPayload struct {
	Category       domain.ComplaintCategory `json:"category"`
	Priority       domain.ComplaintPriority `json:"priority"`
	AssignedAgency *string                  `json:"assigned_agency,omitempty"`
	Tags           []string                 `json:"tags"`
	Location       string                   `json:"location"`
}

// ComplaintStatusChangedPayload payload.
type ComplaintStatusChangedPayload struct {
	OldStatus domain.ComplaintStatus `json:"old_status"`
	NewStatus domain.ComplaintStatus `json:"new_status"`
}

// ComplaintResponseAddedPayload payload.
type ComplaintResponseAddedPayload struct {
	ResponseID     string                    `json:"response_id"`
	AuthorType     domain.ResponseAuthorType `json:"author_type"`
	MessagePreview string                    `json:"message_preview"`
}

// ComplaintVotedPayload payload.
type ComplaintVotedPayload struct {
	Votes int `json:"votes"`
}
