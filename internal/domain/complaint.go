package domain

import "time"

// ComplaintStatus enumerates lifecycle states for complaints.
type ComplaintStatus string

const (
	StatusSubmitted  ComplaintStatus = "Submitted"
	StatusInProgress ComplaintStatus = "In Progress"
	StatusResolved   ComplaintStatus = "Resolved"
	StatusRejected   ComplaintStatus = "Rejected"
)

// IsValid reports whether the value is one of the enumerated statuses.
func (s ComplaintStatus) IsValid() bool {
	switch s {
	case StatusSubmitted, StatusInProgress, StatusResolved, StatusRejected:
		return true
	}
	return false
}

// ComplaintPriority enumerates urgency levels.
type ComplaintPriority string

const (
	PriorityLow    ComplaintPriority = "Low"
	PriorityMedium ComplaintPriority = "Medium"
	PriorityHigh   ComplaintPriority = "High"
	PriorityUrgent ComplaintPriority = "Urgent"
)

// IsValid reports whether the value is one of the enumerated priorities.
func (p ComplaintPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Rank orders priorities from Low to Urgent. Unknown values rank lowest.
func (p ComplaintPriority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityUrgent:
		return 4
	}
	return 0
}

// ComplaintCategory enumerates the fixed service categories.
type ComplaintCategory string

const (
	CategoryRoads          ComplaintCategory = "roads"
	CategoryWater          ComplaintCategory = "water"
	CategoryElectricity    ComplaintCategory = "electricity"
	CategoryWaste          ComplaintCategory = "waste"
	CategoryPublicSafety   ComplaintCategory = "public_safety"
	CategoryEnvironment    ComplaintCategory = "environment"
	CategoryPublicProperty ComplaintCategory = "public_property"
	CategoryOthers         ComplaintCategory = "others"
)

// IsValid reports whether the value is one of the enumerated categories.
func (c ComplaintCategory) IsValid() bool {
	switch c {
	case CategoryRoads, CategoryWater, CategoryElectricity, CategoryWaste,
		CategoryPublicSafety, CategoryEnvironment, CategoryPublicProperty, CategoryOthers:
		return true
	}
	return false
}

// Complaint is the aggregate for citizen service complaints.
type Complaint struct {
	ID             string
	TicketID       string
	SubmitterID    string
	Category       ComplaintCategory
	Description    string
	Location       string
	Status         ComplaintStatus
	AssignedAgency *string
	Priority       ComplaintPriority
	Tags           []string
	Media          []string
	Votes          int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ComplaintResponse is one entry of the append-only response log.
// Entries are immutable once appended; insertion order is authoritative.
type ComplaintResponse struct {
	ID           string
	ComplaintID  string
	RespondentID *string
	AuthorType   ResponseAuthorType
	Message      string
	CreatedAt    time.Time
}

// ResponseAuthorType indicates who authored a response entry.
type ResponseAuthorType string

const (
	AuthorTypeCitizen ResponseAuthorType = "CITIZEN"
	AuthorTypeAdmin   ResponseAuthorType = "ADMIN"
	AuthorTypeSystem  ResponseAuthorType = "SYSTEM"
)
