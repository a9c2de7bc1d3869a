package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/internal/events"
	"github.com/spec-kit/complaint-portal/internal/policy"
	"github.com/spec-kit/complaint-portal/internal/repository"
	apperrors "github.com/spec-kit/complaint-portal/pkg/util"
)

const minDescriptionLength = 10

// TicketGenerator mints the ticket identifier at creation time.
type TicketGenerator interface {
	Next(ctx context.Context) (string, error)
}

// Enricher applies categorization to a freshly created complaint.
type Enricher interface {
	Enrich(ctx context.Context, complaint *domain.Complaint) *domain.Complaint
}

// ComplaintService owns the complaint lifecycle: creation, status
// transitions, and the append-only response log.
type ComplaintService struct {
	complaints repository.ComplaintRepository
	responses  repository.ResponseRepository
	users      repository.UserRepository
	ticketGen  TicketGenerator
	enricher   Enricher
	dispatcher events.Dispatcher
}

// ComplaintDependencies bundles collaborators for the service.
type ComplaintDependencies struct {
	ComplaintRepo repository.ComplaintRepository
	ResponseRepo  repository.ResponseRepository
	UserRepo      repository.UserRepository
	TicketGen     TicketGenerator
	Enricher      Enricher
	Dispatcher    events.Dispatcher
}

// ComplaintCreateInput describes a submission payload.
type ComplaintCreateInput struct {
	Category    domain.ComplaintCategory
	Description string
	Location    string
	Priority    domain.ComplaintPriority
	Media       []string
}

// ComplaintListFilter describes listing filters.
type ComplaintListFilter struct {
	Statuses    []domain.ComplaintStatus
	Categories  []domain.ComplaintCategory
	Priorities  []domain.ComplaintPriority
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Limit       int
	Offset      int
}

// NewComplaintService constructs the service.
func NewComplaintService(deps ComplaintDependencies) *ComplaintService {
	return &ComplaintService{
		complaints: deps.ComplaintRepo,
		responses:  deps.ResponseRepo,
		users:      deps.UserRepo,
		ticketGen:  deps.TicketGen,
		enricher:   deps.Enricher,
		dispatcher: deps.Dispatcher,
	}
}

// allowedTransitions is the validated lifecycle graph. Resolved and Rejected
// are terminal: responses may still be appended, status may not change.
var allowedTransitions = map[domain.ComplaintStatus][]domain.ComplaintStatus{
	domain.StatusSubmitted:  {domain.StatusInProgress, domain.StatusResolved, domain.StatusRejected},
	domain.StatusInProgress: {domain.StatusResolved, domain.StatusRejected},
	domain.StatusResolved:   {},
	domain.StatusRejected:   {},
}

func isValidTransition(current, next domain.ComplaintStatus) bool {
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// Create validates the submission, assigns the ticket identifier, applies
// categorization, and persists the complaint.
func (s *ComplaintService) Create(ctx context.Context, submitterID string, input ComplaintCreateInput) (*domain.Complaint, error) {
	if !input.Category.IsValid() {
		return nil, apperrors.NewValidationError("invalid category", map[string]any{"category": input.Category})
	}
	description := strings.TrimSpace(input.Description)
	if len(description) < minDescriptionLength {
		return nil, apperrors.NewValidationError("description must be at least 10 characters", nil)
	}
	location := strings.TrimSpace(input.Location)
	if location == "" {
		return nil, apperrors.NewValidationError("location is required", nil)
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, apperrors.NewValidationError("invalid priority", map[string]any{"priority": input.Priority})
	}

	ticketID, err := s.ticketGen.Next(ctx)
	if err != nil {
		return nil, err
	}

	complaint := &domain.Complaint{
		TicketID:    ticketID,
		SubmitterID: submitterID,
		Category:    input.Category,
		Description: description,
		Location:    location,
		Status:      domain.StatusSubmitted,
		Priority:    priority,
		Tags:        []string{string(input.Category)},
		Media:       input.Media,
	}

	// enrichment is best-effort and never blocks creation
	if s.enricher != nil {
		complaint = s.enricher.Enrich(ctx, complaint)
	}

	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintCreated,
		ComplaintID: complaint.ID,
		TicketID:    complaint.TicketID,
		Actor:       citizenActor(submitterID),
		Payload: events.ComplaintCreatedPayload{
			Category:       complaint.Category,
			Priority:       complaint.Priority,
			AssignedAgency: complaint.AssignedAgency,
			Tags:           complaint.Tags,
			Location:       complaint.Location,
		},
	})
	return complaint, nil
}

// GetComplaint fetches a complaint by ticket ID for an authorized actor.
func (s *ComplaintService) GetComplaint(ctx context.Context, ticketID string, actor *domain.User) (*domain.Complaint, []domain.ComplaintResponse, error) {
	complaint, err := s.fetch(ctx, ticketID)
	if err != nil {
		return nil, nil, err
	}
	if !policy.CanAccess(actor, complaint) {
		return nil, nil, apperrors.NewForbidden("not allowed to view this complaint")
	}
	responses, err := s.responses.ListByComplaint(ctx, complaint.ID)
	if err != nil {
		return nil, nil, err
	}
	return complaint, responses, nil
}

// ListComplaints returns complaints visible to the actor. Citizens only see
// their own submissions; admins see everything.
func (s *ComplaintService) ListComplaints(ctx context.Context, actor *domain.User, filter ComplaintListFilter) ([]domain.Complaint, error) {
	repoFilter := repository.ComplaintFilter{
		Statuses:    filter.Statuses,
		Categories:  filter.Categories,
		Priorities:  filter.Priorities,
		CreatedFrom: filter.CreatedFrom,
		CreatedTo:   filter.CreatedTo,
		Limit:       filter.Limit,
		Offset:      filter.Offset,
	}
	if !actor.IsAdmin() {
		submitterID := actor.ID
		repoFilter.SubmitterID = &submitterID
	}
	return s.complaints.ListWithFilter(ctx, repoFilter)
}

// UpdateStatus transitions the complaint status and appends the system
// response recording the change. Both effects are atomic.
func (s *ComplaintService) UpdateStatus(ctx context.Context, ticketID string, newStatus domain.ComplaintStatus, actor *domain.User) (*domain.Complaint, error) {
	if !newStatus.IsValid() {
		return nil, apperrors.NewValidationError("invalid status value", map[string]any{"status": newStatus})
	}
	if !policy.CanUpdateStatus(actor) {
		return nil, apperrors.NewForbidden("not allowed to update complaint status")
	}
	complaint, err := s.fetch(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !isValidTransition(complaint.Status, newStatus) {
		return nil, apperrors.NewValidationError("invalid status transition", map[string]any{
			"from": complaint.Status,
			"to":   newStatus,
		})
	}

	oldStatus := complaint.Status
	complaint.Status = newStatus
	actorID := actor.ID
	entry := &domain.ComplaintResponse{
		ComplaintID:  complaint.ID,
		RespondentID: &actorID,
		AuthorType:   domain.AuthorTypeSystem,
		Message:      "Status updated to " + string(newStatus),
	}
	if err := s.complaints.SetStatusWithLog(ctx, complaint, entry); err != nil {
		complaint.Status = oldStatus
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintStatusChanged,
		ComplaintID: complaint.ID,
		TicketID:    complaint.TicketID,
		Actor:       adminActor(actor.ID),
		Payload: events.ComplaintStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
	return complaint, nil
}

// AddResponse appends a message to the complaint's response log. Allowed for
// admins and for the complaint's submitter. Status is unchanged.
func (s *ComplaintService) AddResponse(ctx context.Context, ticketID, message string, actor *domain.User) (*domain.Complaint, *domain.ComplaintResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, nil, apperrors.NewValidationError("response message is required", nil)
	}
	complaint, err := s.fetch(ctx, ticketID)
	if err != nil {
		return nil, nil, err
	}
	if !policy.CanAccess(actor, complaint) {
		return nil, nil, apperrors.NewForbidden("not allowed to respond to this complaint")
	}

	actorID := actor.ID
	authorType := domain.AuthorTypeCitizen
	if actor.IsAdmin() {
		authorType = domain.AuthorTypeAdmin
	}
	entry := &domain.ComplaintResponse{
		ComplaintID:  complaint.ID,
		RespondentID: &actorID,
		AuthorType:   authorType,
		Message:      message,
	}
	if err := s.responses.Append(ctx, entry); err != nil {
		return nil, nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintResponseAdded,
		ComplaintID: complaint.ID,
		TicketID:    complaint.TicketID,
		Actor:       events.Actor{UserID: &actorID, Role: actor.Role},
		Payload: events.ComplaintResponseAddedPayload{
			ResponseID:     entry.ID,
			AuthorType:     entry.AuthorType,
			MessagePreview: stringPreview(message, 120),
		},
	})
	return complaint, entry, nil
}

// Vote increments the complaint's vote counter.
func (s *ComplaintService) Vote(ctx context.Context, ticketID string, actor *domain.User) (*domain.Complaint, error) {
	complaint, err := s.fetch(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	votes, err := s.complaints.IncrementVotes(ctx, complaint.ID)
	if err != nil {
		return nil, err
	}
	complaint.Votes = votes
	actorID := actor.ID
	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintVoted,
		ComplaintID: complaint.ID,
		TicketID:    complaint.TicketID,
		Actor:       events.Actor{UserID: &actorID, Role: actor.Role},
		Payload:     events.ComplaintVotedPayload{Votes: votes},
	})
	return complaint, nil
}

// DashboardStats aggregates counts for the admin dashboard.
type DashboardStats struct {
	ByStatus   map[string]int64
	ByCategory map[string]int64
	ByPriority map[string]int64
	Recent     []domain.Complaint
	Citizens   int64
	DailyTrend []repository.DailyCount
}

// GetDashboardStats computes the admin dashboard aggregates.
func (s *ComplaintService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{
		ByStatus:   map[string]int64{},
		ByCategory: map[string]int64{},
		ByPriority: map[string]int64{},
	}
	for column, target := range map[string]map[string]int64{
		"status":   stats.ByStatus,
		"category": stats.ByCategory,
		"priority": stats.ByPriority,
	} {
		counts, err := s.complaints.CountGroupedBy(ctx, column)
		if err != nil {
			return nil, err
		}
		for _, entry := range counts {
			target[entry.Key] = entry.Count
		}
	}

	recent, err := s.complaints.ListRecent(ctx, 5)
	if err != nil {
		return nil, err
	}
	stats.Recent = recent

	citizens, err := s.users.CountByRole(ctx, domain.RoleCitizen)
	if err != nil {
		return nil, err
	}
	stats.Citizens = citizens

	trend, err := s.complaints.DailyCounts(ctx, time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	stats.DailyTrend = trend
	return stats, nil
}

func (s *ComplaintService) fetch(ctx context.Context, ticketID string) (*domain.Complaint, error) {
	complaint, err := s.complaints.GetByTicketID(ctx, ticketID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("complaint", map[string]any{"ticket_id": ticketID})
		}
		return nil, err
	}
	return complaint, nil
}

func (s *ComplaintService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func citizenActor(userID string) events.Actor {
	return events.Actor{UserID: &userID, Role: domain.RoleCitizen}
}

func adminActor(userID string) events.Actor {
	return events.Actor{UserID: &userID, Role: domain.RoleAdmin}
}

func stringPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}
