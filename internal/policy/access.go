package policy

import "github.com/spec-kit/complaint-portal/internal/domain"

// CanAccess is the single ownership predicate consulted by every read and
// write path: admins may act on any complaint, citizens only on their own.
func CanAccess(actor *domain.User, complaint *domain.Complaint) bool {
	if actor == nil || complaint == nil {
		return false
	}
	if actor.Role == domain.RoleAdmin {
		return true
	}
	return actor.ID == complaint.SubmitterID
}

// CanUpdateStatus restricts lifecycle transitions to administrators.
func CanUpdateStatus(actor *domain.User) bool {
	return actor != nil && actor.Role == domain.RoleAdmin
}
