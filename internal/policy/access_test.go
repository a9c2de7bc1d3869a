package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

func TestCanAccess(t *testing.T) {
	owner := &domain.User{ID: "u1", Role: domain.RoleCitizen}
	other := &domain.User{ID: "u2", Role: domain.RoleCitizen}
	admin := &domain.User{ID: "u3", Role: domain.RoleAdmin}
	complaint := &domain.Complaint{SubmitterID: "u1"}

	assert.True(t, CanAccess(owner, complaint))
	assert.True(t, CanAccess(admin, complaint))
	assert.False(t, CanAccess(other, complaint))
	assert.False(t, CanAccess(nil, complaint))
	assert.False(t, CanAccess(owner, nil))
}

func TestCanUpdateStatus(t *testing.T) {
	assert.True(t, CanUpdateStatus(&domain.User{ID: "a", Role: domain.RoleAdmin}))
	assert.False(t, CanUpdateStatus(&domain.User{ID: "c", Role: domain.RoleCitizen}))
	assert.False(t, CanUpdateStatus(nil))
}
