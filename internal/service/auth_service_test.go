package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/complaint-portal/internal/config"
	"github.com/spec-kit/complaint-portal/internal/domain"
)

// fakeAccountRepo is a stateful user store so register/login round-trips work.
type fakeAccountRepo struct {
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
	nextID  int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		byEmail: map[string]*domain.User{},
		byID:    map[string]*domain.User{},
	}
}

func (f *fakeAccountRepo) Create(_ context.Context, user *domain.User) error {
	f.nextID++
	user.ID = fmt.Sprintf("u-%d", f.nextID)
	stored := *user
	f.byEmail[user.Email] = &stored
	f.byID[user.ID] = &stored
	return nil
}

func (f *fakeAccountRepo) Update(_ context.Context, user *domain.User) error {
	stored := *user
	f.byEmail[user.Email] = &stored
	f.byID[user.ID] = &stored
	return nil
}

func (f *fakeAccountRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	stored, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *stored
	return &copied, nil
}

func (f *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	stored, ok := f.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *stored
	return &copied, nil
}

func (f *fakeAccountRepo) CountByRole(_ context.Context, role domain.UserRole) (int64, error) {
	var count int64
	for _, user := range f.byID {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

func newAuthService() *AuthService {
	cfg := config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.AccessTokenTTLMinutes = 15
	cfg.Auth.BcryptCost = bcrypt.MinCost
	return NewAuthService(cfg, newFakeAccountRepo())
}

func TestRegisterIssuesCitizenToken(t *testing.T) {
	svc := newAuthService()

	user, token, err := svc.Register(context.Background(), "Jordan Lee", "Jordan@Example.com", "longenough", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCitizen, user.Role)
	assert.Equal(t, "jordan@example.com", user.Email)
	assert.NotEqual(t, "longenough", user.PasswordHash)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleCitizen, claims.Role)
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService()

	_, _, err := svc.Register(context.Background(), "  ", "a@b.com", "longenough", nil, nil)
	requireDomainError(t, err, "VALIDATION_FAILED")

	_, _, err = svc.Register(context.Background(), "Jordan", "a@b.com", "short", nil, nil)
	requireDomainError(t, err, "VALIDATION_FAILED")
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newAuthService()

	_, _, err := svc.Register(context.Background(), "Jordan", "a@b.com", "longenough", nil, nil)
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "Other", "A@B.COM", "longenough", nil, nil)
	requireDomainError(t, err, "CONFLICT")
}

func TestLogin(t *testing.T) {
	svc := newAuthService()

	registered, _, err := svc.Register(context.Background(), "Jordan", "a@b.com", "longenough", nil, nil)
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), "a@b.com", "longenough")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(context.Background(), "a@b.com", "wrongpassword")
	requireDomainError(t, err, "UNAUTHORIZED")

	_, _, err = svc.Login(context.Background(), "nobody@b.com", "longenough")
	requireDomainError(t, err, "UNAUTHORIZED")
}

func TestUpdateProfile(t *testing.T) {
	svc := newAuthService()

	registered, _, err := svc.Register(context.Background(), "Jordan", "a@b.com", "longenough", nil, nil)
	require.NoError(t, err)

	phone := "555-0100"
	updated, err := svc.UpdateProfile(context.Background(), registered.ID, ProfileUpdateInput{Phone: &phone})
	require.NoError(t, err)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, phone, *updated.Phone)
	assert.Equal(t, "Jordan", updated.Name)

	empty := " "
	_, err = svc.UpdateProfile(context.Background(), registered.ID, ProfileUpdateInput{Name: &empty})
	requireDomainError(t, err, "VALIDATION_FAILED")
}
