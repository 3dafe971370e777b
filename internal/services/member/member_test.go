package member

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/clubfit/membership-tracker/internal/lib/apperr"
	"github.com/clubfit/membership-tracker/internal/lib/dateutil"
	"github.com/clubfit/membership-tracker/internal/models"
)

type MemberRepoMock struct{ mock.Mock }

func (m *MemberRepoMock) CreateMember(ctx context.Context, member models.Member) (string, error) {
	args := m.Called(ctx, member)
	return args.String(0), args.Error(1)
}

func (m *MemberRepoMock) GetMemberByID(ctx context.Context, id string) (*models.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MemberRepoMock) GetMemberByEmail(ctx context.Context, email string) (*models.Member, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MemberRepoMock) UpdateMemberFields(ctx context.Context, id string, fields models.MemberUpdate) (int, error) {
	args := m.Called(ctx, id, fields)
	return args.Int(0), args.Error(1)
}

func (m *MemberRepoMock) ListMembers(ctx context.Context, limit, offset int) ([]*models.Member, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Member), args.Error(1)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}
func (m *CacheMock) Invalidate(key string) error {
	return m.Called(key).Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func validRegistration() models.DummyMember {
	return models.DummyMember{
		FirstName: "Ana",
		LastName:  "Gomez",
		Email:     "ana.gomez@example.com",
		Weight:    62.5,
		Age:       29,
	}
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.DummyMember)
		wantMsg string
	}{
		{"empty first name", func(r *models.DummyMember) { r.FirstName = "" }, "First name must not be empty"},
		{"empty last name", func(r *models.DummyMember) { r.LastName = "" }, "Last name must not be empty"},
		{"empty email", func(r *models.DummyMember) { r.Email = "" }, "Email must not be empty"},
		{"zero age", func(r *models.DummyMember) { r.Age = 0 }, "Age must be positive"},
		{"zero weight", func(r *models.DummyMember) { r.Weight = 0 }, "Weight must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members := new(MemberRepoMock)
			svc := NewService(members, new(UserRepoMock), new(CacheMock), newNoopLogger())

			req := validRegistration()
			tt.mutate(&req)

			_, err := svc.Register(context.Background(), req)

			assert.True(t, apperr.IsInvalidData(err))
			assert.EqualError(t, err, tt.wantMsg)
			members.AssertNotCalled(t, "CreateMember", mock.Anything, mock.Anything)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	members := new(MemberRepoMock)
	members.On("GetMemberByEmail", mock.Anything, "ana.gomez@example.com").
		Return(&models.Member{ID: "existing"}, nil).Once()

	svc := NewService(members, new(UserRepoMock), new(CacheMock), newNoopLogger())

	_, err := svc.Register(context.Background(), validRegistration())

	assert.True(t, apperr.IsInvalidData(err))
	assert.EqualError(t, err, "Email already in use")
	members.AssertNotCalled(t, "CreateMember", mock.Anything, mock.Anything)
}

func TestRegister_Success(t *testing.T) {
	members := new(MemberRepoMock)
	members.On("GetMemberByEmail", mock.Anything, "ana.gomez@example.com").Return(nil, nil).Once()
	members.On("CreateMember", mock.Anything, mock.MatchedBy(func(m models.Member) bool {
		return m.ID != "" &&
			m.MembershipStatus == models.StatusInactive &&
			dateutil.IsNeverPaid(m.PaidUntil)
	})).Return("new-id", nil).Once()

	svc := NewService(members, new(UserRepoMock), new(CacheMock), newNoopLogger())

	got, err := svc.Register(context.Background(), validRegistration())

	assert.NoError(t, err)
	assert.Equal(t, models.StatusInactive, got.MembershipStatus)
	assert.True(t, dateutil.IsNeverPaid(got.PaidUntil))
	members.AssertExpectations(t)
}

func TestGet_CacheHitSkipsStorage(t *testing.T) {
	members := new(MemberRepoMock)
	cache := new(CacheMock)
	cache.On("Get", "member:m-1", mock.Anything).Return(true, nil).Once()

	svc := NewService(members, new(UserRepoMock), cache, newNoopLogger())

	_, err := svc.Get(context.Background(), "m-1")

	assert.NoError(t, err)
	members.AssertNotCalled(t, "GetMemberByID", mock.Anything, mock.Anything)
}

func TestGet_NotFound(t *testing.T) {
	members := new(MemberRepoMock)
	members.On("GetMemberByID", mock.Anything, "missing").Return(nil, nil).Once()
	cache := new(CacheMock)
	cache.On("Get", "member:missing", mock.Anything).Return(false, nil).Once()

	svc := NewService(members, new(UserRepoMock), cache, newNoopLogger())

	_, err := svc.Get(context.Background(), "missing")

	assert.True(t, apperr.IsNotFound(err))
}

func TestChangeStatus_TransitionMatrix(t *testing.T) {
	tests := []struct {
		name       string
		current    models.MembershipStatus
		next       models.MembershipStatus
		role       string
		wantErrMsg string
	}{
		{"trainer suspends member", models.StatusActive, models.StatusSuspended, models.RoleTrainer, ""},
		{"admin deletes member", models.StatusActive, models.StatusDeleted, models.RoleAdmin, ""},
		{"same status rejected", models.StatusActive, models.StatusActive, models.RoleAdmin, "Member already has this status"},
		{"deleted is terminal", models.StatusDeleted, models.StatusActive, models.RoleAdmin, "Cannot change status of deleted member"},
		{"trainer cannot delete", models.StatusActive, models.StatusDeleted, models.RoleTrainer, "Unauthorized status change"},
		{"member role has no access", models.StatusActive, models.StatusSuspended, models.RoleMember, "Insufficient permissions to change member status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members := new(MemberRepoMock)
			members.On("GetMemberByID", mock.Anything, "m-1").
				Return(&models.Member{ID: "m-1", MembershipStatus: tt.current}, nil).Once()

			users := new(UserRepoMock)
			users.On("GetUserByID", mock.Anything, "u-1").
				Return(&models.User{ID: "u-1", Role: tt.role, IsActive: true}, nil).Once()

			cache := new(CacheMock)
			if tt.wantErrMsg == "" {
				members.On("UpdateMemberFields", mock.Anything, "m-1", mock.Anything).Return(1, nil).Once()
				cache.On("Invalidate", "member:m-1").Return(nil).Once()
			}

			svc := NewService(members, users, cache, newNoopLogger())

			got, err := svc.ChangeStatus(context.Background(), ChangeStatusRequest{
				MemberID:          "m-1",
				NewStatus:         tt.next,
				RequestedByUserID: "u-1",
			})

			if tt.wantErrMsg == "" {
				assert.NoError(t, err)
				assert.Equal(t, tt.next, got.MembershipStatus)
				members.AssertExpectations(t)
			} else {
				assert.True(t, apperr.IsInvalidData(err))
				assert.EqualError(t, err, tt.wantErrMsg)
				members.AssertNotCalled(t, "UpdateMemberFields", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestChangeStatus_InactiveRequestingUser(t *testing.T) {
	members := new(MemberRepoMock)
	members.On("GetMemberByID", mock.Anything, "m-1").
		Return(&models.Member{ID: "m-1", MembershipStatus: models.StatusActive}, nil).Once()

	users := new(UserRepoMock)
	users.On("GetUserByID", mock.Anything, "u-1").
		Return(&models.User{ID: "u-1", Role: models.RoleAdmin, IsActive: false}, nil).Once()

	svc := NewService(members, users, new(CacheMock), newNoopLogger())

	_, err := svc.ChangeStatus(context.Background(), ChangeStatusRequest{
		MemberID:          "m-1",
		NewStatus:         models.StatusSuspended,
		RequestedByUserID: "u-1",
	})

	assert.True(t, apperr.IsInvalidData(err))
	assert.EqualError(t, err, "Requesting user is not active")
}
