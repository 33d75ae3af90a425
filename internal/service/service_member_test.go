package service

import (
	"context"
	"testing"
	"time"

	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/internal/store"
	"github.com/jb131997/gymdesk/internal/validators"
	"github.com/jb131997/gymdesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.MemberRepository
// ─────────────────────────────────────────────

type mockMemberRepository struct {
	createMemberFn      func(ctx context.Context, member models.Member) (models.Member, error)
	getMemberFn         func(ctx context.Context, id, gymID string) (models.Member, error)
	listMembersFn       func(ctx context.Context, gymID string, filter store.MemberFilter) ([]models.Member, error)
	updateMemberFn      func(ctx context.Context, update models.MemberUpdate) (models.Member, error)
	deleteMemberFn      func(ctx context.Context, id, gymID string) error
	markStaleInactiveFn func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *mockMemberRepository) CreateMember(ctx context.Context, member models.Member) (models.Member, error) {
	if m.createMemberFn != nil {
		return m.createMemberFn(ctx, member)
	}
	return member, nil
}

func (m *mockMemberRepository) GetMember(ctx context.Context, id, gymID string) (models.Member, error) {
	if m.getMemberFn != nil {
		return m.getMemberFn(ctx, id, gymID)
	}
	return models.Member{}, nil
}

func (m *mockMemberRepository) ListMembers(ctx context.Context, gymID string, filter store.MemberFilter) ([]models.Member, error) {
	if m.listMembersFn != nil {
		return m.listMembersFn(ctx, gymID, filter)
	}
	return nil, nil
}

func (m *mockMemberRepository) UpdateMember(ctx context.Context, update models.MemberUpdate) (models.Member, error) {
	if m.updateMemberFn != nil {
		return m.updateMemberFn(ctx, update)
	}
	return models.Member{}, nil
}

func (m *mockMemberRepository) DeleteMember(ctx context.Context, id, gymID string) error {
	if m.deleteMemberFn != nil {
		return m.deleteMemberFn(ctx, id, gymID)
	}
	return nil
}

func (m *mockMemberRepository) MarkStaleInactive(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.markStaleInactiveFn != nil {
		return m.markStaleInactiveFn(ctx, cutoff)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// CreateMember
// ─────────────────────────────────────────────

func TestMemberService_CreateMember_NormalizesPhoneAndDefaultsStatus(t *testing.T) {
	var saved models.Member
	repo := &mockMemberRepository{
		createMemberFn: func(_ context.Context, member models.Member) (models.Member, error) {
			saved = member
			return member, nil
		},
	}
	svc := NewMemberService(repo, logger.Nop())

	_, err := svc.CreateMember(context.Background(), models.Member{
		GymID: "gym-1",
		Name:  "Jane Doe",
		Phone: "(555) 123-4567",
	})

	require.NoError(t, err)
	assert.Equal(t, "5551234567", saved.Phone, "phone must be stored as bare digits")
	assert.Equal(t, models.MemberStatusActive, saved.Status)
}

func TestMemberService_CreateMember_InvalidInput(t *testing.T) {
	called := false
	repo := &mockMemberRepository{
		createMemberFn: func(_ context.Context, member models.Member) (models.Member, error) {
			called = true
			return member, nil
		},
	}
	svc := NewMemberService(repo, logger.Nop())

	_, err := svc.CreateMember(context.Background(), models.Member{
		GymID: "gym-1",
		Name:  "No Contact",
	})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
	require.ErrorIs(t, err, validators.ErrContactRequired)
	assert.False(t, called)
}

// ─────────────────────────────────────────────
// ListMembers / GetMember
// ─────────────────────────────────────────────

func TestMemberService_ListMembers_PassesFilter(t *testing.T) {
	filter := store.MemberFilter{Status: models.MemberStatusActive, Search: "jane"}
	repo := &mockMemberRepository{
		listMembersFn: func(_ context.Context, gymID string, f store.MemberFilter) ([]models.Member, error) {
			assert.Equal(t, "gym-1", gymID)
			assert.Equal(t, filter, f)
			return []models.Member{{ID: "m1"}}, nil
		},
	}
	svc := NewMemberService(repo, logger.Nop())

	members, err := svc.ListMembers(context.Background(), "gym-1", filter)

	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestMemberService_GetMember_NotFound(t *testing.T) {
	repo := &mockMemberRepository{
		getMemberFn: func(_ context.Context, _, _ string) (models.Member, error) {
			return models.Member{}, store.ErrMemberNotFound
		},
	}
	svc := NewMemberService(repo, logger.Nop())

	_, err := svc.GetMember(context.Background(), "m1", "gym-1")

	require.ErrorIs(t, err, store.ErrMemberNotFound)
}

// ─────────────────────────────────────────────
// UpdateMember
// ─────────────────────────────────────────────

func strPtr(s string) *string { return &s }

// storedMember is the record the update tests overlay changes on: both
// contact channels set, complete address.
func storedMember() models.Member {
	return models.Member{
		ID:      "m1",
		GymID:   "gym-1",
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "5551234567",
		Status:  models.MemberStatusActive,
		Street:  "12 Main St",
		City:    "Austin",
		State:   "TX",
		ZipCode: "78701",
	}
}

func newUpdateTestRepo() *mockMemberRepository {
	return &mockMemberRepository{
		getMemberFn: func(_ context.Context, id, gymID string) (models.Member, error) {
			return storedMember(), nil
		},
	}
}

func TestMemberService_UpdateMember_EmptyUpdate(t *testing.T) {
	svc := NewMemberService(&mockMemberRepository{}, logger.Nop())

	_, err := svc.UpdateMember(context.Background(), models.MemberUpdate{ID: "m1", GymID: "gym-1"})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
	require.ErrorIs(t, err, store.ErrNothingToUpdate)
}

func TestMemberService_UpdateMember_RejectsUnknownStatus(t *testing.T) {
	svc := NewMemberService(newUpdateTestRepo(), logger.Nop())

	_, err := svc.UpdateMember(context.Background(), models.MemberUpdate{
		ID:     "m1",
		GymID:  "gym-1",
		Status: strPtr("paused"),
	})

	require.ErrorIs(t, err, validators.ErrInvalidStatus)
}

func TestMemberService_UpdateMember_RejectsBadZIP(t *testing.T) {
	svc := NewMemberService(newUpdateTestRepo(), logger.Nop())

	_, err := svc.UpdateMember(context.Background(), models.MemberUpdate{
		ID:      "m1",
		GymID:   "gym-1",
		ZipCode: strPtr("787"),
	})

	require.ErrorIs(t, err, validators.ErrInvalidZIP)
}

func TestMemberService_UpdateMember_RejectsPartialAddress(t *testing.T) {
	writeCalled := false
	repo := &mockMemberRepository{
		getMemberFn: func(_ context.Context, _, _ string) (models.Member, error) {
			m := storedMember()
			m.Street, m.City, m.State, m.ZipCode = "", "", "", ""
			return m, nil
		},
		updateMemberFn: func(_ context.Context, update models.MemberUpdate) (models.Member, error) {
			writeCalled = true
			return models.Member{}, nil
		},
	}
	svc := NewMemberService(repo, logger.Nop())

	// street alone would leave a some-but-not-all address behind
	_, err := svc.UpdateMember(context.Background(), models.MemberUpdate{
		ID:     "m1",
		GymID:  "gym-1",
		Street: strPtr("12 Main St"),
	})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
	require.ErrorIs(t, err, validators.ErrIncompleteAddress)
	assert.False(t, writeCalled)
}

func TestMemberService_UpdateMember_RejectsClearingAllContacts(t *testing.T) {
	writeCalled := false
	repo := newUpdateTestRepo()
	repo.updateMemberFn = func(_ context.Context, update models.MemberUpdate) (models.Member, error) {
		writeCalled = true
		return models.Member{}, nil
	}
	svc := NewMemberService(repo, logger.Nop())

	_, err := svc.UpdateMember(context.Background(), models.MemberUpdate{
		ID:    "m1",
		GymID: "gym-1",
		Email: strPtr(""),
		Phone: strPtr(""),
	})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
	require.ErrorIs(t, err, validators.ErrContactRequired)
	assert.False(t, writeCalled)
}

func TestMemberService_UpdateMember_ClearingOneContactKeepsOther(t *testing.T) {
	repo := newUpdateTestRepo()
	repo.updateMemberFn = func(_ context.Context, update models.MemberUpdate) (models.Member, error) {
		return models.Member{ID: update.ID}, nil
	}
	svc := NewMemberService(repo, logger.Nop())

	_, err := svc.UpdateMember(context.Background(), models.MemberUpdate{
		ID:    "m1",
		GymID: "gym-1",
		Email: strPtr(""),
	})

	require.NoError(t, err)
}

func TestMemberService_UpdateMember_MemberNotFound(t *testing.T) {
	repo := &mockMemberRepository{
		getMemberFn: func(_ context.Context, _, _ string) (models.Member, error) {
			return models.Member{}, store.ErrMemberNotFound
		},
	}
	svc := NewMemberService(repo, logger.Nop())

	_, err := svc.UpdateMember(context.Background(), models.MemberUpdate{
		ID:     "missing",
		GymID:  "gym-1",
		Status: strPtr(models.MemberStatusInactive),
	})

	require.ErrorIs(t, err, store.ErrMemberNotFound)
}

func TestMemberService_UpdateMember_NormalizesPhone(t *testing.T) {
	var got models.MemberUpdate
	repo := newUpdateTestRepo()
	repo.updateMemberFn = func(_ context.Context, update models.MemberUpdate) (models.Member, error) {
		got = update
		return models.Member{ID: update.ID}, nil
	}
	svc := NewMemberService(repo, logger.Nop())

	_, err := svc.UpdateMember(context.Background(), models.MemberUpdate{
		ID:    "m1",
		GymID: "gym-1",
		Phone: strPtr("(555) 987-6543"),
	})

	require.NoError(t, err)
	require.NotNil(t, got.Phone)
	assert.Equal(t, "5559876543", *got.Phone)
}

// ─────────────────────────────────────────────
// DeleteMember
// ─────────────────────────────────────────────

func TestMemberService_DeleteMember(t *testing.T) {
	repo := &mockMemberRepository{
		deleteMemberFn: func(_ context.Context, id, gymID string) error {
			assert.Equal(t, "m1", id)
			assert.Equal(t, "gym-1", gymID)
			return nil
		},
	}
	svc := NewMemberService(repo, logger.Nop())

	require.NoError(t, svc.DeleteMember(context.Background(), "m1", "gym-1"))
}
