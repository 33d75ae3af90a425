package service

import (
	"context"
	"testing"

	"github.com/jb131997/gymdesk/internal/events"
	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.NoteRepository
// ─────────────────────────────────────────────

type mockNoteRepository struct {
	createNoteFn     func(ctx context.Context, note models.Note) (models.Note, error)
	listNotesFn      func(ctx context.Context, memberID, gymID string) ([]models.Note, error)
	deleteNoteFn     func(ctx context.Context, id int64, gymID string) error
	createActivityFn func(ctx context.Context, activity models.Activity) (models.Activity, error)
	listActivitiesFn func(ctx context.Context, memberID, gymID string) ([]models.Activity, error)
	touchLastVisitFn func(ctx context.Context, memberID, gymID string) error
}

func (m *mockNoteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if m.createNoteFn != nil {
		return m.createNoteFn(ctx, note)
	}
	return note, nil
}

func (m *mockNoteRepository) ListNotes(ctx context.Context, memberID, gymID string) ([]models.Note, error) {
	if m.listNotesFn != nil {
		return m.listNotesFn(ctx, memberID, gymID)
	}
	return nil, nil
}

func (m *mockNoteRepository) DeleteNote(ctx context.Context, id int64, gymID string) error {
	if m.deleteNoteFn != nil {
		return m.deleteNoteFn(ctx, id, gymID)
	}
	return nil
}

func (m *mockNoteRepository) CreateActivity(ctx context.Context, activity models.Activity) (models.Activity, error) {
	if m.createActivityFn != nil {
		return m.createActivityFn(ctx, activity)
	}
	return activity, nil
}

func (m *mockNoteRepository) ListActivities(ctx context.Context, memberID, gymID string) ([]models.Activity, error) {
	if m.listActivitiesFn != nil {
		return m.listActivitiesFn(ctx, memberID, gymID)
	}
	return nil, nil
}

func (m *mockNoteRepository) TouchLastVisit(ctx context.Context, memberID, gymID string) error {
	if m.touchLastVisitFn != nil {
		return m.touchLastVisitFn(ctx, memberID, gymID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: events.Publisher
// ─────────────────────────────────────────────

type mockPublisher struct {
	published []publishedEvent
}

type publishedEvent struct {
	topic string
	key   string
	event any
}

func (m *mockPublisher) Publish(_ context.Context, topic, key string, event any) {
	m.published = append(m.published, publishedEvent{topic: topic, key: key, event: event})
}

// ─────────────────────────────────────────────
// AddNote
// ─────────────────────────────────────────────

func TestNoteService_AddNote_Success(t *testing.T) {
	repo := &mockNoteRepository{
		createNoteFn: func(_ context.Context, note models.Note) (models.Note, error) {
			note.ID = 7
			return note, nil
		},
	}
	svc := NewNoteService(repo, &mockPublisher{}, logger.Nop())

	created, err := svc.AddNote(context.Background(), models.Note{
		MemberID: "m1",
		GymID:    "gym-1",
		Content:  "prefers morning sessions",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
}

func TestNoteService_AddNote_EmptyContent(t *testing.T) {
	svc := NewNoteService(&mockNoteRepository{}, &mockPublisher{}, logger.Nop())

	_, err := svc.AddNote(context.Background(), models.Note{
		MemberID: "m1",
		GymID:    "gym-1",
		Content:  "   ",
	})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// LogActivity
// ─────────────────────────────────────────────

func TestNoteService_LogActivity_CheckInTouchesLastVisit(t *testing.T) {
	touched := false
	repo := &mockNoteRepository{
		createActivityFn: func(_ context.Context, activity models.Activity) (models.Activity, error) {
			activity.ID = 42
			return activity, nil
		},
		touchLastVisitFn: func(_ context.Context, memberID, gymID string) error {
			touched = true
			assert.Equal(t, "m1", memberID)
			assert.Equal(t, "gym-1", gymID)
			return nil
		},
	}
	pub := &mockPublisher{}
	svc := NewNoteService(repo, pub, logger.Nop())

	created, err := svc.LogActivity(context.Background(), models.Activity{
		MemberID: "m1",
		GymID:    "gym-1",
		Type:     models.ActivityCheckIn,
	})

	require.NoError(t, err)
	assert.True(t, touched)

	require.Len(t, pub.published, 1)
	assert.Equal(t, events.TopicActivity, pub.published[0].topic)
	assert.Equal(t, "gym-1", pub.published[0].key)
	logged, ok := pub.published[0].event.(events.ActivityLogged)
	require.True(t, ok)
	assert.Equal(t, created.ID, logged.ActivityID)
	assert.Equal(t, models.ActivityCheckIn, logged.Type)
}

func TestNoteService_LogActivity_NonCheckInSkipsLastVisit(t *testing.T) {
	touched := false
	repo := &mockNoteRepository{
		touchLastVisitFn: func(_ context.Context, _, _ string) error {
			touched = true
			return nil
		},
	}
	svc := NewNoteService(repo, &mockPublisher{}, logger.Nop())

	_, err := svc.LogActivity(context.Background(), models.Activity{
		MemberID: "m1",
		GymID:    "gym-1",
		Type:     models.ActivityPayment,
	})

	require.NoError(t, err)
	assert.False(t, touched)
}

func TestNoteService_LogActivity_TouchFailureDoesNotFailTheLog(t *testing.T) {
	repo := &mockNoteRepository{
		touchLastVisitFn: func(_ context.Context, _, _ string) error {
			return errStorage
		},
	}
	svc := NewNoteService(repo, &mockPublisher{}, logger.Nop())

	_, err := svc.LogActivity(context.Background(), models.Activity{
		MemberID: "m1",
		GymID:    "gym-1",
		Type:     models.ActivityCheckIn,
	})

	require.NoError(t, err, "a failed last-visit refresh must not fail the check-in")
}

func TestNoteService_LogActivity_UnknownType(t *testing.T) {
	pub := &mockPublisher{}
	svc := NewNoteService(&mockNoteRepository{}, pub, logger.Nop())

	_, err := svc.LogActivity(context.Background(), models.Activity{
		MemberID: "m1",
		GymID:    "gym-1",
		Type:     "teleport",
	})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Empty(t, pub.published)
}

// ─────────────────────────────────────────────
// DeleteNote
// ─────────────────────────────────────────────

func TestNoteService_DeleteNote(t *testing.T) {
	repo := &mockNoteRepository{
		deleteNoteFn: func(_ context.Context, id int64, gymID string) error {
			assert.Equal(t, int64(7), id)
			assert.Equal(t, "gym-1", gymID)
			return nil
		},
	}
	svc := NewNoteService(repo, &mockPublisher{}, logger.Nop())

	require.NoError(t, svc.DeleteNote(context.Background(), 7, "gym-1"))
}
