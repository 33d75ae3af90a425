package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jb131997/gymdesk/internal/events"
	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/internal/store"
	"github.com/jb131997/gymdesk/models"
)

// noteService is the concrete implementation of NoteService. Besides plain
// CRUD it keeps two side effects consistent with the activity log: check-ins
// refresh the member's last-visit timestamp, and every recorded activity is
// published as an event when a broker is configured.
type noteService struct {
	noteRepository store.NoteRepository
	publisher      events.Publisher
	logger         *logger.Logger
}

// NewNoteService constructs a NoteService over the given repository.
// publisher may be a disabled producer.
func NewNoteService(noteRepository store.NoteRepository, publisher events.Publisher, logger *logger.Logger) NoteService {
	logger.Debug().Msg("creating note service")
	return &noteService{
		noteRepository: noteRepository,
		publisher:      publisher,
		logger:         logger,
	}
}

// AddNote persists a staff note for a member. Empty content is rejected.
func (s *noteService) AddNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(note.Content) == "" {
		log.Error().Str("memberID", note.MemberID).Msg("empty note content provided")
		return models.Note{}, ErrInvalidDataProvided
	}

	created, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("memberID", note.MemberID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return created, nil
}

// ListNotes returns a member's notes, newest first.
func (s *noteService) ListNotes(ctx context.Context, memberID, gymID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	notes, err := s.noteRepository.ListNotes(ctx, memberID, gymID)
	if err != nil {
		log.Err(err).Str("memberID", memberID).Msg("note listing failed")
		return nil, fmt.Errorf("note listing failed: %w", err)
	}

	return notes, nil
}

// DeleteNote removes one note scoped to the owning gym.
func (s *noteService) DeleteNote(ctx context.Context, id int64, gymID string) error {
	log := logger.FromContext(ctx)

	if err := s.noteRepository.DeleteNote(ctx, id, gymID); err != nil {
		log.Err(err).Int64("id", id).Str("gymID", gymID).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}

// LogActivity records an entry in the member's activity log.
//
// An unknown activity type is rejected. A check-in additionally updates the
// member's last-visit timestamp; a failure there is logged but does not
// undo the recorded activity. The stored entry is published to the activity
// topic, keyed by gym.
func (s *noteService) LogActivity(ctx context.Context, activity models.Activity) (models.Activity, error) {
	log := logger.FromContext(ctx)

	switch activity.Type {
	case models.ActivityCheckIn, models.ActivityPayment, models.ActivityNoteType, models.ActivityOther:
	default:
		log.Error().Str("type", activity.Type).Msg("unknown activity type provided")
		return models.Activity{}, ErrInvalidDataProvided
	}

	created, err := s.noteRepository.CreateActivity(ctx, activity)
	if err != nil {
		log.Err(err).Str("memberID", activity.MemberID).Msg("activity creation ended with error")
		return models.Activity{}, fmt.Errorf("activity creation ended with error: %w", err)
	}

	if created.Type == models.ActivityCheckIn {
		if err := s.noteRepository.TouchLastVisit(ctx, created.MemberID, created.GymID); err != nil {
			log.Err(err).Str("memberID", created.MemberID).Msg("error updating last visit after check-in")
		}
	}

	s.publisher.Publish(ctx, events.TopicActivity, created.GymID, events.ActivityLogged{
		GymID:      created.GymID,
		MemberID:   created.MemberID,
		ActivityID: created.ID,
		Type:       created.Type,
		OccurredAt: created.CreatedAt,
	})

	return created, nil
}

// ListActivities returns a member's activity log, newest first.
func (s *noteService) ListActivities(ctx context.Context, memberID, gymID string) ([]models.Activity, error) {
	log := logger.FromContext(ctx)

	activities, err := s.noteRepository.ListActivities(ctx, memberID, gymID)
	if err != nil {
		log.Err(err).Str("memberID", memberID).Msg("activity listing failed")
		return nil, fmt.Errorf("activity listing failed: %w", err)
	}

	return activities, nil
}
