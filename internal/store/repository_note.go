package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/models"
)

// noteRepository is the PostgreSQL-backed implementation of
// [NoteRepository], covering both staff notes and the member activity log.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createNote, note.MemberID, note.GymID, note.Content)
	if err := row.Scan(&note.ID, &note.MemberID, &note.GymID, &note.Content, &note.CreatedAt); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: scanning error")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return note, nil
}

func (r *noteRepository) ListNotes(ctx context.Context, memberID, gymID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listNotes, memberID, gymID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err = rows.Scan(&note.ID, &note.MemberID, &note.GymID, &note.Content, &note.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

func (r *noteRepository) DeleteNote(ctx context.Context, id int64, gymID string) error {
	res, err := r.db.ExecContext(ctx, deleteNote, id, gymID)
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func (r *noteRepository) CreateActivity(ctx context.Context, activity models.Activity) (models.Activity, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createActivity,
		activity.MemberID, activity.GymID, activity.Type, activity.Description)

	var description sql.NullString
	if err := row.Scan(&activity.ID, &activity.MemberID, &activity.GymID,
		&activity.Type, &description, &activity.CreatedAt); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateActivity").Msg("error: scanning error")
		return models.Activity{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	activity.Description = description.String

	return activity, nil
}

func (r *noteRepository) ListActivities(ctx context.Context, memberID, gymID string) ([]models.Activity, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listActivities, memberID, gymID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListActivities").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	activities := make([]models.Activity, 0)
	for rows.Next() {
		var (
			activity    models.Activity
			description sql.NullString
		)
		if err = rows.Scan(&activity.ID, &activity.MemberID, &activity.GymID,
			&activity.Type, &description, &activity.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		activity.Description = description.String
		activities = append(activities, activity)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return activities, nil
}

// TouchLastVisit refreshes the member's last_visit stamp; called when a
// check-in activity is recorded.
func (r *noteRepository) TouchLastVisit(ctx context.Context, memberID, gymID string) error {
	res, err := r.db.ExecContext(ctx, touchMemberLastVisit, memberID, gymID)
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrMemberNotFound
	}

	return nil
}
