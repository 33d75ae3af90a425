package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/models"
)

// memberRepository is the PostgreSQL-backed implementation of
// [MemberRepository]. Every query is scoped by gym_id so one gym can never
// read or mutate another gym's members.
type memberRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMemberRepository constructs a [MemberRepository] backed by the provided
// database connection and logger.
func NewMemberRepository(db *DB, logger *logger.Logger) MemberRepository {
	logger.Debug().Msg("creating member repository")
	return &memberRepository{
		db:     db,
		logger: logger,
	}
}

func (r *memberRepository) CreateMember(ctx context.Context, member models.Member) (models.Member, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createMember,
		member.ID, member.GymID, member.Name, member.Email, member.Phone,
		member.Status, member.Plan, member.JoinDate,
		member.Street, member.City, member.State, member.ZipCode)

	saved, err := scanMember(row)
	if err != nil {
		log.Err(err).Str("func", "*memberRepository.CreateMember").Msg("error: scanning error")
		return models.Member{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

func (r *memberRepository) GetMember(ctx context.Context, id, gymID string) (models.Member, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getMember, id, gymID)
	member, err := scanMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Member{}, ErrMemberNotFound
		}
		log.Err(err).Str("func", "*memberRepository.GetMember").Msg("error: scanning error")
		return models.Member{}, err
	}

	return member, nil
}

func (r *memberRepository) ListMembers(ctx context.Context, gymID string, filter MemberFilter) ([]models.Member, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMembersQuery(gymID, filter)
	if err != nil {
		log.Err(err).Str("func", "*memberRepository.ListMembers").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*memberRepository.ListMembers").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	members := make([]models.Member, 0)
	for rows.Next() {
		member, scanErr := scanMember(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*memberRepository.ListMembers").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		members = append(members, member)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return members, nil
}

// UpdateMember applies a partial update built dynamically from the non-nil
// fields of update and returns the canonical post-update row.
func (r *memberRepository) UpdateMember(ctx context.Context, update models.MemberUpdate) (models.Member, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateMemberQuery(update)
	if err != nil {
		return models.Member{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	member, err := scanMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Member{}, ErrMemberNotFound
		}
		log.Err(err).Str("func", "*memberRepository.UpdateMember").Msg("error: scanning error")
		return models.Member{}, err
	}

	return member, nil
}

func (r *memberRepository) DeleteMember(ctx context.Context, id, gymID string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteMember, id, gymID)
	if err != nil {
		log.Err(err).Str("func", "*memberRepository.DeleteMember").Msg("error executing delete")
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

// MarkStaleInactive flips active members whose last visit predates cutoff to
// inactive, across all gyms. Used by the scheduled status-refresh worker; a
// transient failure is retried once, since no caller exists to re-run it
// before the next scheduled tick.
func (r *memberRepository) MarkStaleInactive(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, markStaleMembersInactive, cutoff)
	if err != nil && r.db.Classify(err) == Retryable {
		r.logger.Warn().Err(err).Str("func", "*memberRepository.MarkStaleInactive").Msg("transient DB error, retrying statement")
		res, err = r.db.ExecContext(ctx, markStaleMembersInactive, cutoff)
	}
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return res.RowsAffected()
}

func scanMember(row rowScanner) (models.Member, error) {
	var (
		member    models.Member
		email     sql.NullString
		phone     sql.NullString
		plan      sql.NullString
		lastVisit sql.NullTime
		street    sql.NullString
		city      sql.NullString
		state     sql.NullString
		zipCode   sql.NullString
	)

	if err := row.Scan(&member.ID, &member.GymID, &member.Name, &email, &phone,
		&member.Status, &plan, &member.JoinDate, &lastVisit,
		&street, &city, &state, &zipCode, &member.CreatedAt); err != nil {
		return models.Member{}, err
	}

	member.Email = email.String
	member.Phone = phone.String
	member.Plan = plan.String
	if lastVisit.Valid {
		member.LastVisit = lastVisit.Time
	}
	member.Street = street.String
	member.City = city.String
	member.State = state.String
	member.ZipCode = zipCode.String

	return member, nil
}
