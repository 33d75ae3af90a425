package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository]. It handles gym owner account creation and lookup
// against the "profiles" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProfile persists a new gym owner account and returns the fully
// populated [models.Profile] with server-assigned fields.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *profileRepository) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProfile,
		profile.ID, profile.Email, profile.PasswordHash, profile.FullName, profile.GymName)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Profile{}, ErrEmailAlreadyExists
		default:
			return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	saved, err := scanProfile(row)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Msg("error: scanning error")
		return models.Profile{}, err
	}

	return saved, nil
}

// FindProfileByEmail retrieves the account whose email matches.
//
// Returns [ErrProfileNotFound] when the email is unknown.
func (r *profileRepository) FindProfileByEmail(ctx context.Context, email string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findProfileByEmail, email)
	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}
		log.Err(err).Str("func", "*profileRepository.FindProfileByEmail").Msg("error: scanning error")
		return models.Profile{}, err
	}

	return profile, nil
}

// FindProfileByID retrieves the account with the given UUID.
//
// Returns [ErrProfileNotFound] when no row matches.
func (r *profileRepository) FindProfileByID(ctx context.Context, id string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findProfileByID, id)
	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}
		log.Err(err).Str("func", "*profileRepository.FindProfileByID").Msg("error: scanning error")
		return models.Profile{}, err
	}

	return profile, nil
}

// SetStripeAccountID stores the connected account ID created during
// onboarding on the profile row.
func (r *profileRepository) SetStripeAccountID(ctx context.Context, profileID, accountID string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, setProfileStripeAccount, profileID, accountID)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.SetStripeAccountID").Msg("error executing update")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrProfileNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (models.Profile, error) {
	var (
		profile       models.Profile
		gymName       sql.NullString
		stripeAccount sql.NullString
	)

	if err := row.Scan(&profile.ID, &profile.Email, &profile.PasswordHash,
		&profile.FullName, &gymName, &stripeAccount, &profile.CreatedAt); err != nil {
		return models.Profile{}, err
	}

	profile.GymName = gymName.String
	profile.StripeAccountID = stripeAccount.String

	return profile, nil
}
