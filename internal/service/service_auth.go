package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jb131997/gymdesk/internal/config"
	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/internal/store"
	"github.com/jb131997/gymdesk/internal/utils"
	"github.com/jb131997/gymdesk/models"
)

// authService is the concrete implementation of AuthService.
// It handles gym-owner registration, credential verification, and the JWT
// token lifecycle using a ProfileRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// profileRepository is the data-access layer used to create and look
	// up gym owner accounts.
	profileRepository store.ProfileRepository

	// ids generates profile UUIDs at registration time.
	ids *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// ProfileRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(profileRepository store.ProfileRepository, cfg config.App, logger *logger.Logger) AuthService {
	logger.Debug().Msg("creating auth service")
	return &authService{
		profileRepository: profileRepository,
		ids:               utils.NewUUIDGenerator(),
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Register creates a new gym owner account.
//
// It validates that both Email and Password are non-empty, hashes the
// password with bcrypt, and delegates persistence to the ProfileRepository.
//
// Returns the persisted profile (with a server-assigned UUID) or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		log.Error().Str("email", creds.Email).Msg("invalid credentials provided")
		return models.Profile{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Profile{}, fmt.Errorf("password hashing failed: %w", err)
	}

	profile := models.Profile{
		ID:           a.ids.Generate(),
		Email:        creds.Email,
		PasswordHash: string(hash),
		FullName:     creds.FullName,
		GymName:      creds.GymName,
	}

	registered, err := a.profileRepository.CreateProfile(ctx, profile)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("profile creation ended with error")
		return models.Profile{}, fmt.Errorf("profile creation ended with error: %w", err)
	}

	return registered, nil
}

// Login authenticates an existing gym owner.
//
// It validates that both Email and Password are non-empty, looks up the
// account by email, and compares the stored bcrypt hash with the supplied
// password.
//
// Returns the authenticated profile or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. profile
//     not found — see store.ErrProfileNotFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		log.Error().Str("email", creds.Email).Msg("invalid credentials provided")
		return models.Profile{}, ErrInvalidDataProvided
	}

	found, err := a.profileRepository.FindProfileByEmail(ctx, creds.Email)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("profile search by email failed")
		return models.Profile{}, fmt.Errorf("profile search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(creds.Password)); err != nil {
		log.Error().
			Str("id", found.ID).
			Str("email", found.Email).
			Msg("wrong password")
		return models.Profile{}, ErrWrongPassword
	}

	return found, nil
}

// CreateToken issues a signed JWT for the given profile.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim and the profile UUID as the
// "sub" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, profile models.Profile) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, profile.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
//
// Returns the decoded token model on success or ErrTokenIsExpiredOrInvalid on
// any validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
