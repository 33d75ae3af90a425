package service

import (
	"context"
	"fmt"

	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/internal/store"
	"github.com/jb131997/gymdesk/internal/utils"
	"github.com/jb131997/gymdesk/internal/validators"
	"github.com/jb131997/gymdesk/models"
)

// memberService is the concrete implementation of MemberService. Validation
// is delegated to an injected validator; phone numbers are normalised to
// bare digits before they reach the repository.
type memberService struct {
	memberRepository store.MemberRepository
	validator        validators.Validator
	ids              *utils.UUIDGenerator
	logger           *logger.Logger
}

// NewMemberService constructs a MemberService over the given repository.
func NewMemberService(memberRepository store.MemberRepository, logger *logger.Logger) MemberService {
	logger.Debug().Msg("creating member service")
	return &memberService{
		memberRepository: memberRepository,
		validator:        validators.NewMemberValidator(),
		ids:              utils.NewUUIDGenerator(),
		logger:           logger,
	}
}

// CreateMember validates and persists a new member record.
//
// The phone number is normalised to bare digits before storage. A member
// with neither email nor phone, a partial address, or a malformed ZIP is
// rejected with the matching validators sentinel.
func (s *memberService) CreateMember(ctx context.Context, member models.Member) (models.Member, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, member); err != nil {
		log.Error().Err(err).Str("gymID", member.GymID).Msg("invalid member data provided")
		return models.Member{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	member.ID = s.ids.Generate()
	member.Phone = validators.NormalizePhone(member.Phone)
	if member.Status == "" {
		member.Status = models.MemberStatusActive
	}

	created, err := s.memberRepository.CreateMember(ctx, member)
	if err != nil {
		log.Err(err).Str("gymID", member.GymID).Msg("member creation ended with error")
		return models.Member{}, fmt.Errorf("member creation ended with error: %w", err)
	}

	return created, nil
}

// GetMember loads one member scoped to the owning gym.
func (s *memberService) GetMember(ctx context.Context, id, gymID string) (models.Member, error) {
	log := logger.FromContext(ctx)

	member, err := s.memberRepository.GetMember(ctx, id, gymID)
	if err != nil {
		log.Err(err).Str("id", id).Str("gymID", gymID).Msg("member lookup failed")
		return models.Member{}, fmt.Errorf("member lookup failed: %w", err)
	}

	return member, nil
}

// ListMembers returns the gym's members, optionally filtered by status or a
// name/email search term.
func (s *memberService) ListMembers(ctx context.Context, gymID string, filter store.MemberFilter) ([]models.Member, error) {
	log := logger.FromContext(ctx)

	members, err := s.memberRepository.ListMembers(ctx, gymID, filter)
	if err != nil {
		log.Err(err).Str("gymID", gymID).Msg("member listing failed")
		return nil, fmt.Errorf("member listing failed: %w", err)
	}

	return members, nil
}

// UpdateMember applies a partial update. The current record is loaded, the
// update overlaid on it, and the merged result re-validated against the full
// member form rules, so a partial write can never leave behind a state the
// create path would have rejected.
func (s *memberService) UpdateMember(ctx context.Context, update models.MemberUpdate) (models.Member, error) {
	log := logger.FromContext(ctx)

	if update.Empty() {
		return models.Member{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, store.ErrNothingToUpdate)
	}

	current, err := s.memberRepository.GetMember(ctx, update.ID, update.GymID)
	if err != nil {
		log.Err(err).Str("id", update.ID).Str("gymID", update.GymID).Msg("member lookup failed")
		return models.Member{}, fmt.Errorf("member lookup failed: %w", err)
	}

	if update.Phone != nil {
		normalized := validators.NormalizePhone(*update.Phone)
		update.Phone = &normalized
	}

	if err = s.validator.Validate(ctx, applyMemberUpdate(current, update)); err != nil {
		log.Error().Err(err).Str("id", update.ID).Str("gymID", update.GymID).Msg("invalid member update provided")
		return models.Member{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := s.memberRepository.UpdateMember(ctx, update)
	if err != nil {
		log.Err(err).Str("id", update.ID).Str("gymID", update.GymID).Msg("member update ended with error")
		return models.Member{}, fmt.Errorf("member update ended with error: %w", err)
	}

	return updated, nil
}

// applyMemberUpdate overlays the non-nil update fields on current, producing
// the member state the write would leave behind.
func applyMemberUpdate(current models.Member, update models.MemberUpdate) models.Member {
	if update.Name != nil {
		current.Name = *update.Name
	}
	if update.Email != nil {
		current.Email = *update.Email
	}
	if update.Phone != nil {
		current.Phone = *update.Phone
	}
	if update.Status != nil {
		current.Status = *update.Status
	}
	if update.Plan != nil {
		current.Plan = *update.Plan
	}
	if update.LastVisit != nil {
		current.LastVisit = *update.LastVisit
	}
	if update.Street != nil {
		current.Street = *update.Street
	}
	if update.City != nil {
		current.City = *update.City
	}
	if update.State != nil {
		current.State = *update.State
	}
	if update.ZipCode != nil {
		current.ZipCode = *update.ZipCode
	}
	return current
}

// DeleteMember removes a member and, via cascading foreign keys, the
// member's notes and activity log.
func (s *memberService) DeleteMember(ctx context.Context, id, gymID string) error {
	log := logger.FromContext(ctx)

	if err := s.memberRepository.DeleteMember(ctx, id, gymID); err != nil {
		log.Err(err).Str("id", id).Str("gymID", gymID).Msg("member deletion ended with error")
		return fmt.Errorf("member deletion ended with error: %w", err)
	}

	return nil
}
