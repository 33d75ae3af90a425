package validators

import (
	"context"
	"strings"

	"github.com/jb131997/gymdesk/models"
)

// memberValidator applies the member form rules: required name, at least one
// contact channel, all-or-none address, valid ZIP.
type memberValidator struct{}

// NewMemberValidator constructs a [Validator] for [models.Member] values.
func NewMemberValidator() Validator {
	return &memberValidator{}
}

func (v *memberValidator) Validate(_ context.Context, value any, _ ...string) error {
	member, ok := value.(models.Member)
	if !ok {
		if ptr, okPtr := value.(*models.Member); okPtr {
			member = *ptr
		} else {
			return ErrUnsupportedType
		}
	}

	if strings.TrimSpace(member.Name) == "" {
		return ErrNameRequired
	}
	if err := ValidateContact(member.Email, member.Phone); err != nil {
		return err
	}
	if err := ValidateAddress(member.Street, member.City, member.State, member.ZipCode); err != nil {
		return err
	}
	if err := ValidateZIP(member.ZipCode); err != nil {
		return err
	}
	if member.Status != "" && member.Status != models.MemberStatusActive && member.Status != models.MemberStatusInactive {
		return ErrInvalidStatus
	}

	return nil
}
