package models

import "time"

// Profile represents a gym owner account. It is both the authentication
// principal and the tenant every other entity is scoped to (members,
// products, notes, and activities all carry the profile's ID as gym_id).
// Sensitive fields must never be exposed outside trusted boundaries.
type Profile struct {
	// ID is the unique identifier of the profile (UUID).
	ID string `json:"id"`

	// Email is the unique login identifier, also used by the payment
	// provider when creating the connected account.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the account password.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// FullName is the display name of the gym owner.
	FullName string `json:"full_name"`

	// GymName is the optional display name of the gym itself.
	GymName string `json:"gym_name,omitempty"`

	// StripeAccountID is the payment provider's connected account ID.
	// Empty until onboarding creates the account; several operations
	// treat an empty value as "account not yet provisioned".
	StripeAccountID string `json:"stripe_account_id,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}

// Credentials is the request body accepted by the register and login
// endpoints. FullName and GymName are only consulted during registration.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
	GymName  string `json:"gym_name,omitempty"`
}
