package models

import "time"

// Member statuses. Anything else is rejected at the service layer.
const (
	MemberStatusActive   = "active"
	MemberStatusInactive = "inactive"
)

// Member represents a gym member record owned by a single gym.
type Member struct {
	// ID is the unique identifier of the member (UUID).
	ID string `json:"id"`

	// GymID is the owning profile's ID. Every query is scoped by it.
	GymID string `json:"gym_id"`

	// Name is the member's display name.
	Name string `json:"name"`

	// Email is optional, but at least one of Email/Phone must be set.
	Email string `json:"email,omitempty"`

	// Phone is stored as bare digits; handlers format it for display
	// with validators.FormatPhone.
	Phone string `json:"phone,omitempty"`

	// Status is either "active" or "inactive".
	Status string `json:"status"`

	// Plan is the free-form name of the membership plan.
	Plan string `json:"plan,omitempty"`

	// JoinDate is when the member joined the gym.
	JoinDate time.Time `json:"join_date"`

	// LastVisit is the timestamp of the most recent recorded visit.
	// Zero when the member has never checked in.
	LastVisit time.Time `json:"last_visit,omitempty"`

	// Address fields. Either all four are set or none are.
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Member model.
func (m Member) TableName() string {
	return "members"
}

// MemberUpdate carries a partial update of a member record. Nil fields are
// left untouched; the store layer builds the UPDATE statement dynamically
// from the non-nil ones.
type MemberUpdate struct {
	ID    string `json:"-"`
	GymID string `json:"-"`

	Name      *string    `json:"name,omitempty"`
	Email     *string    `json:"email,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	Status    *string    `json:"status,omitempty"`
	Plan      *string    `json:"plan,omitempty"`
	LastVisit *time.Time `json:"last_visit,omitempty"`
	Street    *string    `json:"street,omitempty"`
	City      *string    `json:"city,omitempty"`
	State     *string    `json:"state,omitempty"`
	ZipCode   *string    `json:"zip_code,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u MemberUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil &&
		u.Status == nil && u.Plan == nil && u.LastVisit == nil &&
		u.Street == nil && u.City == nil && u.State == nil && u.ZipCode == nil
}
