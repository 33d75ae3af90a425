package models

import "time"

// Activity types recorded against a member. CheckIn entries feed the
// dashboard check-in metric.
const (
	ActivityCheckIn  = "check_in"
	ActivityPayment  = "payment"
	ActivityNoteType = "note"
	ActivityOther    = "other"
)

// Activity is a single entry in a member's activity log.
type Activity struct {
	ID          int64     `json:"id"`
	MemberID    string    `json:"member_id"`
	GymID       string    `json:"gym_id"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Activity model.
func (a Activity) TableName() string {
	return "member_activities"
}
