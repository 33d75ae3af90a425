package models

import "time"

// Note is a free-form staff note attached to a member.
type Note struct {
	ID        int64     `json:"id"`
	MemberID  string    `json:"member_id"`
	GymID     string    `json:"gym_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "member_notes"
}
