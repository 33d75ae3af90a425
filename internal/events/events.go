// Package events publishes domain events to Kafka so downstream consumers
// (reporting, exports) can follow gym activity without polling the database.
// Publishing is best-effort: the request path never fails because a broker
// is down.
package events

import "time"

// Topics the application produces to.
const (
	TopicActivity = "gymdesk.activity"
	TopicMembers  = "gymdesk.members"
)

// ActivityLogged is emitted whenever an activity-log entry is recorded for
// a member.
type ActivityLogged struct {
	GymID      string    `json:"gym_id"`
	MemberID   string    `json:"member_id"`
	ActivityID int64     `json:"activity_id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
}

// MemberStatusChanged is emitted when a member's status flips, including
// bulk flips performed by the stale-member background job.
type MemberStatusChanged struct {
	GymID     string    `json:"gym_id,omitempty"`
	MemberID  string    `json:"member_id,omitempty"`
	Status    string    `json:"status"`
	Count     int64     `json:"count,omitempty"`
	ChangedAt time.Time `json:"changed_at"`
}
