package store

import (
	"context"
	"time"

	"github.com/jb131997/gymdesk/models"
)

// ProfileRepository persists gym owner accounts.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
	FindProfileByEmail(ctx context.Context, email string) (models.Profile, error)
	FindProfileByID(ctx context.Context, id string) (models.Profile, error)
	SetStripeAccountID(ctx context.Context, profileID, accountID string) error
}

// MemberRepository persists member records for a gym.
type MemberRepository interface {
	CreateMember(ctx context.Context, member models.Member) (models.Member, error)
	GetMember(ctx context.Context, id, gymID string) (models.Member, error)
	ListMembers(ctx context.Context, gymID string, filter MemberFilter) ([]models.Member, error)
	UpdateMember(ctx context.Context, update models.MemberUpdate) (models.Member, error)
	DeleteMember(ctx context.Context, id, gymID string) error
	MarkStaleInactive(ctx context.Context, cutoff time.Time) (int64, error)
}

// NoteRepository persists staff notes and activity-log entries.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	ListNotes(ctx context.Context, memberID, gymID string) ([]models.Note, error)
	DeleteNote(ctx context.Context, id int64, gymID string) error

	CreateActivity(ctx context.Context, activity models.Activity) (models.Activity, error)
	ListActivities(ctx context.Context, memberID, gymID string) ([]models.Activity, error)
	TouchLastVisit(ctx context.Context, memberID, gymID string) error
}

// ProductRepository persists the product catalog and its provider linkage.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	ListProducts(ctx context.Context, gymID string) ([]models.Product, error)
	SetActive(ctx context.Context, id, gymID string, active bool) error
	ListUnlinked(ctx context.Context) ([]models.Product, error)
}

// DashboardRepository persists dashboard layouts and computes gym metrics.
type DashboardRepository interface {
	GetConfig(ctx context.Context, gymID string) (models.DashboardConfig, error)
	UpsertConfig(ctx context.Context, cfg models.DashboardConfig) error
	GymMetrics(ctx context.Context, gymID string, rng models.MetricsRange) (models.GymMetrics, error)
}
