package service

import (
	"context"

	"github.com/jb131997/gymdesk/internal/store"
	"github.com/jb131997/gymdesk/models"
)

// AuthService owns gym-owner registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	Register(ctx context.Context, creds models.Credentials) (models.Profile, error)
	Login(ctx context.Context, creds models.Credentials) (models.Profile, error)
	CreateToken(ctx context.Context, profile models.Profile) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// MemberService owns member records: validation, phone normalization, and
// owner-scoped CRUD.
type MemberService interface {
	CreateMember(ctx context.Context, member models.Member) (models.Member, error)
	GetMember(ctx context.Context, id, gymID string) (models.Member, error)
	ListMembers(ctx context.Context, gymID string, filter store.MemberFilter) ([]models.Member, error)
	UpdateMember(ctx context.Context, update models.MemberUpdate) (models.Member, error)
	DeleteMember(ctx context.Context, id, gymID string) error
}

// NoteService owns staff notes and the member activity log. Check-ins
// additionally refresh the member's last-visit timestamp.
type NoteService interface {
	AddNote(ctx context.Context, note models.Note) (models.Note, error)
	ListNotes(ctx context.Context, memberID, gymID string) ([]models.Note, error)
	DeleteNote(ctx context.Context, id int64, gymID string) error

	LogActivity(ctx context.Context, activity models.Activity) (models.Activity, error)
	ListActivities(ctx context.Context, memberID, gymID string) ([]models.Activity, error)
}

// ProductService owns the catalog: validation, provider-side product/price/
// payment-link creation, and local persistence.
type ProductService interface {
	CreateProduct(ctx context.Context, gymID string, input models.ProductInput) (models.Product, error)
	ListProducts(ctx context.Context, gymID string) ([]models.Product, error)
	SetActive(ctx context.Context, id, gymID string, active bool) error
}

// DashboardService owns the configurable dashboard layout and the metrics
// aggregate.
type DashboardService interface {
	GetConfig(ctx context.Context, gymID string) (models.DashboardConfig, error)
	SaveConfig(ctx context.Context, cfg models.DashboardConfig) error
	GetGymMetrics(ctx context.Context, gymID string, rng models.MetricsRange) (models.GymMetrics, error)
}

// AccountService owns the payment provider account lifecycle: express
// account onboarding and the account-info fetch the embedding session
// protocol runs against.
type AccountService interface {
	ConnectAccount(ctx context.Context, gymID string) (models.StripeAccount, error)
	FetchAccountInfo(ctx context.Context, gymID string) (models.AccountInfo, error)
}
