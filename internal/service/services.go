package service

import (
	"github.com/jb131997/gymdesk/internal/cache"
	"github.com/jb131997/gymdesk/internal/config"
	"github.com/jb131997/gymdesk/internal/events"
	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/internal/store"
	"github.com/jb131997/gymdesk/internal/stripe"
)

// Services groups every application service into a single dependency bundle
// for the HTTP layer and the background workers.
type Services struct {
	AuthService      AuthService
	MemberService    MemberService
	NoteService      NoteService
	ProductService   ProductService
	DashboardService DashboardService
	AccountService   AccountService
}

// NewServices wires the service layer over the storage bundle, provider
// client, metrics cache, and event publisher.
func NewServices(
	storages *store.Storages,
	stripeClient stripe.Client,
	metricsCache *cache.MetricsCache,
	publisher events.Publisher,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) *Services {
	return &Services{
		AuthService:      NewAuthService(storages.ProfileRepository, cfg.App, logger),
		MemberService:    NewMemberService(storages.MemberRepository, logger),
		NoteService:      NewNoteService(storages.NoteRepository, publisher, logger),
		ProductService:   NewProductService(storages.ProductRepository, storages.ProfileRepository, stripeClient, logger),
		DashboardService: NewDashboardService(storages.DashboardRepository, metricsCache, logger),
		AccountService:   NewAccountService(storages.ProfileRepository, stripeClient, logger),
	}
}
