package workers

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jb131997/gymdesk/internal/config"
	"github.com/jb131997/gymdesk/internal/events"
	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/internal/store"
)

// statusRefreshWorker periodically marks members inactive when their last
// recorded visit is older than the configured cutoff.
type statusRefreshWorker struct {
	memberRepository store.MemberRepository
	publisher        events.Publisher
	cutoff           time.Duration
	spec             string
	logger           *logger.Logger
	cron             *cron.Cron
}

// NewStatusRefreshWorker constructs the member status refresh job.
func NewStatusRefreshWorker(memberRepository store.MemberRepository, publisher events.Publisher, cfg config.Workers, logger *logger.Logger) Worker {
	logger.Debug().Str("spec", cfg.StatusRefreshSpec).Msg("creating status refresh worker")
	return &statusRefreshWorker{
		memberRepository: memberRepository,
		publisher:        publisher,
		cutoff:           cfg.InactivityCutoff,
		spec:             cfg.StatusRefreshSpec,
		logger:           logger,
		cron:             cron.New(),
	}
}

func (w *statusRefreshWorker) Run() {
	if _, err := w.cron.AddFunc(w.spec, w.refresh); err != nil {
		w.logger.Err(err).Str("spec", w.spec).Msg("error scheduling status refresh job")
		return
	}
	w.cron.Start()
}

func (w *statusRefreshWorker) refresh() {
	ctx := w.logger.WithContext(context.Background())
	log := logger.FromContext(ctx)

	cutoff := time.Now().Add(-w.cutoff)
	marked, err := w.memberRepository.MarkStaleInactive(ctx, cutoff)
	if err != nil {
		log.Err(err).Msg("error marking stale members inactive")
		return
	}

	if marked == 0 {
		return
	}

	log.Info().Int64("marked", marked).Time("cutoff", cutoff).Msg("stale members marked inactive")
	w.publisher.Publish(ctx, events.TopicMembers, "status-refresh", events.MemberStatusChanged{
		Status:    "inactive",
		Count:     marked,
		ChangedAt: time.Now(),
	})
}

// reconcileWorker periodically reports catalog entries whose provider-side
// objects are missing: rows written by an interrupted create, or creates
// whose payment link never materialised.
type reconcileWorker struct {
	productRepository store.ProductRepository
	spec              string
	logger            *logger.Logger
	cron              *cron.Cron
}

// NewReconcileWorker constructs the product reconciliation job.
func NewReconcileWorker(productRepository store.ProductRepository, cfg config.Workers, logger *logger.Logger) Worker {
	logger.Debug().Str("spec", cfg.ReconcileSpec).Msg("creating product reconcile worker")
	return &reconcileWorker{
		productRepository: productRepository,
		spec:              cfg.ReconcileSpec,
		logger:            logger,
		cron:              cron.New(),
	}
}

func (w *reconcileWorker) Run() {
	if _, err := w.cron.AddFunc(w.spec, w.reconcile); err != nil {
		w.logger.Err(err).Str("spec", w.spec).Msg("error scheduling reconcile job")
		return
	}
	w.cron.Start()
}

func (w *reconcileWorker) reconcile() {
	ctx := w.logger.WithContext(context.Background())
	log := logger.FromContext(ctx)

	unlinked, err := w.productRepository.ListUnlinked(ctx)
	if err != nil {
		log.Err(err).Msg("error listing unlinked products")
		return
	}

	for _, product := range unlinked {
		log.Warn().
			Str("id", product.ID).
			Str("gymID", product.GymID).
			Str("stripeProductID", product.StripeProductID).
			Str("stripePriceID", product.StripePriceID).
			Msg("product missing provider linkage")
	}
}
