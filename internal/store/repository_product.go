package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/models"
)

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository]. Provider linkage columns (stripe_product_id,
// stripe_price_id, payment_link_url) are written together with the local
// record; rows with empty linkage are picked up by the reconciliation
// worker via ListUnlinked.
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProduct,
		product.ID, product.GymID, product.Name, product.Description,
		product.Price, product.Currency, product.Type,
		product.IntervalUnit, product.IntervalCount,
		product.StripeProductID, product.StripePriceID, product.PaymentLinkURL,
		product.Active)

	saved, err := scanProduct(row)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error: scanning error")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

func (r *productRepository) ListProducts(ctx context.Context, gymID string) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listProducts, gymID)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *productRepository) SetActive(ctx context.Context, id, gymID string, active bool) error {
	res, err := r.db.ExecContext(ctx, setProductActive, id, gymID, active)
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// ListUnlinked returns products missing provider linkage across all gyms.
// Runs from the scheduled reconcile worker; a transient failure is retried
// once before the run is abandoned.
func (r *productRepository) ListUnlinked(ctx context.Context) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, listUnlinkedProducts)
	if err != nil && r.db.Classify(err) == Retryable {
		r.logger.Warn().Err(err).Str("func", "*productRepository.ListUnlinked").Msg("transient DB error, retrying statement")
		rows, err = r.db.QueryContext(ctx, listUnlinkedProducts)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func collectProducts(rows *sql.Rows) ([]models.Product, error) {
	products := make([]models.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}

func scanProduct(row rowScanner) (models.Product, error) {
	var (
		product      models.Product
		intervalUnit sql.NullString
		intervalCnt  sql.NullInt64
	)

	if err := row.Scan(&product.ID, &product.GymID, &product.Name, &product.Description,
		&product.Price, &product.Currency, &product.Type,
		&intervalUnit, &intervalCnt,
		&product.StripeProductID, &product.StripePriceID, &product.PaymentLinkURL,
		&product.Active, &product.CreatedAt); err != nil {
		return models.Product{}, err
	}

	product.IntervalUnit = intervalUnit.String
	product.IntervalCount = int(intervalCnt.Int64)

	return product, nil
}
