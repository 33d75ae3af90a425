package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jb131997/gymdesk/models"
)

const (
	createProfile = `INSERT INTO profiles (id, email, password_hash, full_name, gym_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, password_hash, full_name, gym_name, stripe_account_id, created_at;`

	findProfileByEmail = `SELECT id, email, password_hash, full_name, gym_name, stripe_account_id, created_at
		FROM profiles
		WHERE email = $1;`

	findProfileByID = `SELECT id, email, password_hash, full_name, gym_name, stripe_account_id, created_at
		FROM profiles
		WHERE id = $1;`

	setProfileStripeAccount = `UPDATE profiles
		SET stripe_account_id = $2
		WHERE id = $1;`

	createMember = `INSERT INTO members (
			id,
			gym_id,
			name,
			email,
			phone,
			status,
			plan,
			join_date,
			street,
			city,
			state,
			zip_code
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, gym_id, name, email, phone, status, plan, join_date, last_visit,
			street, city, state, zip_code, created_at;`

	getMember = `SELECT id, gym_id, name, email, phone, status, plan, join_date, last_visit,
			street, city, state, zip_code, created_at
		FROM members
		WHERE id = $1 AND gym_id = $2;`

	deleteMember = `DELETE FROM members
		WHERE id = $1 AND gym_id = $2;`

	markStaleMembersInactive = `UPDATE members
		SET status = 'inactive'
		WHERE status = 'active'
		  AND last_visit IS NOT NULL
		  AND last_visit < $1;`

	createNote = `INSERT INTO member_notes (member_id, gym_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, member_id, gym_id, content, created_at;`

	listNotes = `SELECT id, member_id, gym_id, content, created_at
		FROM member_notes
		WHERE member_id = $1 AND gym_id = $2
		ORDER BY created_at DESC;`

	deleteNote = `DELETE FROM member_notes
		WHERE id = $1 AND gym_id = $2;`

	createActivity = `INSERT INTO member_activities (member_id, gym_id, type, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, member_id, gym_id, type, description, created_at;`

	listActivities = `SELECT id, member_id, gym_id, type, description, created_at
		FROM member_activities
		WHERE member_id = $1 AND gym_id = $2
		ORDER BY created_at DESC;`

	touchMemberLastVisit = `UPDATE members
		SET last_visit = NOW()
		WHERE id = $1 AND gym_id = $2;`

	createProduct = `INSERT INTO products (
			id,
			gym_id,
			name,
			description,
			price,
			currency,
			type,
			interval_unit,
			interval_count,
			stripe_product_id,
			stripe_price_id,
			payment_link_url,
			active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, gym_id, name, description, price, currency, type,
			interval_unit, interval_count, stripe_product_id, stripe_price_id,
			payment_link_url, active, created_at;`

	listProducts = `SELECT id, gym_id, name, description, price, currency, type,
			interval_unit, interval_count, stripe_product_id, stripe_price_id,
			payment_link_url, active, created_at
		FROM products
		WHERE gym_id = $1
		ORDER BY created_at DESC;`

	setProductActive = `UPDATE products
		SET active = $3
		WHERE id = $1 AND gym_id = $2;`

	listUnlinkedProducts = `SELECT id, gym_id, name, description, price, currency, type,
			interval_unit, interval_count, stripe_product_id, stripe_price_id,
			payment_link_url, active, created_at
		FROM products
		WHERE stripe_product_id = '' OR stripe_price_id = ''
		ORDER BY created_at;`

	getDashboardConfig = `SELECT gym_id, today_metrics, overview_metrics, removed_metrics
		FROM dashboard_config
		WHERE gym_id = $1;`

	upsertDashboardConfig = `INSERT INTO dashboard_config (gym_id, today_metrics, overview_metrics, removed_metrics)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (gym_id) DO UPDATE SET
			today_metrics    = EXCLUDED.today_metrics,
			overview_metrics = EXCLUDED.overview_metrics,
			removed_metrics  = EXCLUDED.removed_metrics,
			updated_at       = NOW();`

	// gymMetrics is the get_gym_metrics aggregate: counts and revenue for
	// one gym over [start, end).
	gymMetrics = `SELECT
			(SELECT COUNT(*) FROM members
				WHERE gym_id = $1 AND join_date >= $2 AND join_date < $3)    AS new_members,
			(SELECT COUNT(*) FROM members
				WHERE gym_id = $1 AND status = 'active')                     AS active_members,
			(SELECT COUNT(*) FROM member_activities
				WHERE gym_id = $1 AND type = 'check_in'
				  AND created_at >= $2 AND created_at < $3)                  AS check_ins,
			(SELECT COALESCE(SUM(p.price), 0) FROM member_activities a
				JOIN products p ON p.id::text = a.description
				WHERE a.gym_id = $1 AND a.type = 'payment'
				  AND a.created_at >= $2 AND a.created_at < $3)              AS revenue;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// MemberFilter narrows a member listing. Zero values mean "no filter".
type MemberFilter struct {
	Status string
	Search string
}

// buildListMembersQuery assembles the owner-scoped member listing with
// optional status and name/email search filters.
func buildListMembersQuery(gymID string, filter MemberFilter) (string, []any, error) {
	builder := psql.
		Select("id", "gym_id", "name", "email", "phone", "status", "plan",
			"join_date", "last_visit", "street", "city", "state", "zip_code", "created_at").
		From(models.Member{}.TableName()).
		Where(sq.Eq{"gym_id": gymID}).
		OrderBy("name")

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"email": pattern},
		})
	}

	return builder.ToSql()
}

// buildUpdateMemberQuery assembles a partial UPDATE from the non-nil fields
// of update. Returns ErrNothingToUpdate when every field is nil.
func buildUpdateMemberQuery(update models.MemberUpdate) (string, []any, error) {
	if update.Empty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := psql.Update(models.Member{}.TableName())

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Phone != nil {
		builder = builder.Set("phone", *update.Phone)
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.Plan != nil {
		builder = builder.Set("plan", *update.Plan)
	}
	if update.LastVisit != nil {
		builder = builder.Set("last_visit", *update.LastVisit)
	}
	if update.Street != nil {
		builder = builder.Set("street", *update.Street)
	}
	if update.City != nil {
		builder = builder.Set("city", *update.City)
	}
	if update.State != nil {
		builder = builder.Set("state", *update.State)
	}
	if update.ZipCode != nil {
		builder = builder.Set("zip_code", *update.ZipCode)
	}

	builder = builder.
		Where(sq.Eq{"id": update.ID, "gym_id": update.GymID}).
		Suffix(`RETURNING id, gym_id, name, email, phone, status, plan, join_date, last_visit,
			street, city, state, zip_code, created_at`)

	return builder.ToSql()
}
