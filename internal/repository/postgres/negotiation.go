package postgres

import (
	"context"
	"database/sql"
	"time"

	"taxibot-backend/internal/domain"
	"taxibot-backend/internal/repository"
)

type negotiationRepository struct {
	db *sql.DB
}

func NewNegotiationRepository(db *sql.DB) repository.NegotiationRepository {
	return &negotiationRepository{db: db}
}

func (r *negotiationRepository) Create(ctx context.Context, n *domain.PriceNegotiation) error {
	query := `INSERT INTO price_negotiations (order_id, from_user_id, from_role, to_user_id, to_role, price, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, n.OrderID, n.FromUserID, n.FromRole, n.ToUserID, n.ToRole, n.Price, n.Status, time.Now(), time.Now()).Scan(&n.ID)
	return translateErr(err)
}

func (r *negotiationRepository) GetByID(ctx context.Context, id int64) (*domain.PriceNegotiation, error) {
	n := &domain.PriceNegotiation{}
	query := `SELECT id, order_id, from_user_id, from_role, to_user_id, to_role, price, status, created_on, updated_on
	          FROM price_negotiations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&n.ID, &n.OrderID, &n.FromUserID, &n.FromRole, &n.ToUserID, &n.ToRole, &n.Price, &n.Status, &n.CreatedOn, &n.UpdatedOn)
	if err != nil {
		return nil, translateErr(err)
	}
	return n, nil
}

func (r *negotiationRepository) ListByOrder(ctx context.Context, orderID int64) ([]domain.PriceNegotiation, error) {
	query := `SELECT id, order_id, from_user_id, from_role, to_user_id, to_role, price, status, created_on, updated_on
	          FROM price_negotiations WHERE order_id = $1 ORDER BY created_on ASC`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var negs []domain.PriceNegotiation
	for rows.Next() {
		var n domain.PriceNegotiation
		if err := rows.Scan(&n.ID, &n.OrderID, &n.FromUserID, &n.FromRole, &n.ToUserID, &n.ToRole, &n.Price, &n.Status, &n.CreatedOn, &n.UpdatedOn); err != nil {
			return nil, err
		}
		negs = append(negs, n)
	}
	return negs, rows.Err()
}

// Resolve only touches pending rows; a resolved negotiation stays as it was.
func (r *negotiationRepository) Resolve(ctx context.Context, id int64, status domain.NegotiationStatus) (bool, error) {
	query := `UPDATE price_negotiations SET status=$1, updated_on=$2 WHERE id=$3 AND status=$4`
	res, err := r.db.ExecContext(ctx, query, status, time.Now(), id, domain.NegotiationStatusPending)
	if err != nil {
		return false, translateErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *negotiationRepository) RejectStale(ctx context.Context, olderThan time.Time) (int64, error) {
	query := `UPDATE price_negotiations SET status=$1, updated_on=$2 WHERE status=$3 AND created_on < $4`
	res, err := r.db.ExecContext(ctx, query, domain.NegotiationStatusRejected, time.Now(), domain.NegotiationStatusPending, olderThan)
	if err != nil {
		return 0, translateErr(err)
	}
	return res.RowsAffected()
}
