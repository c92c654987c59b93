package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"taxibot-backend/internal/domain"
	"taxibot-backend/internal/repository"

	"github.com/lib/pq"
)

type orderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, o *domain.Order) error {
	query := `INSERT INTO orders (passenger_id, from_address, to_address, suggested_price, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, o.PassengerID, o.FromAddress, o.ToAddress, o.SuggestedPrice, o.Status, time.Now(), time.Now()).Scan(&o.ID)
	return translateErr(err)
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	o := &domain.Order{}
	query := `SELECT id, passenger_id, from_address, to_address, suggested_price, final_price, status, accepted_driver_id, created_on, updated_on
	          FROM orders WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.PassengerID, &o.FromAddress, &o.ToAddress, &o.SuggestedPrice,
		&o.FinalPrice, &o.Status, &o.AcceptedDriverID, &o.CreatedOn, &o.UpdatedOn)
	if err != nil {
		return nil, translateErr(err)
	}
	return o, nil
}

// ListAvailable left-joins the passenger so a missing profile row degrades to
// the "Unknown" / default-rating fallback instead of failing the listing.
func (r *orderRepository) ListAvailable(ctx context.Context) ([]domain.OrderSummary, error) {
	query := `SELECT o.id, o.passenger_id, o.from_address, o.to_address, o.suggested_price, o.final_price, o.status, o.accepted_driver_id, o.created_on, o.updated_on,
	                 p.name, p.rating
	          FROM orders o
	          LEFT JOIN passengers p ON p.id = o.passenger_id
	          WHERE o.status = $1
	          ORDER BY o.created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, domain.OrderStatusPending)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var orders []domain.OrderSummary
	for rows.Next() {
		var s domain.OrderSummary
		var name sql.NullString
		var rating sql.NullFloat64
		if err := rows.Scan(&s.ID, &s.PassengerID, &s.FromAddress, &s.ToAddress, &s.SuggestedPrice, &s.FinalPrice,
			&s.Status, &s.AcceptedDriverID, &s.CreatedOn, &s.UpdatedOn, &name, &rating); err != nil {
			return nil, err
		}
		s.PassengerName = "Unknown"
		if name.Valid {
			s.PassengerName = name.String
		}
		s.PassengerRating = domain.DefaultRating
		if rating.Valid {
			s.PassengerRating = rating.Float64
		}
		orders = append(orders, s)
	}
	return orders, rows.Err()
}

// AcceptPending is the guard against double-booking: the conditional WHERE
// means only one of two racing acceptances can move the order out of its
// open states.
func (r *orderRepository) AcceptPending(ctx context.Context, orderID, driverID, finalPrice int64) (bool, error) {
	query := `UPDATE orders SET status=$1, accepted_driver_id=$2, final_price=$3, updated_on=$4
	          WHERE id=$5 AND status = ANY($6)`
	open := []string{string(domain.OrderStatusPending), string(domain.OrderStatusNegotiating)}
	res, err := r.db.ExecContext(ctx, query, domain.OrderStatusAccepted, driverID, finalPrice, time.Now(), orderID, pq.Array(open))
	if err != nil {
		return false, translateErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *orderRepository) TransitionStatus(ctx context.Context, orderID int64, from []domain.OrderStatus, to domain.OrderStatus) (bool, error) {
	if len(from) == 0 {
		return false, fmt.Errorf("transition to %s requires at least one source status", to)
	}
	statuses := make([]string, len(from))
	for i, s := range from {
		statuses[i] = string(s)
	}
	query := `UPDATE orders SET status=$1, updated_on=$2 WHERE id=$3 AND status = ANY($4)`
	res, err := r.db.ExecContext(ctx, query, to, time.Now(), orderID, pq.Array(statuses))
	if err != nil {
		return false, translateErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *orderRepository) CancelStale(ctx context.Context, olderThan time.Time) (int64, error) {
	query := `UPDATE orders SET status=$1, updated_on=$2 WHERE status=$3 AND created_on < $4`
	res, err := r.db.ExecContext(ctx, query, domain.OrderStatusCancelled, time.Now(), domain.OrderStatusPending, olderThan)
	if err != nil {
		return 0, translateErr(err)
	}
	return res.RowsAffected()
}
