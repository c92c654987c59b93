package postgres

import (
	"context"
	"database/sql"
	"time"

	"taxibot-backend/internal/domain"
	"taxibot-backend/internal/repository"
)

type offerRepository struct {
	db *sql.DB
}

func NewOfferRepository(db *sql.DB) repository.OfferRepository {
	return &offerRepository{db: db}
}

// Create surfaces the unique constraint on (order_id, driver_id) as
// repository.ErrDuplicate. The constraint, not the application pre-check, is
// what keeps two concurrent offers from the same driver out of the table.
func (r *offerRepository) Create(ctx context.Context, o *domain.DriverOffer) error {
	query := `INSERT INTO driver_offers (order_id, driver_id, price, status, note, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, o.OrderID, o.DriverID, o.Price, o.Status, o.Note, time.Now(), time.Now()).Scan(&o.ID)
	return translateErr(err)
}

func (r *offerRepository) GetByID(ctx context.Context, id int64) (*domain.DriverOffer, error) {
	o := &domain.DriverOffer{}
	query := `SELECT id, order_id, driver_id, price, status, note, created_on, updated_on FROM driver_offers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.OrderID, &o.DriverID, &o.Price, &o.Status, &o.Note, &o.CreatedOn, &o.UpdatedOn)
	if err != nil {
		return nil, translateErr(err)
	}
	return o, nil
}

func (r *offerRepository) ListByOrder(ctx context.Context, orderID int64) ([]domain.OfferSummary, error) {
	query := `SELECT f.id, f.order_id, f.driver_id, f.price, f.status, f.note, f.created_on, f.updated_on,
	                 d.name, d.rating
	          FROM driver_offers f
	          LEFT JOIN drivers d ON d.id = f.driver_id
	          WHERE f.order_id = $1
	          ORDER BY f.created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var offers []domain.OfferSummary
	for rows.Next() {
		var s domain.OfferSummary
		var name sql.NullString
		var rating sql.NullFloat64
		if err := rows.Scan(&s.ID, &s.OrderID, &s.DriverID, &s.Price, &s.Status, &s.Note, &s.CreatedOn, &s.UpdatedOn, &name, &rating); err != nil {
			return nil, err
		}
		s.DriverName = "Unknown"
		if name.Valid {
			s.DriverName = name.String
		}
		s.DriverRating = domain.DefaultRating
		if rating.Valid {
			s.DriverRating = rating.Float64
		}
		offers = append(offers, s)
	}
	return offers, rows.Err()
}

func (r *offerRepository) ExistsForDriver(ctx context.Context, orderID, driverID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM driver_offers WHERE order_id = $1 AND driver_id = $2)`
	err := r.db.QueryRowContext(ctx, query, orderID, driverID).Scan(&exists)
	if err != nil {
		return false, translateErr(err)
	}
	return exists, nil
}

func (r *offerRepository) SetStatus(ctx context.Context, id int64, status domain.OfferStatus) error {
	query := `UPDATE driver_offers SET status=$1, updated_on=$2 WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return translateErr(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
