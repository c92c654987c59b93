package postgres

import (
	"context"
	"database/sql"
	"time"

	"taxibot-backend/internal/domain"
	"taxibot-backend/internal/repository"
)

type passengerRepository struct {
	db *sql.DB
}

func NewPassengerRepository(db *sql.DB) repository.PassengerRepository {
	return &passengerRepository{db: db}
}

func (r *passengerRepository) Create(ctx context.Context, p *domain.Passenger) error {
	query := `INSERT INTO passengers (handle, name, phone, rating, total_rides, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, p.Handle, p.Name, p.Phone, p.Rating, p.TotalRides, time.Now(), time.Now()).Scan(&p.ID)
	return translateErr(err)
}

func (r *passengerRepository) GetByHandle(ctx context.Context, handle string) (*domain.Passenger, error) {
	p := &domain.Passenger{}
	query := `SELECT id, handle, name, phone, rating, total_rides, created_on, updated_on FROM passengers WHERE handle = $1`
	err := r.db.QueryRowContext(ctx, query, handle).Scan(&p.ID, &p.Handle, &p.Name, &p.Phone, &p.Rating, &p.TotalRides, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, translateErr(err)
	}
	return p, nil
}

func (r *passengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	p := &domain.Passenger{}
	query := `SELECT id, handle, name, phone, rating, total_rides, created_on, updated_on FROM passengers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Handle, &p.Name, &p.Phone, &p.Rating, &p.TotalRides, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, translateErr(err)
	}
	return p, nil
}

func (r *passengerRepository) UpdateRating(ctx context.Context, id int64, rating float64, totalRides int32) error {
	query := `UPDATE passengers SET rating=$1, total_rides=$2, updated_on=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, rating, totalRides, time.Now(), id)
	return translateErr(err)
}
