package postgres

import (
	"context"
	"database/sql"
	"time"

	"taxibot-backend/internal/domain"
	"taxibot-backend/internal/repository"
)

type driverRepository struct {
	db *sql.DB
}

func NewDriverRepository(db *sql.DB) repository.DriverRepository {
	return &driverRepository{db: db}
}

func (r *driverRepository) Create(ctx context.Context, d *domain.Driver) error {
	query := `INSERT INTO drivers (handle, name, phone, rating, total_rides, online, verified, vehicle_model, vehicle_color, vehicle_plate, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, d.Handle, d.Name, d.Phone, d.Rating, d.TotalRides, d.Online, d.Verified,
		d.Vehicle.Model, d.Vehicle.Color, d.Vehicle.Plate, time.Now(), time.Now()).Scan(&d.ID)
	return translateErr(err)
}

func (r *driverRepository) GetByHandle(ctx context.Context, handle string) (*domain.Driver, error) {
	query := `SELECT id, handle, name, phone, rating, total_rides, online, verified, vehicle_model, vehicle_color, vehicle_plate, created_on, updated_on
	          FROM drivers WHERE handle = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, handle))
}

func (r *driverRepository) GetByID(ctx context.Context, id int64) (*domain.Driver, error) {
	query := `SELECT id, handle, name, phone, rating, total_rides, online, verified, vehicle_model, vehicle_color, vehicle_plate, created_on, updated_on
	          FROM drivers WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *driverRepository) scanOne(row *sql.Row) (*domain.Driver, error) {
	d := &domain.Driver{}
	err := row.Scan(&d.ID, &d.Handle, &d.Name, &d.Phone, &d.Rating, &d.TotalRides, &d.Online, &d.Verified,
		&d.Vehicle.Model, &d.Vehicle.Color, &d.Vehicle.Plate, &d.CreatedOn, &d.UpdatedOn)
	if err != nil {
		return nil, translateErr(err)
	}
	return d, nil
}

func (r *driverRepository) SetOnline(ctx context.Context, id int64, online bool) error {
	query := `UPDATE drivers SET online=$1, updated_on=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, online, time.Now(), id)
	return translateErr(err)
}

func (r *driverRepository) UpdateRating(ctx context.Context, id int64, rating float64, totalRides int32) error {
	query := `UPDATE drivers SET rating=$1, total_rides=$2, updated_on=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, rating, totalRides, time.Now(), id)
	return translateErr(err)
}
