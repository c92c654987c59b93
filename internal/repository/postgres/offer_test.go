package postgres_test

import (
	"context"
	"testing"

	"taxibot-backend/internal/domain"
	"taxibot-backend/internal/repository"
	"taxibot-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestOfferRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewOfferRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		o := &domain.DriverOffer{OrderID: 5, DriverID: 11, Price: 550, Status: domain.OfferStatusPending, Note: "5 min away"}

		mock.ExpectQuery("INSERT INTO driver_offers").
			WithArgs(o.OrderID, o.DriverID, o.Price, o.Status, o.Note, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(22))

		err := repo.Create(ctx, o)
		assert.NoError(t, err)
		assert.Equal(t, int64(22), o.ID)
	})

	t.Run("DuplicateDriverOffer", func(t *testing.T) {
		o := &domain.DriverOffer{OrderID: 5, DriverID: 11, Price: 500, Status: domain.OfferStatusPending}

		mock.ExpectQuery("INSERT INTO driver_offers").
			WithArgs(o.OrderID, o.DriverID, o.Price, o.Status, o.Note, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "driver_offers_order_id_driver_id_key"})

		err := repo.Create(ctx, o)
		assert.ErrorIs(t, err, repository.ErrDuplicate)
	})
}

func TestOfferRepository_ExistsForDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewOfferRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(5), int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsForDriver(ctx, 5, 11)
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestOfferRepository_ListByOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewOfferRepository(db)
	ctx := context.Background()

	cols := []string{"id", "order_id", "driver_id", "price", "status", "note", "created_on", "updated_on", "name", "rating"}
	rows := sqlmock.NewRows(cols).
		AddRow(23, 5, 12, 600, "pending", "", "2026-08-01", "2026-08-01", "Carl", 4.9).
		AddRow(22, 5, 11, 550, "pending", "5 min away", "2026-08-01", "2026-08-01", nil, nil)
	mock.ExpectQuery("SELECT (.+) FROM driver_offers f").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	offers, err := repo.ListByOrder(ctx, 5)
	assert.NoError(t, err)
	assert.Len(t, offers, 2)
	assert.Equal(t, "Carl", offers[0].DriverName)
	assert.Equal(t, "Unknown", offers[1].DriverName)
	assert.Equal(t, domain.DefaultRating, offers[1].DriverRating)
}

func TestOfferRepository_SetStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewOfferRepository(db)
	ctx := context.Background()

	t.Run("Updates", func(t *testing.T) {
		mock.ExpectExec("UPDATE driver_offers SET status").
			WithArgs(domain.OfferStatusAccepted, sqlmock.AnyArg(), int64(22)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetStatus(ctx, 22, domain.OfferStatusAccepted)
		assert.NoError(t, err)
	})

	t.Run("MissingOffer", func(t *testing.T) {
		mock.ExpectExec("UPDATE driver_offers SET status").
			WithArgs(domain.OfferStatusAccepted, sqlmock.AnyArg(), int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetStatus(ctx, 404, domain.OfferStatusAccepted)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
