package postgres_test

import (
	"context"
	"testing"
	"time"

	"taxibot-backend/internal/domain"
	"taxibot-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestNegotiationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewNegotiationRepository(db)
	ctx := context.Background()

	n := &domain.PriceNegotiation{
		OrderID:    5,
		FromUserID: 7,
		FromRole:   domain.RolePassenger,
		ToUserID:   11,
		ToRole:     domain.RoleDriver,
		Price:      450,
		Status:     domain.NegotiationStatusPending,
	}

	mock.ExpectQuery("INSERT INTO price_negotiations").
		WithArgs(n.OrderID, n.FromUserID, n.FromRole, n.ToUserID, n.ToRole, n.Price, n.Status, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(31))

	err = repo.Create(ctx, n)
	assert.NoError(t, err)
	assert.Equal(t, int64(31), n.ID)
}

func TestNegotiationRepository_Resolve(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewNegotiationRepository(db)
	ctx := context.Background()

	t.Run("PendingIsResolved", func(t *testing.T) {
		mock.ExpectExec("UPDATE price_negotiations SET status").
			WithArgs(domain.NegotiationStatusAccepted, sqlmock.AnyArg(), int64(31), domain.NegotiationStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		resolved, err := repo.Resolve(ctx, 31, domain.NegotiationStatusAccepted)
		assert.NoError(t, err)
		assert.True(t, resolved)
	})

	t.Run("ResolvedRowsAreImmutable", func(t *testing.T) {
		mock.ExpectExec("UPDATE price_negotiations SET status").
			WithArgs(domain.NegotiationStatusRejected, sqlmock.AnyArg(), int64(31), domain.NegotiationStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 0))

		resolved, err := repo.Resolve(ctx, 31, domain.NegotiationStatusRejected)
		assert.NoError(t, err)
		assert.False(t, resolved)
	})
}

func TestNegotiationRepository_ListByOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewNegotiationRepository(db)
	ctx := context.Background()

	cols := []string{"id", "order_id", "from_user_id", "from_role", "to_user_id", "to_role", "price", "status", "created_on", "updated_on"}
	rows := sqlmock.NewRows(cols).
		AddRow(31, 5, 7, "passenger", 11, "driver", 450, "pending", "2026-08-01", "2026-08-01").
		AddRow(32, 5, 11, "driver", 7, "passenger", 470, "pending", "2026-08-01", "2026-08-01")
	mock.ExpectQuery("SELECT (.+) FROM price_negotiations WHERE order_id").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	negs, err := repo.ListByOrder(ctx, 5)
	assert.NoError(t, err)
	assert.Len(t, negs, 2)
	// The chain reads oldest first, each entry reversing direction.
	assert.Equal(t, domain.RolePassenger, negs[0].FromRole)
	assert.Equal(t, domain.RoleDriver, negs[1].FromRole)
}

func TestNegotiationRepository_RejectStale(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewNegotiationRepository(db)
	ctx := context.Background()

	cutoff := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec("UPDATE price_negotiations SET status").
		WithArgs(domain.NegotiationStatusRejected, sqlmock.AnyArg(), domain.NegotiationStatusPending, cutoff).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.RejectStale(ctx, cutoff)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
