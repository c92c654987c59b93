package postgres

import (
	"context"
	"database/sql"
	"time"

	"taxibot-backend/internal/domain"
	"taxibot-backend/internal/repository"
)

type documentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

// Upsert relies on the unique constraint on (driver_id, category): a
// resubmission supersedes the prior record in place instead of duplicating it,
// resetting it to pending and clearing any rejection reason.
func (r *documentRepository) Upsert(ctx context.Context, doc *domain.DriverDocument) error {
	query := `INSERT INTO driver_documents (driver_id, category, payload, status, rejection_reason, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, '', $5, $5)
	          ON CONFLICT (driver_id, category)
	          DO UPDATE SET payload = EXCLUDED.payload, status = $4, rejection_reason = '', updated_on = $5
	          RETURNING id, status, rejection_reason`
	err := r.db.QueryRowContext(ctx, query, doc.DriverID, doc.Category, doc.Payload, domain.DocumentStatusPending, time.Now()).
		Scan(&doc.ID, &doc.Status, &doc.RejectionReason)
	return translateErr(err)
}

func (r *documentRepository) GetByID(ctx context.Context, id int64) (*domain.DriverDocument, error) {
	d := &domain.DriverDocument{}
	query := `SELECT id, driver_id, category, payload, status, rejection_reason, created_on, updated_on
	          FROM driver_documents WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.DriverID, &d.Category, &d.Payload, &d.Status, &d.RejectionReason, &d.CreatedOn, &d.UpdatedOn)
	if err != nil {
		return nil, translateErr(err)
	}
	return d, nil
}

func (r *documentRepository) ListByDriver(ctx context.Context, driverID int64) ([]domain.DriverDocument, error) {
	query := `SELECT id, driver_id, category, payload, status, rejection_reason, created_on, updated_on
	          FROM driver_documents WHERE driver_id = $1 ORDER BY category`
	rows, err := r.db.QueryContext(ctx, query, driverID)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var docs []domain.DriverDocument
	for rows.Next() {
		var d domain.DriverDocument
		if err := rows.Scan(&d.ID, &d.DriverID, &d.Category, &d.Payload, &d.Status, &d.RejectionReason, &d.CreatedOn, &d.UpdatedOn); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (r *documentRepository) SetStatus(ctx context.Context, id int64, status domain.DocumentStatus, reason string) error {
	query := `UPDATE driver_documents SET status=$1, rejection_reason=$2, updated_on=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, status, reason, time.Now(), id)
	if err != nil {
		return translateErr(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// RefreshDriverVerified recomputes the stored aggregate flag in a single
// statement so it can never drift from the document statuses, then returns
// the stored value. True iff every required category has an approved
// document; a later rejection of a previously approved document flips it
// back to false.
func (r *documentRepository) RefreshDriverVerified(ctx context.Context, driverID int64) (bool, error) {
	query := `UPDATE drivers SET verified = (
	              SELECT count(DISTINCT category) = 2
	              FROM driver_documents
	              WHERE driver_id = $1
	                AND category IN ('license', 'vehicle_registration')
	                AND status = 'approved'
	          ), updated_on = $2
	          WHERE id = $1
	          RETURNING verified`
	var verified bool
	err := r.db.QueryRowContext(ctx, query, driverID, time.Now()).Scan(&verified)
	if err != nil {
		return false, translateErr(err)
	}
	return verified, nil
}
