package postgres

import (
	"context"
	"database/sql"
	"time"

	"taxibot-backend/internal/domain"
	"taxibot-backend/internal/repository"
)

type ratingRepository struct {
	db *sql.DB
}

func NewRatingRepository(db *sql.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// Create surfaces the unique constraint on (order_id, from_user_id, from_role)
// as repository.ErrDuplicate, the authoritative "one rating per rater per
// ride" guard.
func (r *ratingRepository) Create(ctx context.Context, rt *domain.Rating) error {
	query := `INSERT INTO ratings (order_id, from_user_id, from_role, to_user_id, to_role, score, comment, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, rt.OrderID, rt.FromUserID, rt.FromRole, rt.ToUserID, rt.ToRole, rt.Score, rt.Comment, time.Now()).Scan(&rt.ID)
	return translateErr(err)
}

// AverageFor scans the target's full rating history on every call. The
// recompute-from-history semantics are deliberate: the value is
// self-correcting rather than an incrementally drifting running average.
func (r *ratingRepository) AverageFor(ctx context.Context, toUserID int64, toRole domain.ParticipantRole) (float64, int32, error) {
	var avg sql.NullFloat64
	var count int32
	query := `SELECT AVG(score), COUNT(*) FROM ratings WHERE to_user_id = $1 AND to_role = $2`
	err := r.db.QueryRowContext(ctx, query, toUserID, toRole).Scan(&avg, &count)
	if err != nil {
		return 0, 0, translateErr(err)
	}
	if count == 0 || !avg.Valid {
		return domain.DefaultRating, 0, nil
	}
	return avg.Float64, count, nil
}

func (r *ratingRepository) RecentComments(ctx context.Context, toUserID int64, toRole domain.ParticipantRole, limit int32) ([]string, error) {
	query := `SELECT comment FROM ratings
	          WHERE to_user_id = $1 AND to_role = $2 AND comment <> ''
	          ORDER BY created_on DESC LIMIT $3`
	rows, err := r.db.QueryContext(ctx, query, toUserID, toRole, limit)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var comments []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
