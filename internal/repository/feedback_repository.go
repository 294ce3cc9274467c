package repository

import (
	"context"
	"fmt"

	"career-compass/internal/domain"
	"career-compass/internal/repository/models"
	"career-compass/internal/util"
)

// sqlxFeedbackRepository implements domain.FeedbackRepository using sqlx.
type sqlxFeedbackRepository struct {
	db DBTX
}

// NewFeedbackRepository creates a feedback repository over db.
func NewFeedbackRepository(db DBTX) domain.FeedbackRepository {
	return &sqlxFeedbackRepository{db: db}
}

func (r *sqlxFeedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	query := `INSERT INTO feedback (id, name, message, rating, created_at)
	          VALUES (:id, :name, :message, :rating, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, fromDomainFeedback(feedback)); err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

func (r *sqlxFeedbackRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM feedback`); err != nil {
		return 0, fmt.Errorf("failed to count feedback: %w", err)
	}
	return count, nil
}

// List returns every feedback record, newest first.
func (r *sqlxFeedbackRepository) List(ctx context.Context) ([]*domain.Feedback, error) {
	var rows []*models.Feedback
	query := `SELECT id, name, message, rating, created_at FROM feedback ORDER BY created_at DESC, id DESC`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	out := make([]*domain.Feedback, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainFeedback(m))
	}
	return out, nil
}

func fromDomainFeedback(f *domain.Feedback) *models.Feedback {
	if f == nil {
		return nil
	}
	return &models.Feedback{
		ID:        f.ID,
		Name:      f.Name,
		Message:   f.Message,
		Rating:    util.IntToNullInt64(f.Rating),
		CreatedAt: f.CreatedAt,
	}
}

func toDomainFeedback(m *models.Feedback) *domain.Feedback {
	if m == nil {
		return nil
	}
	f := &domain.Feedback{
		ID:        m.ID,
		Name:      m.Name,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
	if m.Rating.Valid {
		f.Rating = int(m.Rating.Int64)
	}
	return f
}
