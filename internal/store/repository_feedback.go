package store

import (
	"context"
	"fmt"

	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/models"
)

// feedbackRepository is the PostgreSQL-backed implementation of
// [FeedbackRepository] over the "feedbacks" table.
type feedbackRepository struct {
	*DB
	logger *logger.Logger
}

// NewFeedbackRepository constructs a [FeedbackRepository] backed by the
// provided database connection and logger.
func NewFeedbackRepository(db *DB, logger *logger.Logger) FeedbackRepository {
	logger.Debug().Msg("creating feedback repository")
	return &feedbackRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveFeedback persists a new feedback entry and returns it with the
// server-assigned fields (FeedbackID, IsApproved, timestamps).
func (p *feedbackRepository) SaveFeedback(ctx context.Context, feedback models.Feedback) (models.Feedback, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, saveFeedback,
		feedback.UserID, feedback.UserName, feedback.UserEmail, feedback.UserAvatar,
		feedback.UserType, feedback.Country, feedback.Comment, feedback.Rating)

	if err := row.Scan(&feedback.FeedbackID, &feedback.IsApproved, &feedback.CreatedAt, &feedback.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "feedbackRepository.SaveFeedback").
			Int64("user_id", feedback.UserID).
			Bool("retryable", p.retryable(err)).
			Msg("failed to save feedback entry")
		return models.Feedback{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return feedback, nil
}

// GetApprovedFeedbacks retrieves every approved feedback entry, newest first.
//
// Returns an empty slice when the board is empty.
func (p *feedbackRepository) GetApprovedFeedbacks(ctx context.Context) ([]models.Feedback, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFeedbacksQuery()
	if err != nil {
		log.Err(err).
			Str("func", "feedbackRepository.GetApprovedFeedbacks").
			Msg("failed to create query")
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "feedbackRepository.GetApprovedFeedbacks").
			Bool("retryable", p.retryable(err)).
			Msg("failed to execute query for listing feedbacks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Feedback, 0, 20)

	for rows.Next() {
		var item models.Feedback

		scanErr := rows.Scan(
			&item.FeedbackID,
			&item.UserID,
			&item.UserName,
			&item.UserEmail,
			&item.UserAvatar,
			&item.UserType,
			&item.Country,
			&item.Comment,
			&item.Rating,
			&item.IsApproved,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "feedbackRepository.GetApprovedFeedbacks").
				Msg("failed to scan feedback row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "feedbackRepository.GetApprovedFeedbacks").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
