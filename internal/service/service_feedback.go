package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/internal/store"
	"github.com/molecule-insight/insight-server/models"
)

type feedbackService struct {
	feedbackRepository store.FeedbackRepository
	userRepository     store.UserRepository

	logger *logger.Logger
}

// NewFeedbackService constructs a FeedbackService. The user repository is
// needed because a submission snapshots the submitter's current profile, not
// the possibly stale values in the session cookie.
func NewFeedbackService(feedbackRepository store.FeedbackRepository, userRepository store.UserRepository, logger *logger.Logger) FeedbackService {
	return &feedbackService{
		feedbackRepository: feedbackRepository,
		userRepository:     userRepository,
		logger:             logger,
	}
}

// SubmitFeedback implements [FeedbackService].
func (s *feedbackService) SubmitFeedback(ctx context.Context, userID int64, feedback models.Feedback) (models.Feedback, error) {
	log := logger.FromContext(ctx)

	feedback.Comment = strings.TrimSpace(feedback.Comment)
	if feedback.Comment == "" {
		return models.Feedback{}, ErrInvalidDataProvided
	}
	if feedback.Rating < 1 || feedback.Rating > 5 {
		return models.Feedback{}, ErrInvalidRating
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup failed")
		return models.Feedback{}, fmt.Errorf("user lookup failed: %w", err)
	}

	feedback.UserID = user.UserID
	feedback.UserName = user.Name
	feedback.UserEmail = user.Email
	feedback.UserAvatar = user.Avatar
	if feedback.UserType == "" {
		feedback.UserType = "User"
	}
	if feedback.Country == "" {
		feedback.Country = "Unknown"
	}

	savedFeedback, err := s.feedbackRepository.SaveFeedback(ctx, feedback)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("feedback save failed")
		return models.Feedback{}, fmt.Errorf("feedback save failed: %w", err)
	}

	return savedFeedback, nil
}

// ListApprovedFeedbacks implements [FeedbackService].
func (s *feedbackService) ListApprovedFeedbacks(ctx context.Context) ([]models.Feedback, error) {
	log := logger.FromContext(ctx)

	feedbacks, err := s.feedbackRepository.GetApprovedFeedbacks(ctx)
	if err != nil {
		log.Err(err).Msg("feedback list failed")
		return nil, fmt.Errorf("feedback list failed: %w", err)
	}

	return feedbacks, nil
}
