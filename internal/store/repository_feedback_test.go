package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFeedbackRepo(t *testing.T) (FeedbackRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := NewFeedbackRepository(&DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()}, l)
	return repo, mock, db
}

func TestSaveFeedback_Success(t *testing.T) {
	repo, mock, db := newTestFeedbackRepo(t)
	defer db.Close()

	feedback := models.Feedback{
		UserID:    42,
		UserName:  "Jane Doe",
		UserEmail: "jane@example.com",
		UserType:  "Researcher",
		Country:   "Germany",
		Comment:   "Saved me a week of literature review.",
		Rating:    5,
	}

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"feedback_id", "is_approved", "created_at", "updated_at"}).
		AddRow(3, true, now, now)

	mock.ExpectQuery("INSERT INTO feedbacks").
		WithArgs(feedback.UserID, feedback.UserName, feedback.UserEmail, feedback.UserAvatar, feedback.UserType, feedback.Country, feedback.Comment, feedback.Rating).
		WillReturnRows(rows)

	saved, err := repo.SaveFeedback(context.Background(), feedback)
	require.NoError(t, err)
	assert.Equal(t, int64(3), saved.FeedbackID)
	assert.True(t, saved.IsApproved)
	assert.Equal(t, feedback.Comment, saved.Comment)
}

func TestSaveFeedback_DBError(t *testing.T) {
	repo, mock, db := newTestFeedbackRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO feedbacks").
		WillReturnError(errors.New("constraint violated"))

	_, err := repo.SaveFeedback(context.Background(), models.Feedback{UserID: 42})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestGetApprovedFeedbacks_Success(t *testing.T) {
	repo, mock, db := newTestFeedbackRepo(t)
	defer db.Close()

	newer := time.Now()
	older := newer.Add(-time.Hour)

	rows := sqlmock.
		NewRows([]string{"feedback_id", "user_id", "user_name", "user_email", "user_avatar", "user_type", "country", "feedback", "rating", "is_approved", "created_at", "updated_at"}).
		AddRow(2, 42, "Jane Doe", "jane@example.com", "", "Researcher", "Germany", "Great tool.", 5, true, newer, newer).
		AddRow(1, 7, "John Roe", "john@example.com", "/uploads/avatars/x.png", "User", "Unknown", "Decent.", 4, true, older, older)

	mock.ExpectQuery("SELECT feedback_id").
		WillReturnRows(rows)

	feedbacks, err := repo.GetApprovedFeedbacks(context.Background())
	require.NoError(t, err)
	require.Len(t, feedbacks, 2)
	assert.Equal(t, int64(2), feedbacks[0].FeedbackID)
	assert.Equal(t, "John Roe", feedbacks[1].UserName)
}

func TestGetApprovedFeedbacks_Empty(t *testing.T) {
	repo, mock, db := newTestFeedbackRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"feedback_id", "user_id", "user_name", "user_email", "user_avatar", "user_type", "country", "feedback", "rating", "is_approved", "created_at", "updated_at"})

	mock.ExpectQuery("SELECT feedback_id").
		WillReturnRows(rows)

	feedbacks, err := repo.GetApprovedFeedbacks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, feedbacks)
	assert.NotNil(t, feedbacks, "expected empty slice, not nil")
}

func TestGetApprovedFeedbacks_QueryError(t *testing.T) {
	repo, mock, db := newTestFeedbackRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT feedback_id").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetApprovedFeedbacks(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetApprovedFeedbacks_ScanError(t *testing.T) {
	repo, mock, db := newTestFeedbackRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"feedback_id"}).AddRow(1) // wrong shape

	mock.ExpectQuery("SELECT feedback_id").
		WillReturnRows(rows)

	_, err := repo.GetApprovedFeedbacks(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScanningRow)
}
