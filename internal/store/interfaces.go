package store

import (
	"context"

	"github.com/molecule-insight/insight-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts and profile data.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByGoogleID(ctx context.Context, googleID string) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	LinkGoogleAccount(ctx context.Context, userID int64, googleID, avatar string) (models.User, error)
	TouchLastLogin(ctx context.Context, userID int64) error
	DeleteUser(ctx context.Context, userID int64) error
}

// ArchiveRepository persists saved analysis reports. Every read and delete is
// scoped by the owning user so a foreign archive identifier behaves as if it
// did not exist.
type ArchiveRepository interface {
	SaveArchive(ctx context.Context, archive models.Archive) (models.Archive, error)
	GetArchives(ctx context.Context, userID int64) ([]models.Archive, error)
	GetArchiveByID(ctx context.Context, userID, archiveID int64) (models.Archive, error)
	DeleteArchive(ctx context.Context, userID, archiveID int64) error
}

// FeedbackRepository persists user testimonials for the public feedback board.
type FeedbackRepository interface {
	SaveFeedback(ctx context.Context, feedback models.Feedback) (models.Feedback, error)
	GetApprovedFeedbacks(ctx context.Context) ([]models.Feedback, error)
}

// AvatarFileStorage stores uploaded avatar images on disk and removes them
// when replaced or when the owning account is deleted.
type AvatarFileStorage interface {
	Save(ctx context.Context, fileName string, data []byte) (string, error)
	Delete(ctx context.Context, publicPath string) error
	Dir() string
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
