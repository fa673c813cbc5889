package store

import (
	"context"

	"github.com/molecule-insight/insight-server/internal/config"
	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/migrations"
)

// Storages aggregates every persistence backend the service layer depends on.
type Storages struct {
	UserRepository     UserRepository
	ArchiveRepository  ArchiveRepository
	FeedbackRepository FeedbackRepository
	AvatarFileStorage  AvatarFileStorage
}

// NewStorages connects to Postgres, applies pending migrations and builds all
// repositories plus the avatar file store.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return Storages{}, err
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return Storages{}, err
	}

	avatarStorage, err := NewAvatarFileStorage(cfg.Files.AvatarDir, logger)
	if err != nil {
		return Storages{}, err
	}

	return Storages{
		UserRepository:     NewUserRepository(db, logger),
		ArchiveRepository:  NewArchiveRepository(db, logger),
		FeedbackRepository: NewFeedbackRepository(db, logger),
		AvatarFileStorage:  avatarStorage,
	}, nil
}
