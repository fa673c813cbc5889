package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/internal/store"
	"github.com/molecule-insight/insight-server/internal/utils"
	"github.com/molecule-insight/insight-server/models"
)

// maxAvatarSize is the inclusive upper bound for uploaded avatar images.
const maxAvatarSize = 5 * 1024 * 1024

// avatarExtensions maps the allowed avatar MIME types to the file extension
// stored on disk.
var avatarExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

type profileService struct {
	userRepository store.UserRepository
	avatarStorage  store.AvatarFileStorage
	uuidGenerator  *utils.UUIDGenerator

	logger *logger.Logger
}

// NewProfileService constructs a ProfileService over the user repository and
// the avatar file store.
func NewProfileService(userRepository store.UserRepository, avatarStorage store.AvatarFileStorage, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		avatarStorage:  avatarStorage,
		uuidGenerator:  utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// UpdateName implements [ProfileService].
func (p *profileService) UpdateName(ctx context.Context, userID int64, name string) (models.User, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	updatedUser, err := p.userRepository.UpdateUser(ctx, userID, models.UserUpdate{Name: &name})
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("name update failed")
		return models.User{}, fmt.Errorf("name update failed: %w", err)
	}

	return updatedUser, nil
}

// UploadAvatar implements [ProfileService].
func (p *profileService) UploadAvatar(ctx context.Context, userID int64, contentType string, data []byte) (models.User, error) {
	log := logger.FromContext(ctx)

	if len(data) == 0 {
		return models.User{}, ErrInvalidDataProvided
	}

	ext, allowed := avatarExtensions[contentType]
	if !allowed {
		return models.User{}, ErrUnsupportedAvatarType
	}
	if len(data) > maxAvatarSize {
		return models.User{}, ErrAvatarTooLarge
	}

	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	p.deleteLocalAvatar(ctx, user)

	fileName := p.uuidGenerator.Generate() + ext
	publicPath, err := p.avatarStorage.Save(ctx, fileName, data)
	if err != nil {
		log.Err(err).Int64("id", userID).Str("file", fileName).Msg("avatar save failed")
		return models.User{}, fmt.Errorf("avatar save failed: %w", err)
	}

	updatedUser, err := p.userRepository.UpdateUser(ctx, userID, models.UserUpdate{Avatar: &publicPath})
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("avatar update failed")
		return models.User{}, fmt.Errorf("avatar update failed: %w", err)
	}

	return updatedUser, nil
}

// RemoveAvatar implements [ProfileService].
func (p *profileService) RemoveAvatar(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	p.deleteLocalAvatar(ctx, user)

	empty := ""
	updatedUser, err := p.userRepository.UpdateUser(ctx, userID, models.UserUpdate{Avatar: &empty})
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("avatar removal failed")
		return models.User{}, fmt.Errorf("avatar removal failed: %w", err)
	}

	return updatedUser, nil
}

// DeleteAccount implements [ProfileService].
func (p *profileService) DeleteAccount(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}

	p.deleteLocalAvatar(ctx, user)

	if err := p.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("account deletion failed")
		return fmt.Errorf("account deletion failed: %w", err)
	}

	return nil
}

// deleteLocalAvatar removes the user's avatar file from disk when it is one of
// ours. Failures are logged, never fatal: the profile mutation proceeds.
func (p *profileService) deleteLocalAvatar(ctx context.Context, user models.User) {
	if !user.HasLocalAvatar() {
		return
	}

	if err := p.avatarStorage.Delete(ctx, user.Avatar); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.UserID).Str("avatar", user.Avatar).Msg("old avatar delete failed")
	}
}
