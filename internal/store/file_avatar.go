package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/molecule-insight/insight-server/internal/logger"
)

// avatarPublicPrefix is the URL path prefix under which saved avatars are
// served by the HTTP layer.
const avatarPublicPrefix = "/uploads/avatars/"

// avatarFileStorage is the local-filesystem implementation of
// [AvatarFileStorage]. Uploaded images live in a single flat directory;
// the public path handed back to callers maps one-to-one onto file names
// inside it.
type avatarFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewAvatarFileStorage constructs an [AvatarFileStorage] rooted at dir,
// creating the directory when it does not exist yet.
func NewAvatarFileStorage(dir string, logger *logger.Logger) (AvatarFileStorage, error) {
	if dir == "" {
		return nil, errors.New("avatar storage dir is empty")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Err(err).Str("func", "NewAvatarFileStorage").Str("dir", dir).Msg("failed to create avatar directory")
		return nil, fmt.Errorf("error creating avatar directory: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("creating avatar file storage")
	return &avatarFileStorage{
		dir:    dir,
		logger: logger,
	}, nil
}

// Save writes the image bytes under fileName and returns the public path
// the avatar is served from.
func (s *avatarFileStorage) Save(ctx context.Context, fileName string, data []byte) (string, error) {
	log := logger.FromContext(ctx)

	if fileName == "" || strings.Contains(fileName, "/") || strings.Contains(fileName, "..") {
		return "", fmt.Errorf("invalid avatar file name: %q", fileName)
	}
	if len(data) == 0 {
		return "", errors.New("empty avatar data")
	}

	fullPath := filepath.Join(s.dir, fileName)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		log.Err(err).
			Str("func", "avatarFileStorage.Save").
			Str("file", fileName).
			Msg("failed to write avatar file")
		return "", fmt.Errorf("error writing avatar file: %w", err)
	}

	return avatarPublicPrefix + fileName, nil
}

// Delete removes the file behind a previously returned public path. Paths
// outside the avatar prefix (remote URLs, empty values) are ignored, and a
// file already gone is not an error.
func (s *avatarFileStorage) Delete(ctx context.Context, publicPath string) error {
	log := logger.FromContext(ctx)

	fileName, ok := strings.CutPrefix(publicPath, avatarPublicPrefix)
	if !ok || fileName == "" || strings.Contains(fileName, "/") || strings.Contains(fileName, "..") {
		return nil
	}

	fullPath := filepath.Join(s.dir, fileName)
	if err := os.Remove(fullPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Err(err).
			Str("func", "avatarFileStorage.Delete").
			Str("file", fileName).
			Msg("failed to remove avatar file")
		return fmt.Errorf("error removing avatar file: %w", err)
	}

	return nil
}

// Dir returns the directory avatars are stored in, used by the HTTP layer to
// serve the files.
func (s *avatarFileStorage) Dir() string {
	return s.dir
}
