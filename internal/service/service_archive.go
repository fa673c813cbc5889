package service

import (
	"context"
	"fmt"

	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/internal/store"
	"github.com/molecule-insight/insight-server/models"
)

type archiveService struct {
	archiveRepository store.ArchiveRepository

	logger *logger.Logger
}

// NewArchiveService constructs an ArchiveService over the archive repository.
func NewArchiveService(archiveRepository store.ArchiveRepository, logger *logger.Logger) ArchiveService {
	return &archiveService{
		archiveRepository: archiveRepository,
		logger:            logger,
	}
}

// SaveArchive implements [ArchiveService].
func (s *archiveService) SaveArchive(ctx context.Context, userID int64, archive models.Archive) (models.Archive, error) {
	log := logger.FromContext(ctx)

	if archive.ReportName == "" || archive.Molecule == "" || archive.Region == "" ||
		archive.PDFData == "" || len(archive.Results) == 0 {
		return models.Archive{}, ErrInvalidDataProvided
	}

	archive.UserID = userID

	savedArchive, err := s.archiveRepository.SaveArchive(ctx, archive)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("report", archive.ReportName).Msg("archive save failed")
		return models.Archive{}, fmt.Errorf("archive save failed: %w", err)
	}

	return savedArchive, nil
}

// ListArchives implements [ArchiveService].
func (s *archiveService) ListArchives(ctx context.Context, userID int64) ([]models.ArchiveSummary, error) {
	log := logger.FromContext(ctx)

	archives, err := s.archiveRepository.GetArchives(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("archive list failed")
		return nil, fmt.Errorf("archive list failed: %w", err)
	}

	summaries := make([]models.ArchiveSummary, 0, len(archives))
	for _, archive := range archives {
		summaries = append(summaries, models.ArchiveSummary{
			ID:         archive.ArchiveID,
			ReportName: archive.ReportName,
			Molecule:   archive.Molecule,
			Region:     archive.Region,
			Date:       models.FormatArchiveDate(archive.CreatedAt),
			Timestamp:  archive.CreatedAt,
		})
	}

	return summaries, nil
}

// GetArchive implements [ArchiveService].
func (s *archiveService) GetArchive(ctx context.Context, userID, archiveID int64) (models.Archive, error) {
	log := logger.FromContext(ctx)

	archive, err := s.archiveRepository.GetArchiveByID(ctx, userID, archiveID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("archive_id", archiveID).Msg("archive fetch failed")
		return models.Archive{}, fmt.Errorf("archive fetch failed: %w", err)
	}

	return archive, nil
}

// DeleteArchive implements [ArchiveService].
func (s *archiveService) DeleteArchive(ctx context.Context, userID, archiveID int64) error {
	log := logger.FromContext(ctx)

	if err := s.archiveRepository.DeleteArchive(ctx, userID, archiveID); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("archive_id", archiveID).Msg("archive delete failed")
		return fmt.Errorf("archive delete failed: %w", err)
	}

	return nil
}
