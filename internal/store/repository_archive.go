package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/models"
)

// archiveRepository is the PostgreSQL-backed implementation of
// [ArchiveRepository]. It executes all saved-report operations directly
// against the "archives" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (user_id, archive_id, etc.).
type archiveRepository struct {
	*DB
	logger *logger.Logger
}

// NewArchiveRepository constructs an [ArchiveRepository] backed by the
// provided database connection and logger.
func NewArchiveRepository(db *DB, logger *logger.Logger) ArchiveRepository {
	logger.Debug().Msg("creating archive repository")
	return &archiveRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveArchive persists a new archive entry and returns it with the
// server-assigned ArchiveID and CreatedAt.
func (p *archiveRepository) SaveArchive(ctx context.Context, archive models.Archive) (models.Archive, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, saveArchive,
		archive.UserID, archive.ReportName, archive.Molecule,
		archive.Query, archive.Region, archive.PDFData, archive.Results)

	if err := row.Scan(&archive.ArchiveID, &archive.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "archiveRepository.SaveArchive").
			Int64("user_id", archive.UserID).
			Bool("retryable", p.retryable(err)).
			Msg("failed to save archive entry")
		return models.Archive{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return archive, nil
}

// GetArchives retrieves the archive entries owned by the given user, newest
// first. The heavy PDFData and Results fields are left empty; the list view
// only needs metadata.
//
// Returns an empty slice when the user has no entries.
func (p *archiveRepository) GetArchives(ctx context.Context, userID int64) ([]models.Archive, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectArchivesQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "archiveRepository.GetArchives").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "archiveRepository.GetArchives").
			Int64("user_id", userID).
			Bool("retryable", p.retryable(err)).
			Msg("failed to execute query for listing archives")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Archive, 0, 20)

	for rows.Next() {
		var item models.Archive

		scanErr := rows.Scan(
			&item.ArchiveID,
			&item.UserID,
			&item.ReportName,
			&item.Molecule,
			&item.Query,
			&item.Region,
			&item.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "archiveRepository.GetArchives").
				Int64("user_id", userID).
				Msg("failed to scan archive row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "archiveRepository.GetArchives").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// GetArchiveByID retrieves one archive entry with its full payload (PDF and
// structured results). The query filters by both archive_id and user_id, so
// an entry owned by another user yields [ErrArchiveNotFound].
func (p *archiveRepository) GetArchiveByID(ctx context.Context, userID, archiveID int64) (models.Archive, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectArchiveByIDQuery(userID, archiveID)
	if err != nil {
		log.Err(err).
			Str("func", "archiveRepository.GetArchiveByID").
			Int64("user_id", userID).
			Int64("archive_id", archiveID).
			Msg("failed to create query")
		return models.Archive{}, err
	}

	var item models.Archive
	row := p.DB.QueryRowContext(ctx, query, args...)

	scanErr := row.Scan(
		&item.ArchiveID,
		&item.UserID,
		&item.ReportName,
		&item.Molecule,
		&item.Query,
		&item.Region,
		&item.PDFData,
		&item.Results,
		&item.CreatedAt,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Archive{}, ErrArchiveNotFound
		}
		log.Err(scanErr).
			Str("func", "archiveRepository.GetArchiveByID").
			Int64("user_id", userID).
			Int64("archive_id", archiveID).
			Bool("retryable", p.retryable(scanErr)).
			Msg("failed to scan archive row")
		return models.Archive{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return item, nil
}

// DeleteArchive removes one archive entry, scoped to the owning user. A
// foreign or missing identifier yields [ErrArchiveNotFound].
func (p *archiveRepository) DeleteArchive(ctx context.Context, userID, archiveID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteArchiveQuery(userID, archiveID)
	if err != nil {
		log.Err(err).
			Str("func", "archiveRepository.DeleteArchive").
			Int64("user_id", userID).
			Int64("archive_id", archiveID).
			Msg("failed to create query")
		return err
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "archiveRepository.DeleteArchive").
			Int64("user_id", userID).
			Int64("archive_id", archiveID).
			Bool("retryable", p.retryable(err)).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrArchiveNotFound
	}

	return nil
}
