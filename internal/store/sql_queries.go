package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/molecule-insight/insight-server/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash, google_id, name, first_name, last_name, avatar, provider)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING user_id, email, password_hash, google_id, name, first_name, last_name, avatar, provider, is_active, last_login, created_at, updated_at;`

	findUserByID = `SELECT user_id, email, password_hash, google_id, name, first_name, last_name, avatar, provider, is_active, last_login, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	findUserByEmail = `SELECT user_id, email, password_hash, google_id, name, first_name, last_name, avatar, provider, is_active, last_login, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByGoogleID = `SELECT user_id, email, password_hash, google_id, name, first_name, last_name, avatar, provider, is_active, last_login, created_at, updated_at
    FROM users
    WHERE google_id = $1;`

	linkGoogleAccount = `UPDATE users
    SET google_id = $1,
        avatar = CASE WHEN avatar = '' THEN $2 ELSE avatar END,
        updated_at = NOW()
    WHERE user_id = $3
    RETURNING user_id, email, password_hash, google_id, name, first_name, last_name, avatar, provider, is_active, last_login, created_at, updated_at;`

	touchLastLogin = `UPDATE users
    SET last_login = NOW(), updated_at = NOW()
    WHERE user_id = $1;`

	deleteUser = `DELETE FROM users
    WHERE user_id = $1;`

	saveArchive = `INSERT INTO archives (user_id, report_name, molecule, query, region, pdf_data, results)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING archive_id, created_at;`

	saveFeedback = `INSERT INTO feedbacks (user_id, user_name, user_email, user_avatar, user_type, country, feedback, rating)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING feedback_id, is_approved, created_at, updated_at;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userReturningColumns is the canonical column set every user-returning query
// scans in the same order.
var userReturningColumns = []string{
	"user_id", "email", "password_hash", "google_id", "name",
	"first_name", "last_name", "avatar", "provider", "is_active",
	"last_login", "created_at", "updated_at",
}

// buildUpdateUserQuery dynamically builds the UPDATE statement for a partial
// profile update. Only non-nil fields of update produce SET clauses; the
// statement always refreshes updated_at and returns the full user row.
//
// Returns [ErrEmptyUpdate] when update carries no changes.
func buildUpdateUserQuery(userID int64, update models.UserUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrEmptyUpdate
	}

	builder := psql.Update("users").Set("updated_at", sq.Expr("NOW()"))

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.FirstName != nil {
		builder = builder.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		builder = builder.Set("last_name", *update.LastName)
	}
	if update.Avatar != nil {
		builder = builder.Set("avatar", *update.Avatar)
	}

	query, args, err := builder.
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + strings.Join(userReturningColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectArchivesQuery builds the archive list query for one user. The
// heavy pdf_data and results columns are deliberately not selected; the list
// view only needs the metadata. Newest entries come first.
func buildSelectArchivesQuery(userID int64) (string, []any, error) {
	query, args, err := psql.
		Select("archive_id", "user_id", "report_name", "molecule", "query", "region", "created_at").
		From("archives").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectArchiveByIDQuery builds the single-archive query. Filtering by
// both archive_id and user_id makes another user's entry indistinguishable
// from a missing one.
func buildSelectArchiveByIDQuery(userID, archiveID int64) (string, []any, error) {
	query, args, err := psql.
		Select("archive_id", "user_id", "report_name", "molecule", "query", "region", "pdf_data", "results", "created_at").
		From("archives").
		Where(sq.Eq{"archive_id": archiveID, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteArchiveQuery builds the archive delete statement, scoped to the
// owning user like every archive read.
func buildDeleteArchiveQuery(userID, archiveID int64) (string, []any, error) {
	query, args, err := psql.
		Delete("archives").
		Where(sq.Eq{"archive_id": archiveID, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectFeedbacksQuery builds the public feedback board query: approved
// entries only, newest first, capped at the 50 most recent.
func buildSelectFeedbacksQuery() (string, []any, error) {
	query, args, err := psql.
		Select("feedback_id", "user_id", "user_name", "user_email", "user_avatar", "user_type", "country", "feedback", "rating", "is_approved", "created_at", "updated_at").
		From("feedbacks").
		Where(sq.Eq{"is_approved": true}).
		OrderBy("created_at DESC").
		Limit(50).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
