package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and profile maintenance against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, UpdatedAt).
//
// The INSERT uses the [createUser] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Email, nullString(user.PasswordHash), nullString(user.GoogleID),
		user.Name, user.FirstName, user.LastName, user.Avatar, user.Provider)

	created, err := scanUser(row)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		case "":
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
			return models.User{}, err
		default:
			log.Err(err).Str("func", "*userRepository.CreateUser").
				Bool("retryable", r.db.retryable(err)).
				Msg("error: unexpected DB error")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByID retrieves the user record with the given identifier.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

// FindUserByEmail retrieves the user record whose email matches the given
// address. Callers are expected to lower-case the address before lookup; the
// repository stores emails in canonical lower-cased form.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByGoogleID retrieves the user record linked to the given Google
// subject identifier.
func (r *userRepository) FindUserByGoogleID(ctx context.Context, googleID string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByGoogleID", findUserByGoogleID, googleID)
}

// UpdateUser applies a partial profile update and returns the refreshed user
// record. The UPDATE statement is built dynamically from the non-nil fields
// of update.
//
// Error handling:
//   - Empty update → [ErrEmptyUpdate].
//   - No matching row → [ErrUserNotFound].
func (r *userRepository) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(userID, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", userID).Msg("failed to create query")
		return models.User{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateUser").
			Int64("user_id", userID).
			Bool("retryable", r.db.retryable(err)).
			Msg("error: failed to update user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// LinkGoogleAccount stores the Google subject identifier on an existing
// account and backfills the avatar when the account has none. Used when a
// locally created account signs in with Google for the first time after
// being matched by email.
func (r *userRepository) LinkGoogleAccount(ctx context.Context, userID int64, googleID, avatar string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, linkGoogleAccount, nullString(googleID), avatar, userID)

	linked, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.LinkGoogleAccount").
			Int64("user_id", userID).
			Bool("retryable", r.db.retryable(err)).
			Msg("error: failed to link google account")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return linked, nil
}

// TouchLastLogin refreshes the last_login timestamp after a successful
// sign-in. A missing account yields [ErrUserNotFound].
func (r *userRepository) TouchLastLogin(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, touchLastLogin, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.TouchLastLogin").
			Int64("user_id", userID).
			Bool("retryable", r.db.retryable(err)).
			Msg("error: failed to touch last login")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// DeleteUser removes the account record. Archive and feedback rows referencing
// the account are left in place; their tables carry no foreign key, and every
// archive read filters by user_id, so the orphans are unreachable.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").
			Int64("user_id", userID).
			Bool("retryable", r.db.retryable(err)).
			Msg("error: failed to delete user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, arg)

	found, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", funcName).
			Bool("retryable", r.db.retryable(err)).
			Msg("error: failed to find user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// scanUser scans the canonical user column set (see [userReturningColumns])
// from a single row. Nullable columns (password_hash, google_id, last_login)
// are folded into their zero values.
func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	var passwordHash, googleID sql.NullString
	var lastLogin sql.NullTime

	err := row.Scan(
		&user.UserID,
		&user.Email,
		&passwordHash,
		&googleID,
		&user.Name,
		&user.FirstName,
		&user.LastName,
		&user.Avatar,
		&user.Provider,
		&user.IsActive,
		&lastLogin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.PasswordHash = passwordHash.String
	user.GoogleID = googleID.String
	if lastLogin.Valid {
		user.LastLogin = &lastLogin.Time
	}

	return user, nil
}

// nullString maps an empty string to SQL NULL, keeping the partial unique
// indexes on password_hash and google_id meaningful.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
