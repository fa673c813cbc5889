package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/models"
)

var userColumns = []string{
	"user_id", "email", "password_hash", "google_id", "name",
	"first_name", "last_name", "avatar", "provider", "is_active",
	"last_login", "created_at", "updated_at",
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRow(userID int64, email string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.
		NewRows(userColumns).
		AddRow(userID, email, "hash", nil, "Jane Doe", "Jane", "Doe", "", models.ProviderLocal, true, nil, now, now)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Email:        "jane@example.com",
		PasswordHash: "hash",
		Name:         "Jane Doe",
		FirstName:    "Jane",
		LastName:     "Doe",
		Provider:     models.ProviderLocal,
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Email, nullString("hash"), nullString(""), user.Name, user.FirstName, user.LastName, "", models.ProviderLocal).
		WillReturnRows(userRow(1, user.Email))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "jane@example.com"}

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "jane@example.com"}

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.CreateUser(ctx, user)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "jane@example.com"}

	rows := sqlmock.
		NewRows([]string{"user_id"}). // intentionally wrong shape → scan error
		AddRow(1)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(rows)

	_, err := repo.CreateUser(ctx, user)
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("jane@example.com").
		WillReturnRows(userRow(1, "jane@example.com"))

	found, err := repo.FindUserByEmail(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email != "jane@example.com" {
		t.Errorf("expected email jane@example.com, got %s", found.Email)
	}
	if found.PasswordHash != "hash" {
		t.Errorf("expected password hash to be scanned, got %q", found.PasswordHash)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("jane@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(ctx, "jane@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByEmail_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("jane@example.com").
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindUserByEmail(ctx, "jane@example.com")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByGoogleID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.
		NewRows(userColumns).
		AddRow(2, "jane@example.com", nil, "google-sub-123", "Jane Doe", "", "", "https://lh3.example.com/pic", models.ProviderGoogle, true, now, now, now)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("google-sub-123").
		WillReturnRows(rows)

	found, err := repo.FindUserByGoogleID(ctx, "google-sub-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.GoogleID != "google-sub-123" {
		t.Errorf("expected google id google-sub-123, got %s", found.GoogleID)
	}
	if found.PasswordHash != "" {
		t.Errorf("expected empty password hash for NULL column, got %q", found.PasswordHash)
	}
	if found.LastLogin == nil {
		t.Error("expected LastLogin to be scanned from non-NULL column")
	}
}

func TestUpdateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	name := "New Name"

	mock.ExpectQuery("UPDATE users").
		WillReturnRows(userRow(1, "jane@example.com"))

	updated, err := repo.UpdateUser(ctx, 1, models.UserUpdate{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", updated.UserID)
	}
}

func TestUpdateUser_EmptyUpdate(t *testing.T) {
	repo, _, db := newTestUserRepo(t)
	defer db.Close()

	_, err := repo.UpdateUser(context.Background(), 1, models.UserUpdate{})
	if !errors.Is(err, ErrEmptyUpdate) {
		t.Fatalf("expected ErrEmptyUpdate, got %v", err)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	name := "New Name"

	mock.ExpectQuery("UPDATE users").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateUser(context.Background(), 99, models.UserUpdate{Name: &name})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLinkGoogleAccount_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.
		NewRows(userColumns).
		AddRow(1, "jane@example.com", "hash", "google-sub-123", "Jane Doe", "Jane", "Doe", "https://lh3.example.com/pic", models.ProviderLocal, true, nil, now, now)

	mock.ExpectQuery("UPDATE users").
		WithArgs(nullString("google-sub-123"), "https://lh3.example.com/pic", int64(1)).
		WillReturnRows(rows)

	linked, err := repo.LinkGoogleAccount(ctx, 1, "google-sub-123", "https://lh3.example.com/pic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if linked.GoogleID != "google-sub-123" {
		t.Errorf("expected linked google id, got %q", linked.GoogleID)
	}
}

func TestTouchLastLogin_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.TouchLastLogin(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTouchLastLogin_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.TouchLastLogin(context.Background(), 99)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteUser(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteUser(context.Background(), 99)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
