package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-budget-stats/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	id := uuid.New()
	err := repo.Save(ctx, models.UserDB{UserID: id, Username: "alice", Email: "alice@example.com", PasswordHash: "hash123"})
	assert.NoError(t, err)

	var user struct {
		UserID       uuid.UUID `db:"user_id"`
		Username     string    `db:"username"`
		Email        string    `db:"email"`
		PasswordHash string    `db:"password_hash"`
	}
	err = db.Get(&user, "SELECT user_id, username, email, password_hash FROM users WHERE username=$1", "alice")
	require.NoError(t, err)
	assert.Equal(t, id, user.UserID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hash123", user.PasswordHash)

	// Duplicate username violates the unique constraint
	err = repo.Save(ctx, models.UserDB{UserID: uuid.New(), Username: "alice", Email: "other@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, models.ErrUserAlreadyExists)
}

func TestUserWriteRepository_Save_Mock(t *testing.T) {
	user := models.UserDB{UserID: uuid.New(), Username: "bob", Email: "bob@example.com", PasswordHash: "hash"}

	t.Run("unique violation", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO users").
			WithArgs(sqlmock.AnyArg(), "bob", "bob@example.com", "hash").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		err := NewUserWriteRepository(db).Save(context.Background(), user)
		assert.ErrorIs(t, err, models.ErrUserAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other postgres error", func(t *testing.T) {
		db, mock := newMockDB(t)
		pgErr := &pgconn.PgError{Code: "57014"}
		mock.ExpectExec("INSERT INTO users").
			WithArgs(sqlmock.AnyArg(), "bob", "bob@example.com", "hash").
			WillReturnError(pgErr)

		err := NewUserWriteRepository(db).Save(context.Background(), user)
		assert.False(t, errors.Is(err, models.ErrUserAlreadyExists))
		assert.ErrorAs(t, err, &pgErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserReadRepository_GetByUsernameOrEmail(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	require.NoError(t, writeRepo.Save(ctx, models.UserDB{UserID: uuid.New(), Username: "charlie", Email: "charlie@example.com", PasswordHash: "secret"}))
	require.NoError(t, writeRepo.Save(ctx, models.UserDB{UserID: uuid.New(), Username: "dave", Email: "dave@example.com", PasswordHash: "secret2"}))

	t.Run("ByUsername", func(t *testing.T) {
		username := "charlie"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "charlie", user.Username)
		assert.Equal(t, "secret", user.PasswordHash)
	})

	t.Run("ByEmail", func(t *testing.T) {
		email := "dave@example.com"
		user, err := readRepo.GetByUsernameOrEmail(ctx, nil, &email)
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "dave", user.Username)
	})

	t.Run("UsernameTakenWithNewEmail", func(t *testing.T) {
		username := "charlie"
		email := "fresh@example.com"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, &email)
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "charlie", user.Username)
	})

	t.Run("NotFound", func(t *testing.T) {
		username := "nonexistent"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
