package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/ojt-tracker/internal/domain/user"
)

var userColumns = []string{
	"id", "google_subject", "email", "name", "avatar_url", "created_at", "updated_at",
}

func TestUserGorm_UpsertCreatesUnknownSubject(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewUserGormRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE google_subject = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns))
	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	u, err := repo.UpsertByGoogleSubject(context.Background(), user.Profile{
		Subject: "g-123", Email: "ana@example.com", Name: "Ana",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "g-123", u.GoogleSubject)
	assert.Equal(t, "ana@example.com", u.Email)
}

func TestUserGorm_UpsertRefreshesKnownSubject(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewUserGormRepository(gdb)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE google_subject = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("user-1", "g-123", "old@example.com", "Ana", "", now, now))
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	u, err := repo.UpsertByGoogleSubject(context.Background(), user.Profile{
		Subject: "g-123", Email: "new@example.com", Name: "Ana B",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)
	assert.Equal(t, "new@example.com", u.Email)
	assert.Equal(t, "Ana B", u.Name)
}

func TestUserGorm_UpsertRecoversFromConcurrentInsert(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewUserGormRepository(gdb)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE google_subject = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns))
	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE google_subject = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("user-9", "g-123", "ana@example.com", "Ana", "", now, now))

	u, err := repo.UpsertByGoogleSubject(context.Background(), user.Profile{Subject: "g-123"})
	require.NoError(t, err)
	assert.Equal(t, "user-9", u.ID)
}

func TestUserGorm_GetByIDNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewUserGormRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, user.ErrNotFound)
}
