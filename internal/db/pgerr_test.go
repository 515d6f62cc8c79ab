package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgCode(t *testing.T) {
	wrapped := fmt.Errorf("insert user: %w", &pgconn.PgError{Code: "23505"})

	assert.Equal(t, "23505", PgCode(wrapped))
	assert.True(t, IsUniqueViolation(wrapped))

	assert.Equal(t, "", PgCode(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
}
