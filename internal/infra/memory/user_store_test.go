package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/ojt-tracker/internal/domain/user"
)

func TestUserStore_UpsertIsStablePerSubject(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	first, err := s.UpsertByGoogleSubject(ctx, user.Profile{Subject: "g-1", Email: "a@x.io"})
	require.NoError(t, err)

	second, err := s.UpsertByGoogleSubject(ctx, user.Profile{Subject: "g-1", Email: "b@x.io", Name: "B"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "b@x.io", second.Email)

	other, _ := s.UpsertByGoogleSubject(ctx, user.Profile{Subject: "g-2"})
	assert.NotEqual(t, first.ID, other.ID)

	got, err := s.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "B", got.Name)

	_, err = s.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, user.ErrNotFound)
}
