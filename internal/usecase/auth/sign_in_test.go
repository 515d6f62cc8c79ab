package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/ojt-tracker/internal/domain/user"
	"github.com/BruksfildServices01/ojt-tracker/internal/httperr"
	"github.com/BruksfildServices01/ojt-tracker/internal/infra/memory"
	"github.com/BruksfildServices01/ojt-tracker/internal/session"
)

type stubProvider struct {
	profile user.Profile
	err     error
}

func (p stubProvider) AuthCodeURL(state string) string { return "https://idp.test/auth?state=" + state }

func (p stubProvider) Exchange(context.Context, string) (user.Profile, error) {
	return p.profile, p.err
}

func TestCompleteSignIn(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserStore()
	sessions := session.NewManager(session.NewMemoryStore(), "secret", time.Hour)

	uc := NewCompleteSignIn(stubProvider{profile: user.Profile{Subject: "g-1", Email: "a@x.io"}}, users, sessions)

	token, u, err := uc.Execute(ctx, "code")
	require.NoError(t, err)
	assert.Equal(t, "a@x.io", u.Email)

	id, err := sessions.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id.UserID)

	_, again, err := uc.Execute(ctx, "code")
	require.NoError(t, err)
	assert.Equal(t, u.ID, again.ID)

	require.NoError(t, NewSignOut(sessions).Execute(ctx, token))
	_, err = sessions.Resolve(ctx, token)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestCompleteSignIn_ExchangeFailure(t *testing.T) {
	sessions := session.NewManager(session.NewMemoryStore(), "secret", time.Hour)
	uc := NewCompleteSignIn(stubProvider{err: errors.New("invalid_grant")}, memory.NewUserStore(), sessions)

	_, _, err := uc.Execute(context.Background(), "bad")
	assert.True(t, httperr.IsBusiness(err, CodeSignInFailed))
}
