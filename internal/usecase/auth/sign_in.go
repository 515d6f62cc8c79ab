package auth

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/ojt-tracker/internal/domain/user"
	"github.com/BruksfildServices01/ojt-tracker/internal/httperr"
	"github.com/BruksfildServices01/ojt-tracker/internal/models"
	"github.com/BruksfildServices01/ojt-tracker/internal/session"
)

const CodeSignInFailed = "sign_in_failed"

// Provider turns an authorization code into the caller's profile.
type Provider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (user.Profile, error)
}

type CompleteSignIn struct {
	provider Provider
	users    user.Repository
	sessions *session.Manager
}

func NewCompleteSignIn(
	provider Provider,
	users user.Repository,
	sessions *session.Manager,
) *CompleteSignIn {
	return &CompleteSignIn{
		provider: provider,
		users:    users,
		sessions: sessions,
	}
}

// Execute finishes the OAuth round trip: it exchanges code, links the
// profile to a local user and opens a session for it.
func (uc *CompleteSignIn) Execute(
	ctx context.Context,
	code string,
) (string, *models.User, error) {

	profile, err := uc.provider.Exchange(ctx, code)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", httperr.ErrBusiness(CodeSignInFailed), err)
	}

	u, err := uc.users.UpsertByGoogleSubject(ctx, profile)
	if err != nil {
		return "", nil, err
	}

	token, _, err := uc.sessions.Issue(ctx, u.ID)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

type SignOut struct {
	sessions *session.Manager
}

func NewSignOut(sessions *session.Manager) *SignOut {
	return &SignOut{sessions: sessions}
}

func (uc *SignOut) Execute(ctx context.Context, token string) error {
	return uc.sessions.Revoke(ctx, token)
}
