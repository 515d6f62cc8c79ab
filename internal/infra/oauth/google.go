package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/BruksfildServices01/ojt-tracker/internal/domain/user"
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
)

var googleScopes = []string{"openid", "email", "profile"}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string

	// Endpoint overrides, empty means Google's.
	AuthURL     string
	TokenURL    string
	UserInfoURL string
}

// GoogleProvider runs the authorization-code flow against Google and
// reads the signed-in user's OpenID profile.
type GoogleProvider struct {
	cfg         *oauth2.Config
	userInfoURL string
}

func NewGoogleProvider(c GoogleConfig) *GoogleProvider {
	return &GoogleProvider{
		cfg: &oauth2.Config{
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			RedirectURL:  c.RedirectURL,
			Scopes:       googleScopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   orDefault(c.AuthURL, googleAuthURL),
				TokenURL:  orDefault(c.TokenURL, googleTokenURL),
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		userInfoURL: orDefault(c.UserInfoURL, googleUserInfoURL),
	}
}

func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.cfg.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
}

type userInfo struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Exchange trades an authorization code for a token and fetches the
// profile it grants access to.
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (user.Profile, error) {
	tok, err := p.cfg.Exchange(ctx, code)
	if err != nil {
		return user.Profile{}, fmt.Errorf("exchanging code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return user.Profile{}, err
	}

	resp, err := p.cfg.Client(ctx, tok).Do(req)
	if err != nil {
		return user.Profile{}, fmt.Errorf("fetching userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return user.Profile{}, fmt.Errorf("fetching userinfo: unexpected status %d", resp.StatusCode)
	}

	var info userInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return user.Profile{}, fmt.Errorf("decoding userinfo: %w", err)
	}
	if info.Sub == "" {
		return user.Profile{}, fmt.Errorf("userinfo: missing subject")
	}

	return user.Profile{
		Subject: info.Sub,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
