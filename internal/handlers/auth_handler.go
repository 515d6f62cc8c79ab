package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/ojt-tracker/internal/config"
	"github.com/BruksfildServices01/ojt-tracker/internal/httperr"
	"github.com/BruksfildServices01/ojt-tracker/internal/httpresp"
	"github.com/BruksfildServices01/ojt-tracker/internal/middleware"
	ucAuth "github.com/BruksfildServices01/ojt-tracker/internal/usecase/auth"
)

const (
	stateCookie = "oauth_state"
	stateTTL    = 10 * time.Minute
)

type AuthHandler struct {
	provider ucAuth.Provider
	signInUC *ucAuth.CompleteSignIn
	signOut  *ucAuth.SignOut
	config   *config.Config
	logger   *zap.Logger
}

func NewAuthHandler(
	provider ucAuth.Provider,
	signInUC *ucAuth.CompleteSignIn,
	signOut *ucAuth.SignOut,
	cfg *config.Config,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		provider: provider,
		signInUC: signInUC,
		signOut:  signOut,
		config:   cfg,
		logger:   logger,
	}
}

// --------- Google ---------

func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	state := uuid.NewString()

	h.setCookie(c, stateCookie, state, stateTTL)
	c.Redirect(http.StatusFound, h.provider.AuthCodeURL(state))
}

func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	expected, err := c.Cookie(stateCookie)
	if err != nil || expected == "" || expected != c.Query("state") {
		httperr.BadRequest(c, httperr.CodeInvalidState, "Sign-in state mismatch, start again.")
		return
	}
	h.setCookie(c, stateCookie, "", -1)

	code := c.Query("code")
	if code == "" {
		httperr.BadRequest(c, httperr.CodeMissingCode, "Authorization code is missing.")
		return
	}

	token, u, err := h.signInUC.Execute(c.Request.Context(), code)
	if httperr.IsBusiness(err, ucAuth.CodeSignInFailed) {
		h.logger.Warn("google sign-in failed", zap.Error(err))
		httperr.Write(c, http.StatusUnauthorized, ucAuth.CodeSignInFailed, "Google sign-in failed.")
		return
	}
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	h.logger.Info("signed in", zap.String("user_id", u.ID))

	h.setCookie(c, middleware.SessionCookie, token, h.config.SessionTTL)
	c.Redirect(http.StatusFound, h.config.AppURL)
}

// --------- Session ---------

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.signOut.Execute(c.Request.Context(), middleware.TokenFrom(c)); err != nil {
		fail(c, h.logger, err)
		return
	}

	h.setCookie(c, middleware.SessionCookie, "", -1)
	httpresp.NoContent(c)
}

// setCookie writes an HttpOnly, SameSite=Lax cookie. A negative ttl
// deletes it.
func (h *AuthHandler) setCookie(c *gin.Context, name, value string, ttl time.Duration) {
	maxAge := -1
	if ttl > 0 {
		maxAge = int(ttl.Seconds())
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", h.config.CookieSecure, true)
}
