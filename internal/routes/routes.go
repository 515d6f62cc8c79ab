package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/ojt-tracker/internal/config"
	domainEntry "github.com/BruksfildServices01/ojt-tracker/internal/domain/entry"
	"github.com/BruksfildServices01/ojt-tracker/internal/domain/user"
	"github.com/BruksfildServices01/ojt-tracker/internal/handlers"
	"github.com/BruksfildServices01/ojt-tracker/internal/middleware"
	"github.com/BruksfildServices01/ojt-tracker/internal/session"
	ucAuth "github.com/BruksfildServices01/ojt-tracker/internal/usecase/auth"
	ucEntry "github.com/BruksfildServices01/ojt-tracker/internal/usecase/entry"
)

// Dependencies are the infrastructure singletons the API is built on.
type Dependencies struct {
	Config   *config.Config
	Logger   *zap.Logger
	Entries  domainEntry.Repository
	Users    user.Repository
	Sessions *session.Manager
	Provider ucAuth.Provider
}

// NewRouter returns an engine with the global middleware, the health
// check and every API route.
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.RequestLogger(deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.CORSMiddleware(deps.Config.AppURL),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterRoutes(r, deps)
	return r
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	cfg := deps.Config

	// ======================================================
	// USE CASES
	// ======================================================
	listEntriesUC := ucEntry.NewListEntries(deps.Entries)
	getEntryUC := ucEntry.NewGetEntry(deps.Entries)
	createEntryUC := ucEntry.NewCreateEntry(deps.Entries)
	updateEntryUC := ucEntry.NewUpdateEntry(deps.Entries)
	deleteEntryUC := ucEntry.NewDeleteEntry(deps.Entries)

	progressUC := ucEntry.NewGetProgress(deps.Entries, cfg.DefaultRequiredHours)
	getSettingsUC := ucEntry.NewGetSettings(deps.Entries, cfg.DefaultRequiredHours)
	updateSettingsUC := ucEntry.NewUpdateSettings(deps.Entries)

	signInUC := ucAuth.NewCompleteSignIn(deps.Provider, deps.Users, deps.Sessions)
	signOutUC := ucAuth.NewSignOut(deps.Sessions)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(deps.Provider, signInUC, signOutUC, cfg, deps.Logger)
	meHandler := handlers.NewMeHandler(deps.Users, deps.Logger)

	entryHandler := handlers.NewEntryHandler(
		listEntriesUC,
		getEntryUC,
		createEntryUC,
		updateEntryUC,
		deleteEntryUC,
		deps.Logger,
	)

	progressHandler := handlers.NewProgressHandler(
		progressUC,
		getSettingsUC,
		updateSettingsUC,
		deps.Logger,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.GET("/auth/google/login", authHandler.GoogleLogin)
		api.GET("/auth/google/callback", authHandler.GoogleCallback)

		// ------------------------------
		// SESSION REQUIRED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(deps.Sessions, deps.Logger))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/progress", progressHandler.Progress)
			secured.GET("/me/settings", progressHandler.GetSettings)
			secured.PUT("/me/settings", progressHandler.UpdateSettings)
			secured.GET("/me/entries.csv", entryHandler.ExportCSV)

			secured.GET("/entries", entryHandler.List)
			secured.POST("/entries", entryHandler.Create)
			secured.GET("/entries/:id", entryHandler.Get)
			secured.PUT("/entries/:id", entryHandler.Update)
			secured.DELETE("/entries/:id", entryHandler.Delete)
		}
	}
}
