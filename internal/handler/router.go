package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/snnyvrz/shelfshare/internal/auth"
	"github.com/snnyvrz/shelfshare/internal/catalog"
	"github.com/snnyvrz/shelfshare/internal/config"
	"github.com/snnyvrz/shelfshare/internal/db"
	"github.com/snnyvrz/shelfshare/internal/repository"
	"gorm.io/gorm"
)

// Router mounts every API handler on e under /api.
type Router struct {
	Config    *config.Config
	DB        *gorm.DB
	Logger    *slog.Logger
	StartTime time.Time
	Version   string
}

func (rt Router) Mount(e *gin.Engine) error {
	sqlDB, err := rt.DB.DB()
	if err != nil {
		return err
	}

	dialect := db.DialectName(rt.DB)
	opts := []catalog.Option{}
	if rt.Logger != nil {
		opts = append(opts, catalog.WithLogger(rt.Logger))
	}
	search := catalog.NewStore(sqlx.NewDb(sqlDB, dialect), dialect, opts...)

	issuer := newIssuer(rt.Config)
	cookies := auth.CookieWriter{
		Production: rt.Config.IsProduction(),
		AccessTTL:  rt.Config.AccessTokenTTL,
		RefreshTTL: rt.Config.RefreshTokenTTL,
	}

	users := repository.NewGormUserRepository(rt.DB)
	libraries := repository.NewGormLibraryRepository(rt.DB)

	if rt.Config.CORSOrigin != "" {
		e.Use(cors(rt.Config.CORSOrigin))
	}

	NewHealthHandler(rt.DB, rt.StartTime, rt.Version).RegisterRoutes(e)

	api := e.Group("/api")
	{
		NewCatalogHandler(search, repository.NewGormBookRepository(rt.DB)).RegisterRoutes(api)
		NewUserAuthHandler(users, issuer, cookies).RegisterRoutes(api)
		NewLibraryAuthHandler(libraries, issuer, cookies).RegisterRoutes(api)
	}

	readers := api.Group("", auth.RequireRole(issuer, auth.RoleUser))
	{
		NewAddressHandler(repository.NewGormAddressRepository(rt.DB)).RegisterRoutes(readers)
		NewWalletHandler(users).RegisterRoutes(readers)
		NewRentalHandler(repository.NewGormRentalRepository(rt.DB)).RegisterRoutes(readers)
	}

	dashboard := api.Group("", auth.RequireRole(issuer, auth.RoleLibrary))
	{
		NewLibraryBookHandler(repository.NewGormInventoryRepository(rt.DB)).RegisterRoutes(dashboard)
	}

	return nil
}

func newIssuer(cfg *config.Config) *auth.TokenIssuer {
	return auth.NewTokenIssuer(
		cfg.JWTAccessSecret,
		cfg.JWTRefreshSecret,
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)
}

// cors allows one credentialed browser origin.
func cors(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		h.Add("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
