package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/atlas/app"
	"github.com/joefazee/atlas/app/api"
	"github.com/joefazee/atlas/app/countries"
	apiDoc "github.com/joefazee/atlas/app/doc"
	"github.com/joefazee/atlas/app/favorites"
	"github.com/joefazee/atlas/app/user"
	"github.com/joefazee/atlas/internal/deps"
	"github.com/joefazee/atlas/internal/kvstore"
	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/internal/restcountries"
	"github.com/joefazee/atlas/internal/router"
	"github.com/joefazee/atlas/internal/sanitizer"
	"github.com/joefazee/atlas/internal/security"
)

// @title Atlas API
// @version 1.0
// @description Country exploration API: browse and filter world countries, keep an account and mark favorites.

// @contact.name API Support Team

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	appLogger := logger.NewZeroLogger(os.Stdout, logger.LevelInfo, logger.Fields{
		"app": "atlas",
		"env": cfg.Env,
	})

	store, err := kvstore.New(&cfg.Store)
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}
	defer store.Close()

	tokenMaker, err := security.NewPasetoMaker(cfg.User.SymmetricKey)
	if err != nil {
		log.Fatal("Failed to create token maker:", err)
	}

	container := deps.NewContainer(store, tokenMaker, sanitizer.NewHTMLStripper(), appLogger)

	ctx := context.Background()

	sessionService := user.InitService(ctx, container, &cfg.User)

	provider := restcountries.NewClient(&cfg.Countries, appLogger)
	countryService := countries.InitService(container, provider)

	favorites.InitService(container)

	// Populate the directory up front; a provider failure leaves the
	// service in its failed state and is retryable via the refresh route.
	if err := countryService.Refresh(ctx); err != nil {
		appLogger.Error(err, map[string]interface{}{"event": "initial_country_fetch"})
	}

	r := gin.Default()
	r.Use(api.CorsMiddleware())

	mounter := router.NewMounter(container)
	mounter.Public(r).
		Mount(func(g *gin.RouterGroup, _ *deps.Container) { g.GET("/healthz", api.HealthCheck) }).
		Mount(countries.MountPublic).
		Mount(user.MountPublic)

	authMiddleware := user.AuthMiddleware(tokenMaker, sessionService)
	mounter.Authenticated(r, authMiddleware).
		Mount(user.MountAuthenticated).
		Mount(favorites.MountAuthenticated)

	apiDoc.Init(r, cfg.Env)

	appLogger.Info("starting server", map[string]interface{}{
		"host": cfg.AppHost,
		"port": cfg.AppPort,
	})
	if err := r.Run(fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
