package routes

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/prajwal000/Egharbari-sub001/config"
	"github.com/prajwal000/Egharbari-sub001/events"
	"github.com/prajwal000/Egharbari-sub001/handlers"
	"github.com/prajwal000/Egharbari-sub001/media"
	"github.com/prajwal000/Egharbari-sub001/middleware"
	"github.com/prajwal000/Egharbari-sub001/ratelimit"
	"github.com/prajwal000/Egharbari-sub001/services"
	"github.com/prajwal000/Egharbari-sub001/store"
	"github.com/prajwal000/Egharbari-sub001/utils"
)

// Deps are the backing services the HTTP layer is built on. Cache, Limiter,
// Uploader, Publisher and DB may be nil.
type Deps struct {
	Stores    *store.Stores
	Tokens    *utils.TokenManager
	Cache     *utils.Cache
	Limiter   *ratelimit.Limiter
	Uploader  media.Uploader
	Publisher events.Publisher
	DB        handlers.Pinger
}

// NewServer wires services, controllers and middleware into an echo instance.
func NewServer(cfg *config.AppConfig, log *slog.Logger, d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = utils.NewValidator()
	e.HTTPErrorHandler = handlers.ErrorHandler

	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echomw.BodyLimit("8M"))

	intake := services.NewIntake(d.Limiter, cfg.RateLimit.MinFillTime, cfg.RateLimit.MaxFormAge)
	users := services.NewUserService(d.Stores.Users, d.Tokens)
	properties := services.NewPropertyService(d.Stores.Properties, d.Stores.Favorites, d.Cache)

	RegisterRoutes(e, Controllers{
		Auth:       handlers.NewAuthController(users, cfg.JWT),
		Users:      handlers.NewUserController(users),
		Properties: handlers.NewPropertyController(properties),
		Blogs:      handlers.NewBlogController(services.NewBlogService(d.Stores.Blogs)),
		Inquiries:  handlers.NewInquiryController(services.NewInquiryService(d.Stores.Inquiries, d.Stores.Properties, intake, d.Publisher)),
		Favorites:  handlers.NewFavoriteController(services.NewFavoriteService(d.Stores.Favorites, d.Stores.Properties)),
		Uploads:    handlers.NewUploadController(d.Uploader),
		Stats:      handlers.NewStatsController(services.NewStatsService(d.Stores), services.NewSeedService(d.Stores.Users, cfg.Seed)),
		Health:     handlers.NewHealthController(d.DB),
	}, middleware.NewAuth(d.Tokens))

	return e
}
