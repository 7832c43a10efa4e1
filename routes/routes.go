package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/prajwal000/Egharbari-sub001/handlers"
	"github.com/prajwal000/Egharbari-sub001/middleware"
)

type Controllers struct {
	Auth       *handlers.AuthController
	Users      *handlers.UserController
	Properties *handlers.PropertyController
	Blogs      *handlers.BlogController
	Inquiries  *handlers.InquiryController
	Favorites  *handlers.FavoriteController
	Uploads    *handlers.UploadController
	Stats      *handlers.StatsController
	Health     *handlers.HealthController
}

func RegisterRoutes(e *echo.Echo, h Controllers, auth *middleware.Auth) {
	api := e.Group("/api")
	required := auth.RequireAuth()
	optional := auth.OptionalAuth()
	admin := middleware.AdminOnly()

	api.GET("/health", h.Health.HealthCheck)
	api.GET("/seed", h.Stats.Seed)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.Auth.Register)
	authGroup.POST("/login", h.Auth.Login)
	authGroup.POST("/logout", h.Auth.Logout)
	authGroup.GET("/me", h.Auth.Me, required)
	authGroup.PATCH("/me", h.Auth.UpdateMe, required)

	properties := api.Group("/properties")
	properties.GET("", h.Properties.ListProperties, optional)
	properties.GET("/districts", h.Properties.Districts)
	properties.GET("/:slug", h.Properties.GetProperty, optional)
	properties.POST("", h.Properties.CreateProperty, required, admin)
	properties.PATCH("/:id", h.Properties.UpdateProperty, required, admin)
	properties.DELETE("/:id", h.Properties.DeleteProperty, required, admin)

	blogs := api.Group("/blogs")
	blogs.GET("", h.Blogs.List, optional)
	blogs.GET("/:slug", h.Blogs.Get, optional)
	blogs.POST("", h.Blogs.Create, required, admin)
	blogs.PATCH("/:id", h.Blogs.Update, required, admin)
	blogs.DELETE("/:id", h.Blogs.Delete, required, admin)

	inquiries := api.Group("/inquiries")
	inquiries.POST("", h.Inquiries.Create, optional)
	inquiries.GET("", h.Inquiries.List, required)
	inquiries.GET("/property", h.Inquiries.ListPropertyInquiries, required, admin)
	inquiries.GET("/:id", h.Inquiries.Get, required)
	inquiries.PATCH("/:id", h.Inquiries.UpdateStatus, required, admin)
	inquiries.DELETE("/:id", h.Inquiries.Delete, required, admin)
	inquiries.POST("/:id/reply", h.Inquiries.Reply, required)

	favorites := api.Group("/favorites")
	favorites.GET("", h.Favorites.GetFavorites, required)
	favorites.GET("/check", h.Favorites.CheckFavorite, optional)
	favorites.POST("", h.Favorites.CreateFavorite, required)
	favorites.DELETE("", h.Favorites.DeleteFavorite, required)

	uploads := api.Group("/upload", required, admin)
	uploads.POST("", h.Uploads.Upload)
	uploads.DELETE("", h.Uploads.Delete)

	users := api.Group("/users", required, admin)
	users.GET("", h.Users.List)
	users.GET("/stats", h.Stats.AdminStats)
	users.GET("/:id", h.Users.Get)
	users.PATCH("/:id", h.Users.Update)
	users.DELETE("/:id", h.Users.Delete)

	api.GET("/user/stats", h.Stats.UserStats, required)
}
