package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prajwal000/Egharbari-sub001/middleware"
	"github.com/prajwal000/Egharbari-sub001/services"
)

type StatsController struct {
	stats *services.StatsService
	seed  *services.SeedService
}

func NewStatsController(stats *services.StatsService, seed *services.SeedService) *StatsController {
	return &StatsController{stats: stats, seed: seed}
}

func (sc *StatsController) UserStats(c echo.Context) error {
	stats, err := sc.stats.User(c.Request().Context(), middleware.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"stats": stats})
}

func (sc *StatsController) AdminStats(c echo.Context) error {
	stats, err := sc.stats.Admin(c.Request().Context(), middleware.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"stats": stats})
}

// Seed bootstraps the first admin account.
func (sc *StatsController) Seed(c echo.Context) error {
	admin, err := sc.seed.Seed(c.Request().Context())
	if errors.Is(err, services.ErrAdminExists) {
		return c.JSON(http.StatusBadRequest, message("Admin already exists"))
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Admin created successfully",
		"user":    admin,
	})
}
