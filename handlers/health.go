package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/prajwal000/Egharbari-sub001/middleware"
)

// Pinger checks a backing service; see config.MongoPinger.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db Pinger
}

// NewHealthController takes a nil pinger when running without a database.
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

func (hc *HealthController) HealthCheck(c echo.Context) error {
	body := map[string]string{"status": "ok", "database": "disabled"}
	if hc.db == nil {
		return c.JSON(http.StatusOK, body)
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if err := hc.db.Ping(ctx); err != nil {
		middleware.LoggerFrom(c).Warn("database ping failed", "error", err)
		body["status"] = "degraded"
		body["database"] = "unreachable"
		return c.JSON(http.StatusServiceUnavailable, body)
	}
	body["database"] = "ok"
	return c.JSON(http.StatusOK, body)
}
