package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/middleware"
	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/services"
	"github.com/prajwal000/Egharbari-sub001/utils"
)

type errorBody struct {
	Error      string   `json:"error"`
	Details    []string `json:"details,omitempty"`
	RetryAfter int64    `json:"retryAfter,omitempty"`
}

func statusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err in the {"error"} envelope. Internal errors are
// logged and answered with their public message only.
func respondError(c echo.Context, err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := http.StatusText(he.Code)
		if s, ok := he.Message.(string); ok && s != "" {
			msg = s
		}
		if he.Code >= http.StatusInternalServerError {
			middleware.LoggerFrom(c).Error("request failed", "status", he.Code, "error", err)
		}
		return c.JSON(he.Code, errorBody{Error: msg})
	}

	appErr, ok := apperr.As(err)
	if !ok {
		appErr = apperr.Internal("Internal server error", err)
	}
	status := statusOf(appErr.Kind)
	body := errorBody{Error: appErr.Message, Details: appErr.Details}

	switch appErr.Kind {
	case apperr.KindInternal:
		middleware.LoggerFrom(c).Error("request failed", "error", err)
		if body.Error == "" {
			body.Error = "Internal server error"
		}
	case apperr.KindTooManyRequests:
		secs := int64(math.Ceil(appErr.RetryAfter.Seconds()))
		if secs < 1 {
			secs = 1
		}
		c.Response().Header().Set("Retry-After", strconv.FormatInt(secs, 10))
		body.RetryAfter = secs
	}
	return c.JSON(status, body)
}

// ErrorHandler replaces echo's default so router and middleware errors keep
// the same envelope as handler errors.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if err := respondError(c, err); err != nil {
		middleware.LoggerFrom(c).Error("failed to write error response", "error", err)
	}
}

// bind decodes the request into dst and runs the registered validator.
func bind(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return apperr.Validation(fmt.Sprintf("Invalid request body: %v", he.Message))
		}
		return apperr.Validation("Invalid request body")
	}
	return c.Validate(dst)
}

func pageOf(c echo.Context) models.Page {
	return utils.ParsePagination(c.QueryParam("page"), c.QueryParam("limit"))
}

func idParam(c echo.Context, what string) (primitive.ObjectID, error) {
	return services.ParseID(c.Param("id"), what)
}

func queryBool(c echo.Context, name string) *bool {
	v, err := strconv.ParseBool(c.QueryParam(name))
	if err != nil {
		return nil
	}
	return &v
}

func message(msg string) map[string]string {
	return map[string]string{"message": msg}
}
