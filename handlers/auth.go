package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/prajwal000/Egharbari-sub001/config"
	"github.com/prajwal000/Egharbari-sub001/middleware"
	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/services"
)

type AuthController struct {
	users  *services.UserService
	cookie config.JWTConfig
}

func NewAuthController(users *services.UserService, cookie config.JWTConfig) *AuthController {
	return &AuthController{users: users, cookie: cookie}
}

func (ac *AuthController) setCookie(c echo.Context, value string, maxAge time.Duration) {
	cookie := &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    value,
		Path:     "/",
		Domain:   ac.cookie.CookieDomain,
		HttpOnly: true,
		Secure:   ac.cookie.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(maxAge.Seconds()),
	}
	if maxAge <= 0 {
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
	}
	c.SetCookie(cookie)
}

func (ac *AuthController) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err)
	}
	res, err := ac.users.Register(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	ac.setCookie(c, res.Token, ac.cookie.Expiry)
	return c.JSON(http.StatusCreated, res)
}

func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err)
	}
	res, err := ac.users.Login(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	ac.setCookie(c, res.Token, ac.cookie.Expiry)
	return c.JSON(http.StatusOK, res)
}

func (ac *AuthController) Logout(c echo.Context) error {
	ac.setCookie(c, "", 0)
	return c.JSON(http.StatusOK, message("Logged out successfully"))
}

func (ac *AuthController) Me(c echo.Context) error {
	user, err := ac.users.Me(c.Request().Context(), middleware.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"user": user})
}

func (ac *AuthController) UpdateMe(c echo.Context) error {
	var req models.UpdateProfileRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err)
	}
	user, err := ac.users.UpdateProfile(c.Request().Context(), middleware.SessionFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Profile updated successfully",
		"user":    user,
	})
}
