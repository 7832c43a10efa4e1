package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/utils"
)

const (
	// TokenCookie carries the session token for browser clients.
	TokenCookie = "token"
	sessionKey  = "session"
)

// Auth resolves sessions from a bearer token or the token cookie.
type Auth struct {
	tokens *utils.TokenManager
}

func NewAuth(tokens *utils.TokenManager) *Auth {
	return &Auth{tokens: tokens}
}

func tokenFrom(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func (a *Auth) session(c echo.Context) (*models.Session, error) {
	token := tokenFrom(c)
	if token == "" {
		return nil, apperr.Unauthenticated("Authentication required")
	}
	claims, err := a.tokens.Validate(token)
	if err != nil {
		return nil, apperr.Unauthenticated("Invalid or expired token")
	}
	session := claims.Session()
	if !session.IsActive {
		return nil, apperr.Unauthenticated("Account is deactivated")
	}
	return session, nil
}

// RequireAuth rejects requests without a valid active session.
func (a *Auth) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, err := a.session(c)
			if err != nil {
				return err
			}
			c.Set(sessionKey, session)
			return next(c)
		}
	}
}

// OptionalAuth attaches a session when one is presented and valid, and
// otherwise continues anonymously.
func (a *Auth) OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if session, err := a.session(c); err == nil {
				c.Set(sessionKey, session)
			}
			return next(c)
		}
	}
}

// AdminOnly must run after RequireAuth.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := SessionFrom(c)
			if session == nil {
				return apperr.Unauthenticated("Authentication required")
			}
			if !session.IsAdmin() {
				return apperr.Forbidden("Admin access required")
			}
			return next(c)
		}
	}
}

// SessionFrom returns the caller's session, or nil for anonymous requests.
func SessionFrom(c echo.Context) *models.Session {
	s, _ := c.Get(sessionKey).(*models.Session)
	return s
}
