package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"agri/pkg/respond"
)

const (
	HeaderUserID = "X-User-Id"
	CookieUserID = "USER_ID"
	ctxUserID    = "uid"
)

// Identity copies the caller's user id from the X-User-Id header or the
// USER_ID cookie into the context. It does not authenticate anything.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := strings.TrimSpace(c.Request().Header.Get(HeaderUserID))
			if uid == "" {
				if ck, err := c.Cookie(CookieUserID); err == nil {
					uid = strings.TrimSpace(ck.Value)
				}
			}
			if uid != "" {
				c.Set(ctxUserID, uid)
			}
			return next(c)
		}
	}
}

// RequireIdentity answers 401 when Identity found no user id. When
// enabled is false it passes everything through.
func RequireIdentity(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if enabled && UserID(c) == "" {
				return c.JSON(http.StatusUnauthorized, respond.Message{Message: "missing " + HeaderUserID})
			}
			return next(c)
		}
	}
}

// UserID returns the id stored by Identity, or "".
func UserID(c echo.Context) string {
	uid, _ := c.Get(ctxUserID).(string)
	return uid
}

func WhoAmI(c echo.Context) error {
	uid := UserID(c)
	return c.JSON(http.StatusOK, map[string]any{"userId": uid, "identified": uid != ""})
}
