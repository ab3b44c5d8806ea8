package middleware

import (
	"strings"

	"github.com/DjordjeVuckovic/news-pulse/internal/apperr"
	"github.com/DjordjeVuckovic/news-pulse/internal/auth"
	"github.com/labstack/echo/v4"
)

const ClaimsKey = "claims"

type TokenVerifier interface {
	Verify(token string) auth.Verification
}

// BearerAuth rejects requests without a valid "Authorization: Bearer" token
// and stores the decoded claims on the context.
func BearerAuth(v TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			res := v.Verify(token)
			if !res.Valid() {
				return apperr.NewAuth("Unauthorized", string(res.Reason))
			}
			c.Set(ClaimsKey, res.Claims)
			return next(c)
		}
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
