package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

const internalMessage = "internal server error"

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			body := map[string]any{"error": ve.Message, "title": "validation error"}
			if len(ve.Fields) > 0 {
				body["fields"] = ve.Fields
			}
			_ = c.JSON(http.StatusBadRequest, body)
			return
		}

		var ae *AuthError
		if errors.As(err, &ae) {
			if ae.Reason != "" {
				slog.Warn("Authentication failed", "uri", c.Request().RequestURI, "reason", ae.Reason)
			}
			_ = c.JSON(http.StatusUnauthorized, map[string]string{"error": ae.Message})
			return
		}

		var nfe *NotFoundError
		if errors.As(err, &nfe) {
			_ = c.JSON(http.StatusNotFound, map[string]string{"error": nfe.Message})
			return
		}

		var ce *ConflictError
		if errors.As(err, &ce) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ce.Message, "title": "conflict"})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "uri", c.Request().RequestURI, "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": internalMessage})
	}
}
