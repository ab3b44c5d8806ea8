package router

import (
	"github.com/DjordjeVuckovic/news-pulse/internal/apperr"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request into v and runs the registered
// validator. Decoding problems are reported as validation errors.
func bindAndValidate(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return apperr.NewValidationWrap("malformed request", err)
	}
	return c.Validate(v)
}
