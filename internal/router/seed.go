package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/news-pulse/internal/apperr"
	"github.com/DjordjeVuckovic/news-pulse/internal/domain"
	"github.com/DjordjeVuckovic/news-pulse/internal/dto"
	"github.com/DjordjeVuckovic/news-pulse/internal/middleware"
	"github.com/DjordjeVuckovic/news-pulse/internal/newsapi"
	"github.com/labstack/echo/v4"
)

type Seeder interface {
	Run(ctx context.Context, opts newsapi.FetchOptions) ([]domain.Article, error)
}

type SeedRouter struct {
	e        *echo.Echo
	seeder   Seeder
	verifier middleware.TokenVerifier
	isolate  bool
}

type SeedRouterOption func(*SeedRouter)

// WithIsolatedFailures keeps ingesting the remaining categories when one
// category request fails.
func WithIsolatedFailures(isolate bool) SeedRouterOption {
	return func(r *SeedRouter) {
		r.isolate = isolate
	}
}

func NewSeedRouter(e *echo.Echo, seeder Seeder, verifier middleware.TokenVerifier, opts ...SeedRouterOption) *SeedRouter {
	r := &SeedRouter{
		e:        e,
		seeder:   seeder,
		verifier: verifier,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *SeedRouter) Bind() {
	r.e.POST("/seed", r.seed)
}

// seed godoc
// @Summary Pull top headlines for every category and upsert them
// @Description The token travels in the body. A failed fetch writes nothing and returns an empty list.
// @Tags seed
// @Accept json
// @Produce json
// @Param request body dto.SeedRequest true "seed options"
// @Success 200 {object} dto.SeedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /seed [post]
func (r *SeedRouter) seed(c echo.Context) error {
	var req dto.SeedRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("malformed request", err)
	}

	if v := r.verifier.Verify(req.Token); !v.Valid() {
		return apperr.NewAuth("Unauthorized", string(v.Reason))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	articles, err := r.seeder.Run(c.Request().Context(), newsapi.FetchOptions{
		From:            req.From,
		To:              req.To,
		PageSize:        req.PageSize,
		IsolateFailures: r.isolate,
	})
	if err != nil {
		slog.Error("Seeding failed", "error", err)
		return c.JSON(http.StatusOK, dto.SeedResponse{Articles: []domain.Article{}})
	}
	if articles == nil {
		articles = []domain.Article{}
	}

	return c.JSON(http.StatusOK, dto.SeedResponse{Articles: articles})
}
