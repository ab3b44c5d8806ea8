package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/news-pulse/internal/dto"
	"github.com/DjordjeVuckovic/news-pulse/internal/middleware"
	"github.com/DjordjeVuckovic/news-pulse/internal/news"
	"github.com/DjordjeVuckovic/news-pulse/internal/types/query"
	"github.com/labstack/echo/v4"
)

type NewsRouter struct {
	e        *echo.Echo
	service  *news.Service
	verifier middleware.TokenVerifier
}

func NewNewsRouter(e *echo.Echo, service *news.Service, verifier middleware.TokenVerifier) *NewsRouter {
	return &NewsRouter{
		e:        e,
		service:  service,
		verifier: verifier,
	}
}

func (r *NewsRouter) Bind() {
	g := r.e.Group("/news")
	g.GET("", r.list)
	g.GET("/:id", r.get)
	g.POST("", r.create, middleware.BearerAuth(r.verifier))
}

// list godoc
// @Summary List articles
// @Description Filters are ANDed; search keywords are ORed over title and description; sort lists categories ranked first.
// @Tags news
// @Produce json
// @Param state query string false "US state name"
// @Param category query string false "category"
// @Param search query string false "comma separated keywords"
// @Param sort query string false "comma separated categories ranked first"
// @Param page query int false "page, starting at 1" default(1)
// @Param pageSize query int false "rows per page, at most 100" default(10)
// @Success 200 {object} dto.ArticlesPage
// @Failure 400 {object} dto.ErrorResponse
// @Router /news [get]
func (r *NewsRouter) list(c echo.Context) error {
	var q dto.NewsQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}

	res, err := r.service.Search(c.Request().Context(), query.Params{
		State:    q.State,
		Category: q.Category,
		Search:   q.Search,
		Sort:     q.Sort,
		Page:     q.Page,
		PageSize: q.PageSize,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// get godoc
// @Summary Get an article by row id or article id
// @Tags news
// @Produce json
// @Param id path string true "numeric id or 64 char article id"
// @Success 200 {object} domain.Article
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /news/{id} [get]
func (r *NewsRouter) get(c echo.Context) error {
	var p dto.ArticleIDParam
	if err := bindAndValidate(c, &p); err != nil {
		return err
	}

	article, err := r.service.Get(c.Request().Context(), p.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// create godoc
// @Summary Insert an article and notify live subscribers
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateArticleRequest true "article"
// @Success 201 {object} domain.Article
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /news [post]
func (r *NewsRouter) create(c echo.Context) error {
	var req dto.CreateArticleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := r.service.Insert(c.Request().Context(), news.NewArticle{
		Author:      req.Author,
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		URLToImage:  req.URLToImage,
		PublishedAt: req.PublishedAt,
		Content:     req.Content,
		State:       req.State,
		Category:    req.Category,
		SourceName:  req.SourceName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}
