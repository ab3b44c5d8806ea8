package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/news-pulse/internal/auth"
	"github.com/DjordjeVuckovic/news-pulse/internal/dto"
	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	e       *echo.Echo
	service *auth.Service
}

func NewAuthRouter(e *echo.Echo, service *auth.Service) *AuthRouter {
	return &AuthRouter{
		e:       e,
		service: service,
	}
}

func (r *AuthRouter) Bind() {
	g := r.e.Group("/auth")
	g.POST("/register", r.register)
	g.POST("/login", r.login)
}

// register godoc
// @Summary Register a user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "new user"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (r *AuthRouter) register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := r.service.Register(c.Request().Context(), auth.Registration{
		FullName:        req.FullName,
		Email:           req.Email,
		Password:        req.Password,
		PreferredTopics: req.PreferredTopics,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message:         "User registered successfully",
		ID:              user.ID,
		FullName:        user.FullName,
		Email:           user.Email,
		PreferredTopics: user.PreferredTopics,
	})
}

// login godoc
// @Summary Log in and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (r *AuthRouter) login(c echo.Context) error {
	var req dto.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := r.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}
