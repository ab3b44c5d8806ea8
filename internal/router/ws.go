package router

import (
	"log/slog"

	"github.com/DjordjeVuckovic/news-pulse/internal/realtime"
	"github.com/labstack/echo/v4"
)

type WSRouter struct {
	e   *echo.Echo
	hub *realtime.Hub
}

func NewWSRouter(e *echo.Echo, hub *realtime.Hub) *WSRouter {
	return &WSRouter{
		e:   e,
		hub: hub,
	}
}

func (r *WSRouter) Bind() {
	r.e.GET("/ws", r.subscribe)
}

// subscribe godoc
// @Summary Subscribe to new-article events over a websocket
// @Tags realtime
// @Success 101
// @Router /ws [get]
func (r *WSRouter) subscribe(c echo.Context) error {
	// the upgrader has already answered the client on failure
	if err := r.hub.ServeWS(c.Response(), c.Request()); err != nil {
		slog.Debug("Websocket upgrade failed", "error", err)
	}
	return nil
}
