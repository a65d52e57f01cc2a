package server

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server wires the review handler into an echo instance.
type Server struct {
	echo *echo.Echo
}

// New builds the HTTP server with logging, recovery and CORS middleware
// and the review routes registered.
func New(db *sqlx.DB, handler *ReviewHandler, corsAllowOrigin string) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	if corsAllowOrigin != "" {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: []string{corsAllowOrigin},
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		}))
	}

	e.POST("/review", handler.SubmitReview)
	e.POST("/review/undo", handler.UndoReview)
	e.GET("/healthz", func(c echo.Context) error {
		if err := db.PingContext(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return &Server{echo: e}
}

// Handler exposes the router so main can serve it behind h2c.
func (s *Server) Handler() http.Handler {
	return s.echo
}
