package http

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewEcho builds the echo instance with request ids, access logging, panic
// recovery and all routes registered.
func NewEcho(server *Server, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("component", "http"),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				logger.LogAttrs(c.Request().Context(), slog.LevelError, "request failed", attrs...)
				return nil
			}
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request", attrs...)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	RegisterRoutes(e, server)
	return e
}

// RegisterRoutes binds the server methods to their paths.
func RegisterRoutes(e *echo.Echo, server *Server) {
	e.GET("/health", server.Health)

	e.POST("/couriers", server.CreateCouriers)
	e.GET("/couriers/:courier_id", server.GetCourier)
	e.PATCH("/couriers/:courier_id", server.PatchCourier)

	e.POST("/orders", server.CreateOrders)
	e.POST("/orders/assign", server.AssignOrders)
	e.POST("/orders/complete", server.CompleteOrder)
}
