package api

import (
	"context"
	"net/http"
	"time"

	models "BotDash/internal/domain/models"
	domrepo "BotDash/internal/domain/repository"
	"BotDash/internal/usecase"
	xhttp "BotDash/pkg/http"
	xlogger "BotDash/pkg/logger"

	"github.com/labstack/echo/v4"
)

const healthTimeout = 3 * time.Second

// StatusHandler serves the dashboard JSON API.
type StatusHandler struct {
	logger *xlogger.Logger
	reader *usecase.SnapshotReader
	webcfg domrepo.WebConfigSource
}

func NewStatusHandler(logger *xlogger.Logger, reader *usecase.SnapshotReader, webcfg domrepo.WebConfigSource) *StatusHandler {
	return &StatusHandler{logger: logger, reader: reader, webcfg: webcfg}
}

func (h *StatusHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/firebase-config", h.FirebaseConfig)
	g.GET("/status", h.current(usecase.BotStatusEntity))
	g.GET("/portfolio", h.current(usecase.PortfolioEntity))
	g.GET("/signals", h.current(usecase.SignalsEntity))

	e.GET("/healthz", h.Health)
}

// current builds the handler for one singleton entity.
func (h *StatusHandler) current(entity models.Entity) echo.HandlerFunc {
	return func(c echo.Context) error {
		payload, err := h.reader.Current(c.Request().Context(), entity)
		if err != nil {
			h.logger.Error("snapshot read failed",
				xlogger.String("entity", entity.Name),
				xlogger.String("collection", entity.Collection),
				xlogger.Error(err),
			)
			return xhttp.ErrorResponse(c, err)
		}
		return xhttp.JSONResponse(c, payload)
	}
}

func (h *StatusHandler) FirebaseConfig(c echo.Context) error {
	cfg, err := h.webcfg.Load()
	if err != nil {
		h.logger.Error("firebase web config unavailable", xlogger.Error(err))
		return xhttp.ErrorResponse(c, xhttp.InternalError("firebase web config").WithError(err))
	}
	return xhttp.JSONResponse(c, cfg)
}

func (h *StatusHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	if err := h.reader.Health(ctx); err != nil {
		h.logger.Warn("health check failed", xlogger.Error(err))
		code, msg := xhttp.StatusAndMessage(xhttp.ServiceUnavailableError("snapshot store").WithError(err))
		return c.JSON(code, xhttp.HealthBody{Status: "unhealthy", Error: msg})
	}
	return c.JSON(http.StatusOK, xhttp.HealthBody{Status: "healthy"})
}
