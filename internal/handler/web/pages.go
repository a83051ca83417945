package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Template names rendered by PagesHandler.
const (
	IndexTemplate      = "index.html"
	DisclaimerTemplate = "disclaimer.html"
)

// PagesHandler renders the static dashboard pages. The pages fetch their data
// from the JSON API in the browser.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

func (h *PagesHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Index)
	e.GET("/disclaimer", h.Disclaimer)
}

func (h *PagesHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, IndexTemplate, nil)
}

func (h *PagesHandler) Disclaimer(c echo.Context) error {
	return c.Render(http.StatusOK, DisclaimerTemplate, nil)
}
