package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nyayasetu/nyayasetu/internal/api/metrics"
	"github.com/nyayasetu/nyayasetu/internal/core/ports"
	"github.com/nyayasetu/nyayasetu/internal/core/service"
)

// ViewHandler composes the screen for the current session and module.
type ViewHandler struct {
	sessions SessionReader
	router   *service.ModuleRouter
	composer service.ViewComposer
	t        ports.Translator
}

func NewViewHandler(sessions SessionReader, router *service.ModuleRouter, composer service.ViewComposer, t ports.Translator) *ViewHandler {
	return &ViewHandler{sessions: sessions, router: router, composer: composer, t: t}
}

// Get handles GET /v1/view.
//
// @Summary      Screen to render
// @Description  Feature modules render for everyone; the dashboard depends on the role.
// @Tags         view
// @Produce      json
// @Success      200  {object}  service.View
// @Router       /v1/view [get]
func (h *ViewHandler) Get(c echo.Context) error {
	v := h.composer.Describe(h.sessions.Session(), h.router.Snapshot().Active, h.t)
	metrics.ViewsComposedTotal.WithLabelValues(string(v.Screen)).Inc()
	return c.JSON(http.StatusOK, v)
}
