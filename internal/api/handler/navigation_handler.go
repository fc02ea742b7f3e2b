package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nyayasetu/nyayasetu/internal/core/domain"
	"github.com/nyayasetu/nyayasetu/internal/core/ports"
	"github.com/nyayasetu/nyayasetu/internal/core/service"
)

// NavigationHandler exposes the module router and the sidebar drawer.
type NavigationHandler struct {
	router *service.ModuleRouter
	t      ports.Translator
}

func NewNavigationHandler(router *service.ModuleRouter, t ports.Translator) *NavigationHandler {
	return &NavigationHandler{router: router, t: t}
}

type moduleRequest struct {
	Module string `json:"module" validate:"required"`
}

type drawerRequest struct {
	Open *bool `json:"open" validate:"required"`
}

type navigationResponse struct {
	ActiveModule domain.Module     `json:"activeModule"`
	DrawerOpen   bool              `json:"drawerOpen"`
	Items        []service.NavItem `json:"items"`
}

func (h *NavigationHandler) render(c echo.Context) error {
	st := h.router.Snapshot()
	return c.JSON(http.StatusOK, navigationResponse{
		ActiveModule: st.Active,
		DrawerOpen:   st.DrawerOpen,
		Items:        h.router.Navigation(h.t),
	})
}

func (h *NavigationHandler) bindModule(c echo.Context) (domain.Module, error) {
	var req moduleRequest
	if err := c.Bind(&req); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return "", echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return domain.ParseModule(req.Module)
}

// Get handles GET /v1/navigation.
//
// @Summary      Active module, drawer state and sidebar items
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  navigationResponse
// @Router       /v1/navigation [get]
func (h *NavigationHandler) Get(c echo.Context) error {
	return h.render(c)
}

// SetModule handles PUT /v1/navigation/module. The drawer is left as is.
//
// @Summary      Switch the active module
// @Tags         navigation
// @Accept       json
// @Produce      json
// @Param        body  body      moduleRequest  true  "Module id"
// @Success      200   {object}  navigationResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/navigation/module [put]
func (h *NavigationHandler) SetModule(c echo.Context) error {
	m, err := h.bindModule(c)
	if err != nil {
		return err
	}
	if err := h.router.SetActive(m); err != nil {
		return err
	}
	return h.render(c)
}

// SelectFromDrawer handles POST /v1/navigation/drawer/select.
//
// @Summary      Pick a module from the drawer and close it
// @Tags         navigation
// @Accept       json
// @Produce      json
// @Param        body  body      moduleRequest  true  "Module id"
// @Success      200   {object}  navigationResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/navigation/drawer/select [post]
func (h *NavigationHandler) SelectFromDrawer(c echo.Context) error {
	m, err := h.bindModule(c)
	if err != nil {
		return err
	}
	if err := h.router.SelectFromDrawer(m); err != nil {
		return err
	}
	return h.render(c)
}

// ToggleDrawer handles POST /v1/navigation/drawer/toggle.
//
// @Summary      Toggle the drawer
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  navigationResponse
// @Router       /v1/navigation/drawer/toggle [post]
func (h *NavigationHandler) ToggleDrawer(c echo.Context) error {
	h.router.ToggleDrawer()
	return h.render(c)
}

// SetDrawer handles PUT /v1/navigation/drawer.
//
// @Summary      Open or close the drawer
// @Tags         navigation
// @Accept       json
// @Produce      json
// @Param        body  body      drawerRequest  true  "Drawer state"
// @Success      200   {object}  navigationResponse
// @Router       /v1/navigation/drawer [put]
func (h *NavigationHandler) SetDrawer(c echo.Context) error {
	var req drawerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	h.router.SetDrawer(*req.Open)
	return h.render(c)
}
