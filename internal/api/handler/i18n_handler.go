package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nyayasetu/nyayasetu/internal/i18n"
)

// I18nHandler exposes the language store.
type I18nHandler struct {
	store *i18n.Store
}

func NewI18nHandler(store *i18n.Store) *I18nHandler {
	return &I18nHandler{store: store}
}

type localeRequest struct {
	Locale string `json:"locale" validate:"required"`
}

type localeResponse struct {
	Locale    i18n.Locale   `json:"locale"`
	Supported []i18n.Locale `json:"supported"`
}

type translationResponse struct {
	Key    string      `json:"key"`
	Value  string      `json:"value"`
	Locale i18n.Locale `json:"locale"`
}

func (h *I18nHandler) current() localeResponse {
	return localeResponse{Locale: h.store.Locale(), Supported: i18n.Supported}
}

// Get handles GET /v1/i18n.
//
// @Summary      Active locale
// @Tags         i18n
// @Produce      json
// @Success      200  {object}  localeResponse
// @Router       /v1/i18n [get]
func (h *I18nHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.current())
}

// SetLocale handles PUT /v1/i18n/locale.
//
// @Summary      Switch the display language
// @Tags         i18n
// @Accept       json
// @Produce      json
// @Param        body  body      localeRequest  true  "Locale (en or hi)"
// @Success      200   {object}  localeResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/i18n/locale [put]
func (h *I18nHandler) SetLocale(c echo.Context) error {
	var req localeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if err := h.store.SetLocale(i18n.Locale(req.Locale)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.current())
}

// Negotiate handles GET /v1/i18n/negotiate. It does not switch the locale.
//
// @Summary      Best locale for the Accept-Language header
// @Tags         i18n
// @Produce      json
// @Param        Accept-Language  header    string  false  "Accept-Language"
// @Success      200              {object}  localeResponse
// @Router       /v1/i18n/negotiate [get]
func (h *I18nHandler) Negotiate(c echo.Context) error {
	return c.JSON(http.StatusOK, localeResponse{
		Locale:    i18n.Negotiate(c.Request().Header.Get("Accept-Language")),
		Supported: i18n.Supported,
	})
}

// Translate handles GET /v1/i18n/t/:key. Unknown keys come back unchanged.
//
// @Summary      Translate a key
// @Tags         i18n
// @Produce      json
// @Param        key  path      string  true  "Translation key"
// @Success      200  {object}  translationResponse
// @Router       /v1/i18n/t/{key} [get]
func (h *I18nHandler) Translate(c echo.Context) error {
	key := c.Param("key")
	return c.JSON(http.StatusOK, translationResponse{
		Key:    key,
		Value:  h.store.T(key),
		Locale: h.store.Locale(),
	})
}
