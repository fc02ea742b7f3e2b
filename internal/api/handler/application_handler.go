package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nyayasetu/nyayasetu/internal/api/metrics"
	"github.com/nyayasetu/nyayasetu/internal/core/domain"
	"github.com/nyayasetu/nyayasetu/internal/core/ports"
)

// ApplicationHandler is the admin desk for lawyer applications. The routes
// are not access-controlled; the reviewer is taken from the session.
type ApplicationHandler struct {
	apps     ports.ApplicationService
	sessions SessionReader
}

func NewApplicationHandler(apps ports.ApplicationService, sessions SessionReader) *ApplicationHandler {
	return &ApplicationHandler{apps: apps, sessions: sessions}
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

type applicationListResponse struct {
	Items []*domain.LawyerApplication `json:"items"`
	Count int                         `json:"count"`
}

type promoteResponse struct {
	User domain.Identity `json:"user"`
}

// List handles GET /v1/applications.
//
// @Summary      List lawyer applications
// @Tags         applications
// @Produce      json
// @Param        status  query     string  false  "pending, approved or rejected"
// @Success      200     {object}  applicationListResponse
// @Failure      400     {object}  map[string]string
// @Router       /v1/applications [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	status, err := domain.ParseApplicationStatus(c.QueryParam("status"))
	if err != nil {
		return err
	}
	apps, err := h.apps.List(c.Request().Context(), status)
	if err != nil {
		return err
	}
	if apps == nil {
		apps = []*domain.LawyerApplication{}
	}
	return c.JSON(http.StatusOK, applicationListResponse{Items: apps, Count: len(apps)})
}

// Get handles GET /v1/applications/:id.
//
// @Summary      Get a lawyer application
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  domain.LawyerApplication
// @Failure      404  {object}  map[string]string
// @Router       /v1/applications/{id} [get]
func (h *ApplicationHandler) Get(c echo.Context) error {
	app, err := h.apps.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}

// Approve handles POST /v1/applications/:id/approve.
//
// @Summary      Approve a pending application
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  domain.LawyerApplication
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/applications/{id}/approve [post]
func (h *ApplicationHandler) Approve(c echo.Context) error {
	app, err := h.apps.Approve(c.Request().Context(), c.Param("id"), reviewerID(h.sessions))
	if err != nil {
		return err
	}
	metrics.ApplicationsReviewedTotal.WithLabelValues(string(app.Status)).Inc()
	return c.JSON(http.StatusOK, app)
}

// Reject handles POST /v1/applications/:id/reject.
//
// @Summary      Reject a pending application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string         true   "Application id"
// @Param        body  body      rejectRequest  false  "Reason"
// @Success      200   {object}  domain.LawyerApplication
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/applications/{id}/reject [post]
func (h *ApplicationHandler) Reject(c echo.Context) error {
	var req rejectRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
	}

	app, err := h.apps.Reject(c.Request().Context(), c.Param("id"), reviewerID(h.sessions), req.Reason)
	if err != nil {
		return err
	}
	metrics.ApplicationsReviewedTotal.WithLabelValues(string(app.Status)).Inc()
	return c.JSON(http.StatusOK, app)
}

// Promote handles POST /v1/applications/:id/promote.
//
// @Summary      Verify the applicant's lawyer account
// @Description  Requires an approved application and AUTH_MODE=directory.
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  promoteResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      501  {object}  map[string]string
// @Router       /v1/applications/{id}/promote [post]
func (h *ApplicationHandler) Promote(c echo.Context) error {
	id, err := h.apps.Promote(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, promoteResponse{User: id})
}
