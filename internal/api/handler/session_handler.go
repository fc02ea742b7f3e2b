package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nyayasetu/nyayasetu/internal/api/metrics"
	"github.com/nyayasetu/nyayasetu/internal/core/domain"
	"github.com/nyayasetu/nyayasetu/internal/core/ports"
)

// SessionHandler handles HTTP requests for the portal session.
type SessionHandler struct {
	sessions ports.SessionService
}

func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// --- Request / Response types ---

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name            string      `json:"name" validate:"required"`
	Email           string      `json:"email" validate:"required,email"`
	Phone           string      `json:"phone" validate:"required"`
	Password        string      `json:"password" validate:"required"`
	ConfirmPassword string      `json:"confirmPassword" validate:"eqfield=Password"`
	Role            domain.Role `json:"role" validate:"required,oneof=citizen lawyer"`
	BarCouncilID    string      `json:"barCouncilId" validate:"required_if=Role lawyer"`
	PracticeAreas   []string    `json:"practiceAreas" validate:"omitempty,dive,practice_area"`
	Experience      int         `json:"experience" validate:"min=0"`
	Documents       []string    `json:"documents"`
}

type sessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	Loading       bool             `json:"loading"`
	User          *domain.Identity `json:"user"`
}

type loginResponse struct {
	User domain.Identity `json:"user"`
}

type registerResponse struct {
	User          domain.Identity           `json:"user"`
	Authenticated bool                      `json:"authenticated"`
	Application   *domain.LawyerApplication `json:"application,omitempty"`
	Message       string                    `json:"message,omitempty"`
}

// Get handles GET /v1/session.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /v1/session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	resp := sessionResponse{Loading: h.sessions.Loading()}
	if id, ok := h.sessions.Session().Identity(); ok {
		resp.Authenticated = true
		resp.User = &id
	}
	return c.JSON(http.StatusOK, resp)
}

// Login handles POST /v1/session/login.
//
// @Summary      Sign in
// @Description  Resolves the role from the credentials after a fixed delay. In demo mode any password is accepted.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /v1/session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	id, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues(string(id.Role())).Inc()
	return c.JSON(http.StatusOK, loginResponse{User: id})
}

// Register handles POST /v1/session/register.
//
// @Summary      Register
// @Description  Citizens are signed in at once. Lawyers are filed for admin review and stay signed out.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration form"
// @Success      201   {object}  registerResponse
// @Success      202   {object}  registerResponse
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /v1/session/register [post]
func (h *SessionHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.sessions.Register(c.Request().Context(), ports.RegistrationInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Role:          req.Role,
		BarCouncilID:  req.BarCouncilID,
		PracticeAreas: req.PracticeAreas,
		Experience:    req.Experience,
		Documents:     req.Documents,
	}, req.Password)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(res.Identity.Role())).Inc()

	resp := registerResponse{
		User:          res.Identity,
		Authenticated: res.Authenticated,
		Application:   res.Application,
	}
	if !res.Authenticated {
		resp.Message = "Application submitted! You will be notified once verified by admin."
		return c.JSON(http.StatusAccepted, resp)
	}
	return c.JSON(http.StatusCreated, resp)
}

// Logout handles POST /v1/session/logout.
//
// @Summary      Sign out
// @Tags         session
// @Success      204
// @Failure      503  {object}  map[string]string
// @Router       /v1/session/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context()); err != nil {
		return err
	}
	metrics.LogoutsTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
