package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nyayasetu/nyayasetu/internal/core/domain"
	"github.com/nyayasetu/nyayasetu/internal/core/ports"
)

type stubSessionService struct {
	session    domain.Session
	loading    bool
	loginFn    func(ctx context.Context, email, password string) (domain.Identity, error)
	registerFn func(ctx context.Context, in ports.RegistrationInput, password string) (*ports.RegistrationResult, error)
	logoutErr  error
	registered int
}

func (s *stubSessionService) Restore(context.Context) error { return nil }

func (s *stubSessionService) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubSessionService) Register(ctx context.Context, in ports.RegistrationInput, password string) (*ports.RegistrationResult, error) {
	s.registered++
	return s.registerFn(ctx, in, password)
}

func (s *stubSessionService) Logout(context.Context) error { return s.logoutErr }
func (s *stubSessionService) Session() domain.Session      { return s.session }
func (s *stubSessionService) Loading() bool                { return s.loading }

type stubApplicationService struct {
	ports.ApplicationService // unimplemented methods panic

	listFn    func(ctx context.Context, status domain.ApplicationStatus) ([]*domain.LawyerApplication, error)
	approveFn func(ctx context.Context, id, reviewer string) (*domain.LawyerApplication, error)
	rejectFn  func(ctx context.Context, id, reviewer, reason string) (*domain.LawyerApplication, error)
	promoteFn func(ctx context.Context, id string) (domain.Identity, error)
}

func (s *stubApplicationService) List(ctx context.Context, status domain.ApplicationStatus) ([]*domain.LawyerApplication, error) {
	return s.listFn(ctx, status)
}

func (s *stubApplicationService) Approve(ctx context.Context, id, reviewer string) (*domain.LawyerApplication, error) {
	return s.approveFn(ctx, id, reviewer)
}

func (s *stubApplicationService) Reject(ctx context.Context, id, reviewer, reason string) (*domain.LawyerApplication, error) {
	return s.rejectFn(ctx, id, reviewer, reason)
}

func (s *stubApplicationService) Promote(ctx context.Context, id string) (domain.Identity, error) {
	return s.promoteFn(ctx, id)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}
