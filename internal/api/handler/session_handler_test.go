package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/nyayasetu/nyayasetu/internal/core/domain"
	"github.com/nyayasetu/nyayasetu/internal/core/ports"
)

func TestSessionHandler_GetAnonymous(t *testing.T) {
	e := newEcho()
	h := NewSessionHandler(&stubSessionService{session: domain.AnonymousSession(), loading: true})

	c, rec := jsonContext(e, http.MethodGet, "/v1/session", "")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["authenticated"] != false || resp["loading"] != true || resp["user"] != nil {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestSessionHandler_GetAuthenticated(t *testing.T) {
	e := newEcho()
	id := domain.Identity{ID: "admin-1", Email: "admin@nyayasetu.com", Profile: domain.AdminProfile{Permissions: []string{"manage_users"}}}
	h := NewSessionHandler(&stubSessionService{session: domain.AuthenticatedSession(id)})

	c, rec := jsonContext(e, http.MethodGet, "/v1/session", "")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Authenticated bool           `json:"authenticated"`
		User          map[string]any `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Authenticated || resp.User["role"] != "admin" || resp.User["id"] != "admin-1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestSessionHandler_Login(t *testing.T) {
	e := newEcho()
	stub := &stubSessionService{
		loginFn: func(_ context.Context, email, password string) (domain.Identity, error) {
			if email != "lawyer@demo.com" || password != "pw" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return domain.Identity{ID: "lawyer-1", Email: email, Profile: domain.LawyerProfile{}}, nil
		},
	}
	h := NewSessionHandler(stub)

	c, rec := jsonContext(e, http.MethodPost, "/v1/session/login", `{"email":"lawyer@demo.com","password":"pw"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSessionHandler_LoginValidation(t *testing.T) {
	e := newEcho()
	h := NewSessionHandler(&stubSessionService{})

	c, _ := jsonContext(e, http.MethodPost, "/v1/session/login", `{"email":"not-an-email","password":""}`)
	err := h.Login(c)
	if httpCode(err) != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestSessionHandler_LoginPropagatesDomainError(t *testing.T) {
	e := newEcho()
	h := NewSessionHandler(&stubSessionService{
		loginFn: func(context.Context, string, string) (domain.Identity, error) {
			return domain.Identity{}, domain.ErrPersistence
		},
	})

	c, _ := jsonContext(e, http.MethodPost, "/v1/session/login", `{"email":"a@b.com","password":"x"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}

func TestSessionHandler_RegisterPasswordMismatch(t *testing.T) {
	e := newEcho()
	stub := &stubSessionService{}
	h := NewSessionHandler(stub)

	body := `{"name":"X","email":"x@y.com","phone":"1","password":"a","confirmPassword":"b","role":"citizen"}`
	c, _ := jsonContext(e, http.MethodPost, "/v1/session/register", body)
	err := h.Register(c)
	if httpCode(err) != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
	if msg := err.Error(); !strings.Contains(msg, "passwords do not match") {
		t.Fatalf("unexpected message: %s", msg)
	}
	if stub.registered != 0 {
		t.Fatalf("invalid form must not reach the store")
	}
}

func TestSessionHandler_RegisterLawyerNeedsBarCouncilID(t *testing.T) {
	e := newEcho()
	h := NewSessionHandler(&stubSessionService{})

	body := `{"name":"X","email":"x@lawyer.com","phone":"1","password":"a","confirmPassword":"a","role":"lawyer"}`
	c, _ := jsonContext(e, http.MethodPost, "/v1/session/register", body)
	if err := h.Register(c); httpCode(err) != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestSessionHandler_RegisterRejectsAdminRole(t *testing.T) {
	e := newEcho()
	h := NewSessionHandler(&stubSessionService{})

	body := `{"name":"X","email":"x@y.com","phone":"1","password":"a","confirmPassword":"a","role":"admin"}`
	c, _ := jsonContext(e, http.MethodPost, "/v1/session/register", body)
	if err := h.Register(c); httpCode(err) != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestSessionHandler_RegisterLawyerIsAccepted(t *testing.T) {
	e := newEcho()
	stub := &stubSessionService{
		registerFn: func(_ context.Context, in ports.RegistrationInput, _ string) (*ports.RegistrationResult, error) {
			if in.Role != domain.RoleLawyer || in.BarCouncilID != "KA/1/2019" || len(in.PracticeAreas) != 2 {
				t.Fatalf("form not forwarded: %+v", in)
			}
			return &ports.RegistrationResult{
				Identity:    domain.Identity{ID: "lawyer-1", Email: in.Email, Profile: domain.LawyerProfile{}},
				Application: &domain.LawyerApplication{ID: "a-1", Status: domain.ApplicationPending},
			}, nil
		},
	}
	h := NewSessionHandler(stub)

	body := `{"name":"Meera","email":"m@lawyer.com","phone":"1","password":"a","confirmPassword":"a",
		"role":"lawyer","barCouncilId":"KA/1/2019","practiceAreas":["Tax Law","Civil Law"],"experience":5}`
	c, rec := jsonContext(e, http.MethodPost, "/v1/session/register", body)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["authenticated"] != false || resp["application"] == nil {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestSessionHandler_RegisterUnknownPracticeArea(t *testing.T) {
	e := newEcho()
	h := NewSessionHandler(&stubSessionService{})

	body := `{"name":"X","email":"x@lawyer.com","phone":"1","password":"a","confirmPassword":"a",
		"role":"lawyer","barCouncilId":"KA/1","practiceAreas":["Space Law"]}`
	c, _ := jsonContext(e, http.MethodPost, "/v1/session/register", body)
	if err := h.Register(c); httpCode(err) != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestSessionHandler_Logout(t *testing.T) {
	e := newEcho()
	h := NewSessionHandler(&stubSessionService{})

	c, rec := jsonContext(e, http.MethodPost, "/v1/session/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestSessionHandler_RegisterWithoutRole(t *testing.T) {
	e := newEcho()
	stub := &stubSessionService{}
	h := NewSessionHandler(stub)

	body := `{"name":"X","email":"x@y.com","phone":"1","password":"a","confirmPassword":"a"}`
	c, _ := jsonContext(e, http.MethodPost, "/v1/session/register", body)
	if err := h.Register(c); httpCode(err) != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
	if stub.registered != 0 {
		t.Fatalf("invalid form must not reach the store")
	}
}
