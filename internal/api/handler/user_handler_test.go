package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kcimports/inventory-api/internal/core/domain"
	"github.com/kcimports/inventory-api/internal/core/ports"
)

type stubUserService struct {
	createFn func(ctx context.Context, input ports.CreateUserInput, callerUID string) (string, error)
}

func (s *stubUserService) Create(ctx context.Context, input ports.CreateUserInput, callerUID string) (string, error) {
	return s.createFn(ctx, input, callerUID)
}

func TestUserHandler_Create_Success(t *testing.T) {
	stub := &stubUserService{
		createFn: func(_ context.Context, input ports.CreateUserInput, _ string) (string, error) {
			if input.Email != "staff@example.com" || input.Role != "staff" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return "uid_new", nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/users",
		`{"email":"staff@example.com","password":"Str0ngPass!","role":"staff"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["uid"] != "uid_new" || resp["message"] != "User created successfully" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Create_InvalidEmail(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/users",
		`{"email":"not-an-email","password":"Str0ngPass!","role":"staff"}`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if !strings.Contains(he.Message.(string), "email must be a valid email") {
		t.Fatalf("expected email message, got %v", he.Message)
	}
}

func TestUserHandler_Create_ShortPassword(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/users",
		`{"email":"x@example.com","password":"short","role":"staff"}`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if !strings.Contains(he.Message.(string), "password must be at least 8") {
		t.Fatalf("expected password length message, got %v", he.Message)
	}
}

func TestUserHandler_Create_InvalidRole(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/users",
		`{"email":"x@example.com","password":"Str0ngPass!","role":"superuser"}`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if !strings.Contains(he.Message.(string), "role must be one of") {
		t.Fatalf("expected role message, got %v", he.Message)
	}
}

func TestUserHandler_Create_EmailConflictPropagates(t *testing.T) {
	stub := &stubUserService{
		createFn: func(context.Context, ports.CreateUserInput, string) (string, error) {
			return "", domain.ErrEmailExists
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/users",
		`{"email":"taken@example.com","password":"Str0ngPass!","role":"admin"}`)
	err := h.Create(c)
	if !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists to propagate, got %v", err)
	}
}
