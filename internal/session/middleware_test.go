package session

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"

	"github.com/DamiHettich/damis-reserve-app/pkg/logger"
	"github.com/DamiHettich/damis-reserve-app/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:  logger.ERROR,
		Format: logger.TEXT,
		Output: io.Discard,
	})
}

func adminUser() model.User {
	return model.User{ID: "1", Name: "Admin", Email: "admin@example.com", Role: model.RoleAdmin}
}

func clientUser() model.User {
	return model.User{ID: "2", Name: "Client", Email: "client@example.com", Role: model.RoleClient}
}

func callGated(src Source, role model.Role) (*httptest.ResponseRecorder, bool) {
	called := false
	next := func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
		w.WriteHeader(http.StatusOK)
	}

	gated := RequireRole(src, testLogger(), role, next)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	gated(rec, req, nil)
	return rec, called
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	rec, called := callGated(NewDemoSource(adminUser()), model.RoleAdmin)

	if !called {
		t.Error("expected the gated handler to run")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	rec, called := callGated(NewDemoSource(clientUser()), model.RoleAdmin)

	if called {
		t.Error("gated handler must not run for a client session")
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", rec.Code)
	}
}

func TestRequireRoleRejectsUnauthenticatedSession(t *testing.T) {
	src := &StaticSource{Session: Session{IsAuthenticated: false}}
	rec, called := callGated(src, model.RoleAdmin)

	if called {
		t.Error("gated handler must not run without authentication")
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", rec.Code)
	}
}

func TestIDEchoesExistingHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/selection", nil)
	req.Header.Set(HeaderSessionID, "session-42")

	if got := ID(rec, req); got != "session-42" {
		t.Errorf("expected the client-supplied id, got %s", got)
	}
}

func TestIDIssuesFreshIDWhenMissing(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/selection", nil)

	got := ID(rec, req)
	if got == "" {
		t.Fatal("expected a generated session id")
	}
	if echoed := rec.Header().Get(HeaderSessionID); echoed != got {
		t.Errorf("issued id must be echoed in the response header, got %q", echoed)
	}
}
