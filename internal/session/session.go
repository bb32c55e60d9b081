package session

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/DamiHettich/damis-reserve-app/pkg/model"
)

// HeaderSessionID carries the browsing-session identity. Selections are
// scoped to it and discarded when the session expires.
const HeaderSessionID = "X-Session-ID"

// Session is what the auth collaborator supplies. The domain only ever
// reads Role from it.
type Session struct {
	User            *model.User `json:"user"`
	IsAuthenticated bool        `json:"is_authenticated"`
}

// Source resolves the session for a request. Injected rather than read
// from ambient process state so tests can substitute roles freely.
type Source interface {
	Current(r *http.Request) Session
}

// DemoSource always returns the same authenticated user. It stands in for
// a real identity provider the same way the original login stub did.
type DemoSource struct {
	user model.User
}

func NewDemoSource(user model.User) *DemoSource {
	return &DemoSource{user: user}
}

func DefaultDemoUser() model.User {
	return model.User{
		ID:    "1",
		Name:  "Demo User",
		Email: "demo@example.com",
		Role:  model.RoleClient,
	}
}

func (s *DemoSource) Current(_ *http.Request) Session {
	user := s.user
	return Session{User: &user, IsAuthenticated: true}
}

// StaticSource returns a fixed session, useful for wiring admin surfaces
// in demos and tests.
type StaticSource struct {
	Session Session
}

func (s *StaticSource) Current(_ *http.Request) Session {
	return s.Session
}

// ID returns the request's browsing-session id, issuing a fresh one when
// the client did not send the header. The issued id is echoed back so the
// client can carry it on subsequent requests.
func ID(w http.ResponseWriter, r *http.Request) string {
	if id := r.Header.Get(HeaderSessionID); id != "" {
		return id
	}
	id := uuid.New().String()
	w.Header().Set(HeaderSessionID, id)
	return id
}
