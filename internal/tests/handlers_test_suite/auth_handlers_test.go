package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/rogerio-castellano/inventory-manager/internal/http"
	handler "github.com/rogerio-castellano/inventory-manager/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-manager/internal/http/rate_limiter"
)

func TestRegisterHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllUsersExceptAdmin)
	rl.CleanupAllVisitors()
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/register", handler.RegisterRequest{Username: "alice", Password: "secret1"}, false)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.RegisterResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" {
		t.Errorf("expected a token in the response")
	}
	if resp.User.Username != "alice" {
		t.Errorf("expected username 'alice', got %q", resp.User.Username)
	}
	if resp.User.Role != "user" {
		t.Errorf("expected role defaulted to 'user', got %q", resp.User.Role)
	}
}

func TestRegisterHandler_ShortPassword(t *testing.T) {
	t.Cleanup(clearAllUsersExceptAdmin)
	rl.CleanupAllVisitors()
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/register", handler.RegisterRequest{Username: "alice", Password: "short"}, false)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestRegisterHandler_DuplicateUsername(t *testing.T) {
	t.Cleanup(clearAllUsersExceptAdmin)
	rl.CleanupAllVisitors()
	r := api.NewRouter()

	if w := doJSON(r, http.MethodPost, "/register", handler.RegisterRequest{Username: "alice", Password: "secret1"}, false); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	w := doJSON(r, http.MethodPost, "/register", handler.RegisterRequest{Username: "alice", Password: "secret2"}, false)
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict, got %d", w.Code)
	}
}

func TestLoginHandler_RoundTrip(t *testing.T) {
	t.Cleanup(clearAllUsersExceptAdmin)
	rl.CleanupAllVisitors()
	r := api.NewRouter()

	if w := doJSON(r, http.MethodPost, "/register", handler.RegisterRequest{Username: "alice", Password: "secret1"}, false); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	w := doJSON(r, http.MethodPost, "/login", handler.CredentialsRequest{Username: "alice", Password: "secret1"}, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" {
		t.Errorf("expected a token in the response")
	}
	if resp.User.Username != "alice" {
		t.Errorf("expected username 'alice', got %q", resp.User.Username)
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	t.Cleanup(clearAllUsersExceptAdmin)
	rl.CleanupAllVisitors()
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/login", handler.CredentialsRequest{Username: "admin", Password: "nope"}, false)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestLoginHandler_RateLimited(t *testing.T) {
	t.Cleanup(func() {
		clearAllUsersExceptAdmin()
		rl.CleanupAllVisitors()
	})
	rl.CleanupAllVisitors()
	r := api.NewRouter()

	// the limiter allows a burst of 3 per IP; the fourth immediate request
	// must be rejected
	var last int
	for i := 0; i < 4; i++ {
		w := doJSON(r, http.MethodPost, "/login", handler.CredentialsRequest{Username: "admin", Password: "wrong"}, false)
		last = w.Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("expected 429 Too Many Requests, got %d", last)
	}
}

func TestGetUsersHandler_AdminOnly(t *testing.T) {
	t.Cleanup(clearAllUsersExceptAdmin)
	rl.CleanupAllVisitors()
	r := api.NewRouter()

	if w := doJSON(r, http.MethodPost, "/register", handler.RegisterRequest{Username: "alice", Password: "secret1"}, false); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	userToken, err := generateToken(r, "alice", "secret1")
	if err != nil {
		t.Fatalf("error generating token: %v", err)
	}

	req := doJSON(r, http.MethodGet, "/users", nil, true)
	if req.Code != http.StatusOK {
		t.Errorf("expected 200 OK for admin, got %d", req.Code)
	}

	// same request with a non-admin token
	w := doJSONWithToken(r, http.MethodGet, "/users", nil, userToken)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 Forbidden for non-admin, got %d", w.Code)
	}
}

func TestMutationsRequireToken(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/categories"},
		{http.MethodPost, "/suppliers"},
		{http.MethodPost, "/products"},
		{http.MethodPost, "/inventory"},
		{http.MethodDelete, "/categories/1"},
		{http.MethodGet, "/users"},
	}

	for _, route := range routes {
		w := doJSON(r, route.method, route.path, nil, false)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401 Unauthorized, got %d", route.method, route.path, w.Code)
		}
	}
}
