package server

import (
	"net/http"
	"testing"
)

func TestSignupLoginFlow(t *testing.T) {
	t.Parallel()

	_, app, _ := newTestServer(t)

	signup := map[string]string{
		"username":   "newchef",
		"email":      "newchef@example.com",
		"password":   "Str0ngPassword99",
		"first_name": "New",
		"last_name":  "Chef",
	}
	resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/api/auth/signup", "", signup))
	wantStatus(t, resp, http.StatusCreated)

	var created struct {
		Token string `json:"token"`
		User  struct {
			ID       uint   `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	decodeBody(t, resp, &created)
	if created.Token == "" || created.User.Username != "newchef" {
		t.Fatalf("unexpected signup response: %+v", created)
	}

	// duplicate signup is rejected
	resp = doRequest(t, app, jsonRequest(t, http.MethodPost, "/api/auth/signup", "", signup))
	wantStatus(t, resp, http.StatusBadRequest)

	resp = doRequest(t, app, jsonRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "newchef@example.com",
		"password": "Str0ngPassword99",
	}))
	wantStatus(t, resp, http.StatusOK)

	var login struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &login)

	// the issued token opens protected routes
	resp = doRequest(t, app, jsonRequest(t, http.MethodGet, "/api/users/me", login.Token, nil))
	wantStatus(t, resp, http.StatusOK)

	var me struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
	}
	decodeBody(t, resp, &me)
	if me.ID != created.User.ID {
		t.Fatalf("expected user %d, got %d", created.User.ID, me.ID)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	t.Parallel()

	_, app, _ := newTestServer(t)

	resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "Whatever12345",
	}))
	wantStatus(t, resp, http.StatusUnauthorized)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	t.Parallel()

	_, app, _ := newTestServer(t)

	for _, target := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users/me"},
		{http.MethodPost, "/api/recipes/"},
		{http.MethodGet, "/api/recipes/download_shopping_cart"},
		{http.MethodGet, "/api/users/subscriptions"},
	} {
		resp := doRequest(t, app, jsonRequest(t, target.method, target.path, "", nil))
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", target.method, target.path, resp.StatusCode)
		}
	}
}

func TestPublicRoutesAllowAnonymous(t *testing.T) {
	t.Parallel()

	_, app, _ := newTestServer(t)

	for _, path := range []string{"/api/tags/", "/api/ingredients/", "/api/recipes/"} {
		resp := doRequest(t, app, jsonRequest(t, http.MethodGet, path, "", nil))
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, resp.StatusCode)
		}
	}
}
