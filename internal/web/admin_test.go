package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/Zachkp/portfolio/internal/store"
)

func TestShouldTrack(t *testing.T) {
	tests := []struct {
		path string
		dnt  string
		want bool
	}{
		{"/", "", true},
		{"/projects/2", "", true},
		{"/", "1", false},
		{"/static/site.css", "", false},
		{"/admin/dashboard", "", false},
		{"/scramble/roles", "", false},
		{"/og.png", "", false},
		{"/privacy", "", false},
	}
	for _, tt := range tests {
		if got := shouldTrack(tt.path, tt.dnt); got != tt.want {
			t.Errorf("shouldTrack(%q, %q) = %v, want %v", tt.path, tt.dnt, got, tt.want)
		}
	}
}

func TestVisitorTracking(t *testing.T) {
	srv, r := newTestServer(t, &fakeSender{})

	get(r, "/")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("DNT", "1")
	r.ServeHTTP(httptest.NewRecorder(), req)
	get(r, "/static/site.css")
	srv.admin.wait()

	visitors, err := srv.store.RecentVisitors(context.Background(), 10)
	if err != nil {
		t.Fatalf("RecentVisitors() error = %v", err)
	}
	if len(visitors) != 1 || visitors[0].Path != "/" {
		t.Fatalf("visitors = %+v, want one visit to /", visitors)
	}
	if visitors[0].HashedIP != srv.admin.hashIP("192.0.2.1") {
		t.Error("visitor IP should be stored hashed")
	}
}

func TestHashIPIsStableAndSalted(t *testing.T) {
	srv, _ := newTestServer(t, &fakeSender{})
	a := srv.admin

	if a.hashIP("10.0.0.1") != a.hashIP("10.0.0.1") {
		t.Error("hash should be consistent per IP")
	}
	if a.hashIP("10.0.0.1") == a.hashIP("10.0.0.2") {
		t.Error("different IPs hashed the same")
	}
	if len(a.hashIP("10.0.0.1")) != 16 {
		t.Error("hash should be truncated to 16 characters")
	}
}

func TestAdminRequiresLogin(t *testing.T) {
	_, r := newTestServer(t, &fakeSender{})

	w := get(r, "/admin/dashboard")
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/admin/login" {
		t.Fatalf("GET /admin/dashboard = %d -> %s", w.Code, w.Header().Get("Location"))
	}

	w = postForm(r, "/admin/login", url.Values{"username": {"admin"}, "password": {"wrong"}})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login = %d, want 401", w.Code)
	}
}

func TestAdminSession(t *testing.T) {
	srv, r := newTestServer(t, &fakeSender{})

	login := postForm(r, "/admin/login", url.Values{"username": {"admin"}, "password": {"secret"}})
	if login.Code != http.StatusFound {
		t.Fatalf("login = %d, want 302", login.Code)
	}
	cookies := login.Result().Cookies()
	if len(cookies) == 0 || cookies[0].Value != srv.admin.token {
		t.Fatal("login did not set the admin cookie")
	}

	authed := func(method, path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, path, nil)
		req.AddCookie(cookies[0])
		r.ServeHTTP(w, req)
		return w
	}

	w := authed(http.MethodGet, "/admin/api/stats")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /admin/api/stats = %d", w.Code)
	}
	var stats store.Stats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("stats JSON: %v", err)
	}

	for _, path := range []string{"/admin/dashboard", "/admin/messages", "/admin/visitors"} {
		if w := authed(http.MethodGet, path); w.Code != http.StatusOK {
			t.Errorf("GET %s = %d", path, w.Code)
		}
	}

	if w := authed(http.MethodDelete, "/admin/messages/missing"); w.Code != http.StatusNotFound {
		t.Errorf("DELETE missing message = %d, want 404", w.Code)
	}

	w = authed(http.MethodGet, "/admin/export/stats")
	if w.Header().Get("Content-Disposition") == "" {
		t.Error("export should be served as an attachment")
	}
}
