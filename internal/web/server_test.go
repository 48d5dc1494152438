package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/mailer"
	"github.com/Zachkp/portfolio/internal/scramble"
	"github.com/Zachkp/portfolio/internal/store"
)

type fakeSender struct {
	mu   sync.Mutex
	err  error
	sent []mailer.Message
}

func (f *fakeSender) Send(_ context.Context, msg mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return f.err
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func newTestServer(t *testing.T, sender mailer.Sender) (*Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	site, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default() error = %v", err)
	}
	st, err := store.Open(filepath.Join(t.TempDir(), "web.db"))
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	t.Cleanup(func() { st.Close() })

	cfg := &config.Config{
		AdminUsername: "admin",
		AdminPassword: "secret",
		Scramble: config.Scramble{
			FrameDelay:  time.Millisecond,
			Pause:       20 * time.Millisecond,
			Alphabet:    scramble.Letters,
			Timing:      scramble.DefaultTiming,
			Reverse:     scramble.DefaultReverseTiming,
			StreamLimit: 300 * time.Millisecond,
		},
	}
	srv := New(cfg, site, st, sender)
	r := srv.Router()
	// runs before the store closes
	t.Cleanup(srv.admin.wait)
	return srv, r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func TestHomePage(t *testing.T) {
	srv, r := newTestServer(t, &fakeSender{})

	w := get(r, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("GET / = %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{srv.site.Profile.Name, `data-scramble="/scramble/roles"`, "Your Company", "SubSplit-Subscription"} {
		if !strings.Contains(body, want) {
			t.Errorf("home page missing %q", want)
		}
	}
}

func TestTimelineFragments(t *testing.T) {
	_, r := newTestServer(t, &fakeSender{})

	work := get(r, "/work-content").Body.String()
	if !strings.Contains(work, "DevOps Engineer") || strings.Contains(work, "Master of Science") {
		t.Errorf("work fragment has wrong entries:\n%s", work)
	}

	edu := get(r, "/education-content").Body.String()
	if !strings.Contains(edu, "Master of Science") || strings.Contains(edu, "DevOps Engineer") {
		t.Errorf("education fragment has wrong entries:\n%s", edu)
	}

	all := get(r, "/timeline-content").Body.String()
	if !strings.Contains(all, "DevOps Engineer") || !strings.Contains(all, "Master of Science") {
		t.Error("timeline fragment should hold both kinds")
	}
}

func TestProjectCard(t *testing.T) {
	srv, r := newTestServer(t, &fakeSender{})
	n := len(srv.site.Projects)

	w := get(r, "/projects/"+strconv.Itoa(n+1))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /projects/%d = %d", n+1, w.Code)
	}
	if !strings.Contains(w.Body.String(), srv.site.Projects[1].Title) {
		t.Error("index past the end should wrap around")
	}
	if !strings.Contains(w.Body.String(), `hx-get="/projects/0?from=1"`) {
		t.Error("previous button should point at project 0 and remember project 1")
	}

	if w := get(r, "/projects/abc"); w.Code != http.StatusBadRequest {
		t.Errorf("GET /projects/abc = %d, want 400", w.Code)
	}
}

func TestContactDelivered(t *testing.T) {
	sender := &fakeSender{}
	srv, r := newTestServer(t, sender)

	w := postForm(r, "/contact", url.Values{
		"fullName": {"Ada Lovelace"},
		"email":    {"ada@example.com"},
		"message":  {"Hello there"},
	})
	if !strings.Contains(w.Body.String(), "Thank you for your message!") {
		t.Fatalf("unexpected response:\n%s", w.Body.String())
	}
	if sender.count() != 1 || sender.sent[0].Name != "Ada Lovelace" {
		t.Fatalf("sent = %+v", sender.sent)
	}

	messages, err := srv.store.Messages(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(messages) != 1 || messages[0].Status != store.StatusSent {
		t.Fatalf("stored messages = %+v", messages)
	}
}

func TestContactDeliveryFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("relay down")}
	srv, r := newTestServer(t, sender)

	w := postForm(r, "/contact", url.Values{
		"fullName": {"Ada"},
		"email":    {"ada@example.com"},
		"message":  {"Hello"},
	})
	if !strings.Contains(w.Body.String(), "Please try again later.") {
		t.Fatalf("unexpected response:\n%s", w.Body.String())
	}
	if sender.count() != 1 {
		t.Errorf("send attempts = %d, want exactly 1", sender.count())
	}

	messages, _ := srv.store.Messages(context.Background(), 10)
	if len(messages) != 1 || messages[0].Status != store.StatusFailed {
		t.Fatalf("stored messages = %+v", messages)
	}
}

func TestContactValidation(t *testing.T) {
	sender := &fakeSender{}
	_, r := newTestServer(t, sender)

	w := postForm(r, "/contact", url.Values{
		"fullName": {"Ada"},
		"email":    {"not-an-email"},
		"message":  {"Hello"},
	})
	if !strings.Contains(w.Body.String(), "valid email address") {
		t.Fatalf("unexpected response:\n%s", w.Body.String())
	}
	if sender.count() != 0 {
		t.Error("invalid form should not be sent")
	}
}

func TestScrambleStream(t *testing.T) {
	srv, r := newTestServer(t, &fakeSender{})

	if w := get(r, "/scramble/unknown"); w.Code != http.StatusNotFound {
		t.Fatalf("GET /scramble/unknown = %d, want 404", w.Code)
	}

	w := get(r, "/scramble/roles")
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "event:frame") {
		t.Fatalf("no frames in stream:\n%s", body)
	}
	want := `"text":"` + srv.site.Profile.Roles[0] + `","complete":true`
	if !strings.Contains(body, want) {
		t.Errorf("stream never completed the first role; want %s in\n%s", want, body)
	}
	if !strings.Contains(body, "event:end") {
		t.Errorf("stream limit should close with an end event:\n%s", body)
	}
}

func TestProjectSwitchDissolvesPreviousTitle(t *testing.T) {
	srv, r := newTestServer(t, &fakeSender{})
	projects := srv.site.Projects

	card := get(r, "/projects/1?from=0").Body.String()
	if !strings.Contains(card, "&from=0") {
		t.Errorf("card stream should start from project 0:\n%s", card)
	}
	if !strings.Contains(card, ">"+projects[0].Title+"</h3>") {
		t.Errorf("card should keep showing the previous title until the stream starts")
	}
	if w := get(r, "/projects/1?from=x"); w.Code != http.StatusBadRequest {
		t.Errorf("GET /projects/1?from=x = %d, want 400", w.Code)
	}

	body := get(r, "/scramble/projects?start=1&hold=0&from=0").Body.String()
	if !strings.Contains(body, `"state":"dissolving"`) {
		t.Fatalf("switching projects never dissolved the previous title:\n%s", body)
	}
	if i := strings.Index(body, `"state":"resolving"`); i >= 0 && i < strings.Index(body, `"state":"dissolving"`) {
		t.Error("dissolve frames should come before the new title resolves")
	}
	want := `"text":"` + projects[1].Title + `","complete":true,"state":"held","index":1`
	if !strings.Contains(body, want) {
		t.Errorf("missing %s", want)
	}
	if w := get(r, "/scramble/projects?from=x"); w.Code != http.StatusBadRequest {
		t.Errorf("bad from = %d, want 400", w.Code)
	}
}

func TestScrambleStreamManual(t *testing.T) {
	srv, r := newTestServer(t, &fakeSender{})

	body := get(r, "/scramble/projects?start=2&hold=0").Body.String()
	want := `"text":"` + srv.site.Projects[2].Title + `","complete":true,"state":"held","index":2`
	if !strings.Contains(body, want) {
		t.Fatalf("missing %s", want)
	}
	if strings.Contains(body, `"state":"dissolving"`) {
		t.Error("manual stream moved on by itself")
	}
	if w := get(r, "/scramble/projects?start=x"); w.Code != http.StatusBadRequest {
		t.Errorf("bad start = %d, want 400", w.Code)
	}
}

func TestShareCard(t *testing.T) {
	_, r := newTestServer(t, &fakeSender{})

	w := get(r, "/og.png")
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("GET /og.png = %d %s", w.Code, w.Header().Get("Content-Type"))
	}
	if !strings.HasPrefix(w.Body.String(), "\x89PNG") {
		t.Error("body is not a PNG")
	}
}
