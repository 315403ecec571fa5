package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/Zachkp/portfolio/internal/analytics"
	"github.com/Zachkp/portfolio/internal/chatbot"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
)

type fakeSender struct {
	calls int
	err   error
	last  contact.Submission
}

func (f *fakeSender) Name() string { return "fake" }

func (f *fakeSender) Deliver(ctx context.Context, s contact.Submission) error {
	f.calls++
	f.last = s
	return f.err
}

func fixedNow() time.Time {
	return time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
}

func newTestServer(t *testing.T, sender *fakeSender, store *analytics.Store) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	p := content.Default()
	chat := chatbot.NewService(chatbot.NewMatcher(p), time.Minute, chatbot.NoDelay)

	opts := Options{
		Portfolio:            p,
		Chat:                 chat,
		Analytics:            store,
		ContactRatePerMinute: 2,
		Now:                  fixedNow,
	}
	if sender != nil {
		opts.Contact = contact.NewService(sender)
	}

	s, err := New(opts)
	if err != nil {
		t.Fatalf("Failed to build server: %v", err)
	}
	return s
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
}

func TestPages(t *testing.T) {
	s := newTestServer(t, nil, nil)

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{"/", http.StatusOK, "Sagar Kumbhar"},
		{"/about", http.StatusOK, "<strong>React</strong>"},
		{"/experience", http.StatusOK, "Innoventix Solutions"},
		{"/education", http.StatusOK, "Gujarat Technological University"},
		{"/projects", http.StatusOK, "Landscape Web Application"},
		{"/projects?q=react", http.StatusOK, "1 project"},
		{"/projects?q=nothing-matches-this", http.StatusOK, "No projects match"},
		{"/projects/landscape-web-application", http.StatusOK, "Key Features"},
		{"/projects/missing", http.StatusNotFound, "Project not found"},
		{"/contact", http.StatusOK, "contact-form"},
		{"/no-such-page", http.StatusNotFound, "Page not found"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := do(t, s, http.MethodGet, tt.path, "")
			if w.Code != tt.status {
				t.Fatalf("Expected status %d, got %d", tt.status, w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.contains) {
				t.Errorf("Expected body to contain %q", tt.contains)
			}
		})
	}
}

func TestStaticAssets(t *testing.T) {
	s := newTestServer(t, nil, nil)
	w := do(t, s, http.MethodGet, "/static/css/site.css", "")
	if w.Code != http.StatusOK {
		t.Errorf("Expected stylesheet to be served, got %d", w.Code)
	}
}

func TestFindProjectsAPI(t *testing.T) {
	s := newTestServer(t, nil, nil)

	var resp struct {
		Count   int `json:"count"`
		Results []struct {
			Project content.Project `json:"project"`
			Score   int             `json:"score"`
		} `json:"results"`
	}

	w := do(t, s, http.MethodGet, "/api/projects?q=react", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	decode(t, w, &resp)
	if resp.Count != 1 || resp.Results[0].Project.ID != "proj-1" {
		t.Fatalf("Expected proj-1, got %+v", resp)
	}
	if resp.Results[0].Score <= 0 {
		t.Errorf("Expected positive score, got %d", resp.Results[0].Score)
	}

	q := url.Values{}
	q.Add("tech", "stripe")
	q.Add("tech", "Go")
	q.Set("year", "2026")
	w = do(t, s, http.MethodGet, "/api/projects?"+q.Encode(), "")
	decode(t, w, &resp)
	if resp.Count != 1 {
		t.Errorf("Expected tech OR filter to match, got %d", resp.Count)
	}

	w = do(t, s, http.MethodGet, "/api/projects?year=abc", "")
	decode(t, w, &resp)
	if resp.Count != 0 {
		t.Errorf("Expected non-numeric year to match nothing, got %d", resp.Count)
	}
}

func TestSuggestAndFiltersAPI(t *testing.T) {
	s := newTestServer(t, nil, nil)

	var sug struct {
		Suggestions []struct {
			Type  string `json:"type"`
			Value string `json:"value"`
		} `json:"suggestions"`
	}
	decode(t, do(t, s, http.MethodGet, "/api/projects/suggestions?q=re", ""), &sug)
	if len(sug.Suggestions) == 0 || sug.Suggestions[0].Value != "React" {
		t.Errorf("Expected React first, got %+v", sug.Suggestions)
	}

	decode(t, do(t, s, http.MethodGet, "/api/projects/suggestions?q=r", ""), &sug)
	if sug.Suggestions == nil || len(sug.Suggestions) != 0 {
		t.Errorf("Expected empty list for one-character query, got %+v", sug.Suggestions)
	}

	var opts filterOptions
	decode(t, do(t, s, http.MethodGet, "/api/projects/filters", ""), &opts)
	if len(opts.Years) != 1 || opts.Years[0] != 2026 {
		t.Errorf("Unexpected years %v", opts.Years)
	}
	if len(opts.TechStacks) != 6 {
		t.Errorf("Expected 6 tech stacks, got %v", opts.TechStacks)
	}
}

func TestHighlightsAPI(t *testing.T) {
	s := newTestServer(t, nil, nil)

	var resp struct {
		Highlights []map[string]interface{} `json:"highlights"`
		Text       string                   `json:"text"`
	}
	decode(t, do(t, s, http.MethodGet, "/api/highlights", ""), &resp)

	if len(resp.Highlights) == 0 || len(resp.Highlights) > 5 {
		t.Fatalf("Expected 1-5 highlights, got %d", len(resp.Highlights))
	}
	if resp.Highlights[0]["type"] != "summary" {
		t.Errorf("Expected summary first, got %v", resp.Highlights[0]["type"])
	}
	if !strings.HasPrefix(resp.Text, "• ") {
		t.Errorf("Expected bullet text, got %q", resp.Text)
	}
}

func TestChatFlow(t *testing.T) {
	s := newTestServer(t, nil, nil)

	var sess chatSession
	w := do(t, s, http.MethodPost, "/api/chat/sessions", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", w.Code)
	}
	decode(t, w, &sess)
	if len(sess.Messages) != 1 || !strings.Contains(sess.Messages[0].Text, "Sagar") {
		t.Fatalf("Expected welcome message, got %+v", sess.Messages)
	}

	var reply chatbot.Reply
	w = do(t, s, http.MethodPost, "/api/chat/sessions/"+sess.ID+"/messages", `{"question":"What skills do you have?"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	decode(t, w, &reply)
	if reply.Intent != chatbot.IntentSkills {
		t.Errorf("Expected skills intent, got %s", reply.Intent)
	}

	decode(t, do(t, s, http.MethodGet, "/api/chat/sessions/"+sess.ID, ""), &sess)
	if len(sess.Messages) != 3 {
		t.Errorf("Expected welcome, question and answer, got %d messages", len(sess.Messages))
	}

	w = do(t, s, http.MethodPost, "/api/chat/sessions/"+sess.ID+"/messages", `{"question":"   "}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for blank question, got %d", w.Code)
	}

	w = do(t, s, http.MethodPost, "/api/chat/sessions/unknown/messages", `{"question":"hi"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown session, got %d", w.Code)
	}
}

func TestChatAnswerAPI(t *testing.T) {
	s := newTestServer(t, nil, nil)

	var resp chatbot.Response
	decode(t, do(t, s, http.MethodPost, "/api/chat/answer", `{"question":"How can I contact you?"}`), &resp)
	if resp.Type != chatbot.IntentContact {
		t.Errorf("Expected contact intent, got %s", resp.Type)
	}
	if !strings.Contains(resp.Answer, "sagarkumbhar326@gmail.com") {
		t.Errorf("Expected email in answer, got %q", resp.Answer)
	}
}

func TestDraftAPI(t *testing.T) {
	s := newTestServer(t, nil, nil)

	var draft struct {
		Intent  string `json:"intent"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	decode(t, do(t, s, http.MethodPost, "/api/drafts", `{"intent":"job","company":"Acme"}`), &draft)
	if draft.Subject != "Job Opportunity" {
		t.Errorf("Unexpected subject %q", draft.Subject)
	}
	if !strings.Contains(draft.Message, "Hi Sagar,") || !strings.Contains(draft.Message, "Acme") {
		t.Errorf("Draft not filled: %q", draft.Message)
	}

	decode(t, do(t, s, http.MethodPost, "/api/drafts", `{"intent":"bogus"}`), &draft)
	if draft.Intent != "general" {
		t.Errorf("Expected unknown intent to fall back to general, got %q", draft.Intent)
	}
}

const validContact = `{"name":"Ada","email":"ada@example.com","message":"I would love to talk about a role on our team."}`

func TestContactAPI(t *testing.T) {
	t.Run("validation errors never reach the sender", func(t *testing.T) {
		sender := &fakeSender{}
		s := newTestServer(t, sender, nil)

		w := do(t, s, http.MethodPost, "/api/contact", `{"name":"","email":"bad","message":"too short"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("Expected 422, got %d", w.Code)
		}
		var resp struct {
			Errors map[string]string `json:"errors"`
		}
		decode(t, w, &resp)
		if resp.Errors["email"] != "Invalid email" || resp.Errors["name"] != "Name is required" {
			t.Errorf("Unexpected errors %v", resp.Errors)
		}
		if sender.calls != 0 {
			t.Errorf("Expected no delivery, got %d", sender.calls)
		}
	})

	t.Run("success", func(t *testing.T) {
		sender := &fakeSender{}
		s := newTestServer(t, sender, nil)

		w := do(t, s, http.MethodPost, "/api/contact", validContact)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if sender.calls != 1 || sender.last.Company != "Not provided" {
			t.Errorf("Unexpected delivery %+v", sender.last)
		}
	})

	t.Run("relay rejection message is surfaced", func(t *testing.T) {
		sender := &fakeSender{err: &contact.RelayError{Message: "Invalid access key"}}
		s := newTestServer(t, sender, nil)

		w := do(t, s, http.MethodPost, "/api/contact", validContact)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("Expected 502, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Invalid access key") {
			t.Errorf("Expected relay message, got %s", w.Body.String())
		}
	})

	t.Run("network failure uses generic message", func(t *testing.T) {
		sender := &fakeSender{err: errors.New("connection refused")}
		s := newTestServer(t, sender, nil)

		w := do(t, s, http.MethodPost, "/api/contact", validContact)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("Expected 502, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Please try again or email directly") {
			t.Errorf("Expected generic message, got %s", w.Body.String())
		}
	})

	t.Run("rate limited", func(t *testing.T) {
		sender := &fakeSender{}
		s := newTestServer(t, sender, nil)

		for i := 0; i < 2; i++ {
			if w := do(t, s, http.MethodPost, "/api/contact", validContact); w.Code != http.StatusOK {
				t.Fatalf("Request %d: expected 200, got %d", i, w.Code)
			}
		}
		w := do(t, s, http.MethodPost, "/api/contact", validContact)
		if w.Code != http.StatusTooManyRequests {
			t.Errorf("Expected 429, got %d", w.Code)
		}
		if sender.calls != 2 {
			t.Errorf("Expected 2 deliveries, got %d", sender.calls)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		s := newTestServer(t, nil, nil)
		w := do(t, s, http.MethodPost, "/api/contact", validContact)
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("Expected 503, got %d", w.Code)
		}
	})
}

func TestStatsAPI(t *testing.T) {
	s := newTestServer(t, nil, nil)
	if w := do(t, s, http.MethodGet, "/api/stats", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 without analytics, got %d", w.Code)
	}

	store, err := analytics.Open(filepath.Join(t.TempDir(), "visits.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	if err := store.Record(context.Background(), "10.0.0.1", "test", "/about"); err != nil {
		t.Fatalf("Failed to record visit: %v", err)
	}

	s = newTestServer(t, nil, store)
	var stats analytics.Stats
	w := do(t, s, http.MethodGet, "/api/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	decode(t, w, &stats)
	if stats.TotalVisits != 1 || stats.UniqueVisitors != 1 {
		t.Errorf("Unexpected stats %+v", stats)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t, nil, nil)

	if w := do(t, s, http.MethodGet, "/healthz", ""); w.Code != http.StatusOK {
		t.Errorf("Expected healthz 200, got %d", w.Code)
	}

	do(t, s, http.MethodGet, "/api/projects?q=react", "")
	w := do(t, s, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected metrics 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, name := range []string{"portfolio_project_searches_total 1", "portfolio_chat_sessions", `route="/api/projects"`} {
		if !strings.Contains(body, name) {
			t.Errorf("Expected metrics output to contain %q", name)
		}
	}
}
