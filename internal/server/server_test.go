package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/valpere/sareview/internal/llm"
	"github.com/valpere/sareview/internal/review"
)

type fakeCompleter struct {
	reply string
	err   error

	mu    sync.Mutex
	calls int
	last  llm.CompleteRequest
}

func (f *fakeCompleter) Name() string { return "fake" }

func (f *fakeCompleter) Complete(ctx context.Context, cfg llm.ServiceConfig, req llm.CompleteRequest) (*llm.Result, error) {
	f.mu.Lock()
	f.calls++
	f.last = req
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Result{ServiceName: "fake", Text: f.reply}, nil
}

func (f *fakeCompleter) IsAvailable(ctx context.Context) error { return nil }

func newTestServer(fake *fakeCompleter, apiKey string) *Server {
	gin.SetMode(gin.TestMode)
	svc := review.New(fake, llm.ServiceConfig{APIKey: apiKey, Model: "test-model"}, nil)
	return New(Config{Addr: ":0", APIKey: apiKey}, svc, nil, nil, nil)
}

func postJSON(t *testing.T, router *gin.Engine, path string, body map[string]interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestHandleGenerateNoAPIKey(t *testing.T) {
	srv := newTestServer(&fakeCompleter{}, "")
	w := postJSON(t, srv.Router(), "/api/review", map[string]interface{}{
		"student_name": "Amanda",
		"raw_notes":    "good session",
	}, nil)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}

func TestHandleGenerateValidation(t *testing.T) {
	tests := []struct {
		name  string
		body  map[string]interface{}
		field string
	}{
		{
			name:  "missing student name",
			body:  map[string]interface{}{"raw_notes": "solid coaching"},
			field: "student_name",
		},
		{
			name:  "missing notes",
			body:  map[string]interface{}{"student_name": "Amanda"},
			field: "raw_notes",
		},
		{
			name: "unknown status",
			body: map[string]interface{}{
				"student_name": "Amanda",
				"raw_notes":    "solid coaching",
				"status":       "Pending",
			},
			field: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCompleter{reply: "draft"}
			srv := newTestServer(fake, "test-key")
			w := postJSON(t, srv.Router(), "/api/review", tt.body, nil)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			resp := decode(t, w)
			if resp["field"] != tt.field {
				t.Errorf("field = %v, want %q", resp["field"], tt.field)
			}
			if fake.calls != 0 {
				t.Errorf("completer called %d times, want 0", fake.calls)
			}
		})
	}
}

func TestHandleGenerateSuccess(t *testing.T) {
	fake := &fakeCompleter{reply: "**What you did well**\n- Clear coaching throughout"}
	srv := newTestServer(fake, "test-key")
	w := postJSON(t, srv.Router(), "/api/review", map[string]interface{}{
		"student_name": "Amanda Dwyer",
		"client_name":  "Natalie",
		"status":       "Passed",
		"raw_notes":    "clear coaching, good pacing",
	}, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	resp := decode(t, w)
	if resp["draft"] != fake.reply {
		t.Errorf("draft = %q, want %q", resp["draft"], fake.reply)
	}
	preview, _ := resp["preview_html"].(string)
	if !strings.Contains(preview, "<strong>What you did well</strong>") {
		t.Errorf("preview_html missing rendered heading: %q", preview)
	}
	if fake.calls != 1 {
		t.Errorf("completer called %d times, want 1", fake.calls)
	}
	if !strings.Contains(fake.last.Prompt, "clear coaching, good pacing") {
		t.Errorf("prompt missing raw notes: %q", fake.last.Prompt)
	}
}

func TestHandleGenerateServiceError(t *testing.T) {
	fake := &fakeCompleter{err: context.DeadlineExceeded}
	srv := newTestServer(fake, "test-key")
	w := postJSON(t, srv.Router(), "/api/review", map[string]interface{}{
		"student_name": "Amanda",
		"raw_notes":    "good session",
	}, nil)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadGateway)
	}
}

func TestHandleTranslateUnsupportedLanguageIsNoOp(t *testing.T) {
	fake := &fakeCompleter{reply: "should never be used"}
	// No API key configured: the no-op path must not require one.
	srv := newTestServer(fake, "")
	w := postJSON(t, srv.Router(), "/api/translate", map[string]interface{}{
		"draft":    "**Overall**\nA strong session.",
		"language": "Spanish",
	}, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	resp := decode(t, w)
	if resp["draft"] != "**Overall**\nA strong session." {
		t.Errorf("draft changed: %q", resp["draft"])
	}
	if resp["translated"] != false {
		t.Errorf("translated = %v, want false", resp["translated"])
	}
	if fake.calls != 0 {
		t.Errorf("completer called %d times, want 0", fake.calls)
	}
}

func TestHandleTranslateEmptyDraft(t *testing.T) {
	srv := newTestServer(&fakeCompleter{}, "test-key")
	w := postJSON(t, srv.Router(), "/api/translate", map[string]interface{}{
		"language": "French",
	}, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestHandleTranslateSuccess(t *testing.T) {
	fake := &fakeCompleter{reply: "**Ce que vous avez bien fait**\n- Bon encadrement"}
	srv := newTestServer(fake, "test-key")
	w := postJSON(t, srv.Router(), "/api/translate", map[string]interface{}{
		"draft":    "**What you did well**\n- Good coaching",
		"language": "French",
	}, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	resp := decode(t, w)
	if resp["translated"] != true {
		t.Errorf("translated = %v, want true", resp["translated"])
	}
	if resp["language"] != "French" {
		t.Errorf("language = %v, want French", resp["language"])
	}
	draft, _ := resp["draft"].(string)
	if !strings.Contains(draft, "Ce que vous avez bien fait") {
		t.Errorf("draft = %q, want translated text", draft)
	}
	if !strings.Contains(fake.last.Prompt, "**What you did well**\n- Good coaching") {
		t.Errorf("prompt missing source text: %q", fake.last.Prompt)
	}
}

func TestHandleDocumentRequiresGeneratedReview(t *testing.T) {
	srv := newTestServer(&fakeCompleter{}, "test-key")
	w := postJSON(t, srv.Router(), "/api/document", map[string]interface{}{
		"draft": "**Overall**\nFine.",
	}, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	resp := decode(t, w)
	if resp["field"] != "student_name" {
		t.Errorf("field = %v, want student_name", resp["field"])
	}
}

func TestHandleDocumentDownload(t *testing.T) {
	fake := &fakeCompleter{reply: "**What you did well**\n- Calm handling\n\n**Overall**\nA confident session."}
	srv := newTestServer(fake, "test-key")
	router := srv.Router()

	gen := postJSON(t, router, "/api/review", map[string]interface{}{
		"student_name": "Amanda Dwyer",
		"raw_notes":    "calm handling, confident",
	}, nil)
	if gen.Code != http.StatusOK {
		t.Fatalf("generate status = %d: %s", gen.Code, gen.Body.String())
	}
	cookies := gen.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("generate set no session cookie")
	}

	w := postJSON(t, router, "/api/document", map[string]interface{}{}, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("document status = %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != docxMIME {
		t.Errorf("Content-Type = %q, want %q", got, docxMIME)
	}
	disp := w.Header().Get("Content-Disposition")
	if !strings.Contains(disp, `filename="Client_Practical_Amanda_Dwyer.docx"`) {
		t.Errorf("Content-Disposition = %q", disp)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		t.Error("document body is not a zip archive")
	}
}

// Sessions are replaced, never mutated in place: handlers running in
// parallel on one cookie must each see a consistent snapshot. Run with the
// race detector to catch regressions.
func TestConcurrentTranslateAndDocument(t *testing.T) {
	fake := &fakeCompleter{reply: "**Ce que vous avez bien fait**\n- Bon encadrement\n\n**Overall**\nSolide."}
	srv := newTestServer(fake, "test-key")
	router := srv.Router()

	gen := postJSON(t, router, "/api/review", map[string]interface{}{
		"student_name": "Amanda Dwyer",
		"raw_notes":    "good coaching throughout",
	}, nil)
	if gen.Code != http.StatusOK {
		t.Fatalf("generate status = %d: %s", gen.Code, gen.Body.String())
	}
	cookies := gen.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("generate set no session cookie")
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			w := postJSON(t, router, "/api/translate", map[string]interface{}{
				"language": "French",
			}, cookies)
			if w.Code != http.StatusOK {
				t.Errorf("translate status = %d: %s", w.Code, w.Body.String())
			}
		}()
		go func() {
			defer wg.Done()
			w := postJSON(t, router, "/api/document", map[string]interface{}{}, cookies)
			if w.Code != http.StatusOK {
				t.Errorf("document status = %d: %s", w.Code, w.Body.String())
			}
		}()
	}
	wg.Wait()
}

func TestHandleHistoryWithoutStore(t *testing.T) {
	srv := newTestServer(&fakeCompleter{}, "test-key")
	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decode(t, w)
	reviews, ok := resp["reviews"].([]interface{})
	if !ok || len(reviews) != 0 {
		t.Errorf("reviews = %v, want empty list", resp["reviews"])
	}
}

func TestIndexPageServed(t *testing.T) {
	srv := newTestServer(&fakeCompleter{}, "")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Client Practical Reviewer") {
		t.Error("index page missing title")
	}
}
