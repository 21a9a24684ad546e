package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"weekly-planner/internal/middleware"
	plannerHTTP "weekly-planner/internal/planner/delivery/http"
	"weekly-planner/internal/planner/repository/kv"
	"weekly-planner/internal/planner/usecase"
	"weekly-planner/pkg/clock"
	"weekly-planner/pkg/kvstore"
	"weekly-planner/pkg/response"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// newTestRouter wires the full stack over an in-memory store with the clock
// frozen at Wednesday 2024-05-15.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	l := &mockLogger{}
	repo := kv.New(kvstore.NewMemory(), l)
	uc := usecase.New(l, repo, clock.Fixed(time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)))
	h := plannerHTTP.New(l, uc)

	r := gin.New()
	plannerHTTP.RegisterRoutes(r.Group("/api/v1"), h, middleware.New(l, 0))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Resp) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("%s %s: malformed response body %q: %v", method, path, w.Body.String(), err)
	}
	return w, resp
}

func dataMap(t *testing.T, resp response.Resp) map[string]any {
	t.Helper()
	m, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("response data is not an object: %+v", resp.Data)
	}
	return m
}

func TestWeekEndpoint(t *testing.T) {
	r := newTestRouter()

	w, _ := do(t, r, http.MethodGet, "/api/v1/planner/week", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing weekStart: status = %d, want 400", w.Code)
	}

	w, _ = do(t, r, http.MethodGet, "/api/v1/planner/week?weekStart=garbage", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid weekStart: status = %d, want 400", w.Code)
	}

	w, resp := do(t, r, http.MethodGet, "/api/v1/planner/week?weekStart=2024-05-15", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	data := dataMap(t, resp)
	// Pass-through: the key is echoed unsnapped, labels anchor on Monday.
	if data["week_start_key"] != "2024-05-15" {
		t.Errorf("week_start_key = %v, want 2024-05-15", data["week_start_key"])
	}
	labels, _ := data["week_labels"].([]any)
	if len(labels) != 7 || labels[0] != "Seg 13" {
		t.Errorf("week_labels = %v, want 7 labels starting with Seg 13", labels)
	}
}

func TestTaskEndpointsRoundTrip(t *testing.T) {
	r := newTestRouter()

	w, resp := do(t, r, http.MethodPost, "/api/v1/tasks", `{"title":"buy milk","kind":"custom"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("add: status = %d, body %s", w.Code, w.Body.String())
	}
	added := dataMap(t, resp)
	if added["ok"] != true || added["date_key"] != "2024-05-15" {
		t.Fatalf("add response = %+v", added)
	}
	task := added["task"].(map[string]any)
	id := task["id"].(string)

	_, resp = do(t, r, http.MethodGet, "/api/v1/tasks?date=2024-05-15", "")
	tasks := dataMap(t, resp)["tasks"].([]any)
	if len(tasks) != 1 {
		t.Fatalf("list returned %d tasks, want 1", len(tasks))
	}

	_, resp = do(t, r, http.MethodPost, "/api/v1/tasks/"+id+"/toggle", "")
	toggled := dataMap(t, resp)
	if toggled["ok"] != true || toggled["status"] != "done" {
		t.Errorf("toggle response = %+v, want done", toggled)
	}

	_, resp = do(t, r, http.MethodPost, "/api/v1/tasks/"+id+"/snooze", `{"days":0}`)
	snoozed := dataMap(t, resp)
	if snoozed["ok"] != true || snoozed["snooze_until"] != "2024-05-16" {
		t.Errorf("snooze response = %+v, want clamped to 2024-05-16", snoozed)
	}

	_, resp = do(t, r, http.MethodDelete, "/api/v1/tasks/"+id+"?date=2024-05-15", "")
	removed := dataMap(t, resp)
	if removed["ok"] != true {
		t.Errorf("remove response = %+v", removed)
	}
}

func TestAddTaskValidation(t *testing.T) {
	r := newTestRouter()

	w, _ := do(t, r, http.MethodPost, "/api/v1/tasks", `{"title":""}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty title: status = %d, want 400", w.Code)
	}

	w, _ = do(t, r, http.MethodPost, "/api/v1/tasks", `{"title":"x","date":"15/05/2024"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad date format: status = %d, want 400", w.Code)
	}
}

func TestToggleUnknownTaskReportsNoChange(t *testing.T) {
	r := newTestRouter()

	w, resp := do(t, r, http.MethodPost, "/api/v1/tasks/nope/toggle", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (not-found is not an error)", w.Code)
	}
	data := dataMap(t, resp)
	if data["ok"] != false {
		t.Errorf("toggle of unknown id = %+v, want ok=false", data)
	}
}

func TestCountsEndpoint(t *testing.T) {
	r := newTestRouter()

	_, _ = do(t, r, http.MethodPost, "/api/v1/tasks", `{"title":"a"}`)
	_, resp := do(t, r, http.MethodPost, "/api/v1/tasks", `{"title":"b"}`)
	id := dataMap(t, resp)["task"].(map[string]any)["id"].(string)
	_, _ = do(t, r, http.MethodPost, "/api/v1/tasks/"+id+"/snooze", "")

	_, resp = do(t, r, http.MethodGet, "/api/v1/tasks/counts", "")
	counts := dataMap(t, resp)
	if counts["saved_today"] != float64(2) || counts["later_today"] != float64(1) {
		t.Errorf("counts = %+v, want saved=2 later=1", counts)
	}
}

func TestPlannerItemEndpoints(t *testing.T) {
	r := newTestRouter()

	_, resp := do(t, r, http.MethodPost, "/api/v1/planner/items", `{"title":"dentist","date":"2024-05-12"}`)
	item := dataMap(t, resp)["item"].(map[string]any)
	_, _ = do(t, r, http.MethodPost, "/api/v1/planner/items", `{"title":"old","date":"2024-05-01"}`)

	_, resp = do(t, r, http.MethodGet, "/api/v1/planner/items?days=7", "")
	items := dataMap(t, resp)["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("items = %+v, want only the in-window entry", items)
	}

	id := item["id"].(string)
	_, resp = do(t, r, http.MethodPost, "/api/v1/planner/items/"+id+"/toggle", "")
	toggled := dataMap(t, resp)
	if toggled["ok"] != true || toggled["done"] != true {
		t.Errorf("toggle response = %+v, want done=true", toggled)
	}
}
