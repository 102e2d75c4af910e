package gateway

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/gorilla/websocket"

	"github.com/msto63/mRW/internal/history"
	"github.com/msto63/mRW/internal/service"
	"github.com/msto63/mRW/internal/tools"
	"github.com/msto63/mRW/pkg/calc/fun"
	"github.com/msto63/mRW/pkg/core/config"
)

func newTestServer(t *testing.T, cfg config.HTTPConfig) *httptest.Server {
	t.Helper()
	reg, err := tools.NewRegistry(
		tools.WithClock(func() time.Time { return time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC) }),
		tools.WithRoller(fun.NewSeededRoller(42)),
	)
	if err != nil {
		t.Fatalf("NewRegistry error = %v", err)
	}
	svc, err := service.NewService(service.Config{Registry: reg, History: history.NewMemoryStore(10)})
	if err != nil {
		t.Fatalf("NewService error = %v", err)
	}
	g := New(svc, cfg)
	srv := httptest.NewServer(g.Handler())
	t.Cleanup(func() {
		srv.Close()
		if g.limiter != nil {
			g.limiter.Stop()
		}
	})
	return srv
}

func do(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("NewRequest error = %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s error = %v", method, url, err)
	}
	defer resp.Body.Close()
	var buf bytes.Buffer
	buf.ReadFrom(resp.Body)
	return resp, buf.Bytes()
}

func TestCalculate(t *testing.T) {
	srv := newTestServer(t, config.HTTPConfig{})

	resp, body := do(t, http.MethodPost, srv.URL+"/api/v1/tools/gcd/calculate", `{"params": {"values": [12, 18]}}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}
	var res ResultResponse
	if err := json.Unmarshal(body, &res); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if res.Tool != "gcd" || res.Summary != "ggT = 6" {
		t.Errorf("result = %+v", res)
	}
	if res.Values["gcd"] != float64(6) {
		t.Errorf("values[gcd] = %v, want 6", res.Values["gcd"])
	}
	if resp.Header.Get(RequestIDHeader) == "" {
		t.Errorf("response carries no %s", RequestIDHeader)
	}
}

func TestErrorResponses(t *testing.T) {
	srv := newTestServer(t, config.HTTPConfig{})

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{"unparsable number", http.MethodPost, "/api/v1/tools/bmi/calculate", `{"params": {"weight": "x", "height": "175"}}`, 400, "PARSE_ERROR"},
		{"missing parameter", http.MethodPost, "/api/v1/tools/bmi/calculate", `{"params": {"height": "175"}}`, 400, "INVALID_ARGUMENT"},
		{"malformed body", http.MethodPost, "/api/v1/tools/bmi/calculate", `{"params":`, 400, "PARSE_ERROR"},
		{"object parameter", http.MethodPost, "/api/v1/tools/bmi/calculate", `{"params": {"weight": {"kg": 70}}}`, 400, "INVALID_ARGUMENT"},
		{"unknown tool", http.MethodPost, "/api/v1/tools/nope/calculate", `{}`, 404, "NOT_FOUND"},
		{"unknown tool info", http.MethodGet, "/api/v1/tools/nope", "", 404, "NOT_FOUND"},
		{"unknown route", http.MethodGet, "/api/v1/nothing", "", 404, "NOT_FOUND"},
		{"bad limit", http.MethodGet, "/api/v1/history?limit=abc", "", 400, "PARSE_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, tt.method, srv.URL+tt.path, tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d (body %s)", resp.StatusCode, tt.status, body)
			}
			var e ErrorResponse
			if err := json.Unmarshal(body, &e); err != nil {
				t.Fatalf("decode error = %v", err)
			}
			if e.Code != tt.code {
				t.Errorf("code = %s, want %s", e.Code, tt.code)
			}
			if e.Message == "" {
				t.Errorf("empty error message")
			}
		})
	}
}

func TestListTools(t *testing.T) {
	srv := newTestServer(t, config.HTTPConfig{})

	_, body := do(t, http.MethodGet, srv.URL+"/api/v1/tools?category=fun", "")
	var list ToolsResponse
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	var ids []string
	for _, tool := range list.Tools {
		ids = append(ids, tool.ID)
	}
	if diff := cmp.Diff([]string{"dice", "coin", "wheel"}, ids); diff != "" {
		t.Errorf("tools mismatch (-want +got):\n%s", diff)
	}
	if list.Count != 3 {
		t.Errorf("count = %d, want 3", list.Count)
	}

	_, body = do(t, http.MethodGet, srv.URL+"/api/v1/categories", "")
	var cats CategoriesResponse
	if err := json.Unmarshal(body, &cats); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if len(cats.Categories) != 6 {
		t.Errorf("categories = %d, want 6", len(cats.Categories))
	}

	resp, body := do(t, http.MethodGet, srv.URL+"/api/v1/tools/loan", "")
	var tool tools.Tool
	if err := json.Unmarshal(body, &tool); err != nil || resp.StatusCode != 200 {
		t.Fatalf("GET /tools/loan = %d, %v", resp.StatusCode, err)
	}
	if tool.Path != "/finance/loan" {
		t.Errorf("loan path = %q", tool.Path)
	}
}

func TestHistoryEndpoints(t *testing.T) {
	srv := newTestServer(t, config.HTTPConfig{})

	for _, vals := range []string{`"4 6"`, `"10 15"`} {
		resp, body := do(t, http.MethodPost, srv.URL+"/api/v1/tools/gcd/calculate", `{"params": {"values": `+vals+`}}`)
		if resp.StatusCode != 200 {
			t.Fatalf("calculate status = %d, body %s", resp.StatusCode, body)
		}
	}

	_, body := do(t, http.MethodGet, srv.URL+"/api/v1/history?limit=1&type=math", "")
	var h HistoryResponse
	if err := json.Unmarshal(body, &h); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if h.Count != 1 || h.Entries[0].Result != "ggT = 5" {
		t.Errorf("history = %s", body)
	}

	resp, _ := do(t, http.MethodDelete, srv.URL+"/api/v1/history", "")
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("DELETE /history status = %d", resp.StatusCode)
	}
	_, body = do(t, http.MethodGet, srv.URL+"/api/v1/history", "")
	if err := json.Unmarshal(body, &h); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if h.Count != 0 {
		t.Errorf("history after clear = %d entries", h.Count)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, config.HTTPConfig{})
	resp, body := do(t, http.MethodGet, srv.URL+"/api/v1/health", "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), `"status":"healthy"`) {
		t.Errorf("health body = %s", body)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := config.HTTPConfig{}
	cfg.RateLimit.Requests = 2
	cfg.RateLimit.Window.Duration = time.Hour
	srv := newTestServer(t, cfg)

	var codes []int
	for i := 0; i < 3; i++ {
		resp, _ := do(t, http.MethodGet, srv.URL+"/api/v1/categories", "")
		codes = append(codes, resp.StatusCode)
	}
	if diff := cmp.Diff([]int{200, 200, 429}, codes); diff != "" {
		t.Errorf("status codes mismatch (-want +got):\n%s", diff)
	}
}

func TestRateLimiterRefill(t *testing.T) {
	now := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()
	rl.now = func() time.Time { return now }

	if !rl.Allow("a") {
		t.Fatalf("first request denied")
	}
	if rl.Allow("a") {
		t.Errorf("second request allowed within the window")
	}
	if !rl.Allow("b") {
		t.Errorf("other client denied")
	}
	now = now.Add(time.Minute)
	if !rl.Allow("a") {
		t.Errorf("request denied after refill")
	}
}

func TestCORS(t *testing.T) {
	cfg := config.HTTPConfig{}
	cfg.CORS.Enabled = true
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.CORS.AllowedMethods = []string{"GET", "POST"}
	srv := newTestServer(t, cfg)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/categories", nil)
	req.Header.Set("Origin", "http://example.test")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request error = %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

type wsReply struct {
	Type    string          `json:"type"`
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload"`
}

func TestLive(t *testing.T) {
	srv := newTestServer(t, config.HTTPConfig{})
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/live"

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial error = %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	roundTrip := func(msg map[string]interface{}) wsReply {
		t.Helper()
		if err := conn.WriteJSON(msg); err != nil {
			t.Fatalf("WriteJSON error = %v", err)
		}
		var r wsReply
		if err := conn.ReadJSON(&r); err != nil {
			t.Fatalf("ReadJSON error = %v", err)
		}
		return r
	}

	if r := roundTrip(map[string]interface{}{"type": "ping", "id": "1"}); r.Type != MsgPong || r.ID != "1" {
		t.Errorf("ping reply = %+v", r)
	}

	r := roundTrip(map[string]interface{}{
		"type":    "calculate",
		"id":      "2",
		"payload": map[string]interface{}{"tool": "/math/gcd", "params": map[string]interface{}{"values": "12 18"}},
	})
	if r.Type != MsgResult || r.ID != "2" {
		t.Fatalf("calculate reply = %+v", r)
	}
	var res ResultResponse
	if err := json.Unmarshal(r.Payload, &res); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if res.Summary != "ggT = 6" {
		t.Errorf("summary = %q", res.Summary)
	}

	r = roundTrip(map[string]interface{}{
		"type":    "calculate",
		"id":      "3",
		"payload": map[string]interface{}{"tool": "nope"},
	})
	var e ErrorResponse
	json.Unmarshal(r.Payload, &e)
	if r.Type != MsgError || r.ID != "3" || e.Code != "NOT_FOUND" {
		t.Errorf("unknown tool reply = %+v (%+v)", r, e)
	}

	r = roundTrip(map[string]interface{}{"type": "shout"})
	json.Unmarshal(r.Payload, &e)
	if r.Type != MsgError || e.Code != "UNKNOWN_TYPE" {
		t.Errorf("unknown type reply = %+v (%+v)", r, e)
	}
}
