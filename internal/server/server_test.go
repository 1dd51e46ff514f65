package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/architectus/pkg/component"
	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/generator"
	"github.com/matzehuels/architectus/pkg/geom"
	"github.com/matzehuels/architectus/pkg/layout"
	"github.com/matzehuels/architectus/pkg/observability"
	"github.com/matzehuels/architectus/pkg/plan"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	reg := component.Default()
	reg.MustRegister(component.Func{ID: "oversized", Fn: func(geom.RectInt, *component.Context) layout.Element {
		return layout.NewRoom(plan.LivingRoom, geom.Vec(50, 50))
	}})
	logger := log.NewWithOptions(io.Discard, log.Options{})
	srv := New(generator.New(reg, nil, nil, logger), nil, logger)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, body
}

func decodeError(t *testing.T, body []byte) errorBody {
	t.Helper()
	var e errorBody
	if err := json.Unmarshal(body, &e); err != nil {
		t.Fatalf("error body %q: %v", body, err)
	}
	return e
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/healthz")
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Errorf("healthz = %d %q", resp.StatusCode, body)
	}
}

func TestListComponents(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/v1/components")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out struct{ Components []string }
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Components) != 4 || out.Components[0] != "family" {
		t.Errorf("components = %v", out.Components)
	}
}

func TestGeneratePlan(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name        string
		query       string
		status      int
		contentType string
		contains    string
	}{
		{"json default", "width=12&height=8&seed=4&component=two-room", 200, "application/json", `"component": "two-room"`},
		{"svg", "width=12&height=8&seed=4&format=svg", 200, "image/svg+xml", "<svg"},
		{"ascii", "width=12&height=8&seed=4&format=ascii", 200, "text/plain; charset=utf-8", "............"},
		{"dot", "width=12&height=8&seed=4&format=dot", 200, "text/vnd.graphviz; charset=utf-8", "graph G {"},
		{"bad format", "format=png", 400, "application/json", "INVALID_FORMAT"},
		{"bad seed", "seed=-1", 400, "application/json", "INVALID_INPUT"},
		{"bad flip", "flip_x=maybe", 400, "application/json", "INVALID_INPUT"},
		{"plot too small", "width=2&height=2", 400, "application/json", "INVALID_PLOT"},
		{"unknown component", "component=castle", 404, "application/json", "COMPONENT_NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, ts.URL+"/v1/plan?"+tt.query)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d (%s)", resp.StatusCode, tt.status, body)
			}
			if ct := resp.Header.Get("Content-Type"); ct != tt.contentType {
				t.Errorf("content type = %q, want %q", ct, tt.contentType)
			}
			if !strings.Contains(string(body), tt.contains) {
				t.Errorf("body missing %q:\n%s", tt.contains, body)
			}
		})
	}
}

func TestGenerationFailureDetails(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/v1/plan?width=6&height=6&seed=1&component=oversized")
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	e := decodeError(t, body)
	if e.Code != errors.ErrCodeGenerationFailed || e.Details == nil {
		t.Fatalf("error = %+v", e)
	}
	if e.Details.Attempts != generator.DefaultMaxAttempts || e.Details.Desired != geom.Vec(50, 50) || e.Details.Available != geom.Vec(4, 4) {
		t.Errorf("details = %+v", *e.Details)
	}
}

func TestCreateAndFetchPlan(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/v1/plans", "application/json",
		strings.NewReader(`{"width": 14, "height": 10, "seed": 11, "component": "family"}`))
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	var created plan.Snapshot
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatal(err)
	}
	if created.ID == "" || resp.Header.Get("Location") != "/v1/plans/"+created.ID {
		t.Fatalf("id=%q location=%q", created.ID, resp.Header.Get("Location"))
	}

	resp, body = get(t, ts.URL+"/v1/plans/"+created.ID)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d", resp.StatusCode)
	}
	var fetched plan.Snapshot
	if err := json.Unmarshal(body, &fetched); err != nil {
		t.Fatal(err)
	}
	if fetched.Seed != 11 || len(fetched.Floors[0].Rooms) != len(created.Floors[0].Rooms) {
		t.Errorf("fetched = %+v", fetched)
	}

	resp, body = get(t, ts.URL+"/v1/plans/"+created.ID+"/svg")
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(string(body), "<svg") {
		t.Errorf("svg = %d %.40q", resp.StatusCode, body)
	}

	resp, body = get(t, ts.URL+"/v1/plans")
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), created.ID) {
		t.Errorf("list = %d %s", resp.StatusCode, body)
	}
}

func TestCreatePlanRejectsBadBody(t *testing.T) {
	ts := newTestServer(t)
	bodies := []string{
		`{"width": "wide"}`,
		`{"colour": 1}`,
		`not json`,
		`{"width": 12, "height": 8, "seed": 1, "margin": {"left": 9223372036854775807, "top": 1, "right": 9223372036854775807, "bottom": 1}}`,
		`{"width": 12, "height": 8, "seed": 1, "margin": {"left": 6, "top": 1, "right": 6, "bottom": 1}}`,
	}
	for _, body := range bodies {
		resp, err := http.Post(ts.URL+"/v1/plans", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d", body, resp.StatusCode)
		}
	}
}

func TestPlanNotFound(t *testing.T) {
	ts := newTestServer(t)
	for _, path := range []string{
		"/v1/plans/0f8fad5b-d9cb-469f-a165-70867728950e",
		"/v1/plans/not-an-id",
		"/v1/plans/0f8fad5b-d9cb-469f-a165-70867728950e/svg",
	} {
		resp, body := get(t, ts.URL+path)
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("%s: status = %d", path, resp.StatusCode)
		}
		if e := decodeError(t, body); e.Code != errors.ErrCodePlanNotFound {
			t.Errorf("%s: code = %s", path, e.Code)
		}
	}
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	routes []string
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, method, route string, _ int, _ time.Duration) {
	h.routes = append(h.routes, method+" "+route)
}

func TestHTTPHooksSeeRoutePatterns(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	t.Cleanup(observability.Reset)

	ts := newTestServer(t)
	get(t, ts.URL+"/v1/plans/0f8fad5b-d9cb-469f-a165-70867728950e")

	if len(hooks.routes) != 1 || hooks.routes[0] != "GET /v1/plans/{id}" {
		t.Errorf("routes = %v", hooks.routes)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code errors.Code
		want int
	}{
		{errors.ErrCodeInvalidPlot, 400},
		{errors.ErrCodeInvalidFormat, 400},
		{errors.ErrCodePlanNotFound, 404},
		{errors.ErrCodeComponentNotFound, 404},
		{errors.ErrCodeGenerationFailed, 422},
		{errors.ErrCodeNetwork, 502},
		{errors.ErrCodeStorage, 500},
		{errors.ErrCodeInternal, 500},
	}
	for _, tt := range tests {
		if got := statusFor(tt.code); got != tt.want {
			t.Errorf("statusFor(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}
