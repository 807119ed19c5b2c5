package sessions

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"phone_input_backend/internal/events"
	apphttp "phone_input_backend/internal/http"
	"phone_input_backend/internal/http/router"
	"phone_input_backend/internal/sessions/repository"
	"phone_input_backend/internal/sessions/transport"
	"phone_input_backend/platform/config"
	"phone_input_backend/platform/logger"
	"phone_input_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	engine *gin.Engine
	bus    *events.InMemoryBus
	logs   *bytes.Buffer
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	cfg := &config.Config{
		Env:            "production",
		CORSOrigins:    []string{"http://localhost:5173"},
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
		SessionSecret:  "test-secret",
		SessionTTL:     time.Minute,
	}
	logs := &bytes.Buffer{}
	log := logger.NewWithWriter(cfg.Env, logs)
	bus := events.NewInMemoryBus(log)
	store := repository.NewMemoryStore()

	module, err := NewModule(store, bus, cfg, nil, validator.New(), log)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}

	engine := router.New(&apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   store,
		EventBus: bus,
		Modules:  []apphttp.Module{module},
	})
	return testServer{engine: engine, bus: bus, logs: logs}
}

func (s testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func (s testServer) create(t *testing.T, req transport.CreateSessionRequest) transport.CreateSessionResponse {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/v1/sessions", "", req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	return decode[transport.CreateSessionResponse](t, rec)
}

func TestSessionLifecycle(t *testing.T) {
	srv := newTestServer(t)

	created := srv.create(t, transport.CreateSessionRequest{DefaultCountry: "us"})
	if created.State.Value != "+1" || created.Token == "" {
		t.Fatalf("unexpected create response %+v", created)
	}
	path := "/api/v1/sessions/" + created.ID

	rec := srv.do(t, http.MethodPut, path+"/value", created.Token, transport.SetValueRequest{Value: "12133734253"})
	if rec.Code != http.StatusOK {
		t.Fatalf("set value: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	view := decode[transport.SessionView](t, rec)
	if view.Value != "+1 (213) 373-4253" || view.Country != "us" {
		t.Fatalf("unexpected view %+v", view)
	}

	rec = srv.do(t, http.MethodPut, path+"/country", created.Token, transport.SetCountryRequest{Country: "zz"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("set unknown country: expected 400, got %d", rec.Code)
	}
	if msg := decode[map[string]any](t, rec)["error"]; msg != "invalid country code" {
		t.Fatalf("unexpected error message %v", msg)
	}

	rec = srv.do(t, http.MethodPut, path+"/country", created.Token, transport.SetCountryRequest{Country: "ca"})
	if rec.Code != http.StatusOK {
		t.Fatalf("set country: expected 200, got %d", rec.Code)
	}
	if view := decode[transport.SessionView](t, rec); view.Preferred != "ca" {
		t.Fatalf("expected ca preferred, got %+v", view)
	}

	rec = srv.do(t, http.MethodDelete, path+"/country", created.Token, nil)
	if view := decode[transport.SessionView](t, rec); rec.Code != http.StatusOK || view.Preferred != "" {
		t.Fatalf("clear country: got %d %+v", rec.Code, view)
	}

	rec = srv.do(t, http.MethodGet, path+"/countries", created.Token, nil)
	list := decode[transport.ListCountriesResponse](t, rec)
	if rec.Code != http.StatusOK || list.Total == 0 || len(list.Items) != list.Total {
		t.Fatalf("list countries: got %d %d/%d", rec.Code, len(list.Items), list.Total)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if _, ok := raw["items"]; !ok {
		t.Fatalf("expected items envelope, got %s", rec.Body.String())
	}

	if rec := srv.do(t, http.MethodDelete, path, created.Token, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}
	if rec := srv.do(t, http.MethodGet, path, created.Token, nil); rec.Code != http.StatusNotFound {
		t.Fatalf("get deleted: expected 404, got %d", rec.Code)
	}

	srv.bus.Wait()
	if !bytes.Contains(srv.logs.Bytes(), []byte("session_event")) {
		t.Fatalf("expected session events to be logged, got %q", srv.logs.String())
	}
}

func TestSessionAccessControl(t *testing.T) {
	srv := newTestServer(t)
	a := srv.create(t, transport.CreateSessionRequest{})
	b := srv.create(t, transport.CreateSessionRequest{})

	if rec := srv.do(t, http.MethodGet, "/api/v1/sessions/"+a.ID, "", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
	if rec := srv.do(t, http.MethodGet, "/api/v1/sessions/"+a.ID, b.Token, nil); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 with another session's token, got %d", rec.Code)
	}
	if rec := srv.do(t, http.MethodGet, "/api/v1/sessions/"+uuid.NewString(), "garbage", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", rec.Code)
	}
}

func TestCreateValidation(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		name   string
		body   any
		status int
	}{
		{"unknown default country", transport.CreateSessionRequest{DefaultCountry: "zz"}, http.StatusBadRequest},
		{"malformed country code", transport.CreateSessionRequest{DefaultCountry: "usa"}, http.StatusBadRequest},
		{"unknown region", map[string]any{"excludedRegions": []string{"atlantis"}}, http.StatusBadRequest},
		{"known subregion", map[string]any{"excludedSubregions": []string{"carribean"}}, http.StatusCreated},
		{"malformed json", "not an object", http.StatusBadRequest},
		{"territories", transport.CreateSessionRequest{IncludeTerritories: true, DefaultCountry: "je"}, http.StatusCreated},
	}

	for _, tc := range cases {
		rec := srv.do(t, http.MethodPost, "/api/v1/sessions", "", tc.body)
		if rec.Code != tc.status {
			t.Fatalf("%s: expected %d, got %d: %s", tc.name, tc.status, rec.Code, rec.Body.String())
		}
	}
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/health", "/api/ready"} {
		rec := srv.do(t, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
		if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
			t.Fatalf("%s: missing security headers", path)
		}
	}
}
