package phone

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apphttp "phone_input_backend/internal/http"
	"phone_input_backend/internal/http/router"
	"phone_input_backend/internal/phone/transport"
	"phone_input_backend/platform/config"
	"phone_input_backend/platform/logger"
	"phone_input_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()

	module, err := NewModule(nil, validator.New())
	if err != nil {
		t.Fatalf("new module: %v", err)
	}

	cfg := &config.Config{
		CORSAllowAll:   true,
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
		SessionSecret:  "test-secret",
		SessionTTL:     time.Minute,
	}
	var logs bytes.Buffer
	return router.New(&apphttp.App{
		Config:  cfg,
		Logger:  logger.NewWithWriter("production", &logs),
		Modules: []apphttp.Module{module},
	})
}

func TestFormatEndpoint(t *testing.T) {
	engine := newEngine(t)

	body, _ := json.Marshal(map[string]any{"value": "+7 327 123", "includeTerritories": true})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/phone/format", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp transport.FormatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Country != "kz" || resp.CountryData == nil || resp.CountryData.DialCode != "7" {
		t.Fatalf("unexpected response %+v", resp)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/phone/format", bytes.NewReader([]byte(`{"value":"1","country":"zz"}`)))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown country, got %d", rec.Code)
	}
}

func TestCountriesEndpoint(t *testing.T) {
	engine := newEngine(t)

	cases := []struct {
		query  string
		status int
	}{
		{"", http.StatusOK},
		{"?includeTerritories=true&excludeCountries=us&excludeCountries=ca", http.StatusOK},
		{"?excludeRegions=europe&excludeSubregions=ex-ussr", http.StatusOK},
		{"?excludeRegions=atlantis", http.StatusBadRequest},
		{"?excludeCountries=usa", http.StatusBadRequest},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/phone/countries"+tc.query, nil))
		if rec.Code != tc.status {
			t.Fatalf("%q: expected %d, got %d: %s", tc.query, tc.status, rec.Code, rec.Body.String())
		}
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/phone/countries?excludeCountries=us", nil))
	var resp transport.ListCountriesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, c := range resp.Items {
		if c.Code == "us" {
			t.Fatal("expected us to be excluded")
		}
	}
	if resp.Total != len(resp.Items) {
		t.Fatalf("total %d does not match %d items", resp.Total, len(resp.Items))
	}
}
