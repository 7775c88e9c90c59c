package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"

	apimiddleware "github.com/iho/cashledger/internal/adapter/http/middleware"
	"github.com/iho/cashledger/internal/infrastructure/config"
)

func memoryConfig() *config.Config {
	return &config.Config{
		StoreDriver:     config.StoreDriverMemory,
		HolidayCache:    config.HolidayCacheMemory,
		JobGuard:        config.JobGuardNone,
		HolidayCacheTTL: time.Minute,
		JobLeaseTTL:     time.Minute,
		TxTimeout:       5 * time.Second,
		LogFormat:       "json",
	}
}

func serve(t *testing.T, a *app, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	return serveBody(t, a, method, target, "")
}

func serveBody(t *testing.T, a *app, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(apimiddleware.ActorIDHeader, "ops")
	req.Header.Set(apimiddleware.ActorRoleHeader, "internal")
	rec := httptest.NewRecorder()
	a.Handler.ServeHTTP(rec, req)
	return rec
}

func TestNewAppMemoryStore(t *testing.T) {
	a, err := newApp(context.Background(), memoryConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("newApp failed: %v", err)
	}
	defer a.Close()

	if a.Scheduler != nil {
		t.Fatal("scheduler must be disabled without SCHEDULER_INTERVAL")
	}

	if rec := serve(t, a, http.MethodGet, "/ready"); rec.Code != http.StatusOK {
		t.Fatalf("expected /ready 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec := serve(t, a, http.MethodGet, "/api/v1/business-day")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"day"`) {
		t.Fatalf("unexpected business day response %d: %s", rec.Code, rec.Body.String())
	}

	for _, job := range []string{"close-withdrawals", "realize-cashflows", "advance-business-day"} {
		if rec := serve(t, a, http.MethodPost, "/api/v1/jobs/"+job); rec.Code != http.StatusNoContent {
			t.Fatalf("%s: expected 204, got %d: %s", job, rec.Code, rec.Body.String())
		}
	}

	rec = serve(t, a, http.MethodGet, "/api/v1/audit-records?kind=event")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"total":3`) {
		t.Fatalf("expected three audited job runs, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = serve(t, a, http.MethodGet, "/metrics")
	body := rec.Body.String()
	if !strings.Contains(body, "go_goroutines") || !strings.Contains(body, "cashledger_audit_records_total") {
		t.Fatalf("expected runtime and ledger metrics, got %q", body)
	}
}

func TestNewAppMasterData(t *testing.T) {
	a, err := newApp(context.Background(), memoryConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("newApp failed: %v", err)
	}
	defer a.Close()

	steps := []struct {
		method, target, body string
		want                 int
	}{
		{http.MethodPut, "/api/v1/settings/system.businessDay.day", `{"value":"2026-03-06"}`, http.StatusNoContent},
		{http.MethodPost, "/api/v1/holidays", `{"year":2026,"items":[{"day":"2026-03-09","name":"closed"}]}`, http.StatusNoContent},
		{http.MethodPost, "/api/v1/fi-accounts", `{"account_id":"A","currency":"JPY","fi_code":"0001","fi_account_id":"A-1"}`, http.StatusCreated},
		{http.MethodPost, "/api/v1/self-fi-accounts", `{"currency":"JPY","fi_code":"9999","fi_account_id":"SELF"}`, http.StatusCreated},
		{http.MethodPost, "/api/v1/jobs/advance-business-day", "", http.StatusNoContent},
	}
	for _, s := range steps {
		if rec := serveBody(t, a, s.method, s.target, s.body); rec.Code != s.want {
			t.Fatalf("%s %s: expected %d, got %d: %s", s.method, s.target, s.want, rec.Code, rec.Body.String())
		}
	}

	// Friday plus one business day skips the weekend and the Monday holiday.
	rec := serve(t, a, http.MethodGet, "/api/v1/business-day")
	if !strings.Contains(rec.Body.String(), `"2026-03-10"`) {
		t.Fatalf("expected business day 2026-03-10, got %s", rec.Body.String())
	}

	rec = serve(t, a, http.MethodGet, "/api/v1/audit-records?category=system")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"total":4`) {
		t.Fatalf("expected four audited master data changes, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestNewAppRedisBackends(t *testing.T) {
	s := miniredis.RunT(t)

	cfg := memoryConfig()
	cfg.RedisURL = fmt.Sprintf("redis://%s", s.Addr())
	cfg.HolidayCache = config.HolidayCacheRedis
	cfg.JobGuard = config.JobGuardRedis
	cfg.SchedulerInterval = time.Hour

	a, err := newApp(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("newApp failed: %v", err)
	}
	defer a.Close()

	if a.Scheduler == nil {
		t.Fatal("expected scheduler to be configured")
	}

	if rec := serve(t, a, http.MethodGet, "/ready"); rec.Code != http.StatusOK {
		t.Fatalf("expected /ready 200, got %d", rec.Code)
	}

	s.Set("job:close-withdrawals", "other-instance")
	if rec := serve(t, a, http.MethodPost, "/api/v1/jobs/close-withdrawals"); rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 while another instance holds the lease, got %d", rec.Code)
	}
}

func TestNewAppRedisUnavailable(t *testing.T) {
	s := miniredis.RunT(t)
	url := fmt.Sprintf("redis://%s", s.Addr())
	s.Close()

	cfg := memoryConfig()
	cfg.RedisURL = url
	cfg.HolidayCache = config.HolidayCacheRedis

	if _, err := newApp(context.Background(), cfg, zerolog.Nop()); err == nil {
		t.Fatal("expected error when redis is unreachable")
	}
}
