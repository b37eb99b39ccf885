// Package metric provides Prometheus metrics for authcore.
package metric

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRegistryExposesCounters(t *testing.T) {
	reg := NewRegistry()

	reg.UsersRegistered.Inc()
	reg.LoginsTotal.WithLabelValues("success").Inc()
	reg.LoginsTotal.WithLabelValues("bad_password").Inc()
	reg.RequestsTotal.WithLabelValues("POST", "/signup", "201").Inc()
	reg.RequestDuration.WithLabelValues("POST", "/signup").Observe(0.02)

	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		`authcore_users_registered_total 1`,
		`authcore_logins_total{result="success"} 1`,
		`authcore_logins_total{result="bad_password"} 1`,
		`authcore_http_requests_total{method="POST",path="/signup",status="201"} 1`,
		`authcore_http_request_duration_seconds_count{method="POST",path="/signup"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("exposition missing %q", want)
		}
	}
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	a.UsersRegistered.Inc()

	rec := httptest.NewRecorder()
	b.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if strings.Contains(rec.Body.String(), "authcore_users_registered_total 1") {
		t.Error("counter from one registry leaked into another")
	}
}
