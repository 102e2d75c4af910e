package health

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func fixed(status Status) func(ctx context.Context) CheckResult {
	return func(ctx context.Context) CheckResult {
		return CheckResult{Status: status}
	}
}

func TestNewChecker(t *testing.T) {
	checker := NewChecker("catalog", func(ctx context.Context) CheckResult {
		return CheckResult{Status: StatusHealthy, Message: "52 tools"}
	})

	if checker.Name() != "catalog" {
		t.Errorf("Name() = %v, want catalog", checker.Name())
	}
	res := checker.Check(context.Background())
	if res.Status != StatusHealthy || res.Message != "52 tools" {
		t.Errorf("Check() = %+v", res)
	}
}

func TestRegistry_OverallStatus(t *testing.T) {
	tests := []struct {
		name   string
		checks map[string]Status
		want   Status
	}{
		{"empty", nil, StatusHealthy},
		{"all healthy", map[string]Status{"http": StatusHealthy, "grpc": StatusHealthy}, StatusHealthy},
		{"one degraded", map[string]Status{"http": StatusHealthy, "cache": StatusDegraded}, StatusDegraded},
		{"unhealthy wins", map[string]Status{"cache": StatusDegraded, "history": StatusUnhealthy}, StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry("mrw", "1.0.0")
			for name, status := range tt.checks {
				reg.RegisterFunc(name, fixed(status))
			}
			report := reg.Check(context.Background())
			if report.Status != tt.want {
				t.Errorf("Status = %v, want %v", report.Status, tt.want)
			}
			if len(report.Checks) != len(tt.checks) {
				t.Errorf("len(Checks) = %d, want %d", len(report.Checks), len(tt.checks))
			}
		})
	}
}

func TestRegistry_ReportFields(t *testing.T) {
	reg := NewRegistry("mrw", "1.2.3")
	reg.RegisterFunc("history", fixed(StatusHealthy))

	report := reg.Check(context.Background())
	if report.Service != "mrw" || report.Version != "1.2.3" {
		t.Errorf("report = %s %s, want mrw 1.2.3", report.Service, report.Version)
	}
	res := report.Checks[0]
	if res.Name != "history" {
		t.Errorf("Name = %q, want history (filled from checker)", res.Name)
	}
	if res.Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	reg := NewRegistry("mrw", "1.0.0")
	reg.RegisterFunc("cache", fixed(StatusUnhealthy))
	reg.RegisterFunc("cache", fixed(StatusHealthy))

	report := reg.Check(context.Background())
	if len(report.Checks) != 1 || report.Status != StatusHealthy {
		t.Errorf("report = %+v, want one healthy check", report)
	}
}

func TestRegistry_ConcurrentChecks(t *testing.T) {
	reg := NewRegistry("mrw", "1.0.0")

	var counter int32
	for i := 0; i < 5; i++ {
		reg.RegisterFunc("check"+string(rune('A'+i)), func(ctx context.Context) CheckResult {
			atomic.AddInt32(&counter, 1)
			time.Sleep(10 * time.Millisecond)
			return CheckResult{Status: StatusHealthy}
		})
	}

	start := time.Now()
	report := reg.Check(context.Background())
	elapsed := time.Since(start)

	if atomic.LoadInt32(&counter) != 5 {
		t.Errorf("counter = %v, want 5", counter)
	}
	if elapsed > 100*time.Millisecond {
		t.Errorf("elapsed = %v, checks did not run concurrently", elapsed)
	}
	if len(report.Checks) != 5 {
		t.Errorf("len(Checks) = %v, want 5", len(report.Checks))
	}
}

func TestRegistry_SortedChecks(t *testing.T) {
	reg := NewRegistry("mrw", "1.0.0")
	for _, name := range []string{"history", "cache", "catalog"} {
		reg.Register(AlwaysHealthy(name))
	}

	var got []string
	for _, c := range reg.Check(context.Background()).Checks {
		got = append(got, c.Name)
	}
	want := []string{"cache", "catalog", "history"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("check order mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_Uptime(t *testing.T) {
	reg := NewRegistry("mrw", "1.0.0")
	time.Sleep(10 * time.Millisecond)

	if up := reg.Check(context.Background()).Uptime; up < 10*time.Millisecond {
		t.Errorf("Uptime = %v, want >= 10ms", up)
	}
}

func TestAlwaysHealthy(t *testing.T) {
	checker := AlwaysHealthy("http")
	if checker.Name() != "http" {
		t.Errorf("Name() = %v, want http", checker.Name())
	}
	if res := checker.Check(context.Background()); res.Status != StatusHealthy {
		t.Errorf("Status = %v, want healthy", res.Status)
	}
}

func TestTCPCheck(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen error = %v", err)
	}
	addr := ln.Addr().String()

	checker := TCPCheck("redis", addr, time.Second)
	res := checker.Check(context.Background())
	if res.Status != StatusHealthy {
		t.Errorf("Status = %v (%s), want healthy", res.Status, res.Message)
	}
	if res.Details["address"] != addr {
		t.Errorf("Details[address] = %v, want %s", res.Details["address"], addr)
	}

	ln.Close()
	res = checker.Check(context.Background())
	if res.Status != StatusDegraded {
		t.Errorf("Status after close = %v, want degraded", res.Status)
	}
}

func TestErrorCheck(t *testing.T) {
	ok := ErrorCheck("history", func(ctx context.Context) error { return nil })
	if r := ok.Check(context.Background()); r.Status != StatusHealthy {
		t.Errorf("Status = %v, want healthy", r.Status)
	}

	failing := ErrorCheck("history", func(ctx context.Context) error { return errors.New("database is locked") })
	r := failing.Check(context.Background())
	if r.Status != StatusUnhealthy || r.Message != "database is locked" {
		t.Errorf("Check = %+v, want unhealthy with message", r)
	}
}
