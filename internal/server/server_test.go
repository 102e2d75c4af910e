package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	"github.com/msto63/mRW/foundation/core/errors"
	"github.com/msto63/mRW/internal/history"
	"github.com/msto63/mRW/internal/service"
	"github.com/msto63/mRW/internal/tools"
	coregrpc "github.com/msto63/mRW/pkg/core/grpc"
)

func newTestService(t *testing.T) *service.Service {
	t.Helper()
	reg, err := tools.NewRegistry(tools.WithClock(func() time.Time {
		return time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	}))
	if err != nil {
		t.Fatalf("NewRegistry error = %v", err)
	}
	svc, err := service.NewService(service.Config{Registry: reg, History: history.NewMemoryStore(10)})
	if err != nil {
		t.Fatalf("NewService error = %v", err)
	}
	return svc
}

func startServer(t *testing.T, svc *service.Service) *Client {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := New(svc, coregrpc.DefaultServerConfig())
	go srv.Serve(lis)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Stop(ctx)
	})

	client, err := Dial(coregrpc.DefaultClientConfig("passthrough:///bufnet"),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	if err != nil {
		t.Fatalf("Dial error = %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestCalculateMatchesInProcess(t *testing.T) {
	svc := newTestService(t)
	client := startServer(t, svc)
	ctx := context.Background()

	params := tools.Params{"last_period": "2026-09-01"}
	local, err := svc.Run(ctx, service.Request{Tool: "due-date", Params: params})
	if err != nil {
		t.Fatalf("local Run error = %v", err)
	}
	remote, err := client.Calculate(ctx, "due-date", params)
	if err != nil {
		t.Fatalf("Calculate error = %v", err)
	}
	if remote.Summary != local.Summary || remote.Tool != "due-date" {
		t.Errorf("remote = %q (%s), want %q", remote.Summary, remote.Tool, local.Summary)
	}
	if diff := cmp.Diff(local.Map(), remote.Map()); diff != "" {
		t.Errorf("remote fields mismatch (-local +remote):\n%s", diff)
	}
}

func TestCalculateErrors(t *testing.T) {
	client := startServer(t, newTestService(t))
	ctx := context.Background()

	_, err := client.Calculate(ctx, "bmi", tools.Params{"weight": "schwer", "height": "180"})
	if !errors.IsParseError(err) {
		t.Errorf("Calculate(bad number) error = %v, want ParseError", err)
	}
	_, err = client.Calculate(ctx, "quadratic", tools.Params{"a": "0", "b": "1", "c": "1"})
	if !errors.IsInvalidArgument(err) {
		t.Errorf("Calculate(a=0) error = %v, want InvalidArgument", err)
	}
	_, err = client.Calculate(ctx, "nope", nil)
	if !errors.IsNotFound(err) {
		t.Errorf("Calculate(nope) error = %v, want NotFound", err)
	}
}

func TestListToolsAndHistory(t *testing.T) {
	client := startServer(t, newTestService(t))
	ctx := context.Background()

	list, err := client.ListTools(ctx, "fun", "")
	if err != nil {
		t.Fatalf("ListTools error = %v", err)
	}
	var ids []string
	for _, tool := range list.Tools {
		ids = append(ids, tool.ID)
	}
	if diff := cmp.Diff([]string{"dice", "coin", "wheel"}, ids); diff != "" {
		t.Errorf("ListTools(fun) mismatch (-want +got):\n%s", diff)
	}
	if len(list.Categories) != 6 {
		t.Errorf("ListTools categories = %d, want 6", len(list.Categories))
	}

	if _, err := client.Calculate(ctx, "gcd", tools.Params{"values": "12 18"}); err != nil {
		t.Fatalf("Calculate error = %v", err)
	}
	entries, err := client.ListHistory(ctx, history.Filter{Limit: 5})
	if err != nil {
		t.Fatalf("ListHistory error = %v", err)
	}
	if len(entries) != 1 || entries[0].Tool != "gcd" || entries[0].Result != "ggT = 6" {
		t.Errorf("ListHistory = %+v", entries)
	}

	if err := client.ClearHistory(ctx); err != nil {
		t.Fatalf("ClearHistory error = %v", err)
	}
	entries, err = client.ListHistory(ctx, history.Filter{})
	if err != nil || len(entries) != 0 {
		t.Errorf("ListHistory after clear = %v, %v", entries, err)
	}
}
