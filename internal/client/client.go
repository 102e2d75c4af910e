// Package client gives the CLI and the TUI one view of the calculator,
// whether it runs in-process or behind a gRPC server.
package client

import (
	"context"

	"github.com/msto63/mRW/internal/history"
	"github.com/msto63/mRW/internal/server"
	"github.com/msto63/mRW/internal/service"
	"github.com/msto63/mRW/internal/tools"
	coregrpc "github.com/msto63/mRW/pkg/core/grpc"
)

// Calculator lists and runs tools
type Calculator interface {
	Tools(ctx context.Context, category, query string) ([]*tools.Tool, []tools.Category, error)
	Calculate(ctx context.Context, tool string, params tools.Params) (*tools.Result, error)
	History(ctx context.Context, f history.Filter) ([]*history.Entry, error)
	ClearHistory(ctx context.Context) error
	Close() error
}

// Local runs tools in-process
type Local struct {
	svc *service.Service
}

// NewLocal wraps svc. Close closes svc.
func NewLocal(svc *service.Service) *Local {
	return &Local{svc: svc}
}

func (l *Local) Tools(_ context.Context, category, query string) ([]*tools.Tool, []tools.Category, error) {
	return l.svc.Tools(category, query), l.svc.Categories(), nil
}

func (l *Local) Calculate(ctx context.Context, tool string, params tools.Params) (*tools.Result, error) {
	return l.svc.Run(ctx, service.Request{Tool: tool, Params: params})
}

func (l *Local) History(ctx context.Context, f history.Filter) ([]*history.Entry, error) {
	return l.svc.History(ctx, f)
}

func (l *Local) ClearHistory(ctx context.Context) error {
	return l.svc.ClearHistory(ctx)
}

func (l *Local) Close() error {
	return l.svc.Close()
}

// Remote runs tools on a Calculator gRPC server
type Remote struct {
	conn *server.Client
}

// DialRemote connects to the server at addr
func DialRemote(addr string) (*Remote, error) {
	c, err := server.Dial(coregrpc.DefaultClientConfig(addr))
	if err != nil {
		return nil, err
	}
	return NewRemote(c), nil
}

// NewRemote wraps an existing connection
func NewRemote(c *server.Client) *Remote {
	return &Remote{conn: c}
}

func (r *Remote) Tools(ctx context.Context, category, query string) ([]*tools.Tool, []tools.Category, error) {
	list, err := r.conn.ListTools(ctx, category, query)
	if err != nil {
		return nil, nil, err
	}
	return list.Tools, list.Categories, nil
}

func (r *Remote) Calculate(ctx context.Context, tool string, params tools.Params) (*tools.Result, error) {
	return r.conn.Calculate(ctx, tool, params)
}

func (r *Remote) History(ctx context.Context, f history.Filter) ([]*history.Entry, error) {
	return r.conn.ListHistory(ctx, f)
}

func (r *Remote) ClearHistory(ctx context.Context) error {
	return r.conn.ClearHistory(ctx)
}

func (r *Remote) Close() error {
	return r.conn.Close()
}
