package server

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/msto63/mRW/internal/history"
	"github.com/msto63/mRW/internal/tools"
	coregrpc "github.com/msto63/mRW/pkg/core/grpc"
)

// Client calls a remote Calculator service
type Client struct {
	conn    *grpc.ClientConn
	timeout time.Duration
}

// Dial connects to a Calculator server
func Dial(cfg coregrpc.ClientConfig, opts ...grpc.DialOption) (*Client, error) {
	conn, err := coregrpc.Dial(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, timeout: cfg.Timeout}, nil
}

// NewClient wraps an existing connection
func NewClient(conn *grpc.ClientConn) *Client {
	return &Client{conn: conn}
}

// Close closes the connection
func (c *Client) Close() error {
	return c.conn.Close()
}

// invoke calls method and restores foundation errors from the status and
// the error-code trailer
func (c *Client) invoke(ctx context.Context, method string, in, out proto.Message) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	var trailer metadata.MD
	err := c.conn.Invoke(ctx, fullMethod(method), in, out, grpc.Trailer(&trailer))
	return coregrpc.FromStatus(err, trailer)
}

// ListTools returns the remote catalog
func (c *Client) ListTools(ctx context.Context, category, query string) (*ToolList, error) {
	req, err := structpb.NewStruct(map[string]interface{}{"category": category, "query": query})
	if err != nil {
		return nil, err
	}
	out := &structpb.Struct{}
	if err := c.invoke(ctx, "ListTools", req, out); err != nil {
		return nil, err
	}
	var list ToolList
	if err := fromStruct(out, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Calculate runs a tool remotely
func (c *Client) Calculate(ctx context.Context, tool string, params tools.Params) (*tools.Result, error) {
	p := make(map[string]interface{}, len(params))
	for k, v := range params {
		p[k] = v
	}
	req, err := structpb.NewStruct(map[string]interface{}{"tool": tool, "params": p})
	if err != nil {
		return nil, err
	}
	out := &structpb.Struct{}
	if err := c.invoke(ctx, "Calculate", req, out); err != nil {
		return nil, err
	}
	var res tools.Result
	if err := fromStruct(out, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListHistory returns remote history entries, newest first
func (c *Client) ListHistory(ctx context.Context, f history.Filter) ([]*history.Entry, error) {
	req, err := structpb.NewStruct(map[string]interface{}{
		"limit": f.Limit,
		"type":  f.Type,
		"tool":  f.Tool,
	})
	if err != nil {
		return nil, err
	}
	out := &structpb.Struct{}
	if err := c.invoke(ctx, "ListHistory", req, out); err != nil {
		return nil, err
	}
	var list HistoryList
	if err := fromStruct(out, &list); err != nil {
		return nil, err
	}
	return list.Entries, nil
}

// ClearHistory deletes the remote history
func (c *Client) ClearHistory(ctx context.Context) error {
	return c.invoke(ctx, "ClearHistory", &emptypb.Empty{}, &emptypb.Empty{})
}
