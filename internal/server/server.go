// ============================================================================
// meinRECHENWERK (mRW) - Rechenkern
// ============================================================================
//
// Package:     server
// Description: gRPC transport for the calculation service
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

// Package server exposes the calculation service as the gRPC service
// mrw.calc.v1.Calculator. Messages are google.protobuf.Struct documents so
// no generated code is required.
package server

import (
	"context"
	"net"

	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	mrwlog "github.com/msto63/mRW/foundation/core/log"
	"github.com/msto63/mRW/internal/history"
	"github.com/msto63/mRW/internal/service"
	coregrpc "github.com/msto63/mRW/pkg/core/grpc"
)

// Server is the Calculator gRPC server
type Server struct {
	service *service.Service
	grpc    *coregrpc.Server
	logger  *mrwlog.Logger
}

// New creates the server and registers the Calculator service
func New(svc *service.Service, cfg coregrpc.ServerConfig) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = mrwlog.Discard()
		cfg.Logger = logger
	}
	s := &Server{
		service: svc,
		grpc:    coregrpc.NewServer(cfg),
		logger:  logger.WithName("calculator"),
	}
	s.grpc.GRPCServer().RegisterService(&CalculatorServiceDesc, s)
	s.grpc.SetServing(ServiceName)
	return s
}

// Serve serves on lis until Stop
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("gRPC server listening", mrwlog.Fields{"address": lis.Addr().String()})
	return s.grpc.Serve(lis)
}

// Start listens on the configured address and serves
func (s *Server) Start() error {
	s.logger.Info("gRPC server starting", mrwlog.Fields{"address": s.grpc.Address()})
	return s.grpc.Start()
}

// Stop gracefully stops the server, forcing it when ctx is done
func (s *Server) Stop(ctx context.Context) {
	s.grpc.Stop(ctx)
}

// Address returns the listen address
func (s *Server) Address() string {
	return s.grpc.Address()
}

// ListTools returns the catalog. Optional request members: category, query.
func (s *Server) ListTools(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return toStruct(ToolList{
		Tools:      s.service.Tools(stringField(req, "category"), stringField(req, "query")),
		Categories: s.service.Categories(),
	})
}

// Calculate runs {tool, params} and returns {tool, summary, fields}
func (s *Server) Calculate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	res, err := s.service.Run(ctx, service.Request{
		Tool:      stringField(req, "tool"),
		Params:    paramsField(req, "params"),
		RequestID: coregrpc.GetRequestID(ctx),
	})
	if err != nil {
		return nil, err
	}
	return resultToStruct(res)
}

// ListHistory returns {entries}. Optional request members: limit, type, tool.
func (s *Server) ListHistory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := history.Filter{
		Type: stringField(req, "type"),
		Tool: stringField(req, "tool"),
	}
	if v, ok := req.GetFields()["limit"]; ok {
		f.Limit = int(v.GetNumberValue())
	}
	entries, err := s.service.History(ctx, f)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*history.Entry{}
	}
	return toStruct(HistoryList{Entries: entries})
}

// ClearHistory deletes all history entries
func (s *Server) ClearHistory(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if err := s.service.ClearHistory(ctx); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}
