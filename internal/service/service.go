// ============================================================================
// meinRECHENWERK (mRW) - Rechenkern
// ============================================================================
//
// Package:     service
// Description: Calculation service shared by CLI, TUI, gRPC and HTTP
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package service

import (
	"context"
	"encoding/json"

	mrwerror "github.com/msto63/mRW/foundation/core/error"
	"github.com/msto63/mRW/foundation/core/errors"
	mrwlog "github.com/msto63/mRW/foundation/core/log"
	"github.com/msto63/mRW/internal/history"
	"github.com/msto63/mRW/internal/tools"
	"github.com/msto63/mRW/pkg/core/cache"
)

// Request asks for one tool run
type Request struct {
	Tool      string       `json:"tool"`
	Params    tools.Params `json:"params"`
	RequestID string       `json:"request_id,omitempty"`
}

// Config wires the service. History and Cache are optional.
type Config struct {
	Registry *tools.Registry
	History  history.Store
	Cache    cache.Store
	Logger   *mrwlog.Logger
}

// Service runs tools and records what it ran
type Service struct {
	registry *tools.Registry
	history  history.Store
	cache    cache.Store
	logger   *mrwlog.Logger
}

// NewService creates the service. A nil Registry loads the built-in catalog.
func NewService(cfg Config) (*Service, error) {
	reg := cfg.Registry
	if reg == nil {
		var err error
		if reg, err = tools.NewRegistry(); err != nil {
			return nil, err
		}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = mrwlog.Discard()
	}
	return &Service{
		registry: reg,
		history:  cfg.History,
		cache:    cfg.Cache,
		logger:   logger.WithName("service"),
	}, nil
}

// Registry returns the underlying tool registry
func (s *Service) Registry() *tools.Registry { return s.registry }

// Run executes req. Deterministic tools are served from the cache when
// possible. A failed history append is logged and does not fail the run.
func (s *Service) Run(ctx context.Context, req Request) (*tools.Result, error) {
	logger := s.logger
	if req.RequestID != "" {
		logger = logger.WithRequestID(req.RequestID)
	}

	t, err := s.registry.Get(req.Tool)
	if err != nil {
		return nil, err
	}
	timer := logger.StartTimer("calculate").WithField("tool", t.ID)

	var key string
	if s.cache != nil && t.Deterministic {
		if p, err := s.registry.Prepare(t, req.Params); err == nil {
			key = cache.Key(t.ID, p)
			if res, ok := s.cached(ctx, key); ok {
				timer.WithField("cache", "hit").Stop()
				s.record(ctx, logger, t, req.Params, res)
				return res, nil
			}
		}
	}

	res, err := s.registry.Run(ctx, t.ID, req.Params)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	if key != "" {
		if data, err := json.Marshal(res.Normalized()); err == nil {
			if err := s.cache.Set(ctx, key, string(data)); err != nil {
				logger.WarnWithErr("cache write failed", err, mrwlog.Fields{"tool": t.ID})
			}
		}
	}
	timer.Stop()
	s.record(ctx, logger, t, req.Params, res)
	return res, nil
}

func (s *Service) cached(ctx context.Context, key string) (*tools.Result, bool) {
	data, ok := s.cache.Get(ctx, key)
	if !ok {
		return nil, false
	}
	var res tools.Result
	if err := json.Unmarshal([]byte(data), &res); err != nil {
		s.logger.WarnWithErr("discarding undecodable cache entry", err, mrwlog.Fields{"key": key})
		return nil, false
	}
	return &res, true
}

func (s *Service) record(ctx context.Context, logger *mrwlog.Logger, t *tools.Tool, params tools.Params, res *tools.Result) {
	if s.history == nil {
		return
	}
	e := &history.Entry{
		Tool:   t.ID,
		Path:   t.Path,
		Name:   t.Name,
		Type:   t.Category,
		Result: res.Summary,
		Params: params.Clone(),
	}
	if err := s.history.Append(ctx, e); err != nil {
		logger.WarnWithErr("history append failed", err, mrwlog.Fields{"tool": t.ID})
	}
}

// Tools lists the catalog, optionally restricted to a category and
// ranked by a search query
func (s *Service) Tools(category, query string) []*tools.Tool {
	if query == "" {
		return s.registry.List(category)
	}
	found := s.registry.Search(query)
	if category == "" {
		return found
	}
	out := found[:0:0]
	for _, t := range found {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Tool returns a single catalog entry
func (s *Service) Tool(idOrPath string) (*tools.Tool, error) {
	return s.registry.Get(idOrPath)
}

// Categories returns the catalog categories
func (s *Service) Categories() []tools.Category {
	return s.registry.Categories()
}

// Search ranks tools by a fuzzy query
func (s *Service) Search(query string) []*tools.Tool {
	return s.registry.Search(query)
}

// HistoryEnabled reports whether a history store is configured
func (s *Service) HistoryEnabled() bool { return s.history != nil }

// History returns recorded calculations, newest first
func (s *Service) History(ctx context.Context, f history.Filter) ([]*history.Entry, error) {
	if s.history == nil {
		return nil, errHistoryDisabled()
	}
	return s.history.List(ctx, f)
}

// ClearHistory removes all recorded calculations
func (s *Service) ClearHistory(ctx context.Context) error {
	if s.history == nil {
		return errHistoryDisabled()
	}
	if err := s.history.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info("history cleared")
	return nil
}

// Close releases the history store and cache
func (s *Service) Close() error {
	var first error
	if s.history != nil {
		first = s.history.Close()
	}
	if s.cache != nil {
		if err := s.cache.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func errHistoryDisabled() error {
	return errors.NewErrorBuilder(errors.ModuleHistory).
		Operation("history").
		Code(mrwerror.CodeServiceUnavailable).
		Message("history is disabled").
		Build()
}
