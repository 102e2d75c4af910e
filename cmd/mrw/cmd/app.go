package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	mrwlog "github.com/msto63/mRW/foundation/core/log"
	"github.com/msto63/mRW/internal/client"
	"github.com/msto63/mRW/internal/history"
	"github.com/msto63/mRW/internal/service"
	"github.com/msto63/mRW/internal/tools"
	"github.com/msto63/mRW/pkg/core/cache"
	"github.com/msto63/mRW/pkg/core/config"
)

// buildService wires history and cache from cfg. A cache that cannot be
// reached is logged and skipped.
func buildService(ctx context.Context, cfg *config.Config, logger *mrwlog.Logger) (*service.Service, error) {
	var hist history.Store
	if cfg.History.IsEnabled() {
		var err error
		hist, err = history.New(history.Config{
			Backend:    cfg.History.Backend,
			Path:       cfg.History.Path,
			MaxEntries: cfg.History.MaxEntries,
		})
		if err != nil {
			return nil, err
		}
	}

	var store cache.Store
	if cfg.Cache.Enabled {
		var err error
		store, err = cache.New(ctx, cache.Config{
			Backend:   cfg.Cache.Backend,
			RedisAddr: cfg.Cache.RedisAddr,
			TTL:       cfg.Cache.TTL.Duration,
			MaxItems:  cfg.Cache.MaxItems,
		})
		if err != nil {
			logger.WarnWithErr("result cache disabled", err, mrwlog.Fields{"backend": cfg.Cache.Backend})
			store = nil
		}
	}

	svc, err := service.NewService(service.Config{History: hist, Cache: store, Logger: logger})
	if err != nil {
		if hist != nil {
			hist.Close()
		}
		if store != nil {
			store.Close()
		}
		return nil, err
	}
	return svc, nil
}

// newCalculator returns the remote calculator when --remote is set and
// the in-process one otherwise
func newCalculator(ctx context.Context) (client.Calculator, error) {
	if remoteAddr != "" {
		return client.DialRemote(remoteAddr)
	}
	svc, err := buildService(ctx, appConfig, logger)
	if err != nil {
		return nil, err
	}
	return client.NewLocal(svc), nil
}

var labelStyle = lipgloss.NewStyle().Width(26)

// printResult writes res as text or, with asJSON, as a JSON document
func printResult(w io.Writer, res *tools.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"tool":    res.Tool,
			"summary": res.Summary,
			"values":  res.Map(),
		})
	}
	fmt.Fprintln(w, res.Summary)
	fmt.Fprintln(w)
	for _, f := range res.Fields {
		fmt.Fprintf(w, "  %s %s\n", labelStyle.Render(f.Label+":"), tools.FormatValue(f.Value))
	}
	return nil
}
