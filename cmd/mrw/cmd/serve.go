package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	mrwlog "github.com/msto63/mRW/foundation/core/log"
	"github.com/msto63/mRW/internal/gateway"
	"github.com/msto63/mRW/internal/history"
	"github.com/msto63/mRW/internal/server"
	"github.com/msto63/mRW/internal/service"
	coregrpc "github.com/msto63/mRW/pkg/core/grpc"
	"github.com/msto63/mRW/pkg/core/health"
	"github.com/msto63/mRW/pkg/core/version"
)

const shutdownTimeout = 10 * time.Second

var (
	serveGRPCPort int
	serveHTTPPort int
	serveNoHTTP   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Startet gRPC-Server und HTTP-Gateway",
	Long: `Startet den Rechenkern als Dienst.

  gRPC  mrw.calc.v1.Calculator (default :9300)
  HTTP  /api/v1 mit JSON und WebSocket (default :8380)

Beispiele:
  mrw serve
  mrw serve --grpc-port 9400 --http-port 8080
  mrw serve --no-http`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVar(&serveGRPCPort, "grpc-port", 0, "gRPC-Port (überschreibt die Config)")
	serveCmd.Flags().IntVar(&serveHTTPPort, "http-port", 0, "HTTP-Port (überschreibt die Config)")
	serveCmd.Flags().BoolVar(&serveNoHTTP, "no-http", false, "Nur gRPC starten")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if serveGRPCPort > 0 {
		appConfig.GRPC.Port = serveGRPCPort
	}
	if serveHTTPPort > 0 {
		appConfig.HTTP.Port = serveHTTPPort
	}
	if err := appConfig.Validate(); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	svc, err := buildService(ctx, appConfig, logger)
	if err != nil {
		return err
	}
	defer svc.Close()

	grpcCfg := coregrpc.DefaultServerConfig()
	grpcCfg.Host = appConfig.GRPC.Host
	grpcCfg.Port = appConfig.GRPC.Port
	grpcCfg.EnableReflection = appConfig.GRPC.Reflection
	grpcCfg.Logger = logger
	grpcServer := server.New(svc, grpcCfg)

	grpcLis, err := net.Listen("tcp", appConfig.GRPCAddress())
	if err != nil {
		return fmt.Errorf("gRPC-Port %d: %w", appConfig.GRPC.Port, err)
	}

	errCh := make(chan error, 2)
	go func() { errCh <- grpcServer.Serve(grpcLis) }()

	var gw *gateway.Gateway
	if !serveNoHTTP {
		httpLis, err := net.Listen("tcp", appConfig.HTTPAddress())
		if err != nil {
			grpcServer.Stop(context.Background())
			return fmt.Errorf("HTTP-Port %d: %w", appConfig.HTTP.Port, err)
		}
		gw = gateway.New(svc, appConfig.HTTP,
			gateway.WithLogger(logger),
			gateway.WithHealth(healthRegistry(svc)),
		)
		go func() { errCh <- gw.Serve(httpLis) }()
	}

	fmt.Printf("meinRECHENWERK %s\n", version.Platform)
	fmt.Printf("  gRPC  %s\n", appConfig.GRPCAddress())
	if gw != nil {
		fmt.Printf("  HTTP  http://%s%s\n", appConfig.HTTPAddress(), gateway.APIPrefix)
	}
	fmt.Println("Ctrl+C zum Beenden")

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err = <-errCh:
		if err != nil {
			logger.ErrorWithErr("server stopped", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if gw != nil {
		if serr := gw.Shutdown(shutdownCtx); serr != nil {
			logger.WarnWithErr("HTTP shutdown", serr)
		}
	}
	grpcServer.Stop(shutdownCtx)
	logger.Info("stopped", mrwlog.Fields{"version": version.Platform})
	return err
}

// healthRegistry reports the history store and the gRPC listener
func healthRegistry(svc *service.Service) *health.Registry {
	reg := health.NewRegistry("mrw", version.Platform)
	reg.Register(health.AlwaysHealthy("http"))
	reg.Register(health.TCPCheck("grpc", grpcProbeAddress(), 2*time.Second))
	if svc.HistoryEnabled() {
		reg.Register(health.ErrorCheck("history", func(ctx context.Context) error {
			_, err := svc.History(ctx, history.Filter{Limit: 1})
			return err
		}))
	}
	return reg
}

// grpcProbeAddress dials loopback when the server binds all interfaces
func grpcProbeAddress() string {
	host := appConfig.GRPC.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, fmt.Sprint(appConfig.GRPC.Port))
}
