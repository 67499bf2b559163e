package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/HendryAvila/sheraa-eligibility/internal/httpapi"
	sheraaserver "github.com/HendryAvila/sheraa-eligibility/internal/server"
	"github.com/HendryAvila/sheraa-eligibility/internal/session"
	"github.com/HendryAvila/sheraa-eligibility/internal/tools"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newRegistry loads the catalog and starts the idle-session janitor,
// which stops with ctx.
func (a *app) newRegistry(ctx context.Context) (*session.Registry, error) {
	cat, err := loadCheckedCatalog(a.cfg.Catalog, a.logger)
	if err != nil {
		return nil, err
	}
	reg := session.NewRegistry(cat, a.logger.Named("session"))
	go reg.RunJanitor(ctx, a.cfg.GetIdleTTL(), a.cfg.GetSweepInterval())
	return reg, nil
}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio transport)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			reg, err := a.newRegistry(ctx)
			if err != nil {
				return err
			}
			s := sheraaserver.New(reg, a.logger)
			a.logger.Info("serving MCP over stdio")
			return server.ServeStdio(s)
		},
	}
}

func newHTTPCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Start the REST API for web front ends",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			reg, err := a.newRegistry(ctx)
			if err != nil {
				return err
			}
			reg.SetObserver(tools.NewLogObserver(a.logger.Named("wizard")))

			if addr == "" {
				addr = a.cfg.HTTP.Addr
			}
			srv := httpapi.NewServer(addr, httpapi.RouterConfig{
				SessionHandler: httpapi.NewSessionHandler(reg),
				CatalogHandler: httpapi.NewCatalogHandler(reg.Catalog()),
				HealthHandler:  httpapi.NewHealthHandler(),
				AllowOrigins:   a.cfg.HTTP.AllowOrigins,
				Logger:         a.logger.Named("http"),
			})
			a.logger.Info("serving HTTP", zap.String("addr", addr))
			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return cmd
}
