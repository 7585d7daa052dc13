package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/payforms/internal/buildinfo"
	"github.com/dmitrijs2005/payforms/internal/client/api"
	"github.com/dmitrijs2005/payforms/internal/client/cli"
	"github.com/dmitrijs2005/payforms/internal/client/config"
	"github.com/dmitrijs2005/payforms/internal/client/services"
	"github.com/dmitrijs2005/payforms/internal/client/session"
	"github.com/dmitrijs2005/payforms/internal/client/storage"
	"github.com/dmitrijs2005/payforms/internal/client/tui"
	"github.com/dmitrijs2005/payforms/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()

	ctx := context.Background()
	if sigs := shutdownSignals(cfg.UI); len(sigs) > 0 {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, sigs...)
		defer stop()
	}

	logger, closer := logging.Setup(logging.SetupParams{FileName: cfg.LogFile, Level: cfg.LogLevel, JSON: cfg.LogJSON})
	defer closer.Close()

	repos, err := storage.InitDatabase(ctx, cfg.StateDBPath)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer repos.Close()

	store := session.NewStore(repos.DB)
	auth := services.NewAuthService(store, logger)
	if err := auth.Restore(ctx); err != nil {
		log.Fatalf("%v", err)
	}

	client := api.NewClient(cfg.ServerBaseURL, store, logger, api.WithTimeout(cfg.RequestTimeout))

	logger.Info(ctx, "client started", "server", cfg.ServerBaseURL, "ui", cfg.UI, "version", buildinfo.Version)

	switch cfg.UI {
	case config.UITUI:
		if err := tui.Run(ctx, tui.NewApp(ctx, auth, client, logger)); err != nil {
			logger.Error(ctx, "tui exited", "err", err)
		}
	default:
		cli.NewApp(cfg, auth, client, logger, os.Stdin, os.Stdout).Run(ctx)
	}
}

// shutdownSignals lists the signals that cancel the root context. The REPL
// blocks in a line read that a cancelled context cannot interrupt, so there
// the default action (terminate) is kept.
func shutdownSignals(ui string) []os.Signal {
	if ui != config.UITUI {
		return nil
	}
	return []os.Signal{os.Interrupt, syscall.SIGTERM}
}
