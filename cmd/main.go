// @title        Pump Console API
// @version      1.0
// @description  Operator console for a water pump: toggles, run schedules and tank levels.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pump_console/internal/config"
	"pump_console/internal/console"
	"pump_console/internal/handlers"
	"pump_console/internal/logger"
	"pump_console/internal/metrics"
	"pump_console/internal/repository"
	"pump_console/internal/repository/db"
	"pump_console/internal/server"
	"pump_console/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.Load("configs", ".")
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Encoding, nil)
	defer func() { _ = log.Sync() }()

	database, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// wire dependencies
	repos := repository.NewRepository(database)
	if err := repos.TankRepo.Seed(ctx, cfg.Tanks); err != nil {
		log.Fatalw("failed to seed tanks", "err", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.New(reg)

	session := console.New(console.Options{
		Control: cfg.Console.ControlState(),
		Pump:    cfg.PumpRating(),
	})
	loop := console.NewLoop(session, cfg.Console.QueueSize)
	go loop.Run(ctx)

	services := service.NewService(loop, repos, rec, log, service.FeedParams{
		Spec:               cfg.Simulator.Spec,
		FlowLPerMin:        cfg.Simulator.FlowLPerMin,
		ConsumptionLPerMin: cfg.Simulator.ConsumptionLPerMin,
	})
	if err := services.Simulator.Sync(ctx); err != nil {
		log.Fatalw("failed to load tank readings", "err", err)
	}
	if cfg.Simulator.Enabled {
		go func() {
			if err := services.Simulator.Run(ctx); err != nil {
				log.Errorw("tank feed stopped", "err", err)
			}
		}()
	}

	apiHandler := handlers.NewHandler(services, log.Named("http"), reg)

	srv := server.New(server.Timeouts{
		ReadHeader: cfg.Server.ReadHeaderTimeout,
		Write:      cfg.Server.WriteTimeout,
		Idle:       cfg.Server.IdleTimeout,
	})
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(cancel, srv, cfg, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, cfg *config.Config, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
