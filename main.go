package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log/level"

	"gpa-tracker/app/catalog"
	"gpa-tracker/app/config"
	"gpa-tracker/app/csvimport"
	"gpa-tracker/app/logging"
	"gpa-tracker/app/routes"
	"gpa-tracker/app/services"
	"gpa-tracker/app/session"
)

func main() {
	cfg, warnings := config.LoadEnv()

	logger, err := logging.New("gpa-tracker", cfg.Log.Dir, cfg.Log.Level)
	if err != nil {
		logger = logging.NewWithWriter(os.Stdout, cfg.Log.Level)
		level.Warn(logger).Log("msg", "file logging disabled", "err", err)
	}
	cfg.Report(logger, warnings)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		level.Error(logger).Log("msg", "failed to load catalog", "path", cfg.CatalogPath, "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log("msg", "catalog loaded", "semesters", len(cat.Semesters()), "latest", cat.Latest())

	store := session.NewStore(cat, cfg.Session.TTL)

	// Start background scheduler
	scheduler, err := services.StartScheduler(store, cfg.Session.SweepSchedule, logger)
	if err != nil {
		level.Error(logger).Log("msg", "failed to start scheduler", "err", err)
		os.Exit(1)
	}

	importer := &services.Importer{
		Source:       csvimport.Source{Location: cfg.Import.Source, Timeout: cfg.Import.Timeout},
		DismissAfter: cfg.NoticeDismiss,
		Logger:       logger,
	}

	app := routes.NewApp(routes.Options{
		Store:       store,
		Importer:    importer,
		Logger:      logger,
		StaticDir:   cfg.StaticDir,
		CORSOrigins: cfg.CORSOrigins,
		AccessLog:   true,
	})

	// Start server
	go func() {
		level.Info(logger).Log("msg", "server starting", "addr", ":"+cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			level.Error(logger).Log("msg", "server stopped", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	<-scheduler.Stop().Done()
	level.Info(logger).Log("msg", "server shut down", "sessions", store.Len())
}
