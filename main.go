package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-riskmonitor/config"
	"go-riskmonitor/controller"
	"go-riskmonitor/cronjobs"
	"go-riskmonitor/loader"
	"go-riskmonitor/routes"
)

func main() {
	// Load .env file, if there is one. All config has defaults, so a
	// missing file just means the plain environment is used.
	envErr := godotenv.Load()

	cfg := config.Load()

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	log := zap.S()

	if envErr != nil {
		log.Debugw("no .env file, using environment", "error", envErr)
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Load the dataset once. A failed load is logged once and the server
	// keeps going with an empty table: the dashboard must stay renderable
	// with zero KPIs and empty charts.
	ds, err := loader.Load(cfg.DataPath)
	if err != nil {
		log.Errorw("dataset load failed, serving empty dashboard", "error", err)
	} else {
		log.Infow("dataset loaded", "path", cfg.DataPath, "rows", len(ds))
	}

	// Precompute the global aggregates and the regression line exactly
	// once. The context is read-only from here on.
	appCtx := controller.NewContext(ds, cfg.GlobalTrendFallback)
	if !appCtx.Line.OK {
		log.Warnw("regression not fit, scatter renders without overlay", "rows", len(ds))
	}

	heartbeat, err := cronjobs.InitCronJobs(appCtx, cfg.HeartbeatSpec)
	if err != nil {
		log.Errorw("failed to schedule heartbeat", "spec", cfg.HeartbeatSpec, "error", err)
	} else {
		defer heartbeat.Stop()
	}

	r := routes.SetupRouter(appCtx)
	log.Infow("starting server", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalw("failed to start server", "error", err)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
