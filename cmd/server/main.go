package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	reportapp "github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/application/report"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/infrastructure/cache"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/infrastructure/config"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/infrastructure/logger"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/infrastructure/persistence"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/interfaces/http/handler"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/interfaces/http/middleware"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting MotoCare backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	saleRepo := persistence.NewGormSaleRepository(db.DB)
	workOrderRepo := persistence.NewGormWorkOrderRepository(db.DB)
	partRepo := persistence.NewGormPartRepository(db.DB)
	ledgerRepo := persistence.NewGormLedgerRepository(db.DB)

	serviceOpts := []reportapp.Option{
		reportapp.WithVATRate(decimal.NewFromFloat(cfg.Report.VATRate)),
		reportapp.WithLocation(cfg.Report.Location()),
	}

	if cfg.Redis.Enabled {
		summaryCache, err := cache.NewRedisSummaryCache(&cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := summaryCache.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		serviceOpts = append(serviceOpts, reportapp.WithCache(summaryCache, cfg.Report.SummaryCacheTTL))
		log.Info("Summary cache enabled", zap.String("addr", cfg.Redis.Addr()))
	}

	reportService := reportapp.NewFinancialReportService(
		saleRepo,
		workOrderRepo,
		partRepo,
		ledgerRepo,
		log.Named("report"),
		serviceOpts...,
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		engine.Use(middleware.CORS(cfg.HTTP.CORSAllowOrigins))
	}

	r := router.NewRouter(engine)
	r.Register(handler.NewFinancialReportHandler(reportService, cfg.Report.Location()))
	r.Register(handler.NewSystemHandler(db, version))
	r.Setup()

	// Plain liveness probe outside the versioned API.
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
