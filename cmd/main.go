package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"gitlab.com/dsa-judge.net/internal/adapter/crypto"
	"gitlab.com/dsa-judge.net/internal/adapter/judge0"
	"gitlab.com/dsa-judge.net/internal/adapter/logging"
	"gitlab.com/dsa-judge.net/internal/adapter/metrics"
	"gitlab.com/dsa-judge.net/internal/adapter/postgres/problemrepository"
	"gitlab.com/dsa-judge.net/internal/adapter/postgres/submissionrepository"
	"gitlab.com/dsa-judge.net/internal/adapter/redis/runcache"
	"gitlab.com/dsa-judge.net/internal/config"
	"gitlab.com/dsa-judge.net/internal/core/services/judge"
	"gitlab.com/dsa-judge.net/internal/core/services/problem"
	"gitlab.com/dsa-judge.net/internal/core/services/run"
	"gitlab.com/dsa-judge.net/internal/core/services/submission"
	"gitlab.com/dsa-judge.net/internal/core/services/verification"
	logger2 "gitlab.com/dsa-judge.net/internal/global/logger"
	http2 "gitlab.com/dsa-judge.net/internal/http"
)

const defaultEnvironment = "local"

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sysCfg := config.NewSystemConfig()
	logger := logging.NewZapLogger(sysCfg.DebugMode)
	logger2.Logger = logger
	defer logger.Sync()

	logger.Info("Starting judge service", "service", sysCfg.HTTPConfig.ServiceName)

	db, err := setupDatabase(sysCfg.PostgresConfig)
	if err != nil {
		logger.Error("Failed to set up database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	redisClient := setupRedis(sysCfg.RedisConfig)
	defer redisClient.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// SECONDARY PORTS
	judgeClient := judge0.NewClient(sysCfg.JudgeConfig, logger)
	problemRepo := problemrepository.NewProblemRepository(db, sysCfg.PostgresConfig.Schema, logger)
	submissionRepo := submissionrepository.NewSubmissionRepository(db, sysCfg.PostgresConfig.Schema, logger)
	runCache := runcache.NewRunCache(redisClient, logger)

	//primary ports
	jwtProvider := crypto.NewJWTService(sysCfg.JwtConfig)

	//services
	judgeSvc := judge.NewJudgeService(judgeClient, logger, sysCfg.JudgeConfig,
		judge.WithMetrics(metrics.NewJudgeMetrics(registry)))
	verificationSvc := verification.NewVerificationService(judgeSvc, logger, sysCfg.VerifyConfig)
	problemSvc := problem.NewProblemService(problemRepo, verificationSvc, logger)
	runSvc := run.NewRunService(judgeSvc, problemRepo, submissionRepo, runCache, logger, sysCfg.RunConfig)
	submissionSvc := submission.NewSubmissionService(submissionRepo, logger)
	serviceProvider := http2.NewServiceProvider(problemSvc, runSvc, submissionSvc, jwtProvider)

	//server
	httpServer := http2.NewServer(
		sysCfg.HTTPConfig.Port,
		sysCfg.HTTPConfig.ServiceName,
		*serviceProvider,
		logger,
		http2.WithMetricsGatherer(registry),
		http2.WithAdminRole(sysCfg.JwtConfig.AdminRole),
		http2.WithWriteTimeout(writeTimeout(sysCfg)),
	)
	if err := httpServer.Init(); err != nil {
		logger.Error("Failed to init http server", "error", err)
		os.Exit(1)
	}

	ctxBg := context.Background()
	serveErr := httpServer.Start(ctxBg)

	select {
	case <-quit:
	case err := <-serveErr:
		if err != nil {
			logger.Error("Http server stopped", "error", err)
		}
	}
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, sysCfg.JudgeConfig.MaxWait+5*time.Second)
	defer cancel()
	if err := httpServer.Stop(ctx); err != nil {
		logger.Error("Failed to stop http server", "error", err)
	}

	logger.Info("successfully shutdown server")
}

// writeTimeout leaves room for a sequential verification of every language.
func writeTimeout(cfg *config.AppConfig) time.Duration {
	rounds := 1
	if cfg.VerifyConfig.Sequential {
		rounds = len(judge.SupportedLanguages())
	}
	return time.Duration(rounds)*(cfg.JudgeConfig.MaxWait+cfg.JudgeConfig.RequestTimeout) + 15*time.Second
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// setupRedis sets up the Redis connection
func setupRedis(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Url,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// InitReader loads <env>.env, where env is the first argument or "local".
// A missing file is not fatal so the service can run on plain environment
// variables.
func InitReader() {
	environment := defaultEnvironment
	if len(os.Args) >= 2 {
		environment = os.Args[1]
	}

	if err := godotenv.Load(environment + ".env"); err != nil {
		logger2.Warn("Env file not loaded", "file", environment+".env", "error", err)
	}
}
