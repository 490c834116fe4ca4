package main

import (
	"context"

	"github.com/Daksharma90/AI-Interviewer/internal/config"
	"github.com/Daksharma90/AI-Interviewer/internal/database"
	"github.com/Daksharma90/AI-Interviewer/internal/groq"
	"github.com/Daksharma90/AI-Interviewer/internal/handler"
	"github.com/Daksharma90/AI-Interviewer/internal/interview"
	"github.com/Daksharma90/AI-Interviewer/internal/logger"
	"github.com/Daksharma90/AI-Interviewer/internal/metrics"
	"github.com/Daksharma90/AI-Interviewer/internal/registry"
	"github.com/Daksharma90/AI-Interviewer/internal/repository"
	"github.com/Daksharma90/AI-Interviewer/internal/resume"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

type application struct {
	Logger  *zap.Logger
	Config  *config.Config
	Handler *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded: %s", cfg)

	groqClient := groq.NewClient(groq.Config{
		APIKey:   cfg.Groq.APIKey,
		Model:    cfg.Groq.Model,
		STTModel: cfg.Groq.STTModel,
		TTSModel: cfg.Groq.TTSModel,
		TTSVoice: cfg.Groq.TTSVoice,
		Timeout:  cfg.Groq.Timeout,
	})

	var store registry.Store = registry.NewMemory()
	if cfg.Redis.Addr != "" {
		redisClient := registry.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := registry.Ping(ctx, redisClient); err != nil {
			sugar.Fatalf("redis unreachable: %v", err)
		}
		store = registry.NewRedis(redisClient, cfg.Interview.SessionTTL)
		sugar.Infow("using redis session registry", "addr", cfg.Redis.Addr)
	}

	var archive interview.ReportArchiver
	if cfg.DB.DSN != "" {
		pool, err := database.Connect(ctx, cfg.DB.DSN)
		if err != nil {
			sugar.Fatalf("database unreachable: %v", err)
		}
		defer pool.Close()
		archive = repository.NewRepository(pool)
		sugar.Info("report archive enabled")
	}

	m := metrics.NewMetrics()
	svc := interview.NewService(
		groqClient,
		store,
		interview.NewAggregator(groqClient, log),
		archive,
		m,
		log,
		interview.Config{
			MaxTurns:   cfg.Interview.MaxTurns,
			HRKeywords: cfg.HRKeywordSet(),
		},
	)

	app := &application{
		Logger: log,
		Config: cfg,
		Handler: &handler.Handler{
			Logger:     log,
			Extractor:  resume.NewExtractor(groqClient, log),
			Interviews: svc,
			Metrics:    m,
		},
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
