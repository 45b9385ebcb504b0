// Package app is the composition root: it loads configuration, builds
// every component and owns the server lifecycle.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/esmanureral/dental-ai-backend/internal/analysis"
	"github.com/esmanureral/dental-ai-backend/internal/catalog"
	"github.com/esmanureral/dental-ai-backend/internal/chat"
	"github.com/esmanureral/dental-ai-backend/internal/classifier"
	clsmock "github.com/esmanureral/dental-ai-backend/internal/classifier/mock"
	"github.com/esmanureral/dental-ai-backend/internal/classifier/onnx"
	"github.com/esmanureral/dental-ai-backend/internal/config"
	"github.com/esmanureral/dental-ai-backend/internal/history"
	httpx "github.com/esmanureral/dental-ai-backend/internal/http"
	httpH "github.com/esmanureral/dental-ai-backend/internal/http/handlers"
	"github.com/esmanureral/dental-ai-backend/internal/llm"
	"github.com/esmanureral/dental-ai-backend/internal/llm/gemini"
	"github.com/esmanureral/dental-ai-backend/internal/narrative"
	"github.com/esmanureral/dental-ai-backend/internal/observability"
	"github.com/esmanureral/dental-ai-backend/internal/platform/logger"
	"github.com/esmanureral/dental-ai-backend/internal/platform/workpool"
)

const version = "0.5.0"

type App struct {
	Log    *logger.Logger
	Config *config.Config

	classifier   classifier.Classifier
	server       *httpx.Server
	otelShutdown func(context.Context) error
}

func New(ctx context.Context) (*App, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: "dental-ai-backend",
		Environment: cfg.Env,
		Version:     version,
	})

	cls := buildClassifier(cfg, log)
	chatEngine, nlgEngine := buildTextEngines(cfg, log)

	hist := history.NewStore(cfg.HistoryCapacity)
	gen := narrative.NewGenerator(nlgEngine, hist, log)
	svc := analysis.NewService(cls, gen, hist, log)
	responder := chat.NewResponder(chatEngine, log)
	pool := workpool.New(cfg.AnalysisWorkers)

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpx.NewRouter(httpx.RouterConfig{
		RootHandler:    httpH.NewRootHandler(),
		ChatHandler:    httpH.NewChatHandler(responder, pool, log),
		AnalyzeHandler: httpH.NewAnalyzeHandler(svc, pool, log),
		Logger:         log,
	})

	return &App{
		Log:          log,
		Config:       cfg,
		classifier:   cls,
		server:       httpx.NewServer(cfg, log, router),
		otelShutdown: otelShutdown,
	}, nil
}

// buildClassifier loads the ONNX model; on failure the app keeps running
// degraded and /analyze reports the model as unavailable.
func buildClassifier(cfg *config.Config, log *logger.Logger) classifier.Classifier {
	if cfg.Classifier.UseMock {
		log.Warn("using mock classifier")
		return clsmock.New(catalog.Size())
	}
	if cfg.Classifier.ModelPath == "" {
		log.Warn("CLASSIFIER_MODEL_PATH not set; image analysis disabled")
		return nil
	}

	cls, err := onnx.New(onnx.Config{
		ModelPath:   cfg.Classifier.ModelPath,
		LibraryPath: cfg.Classifier.LibraryPath,
		Classes:     catalog.Size(),
	})
	if err != nil {
		log.Error("classifier load failed; image analysis disabled", "error", err, "model_path", cfg.Classifier.ModelPath)
		return nil
	}
	log.Info("classifier loaded", "model_path", cfg.Classifier.ModelPath, "classes", catalog.Size())
	return cls
}

// buildTextEngines returns the chat and narrative engines, both nil when
// no API key is configured.
func buildTextEngines(cfg *config.Config, log *logger.Logger) (llm.Engine, llm.Engine) {
	if cfg.Gemini.APIKey == "" {
		log.Warn("GEMINI_API_KEY not set; chat and personalized narratives disabled")
		return nil, nil
	}
	chatEngine, err := gemini.New(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.ChatModel,
		Timeout: cfg.Gemini.Timeout,
	})
	if err != nil {
		log.Error("gemini chat engine init failed", "error", err)
		return nil, nil
	}
	nlgEngine, err := gemini.New(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.NLGModel,
		Timeout: cfg.Gemini.Timeout,
	})
	if err != nil {
		log.Error("gemini nlg engine init failed", "error", err)
		return chatEngine, nil
	}
	log.Info("gemini text engines enabled", "chat_model", cfg.Gemini.ChatModel, "nlg_model", cfg.Gemini.NLGModel)
	return chatEngine, nlgEngine
}

// Run serves until ctx is cancelled and releases held resources.
func (a *App) Run(ctx context.Context) error {
	defer a.close()
	return a.server.Run(ctx)
}

func (a *App) close() {
	if a.classifier != nil {
		if err := a.classifier.Close(); err != nil {
			a.Log.Warn("classifier close", "error", err)
		}
	}
	if a.otelShutdown != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.HTTP.ShutdownTimeout)
		defer cancel()
		if err := a.otelShutdown(shutdownCtx); err != nil {
			a.Log.Warn("otel shutdown", "error", err)
		}
	}
	a.Log.Sync()
}
