// Package config assembles the runtime configuration from the
// environment. Every field has a workable default; the only hard
// validation failures are values that cannot make a running server.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/esmanureral/dental-ai-backend/internal/platform/envutil"
)

type HTTPConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	MaxRequestBytes   int64
}

type ClassifierConfig struct {
	// ModelPath points at the exported SigLIP ONNX model. Empty means the
	// classifier stays unloaded and /analyze reports a degraded state.
	ModelPath string

	// LibraryPath is the onnxruntime shared library; empty uses the
	// platform default name resolved by the loader.
	LibraryPath string

	// UseMock swaps in the deterministic mock classifier (dev/test).
	UseMock bool
}

type GeminiConfig struct {
	// APIKey empty disables chat and the personalized narrative strategy.
	APIKey    string
	ChatModel string
	NLGModel  string
	Timeout   time.Duration
}

type Config struct {
	Env        string
	HTTP       HTTPConfig
	Classifier ClassifierConfig
	Gemini     GeminiConfig

	// AnalysisWorkers bounds concurrent classification+generation work.
	AnalysisWorkers int

	// HistoryCapacity is the per-user scan history kept for narratives.
	HistoryCapacity int
}

func Load() (*Config, error) {
	cfg := &Config{
		Env: envutil.String("APP_ENV", "development"),
		HTTP: HTTPConfig{
			Addr:              envutil.String("HTTP_ADDR", ":8000"),
			ReadHeaderTimeout: envutil.Duration("HTTP_READ_HEADER_TIMEOUT", 5*time.Second),
			IdleTimeout:       envutil.Duration("HTTP_IDLE_TIMEOUT", 2*time.Minute),
			ShutdownTimeout:   envutil.Duration("HTTP_SHUTDOWN_TIMEOUT", 15*time.Second),
			MaxRequestBytes:   int64(envutil.Int("HTTP_MAX_REQUEST_BYTES", 10<<20)),
		},
		Classifier: ClassifierConfig{
			ModelPath:   envutil.String("CLASSIFIER_MODEL_PATH", ""),
			LibraryPath: envutil.String("ONNXRUNTIME_LIB_PATH", ""),
			UseMock:     envutil.Bool("CLASSIFIER_USE_MOCK", false),
		},
		Gemini: GeminiConfig{
			APIKey:    envutil.String("GEMINI_API_KEY", ""),
			ChatModel: envutil.String("GEMINI_CHAT_MODEL", "gemini-2.5-flash"),
			NLGModel:  envutil.String("GEMINI_NLG_MODEL", "gemini-1.5-flash"),
			Timeout:   envutil.Duration("GEMINI_TIMEOUT", 60*time.Second),
		},
		AnalysisWorkers: envutil.Int("ANALYSIS_WORKERS", 4),
		HistoryCapacity: envutil.Int("HISTORY_CAPACITY", 3),
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if c.HTTP.MaxRequestBytes <= 0 {
		return fmt.Errorf("HTTP_MAX_REQUEST_BYTES must be positive, got %d", c.HTTP.MaxRequestBytes)
	}
	if c.AnalysisWorkers < 1 {
		return fmt.Errorf("ANALYSIS_WORKERS must be at least 1, got %d", c.AnalysisWorkers)
	}
	if c.HistoryCapacity < 1 {
		return fmt.Errorf("HISTORY_CAPACITY must be at least 1, got %d", c.HistoryCapacity)
	}
	return nil
}

// Production reports whether the process runs with production settings.
func (c *Config) Production() bool { return strings.EqualFold(c.Env, "production") }
