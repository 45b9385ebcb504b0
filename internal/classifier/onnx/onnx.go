// Package onnx runs the dental condition classifier (a SigLIP fine-tune
// exported to ONNX) through ONNX Runtime.
package onnx

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/esmanureral/dental-ai-backend/internal/classifier"
)

type Config struct {
	// ModelPath points at the exported .onnx classifier.
	ModelPath string

	// LibraryPath optionally points at the onnxruntime shared library.
	LibraryPath string

	// InputName and OutputName default to the HF export names.
	InputName  string
	OutputName string

	// ImageSize is the square input resolution (default 224).
	ImageSize int

	// Classes is the expected output width (the catalog size).
	Classes int
}

type Engine struct {
	cfg     Config
	session *ort.DynamicAdvancedSession

	mu     sync.Mutex
	closed bool
}

var _ classifier.Classifier = (*Engine)(nil)

var (
	runtimeOnce sync.Once
	runtimeErr  error
)

func ensureRuntime(libraryPath string) error {
	runtimeOnce.Do(func() {
		if p := strings.TrimSpace(libraryPath); p != "" {
			ort.SetSharedLibraryPath(p)
		}
		if !ort.IsInitialized() {
			runtimeErr = ort.InitializeEnvironment()
		}
	})
	return runtimeErr
}

func New(cfg Config) (*Engine, error) {
	if strings.TrimSpace(cfg.ModelPath) == "" {
		return nil, errors.New("onnx: model path required")
	}
	if cfg.InputName == "" {
		cfg.InputName = "pixel_values"
	}
	if cfg.OutputName == "" {
		cfg.OutputName = "logits"
	}
	if cfg.ImageSize <= 0 {
		cfg.ImageSize = 224
	}
	if cfg.Classes <= 0 {
		return nil, errors.New("onnx: class count required")
	}

	if err := ensureRuntime(cfg.LibraryPath); err != nil {
		return nil, fmt.Errorf("onnx: init runtime: %w", err)
	}

	session, err := ort.NewDynamicAdvancedSession(
		cfg.ModelPath,
		[]string{cfg.InputName},
		[]string{cfg.OutputName},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("onnx: open session: %w", err)
	}

	return &Engine{cfg: cfg, session: session}, nil
}

func (e *Engine) Classify(ctx context.Context, img image.Image) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil, classifier.ErrUnavailable
	}
	e.mu.Unlock()

	size := e.cfg.ImageSize
	pixels := preprocess(img, size)

	input, err := ort.NewTensor(ort.NewShape(1, 3, int64(size), int64(size)), pixels)
	if err != nil {
		return nil, fmt.Errorf("onnx: input tensor: %w", err)
	}
	defer input.Destroy()

	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(e.cfg.Classes)))
	if err != nil {
		return nil, fmt.Errorf("onnx: output tensor: %w", err)
	}
	defer output.Destroy()

	if err := e.session.Run([]ort.Value{input}, []ort.Value{output}); err != nil {
		return nil, fmt.Errorf("onnx: run: %w", err)
	}

	logits := output.GetData()
	if len(logits) != e.cfg.Classes {
		return nil, fmt.Errorf("onnx: got %d logits, want %d", len(logits), e.cfg.Classes)
	}
	return Softmax(logits), nil
}

func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	if e.session != nil {
		return e.session.Destroy()
	}
	return nil
}
