// Package classifier defines the image-classification engine used by the
// analysis pipeline. Implementations return a softmax distribution over the
// condition catalog, one probability per catalog index.
package classifier

import (
	"context"
	"errors"
	"image"
)

// ErrUnavailable is returned when the model asset failed to load at
// startup. This is a permanent degraded state, not a per-call failure.
var ErrUnavailable = errors.New("classifier: model unavailable")

type Classifier interface {
	// Classify runs one forward pass. The returned slice has one
	// probability per catalog entry; values are non-negative and sum to 1.
	Classify(ctx context.Context, img image.Image) ([]float32, error)
	Close() error
}
