// Package llmdetect calls an external semantic detector (a local Ollama
// model) for PII extraction and prompt-injection analysis. The rest of the
// pipeline depends on the Detector interface only; errors and malformed
// output degrade to zero candidates, never a request failure.
package llmdetect

import (
	"context"
	"errors"
	"time"

	"github.com/piigate/piigate/internal/types"
)

// DefaultTimeout bounds every external call.
const DefaultTimeout = 30 * time.Second

// minConfidence is the floor below which external candidates are discarded.
const minConfidence = 0.3

// ErrUnavailable reports that the external detector cannot be reached.
var ErrUnavailable = errors.New("semantic detector unavailable")

// Detector is the capability the pipeline depends on. Implementations must be
// safe for concurrent use; both calls block with a bounded timeout.
type Detector interface {
	DetectPII(ctx context.Context, text string) ([]types.Match, error)
	DetectInjection(ctx context.Context, text string) (types.InjectionVerdict, error)
}
