package match

import (
	"context"
	"math"
	"strings"
	"sync"

	"jobapply-backend/internal/llm"
	"jobapply-backend/internal/shared/telemetry"
)

type engineState int

const (
	stateUnloaded engineState = iota
	stateLoaded
	stateUnavailable
)

// Engine computes textual similarity between two blobs of text. The primary
// path embeds both texts through the injected Embedder and takes their cosine
// similarity. When no embedder is configured, or the first embedding call
// fails, the engine degrades permanently to a bag-of-words cosine for the
// rest of the process lifetime.
type Engine struct {
	embedder llm.Embedder

	mu    sync.Mutex
	state engineState
}

// NewEngine constructs an Engine. A nil embedder starts the engine in the
// degraded bag-of-words mode.
func NewEngine(embedder llm.Embedder) *Engine {
	return &Engine{embedder: embedder}
}

// Similarity returns a score in [0,1]. Negative cosine values are floored to
// 0; empty or disjoint inputs score exactly 0. It never returns an error:
// embedding failures degrade to the bag-of-words path.
func (e *Engine) Similarity(ctx context.Context, a, b string) float64 {
	if e.useEmbedder() {
		vectors, err := e.embedder.Embed(ctx, []string{a, b})
		if err == nil && len(vectors) == 2 {
			return clampedCosine(vectors[0], vectors[1])
		}
		e.markUnavailable(err)
	}
	return bagOfWordsSimilarity(a, b)
}

func (e *Engine) useEmbedder() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case stateLoaded:
		return true
	case stateUnavailable:
		return false
	}

	if e.embedder == nil {
		e.state = stateUnavailable
		telemetry.Warn("similarity.degraded", map[string]any{
			"reason": "no embedding backend configured",
		})
		return false
	}
	e.state = stateLoaded
	return true
}

func (e *Engine) markUnavailable(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == stateUnavailable {
		return
	}
	e.state = stateUnavailable
	fields := map[string]any{"reason": "embedding call failed"}
	if err != nil {
		fields["error"] = err.Error()
	}
	telemetry.Warn("similarity.degraded", fields)
}

// bagOfWordsSimilarity builds a shared vocabulary from both lowercased texts,
// forms binary presence vectors, and returns their clamped cosine. Either
// text empty, or no shared tokens, yields exactly 0.
func bagOfWordsSimilarity(a, b string) float64 {
	tokensA := strings.Fields(strings.ToLower(a))
	tokensB := strings.Fields(strings.ToLower(b))
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	vocab := make(map[string]int)
	for _, tok := range tokensA {
		if _, ok := vocab[tok]; !ok {
			vocab[tok] = len(vocab)
		}
	}
	for _, tok := range tokensB {
		if _, ok := vocab[tok]; !ok {
			vocab[tok] = len(vocab)
		}
	}

	vecA := make([]float64, len(vocab))
	vecB := make([]float64, len(vocab))
	for _, tok := range tokensA {
		vecA[vocab[tok]] = 1
	}
	for _, tok := range tokensB {
		vecB[vocab[tok]] = 1
	}

	return clampedCosine(vecA, vecB)
}

// clampedCosine returns the cosine similarity of two vectors clamped into
// [0,1]. Zero-norm vectors and length mismatches yield 0 rather than NaN.
func clampedCosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	cos := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if cos < 0 {
		return 0
	}
	if cos > 1 {
		return 1
	}
	return cos
}
