package llm

import "context"

// Completer produces free-form text from a prompt.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Embedder maps texts to fixed-length dense vectors. Implementations may be
// unavailable at startup; callers are expected to degrade rather than fail.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}
