// internal/similarity/scorer.go
//
// Scoring capability boundary. The engine only knows this interface;
// the real word-embedding implementation lives in embedding.go and a
// deterministic fake backs the engine tests.

package similarity

import (
	"context"
	"errors"
)

// ErrUnavailable reports that the scoring backend could not produce a
// score (model not loaded, word outside the vocabulary). Safe to retry;
// callers must not record the guess.
var ErrUnavailable = errors.New("similarity: scorer unavailable")

// Scorer computes a 0..100 similarity between a guess and the secret
// word. Score(w, w) is always 100.
type Scorer interface {
	Score(ctx context.Context, guess, secret string) (int, error)
}
