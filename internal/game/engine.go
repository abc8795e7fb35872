// internal/game/engine.go
//
// Orchestration of one guess/give-up/stats cycle.
// Responsibilities:
//   - Validate and normalize raw guesses (trim, lowercase, single
//     token, letters only, dictionary membership, no repeats).
//   - Score guesses through the similarity.Scorer capability.
//   - Drive the per-session state machine: active → won | gave up,
//     both terminal until the next challenge day.
//   - Restore finished state from the completion log after a same-day
//     restart.
//
// Validation and scoring failures return before any mutation: a failed
// attempt consumes no sequence number.
package game

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/palavradodia/go-server/internal/challenge"
	"github.com/palavradodia/go-server/internal/lexicon"
	"github.com/palavradodia/go-server/internal/similarity"
)

// CompletionLog persists finished sessions for the current day so a
// completed challenge stays completed across a restart. Implemented by
// store.CompletionStore; nil disables persistence.
type CompletionLog interface {
	Record(ctx context.Context, sessionID, day string, attempts int, won, gaveUp bool) error
	Find(ctx context.Context, sessionID, day string) (attempts int, won, gaveUp, found bool, err error)
}

// Engine coordinates the clock, secret provider, scorer, lexicon, and
// session registry.
type Engine struct {
	clock       *challenge.Clock
	secrets     *challenge.SecretProvider
	scorer      similarity.Scorer
	lex         *lexicon.Lexicon
	sessions    *Registry
	completions CompletionLog
}

// New constructs an Engine. completions may be nil.
func New(clock *challenge.Clock, secrets *challenge.SecretProvider, scorer similarity.Scorer, lex *lexicon.Lexicon, completions CompletionLog) *Engine {
	return &Engine{
		clock:       clock,
		secrets:     secrets,
		scorer:      scorer,
		lex:         lex,
		sessions:    NewRegistry(),
		completions: completions,
	}
}

// AttemptResult reports one scored guess.
type AttemptResult struct {
	Word       string // reduced display form
	Similarity int
	Won        bool
	Total      int
	Secret     string        // set only on win
	UntilReset time.Duration // set only on win
}

// RevealResult reports a give-up.
type RevealResult struct {
	Secret     string
	Total      int
	UntilReset time.Duration
}

// StatsSnapshot is a consistent read of one session's progress.
type StatsSnapshot struct {
	Finished   bool
	GaveUp     bool
	Total      int
	Day        string
	UntilReset time.Duration
}

// Attempt validates, scores, and records one guess for sessionID
// against today's challenge.
func (e *Engine) Attempt(ctx context.Context, sessionID, raw string) (*AttemptResult, error) {
	day := e.clock.DayKey()
	sess := e.session(ctx, sessionID, day)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.Finished {
		return nil, ErrAlreadyFinished
	}

	word := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case word == "":
		return nil, ErrEmptyWord
	case strings.ContainsFunc(word, unicode.IsSpace):
		return nil, ErrMultiWord
	case !lexicon.OnlyLetters(word):
		return nil, ErrInvalidChars
	}

	word = e.lex.Reduce(word)
	if !e.lex.Contains(word) {
		return nil, ErrUnknownWord
	}
	for _, a := range sess.Attempts {
		if a.Word == word {
			return nil, ErrRepeatedWord
		}
	}

	secret := e.secrets.SecretFor(day)
	won := lexicon.Fold(word) == lexicon.Fold(secret)

	sim := 100
	if !won {
		var err error
		sim, err = e.scorer.Score(ctx, word, secret)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScoringUnavailable, err)
		}
	}

	sess.Attempts = append(sess.Attempts, Attempt{
		Word:       word,
		Similarity: sim,
		Seq:        sess.Total() + 1,
		At:         time.Now(),
	})

	res := &AttemptResult{Word: word, Similarity: sim, Won: won, Total: sess.Total()}
	if won {
		sess.Finished, sess.GaveUp = true, false
		res.Secret = secret
		res.UntilReset = e.clock.UntilReset()
		e.logCompletion(ctx, sess)
	}
	return res, nil
}

// GiveUp ends the session and reveals the secret. A second call fails
// with ErrAlreadyFinished instead of re-revealing.
func (e *Engine) GiveUp(ctx context.Context, sessionID string) (*RevealResult, error) {
	day := e.clock.DayKey()
	sess := e.session(ctx, sessionID, day)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.Finished {
		return nil, ErrAlreadyFinished
	}
	sess.Finished, sess.GaveUp = true, true
	e.logCompletion(ctx, sess)

	return &RevealResult{
		Secret:     e.secrets.SecretFor(day),
		Total:      sess.Total(),
		UntilReset: e.clock.UntilReset(),
	}, nil
}

// Stats returns a snapshot of the session. Game state never changes,
// but first access to an unseen session materializes it, restoring any
// recorded completion; /stats relies on that for client bootstrap.
func (e *Engine) Stats(ctx context.Context, sessionID string) *StatsSnapshot {
	day := e.clock.DayKey()
	sess := e.session(ctx, sessionID, day)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return &StatsSnapshot{
		Finished:   sess.Finished,
		GaveUp:     sess.GaveUp,
		Total:      sess.Total(),
		Day:        day,
		UntilReset: e.clock.UntilReset(),
	}
}

// Day returns the current challenge day key.
func (e *Engine) Day() string { return e.clock.DayKey() }

// session fetches or creates the session for (id, day), restoring
// finished state from the completion log on first access.
func (e *Engine) session(ctx context.Context, id, day string) *Session {
	return e.sessions.GetOrCreate(id, day, func(s *Session) {
		if e.completions == nil {
			return
		}
		attempts, won, gaveUp, found, err := e.completions.Find(ctx, id, day)
		if err != nil {
			log.Warn().Err(err).Str("session", id).Str("day", day).Msg("restore completion")
			return
		}
		if found {
			s.Finished = true
			s.GaveUp = gaveUp && !won
			s.prior = attempts
		}
	})
}

// logCompletion records a terminal session, best effort.
func (e *Engine) logCompletion(ctx context.Context, s *Session) {
	if e.completions == nil {
		return
	}
	if err := e.completions.Record(ctx, s.ID, s.Day, s.Total(), s.Finished && !s.GaveUp, s.GaveUp); err != nil {
		log.Warn().Err(err).Str("session", s.ID).Str("day", s.Day).Msg("record completion")
	}
}
