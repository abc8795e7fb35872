// internal/challenge/secret.go
//
// Deterministic secret word selection. The word for a day is
// HMAC-SHA256(salt, dayKey) mod len(answers): the same day always maps
// to the same word, restarts included, and the sequence cannot be
// derived by a client that does not hold the salt.

package challenge

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"sync"
)

// Challenge is one day's puzzle. Immutable once materialized.
type Challenge struct {
	Day    string // YYYY-MM-DD
	Secret string // the hidden word, lowercase
}

// SecretProvider yields the secret word for any challenge day.
type SecretProvider struct {
	salt    string
	answers []string

	mu   sync.Mutex
	days map[string]Challenge // lazily materialized, never mutated
}

// NewSecretProvider builds a provider over the answer pool.
func NewSecretProvider(salt string, answers []string) (*SecretProvider, error) {
	if len(answers) == 0 {
		return nil, errors.New("challenge: empty answer pool")
	}
	return &SecretProvider{
		salt:    salt,
		answers: answers,
		days:    make(map[string]Challenge),
	}, nil
}

// For returns the challenge for dayKey, materializing it on first
// access. Old days stay in the index untouched when a new day starts.
func (p *SecretProvider) For(dayKey string) Challenge {
	p.mu.Lock()
	defer p.mu.Unlock()
	if ch, ok := p.days[dayKey]; ok {
		return ch
	}
	ch := Challenge{Day: dayKey, Secret: p.answers[wordIndex(dayKey, p.salt, len(p.answers))]}
	p.days[dayKey] = ch
	return ch
}

// SecretFor is a convenience wrapper over For.
func (p *SecretProvider) SecretFor(dayKey string) string { return p.For(dayKey).Secret }

// PoolSize returns the number of answer candidates.
func (p *SecretProvider) PoolSize() int { return len(p.answers) }

// wordIndex maps a day key to an index via HMAC(salt, dayKey) % n.
func wordIndex(dayKey, salt string, n int) int {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dayKey))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for modulus distribution
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}
