// internal/similarity/embedding.go
//
// Word-embedding similarity backend.
//
// Loads a word2vec text-format vector table ("word v1 v2 ... vD" per
// line, optional "count dim" header) and scores guesses by cosine
// similarity against the secret word, scaled to 0..100. Vectors are
// unit-normalized at load time so scoring is a dot product.
//
// A word missing from the vocabulary yields ErrUnavailable rather than
// a made-up score: the caller surfaces the failure and the guess is
// not recorded.

package similarity

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/palavradodia/go-server/internal/lexicon"
)

// Embeddings is a vocabulary of unit vectors implementing Scorer.
type Embeddings struct {
	dim  int
	vecs map[string][]float32
}

// Open loads embeddings from a word2vec text file.
func Open(path string) (*Embeddings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read parses word2vec text format from r.
func Read(r io.Reader) (*Embeddings, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	e := &Embeddings{vecs: make(map[string][]float32)}
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		// optional "count dim" header
		if lineNo == 1 && len(fields) == 2 {
			if _, err := strconv.Atoi(fields[0]); err == nil {
				continue
			}
		}
		word := strings.ToLower(fields[0])
		vec := make([]float32, len(fields)-1)
		for i, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return nil, fmt.Errorf("embeddings line %d: %w", lineNo, err)
			}
			vec[i] = float32(v)
		}
		if e.dim == 0 {
			e.dim = len(vec)
		}
		if len(vec) != e.dim {
			return nil, fmt.Errorf("embeddings line %d: dimension %d, want %d", lineNo, len(vec), e.dim)
		}
		normalize(vec)
		e.vecs[word] = vec
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(e.vecs) == 0 {
		return nil, fmt.Errorf("embeddings: empty vector table")
	}
	return e, nil
}

// Score implements Scorer: cosine similarity scaled to 0..100.
func (e *Embeddings) Score(_ context.Context, guess, secret string) (int, error) {
	gv, ok := e.lookup(guess)
	if !ok {
		return 0, fmt.Errorf("no vector for %q: %w", guess, ErrUnavailable)
	}
	sv, ok := e.lookup(secret)
	if !ok {
		return 0, fmt.Errorf("no vector for %q: %w", secret, ErrUnavailable)
	}

	var dot float64
	for i := range gv {
		dot += float64(gv[i]) * float64(sv[i])
	}
	pct := math.Round(dot * 100)
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return int(pct), nil
}

// Has reports whether the vocabulary covers w. Used at startup to
// filter the answer pool down to scoreable words.
func (e *Embeddings) Has(w string) bool {
	_, ok := e.lookup(w)
	return ok
}

// Len returns the vocabulary size.
func (e *Embeddings) Len() int { return len(e.vecs) }

// Dim returns the vector dimensionality.
func (e *Embeddings) Dim() int { return e.dim }

// lookup tries the lowercase form, then the accent-folded form.
func (e *Embeddings) lookup(w string) ([]float32, bool) {
	w = strings.ToLower(strings.TrimSpace(w))
	if v, ok := e.vecs[w]; ok {
		return v, true
	}
	if v, ok := e.vecs[lexicon.Fold(w)]; ok {
		return v, true
	}
	return nil, false
}

func normalize(v []float32) {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	n := math.Sqrt(sum)
	if n == 0 {
		return
	}
	for i := range v {
		v[i] = float32(float64(v[i]) / n)
	}
}
