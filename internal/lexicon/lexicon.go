// internal/lexicon/lexicon.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Load the Portuguese dictionary and the curated answer list from
//     environment-provided files or fall back to embedded defaults.
//   - Answer membership lookups over a sorted slice (binary search).
//   - Normalization helpers (see normalize.go) and morphological
//     reduction of guesses (see morphology.go).
//
// Word lists:
//   - "dictionary": every word a player is allowed to submit (accented,
//     lowercase, one per line).
//   - "answers": curated single-token words eligible to be a day's secret.
//     Answers are always folded into the dictionary so the secret is
//     guessable.

package lexicon

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/palavradodia/go-server/assets"
)

// Lexicon holds the dictionary and answer candidates for one process.
type Lexicon struct {
	words   []string // sorted ascending, lowercase, accents preserved
	answers []string // lowercase single tokens, in curated order
}

// Load builds a Lexicon from the given file paths. An empty path falls
// back to the embedded default list for that slot.
func Load(dictPath, answersPath string) (*Lexicon, error) {
	dict, err := readList(dictPath, assets.DictionaryList)
	if err != nil {
		return nil, err
	}
	answers, err := readList(answersPath, assets.AnswersList)
	if err != nil {
		return nil, err
	}
	return New(dict, answers)
}

// New constructs a Lexicon from raw word slices. Words are lowercased
// and trimmed; multi-token and empty entries are dropped. Answers are
// merged into the dictionary.
func New(dict, answers []string) (*Lexicon, error) {
	clean := func(w string, _ int) (string, bool) {
		w = strings.ToLower(strings.TrimSpace(w))
		return w, w != "" && !strings.ContainsRune(w, ' ')
	}
	words := lo.FilterMap(dict, clean)
	ans := lo.FilterMap(answers, clean)
	if len(ans) == 0 {
		return nil, errors.New("lexicon: answers list is empty")
	}

	words = lo.Uniq(append(words, ans...))
	sort.Strings(words)

	return &Lexicon{words: words, answers: ans}, nil
}

// Contains reports whether w (lowercase) is a dictionary word.
func (l *Lexicon) Contains(w string) bool {
	i := sort.SearchStrings(l.words, w)
	return i < len(l.words) && l.words[i] == w
}

// Answers returns the curated answer candidates in stable order.
// Callers must not mutate the returned slice.
func (l *Lexicon) Answers() []string { return l.answers }

// Size returns the dictionary word count.
func (l *Lexicon) Size() int { return len(l.words) }

// readList loads one word per line from path, or from the embedded
// fallback when path is empty. Blank lines and #-comments are skipped.
func readList(path string, fallback func() ([]string, error)) ([]string, error) {
	if path == "" {
		return fallback()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ScanLines(f)
}

// ScanLines reads non-empty, non-comment lines from r.
func ScanLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}
