package similarity

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const vectorTable = `3 3
computador 1 0 0
internet 0.6 0.8 0
kernel -1 0 0
`

func testEmbeddings(t *testing.T) *Embeddings {
	t.Helper()
	e, err := Read(strings.NewReader(vectorTable))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	return e
}

func TestReadHeaderAndCounts(t *testing.T) {
	e := testEmbeddings(t)
	if e.Len() != 3 || e.Dim() != 3 {
		t.Fatalf("Len=%d Dim=%d, want 3 and 3", e.Len(), e.Dim())
	}
	if !e.Has("computador") || e.Has("modem") {
		t.Fatal("vocabulary membership wrong")
	}
}

func TestScore(t *testing.T) {
	e := testEmbeddings(t)
	ctx := context.Background()

	tests := []struct {
		guess, secret string
		want          int
	}{
		{"computador", "computador", 100}, // identity
		{"internet", "computador", 60},    // cosine 0.6
		{"kernel", "computador", 0},       // negative cosine clamps to 0
		{"Computador", "computador", 100}, // case-insensitive lookup
	}
	for _, tt := range tests {
		got, err := e.Score(ctx, tt.guess, tt.secret)
		if err != nil {
			t.Fatalf("Score(%q,%q): %v", tt.guess, tt.secret, err)
		}
		if got != tt.want {
			t.Errorf("Score(%q,%q) = %d, want %d", tt.guess, tt.secret, got, tt.want)
		}
	}
}

func TestScoreUnknownWord(t *testing.T) {
	e := testEmbeddings(t)
	if _, err := e.Score(context.Background(), "modem", "computador"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestReadRejectsBadInput(t *testing.T) {
	if _, err := Read(strings.NewReader("computador 1 0\ninternet 1 0 0\n")); err == nil {
		t.Fatal("dimension mismatch: want error")
	}
	if _, err := Read(strings.NewReader("computador um dois\n")); err == nil {
		t.Fatal("non-numeric vector: want error")
	}
	if _, err := Read(strings.NewReader("")); err == nil {
		t.Fatal("empty table: want error")
	}
}
