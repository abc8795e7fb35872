package lexicon

import "testing"

func testLexicon(t *testing.T, extra ...string) *Lexicon {
	t.Helper()
	dict := []string{
		"casa", "gato", "gata", "flor", "pé", "café", "nuvem", "coração",
		"animal", "papel", "anzol", "barril", "luz", "livro", "menino",
		"professor", "português", "conde", "valentão", "irmão", "mulher",
		"pastor", "vizinho", "rainha", "ônibus", "computador", "internet",
		"gatinho",
	}
	dict = append(dict, extra...)
	l, err := New(dict, []string{"computador"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l
}

func TestNewDropsInvalidEntries(t *testing.T) {
	l, err := New([]string{" Casa ", "", "duas palavras", "GATO"}, []string{"computador"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, w := range []string{"casa", "gato", "computador"} {
		if !l.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
	if l.Contains("duas palavras") {
		t.Error("multi-token entry should have been dropped")
	}
}

func TestNewRequiresAnswers(t *testing.T) {
	if _, err := New([]string{"casa"}, nil); err == nil {
		t.Fatal("New with empty answers: want error")
	}
}

func TestContains(t *testing.T) {
	l := testLexicon(t)
	if !l.Contains("coração") {
		t.Error("accented dictionary word not found")
	}
	if l.Contains("coracao") {
		t.Error("lookup is exact; folded form should miss")
	}
	if l.Contains("xpto") {
		t.Error("unknown word reported as present")
	}
}

func TestFold(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  Programação ", "programacao"},
		{"CORAÇÃO", "coracao"},
		{"pé", "pe"},
		{"internet", "internet"},
	}
	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOnlyLetters(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"computador", true},
		{"coração", true},
		{"abc123", false},
		{"a-b", false},
		{"two words", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := OnlyLetters(tt.in); got != tt.want {
			t.Errorf("OnlyLetters(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
