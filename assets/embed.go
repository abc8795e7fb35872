// assets/embed.go
//
// Embedded default word data so the server runs with zero external
// files: a small Portuguese dictionary, the curated answer pool, and a
// demo vector table (word2vec text format, accent-stripped vocabulary).
// Production deployments point DICTIONARY_FILE / ANSWERS_FILE /
// EMBEDDINGS_FILE at real data instead.

package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed dicionario.txt palavras_tecnologia.txt vetores_demo.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// DictionaryList returns the embedded dictionary words.
func DictionaryList() ([]string, error) {
	return readLines("dicionario.txt")
}

// AnswersList returns the embedded answer candidates.
func AnswersList() ([]string, error) {
	return readLines("palavras_tecnologia.txt")
}

// DemoVectors opens the embedded demo embedding table.
func DemoVectors() (io.ReadCloser, error) {
	return FS.Open("vetores_demo.txt")
}
