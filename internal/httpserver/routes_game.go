// internal/httpserver/routes_game.go
//
// Game endpoints consumed by the presentation client.
//   - POST /tentar    → score one guess against today's secret word
//   - POST /desistir  → give up and reveal the secret
//   - GET  /stats     → session bootstrap (finished flag, countdown)
//   - POST /reiniciar → always refused; a new challenge only starts at
//     the day boundary
//
// Game-state failures (already finished, bad input) are part of the
// client contract and travel as 200 + {"erro": ...}; only transport
// and infrastructure problems use error status codes.

package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/palavradodia/go-server/internal/challenge"
	"github.com/palavradodia/go-server/internal/game"
)

type tentarReq struct {
	Palavra string `json:"palavra"`
}

type tentarRes struct {
	Similaridade    int    `json:"similaridade"`
	Venceu          bool   `json:"venceu"`
	PalavraExibida  string `json:"palavra_exibida"`
	TotalTentativas int    `json:"total_tentativas"`
	PalavraSecreta  string `json:"palavra_secreta,omitempty"`
	TempoProximo    string `json:"tempo_proximo,omitempty"`
}

// handleTentar scores one guess for the caller's session.
func (s *Server) handleTentar(w http.ResponseWriter, r *http.Request) {
	sid := s.sessionID(w, r)

	var req tentarReq
	if err := readJSON(r, &req); err != nil {
		writeErro(w, http.StatusBadRequest, "Requisição inválida.")
		return
	}

	res, err := s.opts.Engine.Attempt(r.Context(), sid, req.Palavra)
	if err != nil {
		s.writeEngineError(w, sid, err)
		return
	}

	log.Info().
		Str("session", sid).
		Str("word", res.Word).
		Int("similarity", res.Similarity).
		Bool("won", res.Won).
		Msg("attempt")

	out := tentarRes{
		Similaridade:    res.Similarity,
		Venceu:          res.Won,
		PalavraExibida:  res.Word,
		TotalTentativas: res.Total,
	}
	if res.Won {
		out.PalavraSecreta = res.Secret
		out.TempoProximo = challenge.FormatRemaining(res.UntilReset)
	}
	writeJSON(w, http.StatusOK, out)
}

type desistirRes struct {
	PalavraSecreta  string `json:"palavra_secreta"`
	TotalTentativas int    `json:"total_tentativas"`
	TempoProximo    string `json:"tempo_proximo"`
}

// handleDesistir ends the caller's session and reveals the secret.
func (s *Server) handleDesistir(w http.ResponseWriter, r *http.Request) {
	sid := s.sessionID(w, r)

	res, err := s.opts.Engine.GiveUp(r.Context(), sid)
	if err != nil {
		s.writeEngineError(w, sid, err)
		return
	}

	log.Info().Str("session", sid).Int("attempts", res.Total).Msg("gave up")

	writeJSON(w, http.StatusOK, desistirRes{
		PalavraSecreta:  res.Secret,
		TotalTentativas: res.Total,
		TempoProximo:    challenge.FormatRemaining(res.UntilReset),
	})
}

type statsRes struct {
	JogoFinalizado   bool   `json:"jogo_finalizado"`
	TotalTentativas  int    `json:"total_tentativas"`
	DataPalavra      string `json:"data_palavra"`
	PalavrasNoModelo int    `json:"palavras_no_modelo"`
	ProximoReset     string `json:"proximo_reset"`
}

// handleStats is the session-restoration read used on client load.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	sid := s.sessionID(w, r)
	snap := s.opts.Engine.Stats(r.Context(), sid)

	writeJSON(w, http.StatusOK, statsRes{
		JogoFinalizado:   snap.Finished,
		TotalTentativas:  snap.Total,
		DataPalavra:      snap.Day,
		PalavrasNoModelo: s.opts.ModelWords,
		ProximoReset:     challenge.FormatRemaining(snap.UntilReset),
	})
}

// handleReiniciar refuses an early restart; the challenge only rolls
// over at the day boundary.
func (s *Server) handleReiniciar(w http.ResponseWriter, r *http.Request) {
	remaining := challenge.FormatRemaining(s.opts.Clock.UntilReset())
	writeJSON(w, http.StatusOK, map[string]string{
		"erro":          fmt.Sprintf("Você só pode jogar novamente em %s", remaining),
		"proximo_reset": s.opts.Clock.NextReset().Format(time.RFC3339),
	})
}

// writeEngineError maps engine errors onto the client contract.
func (s *Server) writeEngineError(w http.ResponseWriter, sid string, err error) {
	switch {
	case errors.Is(err, game.ErrAlreadyFinished):
		remaining := challenge.FormatRemaining(s.opts.Clock.UntilReset())
		writeErro(w, http.StatusOK,
			fmt.Sprintf("Você já completou o desafio de hoje! Volte em %s para uma nova palavra.", remaining))
	case errors.Is(err, game.ErrEmptyWord):
		writeErro(w, http.StatusOK, "Digite uma palavra válida.")
	case errors.Is(err, game.ErrMultiWord):
		writeErro(w, http.StatusOK, "Apenas palavras únicas são aceitas (sem espaços).")
	case errors.Is(err, game.ErrInvalidChars):
		writeErro(w, http.StatusOK, "Não utilize números ou símbolos, apenas letras!")
	case errors.Is(err, game.ErrUnknownWord):
		writeErro(w, http.StatusOK, "Palavra desconhecida ou inválida! Verifique a ortografia.")
	case errors.Is(err, game.ErrRepeatedWord):
		writeErro(w, http.StatusOK, "Você já tentou essa palavra!")
	case errors.Is(err, game.ErrScoringUnavailable):
		log.Error().Err(err).Str("session", sid).Msg("scoring unavailable")
		writeErro(w, http.StatusServiceUnavailable, "Pontuação indisponível no momento. Tente novamente.")
	default:
		log.Error().Err(err).Str("session", sid).Msg("unexpected engine error")
		writeErro(w, http.StatusInternalServerError, "Erro interno.")
	}
}
