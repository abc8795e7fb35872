// internal/httpserver/session.go
//
// Anonymous session identity. Each caller gets a random session ID
// wrapped in a signed HS256 token inside an HttpOnly cookie, so session
// keys are stable across requests but cannot be forged or enumerated.
// There are no accounts; the token carries nothing but the ID.

package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// sessionID returns the caller's session ID, minting a fresh identity
// (and setting the cookie) when the cookie is absent or invalid.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(s.opts.Config.CookieName); err == nil && c.Value != "" {
		if sid, err := s.parseSessionToken(c.Value); err == nil {
			return sid
		}
	}

	sid := uuid.NewString()
	tok, exp, err := s.signSessionToken(sid)
	if err != nil {
		log.Warn().Err(err).Msg("sign session token")
		return sid
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.Config.CookieName,
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.Config.Production,
		SameSite: http.SameSiteLaxMode,
		Expires:  exp,
	})
	return sid
}

// signSessionToken wraps sid in an HS256 JWT.
func (s *Server) signSessionToken(sid string) (string, time.Time, error) {
	exp := time.Now().Add(s.opts.Config.CookieMaxAge)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sid,
		"iat": time.Now().Unix(),
		"exp": exp.Unix(),
	})
	tok, err := t.SignedString([]byte(s.opts.Config.SessionSecret))
	return tok, exp, err
}

// parseSessionToken verifies the cookie token and extracts the sid.
func (s *Server) parseSessionToken(raw string) (string, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return []byte(s.opts.Config.SessionSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return "", errors.New("invalid session token")
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", errors.New("session token missing sid")
	}
	return sid, nil
}
