// internal/lexicon/morphology.go
//
// Morphological reduction of guesses to their base dictionary form, so
// "gatinhos" scores as "gato" instead of bouncing as unknown. Every
// candidate produced by a rule is only accepted when it exists in the
// dictionary; otherwise the input is returned unchanged. All rules
// assume lowercase input.

package lexicon

import "strings"

// genderProtected are feminine-looking words whose masculine swap would
// change meaning (casa → caso) or does not exist by direct inflection.
var genderProtected = map[string]struct{}{
	"casa": {}, "bola": {}, "mala": {}, "fala": {}, "bota": {},
	"cola": {}, "mola": {}, "sola": {}, "lata": {}, "mata": {},
	"vela": {}, "pipa": {}, "rosa": {}, "palha": {}, "folha": {},
	"caixa": {}, "cabra": {}, "fera": {}, "brasa": {}, "tropa": {},
	"prata": {}, "cama": {}, "lama": {}, "grama": {}, "dama": {},
	"baleia": {}, "aranha": {}, "faca": {}, "mesa": {}, "pessoa": {},
}

// Reduce normalizes a guess to its base form: plural first so degree
// rules see the singular ("gatinhos" → "gatinho" → "gato"), then
// degree suffixes, then gender.
func (l *Lexicon) Reduce(word string) string {
	w := strings.ToLower(strings.TrimSpace(word))
	w = l.Singularize(w)
	w = l.reduceDegree(w)
	w = l.reduceGender(w)
	return w
}

// Singularize maps a plural to its singular when the singular is a
// dictionary word. Invariable words (ônibus, vírus) fall through every
// rule and come back unchanged.
func (l *Lexicon) Singularize(w string) string {
	if !strings.HasSuffix(w, "s") {
		return w
	}

	// nuvens → nuvem
	if strings.HasSuffix(w, "ns") {
		if c := strings.TrimSuffix(w, "ns") + "m"; l.Contains(c) {
			return c
		}
	}

	// corações → coração, pães → pão, mãos → mão
	for _, suf := range []string{"ões", "ães", "ãos"} {
		if strings.HasSuffix(w, suf) {
			if c := strings.TrimSuffix(w, suf) + "ão"; l.Contains(c) {
				return c
			}
		}
	}

	// animais → animal, papéis → papel, anzóis → anzol, barris → barril
	if strings.HasSuffix(w, "is") {
		for suf, repl := range map[string]string{"ais": "al", "éis": "el", "óis": "ol"} {
			if strings.HasSuffix(w, suf) {
				if c := strings.TrimSuffix(w, suf) + repl; l.Contains(c) {
					return c
				}
			}
		}
		if c := strings.TrimSuffix(w, "is") + "il"; l.Contains(c) {
			return c
		}
	}

	// flores → flor, luzes → luz
	if strings.HasSuffix(w, "es") {
		if c := strings.TrimSuffix(w, "es"); l.Contains(c) {
			return c
		}
	}

	// casas → casa
	if c := strings.TrimSuffix(w, "s"); l.Contains(c) {
		return c
	}
	return w
}

// reduceDegree strips diminutive/augmentative suffixes, restoring a
// final accent when the base lost one (pezinho → pé, cafezão → café).
func (l *Lexicon) reduceDegree(w string) string {
	if len([]rune(w)) < 4 {
		return w
	}

	// pezinho → pé, florzinha → flor
	for _, suf := range []string{"zinho", "zinha"} {
		if strings.HasSuffix(w, suf) {
			base := strings.TrimSuffix(w, suf)
			if l.Contains(base) {
				return base
			}
			if c, ok := l.restoreFinalAccent(base); ok {
				return c
			}
		}
	}

	// gatinho → gato, casinha → casa, pastorinho → pastor
	for _, suf := range []string{"inho", "inha"} {
		if strings.HasSuffix(w, suf) {
			base := strings.TrimSuffix(w, suf)
			for _, v := range []string{"o", "a", "e"} {
				if l.Contains(base + v) {
					return base + v
				}
			}
			if l.Contains(base) {
				return base
			}
		}
	}

	// pezão → pé, cafezona → café
	for _, suf := range []string{"zão", "zona"} {
		if strings.HasSuffix(w, suf) {
			base := strings.TrimSuffix(w, suf)
			if l.Contains(base) {
				return base
			}
			if c, ok := l.restoreFinalAccent(base); ok {
				return c
			}
		}
	}

	// gatão → gato, mulherão → mulher
	if strings.HasSuffix(w, "ão") {
		base := strings.TrimSuffix(w, "ão")
		if l.Contains(base + "o") {
			return base + "o"
		}
		if l.Contains(base) {
			return base
		}
	}
	if strings.HasSuffix(w, "ona") {
		base := strings.TrimSuffix(w, "ona")
		if l.Contains(base + "a") {
			return base + "a"
		}
		if l.Contains(base) {
			return base
		}
	}

	// livrito → livro
	for _, suf := range []string{"ito", "ita"} {
		if strings.HasSuffix(w, suf) {
			base := strings.TrimSuffix(w, suf)
			if l.Contains(base + "o") {
				return base + "o"
			}
			if l.Contains(base + "a") {
				return base + "a"
			}
		}
	}
	return w
}

// restoreFinalAccent tries acute then circumflex on a trailing a/e/o
// (pe → pé, cafe → café) and returns the candidate if it exists.
func (l *Lexicon) restoreFinalAccent(base string) (string, bool) {
	if base == "" {
		return "", false
	}
	last := base[len(base)-1]
	acute := map[byte]string{'a': "á", 'e': "é", 'o': "ó"}
	circ := map[byte]string{'a': "â", 'e': "ê", 'o': "ô"}
	if s, ok := acute[last]; ok {
		if c := base[:len(base)-1] + s; l.Contains(c) {
			return c, true
		}
	}
	if s, ok := circ[last]; ok {
		if c := base[:len(base)-1] + s; l.Contains(c) {
			return c, true
		}
	}
	return "", false
}

// reduceGender converts feminine forms to the masculine base when one
// exists (menina → menino, professora → professor), skipping protected
// words where the swap would change meaning.
func (l *Lexicon) reduceGender(w string) string {
	if !strings.HasSuffix(w, "a") && !strings.HasSuffix(w, "ã") {
		return w
	}
	if _, ok := genderProtected[w]; ok {
		return w
	}

	// portuguesa → português, condessa → conde
	if strings.HasSuffix(w, "essa") {
		if c := strings.TrimSuffix(w, "essa") + "e"; l.Contains(c) {
			return c
		}
	}
	if strings.HasSuffix(w, "esa") {
		if c := strings.TrimSuffix(w, "esa") + "ês"; l.Contains(c) {
			return c
		}
	}

	// valentona → valentão
	if strings.HasSuffix(w, "ona") {
		if c := strings.TrimSuffix(w, "ona") + "ão"; l.Contains(c) {
			return c
		}
	}

	// irmã → irmão
	if strings.HasSuffix(w, "ã") {
		if c := strings.TrimSuffix(w, "ã") + "ão"; l.Contains(c) {
			return c
		}
	}

	// menina → menino
	if strings.HasSuffix(w, "a") {
		if c := strings.TrimSuffix(w, "a") + "o"; l.Contains(c) {
			return c
		}
		// professora → professor
		if c := strings.TrimSuffix(w, "a"); len(c) > 2 && l.Contains(c) {
			return c
		}
	}
	return w
}
