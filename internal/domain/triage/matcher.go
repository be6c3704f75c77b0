package triage

import (
	"strings"
	"unicode"

	"health-companion/internal/domain/catalog"
)

// Matcher detecta etiquetas del catálogo mencionadas en texto libre.
// Solo puede devolver etiquetas de SymptomLabels.
type Matcher struct {
	labels  []string
	phrases [][][]string // por etiqueta: la propia etiqueta y sus keywords, tokenizadas
}

func NewMatcher(cat *catalog.Catalog) *Matcher {
	labels := cat.SymptomLabels()
	phrases := make([][][]string, len(labels))
	for i, l := range labels {
		for _, p := range append([]string{l}, cat.Keywords(l)...) {
			if toks := tokenize(p); len(toks) > 0 {
				phrases[i] = append(phrases[i], toks)
			}
		}
	}
	return &Matcher{labels: labels, phrases: phrases}
}

// Match devuelve, en el orden de SymptomLabels, las etiquetas cuyo nombre o
// alguna keyword aparece en text como secuencia de palabras completas
// ("scolded" no activa "Cold"). Cada etiqueta aparece a lo sumo una vez.
func (m *Matcher) Match(text string) []string {
	toks := tokenize(text)

	out := make([]string, 0)
	if len(toks) == 0 {
		return out
	}
	for i, phrases := range m.phrases {
		for _, p := range phrases {
			if containsSeq(toks, p) {
				out = append(out, m.labels[i])
				break
			}
		}
	}
	return out
}

// tokenize separa en palabras (letras, dígitos y apóstrofe) en minúsculas.
func tokenize(s string) []string {
	s = strings.ReplaceAll(strings.ToLower(s), "’", "'")
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func containsSeq(toks, seq []string) bool {
	for i := 0; i+len(seq) <= len(toks); i++ {
		match := true
		for j := range seq {
			if toks[i+j] != seq[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
