package triage

import (
	"bytes"
	"encoding/json"
	"errors"

	"health-companion/internal/domain/catalog"
)

// UrgencyLevel es el resultado de la reducción de triage.
// @Enum low, medium, high, emergency
type UrgencyLevel string

const (
	UrgencyLow       UrgencyLevel = "low"
	UrgencyMedium    UrgencyLevel = "medium"
	UrgencyHigh      UrgencyLevel = "high"
	UrgencyEmergency UrgencyLevel = "emergency"
)

// Rank ordena low < medium < high < emergency.
func (u UrgencyLevel) Rank() int {
	switch u {
	case UrgencyMedium:
		return 1
	case UrgencyHigh:
		return 2
	case UrgencyEmergency:
		return 3
	default:
		return 0
	}
}

// Answer es la respuesta a una pregunta: un valor, o varios si la pregunta es multiple.
// En JSON acepta "x" o ["x","y"].
type Answer struct {
	Values []string
}

func Single(v string) Answer {
	return Answer{Values: []string{v}}
}

func Many(vs ...string) Answer {
	return Answer{Values: vs}
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if len(a.Values) == 1 {
		return json.Marshal(a.Values[0])
	}
	if a.Values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a.Values)
}

func (a *Answer) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		a.Values = nil
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		a.Values = []string{s}
		return nil
	case '[':
		var vs []string
		if err := json.Unmarshal(b, &vs); err != nil {
			return err
		}
		a.Values = vs
		return nil
	}
	return errors.New("answer must be a string or an array of strings")
}

// Assessment es la entrada transitoria del clasificador; no se persiste.
type Assessment struct {
	SymptomID string
	Answers   map[string]Answer // question id => respuesta
}

type Result struct {
	SymptomDetail   catalog.SymptomDetail
	UrgencyLevel    UrgencyLevel
	Recommendations catalog.DetailedRecommendations
}

// Recommendations es el bundle deduplicado para una lista de síntomas.
type Recommendations struct {
	Medicines         []catalog.Medicine
	HomeCare          []catalog.HomeCareRemedy
	Natural           []catalog.NaturalRemedy
	HasEmergency      bool
	EmergencySymptoms []string

	// Unmatched: etiquetas que no están ni en la tabla de mapeo ni en emergencias.
	// Solo informativo (logs/métricas); no cambia el resto del resultado.
	Unmatched []string
}
