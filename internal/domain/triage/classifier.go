package triage

import "health-companion/internal/domain/catalog"

type Classifier struct {
	cat *catalog.Catalog
}

func NewClassifier(cat *catalog.Catalog) *Classifier {
	return &Classifier{cat: cat}
}

// Classify reduce las respuestas a un único nivel de urgencia.
// SymptomID se resuelve igual que SymptomDetail (normalizado, exacto); si no existe => false.
// Preguntas u opciones desconocidas se ignoran.
func (c *Classifier) Classify(a Assessment) (Result, bool) {
	detail, ok := c.cat.SymptomDetail(a.SymptomID)
	if !ok {
		return Result{}, false
	}

	level := UrgencyLow
	for questionID, answer := range a.Answers {
		q, ok := detail.Question(questionID)
		if !ok {
			continue
		}
		for _, value := range answer.Values {
			opt, ok := q.Option(value)
			if !ok || opt.Severity == nil {
				continue
			}
			level = escalate(level, *opt.Severity)
		}
	}

	return Result{
		SymptomDetail:   detail,
		UrgencyLevel:    level,
		Recommendations: detail.Recommendations,
	}, true
}

// escalate nunca baja el nivel: se queda con el mayor Rank entre el actual y el
// de la opción. El resultado no depende del orden de las respuestas.
func escalate(current UrgencyLevel, s catalog.Severity) UrgencyLevel {
	if next := levelFor(s); next.Rank() > current.Rank() {
		return next
	}
	return current
}

func levelFor(s catalog.Severity) UrgencyLevel {
	switch s {
	case catalog.SeverityEmergency:
		return UrgencyEmergency
	case catalog.SeverityHigh:
		return UrgencyHigh
	case catalog.SeverityMedium:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}
