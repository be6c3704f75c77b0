package triage

import (
	"context"
	"errors"
	"strings"

	"health-companion/internal/domain/catalog"
	"health-companion/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Recorder recibe los resultados del motor (prometheus en producción).
type Recorder interface {
	ObserveRecommendation(emergency bool)
	ObserveAssessment(urgency string)
	ObserveUnmatched(n int)
}

type noopRecorder struct{}

func (noopRecorder) ObserveRecommendation(bool) {}
func (noopRecorder) ObserveAssessment(string)   {}
func (noopRecorder) ObserveUnmatched(int)       {}

type Service struct {
	resolver   *Resolver
	classifier *Classifier
	matcher    *Matcher

	log logger.Logger
	rec Recorder
}

// NewService arma resolver, clasificador y matcher sobre el mismo catálogo.
// log y rec pueden ser nil.
func NewService(cat *catalog.Catalog, log logger.Logger, rec Recorder) *Service {
	if log == nil {
		log = logger.Nop()
	}
	if rec == nil {
		rec = noopRecorder{}
	}
	return &Service{
		resolver:   NewResolver(cat),
		classifier: NewClassifier(cat),
		matcher:    NewMatcher(cat),
		log:        log,
		rec:        rec,
	}
}

func (s *Service) Recommend(ctx context.Context, symptoms []string) Recommendations {
	out := s.resolver.Resolve(symptoms)

	s.rec.ObserveRecommendation(out.HasEmergency)
	if len(out.Unmatched) > 0 {
		s.rec.ObserveUnmatched(len(out.Unmatched))
		s.log.Debug("unmatched symptom labels", map[string]any{
			"labels": out.Unmatched,
		})
	}
	if out.HasEmergency {
		s.log.Info("emergency symptoms reported", map[string]any{
			"symptoms": out.EmergencySymptoms,
		})
	}
	return out
}

func (s *Service) Assess(ctx context.Context, a Assessment) (Result, error) {
	if strings.TrimSpace(a.SymptomID) == "" {
		return Result{}, ErrInvalidInput
	}

	res, ok := s.classifier.Classify(a)
	if !ok {
		return Result{}, ErrNotFound
	}

	s.rec.ObserveAssessment(string(res.UrgencyLevel))
	return res, nil
}

type Analysis struct {
	Matched         []string
	Recommendations Recommendations
}

// Analyze busca etiquetas del catálogo en el texto y las pasa por Recommend.
func (s *Service) Analyze(ctx context.Context, text string) (Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return Analysis{}, ErrInvalidInput
	}

	matched := s.matcher.Match(text)
	return Analysis{
		Matched:         matched,
		Recommendations: s.Recommend(ctx, matched),
	}, nil
}
