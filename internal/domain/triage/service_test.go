package triage

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"health-companion/internal/platform/logger"
)

// -------------------------
// Test recorder
// -------------------------

type testRecorder struct {
	mu              sync.Mutex
	recommendations map[bool]int
	assessments     map[string]int
	unmatched       int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{recommendations: map[bool]int{}, assessments: map[string]int{}}
}

func (r *testRecorder) ObserveRecommendation(emergency bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recommendations[emergency]++
}

func (r *testRecorder) ObserveAssessment(urgency string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assessments[urgency]++
}

func (r *testRecorder) ObserveUnmatched(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unmatched += n
}

func TestService_Recommend(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Out: &buf})
	rec := newTestRecorder()
	svc := NewService(embeddedCatalog(t), log, rec)

	out := svc.Recommend(context.Background(), []string{"Chest Pain", "Unicorn Flu", "Fever"})

	if !out.HasEmergency {
		t.Fatalf("expected emergency")
	}
	if rec.recommendations[true] != 1 || rec.unmatched != 1 {
		t.Fatalf("unexpected recorder state: %+v", rec)
	}
	if !strings.Contains(buf.String(), `"msg":"emergency symptoms reported"`) {
		t.Fatalf("expected emergency log line, got %s", buf.String())
	}
	if !strings.Contains(buf.String(), "Unicorn Flu") {
		t.Fatalf("expected unmatched label in debug log, got %s", buf.String())
	}
}

func TestService_NilDependencies(t *testing.T) {
	svc := NewService(embeddedCatalog(t), nil, nil)

	out := svc.Recommend(context.Background(), []string{"Headache"})
	if len(out.Medicines) == 0 {
		t.Fatalf("expected medicines")
	}
	if _, err := svc.Assess(context.Background(), Assessment{SymptomID: "fever"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_Assess(t *testing.T) {
	rec := newTestRecorder()
	svc := NewService(embeddedCatalog(t), nil, rec)
	ctx := context.Background()

	if _, err := svc.Assess(ctx, Assessment{SymptomID: "   "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Assess(ctx, Assessment{SymptomID: "sore_throat"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	res, err := svc.Assess(ctx, Assessment{
		SymptomID: "headache",
		Answers: map[string]Answer{
			"headache_severity": Single("severe"),
			"headache_symptoms": Many("light_sensitivity", "nausea"),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.UrgencyLevel != UrgencyHigh {
		t.Fatalf("expected high, got %s", res.UrgencyLevel)
	}
	if rec.assessments["high"] != 1 {
		t.Fatalf("expected one high assessment recorded, got %+v", rec.assessments)
	}
}

func TestService_Analyze(t *testing.T) {
	svc := NewService(embeddedCatalog(t), nil, nil)
	ctx := context.Background()

	if _, err := svc.Analyze(ctx, " \n "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	a, err := svc.Analyze(ctx, "Since Monday: cough and a sore throat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a.Matched, []string{"Cough", "Sore Throat"}) {
		t.Fatalf("unexpected matches: %v", a.Matched)
	}
	want := svc.Recommend(ctx, []string{"Cough", "Sore Throat"})
	if !reflect.DeepEqual(a.Recommendations, want) {
		t.Fatalf("analyze must resolve matches like Recommend")
	}

	none, err := svc.Analyze(ctx, "nothing to see")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(none.Matched) != 0 || none.Recommendations.HasEmergency {
		t.Fatalf("expected empty analysis, got %+v", none)
	}
}

func TestService_ConcurrentUse(t *testing.T) {
	svc := NewService(embeddedCatalog(t), nil, newTestRecorder())
	ctx := context.Background()
	want := svc.Recommend(ctx, []string{"Headache", "Cold"})

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := svc.Recommend(ctx, []string{"Headache", "Cold"})
			if !reflect.DeepEqual(got, want) {
				errs <- "mismatch"
			}
		}()
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Fatalf("concurrent recommend: %s", e)
	}
}
