package triage

import (
	"testing"

	"health-companion/internal/domain/catalog"
)

func classify(t *testing.T, c *Classifier, symptomID string, answers map[string]Answer) UrgencyLevel {
	t.Helper()

	res, ok := c.Classify(Assessment{SymptomID: symptomID, Answers: answers})
	if !ok {
		t.Fatalf("expected %q to resolve", symptomID)
	}
	return res.UrgencyLevel
}

func TestClassify_Table(t *testing.T) {
	c := NewClassifier(embeddedCatalog(t))

	cases := []struct {
		name    string
		symptom string
		answers map[string]Answer
		want    UrgencyLevel
	}{
		{"no answers", "fever", nil, UrgencyLow},
		{"emergency dominates", "fever", map[string]Answer{
			"fever_temperature": Single("very_high"),
			"fever_duration":    Single("just_started"),
		}, UrgencyEmergency},
		{"high not downgraded", "fever", map[string]Answer{
			"fever_temperature": Single("high"),
			"fever_duration":    Single("one_to_three_days"),
		}, UrgencyHigh},
		{"medium from low", "fever", map[string]Answer{
			"fever_temperature": Single("mild"),
			"fever_duration":    Single("one_to_three_days"),
		}, UrgencyMedium},
		{"multiple values", "fever", map[string]Answer{
			"fever_symptoms": Many("chills", "rash"),
		}, UrgencyHigh},
		{"multiple with emergency", "fever", map[string]Answer{
			"fever_symptoms": Many("rash", "stiff_neck", "chills"),
		}, UrgencyEmergency},
		{"options without severity", "headache", map[string]Answer{
			"headache_location": Single("forehead"),
		}, UrgencyLow},
		{"unknown question skipped", "fever", map[string]Answer{
			"not_a_question": Single("very_high"),
		}, UrgencyLow},
		{"unknown option skipped", "fever", map[string]Answer{
			"fever_temperature": Single("scorching"),
		}, UrgencyLow},
		{"question from another symptom skipped", "cough", map[string]Answer{
			"fever_temperature": Single("very_high"),
		}, UrgencyLow},
		{"cough with blood", "cough", map[string]Answer{
			"cough_type":     Single("blood"),
			"cough_duration": Single("less_than_week"),
		}, UrgencyEmergency},
		{"normalized symptom id", "Fever", map[string]Answer{
			"fever_duration": Single("more_than_three_days"),
		}, UrgencyHigh},
	}

	for _, tc := range cases {
		if got := classify(t, c, tc.symptom, tc.answers); got != tc.want {
			t.Fatalf("%s: got %s want %s", tc.name, got, tc.want)
		}
	}
}

func TestClassify_UnknownSymptom(t *testing.T) {
	c := NewClassifier(embeddedCatalog(t))

	for _, id := range []string{"sore_throat", "Sore Throat", "unicorn", ""} {
		if _, ok := c.Classify(Assessment{SymptomID: id}); ok {
			t.Fatalf("expected %q to be absent", id)
		}
	}
}

func TestClassify_ReturnsDetailRecommendations(t *testing.T) {
	cat := embeddedCatalog(t)
	c := NewClassifier(cat)

	res, ok := c.Classify(Assessment{SymptomID: "headache"})
	if !ok {
		t.Fatalf("expected headache")
	}
	detail, _ := cat.SymptomDetail("headache")
	if res.SymptomDetail.ID != detail.ID {
		t.Fatalf("unexpected detail: %s", res.SymptomDetail.ID)
	}
	if len(res.Recommendations.Doctors) != len(detail.Recommendations.Doctors) ||
		len(res.Recommendations.Warnings) != len(detail.Recommendations.Warnings) {
		t.Fatalf("expected the detail recommendations to be returned as is")
	}
}

// Cualquier orden de las mismas respuestas da el mismo nivel.
func TestClassify_OrderIndependent(t *testing.T) {
	c := NewClassifier(embeddedCatalog(t))

	values := []string{"chills", "rash", "stiff_neck", "body_aches"}
	perms := [][]string{
		{values[0], values[1], values[2], values[3]},
		{values[3], values[2], values[1], values[0]},
		{values[2], values[0], values[3], values[1]},
		{values[1], values[3], values[0], values[2]},
	}
	for _, p := range perms {
		got := classify(t, c, "fever", map[string]Answer{"fever_symptoms": Many(p...)})
		if got != UrgencyEmergency {
			t.Fatalf("order %v: got %s", p, got)
		}
	}
}

func TestEscalate_IsMaxReduction(t *testing.T) {
	levels := []UrgencyLevel{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyEmergency}
	severities := []catalog.Severity{catalog.SeverityLow, catalog.SeverityMedium, catalog.SeverityHigh, catalog.SeverityEmergency}

	for i, cur := range levels {
		for j, s := range severities {
			want := levels[max(i, j)]
			if got := escalate(cur, s); got != want {
				t.Fatalf("escalate(%s, %s) = %s, want %s", cur, s, got, want)
			}
			if escalate(cur, s).Rank() < cur.Rank() {
				t.Fatalf("escalate(%s, %s) downgraded", cur, s)
			}
		}
	}
}
