package triage

import (
	"context"
	"reflect"
	"testing"
)

func TestMatcher_Match(t *testing.T) {
	m := NewMatcher(embeddedCatalog(t))

	cases := []struct {
		text string
		want []string
	}{
		{"I have a HEADACHE and a mild fever", []string{"Fever", "Headache"}},
		{"sore\n   throat since yesterday", []string{"Sore Throat"}},
		{"crushing chest pain, difficulty breathing", []string{"Chest Pain", "Difficulty Breathing"}},
		{"feeling fine", []string{}},
		{"   ", []string{}},
	}

	for _, tc := range cases {
		got := m.Match(tc.text)
		if got == nil {
			t.Fatalf("%q: expected non-nil slice", tc.text)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%q: got %v want %v", tc.text, got, tc.want)
		}
	}
}

func TestMatcher_OnlyCatalogLabels(t *testing.T) {
	cat := embeddedCatalog(t)
	m := NewMatcher(cat)

	known := map[string]struct{}{}
	for _, l := range cat.SymptomLabels() {
		known[l] = struct{}{}
	}

	for _, l := range m.Match("cough cold nausea insomnia seizures unicorn flu stroke symptoms") {
		if _, ok := known[l]; !ok {
			t.Fatalf("matcher returned unknown label %q", l)
		}
	}
}

func TestMatcher_WholeWordsOnly(t *testing.T) {
	m := NewMatcher(embeddedCatalog(t))

	cases := []struct {
		text string
		want []string
	}{
		{"my boss scolded me and now I have a headache", []string{"Headache"}},
		{"coldplay concert gave me a migraine", []string{"Headache"}},
		{"feverishly typing all night", []string{}},
		{"I caught a cold", []string{"Cold"}},
	}

	for _, tc := range cases {
		if got := m.Match(tc.text); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%q: got %v want %v", tc.text, got, tc.want)
		}
	}
}

func TestMatcher_Keywords(t *testing.T) {
	m := NewMatcher(embeddedCatalog(t))

	cases := []struct {
		text string
		want []string
	}{
		{"I think I am having a seizure", []string{"Seizures"}},
		{"I have allergy symptoms", []string{"Allergies"}},
		{"he passed out and is unconscious", []string{"Loss of Consciousness"}},
		{"I can’t breathe", []string{"Difficulty Breathing"}},
		{"heartburn and a runny nose", []string{"Acidity", "Cold"}},
	}

	for _, tc := range cases {
		if got := m.Match(tc.text); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%q: got %v want %v", tc.text, got, tc.want)
		}
	}
}

func TestService_Analyze_FlagsEmergencyFromKeyword(t *testing.T) {
	svc := NewService(embeddedCatalog(t), nil, nil)

	a, err := svc.Analyze(context.Background(), "my son is having a seizure right now")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.Recommendations.HasEmergency {
		t.Fatalf("expected emergency, got %+v", a)
	}
	if !reflect.DeepEqual(a.Recommendations.EmergencySymptoms, []string{"Seizures"}) {
		t.Fatalf("unexpected emergency symptoms: %v", a.Recommendations.EmergencySymptoms)
	}
	if len(a.Recommendations.Medicines) != 0 {
		t.Fatalf("expected no self-care medicines, got %v", a.Recommendations.Medicines)
	}
}
