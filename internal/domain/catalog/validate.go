package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

type IssueKind string

const (
	IssueDanglingReference     IssueKind = "dangling_reference"
	IssueDuplicateID           IssueKind = "duplicate_id"
	IssueDuplicateQuestion     IssueKind = "duplicate_question"
	IssueDuplicateOptionValue  IssueKind = "duplicate_option_value"
	IssueInvalidSeverity       IssueKind = "invalid_severity"
	IssueUnnormalizedSymptomID IssueKind = "unnormalized_symptom_id"
	IssueEmergencyHasMapping   IssueKind = "emergency_has_mapping"
	IssueUnknownKeywordLabel   IssueKind = "unknown_keyword_label"
	IssueInvalidKeyword        IssueKind = "invalid_keyword"
)

// Issue es un problema de integridad de datos. No se evalúa en el path de requests:
// el motor omite referencias colgantes en silencio; esto es para arranque y tests.
type Issue struct {
	Kind    IssueKind
	Subject string
	Detail  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s (%s)", i.Kind, i.Subject, i.Detail)
}

// Validate revisa consistencia entre tablas y catálogos.
func Validate(c *Catalog) []Issue {
	var issues []Issue

	issues = append(issues, duplicateIDs("medicine", len(c.medicines), func(i int) string { return c.medicines[i].ID })...)
	issues = append(issues, duplicateIDs("home_care", len(c.homeCare), func(i int) string { return c.homeCare[i].ID })...)
	issues = append(issues, duplicateIDs("natural", len(c.natural), func(i int) string { return c.natural[i].ID })...)
	issues = append(issues, duplicateIDs("symptom_detail", len(c.details), func(i int) string { return c.details[i].ID })...)

	labels := make([]string, 0, len(c.mappings))
	for label := range c.mappings {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		m := c.mappings[label]
		for _, id := range m.Medicines {
			if _, ok := c.MedicineByID(id); !ok {
				issues = append(issues, Issue{IssueDanglingReference, label, "medicine " + id})
			}
		}
		for _, id := range m.HomeCare {
			if _, ok := c.HomeCareByID(id); !ok {
				issues = append(issues, Issue{IssueDanglingReference, label, "home_care " + id})
			}
		}
		for _, id := range m.Natural {
			if _, ok := c.NaturalByID(id); !ok {
				issues = append(issues, Issue{IssueDanglingReference, label, "natural " + id})
			}
		}
		if c.IsEmergency(label) && !m.IsEmpty() {
			issues = append(issues, Issue{IssueEmergencyHasMapping, label, "emergency conditions must not carry self-care recommendations"})
		}
	}

	issues = append(issues, keywordIssues(c)...)

	for _, d := range c.details {
		if NormalizeSymptomKey(d.ID) != d.ID {
			issues = append(issues, Issue{IssueUnnormalizedSymptomID, d.ID, "expected " + NormalizeSymptomKey(d.ID)})
		}

		seenQ := map[string]struct{}{}
		for _, q := range d.FollowUpQuestions {
			if _, ok := seenQ[q.ID]; ok {
				issues = append(issues, Issue{IssueDuplicateQuestion, d.ID, q.ID})
			}
			seenQ[q.ID] = struct{}{}

			seenV := map[string]struct{}{}
			for _, o := range q.Options {
				if _, ok := seenV[o.Value]; ok {
					issues = append(issues, Issue{IssueDuplicateOptionValue, d.ID + "." + q.ID, o.Value})
				}
				seenV[o.Value] = struct{}{}

				if o.Severity != nil {
					if _, err := ParseSeverity(string(*o.Severity)); err != nil {
						issues = append(issues, Issue{IssueInvalidSeverity, d.ID + "." + q.ID + "." + o.Value, err.Error()})
					}
				}
			}
		}
	}

	return issues
}

// Validate devuelve ErrInvalidCatalog envolviendo el listado de issues, o nil.
func (c *Catalog) Validate() error {
	issues := Validate(c)
	if len(issues) == 0 {
		return nil
	}
	parts := make([]string, 0, len(issues))
	for _, i := range issues {
		parts = append(parts, i.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(parts, "; "))
}

// keywordIssues revisa que cada frase apunte a una etiqueta conocida,
// no esté vacía y no se repita entre etiquetas.
func keywordIssues(c *Catalog) []Issue {
	known := make(map[string]struct{})
	for _, l := range c.SymptomLabels() {
		known[l] = struct{}{}
	}

	labels := make([]string, 0, len(c.keywords))
	for label := range c.keywords {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var issues []Issue
	owner := map[string]string{}
	for _, label := range labels {
		if _, ok := known[label]; !ok {
			issues = append(issues, Issue{IssueUnknownKeywordLabel, label, "not in symptom_mappings or emergency_conditions"})
		}
		for _, kw := range c.keywords[label] {
			key := strings.ToLower(strings.Join(strings.Fields(kw), " "))
			if key == "" {
				issues = append(issues, Issue{IssueInvalidKeyword, label, "blank keyword"})
				continue
			}
			if prev, ok := owner[key]; ok && prev != label {
				issues = append(issues, Issue{IssueInvalidKeyword, label, "keyword " + key + " also used by " + prev})
				continue
			}
			owner[key] = label
		}
	}
	return issues
}

func duplicateIDs(kind string, n int, idAt func(int) string) []Issue {
	var out []Issue
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := idAt(i)
		if _, ok := seen[id]; ok {
			out = append(out, Issue{IssueDuplicateID, kind, id})
			continue
		}
		seen[id] = struct{}{}
	}
	return out
}
