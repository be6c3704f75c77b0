package catalog

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	cat *Catalog
}

func NewService(cat *Catalog) *Service {
	return &Service{cat: cat}
}

func (s *Service) Catalog() *Catalog {
	return s.cat
}

// MedicineFilter: campos vacíos = sin filtro.
type MedicineFilter struct {
	Query    string // nombre, genérico o marca (substring, sin mayúsculas)
	Category string
	Type     MedicineType
	UsedFor  string
}

func (s *Service) SearchMedicines(ctx context.Context, f MedicineFilter) ([]Medicine, error) {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	category := strings.TrimSpace(f.Category)
	usedFor := strings.TrimSpace(f.UsedFor)

	out := make([]Medicine, 0)
	for _, m := range s.cat.medicines {
		if q != "" && !matchesMedicineQuery(m, q) {
			continue
		}
		if category != "" && !strings.EqualFold(m.Category, category) {
			continue
		}
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		if usedFor != "" && !containsFold(m.UsedFor, usedFor) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *Service) GetMedicine(ctx context.Context, id string) (Medicine, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Medicine{}, ErrInvalidInput
	}
	m, ok := s.cat.MedicineByID(id)
	if !ok {
		return Medicine{}, ErrNotFound
	}
	return m, nil
}

type Remedies struct {
	HomeCare []HomeCareRemedy
	Natural  []NaturalRemedy
}

// RemediesFor devuelve remedios caseros/naturales cuyo forSymptoms contiene la etiqueta.
// Sin etiqueta devuelve todo el catálogo.
func (s *Service) RemediesFor(ctx context.Context, label string) (Remedies, error) {
	label = strings.TrimSpace(label)

	out := Remedies{
		HomeCare: make([]HomeCareRemedy, 0),
		Natural:  make([]NaturalRemedy, 0),
	}
	for _, r := range s.cat.homeCare {
		if label == "" || containsFold(r.ForSymptoms, label) {
			out.HomeCare = append(out.HomeCare, r)
		}
	}
	for _, r := range s.cat.natural {
		if label == "" || containsFold(r.ForSymptoms, label) {
			out.Natural = append(out.Natural, r)
		}
	}
	return out, nil
}

func (s *Service) SymptomDetail(ctx context.Context, name string) (SymptomDetail, error) {
	if strings.TrimSpace(name) == "" {
		return SymptomDetail{}, ErrInvalidInput
	}
	d, ok := s.cat.SymptomDetail(name)
	if !ok {
		return SymptomDetail{}, ErrNotFound
	}
	return d, nil
}

type Interaction struct {
	MedicineID  string
	InteractsID string
	Note        string // la entrada de interactions que coincidió
}

type InteractionReport struct {
	Interactions []Interaction
	Unknown      []string
}

// CheckInteractions cruza la lista interactions de cada medicamento contra nombre,
// genérico y categoría de los demás seleccionados. Solo datos locales.
func (s *Service) CheckInteractions(ctx context.Context, ids []string) (InteractionReport, error) {
	if len(ids) == 0 {
		return InteractionReport{}, ErrInvalidInput
	}

	report := InteractionReport{
		Interactions: make([]Interaction, 0),
		Unknown:      make([]string, 0),
	}

	seen := map[string]struct{}{}
	selected := make([]Medicine, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		m, ok := s.cat.MedicineByID(id)
		if !ok {
			report.Unknown = append(report.Unknown, id)
			continue
		}
		selected = append(selected, m)
	}

	for _, a := range selected {
		for _, b := range selected {
			if a.ID == b.ID {
				continue
			}
			if note, ok := interactsWith(a, b); ok {
				report.Interactions = append(report.Interactions, Interaction{
					MedicineID:  a.ID,
					InteractsID: b.ID,
					Note:        note,
				})
			}
		}
	}

	return report, nil
}

func interactsWith(a, b Medicine) (string, bool) {
	terms := []string{b.Name, b.GenericName, b.Category}
	for _, entry := range a.Interactions {
		low := strings.ToLower(entry)
		for _, t := range terms {
			t = strings.ToLower(strings.TrimSpace(t))
			if t != "" && strings.Contains(low, t) {
				return entry, true
			}
		}
	}
	return "", false
}

func matchesMedicineQuery(m Medicine, q string) bool {
	if strings.Contains(strings.ToLower(m.Name), q) || strings.Contains(strings.ToLower(m.GenericName), q) {
		return true
	}
	for _, b := range m.BrandNames {
		if strings.Contains(strings.ToLower(b), q) {
			return true
		}
	}
	return false
}

func containsFold(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
