package triage

import "health-companion/internal/domain/catalog"

// Resolver junta las recomendaciones de una lista de etiquetas de síntomas.
// Es puro: no guarda estado entre llamadas.
type Resolver struct {
	cat *catalog.Catalog
}

func NewResolver(cat *catalog.Catalog) *Resolver {
	return &Resolver{cat: cat}
}

// Resolve:
//   - las etiquetas de emergencia se acumulan en orden de entrada, con duplicados;
//   - los IDs mapeados se unen en sets (sin duplicados entre síntomas);
//   - el resultado sale en orden de catálogo, no de entrada;
//   - IDs que no existen en el catálogo se omiten sin error.
func (r *Resolver) Resolve(symptoms []string) Recommendations {
	medIDs := map[string]struct{}{}
	homeIDs := map[string]struct{}{}
	natIDs := map[string]struct{}{}
	emergency := make([]string, 0)
	unmatched := make([]string, 0)

	for _, label := range symptoms {
		isEmergency := r.cat.IsEmergency(label)
		if isEmergency {
			emergency = append(emergency, label)
		}

		m, ok := r.cat.Mapping(label)
		if !ok {
			if !isEmergency {
				unmatched = append(unmatched, label)
			}
			continue
		}
		for _, id := range m.Medicines {
			medIDs[id] = struct{}{}
		}
		for _, id := range m.HomeCare {
			homeIDs[id] = struct{}{}
		}
		for _, id := range m.Natural {
			natIDs[id] = struct{}{}
		}
	}

	out := Recommendations{
		Medicines:         make([]catalog.Medicine, 0, len(medIDs)),
		HomeCare:          make([]catalog.HomeCareRemedy, 0, len(homeIDs)),
		Natural:           make([]catalog.NaturalRemedy, 0, len(natIDs)),
		HasEmergency:      len(emergency) > 0,
		EmergencySymptoms: emergency,
		Unmatched:         unmatched,
	}

	for _, m := range r.cat.Medicines() {
		if _, ok := medIDs[m.ID]; ok {
			out.Medicines = append(out.Medicines, m)
		}
	}
	for _, h := range r.cat.HomeCare() {
		if _, ok := homeIDs[h.ID]; ok {
			out.HomeCare = append(out.HomeCare, h)
		}
	}
	for _, n := range r.cat.Natural() {
		if _, ok := natIDs[n.ID]; ok {
			out.Natural = append(out.Natural, n)
		}
	}

	return out
}
