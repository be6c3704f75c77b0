package catalog

import (
	"sort"
	"strings"
	"unicode"
)

// Catalog expone la base de conocimiento en modo solo lectura.
// Se construye una vez al arrancar y se comparte por puntero; no tiene estado mutable,
// así que es seguro usarlo desde varios requests en paralelo sin locks.
type Catalog struct {
	medicines []Medicine
	homeCare  []HomeCareRemedy
	natural   []NaturalRemedy
	details   []SymptomDetail

	medicineByID map[string]int
	homeCareByID map[string]int
	naturalByID  map[string]int
	detailByID   map[string]int

	mappings  map[string]SymptomMapping
	emergency []string
	emergSet  map[string]struct{}
	keywords  map[string][]string
}

func New(doc Document) *Catalog {
	c := &Catalog{
		medicines:    append([]Medicine(nil), doc.Medicines...),
		homeCare:     append([]HomeCareRemedy(nil), doc.HomeCare...),
		natural:      append([]NaturalRemedy(nil), doc.Natural...),
		details:      append([]SymptomDetail(nil), doc.SymptomDetails...),
		medicineByID: make(map[string]int, len(doc.Medicines)),
		homeCareByID: make(map[string]int, len(doc.HomeCare)),
		naturalByID:  make(map[string]int, len(doc.Natural)),
		detailByID:   make(map[string]int, len(doc.SymptomDetails)),
		mappings:     make(map[string]SymptomMapping, len(doc.SymptomMappings)),
		emergency:    append([]string(nil), doc.EmergencyConditions...),
		emergSet:     make(map[string]struct{}, len(doc.EmergencyConditions)),
		keywords:     make(map[string][]string, len(doc.SymptomKeywords)),
	}

	// En IDs duplicados gana el primero (Validate los reporta).
	for i, m := range c.medicines {
		if _, ok := c.medicineByID[m.ID]; !ok {
			c.medicineByID[m.ID] = i
		}
	}
	for i, r := range c.homeCare {
		if _, ok := c.homeCareByID[r.ID]; !ok {
			c.homeCareByID[r.ID] = i
		}
	}
	for i, r := range c.natural {
		if _, ok := c.naturalByID[r.ID]; !ok {
			c.naturalByID[r.ID] = i
		}
	}
	for i, d := range c.details {
		if _, ok := c.detailByID[d.ID]; !ok {
			c.detailByID[d.ID] = i
		}
	}
	for label, m := range doc.SymptomMappings {
		c.mappings[label] = m
	}
	for _, label := range c.emergency {
		c.emergSet[label] = struct{}{}
	}
	for label, kws := range doc.SymptomKeywords {
		c.keywords[label] = append([]string(nil), kws...)
	}

	return c
}

// NormalizeSymptomKey deriva la clave de symptom detail desde una etiqueta libre:
// minúsculas y cada tramo de espacios => "_" ("Sore Throat" => "sore_throat").
// Los espacios al inicio/fin también se reemplazan, no se recortan.
func NormalizeSymptomKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	inSpace := false
	for _, r := range strings.ToLower(name) {
		if isSpace(r) {
			if !inSpace {
				b.WriteByte('_')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// isSpace: espacios Unicode más U+FEFF (BOM); U+0085 no cuenta.
func isSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

func (c *Catalog) MedicineByID(id string) (Medicine, bool) {
	i, ok := c.medicineByID[id]
	if !ok {
		return Medicine{}, false
	}
	return c.medicines[i], true
}

func (c *Catalog) HomeCareByID(id string) (HomeCareRemedy, bool) {
	i, ok := c.homeCareByID[id]
	if !ok {
		return HomeCareRemedy{}, false
	}
	return c.homeCare[i], true
}

func (c *Catalog) NaturalByID(id string) (NaturalRemedy, bool) {
	i, ok := c.naturalByID[id]
	if !ok {
		return NaturalRemedy{}, false
	}
	return c.natural[i], true
}

// SymptomDetail normaliza el nombre y busca coincidencia exacta.
// Sin matching parcial ni fuzzy: si la clave no existe, (zero, false).
func (c *Catalog) SymptomDetail(name string) (SymptomDetail, bool) {
	return c.SymptomDetailByID(NormalizeSymptomKey(name))
}

func (c *Catalog) SymptomDetailByID(id string) (SymptomDetail, bool) {
	i, ok := c.detailByID[id]
	if !ok {
		return SymptomDetail{}, false
	}
	return c.details[i], true
}

func (c *Catalog) Mapping(label string) (SymptomMapping, bool) {
	m, ok := c.mappings[label]
	return m, ok
}

func (c *Catalog) IsEmergency(label string) bool {
	_, ok := c.emergSet[label]
	return ok
}

// Keywords devuelve las frases alternativas de una etiqueta (puede ser vacío).
func (c *Catalog) Keywords(label string) []string {
	return append([]string(nil), c.keywords[label]...)
}

func (c *Catalog) EmergencyConditions() []string {
	return append([]string(nil), c.emergency...)
}

func (c *Catalog) Medicines() []Medicine {
	return append([]Medicine(nil), c.medicines...)
}

func (c *Catalog) HomeCare() []HomeCareRemedy {
	return append([]HomeCareRemedy(nil), c.homeCare...)
}

func (c *Catalog) Natural() []NaturalRemedy {
	return append([]NaturalRemedy(nil), c.natural...)
}

func (c *Catalog) SymptomDetails() []SymptomDetail {
	return append([]SymptomDetail(nil), c.details...)
}

// SymptomLabels devuelve las etiquetas conocidas (tabla de mapeo + emergencias), ordenadas.
func (c *Catalog) SymptomLabels() []string {
	seen := make(map[string]struct{}, len(c.mappings)+len(c.emergency))
	out := make([]string, 0, len(c.mappings)+len(c.emergency))
	for label := range c.mappings {
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	for _, label := range c.emergency {
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}
