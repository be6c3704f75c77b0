package catalog

type Dosage struct {
	Adult       string `json:"adult" yaml:"adult"`
	Child       string `json:"child" yaml:"child"`
	Elderly     string `json:"elderly" yaml:"elderly"`
	Frequency   string `json:"frequency" yaml:"frequency"`
	MaxDuration string `json:"max_duration" yaml:"max_duration"`
}

type SideEffects struct {
	Common  []string `json:"common" yaml:"common"`
	Rare    []string `json:"rare" yaml:"rare"`
	Serious []string `json:"serious" yaml:"serious"`
}

// Medicine es un registro de referencia inmutable.
// Dosis y duración son texto libre; no se validan.
type Medicine struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	GenericName string   `json:"generic_name" yaml:"generic_name"`
	BrandNames  []string `json:"brand_names" yaml:"brand_names"`

	Category string       `json:"category" yaml:"category"`
	Type     MedicineType `json:"type" yaml:"type"`

	UsedFor []string `json:"used_for" yaml:"used_for"`
	Dosage  Dosage   `json:"dosage" yaml:"dosage"`

	SideEffects       SideEffects       `json:"side_effects" yaml:"side_effects"`
	Warnings          []string          `json:"warnings" yaml:"warnings"`
	Contraindications []string          `json:"contraindications" yaml:"contraindications"`
	Interactions      []string          `json:"interactions" yaml:"interactions"`
	SafetyClass       SafetyClass       `json:"safety_class" yaml:"safety_class"`
	PregnancyCategory PregnancyCategory `json:"pregnancy_category" yaml:"pregnancy_category"`
}

type HomeCareRemedy struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	ForSymptoms   []string `json:"for_symptoms" yaml:"for_symptoms"`
	Instructions  []string `json:"instructions" yaml:"instructions"`
	Benefits      []string `json:"benefits" yaml:"benefits"`
	Precautions   []string `json:"precautions" yaml:"precautions"`
	Effectiveness string   `json:"effectiveness" yaml:"effectiveness"`
}

type NaturalRemedy struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Type        string   `json:"type" yaml:"type"` // herb, spice, oil...
	ForSymptoms []string `json:"for_symptoms" yaml:"for_symptoms"`
	Usage       []string `json:"usage" yaml:"usage"`
	Benefits    []string `json:"benefits" yaml:"benefits"`
	Precautions []string `json:"precautions" yaml:"precautions"`
}

// FollowUpOption: Severity nil = la respuesta no influye en la urgencia.
type FollowUpOption struct {
	Value    string    `json:"value" yaml:"value"`
	Label    string    `json:"label" yaml:"label"`
	Severity *Severity `json:"severity,omitempty" yaml:"severity,omitempty"`
}

type FollowUpQuestion struct {
	ID       string           `json:"id" yaml:"id"`
	Question string           `json:"question" yaml:"question"`
	Options  []FollowUpOption `json:"options" yaml:"options"`
	Multiple bool             `json:"multiple" yaml:"multiple"`
}

// Option busca la opción por value dentro de la pregunta.
func (q FollowUpQuestion) Option(value string) (FollowUpOption, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return FollowUpOption{}, false
}

type MedicineDose struct {
	Name      string `json:"name" yaml:"name"`
	Dosage    string `json:"dosage" yaml:"dosage"`
	Frequency string `json:"frequency" yaml:"frequency"`
	Notes     string `json:"notes" yaml:"notes"`
}

type DoctorRecommendation struct {
	Specialty string        `json:"specialty" yaml:"specialty"`
	Urgency   DoctorUrgency `json:"urgency" yaml:"urgency"`
	Reason    string        `json:"reason" yaml:"reason"`
}

type DetailedRecommendations struct {
	Medicines       []MedicineDose         `json:"medicines" yaml:"medicines"`
	HomeRemedies    []string               `json:"home_remedies" yaml:"home_remedies"`
	NaturalRemedies []string               `json:"natural_remedies" yaml:"natural_remedies"`
	Doctors         []DoctorRecommendation `json:"doctors" yaml:"doctors"`
	Warnings        []string               `json:"warnings" yaml:"warnings"`
	GeneralAdvice   []string               `json:"general_advice" yaml:"general_advice"`
}

type SymptomDetail struct {
	ID                string                  `json:"id" yaml:"id"`
	Name              string                  `json:"name" yaml:"name"`
	FollowUpQuestions []FollowUpQuestion      `json:"follow_up_questions" yaml:"follow_up_questions"`
	Recommendations   DetailedRecommendations `json:"recommendations" yaml:"recommendations"`
}

// Question busca la pregunta de seguimiento por ID.
func (d SymptomDetail) Question(id string) (FollowUpQuestion, bool) {
	for _, q := range d.FollowUpQuestions {
		if q.ID == id {
			return q, true
		}
	}
	return FollowUpQuestion{}, false
}

// SymptomMapping son los IDs recomendados para una etiqueta de síntoma.
type SymptomMapping struct {
	Medicines []string `json:"medicines" yaml:"medicines"`
	HomeCare  []string `json:"home_care" yaml:"home_care"`
	Natural   []string `json:"natural" yaml:"natural"`
}

func (m SymptomMapping) IsEmpty() bool {
	return len(m.Medicines) == 0 && len(m.HomeCare) == 0 && len(m.Natural) == 0
}

// Document es la forma serializada de la base de conocimiento (YAML/JSON).
type Document struct {
	Medicines           []Medicine                `json:"medicines" yaml:"medicines"`
	HomeCare            []HomeCareRemedy          `json:"home_care" yaml:"home_care"`
	Natural             []NaturalRemedy           `json:"natural" yaml:"natural"`
	SymptomMappings     map[string]SymptomMapping `json:"symptom_mappings" yaml:"symptom_mappings"`
	EmergencyConditions []string                  `json:"emergency_conditions" yaml:"emergency_conditions"`
	SymptomDetails      []SymptomDetail           `json:"symptom_details" yaml:"symptom_details"`

	// SymptomKeywords: etiqueta => frases alternativas para texto libre ("seizure" => Seizures).
	SymptomKeywords map[string][]string `json:"symptom_keywords,omitempty" yaml:"symptom_keywords,omitempty"`
}
