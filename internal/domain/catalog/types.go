package catalog

import "fmt"

// Severity es la etiqueta opcional de una opción de respuesta.
// @Enum low, medium, high, emergency
type Severity string

const (
	SeverityLow       Severity = "low"
	SeverityMedium    Severity = "medium"
	SeverityHigh      Severity = "high"
	SeverityEmergency Severity = "emergency"
)

func ParseSeverity(s string) (Severity, error) {
	switch Severity(s) {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityEmergency:
		return Severity(s), nil
	}
	return "", fmt.Errorf("unknown severity %q", s)
}

// UnmarshalText rechaza valores fuera del enum (p.ej. "meduim") al cargar el documento.
func (s *Severity) UnmarshalText(b []byte) error {
	v, err := ParseSeverity(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MedicineType clasifica el origen/regulación de un medicamento.
type MedicineType string

const (
	MedicineTypeOTC          MedicineType = "OTC"
	MedicineTypePrescription MedicineType = "Prescription"
	MedicineTypeAyurvedic    MedicineType = "Ayurvedic"
	MedicineTypeHomeopathic  MedicineType = "Homeopathic"
)

func ParseMedicineType(s string) (MedicineType, error) {
	switch MedicineType(s) {
	case MedicineTypeOTC, MedicineTypePrescription, MedicineTypeAyurvedic, MedicineTypeHomeopathic:
		return MedicineType(s), nil
	}
	return "", fmt.Errorf("unknown medicine type %q", s)
}

func (t *MedicineType) UnmarshalText(b []byte) error {
	v, err := ParseMedicineType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

type SafetyClass string

const (
	SafetyGenerallySafe    SafetyClass = "Generally Safe"
	SafetyUseCaution       SafetyClass = "Use Caution"
	SafetyConsultDoctor    SafetyClass = "Consult Doctor"
	SafetyPrescriptionOnly SafetyClass = "Prescription Only"
)

func ParseSafetyClass(s string) (SafetyClass, error) {
	switch SafetyClass(s) {
	case SafetyGenerallySafe, SafetyUseCaution, SafetyConsultDoctor, SafetyPrescriptionOnly:
		return SafetyClass(s), nil
	}
	return "", fmt.Errorf("unknown safety class %q", s)
}

func (c *SafetyClass) UnmarshalText(b []byte) error {
	v, err := ParseSafetyClass(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

type PregnancyCategory string

const (
	PregnancyA             PregnancyCategory = "A"
	PregnancyB             PregnancyCategory = "B"
	PregnancyC             PregnancyCategory = "C"
	PregnancyD             PregnancyCategory = "D"
	PregnancyX             PregnancyCategory = "X"
	PregnancyNotClassified PregnancyCategory = "Not Classified"
)

func ParsePregnancyCategory(s string) (PregnancyCategory, error) {
	switch PregnancyCategory(s) {
	case PregnancyA, PregnancyB, PregnancyC, PregnancyD, PregnancyX, PregnancyNotClassified:
		return PregnancyCategory(s), nil
	}
	return "", fmt.Errorf("unknown pregnancy category %q", s)
}

func (p *PregnancyCategory) UnmarshalText(b []byte) error {
	v, err := ParsePregnancyCategory(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// DoctorUrgency indica qué tan pronto consultar al especialista sugerido.
type DoctorUrgency string

const (
	DoctorRoutine   DoctorUrgency = "routine"
	DoctorSoon      DoctorUrgency = "soon"
	DoctorUrgent    DoctorUrgency = "urgent"
	DoctorEmergency DoctorUrgency = "emergency"
)

func ParseDoctorUrgency(s string) (DoctorUrgency, error) {
	switch DoctorUrgency(s) {
	case DoctorRoutine, DoctorSoon, DoctorUrgent, DoctorEmergency:
		return DoctorUrgency(s), nil
	}
	return "", fmt.Errorf("unknown doctor urgency %q", s)
}

func (u *DoctorUrgency) UnmarshalText(b []byte) error {
	v, err := ParseDoctorUrgency(string(b))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
