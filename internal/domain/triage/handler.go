package triage

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"health-companion/internal/domain/catalog"

	"github.com/go-chi/chi/v5"
)

const defaultMaxSymptoms = 50

func RegisterRoutes(r chi.Router, svc *Service, maxSymptoms int) {
	if maxSymptoms <= 0 {
		maxSymptoms = defaultMaxSymptoms
	}

	r.Route("/triage", func(tr chi.Router) {
		tr.Post("/recommendations", recommendHandler(svc, maxSymptoms))
		tr.Post("/assessments", assessHandler(svc))
		tr.Post("/analyze", analyzeHandler(svc))
	})
}

type recommendRequest struct {
	Symptoms []string `json:"symptoms"`
}

type recommendationsResponse struct {
	Medicines         []catalog.Medicine       `json:"medicines"`
	HomeCare          []catalog.HomeCareRemedy `json:"home_care"`
	Natural           []catalog.NaturalRemedy  `json:"natural"`
	HasEmergency      bool                     `json:"has_emergency"`
	EmergencySymptoms []string                 `json:"emergency_symptoms"`
}

// assessRequest: answers acepta string o array de strings por pregunta.
type assessRequest struct {
	SymptomID string            `json:"symptom_id"`
	Answers   map[string]Answer `json:"answers" swaggertype:"object"`
}

type assessmentResponse struct {
	SymptomDetail   catalog.SymptomDetail           `json:"symptom_detail"`
	UrgencyLevel    UrgencyLevel                    `json:"urgency_level" enums:"low,medium,high,emergency"`
	Recommendations catalog.DetailedRecommendations `json:"recommendations"`
}

type analyzeRequest struct {
	Text string `json:"text"`
}

type analyzeResponse struct {
	MatchedSymptoms []string                `json:"matched_symptoms"`
	Recommendations recommendationsResponse `json:"recommendations"`
}

// recommendHandler godoc
// @Summary Recomendaciones para una lista de síntomas
// @Description Une medicamentos, cuidados caseros y remedios naturales de cada síntoma (sin duplicados, en orden de catálogo). Los síntomas de emergencia no aportan recomendaciones y activan has_emergency. Etiquetas desconocidas se ignoran.
// @Tags triage
// @Accept json
// @Produce json
// @Param payload body recommendRequest true "Etiquetas de síntomas (ej: Headache, Chest Pain)"
// @Success 200 {object} recommendationsResponse
// @Failure 400 {string} string "invalid json / too many symptoms"
// @Router /triage/recommendations [post]
func recommendHandler(svc *Service, maxSymptoms int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recommendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if len(req.Symptoms) > maxSymptoms {
			http.Error(w, fmt.Sprintf("too many symptoms (max %d)", maxSymptoms), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, toRecommendationsResponse(svc.Recommend(r.Context(), req.Symptoms)))
	}
}

// assessHandler godoc
// @Summary Clasificar urgencia con preguntas de seguimiento
// @Description Reduce la severidad de las opciones respondidas a un nivel (emergency > high > medium > low). Preguntas u opciones desconocidas se ignoran.
// @Tags triage
// @Accept json
// @Produce json
// @Param payload body assessRequest true "symptom_id y respuestas por pregunta"
// @Success 200 {object} assessmentResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "symptom not found"
// @Failure 500 {string} string "internal error"
// @Router /triage/assessments [post]
func assessHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req assessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := svc.Assess(r.Context(), Assessment{
			SymptomID: req.SymptomID,
			Answers:   req.Answers,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "invalid input", http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "symptom not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, assessmentResponse{
			SymptomDetail:   res.SymptomDetail,
			UrgencyLevel:    res.UrgencyLevel,
			Recommendations: res.Recommendations,
		})
	}
}

// analyzeHandler godoc
// @Summary Detectar síntomas en texto libre
// @Description Busca etiquetas del catálogo mencionadas en el texto y devuelve sus recomendaciones. No hay interpretación de lenguaje natural.
// @Tags triage
// @Accept json
// @Produce json
// @Param payload body analyzeRequest true "Texto libre"
// @Success 200 {object} analyzeResponse
// @Failure 400 {string} string "invalid json / text required"
// @Router /triage/analyze [post]
func analyzeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Analyze(r.Context(), req.Text)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "text required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, analyzeResponse{
			MatchedSymptoms: a.Matched,
			Recommendations: toRecommendationsResponse(a.Recommendations),
		})
	}
}

func toRecommendationsResponse(rec Recommendations) recommendationsResponse {
	return recommendationsResponse{
		Medicines:         rec.Medicines,
		HomeCare:          rec.HomeCare,
		Natural:           rec.Natural,
		HasEmergency:      rec.HasEmergency,
		EmergencySymptoms: rec.EmergencySymptoms,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
