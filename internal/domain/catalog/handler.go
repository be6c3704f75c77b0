package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/medicines", func(mr chi.Router) {
		mr.Get("/", listMedicinesHandler(svc))
		mr.Post("/interactions", checkInteractionsHandler(svc))
		mr.Get("/{medicineID}", getMedicineHandler(svc))
	})

	r.Get("/remedies", listRemediesHandler(svc))

	r.Route("/symptoms", func(sr chi.Router) {
		sr.Get("/", listSymptomsHandler(svc))
		sr.Get("/{name}", getSymptomDetailHandler(svc))
	})
}

type remediesResponse struct {
	HomeCare []HomeCareRemedy `json:"home_care"`
	Natural  []NaturalRemedy  `json:"natural"`
}

type symptomsResponse struct {
	Labels              []string `json:"labels"`
	EmergencyConditions []string `json:"emergency_conditions"`
	DetailIDs           []string `json:"detail_ids"`
}

type checkInteractionsRequest struct {
	MedicineIDs []string `json:"medicine_ids"`
}

type interactionResponse struct {
	MedicineID  string `json:"medicine_id"`
	InteractsID string `json:"interacts_with_id"`
	Note        string `json:"note"`
}

type interactionReportResponse struct {
	Interactions []interactionResponse `json:"interactions"`
	Unknown      []string              `json:"unknown_ids"`
}

// listMedicinesHandler godoc
// @Summary Buscar medicamentos
// @Description Filtro lineal sobre el catálogo. Todos los parámetros son opcionales y se combinan con AND.
// @Tags medicines
// @Produce json
// @Param q query string false "Texto en nombre, genérico o marca"
// @Param category query string false "Categoría exacta (sin distinguir mayúsculas)"
// @Param type query string false "OTC, Prescription, Ayurvedic, Homeopathic"
// @Param used_for query string false "Etiqueta de síntoma/condición"
// @Success 200 {array} Medicine
// @Failure 400 {string} string "invalid type"
// @Router /medicines [get]
func listMedicinesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		f := MedicineFilter{
			Query:    q.Get("q"),
			Category: q.Get("category"),
			UsedFor:  q.Get("used_for"),
		}
		if v := strings.TrimSpace(q.Get("type")); v != "" {
			t, err := ParseMedicineType(v)
			if err != nil {
				http.Error(w, "invalid type", http.StatusBadRequest)
				return
			}
			f.Type = t
		}

		items, err := svc.SearchMedicines(r.Context(), f)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}

// getMedicineHandler godoc
// @Summary Obtener medicamento
// @Tags medicines
// @Produce json
// @Param medicineID path string true "ID del medicamento"
// @Success 200 {object} Medicine
// @Failure 404 {string} string "medicine not found"
// @Router /medicines/{medicineID} [get]
func getMedicineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.GetMedicine(r.Context(), chi.URLParam(r, "medicineID"))
		if err != nil {
			http.Error(w, "medicine not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, m)
	}
}

// checkInteractionsHandler godoc
// @Summary Revisar interacciones entre medicamentos
// @Description Cruza las interacciones declaradas en el catálogo. IDs desconocidos se devuelven en unknown_ids.
// @Tags medicines
// @Accept json
// @Produce json
// @Param payload body checkInteractionsRequest true "IDs de medicamentos"
// @Success 200 {object} interactionReportResponse
// @Failure 400 {string} string "invalid json / medicine_ids required"
// @Router /medicines/interactions [post]
func checkInteractionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req checkInteractionsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rep, err := svc.CheckInteractions(r.Context(), req.MedicineIDs)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "medicine_ids required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := interactionReportResponse{
			Interactions: make([]interactionResponse, 0, len(rep.Interactions)),
			Unknown:      rep.Unknown,
		}
		for _, i := range rep.Interactions {
			out.Interactions = append(out.Interactions, interactionResponse{
				MedicineID:  i.MedicineID,
				InteractsID: i.InteractsID,
				Note:        i.Note,
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// listRemediesHandler godoc
// @Summary Remedios caseros y naturales
// @Tags remedies
// @Produce json
// @Param symptom query string false "Etiqueta de síntoma; vacío = todos"
// @Success 200 {object} remediesResponse
// @Router /remedies [get]
func listRemediesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rem, err := svc.RemediesFor(r.Context(), r.URL.Query().Get("symptom"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, remediesResponse{
			HomeCare: rem.HomeCare,
			Natural:  rem.Natural,
		})
	}
}

// listSymptomsHandler godoc
// @Summary Etiquetas de síntomas conocidas
// @Tags symptoms
// @Produce json
// @Success 200 {object} symptomsResponse
// @Router /symptoms [get]
func listSymptomsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat := svc.Catalog()

		details := cat.SymptomDetails()
		ids := make([]string, 0, len(details))
		for _, d := range details {
			ids = append(ids, d.ID)
		}

		writeJSON(w, http.StatusOK, symptomsResponse{
			Labels:              cat.SymptomLabels(),
			EmergencyConditions: cat.EmergencyConditions(),
			DetailIDs:           ids,
		})
	}
}

// getSymptomDetailHandler godoc
// @Summary Detalle de síntoma con preguntas de seguimiento
// @Description El nombre se normaliza (minúsculas, espacios => "_") y se busca exacto.
// @Tags symptoms
// @Produce json
// @Param name path string true "Nombre o ID del síntoma (ej: Fever, sore throat)"
// @Success 200 {object} SymptomDetail
// @Failure 404 {string} string "symptom not found"
// @Router /symptoms/{name} [get]
func getSymptomDetailHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.SymptomDetail(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			http.Error(w, "symptom not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
