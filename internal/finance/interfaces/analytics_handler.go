package interfaces

import (
	"net/http"
	"strconv"

	"expenseflow/internal/finance/application"
)

type AnalyticsServiceInterface interface {
	GetSummary(userID string) (*application.Summary, error)
	GetMonthlyTrends(userID string, months int) ([]application.MonthlyTrend, error)
}

type AnalyticsHandler struct {
	service      AnalyticsServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewAnalyticsHandler(
	service AnalyticsServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *AnalyticsHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &AnalyticsHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *AnalyticsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	summary, err := h.service.GetSummary(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to compute analytics summary")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"summary": summary,
	})
}

// GetMonthlyTrends accepts an optional ?months= query parameter. Absent
// means the service default of six buckets; a value that is not a positive
// integer is rejected.
func (h *AnalyticsHandler) GetMonthlyTrends(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	months := 0
	if raw := r.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.respondError(w, http.StatusBadRequest, "months must be a positive integer")
			return
		}
		months = parsed
	}

	trends, err := h.service.GetMonthlyTrends(userID, months)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to compute monthly trends")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"trends": trends,
	})
}
