package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"satnica/internal/core"
	"satnica/internal/store"
)

type submitEntryRequest struct {
	Date           string  `json:"date"` // YYYY-MM-DD
	HourlyRate     float64 `json:"hourly_rate"`
	HoursWorked    float64 `json:"hours_worked"`
	HolidayOrNight bool    `json:"holiday_or_night"`
}

type recordResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	Date           string  `json:"date"`
	HourlyRate     float64 `json:"hourly_rate"`
	HoursWorked    float64 `json:"hours_worked"`
	HolidayOrNight bool    `json:"holiday_or_night"`
	Earnings       float64 `json:"earnings"`
}

type submitEntryResponse struct {
	Record         recordResponse      `json:"record"`
	Classification core.Classification `json:"classification"`
	Average        float64             `json:"average"`
}

type monthlySummaryResponse struct {
	MonthYear     string  `json:"month_year"` // M-YYYY, as the overview table shows it
	Month         int     `json:"month"`
	Year          int     `json:"year"`
	TotalHours    float64 `json:"total_hours"`
	TotalEarnings float64 `json:"total_earnings"`
}

func (s *Server) handleSubmitEntry(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")

	var req submitEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	date, err := core.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	res, err := s.entries.SubmitEntry(r.Context(), userID, req.HourlyRate, req.HoursWorked, req.HolidayOrNight, date)
	if err != nil {
		writeServiceError(w, r, err, "submit entry")
		return
	}

	writeJSON(w, http.StatusCreated, submitEntryResponse{
		Record:         toRecordResponse(res.Record),
		Classification: res.Classification,
		Average:        res.Average,
	})
}

func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")

	records, err := s.entries.ListRecords(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "list records")
		return
	}

	out := make([]recordResponse, len(records))
	for i, rec := range records {
		out[i] = toRecordResponse(rec)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleMonthlySummaries(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")

	summaries, err := s.entries.MonthlySummaries(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "monthly summaries")
		return
	}

	out := make([]monthlySummaryResponse, len(summaries))
	for i, sum := range summaries {
		out[i] = monthlySummaryResponse{
			MonthYear:     sum.Month.String(),
			Month:         sum.Month.Month,
			Year:          sum.Month.Year,
			TotalHours:    sum.TotalHours,
			TotalEarnings: sum.TotalEarnings,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func toRecordResponse(rec core.WorkRecord) recordResponse {
	return recordResponse{
		ID:             rec.ID,
		UserID:         rec.UserID,
		Date:           rec.Date.String(),
		HourlyRate:     rec.HourlyRate,
		HoursWorked:    rec.HoursWorked,
		HolidayOrNight: rec.HolidayOrNight,
		Earnings:       rec.Earnings,
	}
}

// writeServiceError maps the error taxonomy onto status codes: bad input is
// the caller's to fix, a storage failure is the backend's.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, op string) {
	switch {
	case errors.Is(err, core.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case store.IsStorageError(err):
		slog.ErrorContext(r.Context(), "Storage failure",
			"error", err,
			"operation", op,
			"path", r.URL.Path)
		writeError(w, http.StatusBadGateway, "storage backend unavailable")
	default:
		slog.ErrorContext(r.Context(), "Unexpected failure",
			"error", err,
			"operation", op,
			"path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
