/*
handlers.go - HTTP API handlers for the wage engine

PURPOSE:
  Exposes the engine via REST. Handles HTTP request/response, JSON
  serialization and validation, and delegates everything else to the engine.

ENDPOINTS:
  Calculator:
    GET    /api/calculator/month?year=&month=   Live month calculation
    POST   /api/calculator/month/save           Save a month snapshot
    GET    /api/calculator/summaries            List saved summaries
    POST   /api/calculator/summaries/{id}/lock  Lock a summary (one-way)

  Shifts:
    GET    /api/shifts?from=&to=   List shifts in a date range
    POST   /api/shifts             Create (derived fields recomputed)
    PUT    /api/shifts/{id}        Update (derived fields recomputed)
    DELETE /api/shifts/{id}        Delete

  Settings:
    GET    /api/settings           Current wage settings (defaults if unsaved)
    PUT    /api/settings           Replace wage settings (validated)

  Holidays:
    GET    /api/holidays?year=     Public holidays of a year

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Resource not found
  - 409: Locked-month conflict
  - 500: Internal errors

IDENTITY:
  The caller is identified by the X-User-ID header. Authentication is an
  external collaborator and not part of this service.

SEE ALSO:
  - dto.go:    Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/vaktlogg/wage-engine/engine"
	"github.com/vaktlogg/wage-engine/wage"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Engine   *engine.Engine
	Calendar wage.HolidayCalendar
	validate *validator.Validate
}

// NewHandler creates a new handler around the engine.
func NewHandler(eng *engine.Engine, cal wage.HolidayCalendar) *Handler {
	return &Handler{
		Engine:   eng,
		Calendar: cal,
		validate: validator.New(),
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, wage.ErrMonthLocked):
		status = http.StatusConflict
	case wage.IsNotFound(err):
		status = http.StatusNotFound
	case wage.IsClientError(err):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

// userID extracts the caller identity. Empty means the request is rejected.
func userID(r *http.Request) wage.UserID {
	return wage.UserID(r.Header.Get("X-User-ID"))
}

func (h *Handler) decodeValid(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		badRequest(w, "invalid JSON body: "+err.Error())
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		badRequest(w, "validation failed: "+err.Error())
		return false
	}
	return true
}

func yearMonthParams(r *http.Request) (int, time.Month, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1000 || year > 9999 {
		return 0, 0, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, time.Month(month), true
}

// requireUser rejects requests without a caller identity.
func requireUser(w http.ResponseWriter, r *http.Request) (wage.UserID, bool) {
	uid := userID(r)
	if uid == "" {
		badRequest(w, "missing X-User-ID header")
		return "", false
	}
	return uid, true
}

// =============================================================================
// CALCULATOR
// =============================================================================

func (h *Handler) CalculateMonth(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	year, month, ok := yearMonthParams(r)
	if !ok {
		badRequest(w, "year and month query parameters are required")
		return
	}
	result, err := h.Engine.Calculate(r.Context(), uid, year, month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMonthResultDTO(result))
}

func (h *Handler) SaveMonth(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req SaveMonthRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	summary, err := h.Engine.Save(r.Context(), uid, req.Year, time.Month(req.Month))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryDTO(summary))
}

func (h *Handler) ListSummaries(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	summaries, err := h.Engine.Summaries(r.Context(), uid)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]SummaryDTO, 0, len(summaries))
	for i := range summaries {
		out = append(out, toSummaryDTO(&summaries[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) LockSummary(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	id := wage.SummaryID(chi.URLParam(r, "id"))
	summary, err := h.Engine.Lock(r.Context(), uid, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryDTO(summary))
}

// =============================================================================
// SHIFTS
// =============================================================================

func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	from, err := wage.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		badRequest(w, "invalid from date")
		return
	}
	to, err := wage.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		badRequest(w, "invalid to date")
		return
	}
	shifts, err := h.Engine.ListShifts(r.Context(), uid, from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]ShiftDTO, 0, len(shifts))
	for i := range shifts {
		out = append(out, toShiftDTO(&shifts[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req ShiftRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	s, err := h.Engine.CreateShift(r.Context(), uid, req.toInput())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toShiftDTO(s))
}

func (h *Handler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req ShiftRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	id := wage.ShiftID(chi.URLParam(r, "id"))
	s, err := h.Engine.UpdateShift(r.Context(), uid, id, req.toInput())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toShiftDTO(s))
}

func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	id := wage.ShiftID(chi.URLParam(r, "id"))
	if err := h.Engine.DeleteShift(r.Context(), uid, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// SETTINGS
// =============================================================================

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	ws, err := h.Engine.Settings(r.Context(), uid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsDTO(ws))
}

func (h *Handler) PutSettings(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req SettingsDTO
	if !h.decodeValid(w, r, &req) {
		return
	}
	ws, err := req.toSettings()
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	if err := h.Engine.PutSettings(r.Context(), uid, ws); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsDTO(ws))
}

// =============================================================================
// HOLIDAYS
// =============================================================================

func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1000 || year > 9999 {
		badRequest(w, "year query parameter is required")
		return
	}
	out := make([]string, 0, 12)
	for month := time.January; month <= time.December; month++ {
		for _, d := range h.Calendar.ForMonth(year, month) {
			out = append(out, wage.FormatDate(d))
		}
	}
	writeJSON(w, http.StatusOK, out)
}
