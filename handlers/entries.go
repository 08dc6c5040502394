package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"internhours/database"
	"internhours/logger"
	"internhours/middleware"
	"internhours/models"
	"internhours/timefmt"
)

// EntryStore is the ownership-scoped persistence surface the entry
// handlers depend on.
type EntryStore interface {
	ListByOwner(owner string) ([]models.Entry, error)
	GetByIDAndOwner(id uint, owner string) (*models.Entry, error)
	Create(entry *models.Entry) error
	UpdateByIDAndOwner(id uint, owner string, entry *models.Entry) error
	DeleteByIDAndOwner(id uint, owner string) error
}

type EntryHandler struct {
	store EntryStore
}

func NewEntryHandler(store EntryStore) *EntryHandler {
	return &EntryHandler{store: store}
}

// entryResponse is the wire shape of an entry: date and zero-padded
// HH:MM strings, "" for unset times. created_by and created_at never
// leave the server.
type entryResponse struct {
	ID               uint   `json:"id"`
	Date             string `json:"date"`
	MorningTimeIn    string `json:"morning_time_in"`
	MorningTimeOut   string `json:"morning_time_out"`
	AfternoonTimeIn  string `json:"afternoon_time_in"`
	AfternoonTimeOut string `json:"afternoon_time_out"`
	EveningTimeIn    string `json:"evening_time_in"`
	EveningTimeOut   string `json:"evening_time_out"`
}

func encodeEntry(e *models.Entry) entryResponse {
	return entryResponse{
		ID:               e.ID,
		Date:             timefmt.FormatDate(e.Date),
		MorningTimeIn:    timefmt.FormatTime(e.MorningTimeIn),
		MorningTimeOut:   timefmt.FormatTime(e.MorningTimeOut),
		AfternoonTimeIn:  timefmt.FormatTime(e.AfternoonTimeIn),
		AfternoonTimeOut: timefmt.FormatTime(e.AfternoonTimeOut),
		EveningTimeIn:    timefmt.FormatTime(e.EveningTimeIn),
		EveningTimeOut:   timefmt.FormatTime(e.EveningTimeOut),
	}
}

func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	entries, err := h.store.ListByOwner(user.ID)
	if err != nil {
		logger.Error("list entries", "owner", user.ID, "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	out := make([]entryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, encodeEntry(&entries[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	payload, err := decodeEntryPayload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	entry, fieldErrs := payload.normalize()
	if fieldErrs != nil {
		writeFieldErrors(w, fieldErrs)
		return
	}

	entry.CreatedBy = user.ID
	if err := h.store.Create(entry); err != nil {
		logger.Error("create entry", "owner", user.ID, "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeJSON(w, http.StatusCreated, encodeEntry(entry))
}

func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}

	payload, err := decodeEntryPayload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	entry, fieldErrs := payload.normalize()
	if fieldErrs != nil {
		writeFieldErrors(w, fieldErrs)
		return
	}

	err = h.store.UpdateByIDAndOwner(uint(id), user.ID, entry)
	if errors.Is(err, database.ErrNotFound) {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}
	if err != nil {
		logger.Error("update entry", "id", id, "owner", user.ID, "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}

	err = h.store.DeleteByIDAndOwner(uint(id), user.ID)
	if errors.Is(err, database.ErrNotFound) {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}
	if err != nil {
		logger.Error("delete entry", "id", id, "owner", user.ID, "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ExportCSV streams the caller's entries as CSV, newest date first,
// with a computed total-hours column per entry.
func (h *EntryHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	entries, err := h.store.ListByOwner(user.ID)
	if err != nil {
		logger.Error("export entries", "owner", user.ID, "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=entries.csv")

	writer := csv.NewWriter(w)
	defer writer.Flush()

	writer.Write([]string{"Date", "Morning In", "Morning Out", "Afternoon In", "Afternoon Out", "Evening In", "Evening Out", "Hours"})

	for i := range entries {
		e := encodeEntry(&entries[i])
		total := timefmt.Hours(e.MorningTimeIn, e.MorningTimeOut) +
			timefmt.Hours(e.AfternoonTimeIn, e.AfternoonTimeOut) +
			timefmt.Hours(e.EveningTimeIn, e.EveningTimeOut)
		writer.Write([]string{
			e.Date,
			e.MorningTimeIn,
			e.MorningTimeOut,
			e.AfternoonTimeIn,
			e.AfternoonTimeOut,
			e.EveningTimeIn,
			e.EveningTimeOut,
			fmt.Sprintf("%.2f", total),
		})
	}
}
