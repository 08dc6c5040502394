package handlers

import (
	"encoding/json"
	"math"
	"net/http"

	"internhours/config"
	"internhours/logger"
	"internhours/middleware"
	"internhours/models"
	"internhours/timefmt"
)

// PreferenceStore is the persistence surface for the required-hours
// target.
type PreferenceStore interface {
	GetByOwner(owner string) (*models.Preference, error)
	Upsert(owner string, requiredHours float64) (*models.Preference, error)
}

type ProgressHandler struct {
	config  *config.Config
	entries EntryStore
	prefs   PreferenceStore
}

func NewProgressHandler(cfg *config.Config, entries EntryStore, prefs PreferenceStore) *ProgressHandler {
	return &ProgressHandler{
		config:  cfg,
		entries: entries,
		prefs:   prefs,
	}
}

type progressResponse struct {
	CompletedHours float64 `json:"completed_hours"`
	RequiredHours  float64 `json:"required_hours"`
	RemainingHours float64 `json:"remaining_hours"`
	Percent        int     `json:"percent"`
}

// Progress reports the caller's logged hours against their
// required-hours target. Percent is 0 when the target is 0, otherwise
// rounded and capped at 100.
func (h *ProgressHandler) Progress(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	entries, err := h.entries.ListByOwner(user.ID)
	if err != nil {
		logger.Error("progress entries", "owner", user.ID, "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	var completed float64
	for i := range entries {
		e := encodeEntry(&entries[i])
		completed += timefmt.Hours(e.MorningTimeIn, e.MorningTimeOut)
		completed += timefmt.Hours(e.AfternoonTimeIn, e.AfternoonTimeOut)
		completed += timefmt.Hours(e.EveningTimeIn, e.EveningTimeOut)
	}

	required, err := h.requiredHours(user.ID)
	if err != nil {
		logger.Error("progress preference", "owner", user.ID, "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	percent := 0
	if required > 0 {
		percent = int(math.Round(completed / required * 100))
		if percent > 100 {
			percent = 100
		}
	}

	writeJSON(w, http.StatusOK, progressResponse{
		CompletedHours: completed,
		RequiredHours:  required,
		RemainingHours: required - completed,
		Percent:        percent,
	})
}

func (h *ProgressHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	required, err := h.requiredHours(user.ID)
	if err != nil {
		logger.Error("get preference", "owner", user.ID, "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]float64{"required_hours": required})
}

type preferencePayload struct {
	RequiredHours *float64 `json:"required_hours"`
}

func (h *ProgressHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var p preferencePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if p.RequiredHours == nil || *p.RequiredHours < 0 {
		writeFieldErrors(w, map[string][]string{
			"required_hours": {"required_hours must be zero or greater"},
		})
		return
	}

	pref, err := h.prefs.Upsert(user.ID, *p.RequiredHours)
	if err != nil {
		logger.Error("save preference", "owner", user.ID, "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]float64{"required_hours": pref.RequiredHours})
}

// requiredHours returns the owner's saved target, falling back to the
// configured default when no preference row exists yet.
func (h *ProgressHandler) requiredHours(owner string) (float64, error) {
	pref, err := h.prefs.GetByOwner(owner)
	if err != nil {
		return 0, err
	}
	if pref == nil {
		return h.config.DefaultRequiredHours, nil
	}
	return pref.RequiredHours, nil
}
