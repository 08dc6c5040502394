package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"internhours/models"
	"internhours/timefmt"
)

// entryPayload is the incoming entry body. JSON null and an absent
// key both leave a field as the empty string, so past decoding an
// optional time is either set or it is not; there is exactly one
// spelling of "unset".
type entryPayload struct {
	Date             string `json:"date"`
	MorningTimeIn    string `json:"morning_time_in"`
	MorningTimeOut   string `json:"morning_time_out"`
	AfternoonTimeIn  string `json:"afternoon_time_in"`
	AfternoonTimeOut string `json:"afternoon_time_out"`
	EveningTimeIn    string `json:"evening_time_in"`
	EveningTimeOut   string `json:"evening_time_out"`
}

func decodeEntryPayload(r *http.Request) (*entryPayload, error) {
	var p entryPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// normalize validates the payload and converts it to storage values.
// A non-empty map means the payload is invalid; its keys are wire
// field names. The returned entry carries no id, owner or timestamp;
// the handler fills those from the session and storage.
func (p *entryPayload) normalize() (*models.Entry, map[string][]string) {
	fieldErrs := map[string][]string{}
	entry := &models.Entry{}

	if p.Date == "" {
		fieldErrs["date"] = append(fieldErrs["date"], "date is required")
	} else if date, err := timefmt.ParseDate(p.Date); err != nil {
		fieldErrs["date"] = append(fieldErrs["date"], "date must be YYYY-MM-DD")
	} else {
		entry.Date = date
	}

	times := []struct {
		field string
		value string
		dest  **time.Time
	}{
		{"morning_time_in", p.MorningTimeIn, &entry.MorningTimeIn},
		{"morning_time_out", p.MorningTimeOut, &entry.MorningTimeOut},
		{"afternoon_time_in", p.AfternoonTimeIn, &entry.AfternoonTimeIn},
		{"afternoon_time_out", p.AfternoonTimeOut, &entry.AfternoonTimeOut},
		{"evening_time_in", p.EveningTimeIn, &entry.EveningTimeIn},
		{"evening_time_out", p.EveningTimeOut, &entry.EveningTimeOut},
	}
	for _, tf := range times {
		parsed, err := timefmt.ParseTime(tf.value)
		if err != nil {
			fieldErrs[tf.field] = append(fieldErrs[tf.field], "time must be HH:MM")
			continue
		}
		*tf.dest = parsed
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	return entry, nil
}
