package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"p9e.in/jobcard/config"
	"p9e.in/jobcard/middleware"
)

// CreateSession opens a new data-entry session around an empty job card.
// POST /sessions
func CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := middleware.Registry.Create(time.Now())

	// Pre-fill the company header from the seeded profile when a relational
	// store is configured.
	if profile := config.DefaultCompanyProfile(); profile != nil {
		sess.Mu.Lock()
		sess.Record.Company.Name = profile.CompanyName
		sess.Record.Company.Address = profile.Address
		if len(profile.Logo) > 0 {
			sess.Record.Company.Logo = profile.Logo
		}
		sess.Mu.Unlock()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"session_id": sess.ID,
		"job_no":     sess.Record.JobNo,
	})
}

// DropSession discards a session and its record.
// DELETE /sessions/{id}
func DropSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	middleware.Registry.Drop(id)
	w.WriteHeader(http.StatusNoContent)
}
