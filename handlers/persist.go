package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/mux"
	"p9e.in/jobcard/config"
	"p9e.in/jobcard/middleware"
	"p9e.in/jobcard/store"
)

var (
	workbookOnce  sync.Once
	workbookStore *store.WorkbookStore
)

// adapter picks the persistence backend: Postgres when configured, the
// master workbook otherwise.
func adapter() store.Adapter {
	if config.DB != nil {
		return store.NewDBStore(config.DB)
	}
	workbookOnce.Do(func() {
		workbookStore = store.NewWorkbookStore(os.Getenv("ERP_FILE"))
	})
	return workbookStore
}

// SaveJobCard commits the session record section by section and reports the
// per-section outcome plus any GRN balance warnings. Failures never touch
// the in-memory record, so the user can fix the store and retry.
// POST /api/v1/jobcard/save
func SaveJobCard(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)

	sess.Mu.Lock()
	results := store.SaveRecord(adapter(), sess.Record)
	warnings := sess.Record.GrnWarnings()
	jobNo := sess.Record.JobNo
	sess.Mu.Unlock()

	saved := true
	for _, res := range results {
		if res.Error != "" {
			saved = false
		}
	}

	status := http.StatusOK
	if !saved {
		// Partial completion: some sections may have been written. The
		// caller is told exactly which ones failed.
		status = http.StatusBadGateway
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"job_no":       jobNo,
		"saved":        saved,
		"sections":     results,
		"grn_warnings": warnings,
	})
}

// GetPersistedJobCard reloads a previously saved card by job number.
// GET /api/v1/jobcards/{job_no}
func GetPersistedJobCard(w http.ResponseWriter, r *http.Request) {
	jobNo := mux.Vars(r)["job_no"]

	rec, err := store.LoadRecord(adapter(), jobNo)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeRecord(w, rec)
}

// AdoptJobCard loads a persisted card into the current session, replacing
// the session record so it can be edited and re-exported.
// POST /api/v1/jobcard/adopt/{job_no}
func AdoptJobCard(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)
	jobNo := mux.Vars(r)["job_no"]

	rec, err := store.LoadRecord(adapter(), jobNo)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	sess.Mu.Lock()
	// Keep the uploaded logo; the store does not hold image bytes.
	rec.Company.Logo = sess.Record.Company.Logo
	sess.Record = rec
	sess.Mu.Unlock()

	writeRecord(w, rec)
}
