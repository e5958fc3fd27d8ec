package routes

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"p9e.in/jobcard/handlers"
	"p9e.in/jobcard/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public Routes (no session required)
	// =====================================================
	r.HandleFunc("/health", handleHealth).Methods("GET")
	r.HandleFunc("/sessions", handlers.CreateSession).Methods("POST")
	r.HandleFunc("/sessions/{id}", handlers.DropSession).Methods("DELETE")

	// =====================================================
	// Session-Scoped API Routes
	// =====================================================
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.SessionMiddleware)

	// Current job card record
	api.HandleFunc("/jobcard", handlers.GetJobCard).Methods("GET")
	api.HandleFunc("/jobcard", handlers.UpdateJobCard).Methods("PUT")
	api.HandleFunc("/jobcard/logo", handlers.UploadLogo).Methods("POST")
	api.HandleFunc("/jobcard/logo", handlers.DeleteLogo).Methods("DELETE")

	// Row sections: items, materials, grn
	api.HandleFunc("/jobcard/{section:items|materials|grn}", handlers.AppendRow).Methods("POST")
	api.HandleFunc("/jobcard/{section:items|materials|grn}/{index}", handlers.UpdateRow).Methods("PUT")
	api.HandleFunc("/jobcard/{section:items|materials|grn}/{index}", handlers.DeleteRow).Methods("DELETE")

	// Preview and exports
	api.HandleFunc("/jobcard/preview", handlers.Preview).Methods("GET")
	api.HandleFunc("/jobcard/export/pdf", handlers.ExportPDF).Methods("GET")
	api.HandleFunc("/jobcard/export/xlsx", handlers.ExportExcel).Methods("GET")

	// Persistence
	api.HandleFunc("/jobcard/save", handlers.SaveJobCard).Methods("POST")
	api.HandleFunc("/jobcards/{job_no}", handlers.GetPersistedJobCard).Methods("GET")
	api.HandleFunc("/jobcard/adopt/{job_no}", handlers.AdoptJobCard).Methods("POST")

	// Vendor master
	api.HandleFunc("/vendors", handlers.GetVendors).Methods("GET")
	api.HandleFunc("/vendors", handlers.CreateVendor).Methods("POST")
	api.HandleFunc("/vendors/{id}", handlers.GetVendor).Methods("GET")

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
