package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"p9e.in/jobcard/middleware"
)

// maxLogoSize caps the uploaded logo at 5MB.
const maxLogoSize = 5 << 20

// UploadLogo stores the company logo on the session record. The upload is
// read exactly once into memory; the multipart handle is not re-readable, so
// every later render works off this buffer.
// POST /api/v1/jobcard/logo
func UploadLogo(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)

	if err := r.ParseMultipartForm(maxLogoSize); err != nil {
		http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	buf, err := io.ReadAll(io.LimitReader(file, maxLogoSize))
	if err != nil {
		http.Error(w, "failed to read logo: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sess.Mu.Lock()
	sess.Record.Company.Logo = buf
	sess.Mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"filename": header.Filename,
		"size":     len(buf),
	})
}

// DeleteLogo removes the logo from the session record.
// DELETE /api/v1/jobcard/logo
func DeleteLogo(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)
	sess.Mu.Lock()
	sess.Record.Company.Logo = nil
	sess.Mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}
