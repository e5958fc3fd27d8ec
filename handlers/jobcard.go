package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"p9e.in/jobcard/jobcard"
	"p9e.in/jobcard/middleware"
)

// recordView is the record as served to clients: the session record plus the
// derived QR payload, which is recomputed on every read.
type recordView struct {
	*jobcard.Record
	QRPayload string `json:"qrPayload"`
	HasLogo   bool   `json:"hasLogo"`
}

func writeRecord(w http.ResponseWriter, rec *jobcard.Record) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recordView{
		Record:    rec,
		QRPayload: rec.QRPayload(),
		HasLogo:   len(rec.Company.Logo) > 0,
	})
}

// GetJobCard returns the session's current record.
// GET /api/v1/jobcard
func GetJobCard(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)
	sess.Mu.Lock()
	defer sess.Mu.Unlock()
	writeRecord(w, sess.Record)
}

type companyPatch struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

type updateRequest struct {
	JobNo            *string           `json:"jobNo"`
	JobDate          *string           `json:"jobDate"`
	DispatchLocation *string           `json:"dispatchLocation"`
	Company          *companyPatch     `json:"company"`
	Vendor           *jobcard.Vendor   `json:"vendor"`
	Operations       *[]string         `json:"operations"`
	Machine          json.RawMessage   `json:"machine"`
	Quality          *jobcard.Quality  `json:"quality"`
	Delivery         *jobcard.Delivery `json:"delivery"`
}

// UpdateJobCard applies a partial scalar update to the session record. The
// machine block is replaced when present and cleared by an explicit null.
// PUT /api/v1/jobcard
func UpdateJobCard(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sess.Mu.Lock()
	defer sess.Mu.Unlock()
	rec := sess.Record

	if req.JobNo != nil {
		rec.JobNo = *req.JobNo
	}
	if req.JobDate != nil {
		rec.JobDate = *req.JobDate
	}
	if req.DispatchLocation != nil {
		rec.DispatchLocation = *req.DispatchLocation
	}
	if req.Company != nil {
		if req.Company.Name != nil {
			rec.Company.Name = *req.Company.Name
		}
		if req.Company.Address != nil {
			rec.Company.Address = *req.Company.Address
		}
	}
	if req.Vendor != nil {
		rec.Vendor = *req.Vendor
	}
	if req.Operations != nil {
		rec.SelectOperations(*req.Operations)
	}
	if len(req.Machine) > 0 {
		if string(req.Machine) == "null" {
			rec.Machine = nil
		} else {
			var m jobcard.MachineBlock
			if err := json.Unmarshal(req.Machine, &m); err != nil {
				http.Error(w, "invalid machine block", http.StatusBadRequest)
				return
			}
			if !jobcard.ValidMachineType(string(m.MachineType)) {
				http.Error(w, "unknown machine type "+strconv.Quote(string(m.MachineType)), http.StatusBadRequest)
				return
			}
			m.Normalize()
			rec.Machine = &m
		}
	}
	if req.Quality != nil {
		rec.Quality = *req.Quality
	}
	if req.Delivery != nil {
		rec.Delivery = *req.Delivery
	}

	writeRecord(w, rec)
}

// AppendRow adds one row to the named section.
// POST /api/v1/jobcard/{section}
func AppendRow(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)
	section := mux.Vars(r)["section"]

	sess.Mu.Lock()
	defer sess.Mu.Unlock()
	rec := sess.Record

	switch section {
	case "items":
		var row jobcard.ItemRow
		if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
			http.Error(w, "invalid row body", http.StatusBadRequest)
			return
		}
		if row.Uom == "" {
			row.Uom = "Nos"
		}
		rec.Items.Append(row)
	case "materials":
		var row jobcard.MaterialRow
		if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
			http.Error(w, "invalid row body", http.StatusBadRequest)
			return
		}
		rec.Materials.Append(row)
	case "grn":
		var row jobcard.GrnRow
		if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
			http.Error(w, "invalid row body", http.StatusBadRequest)
			return
		}
		rec.GrnEntries.Append(row)
	default:
		http.Error(w, "unknown section "+strconv.Quote(section), http.StatusNotFound)
		return
	}

	writeRecord(w, rec)
}

type itemPatch struct {
	Description *string  `json:"description"`
	DrawingNo   *string  `json:"drawingNo"`
	DrawingLink *string  `json:"drawingLink"`
	Grade       *string  `json:"grade"`
	Qty         *float64 `json:"qty"`
	Uom         *string  `json:"uom"`
}

type materialPatch struct {
	RawMaterial *string  `json:"rawMaterial"`
	HeatNo      *string  `json:"heatNo"`
	DiaSize     *string  `json:"diaSize"`
	Weight      *float64 `json:"weight"`
	Qty         *float64 `json:"qty"`
	Remark      *string  `json:"remark"`
}

type grnPatch struct {
	Date         *string  `json:"date"`
	QtyReceived  *float64 `json:"qtyReceived"`
	OkQty        *float64 `json:"okQty"`
	RejectedQty  *float64 `json:"rejectedQty"`
	Remarks      *string  `json:"remarks"`
	QcApprovedBy *string  `json:"qcApprovedBy"`
}

// UpdateRow patches individual fields of the row at {index}. An out-of-range
// index fails this operation only; the record is untouched.
// PUT /api/v1/jobcard/{section}/{index}
func UpdateRow(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)
	vars := mux.Vars(r)
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		http.Error(w, "invalid row index", http.StatusBadRequest)
		return
	}

	sess.Mu.Lock()
	defer sess.Mu.Unlock()
	rec := sess.Record

	switch vars["section"] {
	case "items":
		var p itemPatch
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "invalid row body", http.StatusBadRequest)
			return
		}
		err = rec.Items.Update(index, func(row *jobcard.ItemRow) {
			setString(&row.Description, p.Description)
			setString(&row.DrawingNo, p.DrawingNo)
			setString(&row.DrawingLink, p.DrawingLink)
			setString(&row.Grade, p.Grade)
			setFloat(&row.Qty, p.Qty)
			setString(&row.Uom, p.Uom)
		})
	case "materials":
		var p materialPatch
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "invalid row body", http.StatusBadRequest)
			return
		}
		err = rec.Materials.Update(index, func(row *jobcard.MaterialRow) {
			setString(&row.RawMaterial, p.RawMaterial)
			setString(&row.HeatNo, p.HeatNo)
			setString(&row.DiaSize, p.DiaSize)
			setFloat(&row.Weight, p.Weight)
			setFloat(&row.Qty, p.Qty)
			setString(&row.Remark, p.Remark)
		})
	case "grn":
		var p grnPatch
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "invalid row body", http.StatusBadRequest)
			return
		}
		err = rec.GrnEntries.Update(index, func(row *jobcard.GrnRow) {
			setString(&row.Date, p.Date)
			setFloat(&row.QtyReceived, p.QtyReceived)
			setFloat(&row.OkQty, p.OkQty)
			setFloat(&row.RejectedQty, p.RejectedQty)
			setString(&row.Remarks, p.Remarks)
			setString(&row.QcApprovedBy, p.QcApprovedBy)
		})
	default:
		http.Error(w, "unknown section", http.StatusNotFound)
		return
	}

	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeRecord(w, rec)
}

// DeleteRow removes the row at {index}, shifting later rows down.
// DELETE /api/v1/jobcard/{section}/{index}
func DeleteRow(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)
	vars := mux.Vars(r)
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		http.Error(w, "invalid row index", http.StatusBadRequest)
		return
	}

	sess.Mu.Lock()
	defer sess.Mu.Unlock()
	rec := sess.Record

	switch vars["section"] {
	case "items":
		err = rec.Items.Delete(index)
	case "materials":
		err = rec.Materials.Delete(index)
	case "grn":
		err = rec.GrnEntries.Delete(index)
	default:
		http.Error(w, "unknown section", http.StatusNotFound)
		return
	}

	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeRecord(w, rec)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
