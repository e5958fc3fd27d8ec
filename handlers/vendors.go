package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
	"p9e.in/jobcard/config"
	"p9e.in/jobcard/jobcard"
	"p9e.in/jobcard/models"
	"p9e.in/jobcard/store"
)

// vendorColumns is the Vendor Master sheet schema.
var vendorColumns = []string{"Vendor ID", "Vendor Name", "Contact Person", "Mobile", "GST", "Address"}

// GetVendors returns the vendor master list for lookup during data entry.
// GET /api/v1/vendors
func GetVendors(w http.ResponseWriter, r *http.Request) {
	if config.DB != nil {
		var vendors []models.Vendor
		if err := config.DB.Order("created_at ASC").Find(&vendors).Error; err != nil {
			http.Error(w, "failed to fetch vendors", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"vendors": vendors,
			"count":   len(vendors),
		})
		return
	}

	t, err := adapter().Load(store.SectionVendorMaster)
	if err != nil {
		http.Error(w, "failed to fetch vendors: "+err.Error(), http.StatusInternalServerError)
		return
	}
	vendors := make([]jobcard.Vendor, 0, len(t.Rows))
	for _, row := range jobcard.NormalizeTable(rowsAsAny(t.Rows), vendorColumns) {
		if row[0] == "" {
			continue
		}
		vendors = append(vendors, jobcard.Vendor{
			ID: row[0], CompanyName: row[1], ContactPerson: row[2],
			Mobile: row[3], GstNumber: row[4], Address: row[5],
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"vendors": vendors,
		"count":   len(vendors),
	})
}

// CreateVendor adds a vendor to the master list.
// POST /api/v1/vendors
func CreateVendor(w http.ResponseWriter, r *http.Request) {
	var vendor models.Vendor
	if err := json.NewDecoder(r.Body).Decode(&vendor); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if vendor.VendorID == "" {
		http.Error(w, "vendorId is required", http.StatusBadRequest)
		return
	}

	if config.DB != nil {
		if err := config.DB.Create(&vendor).Error; err != nil {
			http.Error(w, "failed to create vendor", http.StatusInternalServerError)
			return
		}
	} else {
		a := adapter()
		t, err := a.Load(store.SectionVendorMaster)
		if err != nil {
			http.Error(w, "failed to read vendor master: "+err.Error(), http.StatusInternalServerError)
			return
		}
		rows := jobcard.NormalizeTable(rowsAsAny(t.Rows), vendorColumns)
		rows = append(rows, []string{
			vendor.VendorID, vendor.CompanyName, vendor.ContactPerson,
			vendor.Mobile, vendor.GstNumber, vendor.Address,
		})
		if err := a.Save(store.SectionVendorMaster, store.Table{Columns: vendorColumns, Rows: rows}); err != nil {
			http.Error(w, "failed to save vendor: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{"vendor": vendor})
}

// GetVendor looks up one vendor by ID.
// GET /api/v1/vendors/{id}
func GetVendor(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if config.DB != nil {
		var vendor models.Vendor
		if err := config.DB.Where("vendor_id = ?", id).First(&vendor).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				http.Error(w, "vendor not found", http.StatusNotFound)
				return
			}
			http.Error(w, "failed to fetch vendor", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"vendor": vendor})
		return
	}

	t, err := adapter().Load(store.SectionVendorMaster)
	if err != nil {
		http.Error(w, "failed to fetch vendor: "+err.Error(), http.StatusInternalServerError)
		return
	}
	for _, row := range jobcard.NormalizeTable(rowsAsAny(t.Rows), vendorColumns) {
		if row[0] == id {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"vendor": jobcard.Vendor{
					ID: row[0], CompanyName: row[1], ContactPerson: row[2],
					Mobile: row[3], GstNumber: row[4], Address: row[5],
				},
			})
			return
		}
	}
	http.Error(w, "vendor not found", http.StatusNotFound)
}

func rowsAsAny(rows [][]string) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, c := range row {
			cells[j] = c
		}
		out[i] = cells
	}
	return out
}
